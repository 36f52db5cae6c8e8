package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// LoadDotEnv reads variables from the given files (".env" when none are
// named) without overriding ones already set. Missing files are skipped.
func LoadDotEnv(filenames ...string) error {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, name := range filenames {
		err := godotenv.Load(name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("unable to load %s: %w", name, err)
		}
	}
	return nil
}

// Development turns on debug logging. Any value of DEVELOPMENT other than
// "0" counts.
func Development() bool {
	value, ok := os.LookupEnv("DEVELOPMENT")
	return ok && value != "0"
}

// LogFile is the path of the rotating log file, empty when file logging is
// off.
func LogFile() string {
	return os.Getenv("MINES_LOG_FILE")
}

// Seed returns MINES_SEED, or the current time when it is not set.
func Seed() (int64, error) {
	seedStr, ok := os.LookupEnv("MINES_SEED")
	if !ok || seedStr == "" {
		return time.Now().UnixNano(), nil
	}
	seed, err := strconv.ParseInt(seedStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("unable to convert MINES_SEED to int: %w", err)
	}
	return seed, nil
}

// Level is the name of the level the first game starts on.
func Level() string {
	level, ok := os.LookupEnv("MINES_LEVEL")
	if !ok || level == "" {
		return "easy"
	}
	return level
}

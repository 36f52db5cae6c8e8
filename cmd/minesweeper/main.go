package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-engine/internal/config"
	"github.com/vancomm/minesweeper-engine/internal/mines"
)

var log = logrus.New()

func setupLogging() error {
	logLevel := logrus.InfoLevel
	if config.Development() {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	if path := config.LogFile(); path != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   path,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Level:      logLevel,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			return fmt.Errorf("unable to open log file %s: %w", path, err)
		}
		log.AddHook(hook)
	}

	mines.Log = log
	return nil
}

// readLines feeds stdin to the returned channel until EOF. The reader is
// not cancellable and is left behind on shutdown.
func readLines() <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		if err := scanner.Err(); err != nil {
			log.Warn("read: ", err)
		}
	}()
	return lines
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	if err := config.LoadDotEnv(); err != nil {
		log.Fatal(err)
	}
	if err := setupLogging(); err != nil {
		log.Fatal(err)
	}

	seed, err := config.Seed()
	if err != nil {
		log.Fatal(err)
	}

	s := newSession(os.Stdout, seed)
	if err := s.start(NewGameParams{Level: config.Level()}); err != nil {
		log.Fatalf("unable to start a %s game: %s", config.Level(), err)
	}
	fmt.Fprintln(os.Stdout, usage)

	lines := readLines()

	g, gCtx := errgroup.WithContext(mainCtx)
	g.Go(func() error {
		for {
			select {
			case <-gCtx.Done():
				return nil
			case line, ok := <-lines:
				if !ok {
					return errQuit
				}
				log.Debug("\t> ", line)
				if err := s.execute(line); errors.Is(err, errQuit) {
					return err
				} else if err != nil {
					log.WithField("command", line).Warn(err)
					fmt.Fprintln(os.Stdout, "error:", err)
				}
			}
		}
	})
	g.Go(func() error {
		<-gCtx.Done()
		log.Debug("shutting down")
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errQuit) {
		log.Printf("exit reason: %s\n", err)
	}
}

package main

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/schema"
	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper-engine/internal/mines"
)

var decoder = schema.NewDecoder()

var (
	errQuit          = errors.New("quit")
	errNoGame        = errors.New("no game in progress")
	errUnknownCmd    = errors.New("unknown command")
	errNargs         = errors.New("invalid number of arguments")
	errBadAssignment = errors.New("arguments must look like key=value")
)

// Maps known commands to number of arguments; -1 takes any number
var commandNargs = map[string]int{
	"n": -1,
	"o": 2,
	"f": 2,
	"u": 2,
	"c": 2,
	"p": 0,
	"q": 0,
}

const usage = `commands:
  n [level=tiny|easy|medium|hard|custom] [seed=N] [rows=N cols=N mines=N]
  o ROW COL   reveal
  f ROW COL   flag
  u ROW COL   unflag
  c ROW COL   chord
  p           print the board
  q           quit`

type NewGameParams struct {
	Level string `schema:"level"`
	Seed  *int64 `schema:"seed"`
	Rows  int    `schema:"rows"`
	Cols  int    `schema:"cols"`
	Mines int    `schema:"mines"`
}

type session struct {
	out    io.Writer
	seed   int64
	gameId uuid.UUID
	game   *mines.Game
}

func newSession(out io.Writer, seed int64) *session {
	return &session{out: out, seed: seed}
}

func (s *session) start(params NewGameParams) error {
	seed := s.seed
	if params.Seed != nil {
		seed = *params.Seed
	}
	level, err := mines.ParseLevel(params.Level)
	if err != nil {
		return err
	}

	var game *mines.Game
	if params.Rows != 0 || params.Cols != 0 || params.Mines != 0 || level == mines.Custom {
		game, err = mines.NewCustom(seed, level, params.Rows, params.Cols, params.Mines)
	} else {
		game, err = mines.New(seed, level)
	}
	if err != nil {
		return err
	}

	s.gameId = uuid.New()
	s.game = game
	s.logger().WithFields(logrus.Fields{
		"level": level, "seed": seed, "params": game.Params(),
	}).Info("new game")
	fmt.Fprintln(s.out, game)
	return nil
}

func parseNewGameParams(args []string) (params NewGameParams, err error) {
	values := url.Values{}
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return params, fmt.Errorf("%w: %q", errBadAssignment, arg)
		}
		values.Set(key, value)
	}
	if !values.Has("level") {
		values.Set("level", mines.Easy.String())
	}
	err = decoder.Decode(&params, values)
	return params, err
}

func parseRowCol(twoStrings []string) (row int, col int, err error) {
	if row, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("row must be an int")
		return
	}
	if col, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("col must be an int")
		return
	}
	return
}

func (s *session) logger() *logrus.Entry {
	return log.WithField("game_id", s.gameId)
}

// execute runs one command line. It returns errQuit on "q".
func (s *session) execute(line string) error {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil
	}
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return fmt.Errorf("%w %q\n%s", errUnknownCmd, parts[0], usage)
	}
	if nargs >= 0 && nargs != len(parts)-1 {
		return errNargs
	}

	switch parts[0] {
	case "q":
		return errQuit
	case "n":
		params, err := parseNewGameParams(parts[1:])
		if err != nil {
			return err
		}
		return s.start(params)
	}

	if s.game == nil {
		return errNoGame
	}
	if parts[0] == "p" {
		fmt.Fprintln(s.out, s.game)
		return nil
	}

	row, col, err := parseRowCol(parts[1:])
	if err != nil {
		return err
	}
	switch parts[0] {
	case "o":
		res := s.game.Reveal(row, col)
		if res.Outcome == mines.RevealExploded {
			s.logger().WithFields(logrus.Fields{"row": row, "col": col}).Info("game lost")
		} else if res.Changed() && s.game.IsSolved() {
			s.logger().Info("game won")
		}
		fmt.Fprintln(s.out, res)
	case "f":
		fmt.Fprintln(s.out, iif(s.game.Flag(row, col), "flagged", "not flagged"))
	case "u":
		fmt.Fprintln(s.out, iif(s.game.Unflag(row, col), "unflagged", "not unflagged"))
	case "c":
		results := s.game.Chord(row, col)
		if len(results) == 0 {
			fmt.Fprintln(s.out, "nothing to chord")
		}
		for _, res := range results {
			fmt.Fprintln(s.out, res)
		}
	}
	fmt.Fprintln(s.out, s.game)
	return nil
}

func iif[T any](condition bool, valueIfTrue, valueIfFalse T) T {
	if condition {
		return valueIfTrue
	} else {
		return valueIfFalse
	}
}

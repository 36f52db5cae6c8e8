package mines

import (
	"fmt"
	"strings"
)

type Level int

const (
	Tiny Level = iota
	Easy
	Medium
	Hard
	Custom
)

var levelNames = [...]string{"tiny", "easy", "medium", "hard", "custom"}

// Level implements [fmt.Stringer]
func (l Level) String() string {
	if l < Tiny || l > Custom {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

func ParseLevel(s string) (Level, error) {
	for i, name := range levelNames {
		if strings.EqualFold(s, name) {
			return Level(i), nil
		}
	}
	return 0, fmt.Errorf("unknown level %q", s)
}

// Params are the board dimensions and mine total of a game.
type Params struct {
	Rows, Cols, Mines int
}

func (p Params) Unpack() (rows, cols, mines int) {
	return p.Rows, p.Cols, p.Mines
}

var presets = map[Level]Params{
	Tiny:   {Rows: 5, Cols: 5, Mines: 3},
	Easy:   {Rows: 9, Cols: 9, Mines: 10},
	Medium: {Rows: 16, Cols: 16, Mines: 40},
	Hard:   {Rows: 16, Cols: 30, Mines: 99},
}

// Preset returns the fixed parameters of a preset level. It reports false
// for [Custom] and unknown levels.
func (l Level) Preset() (Params, bool) {
	p, ok := presets[l]
	return p, ok
}

type Status int

const (
	NotStarted Status = iota
	InProgress
	Exploded
	Solved
)

var statusLabels = [...]string{"INIT", "IN_GAME", "EXPLODED", "SOLVED"}

// Status implements [fmt.Stringer]
func (s Status) String() string {
	if s < NotStarted || s > Solved {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusLabels[s]
}

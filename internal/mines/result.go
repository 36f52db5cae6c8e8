package mines

import "fmt"

// Outcome tells what a reveal did.
type Outcome int

const (
	RevealOutOfRange Outcome = iota
	RevealFlagged
	RevealAlreadyVisible
	RevealExploded
	RevealOpened
)

var outcomeNames = [...]string{
	"out of range", "flagged", "already visible", "exploded", "opened",
}

// Outcome implements [fmt.Stringer]
func (o Outcome) String() string {
	if o < RevealOutOfRange || o > RevealOpened {
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
	return outcomeNames[o]
}

// Sentinel codes returned by [RevealResult.Code] and [Game.NeighborMineCount].
const (
	CodeInvalid = -2
	CodeMine    = -1
)

// RevealResult is the outcome of opening one cell. Count is the neighbor
// mine count of the opened cell and is only meaningful for [RevealOpened].
type RevealResult struct {
	Outcome Outcome
	Count   int
}

// Code folds the result into a single integer: -2 when nothing changed,
// -1 on an explosion, otherwise the opened cell's neighbor mine count.
func (r RevealResult) Code() int {
	switch r.Outcome {
	case RevealExploded:
		return CodeMine
	case RevealOpened:
		return r.Count
	default:
		return CodeInvalid
	}
}

// Changed reports whether the reveal touched the board.
func (r RevealResult) Changed() bool {
	return r.Outcome == RevealExploded || r.Outcome == RevealOpened
}

// RevealResult implements [fmt.Stringer]
func (r RevealResult) String() string {
	if r.Outcome == RevealOpened {
		return fmt.Sprintf("%s(%d)", r.Outcome, r.Count)
	}
	return r.Outcome.String()
}

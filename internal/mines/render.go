package mines

import (
	"fmt"
	"strings"
)

// BoardString renders the board with a column index header and a row index
// in front of every row:
//
//	- |0|1|2|
//	0 |?|1| |
//	1 |F|X| |
func (g *Game) BoardString() string {
	var b strings.Builder

	b.WriteString("- |")
	for col := range g.board.Cols() {
		fmt.Fprintf(&b, "%d|", col)
	}
	b.WriteString("\n")

	for row := range g.board.Rows() {
		fmt.Fprintf(&b, "%d |", row)
		for col := range g.board.Cols() {
			b.WriteString(g.cell(row, col).String())
			b.WriteString("|")
		}
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}

// Game implements [fmt.Stringer]
func (g *Game) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Board Size: %d x %d\n", g.Rows(), g.Cols())
	fmt.Fprintf(&b, "Total mines: %d\n", g.MineTotal())
	fmt.Fprintf(&b, "Remaining mines: %d\n", g.MineLeft())
	fmt.Fprintf(&b, "Game status: %s\n", g.status)
	b.WriteString(g.BoardString())
	return strings.TrimSpace(b.String())
}

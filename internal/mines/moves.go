package mines

import "github.com/sirupsen/logrus"

type point struct{ row, col int }

/*
Reveal opens the cell at (row, col). Flagged, visible and off-board cells
are left alone. A mine explodes the board. A cell with no mined neighbors
also opens every connected zero-count cell together with the numbered cells
bordering that region.
*/
func (g *Game) Reveal(row, col int) RevealResult {
	c := g.cell(row, col)
	switch {
	case c == nil:
		return RevealResult{Outcome: RevealOutOfRange}
	case c.IsFlagged():
		return RevealResult{Outcome: RevealFlagged}
	case c.Visible():
		return RevealResult{Outcome: RevealAlreadyVisible}
	}

	var result RevealResult
	if c.HasMine() {
		c.SetVisible()
		result = RevealResult{Outcome: RevealExploded}
		if g.status != Solved {
			g.status = Exploded
		}
		Log.WithFields(logrus.Fields{"row": row, "col": col}).Debug("mine exploded")
	} else {
		g.open(row, col)
		result = RevealResult{Outcome: RevealOpened, Count: c.Count()}
	}

	g.updateStatus()
	return result
}

/*
open makes (row, col) visible and floods outwards from zero-count cells
using an explicit stack, so the depth is independent of the board size.
Cells joined through the flood are opened even when flagged.
*/
func (g *Game) open(row, col int) {
	stack := []point{{row, col}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		c := g.cell(p.row, p.col)
		if c.Visible() {
			continue
		}
		c.SetVisible()
		g.revealed++

		if c.Count() != 0 {
			continue
		}
		g.neighbors(p.row, p.col, func(r, cc int, n *Cell) {
			if !n.Visible() {
				stack = append(stack, point{r, cc})
			}
		})
	}
}

// updateStatus runs after every reveal that changed the board. Solved and
// Exploded are final.
func (g *Game) updateStatus() {
	if g.status == Solved || g.status == Exploded {
		return
	}
	rows, cols, mines := g.params.Unpack()
	if g.revealed+mines == rows*cols {
		g.status = Solved
		Log.WithFields(logrus.Fields{"revealed": g.revealed}).Debug("board solved")
		return
	}
	g.status = InProgress
}

/*
Flag marks a hidden cell as flagged and reports whether it did. Flagging a
cell that already carries a flag still succeeds and counts again, so
[Game.MineLeft] drops each time.
*/
func (g *Game) Flag(row, col int) bool {
	c := g.cell(row, col)
	if c == nil || c.Visible() {
		return false
	}
	c.SetFlagged()
	g.flagged++
	return true
}

// Unflag clears the flag on (row, col) and reports whether there was one.
func (g *Game) Unflag(row, col int) bool {
	c := g.cell(row, col)
	if c == nil || !c.IsFlagged() {
		return false
	}
	c.Unflag()
	g.flagged--
	return true
}

/*
Chord opens every hidden, unflagged neighbor of a visible numbered cell
once the flags around it match its count. It stops at the first explosion
and returns the result of each reveal it made.
*/
func (g *Game) Chord(row, col int) []RevealResult {
	c := g.cell(row, col)
	if c == nil || !c.Visible() || c.HasMine() || c.Count() <= 0 {
		return nil
	}

	var (
		flags   int
		targets []point
	)
	g.neighbors(row, col, func(r, cc int, n *Cell) {
		switch {
		case n.IsFlagged():
			flags++
		case !n.Visible():
			targets = append(targets, point{r, cc})
		}
	})
	if flags != c.Count() {
		return nil
	}

	var results []RevealResult
	for _, p := range targets {
		if g.IsVisible(p.row, p.col) {
			continue // opened by an earlier flood
		}
		res := g.Reveal(p.row, p.col)
		results = append(results, res)
		if res.Outcome == RevealExploded {
			break
		}
	}
	return results
}

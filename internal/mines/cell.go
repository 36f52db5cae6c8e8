package mines

import "strconv"

// CountUnset is the neighbor count of a cell before counts are computed and
// of every mined cell afterwards.
const CountUnset = -1

// Cell is the state of one board position.
type Cell struct {
	mine    bool
	count   int
	visible bool
	flagged bool
}

func NewCell() *Cell {
	return &Cell{count: CountUnset}
}

func (c *Cell) HasMine() bool { return c.mine }
func (c *Cell) Count() int { return c.count }
func (c *Cell) Visible() bool { return c.visible }
func (c *Cell) IsFlagged() bool { return c.flagged }

func (c *Cell) SetMine() { c.mine = true }
func (c *Cell) SetCount(n int) { c.count = n }
func (c *Cell) SetVisible() { c.visible = true }
func (c *Cell) SetFlagged() { c.flagged = true }
func (c *Cell) Unflag() { c.flagged = false }

// Cell implements [fmt.Stringer]
func (c *Cell) String() string {
	switch {
	case c.flagged:
		return "F"
	case !c.visible:
		return "?"
	case c.mine:
		return "X"
	case c.count == 0:
		return " "
	default:
		return strconv.Itoa(c.count)
	}
}

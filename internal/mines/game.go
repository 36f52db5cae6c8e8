package mines

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper-engine/internal/dynarr"
	"github.com/vancomm/minesweeper-engine/internal/dyngrid"
)

var Log = logrus.New()

var (
	ErrCustomParams  = errors.New("only custom games take rows, cols and mines")
	ErrPresetParams  = errors.New("custom games need rows, cols and mines")
	ErrBadDimensions = errors.New("invalid board dimensions")
)

// Board is the grid of cells a [Game] plays on.
type Board = dyngrid.Grid[*Cell]

type Game struct {
	board    *Board
	params   Params
	revealed int
	flagged  int
	status   Status
}

// New starts a game on a preset level with mines placed from seed.
func New(seed int64, level Level) (*Game, error) {
	if level == Custom {
		return nil, ErrPresetParams
	}
	params, ok := level.Preset()
	if !ok {
		return nil, fmt.Errorf("unknown level %d", int(level))
	}
	return newGame(seed, params)
}

// NewCustom starts a game of the given size. level must be [Custom].
func NewCustom(seed int64, level Level, rows, cols, mines int) (*Game, error) {
	if level != Custom {
		return nil, ErrCustomParams
	}
	if rows <= 0 || cols <= 0 || mines < 0 || mines > rows*cols {
		return nil, fmt.Errorf(
			"%w: %dx%d with %d mines", ErrBadDimensions, rows, cols, mines,
		)
	}
	return newGame(seed, Params{Rows: rows, Cols: cols, Mines: mines})
}

func newGame(seed int64, params Params) (*Game, error) {
	board := NewEmptyBoard(params.Rows, params.Cols)
	if board == nil {
		return nil, ErrBadDimensions
	}
	g := &Game{board: board, params: params}
	g.placeMines(rand.New(rand.NewPCG(uint64(seed), 0)))
	g.computeCounts()
	Log.WithFields(logrus.Fields{
		"seed": seed, "rows": params.Rows, "cols": params.Cols,
		"mines": params.Mines,
	}).Debug("new game")
	return g, nil
}

/*
NewFromBoard adopts a prepared board holding mineCount mines. Neighbor
counts are recomputed from the cells' mines; visibility and flags are kept
as they are while the counters start from zero.
*/
func NewFromBoard(board *Board, mineCount int) (*Game, error) {
	if board == nil || board.Rows() == 0 {
		return nil, ErrBadDimensions
	}
	g := &Game{
		board: board,
		params: Params{
			Rows: board.Rows(), Cols: board.Cols(), Mines: mineCount,
		},
	}
	g.computeCounts()
	return g, nil
}

// NewEmptyBoard builds a rows by cols board of default cells, or returns nil
// when either dimension is not positive.
func NewEmptyBoard(rows, cols int) *Board {
	if rows <= 0 || cols <= 0 {
		return nil
	}
	board := dyngrid.New[*Cell]()
	for i := range rows {
		row, err := dynarr.NewWithCapacity[*Cell](max(cols, dynarr.MinCap))
		if err != nil {
			panic(err)
		}
		for range cols {
			if err := row.Append(NewCell()); err != nil {
				panic(err)
			}
		}
		if !board.AddRow(i, row) {
			panic("unable to add a full-width row")
		}
	}
	return board
}

/*
placeMines draws (row, col) pairs until the requested number of distinct
cells hold a mine. The caller guarantees there is room for all of them.
*/
func (g *Game) placeMines(r *rand.Rand) {
	rows, cols, mines := g.params.Unpack()
	for placed := 0; placed < mines; {
		row, col := r.IntN(rows), r.IntN(cols)
		c := g.cell(row, col)
		if c.HasMine() {
			continue
		}
		c.SetMine()
		placed++
	}
}

func (g *Game) computeCounts() {
	for row := range g.board.Rows() {
		for col := range g.board.Cols() {
			g.cell(row, col).SetCount(g.NeighborMineCount(row, col))
		}
	}
}

// cell returns the cell at (row, col) or nil when out of range.
func (g *Game) cell(row, col int) *Cell {
	c, err := g.board.Get(row, col)
	if err != nil {
		return nil
	}
	return c
}

// neighbors calls fn for each in-range cell around (row, col).
func (g *Game) neighbors(row, col int, fn func(r, c int, cell *Cell)) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if n := g.cell(row+dr, col+dc); n != nil {
				fn(row+dr, col+dc, n)
			}
		}
	}
}

func (g *Game) Rows() int { return g.params.Rows }
func (g *Game) Cols() int { return g.params.Cols }

func (g *Game) Board() *Board { return g.board }
func (g *Game) Params() Params { return g.params }
func (g *Game) MineTotal() int { return g.params.Mines }
func (g *Game) Revealed() int { return g.revealed }
func (g *Game) Flagged() int { return g.flagged }
func (g *Game) Status() Status { return g.status }
func (g *Game) IsSolved() bool { return g.status == Solved }
func (g *Game) IsExploded() bool { return g.status == Exploded }

// MineLeft is the mine total minus the flag count. It goes negative when
// more cells are flagged than there are mines.
func (g *Game) MineLeft() int {
	return g.params.Mines - g.flagged
}

func (g *Game) IsFlagged(row, col int) bool {
	c := g.cell(row, col)
	return c != nil && c.IsFlagged()
}

func (g *Game) IsVisible(row, col int) bool {
	c := g.cell(row, col)
	return c != nil && c.Visible()
}

func (g *Game) HasMine(row, col int) bool {
	c := g.cell(row, col)
	return c != nil && c.HasMine()
}

// Count returns the stored neighbor count of a cell, -1 for mines and -2
// for coordinates off the board.
func (g *Game) Count(row, col int) int {
	c := g.cell(row, col)
	if c == nil {
		return CodeInvalid
	}
	return c.Count()
}

// NeighborMineCount counts mines around (row, col). It returns -2 off the
// board and -1 when the cell itself holds a mine.
func (g *Game) NeighborMineCount(row, col int) int {
	c := g.cell(row, col)
	if c == nil {
		return CodeInvalid
	}
	if c.HasMine() {
		return CodeMine
	}
	count := 0
	g.neighbors(row, col, func(_, _ int, n *Cell) {
		if n.HasMine() {
			count++
		}
	})
	return count
}

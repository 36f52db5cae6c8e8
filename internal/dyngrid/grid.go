package dyngrid

import (
	"fmt"
	"strings"

	"github.com/vancomm/minesweeper-engine/internal/dynarr"
)

var (
	ErrOutOfRange = dynarr.ErrOutOfRange
	ErrNilValue   = dynarr.ErrNilValue
)

func cellError(row, col int) error {
	return fmt.Errorf("index (%d,%d): %w", row, col, ErrOutOfRange)
}

/*
Grid is a rectangular table stored as an array of row arrays. Every row has
the same length; a grid without rows has no columns and the other way round.
Rows and columns are addressed by dense zero-based indices.
*/
type Grid[T any] struct {
	rows *dynarr.Array[*dynarr.Array[T]]
}

func New[T any]() *Grid[T] {
	return &Grid[T]{rows: dynarr.New[*dynarr.Array[T]]()}
}

func (g *Grid[T]) Rows() int {
	return g.rows.Len()
}

func (g *Grid[T]) Cols() int {
	if g.rows.Len() == 0 {
		return 0
	}
	return g.row(0).Len()
}

func (g *Grid[T]) IsValid(row, col int) bool {
	return 0 <= row && row < g.Rows() && 0 <= col && col < g.Cols()
}

// row returns the row array at a known good index.
func (g *Grid[T]) row(index int) *dynarr.Array[T] {
	r, err := g.rows.Get(index)
	if err != nil {
		panic(err)
	}
	return r
}

func (g *Grid[T]) Get(row, col int) (v T, err error) {
	if !g.IsValid(row, col) {
		return v, cellError(row, col)
	}
	return g.row(row).Get(col)
}

// Set replaces the value at (row, col) and returns the previous one.
func (g *Grid[T]) Set(row, col int, value T) (old T, err error) {
	if !g.IsValid(row, col) {
		return old, cellError(row, col)
	}
	return g.row(row).Set(col, value)
}

/*
AddRow inserts a copy of newRow before row index; index equal to Rows()
appends. It reports false, leaving the grid untouched, when the index is out
of range, newRow is nil or empty, or its length differs from Cols() on a
non-empty grid.
*/
func (g *Grid[T]) AddRow(index int, newRow *dynarr.Array[T]) bool {
	if index < 0 || index > g.Rows() ||
		newRow == nil || newRow.Len() == 0 ||
		(g.Rows() > 0 && newRow.Len() != g.Cols()) {
		return false
	}
	return g.rows.Insert(index, newRow.Clone()) == nil
}

/*
AddCol inserts newCol before column index, one element per row. On an empty
grid every element of newCol becomes a single-cell row. The failure
conditions mirror [Grid.AddRow] with rows and columns swapped.
*/
func (g *Grid[T]) AddCol(index int, newCol *dynarr.Array[T]) bool {
	if index < 0 || index > g.Cols() ||
		newCol == nil || newCol.Len() == 0 ||
		(g.Rows() > 0 && newCol.Len() != g.Rows()) {
		return false
	}

	if g.Rows() == 0 {
		for _, v := range newCol.Values() {
			r := dynarr.New[T]()
			if err := r.Append(v); err != nil {
				panic(err)
			}
			if err := g.rows.Append(r); err != nil {
				panic(err)
			}
		}
		return true
	}

	for i, v := range newCol.Values() {
		if err := g.row(i).Insert(index, v); err != nil {
			panic(err)
		}
	}
	return true
}

// RemoveRow detaches and returns the row at index, or nil for an invalid
// index.
func (g *Grid[T]) RemoveRow(index int) *dynarr.Array[T] {
	if index < 0 || index >= g.Rows() {
		return nil
	}
	r, err := g.rows.Remove(index)
	if err != nil {
		return nil
	}
	return r
}

/*
RemoveCol removes the column at index from every row and returns its values
as a fresh array, or nil for an invalid index. Removing the last column drops
all rows so the grid is empty again.
*/
func (g *Grid[T]) RemoveCol(index int) *dynarr.Array[T] {
	if index < 0 || index >= g.Cols() {
		return nil
	}

	removed := dynarr.New[T]()
	for i := range g.Rows() {
		v, err := g.row(i).Remove(index)
		if err != nil {
			panic(err)
		}
		if err := removed.Append(v); err != nil {
			panic(err)
		}
	}

	if g.Cols() == 0 {
		g.rows = dynarr.New[*dynarr.Array[T]]()
	}
	return removed
}

// Grid implements [fmt.Stringer]
func (g *Grid[T]) String() string {
	if g.Rows() == 0 || g.Cols() == 0 {
		return "empty board"
	}
	var b strings.Builder
	for i := range g.Rows() {
		b.WriteString("|")
		for _, v := range g.row(i).Values() {
			fmt.Fprint(&b, v)
			b.WriteString("|")
		}
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}

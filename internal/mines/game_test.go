package mines

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

// tinyFixture is a 5x5 board with mines at (2,3), (2,4) and (4,3).
func tinyFixture(t *testing.T) *Game {
	t.Helper()
	board := NewEmptyBoard(5, 5)
	require.NotNil(t, board)
	for _, p := range []point{{2, 3}, {2, 4}, {4, 3}} {
		c, err := board.Get(p.row, p.col)
		require.NoError(t, err)
		c.SetMine()
	}
	g, err := NewFromBoard(board, 3)
	require.NoError(t, err)
	return g
}

func TestNewEmptyBoard(t *testing.T) {
	assert.Nil(t, NewEmptyBoard(0, 4))
	assert.Nil(t, NewEmptyBoard(3, -1))

	board := NewEmptyBoard(3, 4)
	require.NotNil(t, board)
	assert.Equal(t, 3, board.Rows())
	assert.Equal(t, 4, board.Cols())
	for row := range 3 {
		for col := range 4 {
			c, err := board.Get(row, col)
			require.NoError(t, err)
			assert.False(t, c.HasMine())
			assert.False(t, c.Visible())
			assert.False(t, c.IsFlagged())
			assert.Equal(t, CountUnset, c.Count())
		}
	}

	narrow := NewEmptyBoard(4, 1)
	require.NotNil(t, narrow)
	assert.Equal(t, 1, narrow.Cols())
}

func TestConstruction(t *testing.T) {
	_, err := New(1, Custom)
	assert.ErrorIs(t, err, ErrPresetParams)

	_, err = NewCustom(1, Easy, 5, 5, 3)
	assert.ErrorIs(t, err, ErrCustomParams)

	for _, dims := range [][3]int{{0, 5, 1}, {5, 0, 1}, {-2, 3, 0}, {2, 2, 5}, {3, 3, -1}} {
		_, err = NewCustom(1, Custom, dims[0], dims[1], dims[2])
		assert.ErrorIs(t, err, ErrBadDimensions, "%v", dims)
	}

	tests := []struct {
		level             Level
		rows, cols, mines int
	}{
		{Tiny, 5, 5, 3},
		{Easy, 9, 9, 10},
		{Medium, 16, 16, 40},
		{Hard, 16, 30, 99},
	}
	for _, test := range tests {
		t.Run(test.level.String(), func(t *testing.T) {
			g, err := New(42, test.level)
			require.NoError(t, err)
			assert.Equal(t, test.rows, g.Rows())
			assert.Equal(t, test.cols, g.Cols())
			assert.Equal(t, test.mines, g.MineTotal())
			assert.Equal(t, test.mines, g.MineLeft())
			assert.Equal(t, NotStarted, g.Status())
			assert.Equal(t, "INIT", g.Status().String())
			assert.Equal(t, test.mines, countMines(g))
		})
	}

	full, err := NewCustom(3, Custom, 3, 3, 9)
	require.NoError(t, err)
	assert.Equal(t, 9, countMines(full))
}

func countMines(g *Game) (n int) {
	for row := range g.Rows() {
		for col := range g.Cols() {
			if g.HasMine(row, col) {
				n++
			}
		}
	}
	return
}

func TestDeterministicPlacement(t *testing.T) {
	for _, seed := range []int64{0, 1, 10, -7, 1 << 40} {
		a, err := NewCustom(seed, Custom, 12, 17, 30)
		require.NoError(t, err)
		b, err := NewCustom(seed, Custom, 12, 17, 30)
		require.NoError(t, err)
		for row := range 12 {
			for col := range 17 {
				require.Equal(t, a.HasMine(row, col), b.HasMine(row, col))
				require.Equal(t, a.NeighborMineCount(row, col), b.NeighborMineCount(row, col))
				require.Equal(t, a.Count(row, col), b.Count(row, col))
			}
		}
		assert.Equal(t, 30, countMines(a))
	}
}

func TestNeighborMineCount(t *testing.T) {
	g := tinyFixture(t)
	assert.Equal(t, 0, g.NeighborMineCount(0, 0))
	assert.Equal(t, 1, g.NeighborMineCount(4, 2))
	assert.Equal(t, 3, g.NeighborMineCount(3, 3))
	assert.Equal(t, -1, g.NeighborMineCount(2, 3))
	assert.Equal(t, -2, g.NeighborMineCount(5, 5))
	assert.Equal(t, -2, g.NeighborMineCount(-1, 0))

	assert.Equal(t, 3, g.Count(3, 4))
	assert.Equal(t, -1, g.Count(4, 3))
	assert.Equal(t, -2, g.Count(0, 5))
}

func TestRevealAndExplode(t *testing.T) {
	g := tinyFixture(t)

	assert.Equal(t, RevealResult{Outcome: RevealOutOfRange}, g.Reveal(-1, 0))
	assert.Equal(t, -2, g.Reveal(-1, 0).Code())
	assert.Equal(t, NotStarted, g.Status())

	res := g.Reveal(3, 3)
	assert.Equal(t, RevealOpened, res.Outcome)
	assert.Equal(t, 3, res.Code())
	assert.True(t, g.IsVisible(3, 3))
	assert.False(t, g.IsVisible(0, 0))
	assert.Equal(t, "IN_GAME", g.Status().String())
	assert.Equal(t, 3, g.MineLeft())
	assert.Equal(t, 1, g.Revealed())

	assert.Equal(t, RevealAlreadyVisible, g.Reveal(3, 3).Outcome)
	assert.Equal(t, -2, g.Reveal(3, 3).Code())

	res = g.Reveal(2, 3)
	assert.Equal(t, RevealExploded, res.Outcome)
	assert.Equal(t, -1, res.Code())
	assert.True(t, g.IsVisible(2, 3))
	assert.True(t, g.IsExploded())
	assert.Equal(t, "EXPLODED", g.Status().String())
	assert.Equal(t, 1, g.Revealed())
}

func TestFlagUnflag(t *testing.T) {
	g := tinyFixture(t)
	g.Reveal(3, 3)

	assert.True(t, g.Flag(2, 3))
	assert.False(t, g.IsVisible(2, 3))
	assert.True(t, g.IsFlagged(2, 3))
	assert.True(t, g.Flag(2, 4))
	assert.Equal(t, 1, g.MineLeft())
	assert.True(t, g.Unflag(2, 3))
	assert.False(t, g.IsFlagged(2, 3))
	assert.Equal(t, 2, g.MineLeft())

	// flagged cells cannot be opened
	assert.Equal(t, RevealFlagged, g.Reveal(2, 4).Outcome)
	assert.Equal(t, -2, g.Reveal(2, 4).Code())

	// flagging twice counts twice
	assert.True(t, g.Flag(2, 4))
	assert.Equal(t, 1, g.MineLeft())
	assert.Equal(t, 2, g.Flagged())

	assert.False(t, g.Flag(3, 3))
	assert.False(t, g.Unflag(3, 3))
	assert.False(t, g.Unflag(2, 3))
	assert.False(t, g.Flag(7, 0))
	assert.False(t, g.Unflag(0, -1))
	assert.False(t, g.IsFlagged(9, 9))
	assert.False(t, g.IsVisible(9, 9))
	assert.False(t, g.HasMine(9, 9))
}

func TestFlagThenUnflagKeepsMineLeft(t *testing.T) {
	g := tinyFixture(t)
	before := g.MineLeft()
	require.True(t, g.Flag(2, 3))
	require.True(t, g.Unflag(2, 3))
	assert.Equal(t, before, g.MineLeft())

	for range 5 {
		g.Flag(0, 0)
	}
	assert.Equal(t, -2, g.MineLeft())
}

func TestFloodAndSolve(t *testing.T) {
	g := tinyFixture(t)
	g.Reveal(3, 3)
	g.Flag(2, 4)

	assert.Equal(t, 0, g.Reveal(0, 0).Code())
	assert.True(t, g.IsVisible(0, 0))
	assert.True(t, g.IsVisible(4, 0))
	assert.True(t, g.IsVisible(0, 4))
	assert.True(t, g.IsVisible(3, 2))
	assert.False(t, g.IsVisible(3, 4))
	assert.False(t, g.IsVisible(4, 3))
	assert.Equal(t, 20, g.Revealed())
	assert.Equal(t, InProgress, g.Status())

	assert.Equal(t, 1, g.Reveal(4, 4).Code())
	assert.False(t, g.IsSolved())
	assert.Equal(t, 3, g.Reveal(3, 4).Code())
	assert.True(t, g.IsSolved())
	assert.Equal(t, "SOLVED", g.Status().String())

	want := "" +
		"- |0|1|2|3|4|\n" +
		"0 | | | | | |\n" +
		"1 | | |1|2|2|\n" +
		"2 | | |1|?|F|\n" +
		"3 | | |2|3|3|\n" +
		"4 | | |1|?|1|"
	assert.Equal(t, want, g.BoardString())

	// solved is final
	assert.Equal(t, RevealExploded, g.Reveal(2, 3).Outcome)
	assert.True(t, g.IsSolved())
}

func TestExplodedIsFinal(t *testing.T) {
	g := tinyFixture(t)
	require.Equal(t, RevealExploded, g.Reveal(4, 3).Outcome)

	for row := range g.Rows() {
		for col := range g.Cols() {
			if !g.HasMine(row, col) {
				g.Reveal(row, col)
			}
		}
	}
	assert.Equal(t, 22, g.Revealed())
	assert.True(t, g.IsExploded())
	assert.False(t, g.IsSolved())
}

func TestString(t *testing.T) {
	g := tinyFixture(t)
	want := "" +
		"Board Size: 5 x 5\n" +
		"Total mines: 3\n" +
		"Remaining mines: 3\n" +
		"Game status: INIT\n" +
		"- |0|1|2|3|4|\n" +
		"0 |?|?|?|?|?|\n" +
		"1 |?|?|?|?|?|\n" +
		"2 |?|?|?|?|?|\n" +
		"3 |?|?|?|?|?|\n" +
		"4 |?|?|?|?|?|"
	assert.Equal(t, want, g.String())

	g.Reveal(3, 3)
	g.Reveal(2, 3)
	assert.Contains(t, g.BoardString(), "2 |?|?|?|X|?|\n3 |?|?|?|3|?|")
	assert.Equal(t, "|?|?|?|?|?|\n|?|?|?|?|?|\n|?|?|?|X|?|\n|?|?|?|3|?|\n|?|?|?|?|?|", g.Board().String())
}

func TestChord(t *testing.T) {
	g := tinyFixture(t)
	assert.Nil(t, g.Chord(3, 3), "hidden cell")

	g.Reveal(3, 3)
	assert.Nil(t, g.Chord(3, 3), "no flags yet")

	g.Flag(2, 3)
	g.Flag(2, 4)
	g.Flag(4, 3)
	results := g.Chord(3, 3)
	require.Len(t, results, 5)
	for _, res := range results {
		assert.Equal(t, RevealOpened, res.Outcome)
	}
	for _, p := range []point{{2, 2}, {3, 2}, {3, 4}, {4, 2}, {4, 4}} {
		assert.True(t, g.IsVisible(p.row, p.col), "%v", p)
	}
	assert.Equal(t, InProgress, g.Status())
}

func TestChordOnWrongFlag(t *testing.T) {
	g := tinyFixture(t)
	require.Equal(t, 1, g.Reveal(4, 4).Code())
	require.True(t, g.Flag(3, 4))

	results := g.Chord(4, 4)
	require.Len(t, results, 2)
	assert.Equal(t, RevealResult{Outcome: RevealOpened, Count: 3}, results[0])
	assert.Equal(t, RevealExploded, results[1].Outcome)
	assert.True(t, g.IsExploded())
}

// closure computes the cells a reveal of (row, col) must open.
func closure(g *Game, row, col int) map[point]bool {
	seen := map[point]bool{}
	queue := []point{{row, col}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if seen[p] {
			continue
		}
		seen[p] = true
		if g.NeighborMineCount(p.row, p.col) != 0 {
			continue
		}
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				n := point{p.row + dr, p.col + dc}
				if g.board.IsValid(n.row, n.col) && !seen[n] {
					queue = append(queue, n)
				}
			}
		}
	}
	return seen
}

func TestFloodMatchesClosure(t *testing.T) {
	for seed := range int64(20) {
		g, err := NewCustom(seed, Custom, 14, 20, 35)
		require.NoError(t, err)

		start := point{-1, -1}
		for row := range g.Rows() {
			for col := range g.Cols() {
				if start.row < 0 && g.NeighborMineCount(row, col) == 0 {
					start = point{row, col}
				}
			}
		}
		if start.row < 0 {
			continue
		}

		want := closure(g, start.row, start.col)
		require.Equal(t, 0, g.Reveal(start.row, start.col).Code())
		assert.Equal(t, len(want), g.Revealed(), "seed %d", seed)
		for row := range g.Rows() {
			for col := range g.Cols() {
				assert.Equal(t, want[point{row, col}], g.IsVisible(row, col),
					"seed %d at (%d,%d)", seed, row, col)
				if g.IsVisible(row, col) {
					assert.False(t, g.HasMine(row, col))
				}
			}
		}
	}
}

func TestSolveByRevealingEverySafeCell(t *testing.T) {
	g, err := New(7, Easy)
	require.NoError(t, err)

	safe := g.Rows()*g.Cols() - g.MineTotal()
	for row := range g.Rows() {
		for col := range g.Cols() {
			if g.HasMine(row, col) || g.IsVisible(row, col) {
				continue
			}
			require.False(t, g.IsSolved())
			g.Reveal(row, col)
		}
	}
	assert.Equal(t, safe, g.Revealed())
	assert.True(t, g.IsSolved())
}

func TestLargeFlood(t *testing.T) {
	g, err := NewCustom(1, Custom, 300, 300, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Reveal(150, 150).Code())
	assert.Equal(t, 300*300, g.Revealed())
	assert.True(t, g.IsSolved())
}

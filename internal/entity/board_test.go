package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// place sets a cell directly, bypassing gravity.
func place(board *Board, player PlayerID, cells ...Cell) {
	for _, cell := range cells {
		board.cells[cell.Row*board.width+cell.Col] = player
	}
}

// fillWithoutRun fills a board in a pattern that never aligns four pieces:
// columns alternate in pairs and every row flips the pattern.
func fillWithoutRun(board *Board) {
	for row := 0; row < board.height; row++ {
		for col := 0; col < board.width; col++ {
			player := PlayerOne
			if (col/2+row)%2 == 1 {
				player = PlayerTwo
			}
			place(board, player, Cell{Row: row, Col: col})
		}
	}
}

func TestBoard_Drop(t *testing.T) {
	t.Run("Fills a column bottom-up", func(t *testing.T) {
		// Given: an empty 6x7 board
		board := NewBoard(DefaultHeight, DefaultWidth)

		for k := 1; k <= DefaultHeight; k++ {
			// When: the k-th piece is dropped into column 3
			row, ok := board.Drop(3, PlayerOne)

			// Then: it lands at row H-k
			require.True(t, ok)
			assert.Equal(t, DefaultHeight-k, row)
		}
	})

	t.Run("Full column is rejected and the board is unchanged", func(t *testing.T) {
		// Given: a board whose column 0 is full
		board := NewBoard(DefaultHeight, DefaultWidth)
		for i := 0; i < DefaultHeight; i++ {
			_, ok := board.Drop(0, PlayerTwo)
			require.True(t, ok)
		}
		before := board.Rows()

		// When: another piece is dropped into column 0
		row, ok := board.Drop(0, PlayerOne)

		// Then: nothing is placed
		assert.False(t, ok)
		assert.Equal(t, -1, row)
		assert.Equal(t, before, board.Rows())
	})

	t.Run("Out of range columns are rejected", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard(DefaultHeight, DefaultWidth)

		// When: pieces are dropped outside [0, width)
		_, okNegative := board.Drop(-1, PlayerOne)
		_, okTooLarge := board.Drop(DefaultWidth, PlayerOne)

		// Then: both drops fail and the board stays empty
		assert.False(t, okNegative)
		assert.False(t, okTooLarge)
		assert.Equal(t, NewBoard(DefaultHeight, DefaultWidth).Rows(), board.Rows())
	})
}

func TestBoard_Owner(t *testing.T) {
	board := NewBoard(DefaultHeight, DefaultWidth)
	place(board, PlayerTwo, Cell{Row: 5, Col: 6})

	assert.Equal(t, PlayerTwo, board.Owner(5, 6))
	assert.Equal(t, NoPlayer, board.Owner(0, 0))
	assert.Equal(t, NoPlayer, board.Owner(6, 0))
	assert.Equal(t, NoPlayer, board.Owner(0, -1))
}

func TestBoard_HasWin(t *testing.T) {
	t.Run("Vertical run from (2,0) downward", func(t *testing.T) {
		// Given: player one at (5,0),(4,0),(3,0),(2,0)
		board := NewBoard(DefaultHeight, DefaultWidth)
		place(board, PlayerOne, Cell{5, 0}, Cell{4, 0}, Cell{3, 0}, Cell{2, 0})

		// When: checking for a win
		run, ok := board.WinningRun(PlayerOne)

		// Then: the run starts at its top cell
		require.True(t, ok)
		assert.Equal(t, []Cell{{2, 0}, {3, 0}, {4, 0}, {5, 0}}, run)
		assert.False(t, board.HasWin(PlayerTwo))
	})

	t.Run("Horizontal run on the bottom row", func(t *testing.T) {
		// Given: player two owns row 5, columns 0 to 3
		board := NewBoard(DefaultHeight, DefaultWidth)
		place(board, PlayerTwo, Cell{5, 0}, Cell{5, 1}, Cell{5, 2}, Cell{5, 3})

		// When: checking for a win
		run, ok := board.WinningRun(PlayerTwo)

		// Then: the run starts at (5,0)
		require.True(t, ok)
		assert.Equal(t, Cell{5, 0}, run[0])
		assert.False(t, board.HasWin(PlayerOne))
	})

	t.Run("Down-right diagonal", func(t *testing.T) {
		board := NewBoard(DefaultHeight, DefaultWidth)
		place(board, PlayerOne, Cell{2, 1}, Cell{3, 2}, Cell{4, 3}, Cell{5, 4})

		run, ok := board.WinningRun(PlayerOne)

		require.True(t, ok)
		assert.Equal(t, []Cell{{2, 1}, {3, 2}, {4, 3}, {5, 4}}, run)
	})

	t.Run("Down-left diagonal", func(t *testing.T) {
		board := NewBoard(DefaultHeight, DefaultWidth)
		place(board, PlayerTwo, Cell{5, 0}, Cell{4, 1}, Cell{3, 2}, Cell{2, 3})

		run, ok := board.WinningRun(PlayerTwo)

		require.True(t, ok)
		assert.Equal(t, []Cell{{2, 3}, {3, 2}, {4, 1}, {5, 0}}, run)
	})

	t.Run("Three in a row is not a win", func(t *testing.T) {
		board := NewBoard(DefaultHeight, DefaultWidth)
		place(board, PlayerOne, Cell{5, 4}, Cell{5, 5}, Cell{5, 6})

		assert.False(t, board.HasWin(PlayerOne))
	})

	t.Run("Runs do not wrap around the board edge", func(t *testing.T) {
		// Given: two pieces at the end of row 4 and two at the start of row 5
		board := NewBoard(DefaultHeight, DefaultWidth)
		place(board, PlayerOne, Cell{4, 5}, Cell{4, 6}, Cell{5, 0}, Cell{5, 1})

		// Then: no run is reported
		assert.False(t, board.HasWin(PlayerOne))
	})

	t.Run("Empty board has no win for anybody", func(t *testing.T) {
		board := NewBoard(DefaultHeight, DefaultWidth)

		assert.False(t, board.HasWin(PlayerOne))
		assert.False(t, board.HasWin(PlayerTwo))
		assert.False(t, board.HasWin(NoPlayer))
		assert.False(t, board.IsFull())
	})

	t.Run("Boards too small for a run never win", func(t *testing.T) {
		board := NewBoard(3, 3)
		fillWithoutRun(board)
		place(board, PlayerOne, Cell{0, 0}, Cell{0, 1}, Cell{0, 2})

		assert.False(t, board.HasWin(PlayerOne))
	})
}

func TestBoard_IsFull(t *testing.T) {
	t.Run("Full board without a run is a tie board", func(t *testing.T) {
		// Given: a full 6x7 board with no four-in-a-row
		board := NewBoard(DefaultHeight, DefaultWidth)
		fillWithoutRun(board)

		// Then: it is full and nobody has won
		assert.True(t, board.IsFull())
		assert.False(t, board.HasWin(PlayerOne))
		assert.False(t, board.HasWin(PlayerTwo))
	})

	t.Run("A single empty cell keeps the board open", func(t *testing.T) {
		board := NewBoard(DefaultHeight, DefaultWidth)
		fillWithoutRun(board)
		place(board, NoPlayer, Cell{0, 6})

		assert.False(t, board.IsFull())
	})
}

func TestBoard_Rows(t *testing.T) {
	// Given: a board with one piece
	board := NewBoard(2, 3)
	place(board, PlayerTwo, Cell{1, 2})

	// When: the rows are copied and the copy is modified
	rows := board.Rows()
	rows[1][2] = PlayerOne

	// Then: the board itself is untouched
	assert.Equal(t, [][]PlayerID{{0, 0, 0}, {0, 0, 2}}, board.Rows())
}

package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, layout string) *Board {
	t.Helper()

	board, err := ParseBoard(layout)
	require.NoError(t, err)

	return board
}

func TestBoard_Place(t *testing.T) {
	t.Run("Places marker on an empty cell", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard()

		// When: X is placed in cell 5
		ok := board.Place(5, PlayerX)

		// Then: placement succeeds and only the center holds X
		require.True(t, ok)
		assert.Equal(t, PlayerX, board.At(CenterCell))
		assert.Equal(t, "____X____", board.String())
	})

	t.Run("Every empty cell accepts a marker", func(t *testing.T) {
		for cell := FirstCell; cell <= LastCell; cell++ {
			// Given: an empty board
			board := NewBoard()

			// When: O is placed in the cell
			ok := board.Place(cell, PlayerO)

			// Then: the cell holds exactly O
			require.True(t, ok, "cell %d", cell)
			assert.Equal(t, PlayerO, board.At(cell-1))
			assert.Len(t, board.EmptyCells(), BoardSize-1)
		}
	})

	t.Run("Occupied cell is rejected and board is unchanged", func(t *testing.T) {
		// Given: a board with X in cell 1
		board := mustParse(t, "X___O____")
		before := board.Cells()

		// When: O tries the same cell
		ok := board.Place(1, PlayerO)

		// Then: placement fails and nothing changed
		assert.False(t, ok)
		assert.Equal(t, before, board.Cells())
	})

	t.Run("Same marker on its own cell is rejected", func(t *testing.T) {
		// Given: a board with X in the center
		board := mustParse(t, "____X____")

		// When: X is placed in the center again
		ok := board.Place(5, PlayerX)

		// Then: placement fails
		assert.False(t, ok)
	})

	t.Run("Out of range cells are rejected", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard()

		// When: cells outside 1..9 are used
		// Then: nothing is placed
		assert.False(t, board.Place(0, PlayerX))
		assert.False(t, board.Place(10, PlayerX))
		assert.False(t, board.Place(-1, PlayerX))
		assert.Len(t, board.EmptyCells(), BoardSize)
	})

	t.Run("A cell never reverts to empty", func(t *testing.T) {
		// Given: a board with O in cell 9
		board := mustParse(t, "________O")

		// When: an empty marker is placed over it
		ok := board.Place(9, EmptyCell)

		// Then: the cell still holds O
		assert.False(t, ok)
		assert.Equal(t, PlayerO, board.At(8))
	})
}

func TestBoard_Evaluate(t *testing.T) {
	t.Run("Every win line is detected for both markers", func(t *testing.T) {
		for _, combo := range WinCombos {
			for _, marker := range []Marker{PlayerX, PlayerO} {
				// Given: a board where only the combo holds the marker
				board := NewBoard()
				for _, index := range combo {
					require.True(t, board.Place(index+1, marker))
				}

				// When: the board is evaluated
				outcome := board.Evaluate()

				// Then: the marker wins
				assert.Equal(t, marker, outcome.Winner(), "combo %v", combo)
				assert.True(t, outcome.IsTerminal())
			}
		}
	})

	t.Run("Top row of X wins", func(t *testing.T) {
		// Given: cells 1, 2 and 3 hold X
		board := mustParse(t, "XXX______")

		// When: the board is evaluated
		outcome := board.Evaluate()

		// Then: X wins
		assert.Equal(t, XWins, outcome)
	})

	t.Run("Full board without a line is a draw", func(t *testing.T) {
		// Given: a full board with no three in a row
		board := mustParse(t, "XOXXOOOXX")

		// When: the board is evaluated
		outcome := board.Evaluate()

		// Then: it is a draw
		assert.Equal(t, Draw, outcome)
		assert.Equal(t, EmptyCell, outcome.Winner())
	})

	t.Run("Alternating full board is judged by its diagonal", func(t *testing.T) {
		// Given: the layout XOXOXOXOX, whose diagonals hold X
		board := mustParse(t, "XOXOXOXOX")

		// When: the board is evaluated
		outcome := board.Evaluate()

		// Then: the first matching line decides
		assert.Equal(t, XWins, outcome)
	})

	t.Run("Open board without a line is in progress", func(t *testing.T) {
		// Given: an unfinished board
		board := mustParse(t, "XO__X___O")

		// When: the board is evaluated
		outcome := board.Evaluate()

		// Then: the match continues
		assert.Equal(t, InProgress, outcome)
		assert.False(t, outcome.IsTerminal())
	})

	t.Run("Center opening is in progress", func(t *testing.T) {
		// Given: an empty board
		board := NewBoard()
		require.True(t, board.Place(5, PlayerX))

		// When: the board is evaluated
		outcome := board.Evaluate()

		// Then: the match continues
		assert.Equal(t, InProgress, outcome)
	})

	t.Run("Evaluate has no side effects", func(t *testing.T) {
		// Given: a won board
		board := mustParse(t, "O__O__O__")
		before := board.Cells()

		// When: the board is evaluated many times
		for range 5 {
			assert.Equal(t, OWins, board.Evaluate())
		}

		// Then: the board is untouched
		assert.Equal(t, before, board.Cells())
	})
}

func TestBoard_EmptyCells(t *testing.T) {
	// Given: a partly filled board
	board := mustParse(t, "X_O_X_O_X")

	// When: listing empty cells
	empty := board.EmptyCells()

	// Then: the free 0-based indices are returned in order
	assert.Equal(t, []int{1, 3, 5, 7}, empty)
}

func TestParseBoard(t *testing.T) {
	t.Run("Rejects wrong length", func(t *testing.T) {
		_, err := ParseBoard("XXX")
		require.ErrorIs(t, err, ErrInvalidBoard)
	})

	t.Run("Rejects unknown glyph", func(t *testing.T) {
		_, err := ParseBoard("XXX___Z__")
		require.ErrorIs(t, err, ErrInvalidBoard)
		assert.Contains(t, err.Error(), "cell 7")
	})

	t.Run("Round trips through String", func(t *testing.T) {
		board := mustParse(t, "x.o- ___X")
		assert.Equal(t, "X_O_____X", board.String())
	})
}

func TestMarker(t *testing.T) {
	assert.Equal(t, "X", PlayerX.String())
	assert.Equal(t, "O", PlayerO.String())
	assert.Equal(t, " ", EmptyCell.String())
	assert.Equal(t, PlayerO, PlayerX.Opponent())
	assert.Equal(t, PlayerX, PlayerO.Opponent())
}

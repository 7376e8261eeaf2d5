package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) Board {
	t.Helper()

	board, err := ParseBoard(s)
	require.NoError(t, err)

	return board
}

func TestParseBoard(t *testing.T) {
	t.Run("Parses marks and round-trips through String", func(t *testing.T) {
		// Given: a textual board
		text := "XO.OX...."

		// When: parsing it
		board, err := ParseBoard(text)

		// Then: cells are mapped to players and String gives the same text back
		require.NoError(t, err)
		assert.Equal(t, Machine, board[0])
		assert.Equal(t, Human, board[1])
		assert.Equal(t, Nobody, board[2])
		assert.Equal(t, text, board.String())
	})

	t.Run("Rejects a wrong length", func(t *testing.T) {
		_, err := ParseBoard("XO")

		assert.ErrorIs(t, err, apperror.ErrInvalidBoard)
	})

	t.Run("Rejects unknown marks", func(t *testing.T) {
		_, err := ParseBoard("XO.?.....")

		assert.ErrorIs(t, err, apperror.ErrInvalidBoard)
	})
}

func TestBoard_EmptyCells(t *testing.T) {
	t.Run("Empty board", func(t *testing.T) {
		// Given: a new board
		board := Board{}

		// When: listing the empty cells
		cells := board.EmptyCells()

		// Then: every index is returned in ascending order
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, cells)
	})

	t.Run("Partially filled board", func(t *testing.T) {
		board := mustParse(t, "XO..X..O.")

		assert.Equal(t, []int{2, 3, 5, 6, 8}, board.EmptyCells())
	})

	t.Run("Full board", func(t *testing.T) {
		board := mustParse(t, "XOXXOOOXX")

		assert.Empty(t, board.EmptyCells())
		assert.True(t, board.IsFull())
	})
}

func TestBoard_ApplyMove(t *testing.T) {
	t.Run("Places the player", func(t *testing.T) {
		// Given: an empty board
		board := Board{}

		// When: the human plays the center
		err := board.ApplyMove(4, Human)

		// Then: the center belongs to the human
		require.NoError(t, err)
		assert.Equal(t, Human, board[4])
		assert.Equal(t, 1, board.MovesPlayed())
	})

	t.Run("Error on occupied cell", func(t *testing.T) {
		// Given: a board with the center taken
		board := mustParse(t, "....O....")

		// When: the machine tries the same cell
		err := board.ApplyMove(4, Machine)

		// Then: ErrInvalidMove is returned and the board is unchanged
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Equal(t, "....O....", board.String())
	})

	t.Run("Error on out of range cells", func(t *testing.T) {
		board := Board{}

		assert.ErrorIs(t, board.ApplyMove(-1, Human), apperror.ErrInvalidMove)
		assert.ErrorIs(t, board.ApplyMove(9, Human), apperror.ErrInvalidMove)
		assert.ErrorIs(t, board.ApplyMove(20, Machine), apperror.ErrInvalidMove)
		assert.Equal(t, Board{}, board)
	})

	t.Run("Error on Nobody", func(t *testing.T) {
		board := Board{}

		assert.ErrorIs(t, board.ApplyMove(0, Nobody), apperror.ErrInvalidMove)
	})

	t.Run("Empty cells shrink with every move", func(t *testing.T) {
		// Given: an empty board and an alternating sequence of moves
		board := Board{}
		moves := []int{4, 0, 8, 2, 1, 7, 6, 3, 5}
		player := Human

		for played, cell := range moves {
			// When: the next move is applied
			require.NoError(t, board.ApplyMove(cell, player))
			player = player.Opponent()

			// Then: the empty cells account for every move played
			assert.Len(t, board.EmptyCells(), BoardSize-(played+1))
			assert.LessOrEqual(t, board.Count(Human)-board.Count(Machine), 1)
			assert.GreaterOrEqual(t, board.Count(Human)-board.Count(Machine), 0)
		}
	})
}

func TestBoard_CheckWin(t *testing.T) {
	t.Run("Every line in the catalogue is detected", func(t *testing.T) {
		for i, combo := range WinCombos {
			// Given: a board where the machine owns exactly one line
			board := Board{}
			for _, cell := range combo {
				board[cell] = Machine
			}

			// When: checking for a machine win
			got, ok := board.CheckWin(Machine)

			// Then: that line's index is reported and the human has nothing
			require.True(t, ok)
			assert.Equal(t, i, got)

			_, ok = board.CheckWin(Human)
			assert.False(t, ok)
		}
	})

	t.Run("Lowest catalogue index wins when several lines are complete", func(t *testing.T) {
		// Given: the human owns the top row and the first column
		board := mustParse(t, "OOOOXXOXX")

		// When: checking for a human win
		got, ok := board.CheckWin(Human)

		// Then: the top row is reported
		require.True(t, ok)
		assert.Equal(t, 0, got)
	})

	t.Run("No line", func(t *testing.T) {
		board := mustParse(t, "XO..X..O.")

		_, ok := board.CheckWin(Human)
		assert.False(t, ok)

		_, ok = board.CheckWin(Machine)
		assert.False(t, ok)

		got, ok := board.CheckWin(Nobody)
		assert.False(t, ok)
		assert.Equal(t, NoCombo, got)
	})

	t.Run("Full board without a line is a tie", func(t *testing.T) {
		// Given: a fully occupied board where nobody has a line
		board := mustParse(t, "XOXXOOOXX")

		// Then: the board is full and neither player has won
		assert.True(t, board.IsFull())

		_, ok := board.CheckWin(Human)
		assert.False(t, ok)

		_, ok = board.CheckWin(Machine)
		assert.False(t, ok)

		assert.Equal(t, Outcome{Kind: Tie, Winner: Nobody, Combo: NoCombo}, board.Outcome())
	})
}

func TestBoard_Outcome(t *testing.T) {
	t.Run("Machine win", func(t *testing.T) {
		board := mustParse(t, "OO.XXX...")

		outcome := board.Outcome()

		assert.True(t, outcome.IsTerminal())
		assert.Equal(t, Outcome{Kind: Win, Winner: Machine, Combo: 1}, outcome)
	})

	t.Run("Human win on a diagonal", func(t *testing.T) {
		board := mustParse(t, "OX.XO...O")

		assert.Equal(t, Outcome{Kind: Win, Winner: Human, Combo: 6}, board.Outcome())
	})

	t.Run("Ongoing", func(t *testing.T) {
		board := mustParse(t, "OX.......")

		outcome := board.Outcome()

		assert.False(t, outcome.IsTerminal())
		assert.Equal(t, NonTerminal, outcome.Kind)
	})
}

func TestPlayer_Opponent(t *testing.T) {
	assert.Equal(t, Machine, Human.Opponent())
	assert.Equal(t, Human, Machine.Opponent())
	assert.Equal(t, Nobody, Nobody.Opponent())
}

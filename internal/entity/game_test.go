package entity

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	// When: a new game is created with the human moving first
	game := NewGame("123", Human)

	// Then: the game is ongoing on an empty board
	expectedGame := &Game{
		ID:          "123",
		Board:       Board{},
		Turn:        Human,
		Status:      StatusOngoing,
		Winner:      Nobody,
		WinCombo:    NoCombo,
		FirstPlayer: Human,
	}

	require.Equal(t, expectedGame, game)
}

func TestGameStatusMethods(t *testing.T) {
	t.Run("IsFinished returns true when game status is finished", func(t *testing.T) {
		game := &Game{Status: StatusFinished}

		assert.True(t, game.IsFinished())
		assert.False(t, game.IsOngoing())
	})

	t.Run("IsOngoing returns true when game status is ongoing", func(t *testing.T) {
		game := &Game{Status: StatusOngoing}

		assert.True(t, game.IsOngoing())
		assert.False(t, game.IsFinished())
	})

	t.Run("IsTie only for a finished game without a winner", func(t *testing.T) {
		assert.True(t, (&Game{Status: StatusFinished, Winner: Nobody}).IsTie())
		assert.False(t, (&Game{Status: StatusFinished, Winner: Machine}).IsTie())
		assert.False(t, (&Game{Status: StatusOngoing, Winner: Nobody}).IsTie())
	})
}

func TestGame_ConfirmOngoingState(t *testing.T) {
	t.Run("Returns nil when game is ongoing", func(t *testing.T) {
		game := &Game{Status: StatusOngoing}

		assert.NoError(t, game.ConfirmOngoingState())
	})

	t.Run("Returns ErrGameFinished when game is finished", func(t *testing.T) {
		game := &Game{Status: StatusFinished}

		assert.ErrorIs(t, game.ConfirmOngoingState(), apperror.ErrGameFinished)
	})

	t.Run("Returns error for unknown game status", func(t *testing.T) {
		// Given: a game with unknown status
		game := &Game{Status: "unknown"}

		// When: checking if the game is active
		err := game.ConfirmOngoingState()

		// Then: it should return an error
		require.ErrorIs(t, err, ErrUnknownGameStatus)
		assert.Contains(t, err.Error(), "unknown")
	})
}

func TestGame_WinningCells(t *testing.T) {
	t.Run("Returns the cells of the completed line", func(t *testing.T) {
		game := &Game{Status: StatusFinished, Winner: Machine, WinCombo: 7}

		assert.Equal(t, []int{2, 4, 6}, game.WinningCells())
	})

	t.Run("Returns nil without a line", func(t *testing.T) {
		game := NewGame("123", Machine)

		assert.Nil(t, game.WinningCells())
	})
}

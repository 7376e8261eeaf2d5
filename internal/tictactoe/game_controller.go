package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// MakeTurn - applies player's move to the game and settles its status.
func MakeTurn(gameInstance *entity.Game, player entity.Player, cell int) error {
	if err := gameInstance.ConfirmOngoingState(); err != nil {
		return err
	}

	if gameInstance.Turn != player {
		return apperror.ErrNotYourTurn
	}

	if err := gameInstance.Board.ApplyMove(cell, player); err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	updateGameStatus(gameInstance)

	return nil
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(gameInstance *entity.Game) {
	outcome := gameInstance.Board.Outcome()

	switch outcome.Kind {
	case entity.Win:
		gameInstance.Winner = outcome.Winner
		gameInstance.WinCombo = outcome.Combo
		gameInstance.Status = entity.StatusFinished
	case entity.Tie:
		gameInstance.Winner = entity.Nobody
		gameInstance.WinCombo = entity.NoCombo
		gameInstance.Status = entity.StatusFinished
	default:
		gameInstance.Turn = gameInstance.Turn.Opponent()
	}
}

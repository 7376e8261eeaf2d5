package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game is one human-versus-machine session. Each session owns its board.
type Game struct {
	ID          string `json:"id"`
	Board       Board  `json:"board"`
	Turn        Player `json:"turn"`
	Status      string `json:"status"`
	Winner      Player `json:"winner"`
	WinCombo    int    `json:"win_combo"`
	FirstPlayer Player `json:"first_player"`
}

func NewGame(id string, first Player) *Game {
	return &Game{
		ID:          id,
		Board:       Board{},
		Turn:        first,
		Status:      StatusOngoing,
		Winner:      Nobody,
		WinCombo:    NoCombo,
		FirstPlayer: first,
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsTie() bool {
	return that.IsFinished() && that.Winner == Nobody
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

// WinningCells - cells of the completed line, nil when nobody has won.
func (that *Game) WinningCells() []int {
	if that.WinCombo < 0 || that.WinCombo >= len(WinCombos) {
		return nil
	}

	combo := WinCombos[that.WinCombo]
	return combo[:]
}

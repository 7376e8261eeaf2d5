package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

var ErrBotNotOnTurn = errors.New("it's not the bot's turn")

type BotService interface {
	MakeTurn(ctx context.Context, game *entity.Game) error
}

type searchEngine interface {
	BestMove(ctx context.Context, board entity.Board) (minimax.Result, error)
}

type botService struct {
	logger *slog.Logger
	engine searchEngine
}

func NewBotService(logger *slog.Logger, engine searchEngine) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
		engine: engine,
	}
}

// MakeTurn - plays the machine's optimal move on the game.
func (that *botService) MakeTurn(ctx context.Context, game *entity.Game) error {
	log := that.logger.With("method", "MakeTurn", "gameID", game.ID)

	if err := game.ConfirmOngoingState(); err != nil {
		return fmt.Errorf("bot can't move: %w", err)
	}

	if game.Turn != entity.Machine {
		return ErrBotNotOnTurn
	}

	result, err := that.engine.BestMove(ctx, game.Board)
	if err != nil {
		return fmt.Errorf("failed to find best move: %w", err)
	}

	if err = tictactoe.MakeTurn(game, entity.Machine, result.Move); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	log.Debug("bot made turn", "cell", result.Move, "score", result.Score, "nodes", result.Nodes)

	return nil
}

package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type botService interface {
	MakeTurn(ctx context.Context, game *entity.Game) error
}

// GameManager drives human-versus-machine games: the human moves, then the machine answers.
type GameManager struct {
	logger *slog.Logger

	gameRepo   gameRepo
	botService botService
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, botService botService) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameRepo:   gameRepo,
		botService: botService,
	}
}

// NewGame - starts a game. When the machine goes first it has already moved in the returned game.
func (that *GameManager) NewGame(ctx context.Context, machineFirst bool) (*entity.Game, error) {
	first := entity.Human
	if machineFirst {
		first = entity.Machine
	}

	game := entity.NewGame(uuid.NewString(), first)
	log := that.logger.With("method", "NewGame", "gameID", game.ID)

	if machineFirst {
		if err := that.botService.MakeTurn(ctx, game); err != nil {
			return nil, fmt.Errorf("bot failed to make first turn: %w", err)
		}
	}

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed create game: %w", err)
	}

	log.Info("game created", "first", first.String(), "board", game.Board.String())

	return game, nil
}

// MakeTurn - plays the human's cell and the machine's reply. Finished games are removed from the store.
func (that *GameManager) MakeTurn(ctx context.Context, gameID string, cell int) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", gameID, "cell", cell)

	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed get game by id: %w", err)
	}

	if err = tictactoe.MakeTurn(game, entity.Human, cell); err != nil {
		log.Info("turn rejected", "error", err)
		return nil, fmt.Errorf("failed make turn: %w", err)
	}

	if game.IsOngoing() {
		if err = that.botService.MakeTurn(ctx, game); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	if game.IsFinished() {
		that.deleteGame(ctx, game)

		log.Info("game finished", "winner", game.Winner.String(), "board", game.Board.String())

		return game, nil
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed update game: %w", err)
	}

	log.Debug("turn played", "status", game.Status, "board", game.Board.String())

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed get game by id: %w", err)
	}

	return game, nil
}

func (that *GameManager) DeleteGame(ctx context.Context, gameID string) error {
	if err := that.gameRepo.DeleteByID(ctx, gameID); err != nil {
		return fmt.Errorf("failed delete game: %w", err)
	}

	return nil
}

func (that *GameManager) deleteGame(ctx context.Context, game *entity.Game) {
	if err := that.gameRepo.DeleteByID(ctx, game.ID); err != nil {
		that.logger.Error("failed to delete game", "gameID", game.ID, "error", err)
	}
}

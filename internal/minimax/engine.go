package minimax

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// Result is a scored move plus the number of positions visited to find it.
type Result struct {
	ScoredMove
	Nodes uint64
}

type Engine struct {
	logger   *slog.Logger
	parallel bool
}

type Option func(*Engine)

// WithParallel - evaluates every root move in its own goroutine.
func WithParallel(enabled bool) Option {
	return func(engine *Engine) {
		engine.parallel = enabled
	}
}

func NewEngine(logger *slog.Logger, opts ...Option) *Engine {
	engine := &Engine{
		logger: logger.With("component", "minimax"),
	}

	for _, opt := range opts {
		opt(engine)
	}

	return engine
}

// BestMove - searches for the machine's optimal move.
func (that *Engine) BestMove(ctx context.Context, board entity.Board) (Result, error) {
	result, err := that.Search(ctx, board, entity.Machine)
	if err != nil {
		return result, err
	}

	if result.Move == NoMove {
		return result, fmt.Errorf("%w: position is already decided", apperror.ErrEmptyState)
	}

	return result, nil
}

// Search - evaluates board for toMove. Parallel and sequential modes pick the same move.
func (that *Engine) Search(ctx context.Context, board entity.Board, toMove entity.Player) (Result, error) {
	log := that.logger.With("method", "Search")

	if err := ctx.Err(); err != nil {
		return Result{ScoredMove: ScoredMove{Move: NoMove}}, fmt.Errorf("search canceled: %w", err)
	}

	if err := validate(&board, toMove); err != nil {
		return Result{ScoredMove: ScoredMove{Move: NoMove}}, err
	}

	var (
		nodes atomic.Uint64
		best  ScoredMove
		err   error
	)

	start := time.Now()

	if that.parallel {
		best, err = searchParallel(ctx, board, toMove, &nodes)
		if err != nil {
			return Result{ScoredMove: ScoredMove{Move: NoMove}}, err
		}
	} else {
		best = search(board, toMove, &nodes)
	}

	log.Debug("search finished",
		"board", board.String(),
		"player", toMove.String(),
		"move", best.Move,
		"score", best.Score,
		"nodes", nodes.Load(),
		"parallel", that.parallel,
		"elapsed", time.Since(start),
	)

	return Result{ScoredMove: best, Nodes: nodes.Load()}, nil
}

// searchParallel - fans the root moves out, each worker gets its own copy of the board.
func searchParallel(ctx context.Context, board entity.Board, toMove entity.Player, nodes *atomic.Uint64) (ScoredMove, error) {
	nodes.Add(1)

	if score, ok := leafScore(&board); ok {
		return ScoredMove{Move: NoMove, Score: score}, nil
	}

	cells := board.EmptyCells()
	moves := make([]ScoredMove, len(cells))

	group, groupCtx := errgroup.WithContext(ctx)
	for i, cell := range cells {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			child := board
			child[cell] = toMove

			result := search(child, toMove.Opponent(), nodes)
			moves[i] = ScoredMove{Move: cell, Score: result.Score, Depth: result.Depth + 1}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return ScoredMove{Move: NoMove}, fmt.Errorf("parallel search: %w", err)
	}

	return selectMove(toMove, moves), nil
}

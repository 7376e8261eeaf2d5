package minimax

import (
	"fmt"
	"sync/atomic"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

// Leaf scores, always from the machine's side.
const (
	HumanWinScore   = -10
	MachineWinScore = 20
	TieScore        = 0
)

// NoMove - Move of a ScoredMove produced by a terminal position.
const NoMove = -1

// ScoredMove is the result of evaluating a position.
// Depth is the number of plies between the position and the terminal leaf the score comes from.
type ScoredMove struct {
	Move  int `json:"move"`
	Score int `json:"score"`
	Depth int `json:"depth"`
}

// Minimax - exhaustively evaluates board with toMove to play.
// The machine maximises, the human minimises. Among equal scores the mover wins as early
// and loses as late as possible, otherwise the lowest cell wins.
func Minimax(board entity.Board, toMove entity.Player) (ScoredMove, error) {
	if err := validate(&board, toMove); err != nil {
		return ScoredMove{Move: NoMove}, err
	}

	return search(board, toMove, nil), nil
}

// BestMove - returns the machine's optimal cell.
func BestMove(board entity.Board) (int, error) {
	best, err := Minimax(board, entity.Machine)
	if err != nil {
		return NoMove, err
	}

	if best.Move == NoMove {
		return NoMove, fmt.Errorf("%w: position is already decided", apperror.ErrEmptyState)
	}

	return best.Move, nil
}

func validate(board *entity.Board, toMove entity.Player) error {
	if toMove != entity.Human && toMove != entity.Machine {
		return fmt.Errorf("%w: unknown player %d", apperror.ErrInvalidMove, toMove)
	}

	if board.IsFull() {
		return fmt.Errorf("%w: board is full", apperror.ErrEmptyState)
	}

	return nil
}

// leafScore - reports the score of a terminal position.
func leafScore(board *entity.Board) (int, bool) {
	if _, ok := board.CheckWin(entity.Human); ok {
		return HumanWinScore, true
	}

	if _, ok := board.CheckWin(entity.Machine); ok {
		return MachineWinScore, true
	}

	if board.IsFull() {
		return TieScore, true
	}

	return 0, false
}

// search works on its own copy of board, so sibling branches never see each other's moves.
func search(board entity.Board, toMove entity.Player, nodes *atomic.Uint64) ScoredMove {
	if nodes != nil {
		nodes.Add(1)
	}

	if score, ok := leafScore(&board); ok {
		return ScoredMove{Move: NoMove, Score: score}
	}

	cells := board.EmptyCells()
	moves := make([]ScoredMove, 0, len(cells))

	for _, cell := range cells {
		child := board
		child[cell] = toMove

		result := search(child, toMove.Opponent(), nodes)
		moves = append(moves, ScoredMove{Move: cell, Score: result.Score, Depth: result.Depth + 1})
	}

	return selectMove(toMove, moves)
}

// selectMove - scans moves in order and keeps the first one nothing later beats.
func selectMove(toMove entity.Player, moves []ScoredMove) ScoredMove {
	best := ScoredMove{Move: NoMove}
	for i, move := range moves {
		if i == 0 || prefer(toMove, move, best) {
			best = move
		}
	}
	return best
}

func prefer(toMove entity.Player, candidate, best ScoredMove) bool {
	if candidate.Score != best.Score {
		if toMove == entity.Machine {
			return candidate.Score > best.Score
		}
		return candidate.Score < best.Score
	}

	switch gain(toMove, candidate.Score) {
	case 1:
		return candidate.Depth < best.Depth
	case -1:
		return candidate.Depth > best.Depth
	default:
		return false
	}
}

// gain - 1 if score is a win for toMove, -1 if it is a loss, 0 for a tie.
func gain(toMove entity.Player, score int) int {
	switch {
	case score == TieScore:
		return 0
	case (score > TieScore) == (toMove == entity.Machine):
		return 1
	default:
		return -1
	}
}

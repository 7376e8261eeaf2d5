package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

const BoardSize = 9

// NoCombo - WinCombo index reported when no line is complete.
const NoCombo = -1

// WinCombos - rows, then columns, then diagonals. CheckWin reports the first match in this order.
var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is a 3x3 grid in row-major order.
type Board [BoardSize]Player

type OutcomeKind uint8

const (
	NonTerminal OutcomeKind = iota
	Win
	Tie
)

// Outcome describes whether a position is over and who took it.
type Outcome struct {
	Kind   OutcomeKind
	Winner Player
	Combo  int
}

// ParseBoard - reads a 9 character board, O for the human, X for the machine and . for an empty cell.
func ParseBoard(s string) (Board, error) {
	var board Board

	if len(s) != BoardSize {
		return board, fmt.Errorf("%w: want %d cells, got %d", apperror.ErrInvalidBoard, BoardSize, len(s))
	}

	for i, r := range s {
		switch r {
		case HumanMark:
			board[i] = Human
		case MachineMark:
			board[i] = Machine
		case EmptyMark:
			board[i] = Nobody
		default:
			return Board{}, fmt.Errorf("%w: unexpected %q at %d", apperror.ErrInvalidBoard, r, i)
		}
	}

	return board, nil
}

func (that Board) String() string {
	var sb strings.Builder
	for _, cell := range that {
		sb.WriteRune(cell.Mark())
	}
	return sb.String()
}

// EmptyCells - returns the free cells in ascending order.
func (that *Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == Nobody {
			cells = append(cells, i)
		}
	}
	return cells
}

// ApplyMove - places player on cell. The board is left untouched on error.
func (that *Board) ApplyMove(cell int, player Player) error {
	if cell < 0 || cell >= BoardSize {
		return fmt.Errorf("%w: cell %d is out of range", apperror.ErrInvalidMove, cell)
	}

	if player != Human && player != Machine {
		return fmt.Errorf("%w: unknown player %d", apperror.ErrInvalidMove, player)
	}

	if that[cell] != Nobody {
		return fmt.Errorf("%w: cell %d is already occupied", apperror.ErrInvalidMove, cell)
	}

	that[cell] = player

	return nil
}

// CheckWin - returns the index of the first line in WinCombos owned by player.
func (that *Board) CheckWin(player Player) (int, bool) {
	if player == Nobody {
		return NoCombo, false
	}

	for i, combo := range WinCombos {
		if that[combo[0]] == player && that[combo[1]] == player && that[combo[2]] == player {
			return i, true
		}
	}

	return NoCombo, false
}

func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell == Nobody {
			return false
		}
	}
	return true
}

func (that *Board) Count(player Player) int {
	n := 0
	for _, cell := range that {
		if cell == player {
			n++
		}
	}
	return n
}

func (that *Board) MovesPlayed() int {
	return BoardSize - that.Count(Nobody)
}

// Outcome - checks the human first, then the machine, then a full board.
func (that *Board) Outcome() Outcome {
	for _, player := range [...]Player{Human, Machine} {
		if combo, ok := that.CheckWin(player); ok {
			return Outcome{Kind: Win, Winner: player, Combo: combo}
		}
	}

	if that.IsFull() {
		return Outcome{Kind: Tie, Winner: Nobody, Combo: NoCombo}
	}

	return Outcome{Kind: NonTerminal, Winner: Nobody, Combo: NoCombo}
}

func (that Outcome) IsTerminal() bool {
	return that.Kind != NonTerminal
}

package entity

// Player is the owner of a cell. Nobody marks an empty cell.
type Player uint8

const (
	Nobody Player = iota
	Human
	Machine
)

const (
	HumanMark   = 'O'
	MachineMark = 'X'
	EmptyMark   = '.'
)

// Opponent - returns the other side, Nobody stays Nobody.
func (that Player) Opponent() Player {
	switch that {
	case Human:
		return Machine
	case Machine:
		return Human
	default:
		return Nobody
	}
}

func (that Player) String() string {
	switch that {
	case Human:
		return "human"
	case Machine:
		return "machine"
	default:
		return "nobody"
	}
}

// Mark - textual symbol used by ParseBoard and Board.String.
func (that Player) Mark() rune {
	switch that {
	case Human:
		return HumanMark
	case Machine:
		return MachineMark
	default:
		return EmptyMark
	}
}

package apperror

import "errors"

var (
	ErrGameFinished = errors.New("game is already finished")
	ErrNotYourTurn  = errors.New("it's not your turn")
	ErrInvalidMove  = errors.New("invalid move")
	ErrInvalidBoard = errors.New("invalid board")

	// ErrEmptyState is returned when the search is asked for a move on a board that has none left.
	ErrEmptyState = errors.New("no moves left to search")
)

package game

import (
	"errors"
	"fmt"
)

// ErrIllegalMove is matched by every error PlacePiece returns.
var ErrIllegalMove = errors.New("illegal move")

type IllegalReason int

const (
	OutOfRange IllegalReason = iota + 1
	Occupied
	GameOver
)

func (r IllegalReason) String() string {
	switch r {
	case OutOfRange:
		return "out of range"
	case Occupied:
		return "cell is occupied"
	case GameOver:
		return "game is over"
	default:
		return "unknown reason"
	}
}

type IllegalMoveError struct {
	Point  Point
	Reason IllegalReason
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move at (%d, %d): %s", e.Point.X, e.Point.Y, e.Reason)
}

func (e *IllegalMoveError) Is(target error) bool {
	return target == ErrIllegalMove
}

type UnknownPointError struct {
	s string
}

func NewUnknownPointError(s string) error {
	return &UnknownPointError{s: s}
}

func (e *UnknownPointError) Error() string {
	return fmt.Sprintf("point %q is unknown", e.s)
}

type UnknownPlayerError struct {
	s string
}

func (e *UnknownPlayerError) Error() string {
	return fmt.Sprintf("player %q is unknown", e.s)
}

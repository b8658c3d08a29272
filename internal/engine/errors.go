package engine

import (
	"errors"
	"fmt"
)

// ErrInactiveSession is returned when a turn is submitted to a finished battle.
var ErrInactiveSession = errors.New("battle is not active")

// InvalidMoveError reports a move ID that is not in the acting side's move list.
type InvalidMoveError struct {
	Side      Side
	Character string
	MoveID    string
}

func (e *InvalidMoveError) Error() string {
	return fmt.Sprintf("move %q is not known by %s (%s)", e.MoveID, e.Character, e.Side)
}

// InvalidStatError reports a zero or negative stat reaching the damage formula.
type InvalidStatError struct {
	Stat  string
	Value float64
}

func (e *InvalidStatError) Error() string {
	return fmt.Sprintf("invalid %s stat %.2f: must be positive", e.Stat, e.Value)
}

// UnknownEffectError is returned by ParseEffect for tags outside the known set.
type UnknownEffectError struct {
	Tag string
}

func (e *UnknownEffectError) Error() string {
	return fmt.Sprintf("unknown move effect %q", e.Tag)
}

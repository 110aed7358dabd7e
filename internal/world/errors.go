package world

import "errors"

var (
	// ErrInvalidOperation is returned when an apply step runs without a valid check.
	ErrInvalidOperation = errors.New("world: invalid operation")

	// ErrInvalidArgument covers malformed snapshots and config input.
	ErrInvalidArgument = errors.New("world: invalid argument")
)

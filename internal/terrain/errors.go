package terrain

import "errors"

var (
	// ErrOutOfRange is returned when a local coordinate falls outside [0, ChunkSize).
	ErrOutOfRange = errors.New("terrain: coordinate out of range")

	// ErrInvalidArgument covers malformed constructor input such as a wrong tile count.
	ErrInvalidArgument = errors.New("terrain: invalid argument")

	// ErrInvalidOperation signals misuse: generating twice, querying a state that does not exist yet.
	ErrInvalidOperation = errors.New("terrain: invalid operation")
)

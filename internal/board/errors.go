package board

import "errors"

// Error taxonomy for channel operations. Backend failures are not part of
// it: errors returned by a backend primitive propagate unchanged, wrapped
// only with channel context.
var (
	// ErrUnknownChannel indicates a kind/index pair with no active channel.
	ErrUnknownChannel = errors.New("board: unknown channel")

	// ErrInvalidConfig indicates a malformed or out-of-domain configuration value.
	ErrInvalidConfig = errors.New("board: invalid configuration value")

	// ErrInvalidColor indicates a colour input that could not be understood.
	ErrInvalidColor = errors.New("board: invalid colour")
)

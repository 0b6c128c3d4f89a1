package dec

import "errors"

var (
	// ErrInvalidDimensions is wrapped by panics for grids with fewer than one face
	// along an axis.
	ErrInvalidDimensions = errors.New("dec: grid dimensions must be > 0")

	// ErrShapeMismatch is wrapped by panics when a form was not sized for the grid
	// an operator runs on.
	ErrShapeMismatch = errors.New("dec: form shape does not match grid")

	// ErrIndexOutOfRange is wrapped by panics on out-of-bounds array access.
	ErrIndexOutOfRange = errors.New("dec: index out of range")

	// ErrNotImplemented is returned by operations that are declared but have no
	// defined behavior yet.
	ErrNotImplemented = errors.New("dec: operation not implemented")
)

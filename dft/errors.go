package dft

import "errors"

// Sentinel errors returned by transform operations.
var (
	// ErrInvalidShape is returned when a shape has an unsupported number of
	// dimensions (valid: 1, 2 or 3) or a non-positive extent.
	ErrInvalidShape = errors.New("dft: invalid shape")

	// ErrLengthMismatch is returned when the flattened data length does not
	// match the product of the shape extents.
	ErrLengthMismatch = errors.New("dft: data length does not match shape")
)

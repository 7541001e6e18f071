// Package symmetry operations and sentinel errors.
package symmetry

import "errors"

// Sentinel errors for the symmetry package.
var (
	// ErrUnknownOperation indicates an operation outside the enum.
	ErrUnknownOperation = errors.New("symmetry: unknown operation")
	// ErrLocationMode indicates a location that does not belong to the
	// requested grid mode (e.g. a cardinal point looked up in the diagonal
	// table).
	ErrLocationMode = errors.New("symmetry: location outside the requested grid mode")
)

// Operation is one of the five supported symmetry operations.
type Operation int

const (
	// Rotate90CCW rotates one quarter turn counterclockwise.
	Rotate90CCW Operation = iota
	// Rotate180 rotates a half turn.
	Rotate180
	// Rotate270CCW rotates three quarter turns counterclockwise.
	Rotate270CCW
	// MirrorVertical mirrors across the vertical axis (east↔west).
	MirrorVertical
	// FlipHorizontal flips across the horizontal axis (north↔south).
	FlipHorizontal
)

var operationNames = [...]string{"rotate_90_ccw", "rotate_180", "rotate_270_ccw", "mirror_vertical", "flip_horizontal"}

// String returns the snake_case operation name.
func (op Operation) String() string {
	if op < 0 || int(op) >= len(operationNames) {
		return "invalid"
	}
	return operationNames[op]
}

// Operations lists every supported operation in declaration order.
func Operations() []Operation {
	return []Operation{Rotate90CCW, Rotate180, Rotate270CCW, MirrorVertical, FlipHorizontal}
}

// symmetry.go - table lookups over locations, positions and motion types.

package symmetry

import (
	"fmt"

	"github.com/oktograph/oktograph/motion"
)

// TransformLocation returns the image of loc under op within the given grid
// mode. A location outside the mode's four canonical members returns
// ErrLocationMode; an operation outside the enum returns ErrUnknownOperation.
func TransformLocation(loc motion.GridLocation, op Operation, mode motion.GridMode) (motion.GridLocation, error) {
	ops, ok := locationTables[mode]
	if !ok {
		return 0, fmt.Errorf("TransformLocation(%v,%v,%v): %w", loc, op, mode, ErrUnknownOperation)
	}
	table, ok := ops[op]
	if !ok {
		return 0, fmt.Errorf("TransformLocation(%v,%v,%v): %w", loc, op, mode, ErrUnknownOperation)
	}
	out, ok := table[loc]
	if !ok {
		return 0, fmt.Errorf("TransformLocation(%v,%v,%v): %w", loc, op, mode, ErrLocationMode)
	}
	return out, nil
}

// TransformPosition applies op to both tracks' locations of the named
// position and resolves the result to its canonical name. The grid mode is
// inferred from the position's own locations.
func TransformPosition(pos motion.GridPosition, op Operation) (motion.GridPosition, error) {
	a, b, err := motion.Locations(pos)
	if err != nil {
		return "", fmt.Errorf("TransformPosition(%q,%v): %w", pos, op, err)
	}
	mode := a.Mode()
	ta, err := TransformLocation(a, op, mode)
	if err != nil {
		return "", fmt.Errorf("TransformPosition(%q,%v): %w", pos, op, err)
	}
	tb, err := TransformLocation(b, op, mode)
	if err != nil {
		return "", fmt.Errorf("TransformPosition(%q,%v): %w", pos, op, err)
	}
	out, err := motion.PositionOf(ta, tb)
	if err != nil {
		return "", fmt.Errorf("TransformPosition(%q,%v): %w", pos, op, err)
	}
	return out, nil
}

// InvertMotionType swaps Pro↔Anti and fixes every other motion type. An
// out-of-enum value is returned unchanged; it is the caller's bug and will
// surface in validation.
func InvertMotionType(t motion.MotionType) motion.MotionType {
	if inv, ok := motionInversion[t]; ok {
		return inv
	}
	return t
}

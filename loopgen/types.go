// Package loopgen executor registry, slice sizes, and sentinel errors.
package loopgen

import (
	"errors"
	"fmt"

	"github.com/oktograph/oktograph/symmetry"
)

// Sentinel errors for the loopgen package.
var (
	// ErrPositionPair indicates an input sequence that is not a closed loop
	// under the requested executor's symmetric relation. Expected and
	// frequent: callers searching across executors branch on it.
	ErrPositionPair = errors.New("loopgen: invalid position pair for this transform class")
	// ErrTooShort indicates an input without at least the starting-position
	// beat and one authored beat.
	ErrTooShort = errors.New("loopgen: sequence needs a starting position and at least one authored beat")
	// ErrUnsupportedSlice indicates a slice size the executor does not
	// implement yet.
	ErrUnsupportedSlice = errors.New("loopgen: unsupported slice size")
	// ErrUnknownExecutor indicates a name outside the registry.
	ErrUnknownExecutor = errors.New("loopgen: unknown executor")
	// ErrClosureBroken indicates the generated half failed to land on the
	// original start position. This is an internal assertion: with correct
	// symmetry tables it cannot fire.
	ErrClosureBroken = errors.New("loopgen: generated sequence does not close the loop")
)

// SliceSize parameterizes how much of the target length the input already
// represents.
type SliceSize int

const (
	// SliceHalved means the input is exactly the first half; generation
	// produces exactly the other half.
	SliceHalved SliceSize = iota
	// SliceQuartered is declared as an extension point. It is rejected with
	// ErrUnsupportedSlice until a confirmed beat-count rule exists; any
	// future implementation must satisfy the same continuity and closure
	// invariants.
	SliceQuartered
)

// String returns "halved" or "quartered".
func (s SliceSize) String() string {
	if s == SliceHalved {
		return "halved"
	}
	return "quartered"
}

// Executor embodies exactly one symmetry class. The zero value is not
// usable; take executors from the package registry. State is entirely local
// to one ExecuteLOOP invocation.
type Executor struct {
	name     string
	op       symmetry.Operation
	hasOp    bool
	swapped  bool
	inverted bool
}

// Name returns the executor's registry name.
func (e Executor) Name() string { return e.name }

// The executor registry: one value per symmetry class. Every class is an
// involution on positions, the shape a halved slice needs to close.
var (
	// Rotated completes the loop with the 180° rotation image.
	Rotated = Executor{name: "rotated", op: symmetry.Rotate180, hasOp: true}
	// Mirrored completes the loop with the vertical-mirror image.
	Mirrored = Executor{name: "mirrored", op: symmetry.MirrorVertical, hasOp: true}
	// Flipped completes the loop with the horizontal-flip image.
	Flipped = Executor{name: "flipped", op: symmetry.FlipHorizontal, hasOp: true}
	// Swapped completes the loop with the tracks exchanging roles.
	Swapped = Executor{name: "swapped", swapped: true}
	// SwappedInverted exchanges tracks and inverts Pro↔Anti.
	SwappedInverted = Executor{name: "swapped_inverted", swapped: true, inverted: true}
	// MirroredInverted mirrors vertically and inverts Pro↔Anti.
	MirroredInverted = Executor{name: "mirrored_inverted", op: symmetry.MirrorVertical, hasOp: true, inverted: true}
)

// Executors lists the whole family in deterministic order.
func Executors() []Executor {
	return []Executor{Rotated, Mirrored, Flipped, Swapped, SwappedInverted, MirroredInverted}
}

// ExecutorFor looks an executor up by registry name.
func ExecutorFor(name string) (Executor, error) {
	for _, e := range Executors() {
		if e.name == name {
			return e, nil
		}
	}
	return Executor{}, fmt.Errorf("ExecutorFor(%q): %w", name, ErrUnknownExecutor)
}

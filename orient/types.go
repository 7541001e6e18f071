// Package orient options and sentinel errors.
package orient

import "errors"

// Sentinel errors for the orient package.
var (
	// ErrInvalidTurns indicates a negative or non-half-integer turn count.
	ErrInvalidTurns = errors.New("orient: turns must be a non-negative half-integer or the float marker")
	// ErrMissingPreFloat indicates a Float motion without pre-float context
	// under the FloatStrict policy.
	ErrMissingPreFloat = errors.New("orient: float motion carries no pre-float context")
	// ErrUnknownMotionType indicates a motion type outside the enum.
	ErrUnknownMotionType = errors.New("orient: unknown motion type")
)

// FloatPolicy resolves a Float motion whose pre-float context fields are
// absent. The correct behavior is not determined by upstream material, so it
// is an explicit, pluggable choice rather than an inferred default.
type FloatPolicy int

const (
	// FloatStrict rejects context-free float motions with ErrMissingPreFloat.
	FloatStrict FloatPolicy = iota
	// FloatIdentity passes the start orientation through unchanged.
	FloatIdentity
)

// Options configures the orientation calculus.
//
// Fields:
//   - Float — policy for Float motions without pre-float context.
type Options struct {
	Float FloatPolicy
}

// DefaultOptions returns the default configuration: FloatStrict.
func DefaultOptions() Options {
	return Options{Float: FloatStrict}
}

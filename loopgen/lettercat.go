// lettercat.go - beat categories and the direction-override table.
//
// Special-cased rotation-direction logic is modeled as a small table
// mapping category → override function, consulted before falling back to
// the generic carry-through rule. Special cases stay enumerable and
// independently testable instead of being scattered across branches.

package loopgen

import "github.com/oktograph/oktograph/motion"

// BeatCategory buckets a beat by its pair of motion types — the enumerable
// stand-in for the letter categories upstream notation assigns.
type BeatCategory int

const (
	// CategoryDualShift — both tracks on a shift type (Pro/Anti/Float).
	CategoryDualShift BeatCategory = iota
	// CategoryMixed — one shift track, one Dash or Static track.
	CategoryMixed
	// CategoryDualDash — both tracks on Dash.
	CategoryDualDash
	// CategoryDualStatic — both tracks on Static.
	CategoryDualStatic
)

// CategoryOf derives the category from a beat's two motion types.
func CategoryOf(a, b motion.MotionType) BeatCategory {
	switch {
	case a == motion.Static && b == motion.Static:
		return CategoryDualStatic
	case a == motion.Dash && b == motion.Dash:
		return CategoryDualDash
	case a.Shift() && b.Shift():
		return CategoryDualShift
	default:
		return CategoryMixed
	}
}

// directionFn overrides a generated motion's rotation direction.
type directionFn func(motion.MotionData) motion.RotationDirection

// directionOverrides is consulted before the generic rule (carry the source
// direction through unchanged). Currently only dual-static beats override:
// a static pair carries no rotational movement, so any stale direction from
// the source beat is normalized away.
var directionOverrides = map[BeatCategory]directionFn{
	CategoryDualStatic: func(motion.MotionData) motion.RotationDirection {
		return motion.NoRotation
	},
}

// rotationFor resolves the rotation direction for a generated motion.
func rotationFor(cat BeatCategory, m motion.MotionData) motion.RotationDirection {
	if fn, ok := directionOverrides[cat]; ok {
		return fn(m)
	}
	return m.RotDir
}

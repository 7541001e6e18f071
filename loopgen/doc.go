// Package loopgen synthesizes the closing half of a LOOP — a sequence that
// returns to its starting position — by applying one symmetry class to an
// already-authored first half.
//
// 🚀 The executor family
//
//	One executor per symmetry class: Rotated (180°), Mirrored, Flipped,
//	Swapped, SwappedInverted and MirroredInverted. Every class is an
//	involution on positions, so a "halved" input closes after exactly one
//	more application of its transform.
//
// Each ExecuteLOOP call is a single pass:
//
//  1. Precondition — the input's final end position must be the symmetric
//     counterpart of beat 1's start position under this executor's
//     transform; otherwise ErrPositionPair is returned with the executor's
//     name. This is an expected, cheap control-flow signal for callers
//     searching across executors, and it is all-or-nothing: no partial
//     output ever escapes.
//  2. Generation — each authored beat is transformed (position op, track
//     swap, motion-type inversion as the class dictates), then stitched
//     onto the previous generated beat: start locations and orientations
//     come from the predecessor, end orientations from the orientation
//     calculus. Rotation direction and turns carry through unchanged,
//     except where the beat-category override table says otherwise.
//  3. Post-condition — the last generated beat must land on beat 1's start
//     position. With correct tables this holds by construction; a
//     violation is ErrClosureBroken, a table bug rather than caller error.
//
// ⚙️ Usage:
//
//	out, err := loopgen.SwappedInverted.ExecuteLOOP(seq, loopgen.SliceHalved, orient.DefaultOptions())
//	if errors.Is(err, loopgen.ErrPositionPair) {
//	  // not eligible for this class; try another executor
//	}
//
// Everything is pure: the input sequence is never mutated, no state
// survives a call, and calls are independent and safe to run concurrently.
package loopgen

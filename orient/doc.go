// Package orient computes a track's end orientation from its start
// orientation, motion type, rotation direction and turn count, and
// propagates orientation continuity between adjacent beats.
//
// 🚀 The half-step cycle
//
//	Orientation lives on a 4-cycle: In → Clock → Out → Counter (and back
//	to In), advancing clockwise. One half turn advances one position and
//	switches the radial/non-radial class; one whole turn advances two
//	positions and stays within the class. CounterClockwise rotation walks
//	the cycle backwards — which is indistinguishable for whole turns,
//	since +2 ≡ -2 (mod 4).
//
// Per motion type:
//   - Static, or any motion with NoRotation: identity.
//   - Pro: advance 2·turns half-steps along the cycle.
//   - Anti: as Pro, plus one in-class flip (two positions) per whole turn.
//   - Dash: identity unless turns > 0, then the Pro rule.
//   - Float: a single half-step using the carried pre-float motion type and
//     rotation direction; absent context is resolved by the FloatPolicy.
//
// ⚙️ Usage:
//
//	opts := orient.DefaultOptions()
//	end, err := orient.CalculateEndOrientation(m, opts)
//	if errors.Is(err, orient.ErrMissingPreFloat) {
//	  // float motion without pre-float context under FloatStrict
//	}
//
// Ordering contract: when deriving a beat, set start orientations from the
// predecessor first (UpdateStartOrientations), then compute end
// orientations (UpdateEndOrientations) — always in that order.
//
// Everything here is pure and deterministic: no state, no side effects,
// safe under concurrent callers.
package orient

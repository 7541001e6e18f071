// Package motion defines the canonical value types of the oktograph
// notation engine: grid locations and modes, named grid positions,
// orientations, motion descriptors, beats and sequences.
//
// 🚀 What is a sequence?
//
//	Choreography is notated as an ordered list of beats. Each beat moves
//	two tracked points ("tracks") between locations on an 8-point compass
//	grid, carrying a rotational orientation per track. Beat 0 is reserved
//	for the starting position: both motions Static, start == end.
//
// ✨ Key guarantees:
//   - Immutability — beats and sequences are values; every engine
//     operation derives new ones via Clone, never mutates in place.
//   - One canonical shape — upstream documents with inconsistent field
//     names and loosely-typed values are adapted exactly once, at the
//     ingestion boundary (FromRaw / BeatFromRaw / DecodeYAML); nothing
//     past that boundary ever re-interprets raw data.
//   - Total position catalog — every same-mode location pair resolves to
//     exactly one named GridPosition (beta/alpha/gamma families), and
//     every name resolves back.
//
// ⚙️ Usage:
//
//	pos, err := motion.PositionOf(motion.South, motion.South) // "beta5"
//	seq, err := motion.DecodeYAML(file)
//	if err := motion.Validate(seq); err != nil {
//	  // continuity or orientation-continuity violation, errors.Is-able
//	}
//
// Validation policy: sentinel errors only, wrapped with method context via
// %w; callers branch with errors.Is. No function in this package panics.
package motion

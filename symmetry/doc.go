// Package symmetry maps grid locations and named positions to their images
// under the five supported symmetry operations, and inverts motion types.
//
// Operations: Rotate90CCW, Rotate180, Rotate270CCW, MirrorVertical (across
// the vertical axis, east↔west) and FlipHorizontal (across the horizontal
// axis, north↔south).
//
// The tables are immutable constant maps keyed by (grid mode, operation,
// location), built once at package load — never a mutable singleton.
// Rotations map strictly within one grid mode's four canonical members: a
// cardinal location has no image in the diagonal table and vice versa, so
// callers must know their sequence's grid mode (ErrLocationMode otherwise).
//
// Algebra, relied on by the LOOP executors and pinned by tests:
//   - the four rotations form a cyclic group of order 4 under composition;
//   - MirrorVertical and FlipHorizontal are involutions;
//   - InvertMotionType is an involution (Pro↔Anti, all else fixed).
package symmetry

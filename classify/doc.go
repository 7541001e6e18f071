// Package classify detects the transformation relationship between pairs of
// beats: repetition, position transforms (rotation, mirror, flip), track
// swap and motion inversion.
//
// This is read-only analytics over existing sequences — pattern detection,
// never generation. Nothing here mutates or synthesizes beats; the loopgen
// package does the generating and classify is the independent witness that
// its output carries the intended symmetry.
//
// ⚙️ Usage:
//
//	tags := classify.CompareBeatPair(a, b) // e.g. [swapped inverted]
//	graph := classify.BuildPairGraph(seq.Beats[1:])
//	step, uniform := classify.UniformStep(seq)
//
// Tag semantics:
//   - "repeated" is exclusive: identical locations and motion types report
//     [repeated] and nothing else.
//   - At most one position-transform tag (rotated_90/180/270, mirrored,
//     flipped) is reported — the symmetry tables are disjoint for any two
//     distinct beats.
//   - "swapped" and "inverted" are orthogonal to the position tag and to
//     each other; zero, one or several tags may be reported.
package classify

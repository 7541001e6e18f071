// Package oktograph is a pure, in-memory engine for choreography notated
// on an 8-point grid: orientation calculus, grid symmetry transforms,
// beat-pair pattern analysis and symmetry-based LOOP completion.
//
// 🚀 What is oktograph?
//
//	A deterministic, zero-I/O library that brings together:
//		• Data model: beats, tracks, named grid positions, motion descriptors
//		• Orientation calculus: end-orientation propagation per motion type
//		• Symmetry tables: rotations, mirrors, flips and motion inversion
//		• Classification: transform-relationship tags between beat pairs
//		• LOOP executors: synthesize the closing half of a symmetric sequence
//
// ✨ Why choose oktograph?
//
//   - Purely functional – every call allocates and returns new values;
//     nothing mutates shared state, so concurrent use needs no locking
//   - Strict invariants – position and orientation continuity are checked,
//     never silently patched
//   - Sentinel errors – branch with errors.Is, wrapped with %w context
//   - Extensible – executors, float policies and slice sizes are explicit
//     registries and options, not hidden defaults
//
// Under the hood, everything is organized into focused subpackages:
//
//	motion/   — canonical value types, position catalog, validation, ingestion
//	orient/   — the motion-orientation calculus and continuity propagation
//	symmetry/ — grid symmetry tables and motion-type inversion
//	classify/ — beat-pair transformation tagging and pattern graphs
//	loopgen/  — the LOOP executor family (rotated, mirrored, swapped, ...)
//	seqcodec/ — the compact per-motion token encoding
//
// Quick ASCII example:
//
//	    N
//	  W ┼ E      two tracks stepping between compass points,
//	    S        each beat carrying an orientation per track.
//
// Rendering, persistence and user interaction live in external
// collaborators; this module only validates and transforms.
//
//	go get github.com/oktograph/oktograph
package oktograph

// Package seqcodec serializes sequences into the compact per-motion token
// layout consumed by deep-link encoders, and parses it back.
//
// Token layout (one motion, fixed-width except turns):
//
//	startLoc(2) endLoc(2) startOri(1) endOri(1) rotDir(1) turns(1+) motionType(1)
//
// Location codes pad cardinals with a dot ("n." ... "nw"); orientations are
// i/c/o/u (in/clock/out/counter); rotation r/l/x (cw/ccw/none); turns a
// trimmed decimal ("0", "0.5", ...) or "f" for the float marker; motion
// type p/a/s/d/f. The two tracks of a beat are joined by ',' and beats by
// ';'. Letters and indices are not carried: the encoding is positional.
//
// Decode re-derives named positions from the decoded locations and, for
// float motions, reconstructs pre-float context from the same track's
// preceding shift motion. Round-tripping preserves exactly the properties
// the engine guarantees — orientation continuity and loop closure — which
// is what the conformance tests in this package pin.
package seqcodec

// executor.go - the single-pass LOOP generation algorithm shared by every
// executor in the family.

package loopgen

import (
	"fmt"

	"github.com/oktograph/oktograph/motion"
	"github.com/oktograph/oktograph/orient"
	"github.com/oktograph/oktograph/symmetry"
)

// counterpart returns the symmetric counterpart of pos under the executor's
// transform: the position op's image with tracks exchanged when the class
// includes swapped. Motion inversion has no positional effect.
func (e Executor) counterpart(pos motion.GridPosition) (motion.GridPosition, error) {
	out := pos
	var err error
	if e.hasOp {
		if out, err = symmetry.TransformPosition(out, e.op); err != nil {
			return "", err
		}
	}
	if e.swapped {
		if out, err = motion.Swap(out); err != nil {
			return "", err
		}
	}
	return out, nil
}

// ExecuteLOOP synthesizes the remaining beats of a LOOP from the authored
// partial sequence and returns the completed sequence. The input is never
// mutated; on any error no partial output is returned.
//
// Preconditions:
//   - sliceSize is SliceHalved (SliceQuartered is an unimplemented
//     extension point, rejected with ErrUnsupportedSlice);
//   - seq holds beat 0 plus at least one authored beat (ErrTooShort);
//   - seq's final end position is the symmetric counterpart of beat 1's
//     start position under this executor's transform (ErrPositionPair).
//
// Post-condition: the generated half lands exactly on beat 1's start
// position. With correct symmetry tables this holds by construction; a
// violation surfaces as ErrClosureBroken.
func (e Executor) ExecuteLOOP(seq motion.SequenceData, sliceSize SliceSize, opts orient.Options) (motion.SequenceData, error) {
	if sliceSize != SliceHalved {
		return motion.SequenceData{}, fmt.Errorf("%s: slice %v: %w", e.name, sliceSize, ErrUnsupportedSlice)
	}
	if len(seq.Beats) < 2 {
		return motion.SequenceData{}, fmt.Errorf("%s: %d beats: %w", e.name, len(seq.Beats), ErrTooShort)
	}

	authored := seq.Beats[1:]
	first := authored[0]
	last := authored[len(authored)-1]

	want, err := e.counterpart(first.StartPos)
	if err != nil {
		return motion.SequenceData{}, fmt.Errorf("%s: %w", e.name, err)
	}
	if last.EndPos != want {
		return motion.SequenceData{}, fmt.Errorf("%s: sequence closes at %q, counterpart of %q is %q: %w",
			e.name, last.EndPos, first.StartPos, want, ErrPositionPair)
	}

	out := seq.Clone()
	prev := last
	for _, src := range authored {
		nb, err := e.deriveBeat(src, prev, opts)
		if err != nil {
			return motion.SequenceData{}, fmt.Errorf("%s: %w", e.name, err)
		}
		out.Beats = append(out.Beats, nb)
		prev = nb
	}

	if prev.EndPos != first.StartPos {
		return motion.SequenceData{}, fmt.Errorf("%s: landed on %q, want %q: %w",
			e.name, prev.EndPos, first.StartPos, ErrClosureBroken)
	}
	return out, nil
}

// deriveBeat produces one generated beat from its source beat and the
// previously generated beat (the last authored beat for the first generated
// one).
func (e Executor) deriveBeat(src, prev motion.BeatData, opts orient.Options) (motion.BeatData, error) {
	nb := motion.BeatData{
		Index:   prev.Index + 1,
		Letter:  src.Letter,
		Motions: make(map[motion.TrackID]motion.MotionData, 2),
	}

	for _, id := range motion.Tracks {
		srcTrack := id
		if e.swapped {
			srcTrack = id.Other() // tracks exchange roles
		}
		m := src.Motion(srcTrack)

		if e.hasOp {
			mode := m.StartLoc.Mode()
			var err error
			if m.StartLoc, err = symmetry.TransformLocation(m.StartLoc, e.op, mode); err != nil {
				return motion.BeatData{}, err
			}
			if m.EndLoc, err = symmetry.TransformLocation(m.EndLoc, e.op, mode); err != nil {
				return motion.BeatData{}, err
			}
		}
		if e.inverted {
			m.MotionType = symmetry.InvertMotionType(m.MotionType)
			if m.HasPreFloat {
				m.PreFloatMotionType = symmetry.InvertMotionType(m.PreFloatMotionType)
			}
		}

		// Continuity within the generated portion takes precedence over the
		// raw transform of the source beat: one continuous path, not a
		// disconnected image of the original.
		pm := prev.Motion(id)
		m.StartLoc = pm.EndLoc
		m.StartOri = orient.CalculateStartOrientation(pm)
		nb.Motions[id] = m
	}

	cat := CategoryOf(nb.Motion(motion.TrackA).MotionType, nb.Motion(motion.TrackB).MotionType)
	for _, id := range motion.Tracks {
		m := nb.Motions[id]
		m.RotDir = rotationFor(cat, m)
		end, err := orient.CalculateEndOrientation(m, opts)
		if err != nil {
			return motion.BeatData{}, err
		}
		m.EndOri = end
		nb.Motions[id] = m
	}

	var err error
	nb.StartPos = prev.EndPos
	if nb.EndPos, err = motion.PositionOf(nb.Motion(motion.TrackA).EndLoc, nb.Motion(motion.TrackB).EndLoc); err != nil {
		return motion.BeatData{}, err
	}
	return nb, nil
}

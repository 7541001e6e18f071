package seqcodec_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/oktograph/oktograph/motion"
	"github.com/oktograph/oktograph/seqcodec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mo(start, end motion.GridLocation, so, eo motion.Orientation, mt motion.MotionType, dir motion.RotationDirection, turns motion.Turns) motion.MotionData {
	return motion.MotionData{
		StartLoc:   start,
		EndLoc:     end,
		StartOri:   so,
		EndOri:     eo,
		MotionType: mt,
		RotDir:     dir,
		Turns:      turns,
	}
}

func beat(idx int, a, b motion.MotionData) motion.BeatData {
	start, _ := motion.PositionOf(a.StartLoc, b.StartLoc)
	end, _ := motion.PositionOf(a.EndLoc, b.EndLoc)
	return motion.BeatData{
		Index:    idx,
		StartPos: start,
		EndPos:   end,
		Motions:  map[motion.TrackID]motion.MotionData{motion.TrackA: a, motion.TrackB: b},
	}
}

func fixture() motion.SequenceData {
	return motion.SequenceData{Beats: []motion.BeatData{
		beat(0,
			mo(motion.South, motion.South, motion.In, motion.In, motion.Static, motion.NoRotation, 0),
			mo(motion.South, motion.South, motion.In, motion.In, motion.Static, motion.NoRotation, 0)),
		beat(1,
			mo(motion.South, motion.East, motion.In, motion.Out, motion.Pro, motion.Clockwise, 1),
			mo(motion.South, motion.West, motion.In, motion.Counter, motion.Pro, motion.CounterClockwise, 0.5)),
		beat(2,
			mo(motion.East, motion.South, motion.Out, motion.Out, motion.Pro, motion.Clockwise, 0),
			mo(motion.West, motion.South, motion.Counter, motion.Out, motion.Pro, motion.CounterClockwise, 0.5)),
	}}
}

// TestEncode verifies the exact token layout for a known sequence.
func TestEncode(t *testing.T) {
	const want = "s.s.iix0s,s.s.iix0s;s.e.ior1p,s.w.iul0.5p;e.s.oor0p,w.s.uol0.5p"
	assert.Equal(t, want, seqcodec.Encode(fixture()))
}

// TestRoundTrip verifies decode inverts encode, positions re-derived and
// the engine invariants intact. Letters and indices are positional, not
// carried, so the fixture uses neither.
func TestRoundTrip(t *testing.T) {
	in := fixture()
	out, err := seqcodec.Decode(seqcodec.Encode(in))
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(in, out), "round trip must reproduce the sequence")
	assert.NoError(t, motion.Validate(out), "round trip must preserve the continuity invariants")
}

// TestRoundTrip_FloatContext verifies pre-float context is reconstructed
// from the preceding shift motion on the same track.
func TestRoundTrip_FloatContext(t *testing.T) {
	in := fixture()
	flt := motion.MotionData{
		StartLoc:           motion.East,
		EndLoc:             motion.North,
		StartOri:           motion.Out,
		EndOri:             motion.Counter,
		MotionType:         motion.Float,
		RotDir:             motion.NoRotation,
		Turns:              motion.FloatTurns,
		PreFloatMotionType: motion.Pro,
		PreFloatRotDir:     motion.Clockwise,
		HasPreFloat:        true,
	}
	keep := motion.MotionData{
		StartLoc:   motion.West,
		EndLoc:     motion.West,
		StartOri:   motion.Counter,
		EndOri:     motion.Counter,
		MotionType: motion.Static,
		RotDir:     motion.NoRotation,
		Turns:      0,
	}
	in.Beats[2] = beat(2, flt, keep)

	out, err := seqcodec.Decode(seqcodec.Encode(in))
	require.NoError(t, err)

	got := out.Beats[2].Motion(motion.TrackA)
	assert.True(t, got.HasPreFloat, "float context must be rebuilt from beat 1")
	assert.Equal(t, motion.Pro, got.PreFloatMotionType)
	assert.Equal(t, motion.Clockwise, got.PreFloatRotDir)
	assert.True(t, got.Turns.IsFloat(), "the float marker survives the trip")
	assert.Empty(t, cmp.Diff(in, out))
}

// TestDecode_Malformed verifies layout violations are rejected.
func TestDecode_Malformed(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"empty beat", ";"},
		{"one track", "s.s.iix0s"},
		{"three tracks", "s.s.iix0s,s.s.iix0s,s.s.iix0s"},
		{"short token", "s.s.iix0,s.s.iix0s"},
		{"bad location", "zzs.iix0s,s.s.iix0s"},
		{"bad orientation", "s.s.qix0s,s.s.iix0s"},
		{"bad rotation", "s.s.iiq0s,s.s.iix0s"},
		{"bad turns", "s.s.iix0.3s,s.s.iix0s"},
		{"bad motion type", "s.s.iix0q,s.s.iix0s"},
		{"mixed mode pair", "s.s.iix0s,neneiix0s"},
	}
	for _, tc := range cases {
		_, err := seqcodec.Decode(tc.in)
		assert.Error(t, err, tc.name)
	}

	_, err := seqcodec.Decode("")
	assert.ErrorIs(t, err, seqcodec.ErrEmptyInput)
}

// TestRoundTrip_IgnoresLabels documents that letters are not carried: a
// labeled sequence round-trips equal up to its letters.
func TestRoundTrip_IgnoresLabels(t *testing.T) {
	in := fixture()
	in.Beats[1].Letter = "A"
	in.Beats[2].Letter = "B"

	out, err := seqcodec.Decode(seqcodec.Encode(in))
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(in, out, cmpopts.IgnoreFields(motion.BeatData{}, "Letter")))
	assert.Empty(t, out.Beats[1].Letter)
}

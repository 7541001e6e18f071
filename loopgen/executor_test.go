package loopgen_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/oktograph/oktograph/classify"
	"github.com/oktograph/oktograph/loopgen"
	"github.com/oktograph/oktograph/motion"
	"github.com/oktograph/oktograph/orient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExecuteLOOP_SwappedInverted is the end-to-end scenario: a 3-beat
// partial sequence out of beta5 through alpha3 and back, completed by the
// swapped-inverted class into a 5-beat LOOP.
func TestExecuteLOOP_SwappedInverted(t *testing.T) {
	in := swapHalf()
	out, err := loopgen.SwappedInverted.ExecuteLOOP(in, loopgen.SliceHalved, orient.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, out.Beats, 5, "halved slice doubles the authored beats")

	// Beat 3 lands on the swap image of the intermediate position — a
	// distinct named position — with both motion types inverted to anti.
	b3 := out.Beats[3]
	assert.Equal(t, motion.GridPosition("alpha7"), b3.EndPos, "swap image of alpha3")
	assert.NotEqual(t, in.Beats[1].EndPos, b3.EndPos)
	assert.Equal(t, motion.Anti, b3.Motion(motion.TrackA).MotionType)
	assert.Equal(t, motion.Anti, b3.Motion(motion.TrackB).MotionType)

	// Track roles exchanged: the generated track A walks the source track
	// B's path, with rotation direction and turns carried through.
	assert.Equal(t, motion.West, b3.Motion(motion.TrackA).EndLoc)
	assert.Equal(t, motion.CounterClockwise, b3.Motion(motion.TrackA).RotDir)
	assert.Equal(t, motion.Turns(0.5), b3.Motion(motion.TrackA).Turns)

	// Beat 4 closes the loop exactly, still anti on both tracks.
	b4 := out.Beats[4]
	assert.Equal(t, in.Beats[1].StartPos, b4.EndPos, "loop closure")
	assert.Equal(t, motion.Anti, b4.Motion(motion.TrackA).MotionType)
	assert.Equal(t, motion.Anti, b4.Motion(motion.TrackB).MotionType)

	// The whole output is a valid continuous sequence.
	require.NoError(t, motion.Validate(out))
}

// TestExecuteLOOP_NotEligible is the negative scenario: a sequence that is
// not closed under any transform must be rejected with no partial output.
func TestExecuteLOOP_NotEligible(t *testing.T) {
	in := swapHalf()
	// Re-point beat 2 so the half ends away from the counterpart position.
	in.Beats[2] = beat(2, "B",
		mo(motion.East, motion.South, motion.Out, motion.Out, motion.Pro, motion.Clockwise, 0),
		mo(motion.West, motion.East, motion.Counter, motion.Out, motion.Pro, motion.CounterClockwise, 0.5))

	out, err := loopgen.SwappedInverted.ExecuteLOOP(in, loopgen.SliceHalved, orient.DefaultOptions())
	assert.ErrorIs(t, err, loopgen.ErrPositionPair)
	assert.ErrorContains(t, err, "swapped_inverted", "the error names the transform class")
	assert.Empty(t, out.Beats, "no partially generated sequence may escape")
}

// TestExecuteLOOP_AllExecutors runs every class on an eligible fixture and
// checks the shared post-conditions: orientation continuity, loop closure
// and input immutability.
func TestExecuteLOOP_AllExecutors(t *testing.T) {
	fixtures := map[string]motion.SequenceData{
		loopgen.Rotated.Name():          rotHalf(),
		loopgen.Flipped.Name():          rotHalf(),
		loopgen.Mirrored.Name():         swapHalf(),
		loopgen.Swapped.Name():          swapHalf(),
		loopgen.SwappedInverted.Name():  swapHalf(),
		loopgen.MirroredInverted.Name(): swapHalf(),
	}

	for _, e := range loopgen.Executors() {
		in, ok := fixtures[e.Name()]
		require.True(t, ok, "fixture missing for %s", e.Name())
		snapshot := in.Clone()

		out, err := e.ExecuteLOOP(in, loopgen.SliceHalved, orient.DefaultOptions())
		require.NoError(t, err, "%s must accept its eligible fixture", e.Name())
		require.Len(t, out.Beats, 2*len(in.Beats)-1, "%s output size", e.Name())

		assert.NoError(t, motion.Validate(out), "%s output continuity", e.Name())
		assert.Equal(t, in.Beats[1].StartPos, out.Beats[len(out.Beats)-1].EndPos,
			"%s loop closure", e.Name())
		assert.Empty(t, cmp.Diff(snapshot, in), "%s must not mutate its input", e.Name())

		for i, b := range out.Beats {
			assert.Equal(t, i, b.Index, "%s reindexes generated beats contiguously", e.Name())
		}
	}
}

// TestExecuteLOOP_ClassifierAgreement verifies the generated image of each
// source beat classifies exactly as the executor's class implies.
func TestExecuteLOOP_ClassifierAgreement(t *testing.T) {
	out, err := loopgen.Rotated.ExecuteLOOP(rotHalf(), loopgen.SliceHalved, orient.DefaultOptions())
	require.NoError(t, err)

	for i := 1; i <= 2; i++ {
		tags := classify.CompareBeatPair(out.Beats[i], out.Beats[i+2])
		assert.Equal(t, []classify.Tag{classify.TagRotated180}, tags,
			"rotated image of beat %d", i)
	}

	// The rotated LOOP is also a uniform modular LOOP.
	step, uniform := classify.UniformStep(out)
	assert.True(t, uniform)
	assert.Equal(t, []classify.Tag{classify.TagRotated180}, step)

	// Swapped-inverted images report swapped and inverted; on this fixture
	// the swap image coincides with the mirror image, so the mirrored tag
	// rides along.
	out, err = loopgen.SwappedInverted.ExecuteLOOP(swapHalf(), loopgen.SliceHalved, orient.DefaultOptions())
	require.NoError(t, err)
	tags := classify.CompareBeatPair(out.Beats[1], out.Beats[3])
	assert.Equal(t, []classify.Tag{classify.TagMirrored, classify.TagSwapped, classify.TagInverted}, tags)
}

// TestExecuteLOOP_Guards verifies the cheap input guards.
func TestExecuteLOOP_Guards(t *testing.T) {
	_, err := loopgen.Rotated.ExecuteLOOP(rotHalf(), loopgen.SliceQuartered, orient.DefaultOptions())
	assert.ErrorIs(t, err, loopgen.ErrUnsupportedSlice, "quartered is a declared extension point only")

	short := motion.SequenceData{Beats: rotHalf().Beats[:1]}
	_, err = loopgen.Rotated.ExecuteLOOP(short, loopgen.SliceHalved, orient.DefaultOptions())
	assert.ErrorIs(t, err, loopgen.ErrTooShort)
}

// TestExecutorFor verifies registry lookup.
func TestExecutorFor(t *testing.T) {
	e, err := loopgen.ExecutorFor("mirrored_inverted")
	require.NoError(t, err)
	assert.Equal(t, loopgen.MirroredInverted, e)

	_, err = loopgen.ExecutorFor("time_reversed")
	assert.ErrorIs(t, err, loopgen.ErrUnknownExecutor)
}

// TestCategoryOf verifies beat bucketing for the override table.
func TestCategoryOf(t *testing.T) {
	assert.Equal(t, loopgen.CategoryDualShift, loopgen.CategoryOf(motion.Pro, motion.Anti))
	assert.Equal(t, loopgen.CategoryDualShift, loopgen.CategoryOf(motion.Float, motion.Pro))
	assert.Equal(t, loopgen.CategoryMixed, loopgen.CategoryOf(motion.Pro, motion.Dash))
	assert.Equal(t, loopgen.CategoryMixed, loopgen.CategoryOf(motion.Static, motion.Anti))
	assert.Equal(t, loopgen.CategoryDualDash, loopgen.CategoryOf(motion.Dash, motion.Dash))
	assert.Equal(t, loopgen.CategoryDualStatic, loopgen.CategoryOf(motion.Static, motion.Static))
}

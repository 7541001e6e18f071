package loopgen_test

import "github.com/oktograph/oktograph/motion"

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

func beat(idx int, letter string, a, b motion.MotionData) motion.BeatData {
	start, _ := motion.PositionOf(a.StartLoc, b.StartLoc)
	end, _ := motion.PositionOf(a.EndLoc, b.EndLoc)
	return motion.BeatData{
		Index:    idx,
		Letter:   letter,
		StartPos: start,
		EndPos:   end,
		Motions:  map[motion.TrackID]motion.MotionData{motion.TrackA: a, motion.TrackB: b},
	}
}

// swapHalf is a partial loop from beta5 back to beta5: eligible for the
// mirrored, swapped, swapped-inverted and mirrored-inverted classes (beta5
// is its own mirror and swap image).
func swapHalf() motion.SequenceData {
	return motion.SequenceData{Beats: []motion.BeatData{
		beat(0, "",
			mo(motion.South, motion.South, motion.In, motion.In, motion.Static, motion.NoRotation, 0),
			mo(motion.South, motion.South, motion.In, motion.In, motion.Static, motion.NoRotation, 0)),
		beat(1, "A",
			mo(motion.South, motion.East, motion.In, motion.Out, motion.Pro, motion.Clockwise, 1),
			mo(motion.South, motion.West, motion.In, motion.Counter, motion.Pro, motion.CounterClockwise, 0.5)),
		beat(2, "B",
			mo(motion.East, motion.South, motion.Out, motion.Out, motion.Pro, motion.Clockwise, 0),
			mo(motion.West, motion.South, motion.Counter, motion.Out, motion.Pro, motion.CounterClockwise, 0.5)),
	}}
}

// rotHalf is a partial loop from beta5 to beta1: eligible for the rotated
// (180° image) and flipped (north↔south image) classes.
func rotHalf() motion.SequenceData {
	return motion.SequenceData{Beats: []motion.BeatData{
		beat(0, "",
			mo(motion.South, motion.South, motion.In, motion.In, motion.Static, motion.NoRotation, 0),
			mo(motion.South, motion.South, motion.In, motion.In, motion.Static, motion.NoRotation, 0)),
		beat(1, "A",
			mo(motion.South, motion.East, motion.In, motion.Out, motion.Pro, motion.Clockwise, 1),
			mo(motion.South, motion.West, motion.In, motion.Counter, motion.Pro, motion.CounterClockwise, 0.5)),
		beat(2, "B",
			mo(motion.East, motion.North, motion.Out, motion.Counter, motion.Pro, motion.Clockwise, 0.5),
			mo(motion.West, motion.North, motion.Counter, motion.Out, motion.Pro, motion.CounterClockwise, 0.5)),
	}}
}

package motion_test

import "github.com/oktograph/oktograph/motion"

// mo is a shorthand motion constructor for fixtures.
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

// beat builds a beat and derives its named positions from the motions; the
// fixture locations are always same-mode so the lookups cannot fail.
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

// halfLoop is the canonical 3-beat fixture: a static start at beta5 (both
// tracks South), one beat out to alpha3 and one beat back, all Pro.
func halfLoop() motion.SequenceData {
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

// orient.go - the orientation calculus and continuity propagation.

package orient

import (
	"fmt"

	"github.com/oktograph/oktograph/motion"
)

// orientationCycle is the modulus of the half-step cycle
// (In → Clock → Out → Counter).
const orientationCycle = 4

// inClassFlip is the in-class flip distance (In↔Out, Clock↔Counter).
const inClassFlip = 2

// advance walks the orientation cycle by the given number of signed
// half-steps.
func advance(o motion.Orientation, halfSteps int) motion.Orientation {
	i := (int(o) + halfSteps) % orientationCycle
	if i < 0 {
		i += orientationCycle
	}
	return motion.Orientation(i)
}

// turnAdvance applies the Pro turn-advance rule: 2·turns half-steps, signed
// by the rotation direction. turns must already be validated.
func turnAdvance(start motion.Orientation, dir motion.RotationDirection, turns motion.Turns) motion.Orientation {
	halfSteps := int(float64(turns) * 2)
	return advance(start, dir.Sign()*halfSteps)
}

// halfStep applies a single half-step of the given underlying motion type,
// used for Float motions. A half turn carries no whole-turn flip, so Pro,
// Anti and Dash all reduce to one signed half-step; Static stays put.
func halfStep(start motion.Orientation, preType motion.MotionType, preDir motion.RotationDirection) motion.Orientation {
	if preType == motion.Static || preDir == motion.NoRotation {
		return start
	}
	return advance(start, preDir.Sign())
}

// CalculateEndOrientation computes the end orientation of one motion from
// its start orientation, motion type, rotation direction and turn count.
// It returns ErrInvalidTurns for a negative or non-half-integer count, and
// resolves context-free Float motions via opts.Float.
func CalculateEndOrientation(m motion.MotionData, opts Options) (motion.Orientation, error) {
	if !m.Turns.Valid() {
		return 0, fmt.Errorf("CalculateEndOrientation: turns %v: %w", float64(m.Turns), ErrInvalidTurns)
	}

	switch m.MotionType {
	case motion.Static:
		return m.StartOri, nil

	case motion.Float:
		if !m.HasPreFloat {
			switch opts.Float {
			case FloatIdentity:
				return m.StartOri, nil
			default:
				return 0, fmt.Errorf("CalculateEndOrientation: %w", ErrMissingPreFloat)
			}
		}
		return halfStep(m.StartOri, m.PreFloatMotionType, m.PreFloatRotDir), nil
	}

	// Numeric-turn motion types from here on; the float marker is only
	// meaningful on Float motions.
	if m.Turns.IsFloat() {
		return 0, fmt.Errorf("CalculateEndOrientation: float marker on %v motion: %w", m.MotionType, ErrInvalidTurns)
	}
	if m.RotDir == motion.NoRotation {
		return m.StartOri, nil
	}

	switch m.MotionType {
	case motion.Pro:
		return turnAdvance(m.StartOri, m.RotDir, m.Turns), nil

	case motion.Anti:
		// As Pro, plus one in-class flip per whole turn. The flip is
		// direction-agnostic (+2 ≡ -2 mod 4).
		end := turnAdvance(m.StartOri, m.RotDir, m.Turns)
		wholeTurns := int(float64(m.Turns))
		return advance(end, inClassFlip*wholeTurns), nil

	case motion.Dash:
		if m.Turns == 0 {
			return m.StartOri, nil
		}
		return turnAdvance(m.StartOri, m.RotDir, m.Turns), nil
	}
	return 0, fmt.Errorf("CalculateEndOrientation: %v: %w", m.MotionType, ErrUnknownMotionType)
}

// CalculateStartOrientation returns the orientation a motion must start at
// to follow prev: prev's end orientation. Pure lookup, used to enforce the
// orientation-continuity invariant between adjacent beats.
func CalculateStartOrientation(prev motion.MotionData) motion.Orientation {
	return prev.EndOri
}

// UpdateStartOrientations derives a new beat whose per-track start
// orientations are taken from prev's end orientations. The input beats are
// not mutated.
func UpdateStartOrientations(beat, prev motion.BeatData) motion.BeatData {
	nb := beat.Clone()
	for _, id := range motion.Tracks {
		m := nb.Motions[id]
		m.StartOri = CalculateStartOrientation(prev.Motion(id))
		nb.Motions[id] = m
	}
	return nb
}

// UpdateEndOrientations derives a new beat whose per-track end orientations
// are computed via CalculateEndOrientation from the (already set) start
// orientations. Call after UpdateStartOrientations, never before.
func UpdateEndOrientations(beat motion.BeatData, opts Options) (motion.BeatData, error) {
	nb := beat.Clone()
	for _, id := range motion.Tracks {
		m := nb.Motions[id]
		end, err := CalculateEndOrientation(m, opts)
		if err != nil {
			return motion.BeatData{}, fmt.Errorf("UpdateEndOrientations: beat %d track %v: %w", beat.Index, id, err)
		}
		m.EndOri = end
		nb.Motions[id] = m
	}
	return nb, nil
}

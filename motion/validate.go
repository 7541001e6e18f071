// validate.go - sequence invariant checks.

package motion

import "fmt"

// ValidateBeat checks a single beat in isolation: exactly two tracks, valid
// turns, one consistent grid mode, and named positions matching the track
// locations.
func ValidateBeat(b BeatData) error {
	if len(b.Motions) != 2 {
		return fmt.Errorf("ValidateBeat(%d): got %d tracks: %w", b.Index, len(b.Motions), ErrTrackCount)
	}
	for _, id := range Tracks {
		m, ok := b.Motions[id]
		if !ok {
			return fmt.Errorf("ValidateBeat(%d): track %v missing: %w", b.Index, id, ErrTrackCount)
		}
		if !m.Turns.Valid() {
			return fmt.Errorf("ValidateBeat(%d): track %v turns %v: %w", b.Index, id, m.Turns, ErrInvalidTurns)
		}
		if m.StartLoc.Mode() != m.EndLoc.Mode() {
			return fmt.Errorf("ValidateBeat(%d): track %v crosses grid modes: %w", b.Index, id, ErrMixedMode)
		}
	}
	start, err := PositionOf(b.Motion(TrackA).StartLoc, b.Motion(TrackB).StartLoc)
	if err != nil {
		return fmt.Errorf("ValidateBeat(%d): %w", b.Index, err)
	}
	end, err := PositionOf(b.Motion(TrackA).EndLoc, b.Motion(TrackB).EndLoc)
	if err != nil {
		return fmt.Errorf("ValidateBeat(%d): %w", b.Index, err)
	}
	if b.StartPos != start || b.EndPos != end {
		return fmt.Errorf("ValidateBeat(%d): positions %q→%q do not match locations %q→%q: %w",
			b.Index, b.StartPos, b.EndPos, start, end, ErrUnknownPosition)
	}
	return nil
}

// Validate checks the whole-sequence invariants:
//
//  1. Beat 0 is a static starting position (both motions Static, start==end).
//  2. Position continuity — beat i's end position equals beat i+1's start
//     position, per track.
//  3. Orientation continuity — beat i's end orientation equals beat i+1's
//     start orientation, per track.
//
// Loop closure is intentionally not checked here: it is a property of
// generated LOOPs only and is asserted by the loopgen package.
func Validate(s SequenceData) error {
	if len(s.Beats) == 0 {
		return fmt.Errorf("Validate: %w", ErrEmptySequence)
	}
	for _, b := range s.Beats {
		if err := ValidateBeat(b); err != nil {
			return fmt.Errorf("Validate: %w", err)
		}
	}
	start := s.Beats[0]
	for _, id := range Tracks {
		m := start.Motion(id)
		if m.MotionType != Static || m.StartLoc != m.EndLoc || m.StartOri != m.EndOri {
			return fmt.Errorf("Validate: track %v: %w", id, ErrStartBeat)
		}
	}
	mode := s.Mode()
	for i := 0; i < len(s.Beats)-1; i++ {
		cur, next := s.Beats[i], s.Beats[i+1]
		if cur.EndPos != next.StartPos {
			return fmt.Errorf("Validate: beats %d→%d end %q vs start %q: %w",
				cur.Index, next.Index, cur.EndPos, next.StartPos, ErrContinuity)
		}
		for _, id := range Tracks {
			cm, nm := cur.Motion(id), next.Motion(id)
			if cm.StartLoc.Mode() != mode {
				return fmt.Errorf("Validate: beat %d track %v: %w", cur.Index, id, ErrMixedMode)
			}
			if cm.EndLoc != nm.StartLoc {
				return fmt.Errorf("Validate: beats %d→%d track %v locations: %w",
					cur.Index, next.Index, id, ErrContinuity)
			}
			if cm.EndOri != nm.StartOri {
				return fmt.Errorf("Validate: beats %d→%d track %v orientation %v vs %v: %w",
					cur.Index, next.Index, id, cm.EndOri, nm.StartOri, ErrOrientationBreak)
			}
		}
	}
	return nil
}

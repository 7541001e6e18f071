// ingest.go - the single adaptation boundary for loosely-typed upstream
// documents. Upstream sources present motions with inconsistent field
// presence and naming ("start_loc" vs "startLoc", "prop_rot_dir" vs
// "rotation", ...); everything is canonicalized here, and nowhere else.

package motion

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ParseGridLocation parses a compass code ("n", "ne", ...) into a GridLocation.
func ParseGridLocation(s string) (GridLocation, error) {
	for l := GridLocation(0); l < numLocations; l++ {
		if locationNames[l] == s {
			return l, nil
		}
	}
	return 0, fmt.Errorf("ParseGridLocation(%q): %w", s, ErrBadField)
}

// ParseOrientation parses an orientation name ("in", "out", "clock", "counter").
func ParseOrientation(s string) (Orientation, error) {
	for o := Orientation(0); o < numOrientations; o++ {
		if orientationNames[o] == s {
			return o, nil
		}
	}
	return 0, fmt.Errorf("ParseOrientation(%q): %w", s, ErrBadField)
}

// ParseMotionType parses a motion-type name ("pro", "anti", "static",
// "dash", "float").
func ParseMotionType(s string) (MotionType, error) {
	for t := range motionTypeNames {
		if motionTypeNames[t] == s {
			return MotionType(t), nil
		}
	}
	return 0, fmt.Errorf("ParseMotionType(%q): %w", s, ErrBadField)
}

// ParseRotationDirection parses a rotation direction, accepting the common
// upstream spellings.
func ParseRotationDirection(s string) (RotationDirection, error) {
	switch s {
	case "cw", "clockwise":
		return Clockwise, nil
	case "ccw", "counter_clockwise", "counterclockwise":
		return CounterClockwise, nil
	case "none", "no_rot", "no_rotation":
		return NoRotation, nil
	}
	return 0, fmt.Errorf("ParseRotationDirection(%q): %w", s, ErrBadField)
}

// ParseTurns parses a turn count from a number or the float marker
// ("fl" or "float").
func ParseTurns(v any) (Turns, error) {
	switch t := v.(type) {
	case string:
		if t == "fl" || t == "float" {
			return FloatTurns, nil
		}
	case int:
		return checkTurns(Turns(t))
	case float64:
		return checkTurns(Turns(t))
	}
	return 0, fmt.Errorf("ParseTurns(%v): %w", v, ErrBadField)
}

func checkTurns(t Turns) (Turns, error) {
	if !t.Valid() {
		return 0, fmt.Errorf("ParseTurns(%v): %w", float64(t), ErrInvalidTurns)
	}
	return t, nil
}

// field aliases, first match wins.
var (
	startLocKeys = []string{"start_loc", "startLoc", "start_location"}
	endLocKeys   = []string{"end_loc", "endLoc", "end_location"}
	startOriKeys = []string{"start_ori", "startOri", "start_orientation"}
	endOriKeys   = []string{"end_ori", "endOri", "end_orientation"}
	typeKeys     = []string{"motion_type", "motionType", "type"}
	rotDirKeys   = []string{"prop_rot_dir", "rot_dir", "rotDir", "rotation"}
	preTypeKeys  = []string{"prefloat_motion_type", "pre_float_motion_type"}
	preDirKeys   = []string{"prefloat_prop_rot_dir", "pre_float_rot_dir"}
)

func rawString(raw map[string]any, keys []string) (string, bool) {
	for _, k := range keys {
		if v, ok := raw[k]; ok {
			if s, ok := v.(string); ok {
				return s, true
			}
		}
	}
	return "", false
}

func requiredString(raw map[string]any, keys []string) (string, error) {
	s, ok := rawString(raw, keys)
	if !ok {
		return "", fmt.Errorf("field %q missing or not a string: %w", keys[0], ErrBadField)
	}
	return s, nil
}

// FromRaw adapts one loosely-typed motion document into canonical
// MotionData. Required fields: start/end locations, start/end orientations,
// motion type, rotation direction, turns. Pre-float context is optional and
// only honored on Float motions.
func FromRaw(raw map[string]any) (MotionData, error) {
	var m MotionData
	fail := func(err error) (MotionData, error) {
		return MotionData{}, fmt.Errorf("FromRaw: %w", err)
	}

	s, err := requiredString(raw, startLocKeys)
	if err != nil {
		return fail(err)
	}
	if m.StartLoc, err = ParseGridLocation(s); err != nil {
		return fail(err)
	}
	if s, err = requiredString(raw, endLocKeys); err != nil {
		return fail(err)
	}
	if m.EndLoc, err = ParseGridLocation(s); err != nil {
		return fail(err)
	}
	if s, err = requiredString(raw, startOriKeys); err != nil {
		return fail(err)
	}
	if m.StartOri, err = ParseOrientation(s); err != nil {
		return fail(err)
	}
	if s, err = requiredString(raw, endOriKeys); err != nil {
		return fail(err)
	}
	if m.EndOri, err = ParseOrientation(s); err != nil {
		return fail(err)
	}
	if s, err = requiredString(raw, typeKeys); err != nil {
		return fail(err)
	}
	if m.MotionType, err = ParseMotionType(s); err != nil {
		return fail(err)
	}
	if s, err = requiredString(raw, rotDirKeys); err != nil {
		return fail(err)
	}
	if m.RotDir, err = ParseRotationDirection(s); err != nil {
		return fail(err)
	}
	turnsRaw, ok := raw["turns"]
	if !ok {
		return fail(fmt.Errorf("field %q missing: %w", "turns", ErrBadField))
	}
	if m.Turns, err = ParseTurns(turnsRaw); err != nil {
		return fail(err)
	}

	if m.MotionType == Float {
		if s, ok := rawString(raw, preTypeKeys); ok {
			if m.PreFloatMotionType, err = ParseMotionType(s); err != nil {
				return fail(err)
			}
			if s, err = requiredString(raw, preDirKeys); err != nil {
				return fail(err)
			}
			if m.PreFloatRotDir, err = ParseRotationDirection(s); err != nil {
				return fail(err)
			}
			m.HasPreFloat = true
		}
	}
	return m, nil
}

// BeatFromRaw adapts one beat document: an index ("beat" or "index"), an
// optional "letter", and per-track motion documents keyed "a"/"b" (the
// upstream color names "blue"/"red" are accepted as aliases for A/B).
// Positions are derived from the adapted locations, never read raw.
func BeatFromRaw(raw map[string]any) (BeatData, error) {
	var b BeatData
	fail := func(err error) (BeatData, error) {
		return BeatData{}, fmt.Errorf("BeatFromRaw: %w", err)
	}

	switch v := raw["beat"].(type) {
	case int:
		b.Index = v
	case float64:
		b.Index = int(v)
	default:
		switch v := raw["index"].(type) {
		case int:
			b.Index = v
		case float64:
			b.Index = int(v)
		default:
			return fail(fmt.Errorf("field %q missing: %w", "beat", ErrBadField))
		}
	}
	if s, ok := raw["letter"].(string); ok {
		b.Letter = s
	}

	trackKeys := map[TrackID][]string{
		TrackA: {"a", "track_a", "blue"},
		TrackB: {"b", "track_b", "red"},
	}
	b.Motions = make(map[TrackID]MotionData, 2)
	for _, id := range Tracks {
		var doc map[string]any
		for _, k := range trackKeys[id] {
			if v, ok := raw[k].(map[string]any); ok {
				doc = v
				break
			}
		}
		if doc == nil {
			return fail(fmt.Errorf("track %v document missing: %w", id, ErrTrackCount))
		}
		m, err := FromRaw(doc)
		if err != nil {
			return fail(err)
		}
		b.Motions[id] = m
	}

	var err error
	if b.StartPos, err = PositionOf(b.Motion(TrackA).StartLoc, b.Motion(TrackB).StartLoc); err != nil {
		return fail(err)
	}
	if b.EndPos, err = PositionOf(b.Motion(TrackA).EndLoc, b.Motion(TrackB).EndLoc); err != nil {
		return fail(err)
	}
	return b, nil
}

// SequenceFromRaw adapts an ordered list of beat documents and validates the
// result, so downstream transformation logic never sees raw data.
func SequenceFromRaw(raw []map[string]any) (SequenceData, error) {
	seq := SequenceData{Beats: make([]BeatData, 0, len(raw))}
	for i, doc := range raw {
		b, err := BeatFromRaw(doc)
		if err != nil {
			return SequenceData{}, fmt.Errorf("SequenceFromRaw: beat %d: %w", i, err)
		}
		seq.Beats = append(seq.Beats, b)
	}
	if err := Validate(seq); err != nil {
		return SequenceData{}, fmt.Errorf("SequenceFromRaw: %w", err)
	}
	return seq, nil
}

// DecodeYAML reads a YAML document holding a list of beat documents and
// adapts it through SequenceFromRaw.
func DecodeYAML(r io.Reader) (SequenceData, error) {
	var raw []map[string]any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return SequenceData{}, fmt.Errorf("DecodeYAML: %v: %w", err, ErrBadField)
	}
	return SequenceFromRaw(raw)
}

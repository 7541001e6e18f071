package seqcodec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/oktograph/oktograph/motion"
)

// Sentinel errors for the seqcodec package.
var (
	// ErrEmptyInput indicates an empty encoded string or sequence.
	ErrEmptyInput = errors.New("seqcodec: empty input")
	// ErrMalformedToken indicates a token that does not follow the layout.
	ErrMalformedToken = errors.New("seqcodec: malformed motion token")
)

// Delimiters: tracks within a beat, beats within a sequence.
const (
	trackSep = ","
	beatSep  = ";"
)

// minTokenLen is the shortest legal token: 2+2+1+1+1 header, one turns
// char, one motion-type char.
const minTokenLen = 9

// Fixed field offsets within a token.
const (
	offStartLoc = 0
	offEndLoc   = 2
	offStartOri = 4
	offEndOri   = 5
	offRotDir   = 6
	offTurns    = 7
)

// locCodes pads cardinal points to the fixed two-char width.
var locCodes = map[motion.GridLocation]string{
	motion.North:     "n.",
	motion.NorthEast: "ne",
	motion.East:      "e.",
	motion.SouthEast: "se",
	motion.South:     "s.",
	motion.SouthWest: "sw",
	motion.West:      "w.",
	motion.NorthWest: "nw",
}

var oriCodes = map[motion.Orientation]byte{
	motion.In:      'i',
	motion.Clock:   'c',
	motion.Out:     'o',
	motion.Counter: 'u',
}

var rotCodes = map[motion.RotationDirection]byte{
	motion.Clockwise:        'r',
	motion.CounterClockwise: 'l',
	motion.NoRotation:       'x',
}

var typeCodes = map[motion.MotionType]byte{
	motion.Pro:    'p',
	motion.Anti:   'a',
	motion.Static: 's',
	motion.Dash:   'd',
	motion.Float:  'f',
}

var (
	locByCode  = invert(locCodes)
	oriByCode  = invert(oriCodes)
	rotByCode  = invert(rotCodes)
	typeByCode = invert(typeCodes)
)

func invert[K comparable, V comparable](m map[K]V) map[V]K {
	inv := make(map[V]K, len(m))
	for k, v := range m {
		inv[v] = k
	}
	return inv
}

func encodeTurns(t motion.Turns) string {
	if t.IsFloat() {
		return "f"
	}
	return strconv.FormatFloat(float64(t), 'f', -1, 64)
}

func encodeMotion(m motion.MotionData, b *strings.Builder) {
	b.WriteString(locCodes[m.StartLoc])
	b.WriteString(locCodes[m.EndLoc])
	b.WriteByte(oriCodes[m.StartOri])
	b.WriteByte(oriCodes[m.EndOri])
	b.WriteByte(rotCodes[m.RotDir])
	b.WriteString(encodeTurns(m.Turns))
	b.WriteByte(typeCodes[m.MotionType])
}

// Encode serializes the sequence, beat 0 included, into the compact token
// form. The empty sequence encodes to the empty string.
func Encode(seq motion.SequenceData) string {
	var b strings.Builder
	for i, beat := range seq.Beats {
		if i > 0 {
			b.WriteString(beatSep)
		}
		encodeMotion(beat.Motion(motion.TrackA), &b)
		b.WriteString(trackSep)
		encodeMotion(beat.Motion(motion.TrackB), &b)
	}
	return b.String()
}

func decodeMotion(token string) (motion.MotionData, error) {
	var m motion.MotionData
	fail := func() (motion.MotionData, error) {
		return motion.MotionData{}, fmt.Errorf("decodeMotion(%q): %w", token, ErrMalformedToken)
	}
	if len(token) < minTokenLen {
		return fail()
	}

	var ok bool
	if m.StartLoc, ok = locByCode[token[offStartLoc:offEndLoc]]; !ok {
		return fail()
	}
	if m.EndLoc, ok = locByCode[token[offEndLoc:offStartOri]]; !ok {
		return fail()
	}
	if m.StartOri, ok = oriByCode[token[offStartOri]]; !ok {
		return fail()
	}
	if m.EndOri, ok = oriByCode[token[offEndOri]]; !ok {
		return fail()
	}
	if m.RotDir, ok = rotByCode[token[offRotDir]]; !ok {
		return fail()
	}
	if m.MotionType, ok = typeByCode[token[len(token)-1]]; !ok {
		return fail()
	}

	turnsStr := token[offTurns : len(token)-1]
	if turnsStr == "f" {
		m.Turns = motion.FloatTurns
	} else {
		v, err := strconv.ParseFloat(turnsStr, 64)
		if err != nil {
			return fail()
		}
		m.Turns = motion.Turns(v)
		if !m.Turns.Valid() {
			return fail()
		}
	}
	return m, nil
}

// Decode parses the compact token form back into a sequence. Positions are
// re-derived from the decoded locations; pre-float context of a Float
// motion is reconstructed from the same track's preceding shift motion when
// one exists.
func Decode(s string) (motion.SequenceData, error) {
	if s == "" {
		return motion.SequenceData{}, fmt.Errorf("Decode: %w", ErrEmptyInput)
	}

	seq := motion.SequenceData{}
	for i, beatStr := range strings.Split(s, beatSep) {
		tracks := strings.Split(beatStr, trackSep)
		if len(tracks) != 2 {
			return motion.SequenceData{}, fmt.Errorf("Decode: beat %d has %d tracks: %w", i, len(tracks), ErrMalformedToken)
		}
		beat := motion.BeatData{
			Index:   i,
			Motions: make(map[motion.TrackID]motion.MotionData, 2),
		}
		for t, id := range motion.Tracks {
			m, err := decodeMotion(tracks[t])
			if err != nil {
				return motion.SequenceData{}, fmt.Errorf("Decode: beat %d track %v: %w", i, id, err)
			}
			if m.MotionType == motion.Float && i > 0 {
				prev := seq.Beats[i-1].Motion(id)
				if prev.MotionType == motion.Pro || prev.MotionType == motion.Anti {
					m.PreFloatMotionType = prev.MotionType
					m.PreFloatRotDir = prev.RotDir
					m.HasPreFloat = true
				}
			}
			beat.Motions[id] = m
		}

		var err error
		if beat.StartPos, err = motion.PositionOf(beat.Motion(motion.TrackA).StartLoc, beat.Motion(motion.TrackB).StartLoc); err != nil {
			return motion.SequenceData{}, fmt.Errorf("Decode: beat %d: %w", i, err)
		}
		if beat.EndPos, err = motion.PositionOf(beat.Motion(motion.TrackA).EndLoc, beat.Motion(motion.TrackB).EndLoc); err != nil {
			return motion.SequenceData{}, fmt.Errorf("Decode: beat %d: %w", i, err)
		}
		seq.Beats = append(seq.Beats, beat)
	}
	return seq, nil
}

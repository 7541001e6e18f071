// Package motion core types, enums, and sentinel errors.
package motion

import (
	"errors"
	"math"
)

// Sentinel errors for the motion package.
var (
	// ErrEmptySequence indicates a sequence with no beats at all.
	ErrEmptySequence = errors.New("motion: sequence must contain at least the starting-position beat")
	// ErrStartBeat indicates beat 0 is not a valid starting-position beat
	// (both motions Static, start == end).
	ErrStartBeat = errors.New("motion: beat 0 must be a static starting position")
	// ErrTrackCount indicates a beat without exactly two tracks (A and B).
	ErrTrackCount = errors.New("motion: beat must describe exactly two tracks")
	// ErrMixedMode indicates two locations from different grid modes where
	// one consistent mode is required.
	ErrMixedMode = errors.New("motion: locations belong to different grid modes")
	// ErrUnknownPosition indicates a position name outside the canonical catalog.
	ErrUnknownPosition = errors.New("motion: unknown grid position")
	// ErrContinuity indicates adjacent beats whose positions do not chain.
	ErrContinuity = errors.New("motion: position continuity violated between adjacent beats")
	// ErrOrientationBreak indicates adjacent beats whose per-track
	// orientations do not chain.
	ErrOrientationBreak = errors.New("motion: orientation continuity violated between adjacent beats")
	// ErrInvalidTurns indicates a turn count that is negative or not a
	// half-integer (and not the Float marker).
	ErrInvalidTurns = errors.New("motion: turns must be a non-negative half-integer or the float marker")
	// ErrBadField indicates a raw upstream field that could not be adapted
	// into its canonical type.
	ErrBadField = errors.New("motion: unrecognized or malformed field")
)

// GridLocation is one of the 8 compass points, ordered clockwise from North.
// The integer value is the clockwise octant index (North=0 … NorthWest=7).
type GridLocation int

const (
	North GridLocation = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest

	numLocations // sentinel for iteration; not a location
)

// locationNames is indexed by octant.
var locationNames = [numLocations]string{"n", "ne", "e", "se", "s", "sw", "w", "nw"}

// String returns the lowercase compass code ("n", "ne", ...).
func (l GridLocation) String() string {
	if l < 0 || l >= numLocations {
		return "invalid"
	}
	return locationNames[l]
}

// Valid reports whether l is one of the 8 compass points.
func (l GridLocation) Valid() bool { return l >= 0 && l < numLocations }

// Mode returns the grid mode l belongs to: cardinal points sit on even
// octants, diagonal points on odd ones.
func (l GridLocation) Mode() GridMode {
	if l%2 == 0 {
		return ModeCardinal
	}
	return ModeDiagonal
}

// GridMode selects one of the two parallel, non-overlapping coordinate
// systems. A sequence uses one mode consistently.
type GridMode int

const (
	// ModeCardinal uses N, E, S, W.
	ModeCardinal GridMode = iota
	// ModeDiagonal uses NE, SE, SW, NW.
	ModeDiagonal
)

// String returns "cardinal" or "diagonal".
func (m GridMode) String() string {
	if m == ModeCardinal {
		return "cardinal"
	}
	return "diagonal"
}

// Members returns the mode's four canonical locations in clockwise order.
func (m GridMode) Members() [4]GridLocation {
	if m == ModeCardinal {
		return [4]GridLocation{North, East, South, West}
	}
	return [4]GridLocation{NorthEast, SouthEast, SouthWest, NorthWest}
}

// Orientation is a track's rotational orientation. The integer values trace
// the half-step cycle In → Clock → Out → Counter under clockwise advance;
// the orientation calculus relies on this ordering.
type Orientation int

const (
	// In faces the grid center (radial class).
	In Orientation = iota
	// Clock faces the clockwise tangent (non-radial class).
	Clock
	// Out faces away from the grid center (radial class).
	Out
	// Counter faces the counterclockwise tangent (non-radial class).
	Counter

	numOrientations
)

var orientationNames = [numOrientations]string{"in", "clock", "out", "counter"}

// String returns the lowercase orientation name.
func (o Orientation) String() string {
	if o < 0 || o >= numOrientations {
		return "invalid"
	}
	return orientationNames[o]
}

// Radial reports whether o belongs to the radial class (In/Out) as opposed
// to the non-radial class (Clock/Counter).
func (o Orientation) Radial() bool { return o%2 == 0 }

// RotationDirection is the sense of a motion's rotation.
type RotationDirection int

const (
	// Clockwise rotation.
	Clockwise RotationDirection = iota
	// CounterClockwise rotation.
	CounterClockwise
	// NoRotation marks motions without rotational movement.
	NoRotation
)

// String returns "cw", "ccw" or "none".
func (d RotationDirection) String() string {
	switch d {
	case Clockwise:
		return "cw"
	case CounterClockwise:
		return "ccw"
	default:
		return "none"
	}
}

// Sign returns +1 for Clockwise, -1 for CounterClockwise, 0 for NoRotation.
// Orientation half-steps advance by this sign.
func (d RotationDirection) Sign() int {
	switch d {
	case Clockwise:
		return +1
	case CounterClockwise:
		return -1
	default:
		return 0
	}
}

// MotionType classifies one track's movement within a beat.
type MotionType int

const (
	// Pro rotation follows the handpath direction.
	Pro MotionType = iota
	// Anti rotation opposes the handpath direction.
	Anti
	// Static keeps the track in place.
	Static
	// Dash translates the track without rotation unless turns are added.
	Dash
	// Float is a turnless glide; its orientation outcome derives from the
	// pre-float context carried on the MotionData.
	Float
)

var motionTypeNames = [...]string{"pro", "anti", "static", "dash", "float"}

// String returns the lowercase motion-type name.
func (t MotionType) String() string {
	if t < 0 || int(t) >= len(motionTypeNames) {
		return "invalid"
	}
	return motionTypeNames[t]
}

// Shift reports whether t moves the track between distinct locations with
// rotational content (Pro, Anti, Float).
func (t MotionType) Shift() bool { return t == Pro || t == Anti || t == Float }

// Turns is a motion's turn count: a non-negative number in half-increments
// (0, 0.5, 1, 1.5, ...) or the distinguished FloatTurns marker.
type Turns float64

// FloatTurns is the distinguished marker used by Float motions, which carry
// no numeric turn count.
const FloatTurns Turns = -1

// IsFloat reports whether t is the float marker.
func (t Turns) IsFloat() bool { return t == FloatTurns }

// Valid reports whether t is the float marker or a non-negative half-integer.
func (t Turns) Valid() bool {
	if t.IsFloat() {
		return true
	}
	v := float64(t)
	return v >= 0 && v*2 == math.Trunc(v*2)
}

// TrackID identifies one of the two tracked points within a beat.
type TrackID int

const (
	// TrackA is the first tracked point.
	TrackA TrackID = iota
	// TrackB is the second tracked point.
	TrackB
)

// Tracks lists both track identifiers in canonical order.
var Tracks = [2]TrackID{TrackA, TrackB}

// String returns "a" or "b".
func (id TrackID) String() string {
	if id == TrackA {
		return "a"
	}
	return "b"
}

// Other returns the opposite track identifier.
func (id TrackID) Other() TrackID {
	if id == TrackA {
		return TrackB
	}
	return TrackA
}

// MotionData describes one track's movement within a beat. It is a plain
// value: copy freely, never shared mutably.
type MotionData struct {
	StartLoc GridLocation
	EndLoc   GridLocation
	StartOri Orientation
	EndOri   Orientation

	MotionType MotionType
	RotDir     RotationDirection
	Turns      Turns

	// Pre-float context, carried from the motion that preceded a Float.
	// Meaningful only when HasPreFloat is true.
	PreFloatMotionType MotionType
	PreFloatRotDir     RotationDirection
	HasPreFloat        bool
}

// BeatData is one discrete step of a sequence: an index, a letter label,
// start/end named positions, and exactly two per-track motions. Treat as
// immutable; derive changed beats via Clone.
type BeatData struct {
	Index    int
	Letter   string
	StartPos GridPosition
	EndPos   GridPosition
	Motions  map[TrackID]MotionData
}

// Clone returns a deep copy of the beat.
func (b BeatData) Clone() BeatData {
	nb := b
	nb.Motions = make(map[TrackID]MotionData, len(b.Motions))
	for id, m := range b.Motions {
		nb.Motions[id] = m
	}
	return nb
}

// Motion returns the motion of the given track. The zero MotionData is
// returned for an absent track; Validate rejects such beats.
func (b BeatData) Motion(id TrackID) MotionData { return b.Motions[id] }

// SequenceData is an ordered sequence of beats. Beat 0 is reserved for the
// starting position.
type SequenceData struct {
	Beats []BeatData
}

// Len returns the number of beats, including the starting-position beat.
func (s SequenceData) Len() int { return len(s.Beats) }

// Clone returns a deep copy of the sequence.
func (s SequenceData) Clone() SequenceData {
	out := SequenceData{Beats: make([]BeatData, 0, len(s.Beats))}
	for _, b := range s.Beats {
		out.Beats = append(out.Beats, b.Clone())
	}
	return out
}

// Mode returns the grid mode of the sequence, derived from the first
// track-A location of beat 0. Validate enforces mode consistency across
// every location in the sequence.
func (s SequenceData) Mode() GridMode {
	if len(s.Beats) == 0 {
		return ModeCardinal
	}
	return s.Beats[0].Motion(TrackA).StartLoc.Mode()
}

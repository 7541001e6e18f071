package classify

import (
	"github.com/oktograph/oktograph/motion"
	"github.com/oktograph/oktograph/symmetry"
)

// Tag labels one detected relationship between two beats.
type Tag string

// The full tag vocabulary.
const (
	TagRepeated   Tag = "repeated"
	TagRotated90  Tag = "rotated_90"
	TagRotated180 Tag = "rotated_180"
	TagRotated270 Tag = "rotated_270"
	TagMirrored   Tag = "mirrored"
	TagFlipped    Tag = "flipped"
	TagSwapped    Tag = "swapped"
	TagInverted   Tag = "inverted"
)

// positionChecks fixes the detection order of position-transform tags.
var positionChecks = []struct {
	op  symmetry.Operation
	tag Tag
}{
	{symmetry.Rotate90CCW, TagRotated90},
	{symmetry.Rotate180, TagRotated180},
	{symmetry.Rotate270CCW, TagRotated270},
	{symmetry.MirrorVertical, TagMirrored},
	{symmetry.FlipHorizontal, TagFlipped},
}

// sameLocations reports whether both tracks' start/end locations coincide.
func sameLocations(a, b motion.BeatData) bool {
	for _, id := range motion.Tracks {
		am, bm := a.Motion(id), b.Motion(id)
		if am.StartLoc != bm.StartLoc || am.EndLoc != bm.EndLoc {
			return false
		}
	}
	return true
}

// sameMotionTypes reports whether both tracks' motion types coincide.
func sameMotionTypes(a, b motion.BeatData) bool {
	for _, id := range motion.Tracks {
		if a.Motion(id).MotionType != b.Motion(id).MotionType {
			return false
		}
	}
	return true
}

// transformMatches reports whether applying op to every one of a's track
// locations yields b's corresponding locations. Lookup misses (wrong mode)
// simply fail the match.
func transformMatches(a, b motion.BeatData, op symmetry.Operation) bool {
	for _, id := range motion.Tracks {
		am, bm := a.Motion(id), b.Motion(id)
		start, err := symmetry.TransformLocation(am.StartLoc, op, am.StartLoc.Mode())
		if err != nil || start != bm.StartLoc {
			return false
		}
		end, err := symmetry.TransformLocation(am.EndLoc, op, am.EndLoc.Mode())
		if err != nil || end != bm.EndLoc {
			return false
		}
	}
	return true
}

// swapMatches reports whether a's track-A locations equal b's track-B
// locations and vice versa.
func swapMatches(a, b motion.BeatData) bool {
	for _, id := range motion.Tracks {
		am, bm := a.Motion(id), b.Motion(id.Other())
		if am.StartLoc != bm.StartLoc || am.EndLoc != bm.EndLoc {
			return false
		}
	}
	return true
}

// invertMatches reports whether inverting each of a's motion types yields
// b's motion types.
func invertMatches(a, b motion.BeatData) bool {
	for _, id := range motion.Tracks {
		if symmetry.InvertMotionType(a.Motion(id).MotionType) != b.Motion(id).MotionType {
			return false
		}
	}
	return true
}

// CompareBeatPair classifies the exact set of transformations relating a to
// b, in deterministic order: the position-transform tag (if any), then
// "swapped", then "inverted". Identical beats (locations and motion types)
// report [repeated] exclusively. A nil result means no relationship.
func CompareBeatPair(a, b motion.BeatData) []Tag {
	if sameLocations(a, b) && sameMotionTypes(a, b) {
		return []Tag{TagRepeated}
	}

	var tags []Tag
	for _, check := range positionChecks {
		if transformMatches(a, b, check.op) {
			tags = append(tags, check.tag)
			break
		}
	}
	if swapMatches(a, b) {
		tags = append(tags, TagSwapped)
	}
	if invertMatches(a, b) {
		tags = append(tags, TagInverted)
	}
	return tags
}

// BuildPairGraph applies CompareBeatPair over all ordered pairs of the given
// beats, keyed by beat index. Pairs with no relationship are omitted. The
// result is a plain nested map for offline pattern analysis; nothing is
// mutated or generated.
func BuildPairGraph(beats []motion.BeatData) map[int]map[int][]Tag {
	graph := make(map[int]map[int][]Tag, len(beats))
	for _, a := range beats {
		for _, b := range beats {
			if a.Index == b.Index {
				continue
			}
			tags := CompareBeatPair(a, b)
			if len(tags) == 0 {
				continue
			}
			if graph[a.Index] == nil {
				graph[a.Index] = make(map[int][]Tag)
			}
			graph[a.Index][b.Index] = tags
		}
	}
	return graph
}

// UniformStep groups a sequence's authored beats by letter label and checks
// whether every letter group relates its consecutive occurrences by one and
// the same tag set — the signature of a uniform "modular" LOOP. It returns
// that tag set and true when uniform; nil and false otherwise (including
// sequences with no letter appearing twice).
func UniformStep(seq motion.SequenceData) ([]Tag, bool) {
	if len(seq.Beats) < 2 {
		return nil, false
	}
	byLetter := make(map[string][]motion.BeatData)
	order := make([]string, 0)
	for _, b := range seq.Beats[1:] { // beat 0 is the starting position
		if _, seen := byLetter[b.Letter]; !seen {
			order = append(order, b.Letter)
		}
		byLetter[b.Letter] = append(byLetter[b.Letter], b)
	}

	var step []Tag
	found := false
	for _, letter := range order {
		group := byLetter[letter]
		for i := 0; i+1 < len(group); i++ {
			tags := CompareBeatPair(group[i], group[i+1])
			if len(tags) == 0 {
				return nil, false
			}
			if !found {
				step = tags
				found = true
				continue
			}
			if !equalTags(step, tags) {
				return nil, false
			}
		}
	}
	if !found {
		return nil, false
	}
	return step, true
}

func equalTags(a, b []Tag) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

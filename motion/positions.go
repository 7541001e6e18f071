// positions.go - canonical grid-position catalog (data-only).
//
// Purpose:
//   - Single source of truth for the named vertices a sequence visits. A
//     GridPosition names the composite of both tracks' locations; the
//     catalog is total over all same-mode ordered pairs (32 entries) and
//     invertible.
//
// Naming contract:
//   - beta<i>  — tracks co-located (separation 0), i = track A octant + 1.
//   - alpha<i> — tracks opposed (separation 4), i = track A octant + 1.
//   - gamma<i> — tracks 90° apart: track B clockwise of A occupies
//     gamma1..gamma8 (i = octant + 1), counterclockwise gamma9..gamma16
//     (i = octant + 9).
//
// Determinism:
//   - Both lookup maps are built once from the octant arithmetic above and
//     never mutated. Changing the numbering is a breaking change for
//     fixtures and golden files.

package motion

import (
	"fmt"
	"strconv"
)

// GridPosition is a canonical position name from the catalog
// (beta1..beta8, alpha1..alpha8, gamma1..gamma16).
type GridPosition string

// locPair is an ordered (track A, track B) location pair.
type locPair struct{ a, b GridLocation }

// positionByPair and pairByPosition are the two immutable catalog views.
var (
	positionByPair = buildPositionTable()
	pairByPosition = invertPositionTable(positionByPair)
)

// separation-to-family constants, in octant steps.
const (
	sepBeta         = 0 // co-located
	sepGammaCW      = 2 // track B 90° clockwise of track A
	sepAlpha        = 4 // opposed
	sepGammaCCW     = 6 // track B 90° counterclockwise of track A
	gammaCCWOffset  = 8 // gamma9..gamma16 numbering shift
	octantsPerMode  = 2 // octant stride within one mode
	totalOctants    = 8
)

// buildPositionTable enumerates every same-mode ordered pair exactly once.
func buildPositionTable() map[locPair]GridPosition {
	table := make(map[locPair]GridPosition, 32)
	for a := GridLocation(0); a < numLocations; a++ {
		// Only same-mode partners: step around the compass two octants at
		// a time starting from a's own octant.
		for step := 0; step < totalOctants; step += octantsPerMode {
			b := GridLocation((int(a) + step) % totalOctants)
			table[locPair{a, b}] = nameFor(a, b)
		}
	}
	return table
}

// nameFor derives the canonical name from the octant separation.
func nameFor(a, b GridLocation) GridPosition {
	sep := (int(b) - int(a) + totalOctants) % totalOctants
	idx := int(a) + 1
	switch sep {
	case sepBeta:
		return GridPosition("beta" + strconv.Itoa(idx))
	case sepAlpha:
		return GridPosition("alpha" + strconv.Itoa(idx))
	case sepGammaCW:
		return GridPosition("gamma" + strconv.Itoa(idx))
	default: // sepGammaCCW
		return GridPosition("gamma" + strconv.Itoa(idx+gammaCCWOffset))
	}
}

func invertPositionTable(byPair map[locPair]GridPosition) map[GridPosition]locPair {
	inv := make(map[GridPosition]locPair, len(byPair))
	for pair, pos := range byPair {
		inv[pos] = pair
	}
	return inv
}

// PositionOf resolves an ordered (track A, track B) location pair to its
// canonical named position. Pairs mixing grid modes return ErrMixedMode.
func PositionOf(a, b GridLocation) (GridPosition, error) {
	if !a.Valid() || !b.Valid() {
		return "", fmt.Errorf("PositionOf(%v,%v): %w", a, b, ErrUnknownPosition)
	}
	if a.Mode() != b.Mode() {
		return "", fmt.Errorf("PositionOf(%v,%v): %w", a, b, ErrMixedMode)
	}
	return positionByPair[locPair{a, b}], nil
}

// Locations inverts PositionOf: it returns the (track A, track B) location
// pair named by pos, or ErrUnknownPosition for names outside the catalog.
func Locations(pos GridPosition) (a, b GridLocation, err error) {
	pair, ok := pairByPosition[pos]
	if !ok {
		return 0, 0, fmt.Errorf("Locations(%q): %w", pos, ErrUnknownPosition)
	}
	return pair.a, pair.b, nil
}

// Swap returns the position reached when the two tracks exchange locations.
// Beta positions are their own swap images; alpha positions swap with the
// opposed-numbered alpha, gamma positions swap between the clockwise and
// counterclockwise families.
func Swap(pos GridPosition) (GridPosition, error) {
	a, b, err := Locations(pos)
	if err != nil {
		return "", err
	}
	return PositionOf(b, a)
}

// Positions lists every catalog name in a deterministic order:
// beta1..beta8, alpha1..alpha8, gamma1..gamma16.
func Positions() []GridPosition {
	out := make([]GridPosition, 0, len(pairByPosition))
	for _, family := range []string{"beta", "alpha", "gamma"} {
		n := totalOctants
		if family == "gamma" {
			n = 2 * totalOctants
		}
		for i := 1; i <= n; i++ {
			out = append(out, GridPosition(family+strconv.Itoa(i)))
		}
	}
	return out
}

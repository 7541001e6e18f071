// tables.go - canonical symmetry tables (data-only).
//
// Purpose:
//   - Single source of truth for the image of each grid location under each
//     operation, per grid mode. Logic lives in symmetry.go; this file holds
//     only data.
//
// Contract (for consumers):
//   - Each per-mode table is total over that mode's four canonical members
//     and contains nothing else: rotating a cardinal point through the
//     diagonal table (or vice versa) is a lookup miss by construction.
//   - The tables are immutable after package load. The rotation entries
//     must keep forming a 4-cycle and the mirror/flip entries must stay
//     involutions; symmetry_test.go pins both properties for every entry.

package symmetry

import "github.com/oktograph/oktograph/motion"

// locationTable maps one operation's images within one grid mode.
type locationTable map[motion.GridLocation]motion.GridLocation

// locationTables holds every (mode, operation, location) image.
var locationTables = map[motion.GridMode]map[Operation]locationTable{
	motion.ModeCardinal: {
		Rotate90CCW: {
			motion.North: motion.West,
			motion.West:  motion.South,
			motion.South: motion.East,
			motion.East:  motion.North,
		},
		Rotate180: {
			motion.North: motion.South,
			motion.South: motion.North,
			motion.East:  motion.West,
			motion.West:  motion.East,
		},
		Rotate270CCW: {
			motion.North: motion.East,
			motion.East:  motion.South,
			motion.South: motion.West,
			motion.West:  motion.North,
		},
		MirrorVertical: {
			motion.North: motion.North,
			motion.South: motion.South,
			motion.East:  motion.West,
			motion.West:  motion.East,
		},
		FlipHorizontal: {
			motion.North: motion.South,
			motion.South: motion.North,
			motion.East:  motion.East,
			motion.West:  motion.West,
		},
	},
	motion.ModeDiagonal: {
		Rotate90CCW: {
			motion.NorthEast: motion.NorthWest,
			motion.NorthWest: motion.SouthWest,
			motion.SouthWest: motion.SouthEast,
			motion.SouthEast: motion.NorthEast,
		},
		Rotate180: {
			motion.NorthEast: motion.SouthWest,
			motion.SouthWest: motion.NorthEast,
			motion.SouthEast: motion.NorthWest,
			motion.NorthWest: motion.SouthEast,
		},
		Rotate270CCW: {
			motion.NorthEast: motion.SouthEast,
			motion.SouthEast: motion.SouthWest,
			motion.SouthWest: motion.NorthWest,
			motion.NorthWest: motion.NorthEast,
		},
		MirrorVertical: {
			motion.NorthEast: motion.NorthWest,
			motion.NorthWest: motion.NorthEast,
			motion.SouthEast: motion.SouthWest,
			motion.SouthWest: motion.SouthEast,
		},
		FlipHorizontal: {
			motion.NorthEast: motion.SouthEast,
			motion.SouthEast: motion.NorthEast,
			motion.NorthWest: motion.SouthWest,
			motion.SouthWest: motion.NorthWest,
		},
	},
}

// motionInversion maps each motion type to its inverse. Pro and Anti swap;
// Static, Dash and Float are fixed points.
var motionInversion = map[motion.MotionType]motion.MotionType{
	motion.Pro:    motion.Anti,
	motion.Anti:   motion.Pro,
	motion.Static: motion.Static,
	motion.Dash:   motion.Dash,
	motion.Float:  motion.Float,
}

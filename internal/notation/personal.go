// Package notation describes moves in plain words for people following a
// solution by hand.
package notation

import (
	"strings"

	gocube "github.com/SeamusWaldron/gocube_solver"
)

// personal holds the clockwise and counter-clockwise wording per face.
// Reference frame: White on top, Green in front, facing the cube.
var personal = map[gocube.Face][2]string{
	gocube.Right: {"R up", "R down"},
	gocube.Left:  {"L down", "L up"},
	gocube.Up:    {"T rotate right", "T rotate left"},
	gocube.Down:  {"B rotate right", "B rotate left"},
	gocube.Front: {"F rotate clockwise", "F rotate anti-clockwise"},
	gocube.Back:  {"Back rotate clockwise", "Back rotate anti-clockwise"},
}

// ToPersonalNotation converts a Move to personal notation:
//
//	R  -> "R up"            R' -> "R down"            R2 -> "R up x 2"
//	U  -> "T rotate right"  U' -> "T rotate left"     U2 -> "T rotate right x 2"
//	F  -> "F rotate clockwise"                        F2 -> "F rotate x 2"
//
// Wide turns, slices and rotations keep their standard notation.
func ToPersonalNotation(m gocube.Move) string {
	words, ok := personal[m.Face]
	if !ok || m.Layer != gocube.LayerOuter {
		return m.Notation()
	}

	switch m.Turn {
	case gocube.CCW:
		return words[1]
	case gocube.Double:
		// A half turn of F or B has no preferred direction.
		if m.Face == gocube.Front || m.Face == gocube.Back {
			return strings.TrimSuffix(words[0], " clockwise") + " x 2"
		}
		return words[0] + " x 2"
	default:
		return words[0]
	}
}

// ToPersonalSequence converts a slice of moves to personal notation strings.
func ToPersonalSequence(moves []gocube.Move) []string {
	result := make([]string, len(moves))
	for i, m := range moves {
		result[i] = ToPersonalNotation(m)
	}
	return result
}

// FormatPersonalSequence formats moves as a comma-separated personal notation string.
func FormatPersonalSequence(moves []gocube.Move) string {
	return strings.Join(ToPersonalSequence(moves), ", ")
}

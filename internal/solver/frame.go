package solver

import (
	"fmt"
	"strings"

	gocube "github.com/SeamusWaldron/gocube_solver"
)

// crossFrame keeps UP on top and turns front to face.
func crossFrame(front gocube.Face) gocube.Orientation {
	return gocube.Orientation{Up: gocube.Up, Front: front}
}

// lastLayerFrame turns the cube upside down so algorithms written for the
// top layer act on the physical DOWN layer.
func lastLayerFrame(front gocube.Face) gocube.Orientation {
	return gocube.Orientation{Up: gocube.Down, Front: front}
}

// slotFrame returns the last-layer frame whose logical front-right column
// is the column between side faces a and b.
func slotFrame(a, b gocube.Face) gocube.Orientation {
	if gocube.Down.Normal().Cross(a.Normal()) == b.Normal() {
		return lastLayerFrame(a)
	}
	return lastLayerFrame(b)
}

// sideFaces returns the occupied faces of cb that are neither UP nor DOWN.
func sideFaces(cb *gocube.Cubie) []gocube.Face {
	var out []gocube.Face
	for _, f := range cb.Faces() {
		if f != gocube.Up && f != gocube.Down {
			out = append(out, f)
		}
	}
	return out
}

// otherFace returns the face of an edge that is not f.
func otherFace(cb *gocube.Cubie, f gocube.Face) gocube.Face {
	for _, g := range cb.Faces() {
		if g != f {
			return g
		}
	}
	return f
}

// downTurns returns how many clockwise D turns carry from onto to. Both
// must be cells or normals of the DOWN layer's ring.
func downTurns(from, to gocube.Coord) (int, error) {
	for k := 0; k < 4; k++ {
		if from == to {
			return k, nil
		}
		from = from.Rotate(gocube.D.Axis(), gocube.D.Angle())
	}
	return 0, fmt.Errorf("no D turn carries %s onto %s", from, to)
}

// repeat returns token repeated n times as a move sequence prefix.
func repeat(token string, n int) string {
	return strings.Repeat(token+" ", n)
}

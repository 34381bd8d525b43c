package solver

import (
	"fmt"

	gocube "github.com/SeamusWaldron/gocube_solver"
)

// ringCells are the DOWN-layer cells in signature order: front-right-down,
// front-down, front-left-down, left-down, left-back-down, back-down,
// back-right-down, right-down.
var ringCells = [8]gocube.Coord{
	{X: 1, Y: -1, Z: 1},
	{Y: -1, Z: 1},
	{X: -1, Y: -1, Z: 1},
	{X: -1, Y: -1},
	{X: -1, Y: -1, Z: -1},
	{Y: -1, Z: -1},
	{X: 1, Y: -1, Z: -1},
	{X: 1, Y: -1},
}

// ringFaces is the side face shared by ring cells 2i and 2i+1.
var ringFaces = [4]gocube.Face{gocube.Front, gocube.Left, gocube.Back, gocube.Right}

var lastLayerColor = gocube.Down.SolvedColor()

func ringCubies(c *gocube.Cube) ([8]*gocube.Cubie, error) {
	var out [8]*gocube.Cubie
	for i, pos := range ringCells {
		cb, err := c.CubieAt(pos)
		if err != nil {
			return out, err
		}
		out[i] = cb
	}
	return out, nil
}

// OLLSignature encodes where each last-layer piece shows its DOWN color:
// 0 on DOWN, 1 on a side for edges, and for corners 1 or 2 depending on
// which side face carries it.
func OLLSignature(c *gocube.Cube) (gocube.Signature, error) {
	ring, err := ringCubies(c)
	if err != nil {
		return nil, err
	}
	sig := make(gocube.Signature, len(ring))
	for i, cb := range ring {
		f, ok := cb.FaceOfColor(lastLayerColor)
		switch {
		case !ok:
			return nil, fmt.Errorf("%w: %s does not belong to the last layer", ErrNotReady, cb)
		case f == gocube.Down:
			sig[i] = 0
		case cb.IsEdge():
			sig[i] = 1
		default:
			sig[i] = cornerTwist(cb, f)
		}
	}
	return sig, nil
}

// cornerTwist tells apart the two side faces a corner can show its DOWN
// color on.
func cornerTwist(corner *gocube.Cubie, f gocube.Face) int {
	sides := sideFaces(corner)
	other := sides[0]
	if other == f {
		other = sides[1]
	}
	if f.Normal().Cross(other.Normal()) == gocube.Down.Normal() {
		return 1
	}
	return 2
}

// PLLSignature encodes, for each pair of neighbouring stickers on a side
// face of the last layer, how the second sticker's home face relates to
// the first's: 0 same, 1 right, -1 left, 2 opposite. The last layer must
// be oriented.
func PLLSignature(c *gocube.Cube) (gocube.Signature, error) {
	ring, err := ringCubies(c)
	if err != nil {
		return nil, err
	}
	sig := make(gocube.Signature, len(ring))
	for i := range ring {
		face := ringFaces[i/2]
		a, okA := ring[i].ColorOf(face)
		b, okB := ring[(i+1)%len(ring)].ColorOf(face)
		if !okA || !okB {
			return nil, fmt.Errorf("%w: ring cell %d has no %s sticker", ErrNotReady, i, face)
		}
		d, err := colorDirection(a, b)
		if err != nil {
			return nil, err
		}
		sig[i] = d
	}
	return sig, nil
}

func colorDirection(a, b gocube.Color) (int, error) {
	ha, err := a.HomeFace()
	if err != nil {
		return 0, err
	}
	hb, err := b.HomeFace()
	if err != nil {
		return 0, err
	}
	for _, h := range []gocube.Face{ha, hb} {
		if h == gocube.Up || h == gocube.Down {
			return 0, fmt.Errorf("%w: last layer not oriented", ErrNotReady)
		}
	}
	switch {
	case ha == hb:
		return 0, nil
	case ha.Opposite() == hb:
		return 2, nil
	case ha.Normal().Cross(hb.Normal()) == gocube.Down.Normal():
		return 1, nil
	default:
		return -1, nil
	}
}

package solver

import (
	"fmt"

	gocube "github.com/SeamusWaldron/gocube_solver"
)

// f2lCase classifies a first-layer corner or a middle-layer edge.
type f2lCase int

const (
	cornerSolved   f2lCase = iota
	cornerInTop            // in the UP layer but not solved
	cornerInBottom         // waiting in the DOWN layer
	edgeSolved
	edgeInMiddle // in the middle layer but misplaced or flipped
	edgeInBottom // waiting in the DOWN layer
	numF2LCases
)

var f2lCaseNames = [numF2LCases]string{
	cornerSolved:   "corner-solved",
	cornerInTop:    "corner-top",
	cornerInBottom: "corner-bottom",
	edgeSolved:     "edge-solved",
	edgeInMiddle:   "edge-middle",
	edgeInBottom:   "edge-bottom",
}

func (k f2lCase) String() string {
	return f2lCaseNames[k]
}

// All F2L algorithms are written with the last layer on top, so logical U
// turns the physical DOWN layer and logical D is the finished UP layer.
const (
	cornerTrigger  = "R U RPrime UPrime"
	rightInsertion = "U R UPrime RPrime UPrime FPrime U F"
	leftInsertion  = "UPrime LPrime U L U F UPrime FPrime"
)

type f2lHandler func(piece *gocube.Cubie) (string, gocube.Orientation, error)

var f2lHandlers = [numF2LCases]f2lHandler{
	cornerSolved: noop,
	// Lift the corner into the DOWN layer.
	cornerInTop: func(corner *gocube.Cubie) (string, gocube.Orientation, error) {
		sides := sideFaces(corner)
		return cornerTrigger, slotFrame(sides[0], sides[1]), nil
	},
	// Bring the corner under its slot and run the trigger once. The
	// corner then sits in its slot, solved or twisted.
	cornerInBottom: func(corner *gocube.Cubie) (string, gocube.Orientation, error) {
		a, b, err := homeSides(corner)
		if err != nil {
			return "", gocube.Orientation{}, err
		}
		target := a.Normal().Add(b.Normal()).Add(gocube.Down.Normal())
		k, err := downTurns(corner.Position(), target)
		if err != nil {
			return "", gocube.Orientation{}, err
		}
		return repeat("U", k) + cornerTrigger, slotFrame(a, b), nil
	},
	edgeSolved: noop,
	// Replace the edge with whatever sits above the slot, pushing it down.
	edgeInMiddle: func(edge *gocube.Cubie) (string, gocube.Orientation, error) {
		sides := sideFaces(edge)
		return rightInsertion, slotFrame(sides[0], sides[1]), nil
	},
	// Bring the edge's side color over its center, then insert it toward
	// the face of its DOWN color.
	edgeInBottom: func(edge *gocube.Cubie) (string, gocube.Orientation, error) {
		side := otherFace(edge, gocube.Down)
		sideColor, _ := edge.ColorOf(side)
		downColor, _ := edge.ColorOf(gocube.Down)
		front, err := sideColor.HomeFace()
		if err != nil {
			return "", gocube.Orientation{}, err
		}
		into, err := downColor.HomeFace()
		if err != nil {
			return "", gocube.Orientation{}, err
		}
		k, err := downTurns(side.Normal(), front.Normal())
		if err != nil {
			return "", gocube.Orientation{}, err
		}
		frame := lastLayerFrame(front)
		if frame.Physical(gocube.Right) == into {
			return repeat("U", k) + rightInsertion, frame, nil
		}
		return repeat("U", k) + leftInsertion, frame, nil
	},
}

func init() {
	for k, h := range f2lHandlers {
		if h == nil {
			panic(fmt.Sprintf("solver: no handler for f2l case %d", k))
		}
	}
}

func noop(*gocube.Cubie) (string, gocube.Orientation, error) {
	return "", gocube.DefaultOrientation, nil
}

// homeSides returns the side faces a corner belongs between, from its two
// non-cross colors.
func homeSides(corner *gocube.Cubie) (gocube.Face, gocube.Face, error) {
	var homes []gocube.Face
	for _, color := range corner.Colors() {
		if color == crossColor {
			continue
		}
		f, err := color.HomeFace()
		if err != nil {
			return 0, 0, err
		}
		homes = append(homes, f)
	}
	if len(homes) != 2 {
		return 0, 0, fmt.Errorf("%w: %s is not a first-layer corner", ErrNotReady, corner)
	}
	return homes[0], homes[1], nil
}

func classifyCorner(corner *gocube.Cubie) f2lCase {
	switch {
	case corner.IsSolved():
		return cornerSolved
	case corner.Position().Y == 1:
		return cornerInTop
	default:
		return cornerInBottom
	}
}

func classifyMiddleEdge(edge *gocube.Cubie) f2lCase {
	switch {
	case edge.IsSolved():
		return edgeSolved
	case edge.Position().Y == 0:
		return edgeInMiddle
	default:
		return edgeInBottom
	}
}

// F2L completes the first layer corners and then the middle layer edges,
// with the cross already on UP.
type F2L struct{}

func NewF2L() *F2L { return &F2L{} }

func (*F2L) Name() string { return "f2l" }

func (*F2L) Phase() gocube.Phase { return gocube.PhaseF2L }

func (*F2L) IsSolved(c *gocube.Cube) bool { return c.IsF2LSolved() }

// slots lists the side-face pairs of the four first-two-layer columns.
var slots = [][2]gocube.Face{
	{gocube.Front, gocube.Right},
	{gocube.Right, gocube.Back},
	{gocube.Back, gocube.Left},
	{gocube.Left, gocube.Front},
}

const (
	// The trigger solves a corner above its slot within five repetitions;
	// one more step covers the initial lift out of a wrong slot.
	maxCornerSteps = 8
	maxEdgeSteps   = 4
)

func (s *F2L) Solve(c *gocube.Cube) (*StepResult, error) {
	if !c.IsCrossSolved() {
		return nil, fmt.Errorf("%w: f2l needs the cross", ErrNotReady)
	}
	rec := newRecorder(s, c)

	for _, slot := range slots {
		corner, err := c.FindCubie(crossColor, slot[0].SolvedColor(), slot[1].SolvedColor())
		if err != nil {
			return nil, err
		}
		if err := s.place(rec, corner, classifyCorner, maxCornerSteps); err != nil {
			return nil, err
		}
	}
	if !c.IsFirstLayerSolved() {
		return nil, fmt.Errorf("%w: first layer", ErrUnsolved)
	}

	for _, slot := range slots {
		edge, err := c.FindCubie(slot[0].SolvedColor(), slot[1].SolvedColor())
		if err != nil {
			return nil, err
		}
		if err := s.place(rec, edge, classifyMiddleEdge, maxEdgeSteps); err != nil {
			return nil, err
		}
	}
	if !c.IsF2LSolved() {
		return nil, fmt.Errorf("%w: f2l", ErrUnsolved)
	}
	return rec.result, nil
}

// place drives one piece through its cases until it is solved.
func (s *F2L) place(rec *recorder, piece *gocube.Cubie, classify func(*gocube.Cubie) f2lCase, limit int) error {
	for i := 0; i < limit && !piece.IsSolved(); i++ {
		k := classify(piece)
		alg, frame, err := f2lHandlers[k](piece)
		if err != nil {
			return err
		}
		if err := rec.apply(CaseStep{Case: k.String(), Piece: piece.String(), Algorithm: alg}, frame); err != nil {
			return err
		}
	}
	if !piece.IsSolved() {
		return fmt.Errorf("%w: f2l piece stuck at %s", ErrUnsolved, piece)
	}
	return nil
}

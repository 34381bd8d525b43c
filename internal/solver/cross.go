package solver

import (
	"fmt"

	gocube "github.com/SeamusWaldron/gocube_solver"
)

// crossCase classifies where a cross edge sits relative to its slot.
type crossCase int

const (
	crossSolved      crossCase = iota
	crossUpMisplaced           // cross color on UP, wrong slot
	crossUpFlipped             // in the UP layer, cross color on a side
	crossDownFacing            // cross color on DOWN
	crossDownFlipped           // in the DOWN layer, cross color on a side
	crossMiddleRight           // middle layer, partner color right of the cross color
	crossMiddleLeft            // middle layer, partner color left of the cross color
	numCrossCases
)

var crossCaseNames = [numCrossCases]string{
	crossSolved:      "solved",
	crossUpMisplaced: "up-misplaced",
	crossUpFlipped:   "up-flipped",
	crossDownFacing:  "down-facing",
	crossDownFlipped: "down-flipped",
	crossMiddleRight: "middle-right",
	crossMiddleLeft:  "middle-left",
}

func (k crossCase) String() string {
	return crossCaseNames[k]
}

// crossHandler returns the algorithm that advances edge toward the slot
// above target, and the frame to replay it in. No handler disturbs edges
// already placed in other cross slots.
type crossHandler func(edge *gocube.Cubie, target gocube.Face) (string, gocube.Orientation, error)

var crossHandlers = [numCrossCases]crossHandler{
	crossSolved: func(*gocube.Cubie, gocube.Face) (string, gocube.Orientation, error) {
		return "", gocube.DefaultOrientation, nil
	},
	// Drop the edge to DOWN; it comes back as crossDownFacing.
	crossUpMisplaced: func(edge *gocube.Cubie, _ gocube.Face) (string, gocube.Orientation, error) {
		return "F F", crossFrame(otherFace(edge, gocube.Up)), nil
	},
	// Drop the edge to DOWN; it comes back as crossDownFlipped.
	crossUpFlipped: func(edge *gocube.Cubie, _ gocube.Face) (string, gocube.Orientation, error) {
		return "F F", crossFrame(otherFace(edge, gocube.Up)), nil
	},
	crossDownFacing: func(edge *gocube.Cubie, target gocube.Face) (string, gocube.Orientation, error) {
		k, err := downTurns(otherFace(edge, gocube.Down).Normal(), target.Normal())
		if err != nil {
			return "", gocube.Orientation{}, err
		}
		return repeat("D", k) + "F F", crossFrame(target), nil
	},
	crossDownFlipped: func(edge *gocube.Cubie, target gocube.Face) (string, gocube.Orientation, error) {
		k, err := downTurns(otherFace(edge, gocube.Down).Normal(), target.Normal())
		if err != nil {
			return "", gocube.Orientation{}, err
		}
		return repeat("D", k) + "D R FPrime RPrime", crossFrame(target), nil
	},
	// Turn the partner's face to drop the edge cross-color down, step the
	// edge aside with D, then restore the face.
	crossMiddleRight: func(edge *gocube.Cubie, _ gocube.Face) (string, gocube.Orientation, error) {
		return "FPrime D F", crossFrame(partnerFace(edge)), nil
	},
	crossMiddleLeft: func(edge *gocube.Cubie, _ gocube.Face) (string, gocube.Orientation, error) {
		return "F D FPrime", crossFrame(partnerFace(edge)), nil
	},
}

func init() {
	for k, h := range crossHandlers {
		if h == nil {
			panic(fmt.Sprintf("solver: no handler for cross case %d", k))
		}
	}
}

var crossColor = gocube.Up.SolvedColor()

// partnerFace returns the face showing the edge's non-cross color.
func partnerFace(edge *gocube.Cubie) gocube.Face {
	f, _ := edge.FaceOfColor(crossColor)
	return otherFace(edge, f)
}

func classifyCrossEdge(edge *gocube.Cubie) crossCase {
	if edge.IsSolved() {
		return crossSolved
	}
	white, _ := edge.FaceOfColor(crossColor)
	switch y := edge.Position().Y; {
	case y == 1 && white == gocube.Up:
		return crossUpMisplaced
	case y == 1:
		return crossUpFlipped
	case y == -1 && white == gocube.Down:
		return crossDownFacing
	case y == -1:
		return crossDownFlipped
	}
	if white.Normal().Cross(partnerFace(edge).Normal()) == gocube.Up.Normal() {
		return crossMiddleRight
	}
	return crossMiddleLeft
}

// Cross places the four UP edges one at a time.
type Cross struct{}

func NewCross() *Cross { return &Cross{} }

func (*Cross) Name() string { return "cross" }

func (*Cross) Phase() gocube.Phase { return gocube.PhaseCross }

func (*Cross) IsSolved(c *gocube.Cube) bool { return c.IsCrossSolved() }

// crossOrder is the order the cross slots are filled in.
var crossOrder = []gocube.Face{gocube.Front, gocube.Right, gocube.Back, gocube.Left}

// maxCrossSteps bounds the case transitions per edge. The longest chain is
// up-misplaced, down-facing, solved.
const maxCrossSteps = 4

func (s *Cross) Solve(c *gocube.Cube) (*StepResult, error) {
	rec := newRecorder(s, c)

	for _, target := range crossOrder {
		edge, err := c.FindCubie(crossColor, target.SolvedColor())
		if err != nil {
			return nil, err
		}
		for i := 0; i < maxCrossSteps && !edge.IsSolved(); i++ {
			k := classifyCrossEdge(edge)
			alg, frame, err := crossHandlers[k](edge, target)
			if err != nil {
				return nil, fmt.Errorf("cross %s edge: %w", target, err)
			}
			step := CaseStep{Case: k.String(), Piece: edge.String(), Algorithm: alg}
			if err := rec.apply(step, frame); err != nil {
				return nil, err
			}
		}
		if !edge.IsSolved() {
			return nil, fmt.Errorf("%w: cross edge %s stuck at %s", ErrUnsolved, target, edge)
		}
	}

	if !c.IsCrossSolved() {
		return nil, fmt.Errorf("%w: cross", ErrUnsolved)
	}
	return rec.result, nil
}

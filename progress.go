package gocube

// Phase predicates. The cross color is the UP center's color and the last
// layer is the DOWN layer.

// layerCubies returns the non-center cubies whose y coordinate is y.
func (c *Cube) layerCubies(y int) []*Cubie {
	return c.filter(func(cb *Cubie) bool {
		return cb.position.Y == y && !cb.IsCenter()
	})
}

func countSolved(cubies []*Cubie) int {
	n := 0
	for _, cb := range cubies {
		if cb.IsSolved() {
			n++
		}
	}
	return n
}

// CrossEdgesSolved counts the UP-layer edges that are solved.
func (c *Cube) CrossEdgesSolved() int {
	return countSolved(c.filter(func(cb *Cubie) bool {
		return cb.IsEdge() && cb.position.Y == 1
	}))
}

// IsCrossSolved returns true if the four UP edges are placed and oriented.
func (c *Cube) IsCrossSolved() bool {
	return c.CrossEdgesSolved() == 4
}

// IsFirstLayerSolved returns true if the whole UP layer is solved.
func (c *Cube) IsFirstLayerSolved() bool {
	up := c.layerCubies(1)
	return countSolved(up) == len(up)
}

// F2LPiecesSolved counts the solved pieces in the UP and middle layers.
func (c *Cube) F2LPiecesSolved() int {
	return countSolved(c.layerCubies(1)) + countSolved(c.layerCubies(0))
}

// IsF2LSolved returns true if the UP and middle layers are solved.
func (c *Cube) IsF2LSolved() bool {
	return c.F2LPiecesSolved() == 8+4
}

// LastLayerOriented counts DOWN-layer pieces showing the DOWN color on DOWN.
func (c *Cube) LastLayerOriented() int {
	n := 0
	for _, cb := range c.layerCubies(-1) {
		if color, ok := cb.ColorOf(Down); ok && color == Down.SolvedColor() {
			n++
		}
	}
	return n
}

// IsLastLayerOriented returns true if all eight DOWN-layer pieces show the
// DOWN color on DOWN.
func (c *Cube) IsLastLayerOriented() bool {
	return c.LastLayerOriented() == 8
}

// DetectPhase returns the highest phase whose condition holds, requiring
// every earlier phase to hold as well.
func (c *Cube) DetectPhase() Phase {
	switch {
	case c.IsSolved():
		return PhaseSolved
	case !c.IsCrossSolved():
		return PhaseScrambled
	case !c.IsFirstLayerSolved():
		return PhaseCross
	case !c.IsF2LSolved():
		return PhaseFirstLayer
	case !c.IsLastLayerOriented():
		return PhaseF2L
	default:
		return PhaseOLL
	}
}

// Progress represents how many pieces each phase has in place.
type Progress struct {
	CrossEdges     int // of 4
	F2LPieces      int // of 12
	OrientedPieces int // of 8
	Phase          Phase
	Solved         bool
}

// GetProgress returns the current progress through all phases.
func (c *Cube) GetProgress() Progress {
	return Progress{
		CrossEdges:     c.CrossEdgesSolved(),
		F2LPieces:      c.F2LPiecesSolved(),
		OrientedPieces: c.LastLayerOriented(),
		Phase:          c.DetectPhase(),
		Solved:         c.IsSolved(),
	}
}

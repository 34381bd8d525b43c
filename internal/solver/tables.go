package solver

import (
	"fmt"
	"sync"

	gocube "github.com/SeamusWaldron/gocube_solver"

	"github.com/SeamusWaldron/gocube_solver/internal/logging"
)

// ollAlgorithms are the canned orientation algorithms, written with the
// last layer on top.
var ollAlgorithms = []string{
	"F R U RPrime UPrime FPrime",
	"F R U RPrime UPrime FPrime F R U RPrime UPrime FPrime",
	"R U U RPrime UPrime R U RPrime UPrime R UPrime RPrime",
	"F U R UPrime RPrime FPrime",
	"F U R UPrime RPrime U R UPrime RPrime FPrime",
	"RPrime UPrime FPrime U F R",
	"FPrime LPrime UPrime L U LPrime UPrime L U F",
	"R L L BPrime L BPrime LPrime B B L BPrime L RPrime",
	"LPrime R R B RPrime B R B B RPrime B RPrime L",
	"F U R UPrime RPrime FPrime L F U FPrime UPrime LPrime",
	"F U R UPrime RPrime FPrime R B U BPrime UPrime RPrime",
	"F R U RPrime UPrime FPrime B U L UPrime LPrime BPrime",
	"R U U R R UPrime R R UPrime R R U U R",
	"R B RPrime L U LPrime UPrime R BPrime RPrime",
	"LPrime BPrime L RPrime UPrime R U LPrime B L",
	"RPrime F R U RPrime UPrime FPrime U R",
	"R U RPrime UPrime MPrime U R UPrime rPrime",
	"M U R U RPrime UPrime M M U R UPrime rPrime",
	"F R U RPrime UPrime R U RPrime UPrime FPrime B U L UPrime LPrime BPrime",
	"R U RPrime UPrime RPrime F R FPrime",
	"LPrime BPrime R B L BPrime RPrime B",
	"B LPrime BPrime R B L BPrime RPrime",
	"RPrime UPrime RPrime F R FPrime U R",
	"R U U RPrime RPrime F R FPrime U U RPrime F R FPrime",
	"R U U RPrime RPrime F R FPrime R U U RPrime",
	"M U R U RPrime UPrime MPrime RPrime F R FPrime",
	"F LPrime U U L U U L F F LPrime F",
	"R U RPrime U R UPrime RPrime UPrime RPrime F R FPrime",
	"RPrime UPrime R UPrime RPrime U R U R BPrime RPrime B",
	"RPrime UPrime R UPrime RPrime d RPrime U R B",
	"F U R UPrime RPrime FPrime F U FPrime UPrime FPrime L F LPrime",
	"F U R UPrime RPrime FPrime B U BPrime UPrime SPrime U B UPrime bPrime",
	"lPrime U U L U LPrime U l",
	"r U RPrime U R U U rPrime",
	"R U RPrime U R U U RPrime",
	"RPrime UPrime R URprime RPrime U U R",
	"RPrime U R U U RPrime UPrime FPrime U F U R",
	"R UPrime RPrime U U R U B UPrime BPrime UPrime RPrime",
	"r U RPrime U R UPrime RPrime U R U U rPrime",
	"lPrime UPrime L UPrime LPrime U L UPrime LPrime U U l",
	"r U U RPrime UPrime R UPrime rPrime",
	"F R UPrime RPrime UPrime R U RPrime FPrime",
	"lPrime UPrime L UPrime LPrime U U l",
	"r U RPrime UPrime M U R UPrime RPrime",
	"R U RPrime UPrime BPrime RPrime F R FPrime B",
	"L FPrime LPrime UPrime L F LPrime FPrime U F",
	"RPrime F R U RPrime FPrime R F UPrime FPrime",
	"R R D RPrime U U R DPrime RPrime U U RPrime",
	"RPrime U U R R U RPrime U R U U BPrime RPrime B",
	"R U BPrime UPrime RPrime U R B RPrime",
	"RPrime UPrime F U R UPrime RPrime FPrime R",
	"L FPrime LPrime UPrime L U F UPrime LPrime",
	"RPrime F R R FPrime U U FPrime U U F RPrime",
	"BPrime RPrime B LPrime BPrime R R BPrime RPrime B B L",
	"B L BPrime R B L L B L B B RPrime",
	"FPrime UPrime F L FPrime LPrime U L F LPrime",
	"F U FPrime RPrime F R UPrime RPrime FPrime R",
}

// pllAlgorithms are the canned permutation algorithms, written with the
// last layer on top.
var pllAlgorithms = []string{
	"R R F F RPrime BPrime R F F RPrime B RPrime",
	"R BPrime R F F RPrime B R F F R R",
	"R UPrime R U R U R UPrime RPrime UPrime R R",
	"R R U R U RPrime UPrime RPrime UPrime RPrime U RPrime",
	"M M U M M U U M M U M M",
	"R U RPrime UPrime RPrime F R R UPrime RPrime UPrime R U RPrime FPrime",
	"R U U RPrime UPrime R U U LPrime U RPrime UPrime L",
	"F R UPrime RPrime UPrime R U RPrime FPrime R U RPrime UPrime RPrime F R FPrime",
	"RPrime U U R U U RPrime F R U RPrime UPrime RPrime FPrime R R UPrime",
	"R UPrime RPrime UPrime R U R D RPrime UPrime R DPrime RPrime U U RPrime UPrime",
	"RPrime U RPrime UPrime BPrime D BPrime DPrime B B RPrime BPrime R B R",
	"RPrime UPrime FPrime R U RPrime UPrime RPrime F R R UPrime RPrime UPrime R U RPrime U R",
	"L U LPrime B B uPrime B UPrime BPrime U BPrime u B B",
	"RPrime UPrime R B B u BPrime U B UPrime B uPrime B B",
	"R R uPrime R UPrime R U RPrime u R R B UPrime BPrime",
	"R R u RPrime U RPrime UPrime R uPrime R R FPrime U F",
	"U RPrime UPrime R UPrime R U R UPrime RPrime U R U R R UPrime RPrime U",
	"LPrime U U L U LPrime U U R UPrime L U RPrime",
	"R BPrime RPrime F R B RPrime FPrime R B RPrime F R BPrime RPrime FPrime",
	"R U RPrime U R U RPrime FPrime R U RPrime UPrime RPrime F R R UPrime RPrime U U R UPrime RPrime",
	"RPrime U R UPrime RPrime FPrime UPrime F R U RPrime F RPrime FPrime R UPrime R",
}

// Skipped is a canned algorithm left out of a table.
type Skipped struct {
	Algorithm string
	Reason    string
}

// Table is a pattern table together with the algorithms that failed
// validation while it was built.
type Table struct {
	*gocube.Matcher
	Skipped []Skipped
}

type tableSpec struct {
	name      string
	chunk     int
	sep       string
	signature func(*gocube.Cube) (gocube.Signature, error)
	// keeps reports whether an algorithm leaves the solved cube in a state
	// the table can describe.
	keeps      func(*gocube.Cube) bool
	algorithms []string
}

var (
	ollOnce  sync.Once
	ollTable *Table
	ollErr   error

	pllOnce  sync.Once
	pllTable *Table
	pllErr   error
)

// OLLTable returns the orientation table, building it on first use.
func OLLTable() (*Table, error) {
	ollOnce.Do(func() {
		ollTable, ollErr = buildTable(tableSpec{
			name:       "oll",
			chunk:      2,
			sep:        "",
			signature:  OLLSignature,
			keeps:      keepsF2L,
			algorithms: append(append([]string{}, ollAlgorithms...), gocube.FormatMoves(gocube.EdgeFlip), gocube.FormatMoves(gocube.Sune)),
		})
	})
	return ollTable, ollErr
}

// PLLTable returns the permutation table, building it on first use.
func PLLTable() (*Table, error) {
	pllOnce.Do(func() {
		pllTable, pllErr = buildTable(tableSpec{
			name:      "pll",
			chunk:     2,
			sep:       " ",
			signature: PLLSignature,
			keeps: func(c *gocube.Cube) bool {
				return keepsF2L(c) && c.IsLastLayerOriented()
			},
			algorithms: append(append([]string{}, pllAlgorithms...), gocube.FormatMoves(gocube.TPerm), gocube.FormatMoves(gocube.UaPerm)),
		})
	})
	return pllTable, pllErr
}

func keepsF2L(c *gocube.Cube) bool {
	for _, center := range c.Centers() {
		if !center.IsSolved() {
			return false
		}
	}
	return c.IsF2LSolved()
}

// applyIn replays logical moves on c in frame o.
func applyIn(c *gocube.Cube, moves []gocube.Move, o gocube.Orientation) {
	for _, m := range moves {
		c.ApplyMove(m.Reorient(o))
	}
}

type tableNode struct {
	cube *gocube.Cube
	path []gocube.Move // solves cube in the reference frame
}

// buildTable explores, breadth first from the solved cube, every pattern
// class reachable by undoing a macro after some turns of the last layer.
// The first path found to a class becomes its algorithm.
func buildTable(spec tableSpec) (*Table, error) {
	logger := logging.GetLogger("solver.tables")
	done := logging.LogOperationStart(logger, "build "+spec.name)
	defer done()

	frame := lastLayerFrame(gocube.Front)
	t := &Table{}

	var macros [][]gocube.Move
	for _, alg := range spec.algorithms {
		moves, err := gocube.ParseMoves(alg)
		if err != nil {
			t.Skipped = append(t.Skipped, Skipped{Algorithm: alg, Reason: err.Error()})
			logger.Warn().Err(err).Str("table", spec.name).Str("algorithm", alg).Msg("Skipping unparsable algorithm")
			continue
		}
		probe := gocube.NewCube()
		applyIn(probe, moves, frame)
		if !spec.keeps(probe) {
			reason := "disturbs solved pieces"
			t.Skipped = append(t.Skipped, Skipped{Algorithm: alg, Reason: reason})
			logger.Warn().Str("table", spec.name).Str("algorithm", alg).Msg("Skipping algorithm that " + reason)
			continue
		}
		macros = append(macros, moves)
	}

	entries := map[string]string{}
	t.Matcher = gocube.NewMatcher(spec.name, spec.chunk, spec.sep, entries)

	root := gocube.NewCube()
	rootSig, err := spec.signature(root)
	if err != nil {
		return nil, fmt.Errorf("%s table: %w", spec.name, err)
	}
	entries[rootSig.Format(spec.sep)] = ""

	queue := []tableNode{{cube: root}}
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		for k := 0; k < 4; k++ {
			adjust := gocube.MustParseMoves(repeat("U", k))
			pre := node.cube.Clone()
			applyIn(pre, adjust, frame)

			for _, macro := range macros {
				next := pre.Clone()
				applyIn(next, gocube.InvertMoves(macro), frame)
				sig, err := spec.signature(next)
				if err != nil {
					return nil, fmt.Errorf("%s table: %w", spec.name, err)
				}
				if t.Known(sig) {
					continue
				}

				path := make([]gocube.Move, 0, len(macro)+k+len(node.path))
				path = append(path, macro...)
				path = append(path, gocube.InvertMoves(adjust)...)
				path = append(path, node.path...)
				path = gocube.SimplifyMoves(path)

				entries[sig.Format(spec.sep)] = gocube.FormatMoves(path)
				queue = append(queue, tableNode{cube: next, path: path})
			}
		}
	}

	logger.Debug().Str("table", spec.name).Int("patterns", t.Len()).Int("skipped", len(t.Skipped)).Msg("Pattern table built")
	return t, nil
}

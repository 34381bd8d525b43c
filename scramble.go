package gocube

import "math/rand/v2"

// Scramble returns n random outer-layer moves generated from seed. No two
// consecutive moves turn the same face, and no move is followed by a turn
// of the opposite face and then the same face again.
func Scramble(seed uint64, n int) []Move {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	turns := [3]Turn{CW, CCW, Double}

	moves := make([]Move, 0, n)
	for len(moves) < n {
		f := AllFaces[r.IntN(len(AllFaces))]
		if k := len(moves); k > 0 {
			prev := moves[k-1].Face
			if f == prev {
				continue
			}
			if k > 1 && f == moves[k-2].Face && prev == f.Opposite() {
				continue
			}
		}
		moves = append(moves, Move{Face: f, Turn: turns[r.IntN(len(turns))]})
	}
	return moves
}

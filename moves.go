package gocube

// Predefined moves for convenience.
// Use these instead of constructing Move structs manually.
//
// Example:
//
//	cube.Apply(gocube.R, gocube.U, gocube.RPrime, gocube.UPrime)
var (
	// Right face moves
	R      = Move{Face: Right, Turn: CW}     // Right clockwise
	RPrime = Move{Face: Right, Turn: CCW}    // Right counter-clockwise
	R2     = Move{Face: Right, Turn: Double} // Right 180

	// Left face moves
	L      = Move{Face: Left, Turn: CW}
	LPrime = Move{Face: Left, Turn: CCW}
	L2     = Move{Face: Left, Turn: Double}

	// Up face moves
	U      = Move{Face: Up, Turn: CW}
	UPrime = Move{Face: Up, Turn: CCW}
	U2     = Move{Face: Up, Turn: Double}

	// Down face moves
	D      = Move{Face: Down, Turn: CW}
	DPrime = Move{Face: Down, Turn: CCW}
	D2     = Move{Face: Down, Turn: Double}

	// Front face moves
	F      = Move{Face: Front, Turn: CW}
	FPrime = Move{Face: Front, Turn: CCW}
	F2     = Move{Face: Front, Turn: Double}

	// Back face moves
	B      = Move{Face: Back, Turn: CW}
	BPrime = Move{Face: Back, Turn: CCW}
	B2     = Move{Face: Back, Turn: Double}

	// Slices
	M = Move{Face: Left, Layer: LayerSlice, Turn: CW}  // Middle, follows L
	E = Move{Face: Down, Layer: LayerSlice, Turn: CW}  // Equator, follows D
	S = Move{Face: Front, Layer: LayerSlice, Turn: CW} // Standing, follows F

	// Whole-cube rotations
	X = Move{Face: Right, Layer: LayerCube, Turn: CW}
	Y = Move{Face: Up, Layer: LayerCube, Turn: CW}
	Z = Move{Face: Front, Layer: LayerCube, Turn: CW}
)

// Sexy move: R U R' U' - one of the most common algorithms
var SexyMove = []Move{R, U, RPrime, UPrime}

// Inverse sexy move: U R U' R'
var InverseSexyMove = []Move{U, R, UPrime, RPrime}

// Sledgehammer: R' F R F'
var Sledgehammer = []Move{RPrime, F, R, FPrime}

// Sune orients three last-layer corners.
var Sune = []Move{R, U, RPrime, U, R, U2, RPrime}

// EdgeFlip: F R U R' U' F' - orients last-layer edges two at a time.
var EdgeFlip = []Move{F, R, U, RPrime, UPrime, FPrime}

// T-perm algorithm
var TPerm = []Move{R, U, RPrime, UPrime, RPrime, F, R2, UPrime, RPrime, UPrime, R, U, RPrime, FPrime}

// Ua-perm cycles three last-layer edges.
var UaPerm = []Move{R, UPrime, R, U, R, U, R, UPrime, RPrime, UPrime, R2}

// Package gocube models a 3x3 Rubik's cube as 26 cubies in a centered
// integer grid and provides the pieces a phase-by-phase solver is built
// from.
//
// # Features
//
//   - Cubie geometry: positions and sticker maps rotated together
//   - Move notation with wide, slice and whole-cube turns
//   - Replaying algorithms under a remapped up/front orientation
//   - Rotation-invariant pattern lookup for last-layer tables
//   - Solving phase detection and move tracking
//
// # Quick Start
//
//	cube := gocube.NewCube()
//
//	// Apply moves using predefined constants
//	cube.Apply(gocube.R, gocube.U, gocube.RPrime, gocube.UPrime)
//
//	// Or from notation
//	if err := cube.Move("F B2 L' D"); err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Solved:", cube.IsSolved())
//	fmt.Println("Phase:", cube.DetectPhase().DisplayName())
//
// # Orientation
//
// Algorithms are written for a fixed frame. Cube.Move with WithOrientation
// replays them with the logical up and front roles played by other faces:
//
//	// Sune on the DOWN layer, with RIGHT acting as front.
//	cube.Move("R U RPrime U R U U RPrime",
//	    gocube.WithOrientation(gocube.Orientation{Up: gocube.Down, Front: gocube.Right}))
//
// # Solving Phases
//
// The cross is built on UP and the last layer is finished on DOWN:
//
//	PhaseScrambled -> PhaseCross -> PhaseFirstLayer -> PhaseF2L -> PhaseOLL -> PhaseSolved
package gocube

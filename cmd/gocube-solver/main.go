// gocube-solver - CLI application for scrambling, solving and reviewing Rubik's Cube solves.
package main

import (
	"github.com/SeamusWaldron/gocube_solver/internal/cli"
)

func main() {
	cli.Execute()
}

// Cube Solver - CLI application for solving Rubik's Cubes optimally.
package main

import (
	"github.com/seamusw/cubesolver/internal/cli"
)

func main() {
	cli.Execute()
}

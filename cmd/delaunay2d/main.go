// Command delaunay2d is the CLI accompanying the delaunay2d library: it
// reads a flat list of 2D points, triangulates them, and prints the
// result. It is glue over the library, not a geometry demo: no
// rendering, no mouse input, no mesh file parsing.
package main

import "github.com/arl/delaunay2d/cmd/delaunay2d/cmd"

func main() {
	cmd.Execute()
}

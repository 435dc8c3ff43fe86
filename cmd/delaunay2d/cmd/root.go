package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "delaunay2d",
	Short: "compute 2D Delaunay triangulations",
	Long: `delaunay2d is the command-line application accompanying the
delaunay2d library:
	- triangulate a flat list of 2D points read from a YAML file,
	- print the face stream, or the flattened triangle list,
	- write a settings file controlling the predicate mode used.`,
}

// Execute adds all child commands to the root command and runs it. It is
// called by main.main and only needs to happen once.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

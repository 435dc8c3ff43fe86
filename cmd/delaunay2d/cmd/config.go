package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// PredicateMode selects which geometric predicate implementation the
// triangulate command uses. Only "loose" is implemented today; "adaptive"
// is reserved for a future Shewchuk-style exact predicate (spec §9) and
// is rejected at load time until one exists.
type PredicateMode string

const (
	PredicateLoose    PredicateMode = "loose"
	PredicateAdaptive PredicateMode = "adaptive"
)

// Config is the triangulate command's settings file, written by the
// config command and read back by triangulate.
type Config struct {
	// Predicate selects the orientation/in-circle implementation.
	Predicate PredicateMode `yaml:"predicate"`
	// Flatten, when true, makes triangulate print the fan-triangulated
	// triangle array instead of the raw polygonal face stream.
	Flatten bool `yaml:"flatten"`
}

// defaultConfig returns the settings written by `delaunay2d config`.
func defaultConfig() Config {
	return Config{Predicate: PredicateLoose, Flatten: false}
}

var configCmd = &cobra.Command{
	Use:   "config FILE",
	Short: "create a settings file",
	Long: `Create a settings file in YAML format, prefilled with default values.

If FILE is not provided, 'delaunay2d.yml' is used.`,
	Run: func(cmd *cobra.Command, args []string) {
		path := "delaunay2d.yml"
		if len(args) >= 1 {
			path = args[0]
		}

		ok, err := confirmIfExists(path, fmt.Sprintf("file %s already exists, overwrite? [y/N]", path))
		if err != nil {
			fmt.Println("aborted,", err)
			return
		}
		if !ok {
			fmt.Println("aborted by user")
			return
		}

		if err := marshalYAMLFile(path, defaultConfig()); err != nil {
			fmt.Println("could not write config:", err)
			return
		}
		fmt.Printf("settings written to '%s'\n", path)
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
}

package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/arl/gogeo/f32/d3"
	"github.com/arl/math32"
	"github.com/spf13/cobra"

	"github.com/arl/delaunay2d/delaunay"
	"github.com/arl/delaunay2d/flatten"
	"github.com/arl/delaunay2d/internal/dbg"
)

// inputPoint is one entry of the YAML point list triangulate reads.
type inputPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

var (
	cfgPathVal     string
	flattenFlagVal bool
	debugFlagVal   bool
)

var triangulateCmd = &cobra.Command{
	Use:   "triangulate POINTS",
	Short: "triangulate a flat list of 2D points",
	Long: `Read a list of {x,y} points from a YAML file, compute their Delaunay
triangulation, and print the result.

By default the raw polygonal face stream is printed, with face 0 being
the unbounded external face (the convex hull). With --flatten, the
fan-triangulated triangle index array is printed instead.`,
	Args: cobra.ExactArgs(1),
	Run:  doTriangulate,
}

func init() {
	RootCmd.AddCommand(triangulateCmd)

	triangulateCmd.Flags().StringVar(&cfgPathVal, "config", "delaunay2d.yml", "settings file")
	triangulateCmd.Flags().BoolVar(&flattenFlagVal, "flatten", false, "print the flattened triangle array instead of the face stream")
	triangulateCmd.Flags().BoolVar(&debugFlagVal, "debug", false, "also print the face stream one face per line")
}

func doTriangulate(cmd *cobra.Command, args []string) {
	cfg := loadConfigOrDefault(cfgPathVal)
	if cfg.Predicate != PredicateLoose {
		log.Fatalf("triangulate: predicate mode %q is not implemented yet", cfg.Predicate)
	}

	var pts []inputPoint
	if err := unmarshalYAMLFile(args[0], &pts); err != nil {
		log.Fatalln("could not read point file:", err)
	}

	points := make([]delaunay.Point, len(pts))
	for i, p := range pts {
		points[i] = delaunay.Point{X: p.X, Y: p.Y}
	}

	printSummary(points)

	res, err := delaunay.Triangulate(points)
	if err != nil {
		log.Fatalln("triangulate:", err)
	}
	defer res.Release()

	if debugFlagVal {
		dbg.DumpFaceStream(os.Stdout, res.NumFaces, res.Faces)
	}

	if cfg.Flatten || flattenFlagVal {
		tris := flatten.Triangles(res.NumFaces, res.Faces)
		fmt.Println(tris)
		return
	}

	fmt.Println(res.Faces)
}

func loadConfigOrDefault(path string) Config {
	cfg := defaultConfig()
	if _, err := os.Stat(path); err != nil {
		return cfg
	}
	if err := unmarshalYAMLFile(path, &cfg); err != nil {
		log.Fatalln("could not read config:", err)
	}
	return cfg
}

// printSummary prints the input point set's bounding box, the center of
// that box, and the box's squared diagonal.
// It exists purely as a display convenience over the loaded points and
// never feeds the predicates, which require double precision (spec §4.1).
func printSummary(points []delaunay.Point) {
	if len(points) == 0 {
		return
	}

	x0, y0 := float32(points[0].X), float32(points[0].Y)
	x1, y1 := x0, y0
	for _, p := range points[1:] {
		x, y := float32(p.X), float32(p.Y)
		if x < x0 {
			x0 = x
		}
		if x > x1 {
			x1 = x
		}
		if y < y0 {
			y0 = y
		}
		if y > y1 {
			y1 = y
		}
	}

	bbox := d3.Rect(x0, y0, 0, x1, y1, 0)
	c := bbox.Center()
	diag := math32.Sqr(bbox.Dx()) + math32.Sqr(bbox.Dy())

	fmt.Printf("points: %d, bbox: %v, center: (%.3f, %.3f), diag^2: %.3f\n",
		len(points), bbox, c.X(), c.Y(), diag)
}

package app

import (
	"flag"
	"fmt"

	"github.com/teor2345/SwiftLife/pkg/core"
	"github.com/teor2345/SwiftLife/pkg/life"
)

// Config represents the command-line parameters shared by the frontends.
// Everything the run needs is fixed here at construction time; nothing
// is tuned through process-wide state afterwards.
type Config struct {
	Width   int
	Height  int
	Density float64
	MaxGen  int
	Seed    int64
	Workers int

	Topology    string
	EdgeLeft    float64
	EdgeTop     float64
	EdgeRight   float64
	EdgeBottom  float64
	Reverse     string
	Join        string
	Orientation string

	Scale int
	TPS   int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:       128,
		Height:      128,
		Density:     0.3,
		MaxGen:      1000,
		Seed:        42,
		Topology:    "none",
		Reverse:     "y",
		Join:        "full",
		Orientation: "clockwise",
		Scale:       4,
		TPS:         30,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.Float64Var(&c.Density, "density", c.Density, "initial alive probability")
	fs.IntVar(&c.MaxGen, "maxgen", c.MaxGen, "maximum generation before the run stops")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for grid and boundary randomness")
	fs.IntVar(&c.Workers, "workers", c.Workers, "worker goroutines per step (0 = one per CPU)")
	fs.StringVar(&c.Topology, "topology", c.Topology, "boundary topology: none, flat, torus, projective, klein, sphere")
	fs.Float64Var(&c.EdgeLeft, "edge-left", c.EdgeLeft, "flat topology: alive probability beyond the left edge")
	fs.Float64Var(&c.EdgeTop, "edge-top", c.EdgeTop, "flat topology: alive probability beyond the top edge")
	fs.Float64Var(&c.EdgeRight, "edge-right", c.EdgeRight, "flat topology: alive probability beyond the right edge")
	fs.Float64Var(&c.EdgeBottom, "edge-bottom", c.EdgeBottom, "flat topology: alive probability beyond the bottom edge")
	fs.StringVar(&c.Reverse, "klein-reverse", c.Reverse, "klein bottle: axis whose crossings flip (x or y)")
	fs.StringVar(&c.Join, "sphere-join", c.Join, "sphere: edge join mode (full or half)")
	fs.StringVar(&c.Orientation, "sphere-orient", c.Orientation, "sphere: join orientation (clockwise or anticlockwise)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation steps per second")
}

// BuildTopology resolves the topology selection into a boundary
// provider. The "none" selection yields nil, leaving the boundary dead.
func (c *Config) BuildTopology(rng *core.RNG) (*life.Topology, error) {
	switch c.Topology {
	case "", "none":
		return nil, nil
	case "flat":
		return life.Flat(c.EdgeLeft, c.EdgeTop, c.EdgeRight, c.EdgeBottom, rng), nil
	case "torus":
		return life.Torus(), nil
	case "projective":
		return life.ProjectivePlane(), nil
	case "klein":
		switch c.Reverse {
		case "x":
			return life.KleinBottle(life.AxisX), nil
		case "y":
			return life.KleinBottle(life.AxisY), nil
		}
		return nil, fmt.Errorf("unknown klein reverse axis %q", c.Reverse)
	case "sphere":
		var join life.JoinMode
		switch c.Join {
		case "full":
			join = life.JoinFull
		case "half":
			join = life.JoinHalf
		default:
			return nil, fmt.Errorf("unknown sphere join mode %q", c.Join)
		}
		var orient life.Orientation
		switch c.Orientation {
		case "clockwise":
			orient = life.Clockwise
		case "anticlockwise":
			orient = life.Anticlockwise
		default:
			return nil, fmt.Errorf("unknown sphere orientation %q", c.Orientation)
		}
		return life.Sphere(join, orient), nil
	}
	return nil, fmt.Errorf("unknown topology %q", c.Topology)
}

// BuildGeneration seeds a random grid per the configuration and wraps
// it in a generation driver.
func (c *Config) BuildGeneration() (*life.Generation, error) {
	rng := core.NewRNG(c.Seed)
	topo, err := c.BuildTopology(rng)
	if err != nil {
		return nil, err
	}
	grid, err := life.NewRandomGrid(c.Width, c.Height, c.Density, rng, topo)
	if err != nil {
		return nil, err
	}
	return life.NewGeneration(grid, c.MaxGen)
}

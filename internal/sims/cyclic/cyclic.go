// Package cyclic implements the cyclic cellular automaton: each cell eats
// into neighbors one state behind it, producing rotating spiral waves.
package cyclic

import (
	"strconv"

	"ca-lab/internal/core"
)

// Config holds the tunable rule parameters.
type Config struct {
	Size      int
	States    int
	Threshold int
}

// DefaultConfig returns the parameters the lab opens with.
func DefaultConfig() Config {
	return Config{Size: 64, States: 12, Threshold: 1}
}

// FromMap overrides defaults with string values, ignoring bad entries.
func FromMap(m map[string]string) Config {
	cfg := DefaultConfig()
	if v, err := strconv.Atoi(m["size"]); err == nil && v > 0 {
		cfg.Size = v
	}
	if v, err := strconv.Atoi(m["states"]); err == nil && v >= 2 {
		cfg.States = v
	}
	if v, err := strconv.Atoi(m["threshold"]); err == nil && v >= 1 {
		cfg.Threshold = v
	}
	return cfg
}

// CA is the cyclic automaton on a toroidal grid.
type CA struct {
	grid      *core.Torus
	rng       *core.RNG
	states    int
	threshold int
}

// New creates a cyclic automaton with the provided configuration.
func New(cfg Config) *CA {
	if cfg.Size <= 0 {
		cfg.Size = 64
	}
	if cfg.States < 2 {
		cfg.States = 2
	}
	if cfg.Threshold < 1 {
		cfg.Threshold = 1
	}
	return &CA{
		grid:      core.NewTorus(cfg.Size),
		rng:       core.NewRNG(1),
		states:    cfg.States,
		threshold: cfg.Threshold,
	}
}

// Name identifies the simulation.
func (c *CA) Name() string { return "cyclic" }

// Size returns the grid dimensions.
func (c *CA) Size() core.Size { return core.Size{W: c.grid.N, H: c.grid.N} }

// Cells exposes the current state buffer.
func (c *CA) Cells() []uint8 { return c.grid.Cells() }

// Prev exposes the previous generation for blending.
func (c *CA) Prev() []uint8 { return c.grid.Prev() }

// At reads a single cell with toroidal wrapping.
func (c *CA) At(x, y int) uint8 { return c.grid.At(x, y) }

// States reports the number of cyclic states.
func (c *CA) States() int { return c.states }

// Reset randomizes every cell to a uniform state in [0, states).
func (c *CA) Reset(seed int64) {
	c.rng = core.NewRNG(seed)
	cur := c.grid.Cells()
	prev := c.grid.Prev()
	for i := range cur {
		cur[i] = c.rng.Uint8n(c.states)
		prev[i] = cur[i]
	}
}

// Step advances one generation: a cell adopts its successor state when at
// least threshold Moore neighbors already hold it, otherwise it keeps its own.
func (c *CA) Step() {
	n := uint8(c.states)
	th := c.threshold
	g := c.grid
	var nb [8]uint8
	for y := 0; y < g.N; y++ {
		for x := 0; x < g.N; x++ {
			state := g.At(x, y)
			successor := (state + 1) % n
			g.Neighbors8(x, y, &nb)
			count := 0
			for _, v := range nb {
				if v == successor {
					count++
					if count >= th {
						break
					}
				}
			}
			if count >= th {
				g.SetNext(x, y, successor)
			} else {
				g.SetNext(x, y, state)
			}
		}
	}
	g.Commit()
}

// SetIntParameter updates a tunable; shrinking the state count folds existing
// cells back into range so no cell holds a dead state.
func (c *CA) SetIntParameter(key string, value int) bool {
	switch key {
	case "states":
		if value < 2 {
			value = 2
		}
		c.states = value
		c.foldCells()
		return true
	case "threshold":
		if value < 1 {
			value = 1
		}
		c.threshold = value
		return true
	}
	return false
}

func (c *CA) foldCells() {
	n := uint8(c.states)
	cur := c.grid.Cells()
	prev := c.grid.Prev()
	for i := range cur {
		if cur[i] >= n {
			cur[i] %= n
		}
		if prev[i] >= n {
			prev[i] %= n
		}
	}
}

// Parameters reports the current tunables.
func (c *CA) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Params: []core.Parameter{
		{Key: "states", Label: "States", Type: core.ParamTypeInt, Value: strconv.Itoa(c.states)},
		{Key: "threshold", Label: "Threshold", Type: core.ParamTypeInt, Value: strconv.Itoa(c.threshold)},
	}}
}

func init() {
	core.Register("cyclic", func(cfg map[string]string) core.Engine {
		return New(FromMap(cfg))
	})
}

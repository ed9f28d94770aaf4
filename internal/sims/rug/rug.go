// Package rug implements the Rug averaging automaton: each cell becomes the
// neighbor average plus a fixed increment, modulo the state count. The grid
// is bounded, with a slowly drifting edge value feeding patterns inward.
package rug

import (
	"strconv"

	"ca-lab/internal/core"
)

// Config holds the tunable rule parameters.
type Config struct {
	Size      int
	Increment int
	States    int
}

// DefaultConfig returns the parameters the lab opens with.
func DefaultConfig() Config {
	return Config{Size: 64, Increment: 1, States: 256}
}

// FromMap overrides defaults with string values, ignoring bad entries.
func FromMap(m map[string]string) Config {
	cfg := DefaultConfig()
	if v, err := strconv.Atoi(m["size"]); err == nil && v > 0 {
		cfg.Size = v
	}
	if v, err := strconv.Atoi(m["inc"]); err == nil && v >= 1 {
		cfg.Increment = v
	}
	if v, err := strconv.Atoi(m["states"]); err == nil && v >= 2 {
		cfg.States = v
	}
	return cfg
}

// Rug is the averaging automaton on a bounded grid.
type Rug struct {
	n    int
	cur  []uint8
	nxt  []uint8
	prev []uint8
	rng  *core.RNG

	inc    int
	states int
	edge   int
}

// New creates a Rug automaton with the provided configuration.
func New(cfg Config) *Rug {
	if cfg.Size <= 0 {
		cfg.Size = 64
	}
	if cfg.States < 2 {
		cfg.States = 2
	}
	if cfg.States > 256 {
		cfg.States = 256
	}
	if cfg.Increment < 1 {
		cfg.Increment = 1
	}
	total := cfg.Size * cfg.Size
	return &Rug{
		n:      cfg.Size,
		cur:    make([]uint8, total),
		nxt:    make([]uint8, total),
		prev:   make([]uint8, total),
		rng:    core.NewRNG(1),
		inc:    cfg.Increment,
		states: cfg.States,
	}
}

// Name identifies the simulation.
func (r *Rug) Name() string { return "rug" }

// Size returns the grid dimensions.
func (r *Rug) Size() core.Size { return core.Size{W: r.n, H: r.n} }

// Cells exposes the current state buffer.
func (r *Rug) Cells() []uint8 { return r.cur }

// Prev exposes the previous generation for blending.
func (r *Rug) Prev() []uint8 { return r.prev }

// States reports the modulus of the rug rule.
func (r *Rug) States() int { return r.states }

// Edge reports the current boundary value.
func (r *Rug) Edge() int { return r.edge }

// Reset blanks the interior and seeds the border ring with a fresh edge
// value; the carpet then grows inward from the boundary.
func (r *Rug) Reset(seed int64) {
	r.rng = core.NewRNG(seed)
	for i := range r.cur {
		r.cur[i] = 0
		r.prev[i] = 0
	}
	r.edge = r.rng.Between(50, 200) % r.states
	for i := 0; i < r.n; i++ {
		r.cur[i] = uint8(r.edge)
		r.cur[(r.n-1)*r.n+i] = uint8(r.edge)
		r.cur[i*r.n] = uint8(r.edge)
		r.cur[i*r.n+r.n-1] = uint8(r.edge)
	}
}

// at reads a cell; coordinates past the border see the edge value.
func (r *Rug) at(x, y int) int {
	if x < 0 || x >= r.n || y < 0 || y >= r.n {
		return r.edge
	}
	return int(r.cur[y*r.n+x])
}

// Step advances one generation and random-walks the edge value.
func (r *Rug) Step() {
	copy(r.prev, r.cur)
	for y := 0; y < r.n; y++ {
		for x := 0; x < r.n; x++ {
			total := r.at(x-1, y-1) + r.at(x, y-1) + r.at(x+1, y-1) +
				r.at(x-1, y) + r.at(x+1, y) +
				r.at(x-1, y+1) + r.at(x, y+1) + r.at(x+1, y+1)
			r.nxt[y*r.n+x] = uint8((total/8 + r.inc) % r.states)
		}
	}
	r.cur, r.nxt = r.nxt, r.cur

	if r.rng.Float64() < 0.02 {
		r.edge = (r.edge + int(r.rng.Sign()) + r.states) % r.states
	}
}

// SetIntParameter updates a tunable; shrinking the modulus folds existing
// cells and the edge value back into range.
func (r *Rug) SetIntParameter(key string, value int) bool {
	switch key {
	case "inc":
		if value < 1 {
			value = 1
		}
		r.inc = value
		return true
	case "states":
		if value < 2 {
			value = 2
		}
		if value > 256 {
			value = 256
		}
		r.states = value
		r.edge %= value
		for i, v := range r.cur {
			if int(v) >= value {
				r.cur[i] = uint8(int(v) % value)
			}
		}
		for i, v := range r.prev {
			if int(v) >= value {
				r.prev[i] = uint8(int(v) % value)
			}
		}
		return true
	}
	return false
}

// Parameters reports the current tunables.
func (r *Rug) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Params: []core.Parameter{
		{Key: "inc", Label: "Increment", Type: core.ParamTypeInt, Value: strconv.Itoa(r.inc)},
		{Key: "states", Label: "States", Type: core.ParamTypeInt, Value: strconv.Itoa(r.states)},
	}}
}

func init() {
	core.Register("rug", func(cfg map[string]string) core.Engine {
		return New(FromMap(cfg))
	})
}

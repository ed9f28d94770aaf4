// Package hodge implements the Hodgepodge Machine, a discrete excitable
// medium. Cells are healthy (0), infected (1..n-1), or ill (n); infection
// spreads from neighbors and ill cells recover, yielding BZ-style spirals.
package hodge

import (
	"strconv"

	"ca-lab/internal/core"
)

const (
	k1 = 2
	k2 = 3
)

// Config holds the tunable rule parameters.
type Config struct {
	Size int
	G    float64
	N    int
}

// DefaultConfig returns the parameters the lab opens with.
func DefaultConfig() Config {
	return Config{Size: 64, G: 5.0, N: 63}
}

// FromMap overrides defaults with string values, ignoring bad entries.
func FromMap(m map[string]string) Config {
	cfg := DefaultConfig()
	if v, err := strconv.Atoi(m["size"]); err == nil && v > 0 {
		cfg.Size = v
	}
	if v, err := strconv.ParseFloat(m["g"], 64); err == nil && v >= 1 {
		cfg.G = v
	}
	if v, err := strconv.Atoi(m["n"]); err == nil && v >= 2 {
		cfg.N = v
	}
	return cfg
}

// Machine is the hodgepodge automaton on a toroidal grid.
type Machine struct {
	grid *core.Torus
	rng  *core.RNG
	g    float64
	n    int
}

// New creates a hodgepodge machine with the provided configuration.
func New(cfg Config) *Machine {
	if cfg.Size <= 0 {
		cfg.Size = 64
	}
	if cfg.N < 2 {
		cfg.N = 2
	}
	if cfg.N > 255 {
		cfg.N = 255
	}
	if cfg.G < 1 {
		cfg.G = 1
	}
	return &Machine{
		grid: core.NewTorus(cfg.Size),
		rng:  core.NewRNG(1),
		g:    cfg.G,
		n:    cfg.N,
	}
}

// Name identifies the simulation.
func (m *Machine) Name() string { return "hodge" }

// Size returns the grid dimensions.
func (m *Machine) Size() core.Size { return core.Size{W: m.grid.N, H: m.grid.N} }

// Cells exposes the current state buffer.
func (m *Machine) Cells() []uint8 { return m.grid.Cells() }

// Prev exposes the previous generation for blending.
func (m *Machine) Prev() []uint8 { return m.grid.Prev() }

// States reports the number of distinct cell values, 0 through n inclusive.
func (m *Machine) States() int { return m.n + 1 }

// At reads a single cell with toroidal wrapping.
func (m *Machine) At(x, y int) uint8 { return m.grid.At(x, y) }

// Reset infects a fifth of the grid with random severities.
func (m *Machine) Reset(seed int64) {
	m.rng = core.NewRNG(seed)
	m.randomize()
	copy(m.grid.Prev(), m.grid.Cells())
}

func (m *Machine) randomize() {
	cells := m.grid.Cells()
	for i := range cells {
		if m.rng.Float64() < 0.2 {
			cells[i] = uint8(m.rng.Between(1, m.n))
		} else {
			cells[i] = 0
		}
	}
}

// Step advances one generation. Healthy cells catch infection from their
// neighbors, ill cells recover, and everything in between worsens by the
// neighborhood average plus the growth constant. A fully healthy grid is
// reseeded so the display never goes dark.
func (m *Machine) Step() {
	g := m.grid
	n := m.n
	growth := int(m.g)
	var nb [8]uint8
	for y := 0; y < g.N; y++ {
		for x := 0; x < g.N; x++ {
			state := int(g.At(x, y))
			g.Neighbors8(x, y, &nb)
			infected, ill, total := 0, 0, state
			for _, v := range nb {
				nv := int(v)
				total += nv
				switch {
				case nv == n:
					ill++
				case nv > 0:
					infected++
				}
			}
			var next int
			switch {
			case state == 0:
				next = infected/k1 + ill/k2
			case state == n:
				next = 0
			default:
				next = total/9 + growth
			}
			if next > n {
				next = n
			}
			g.SetNext(x, y, uint8(next))
		}
	}
	g.Commit()

	alive := false
	for _, v := range g.Cells() {
		if v > 0 {
			alive = true
			break
		}
	}
	if !alive {
		m.randomize()
	}
}

// SetIntParameter updates the ill-state ceiling, clamping cells that now
// exceed it.
func (m *Machine) SetIntParameter(key string, value int) bool {
	if key != "n" {
		return false
	}
	if value < 2 {
		value = 2
	}
	if value > 255 {
		value = 255
	}
	m.n = value
	cells := m.grid.Cells()
	prev := m.grid.Prev()
	for i := range cells {
		if int(cells[i]) > value {
			cells[i] = uint8(value)
		}
		if int(prev[i]) > value {
			prev[i] = uint8(value)
		}
	}
	return true
}

// SetFloatParameter updates the infection growth constant.
func (m *Machine) SetFloatParameter(key string, value float64) bool {
	if key != "g" {
		return false
	}
	if value < 1 {
		value = 1
	}
	m.g = value
	return true
}

// Parameters reports the current tunables.
func (m *Machine) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Params: []core.Parameter{
		{Key: "g", Label: "Growth", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(m.g, 'f', 1, 64)},
		{Key: "n", Label: "Max state", Type: core.ParamTypeInt, Value: strconv.Itoa(m.n)},
	}}
}

func init() {
	core.Register("hodge", func(cfg map[string]string) core.Engine {
		return New(FromMap(cfg))
	})
}

// Package mitosis simulates dividing cell colonies: disks grow on energy,
// split when large enough, shove and drain each other on contact, and die of
// age or starvation. The display is a continuous intensity field.
package mitosis

import (
	"math"
	"strconv"

	"ca-lab/internal/core"
)

const (
	stepDT = 1.0 / 60

	splitRadius    = 6.5
	maxColonies    = 40
	fadeRate       = 0.35
	energyFromArea = 0.008
)

// colony is one living disk.
type colony struct {
	x, y       float64
	radius     float64
	energy     float64
	age        float64
	generation int
	growthRate float64
	alive      bool
}

func (c *colony) area() float64 { return math.Pi * c.radius * c.radius }

// Config holds the tunable parameters.
type Config struct {
	Size   int
	Growth float64
	Comp   float64
}

// DefaultConfig returns the parameters the lab opens with.
func DefaultConfig() Config {
	return Config{Size: 64, Growth: 1.2, Comp: 0.5}
}

// FromMap overrides defaults with string values, ignoring bad entries.
func FromMap(m map[string]string) Config {
	cfg := DefaultConfig()
	if v, err := strconv.Atoi(m["size"]); err == nil && v > 0 {
		cfg.Size = v
	}
	if v, err := strconv.ParseFloat(m["growth"], 64); err == nil && v > 0 {
		cfg.Growth = v
	}
	if v, err := strconv.ParseFloat(m["comp"], 64); err == nil && v > 0 {
		cfg.Comp = v
	}
	return cfg
}

// Sim is the colony simulation.
type Sim struct {
	n        int
	colonies []colony
	rng      *core.RNG
	field    []float64

	growth float64
	comp   float64
}

// New creates a mitosis simulation with the provided configuration.
func New(cfg Config) *Sim {
	if cfg.Size <= 0 {
		cfg.Size = 64
	}
	return &Sim{
		n:      cfg.Size,
		rng:    core.NewRNG(1),
		field:  make([]float64, cfg.Size*cfg.Size),
		growth: cfg.Growth,
		comp:   cfg.Comp,
	}
}

// Name identifies the simulation.
func (s *Sim) Name() string { return "mitosis" }

// Size returns the display dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.n, H: s.n} }

// Colonies reports the number of living colonies.
func (s *Sim) Colonies() int { return len(s.colonies) }

// Reset seeds a handful of small colonies away from the walls.
func (s *Sim) Reset(seed int64) {
	s.rng = core.NewRNG(seed)
	s.colonies = s.colonies[:0]
	seeds := s.rng.Between(3, 6)
	for i := 0; i < seeds; i++ {
		s.colonies = append(s.colonies, colony{
			x:          s.rng.Range(12, float64(s.n-12)),
			y:          s.rng.Range(12, float64(s.n-12)),
			radius:     s.rng.Range(2.5, 3.5),
			energy:     0.8,
			growthRate: s.rng.Range(0.8, 1.2),
			alive:      true,
		})
	}
}

// Step advances the colony lifecycle by one display frame.
func (s *Sim) Step() {
	s.metabolize()
	s.divide()
	s.compete()

	// Cull the dead in place.
	live := s.colonies[:0]
	for _, c := range s.colonies {
		if c.alive {
			live = append(live, c)
		}
	}
	s.colonies = live

	// A near-empty dish occasionally receives a fresh seed.
	if len(s.colonies) < 3 && len(s.colonies) < maxColonies && s.rng.Float64() < 0.02 {
		s.colonies = append(s.colonies, colony{
			x:          s.rng.Range(10, float64(s.n-10)),
			y:          s.rng.Range(10, float64(s.n-10)),
			radius:     2.5,
			energy:     1,
			growthRate: s.rng.Range(0.8, 1.2),
			alive:      true,
		})
	}
}

// metabolize handles growth, energy flow, death, and wall clamping.
func (s *Sim) metabolize() {
	dt := stepDT
	for i := range s.colonies {
		c := &s.colonies[i]
		if !c.alive {
			continue
		}
		c.age += dt
		c.radius += s.growth * c.growthRate * c.energy * dt
		c.energy += c.area() * energyFromArea * dt
		c.energy -= fadeRate * dt
		c.energy = math.Max(0, math.Min(1.5, c.energy))

		maxAge := math.Max(5, float64(15-c.generation*2))
		if c.energy <= 0.1 || c.age > maxAge {
			c.alive = false
			continue
		}
		margin := c.radius + 2
		c.x = math.Max(margin, math.Min(float64(s.n)-margin, c.x))
		c.y = math.Max(margin, math.Min(float64(s.n)-margin, c.y))
	}
}

// divide buds daughters off colonies that hit the division threshold: the
// parent shrinks and steps aside, the daughter appears on the opposite side.
func (s *Sim) divide() {
	var daughters []colony
	for i := range s.colonies {
		c := &s.colonies[i]
		if !c.alive || c.radius < splitRadius {
			continue
		}
		if len(s.colonies)+len(daughters) >= maxColonies {
			continue
		}
		angle := s.rng.Range(0, 2*math.Pi)
		offset := c.radius * 0.4
		c.x += math.Cos(angle) * offset
		c.y += math.Sin(angle) * offset
		c.radius *= 0.6
		c.energy *= 0.4
		c.age = 0
		c.generation++
		daughters = append(daughters, colony{
			x:          c.x - math.Cos(angle)*offset*2,
			y:          c.y - math.Sin(angle)*offset*2,
			radius:     c.radius,
			energy:     c.energy,
			generation: c.generation,
			growthRate: s.rng.Range(0.8, 1.2),
			alive:      true,
		})
	}
	s.colonies = append(s.colonies, daughters...)
}

// compete pushes overlapping colonies apart and lets the larger one drain
// energy from the smaller.
func (s *Sim) compete() {
	dt := stepDT
	for i := range s.colonies {
		c1 := &s.colonies[i]
		if !c1.alive {
			continue
		}
		for j := i + 1; j < len(s.colonies); j++ {
			c2 := &s.colonies[j]
			if !c2.alive {
				continue
			}
			dx := c2.x - c1.x
			dy := c2.y - c1.y
			dist := math.Hypot(dx, dy)
			overlap := c1.radius + c2.radius - dist
			if overlap <= 0 {
				continue
			}
			if dist > 0.1 {
				push := overlap * 0.3 * 0.5
				nx, ny := dx/dist, dy/dist
				c1.x -= nx * push
				c1.y -= ny * push
				c2.x += nx * push
				c2.y += ny * push
			}
			transfer := s.comp * dt
			if c1.area() > c2.area() {
				c2.energy -= transfer
				c1.energy += transfer * 0.5
			} else {
				c1.energy -= transfer
				c2.energy += transfer * 0.5
			}
		}
	}
}

// Field rasterizes the colonies into a max-blended intensity buffer: solid
// inside each disk, a soft rim outside, scaled by the colony's energy.
func (s *Sim) Field() []float64 {
	for i := range s.field {
		s.field[i] = 0
	}
	for i := range s.colonies {
		c := &s.colonies[i]
		if !c.alive {
			continue
		}
		r := int(c.radius) + 3
		x0 := max(0, int(c.x)-r)
		x1 := min(s.n, int(c.x)+r+1)
		y0 := max(0, int(c.y)-r)
		y1 := min(s.n, int(c.y)+r+1)
		scale := 0.5 + c.energy*0.5
		for py := y0; py < y1; py++ {
			for px := x0; px < x1; px++ {
				dist := math.Hypot(float64(px)-c.x, float64(py)-c.y)
				if dist >= c.radius+1 {
					continue
				}
				intensity := 1.0
				if dist >= c.radius-1 {
					intensity = (c.radius + 1 - dist) / 2
				}
				intensity *= scale
				intensity = math.Max(0, math.Min(1, intensity))
				if intensity > s.field[py*s.n+px] {
					s.field[py*s.n+px] = intensity
				}
			}
		}
	}
	return s.field
}

// SetFloatParameter updates a tunable.
func (s *Sim) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "growth":
		if value > 0 {
			s.growth = value
			return true
		}
	case "comp":
		if value > 0 {
			s.comp = value
			return true
		}
	}
	return false
}

// Parameters reports the current tunables.
func (s *Sim) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Params: []core.Parameter{
		{Key: "growth", Label: "Growth rate", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(s.growth, 'f', 1, 64)},
		{Key: "comp", Label: "Competition", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(s.comp, 'f', 1, 64)},
	}}
}

func init() {
	core.Register("mitosis", func(cfg map[string]string) core.Engine {
		return New(FromMap(cfg))
	})
}

// Package quarks implements a diffusing byte-valued automaton driven by
// wandering hotspot emitters. Each step averages the Moore neighborhood, then
// the emitters stamp oscillating values as rotating pinwheels or rings.
package quarks

import (
	"math"
	"strconv"

	"ca-lab/internal/core"
)

const timePerStep = 0.1

type shape int

const (
	shapePinwheel shape = iota
	shapeRing
)

// emitter is one roaming hotspot. Its center follows a Lissajous orbit
// around the base point and its stamped value oscillates over time.
type emitter struct {
	baseX, baseY float64
	phase        float64
	freq         float64
	shape        shape
	radius       float64

	moveSpeedX, moveSpeedY float64
	movePhaseX, movePhaseY float64
	rotSpeed, rotPhase     float64

	arms      int
	armLength int
}

// Config holds the tunable parameters.
type Config struct {
	Size   int
	Count  int
	Radius int
}

// DefaultConfig returns the parameters the lab opens with.
func DefaultConfig() Config {
	return Config{Size: 64, Count: 5, Radius: 17}
}

// FromMap overrides defaults with string values, ignoring bad entries.
func FromMap(m map[string]string) Config {
	cfg := DefaultConfig()
	if v, err := strconv.Atoi(m["size"]); err == nil && v > 0 {
		cfg.Size = v
	}
	if v, err := strconv.Atoi(m["quarks"]); err == nil && v >= 1 {
		cfg.Count = v
	}
	if v, err := strconv.Atoi(m["radius"]); err == nil && v >= 1 {
		cfg.Radius = v
	}
	return cfg
}

// Field is the quarks automaton on a toroidal grid.
type Field struct {
	grid     *core.Torus
	rng      *core.RNG
	emitters []emitter
	count    int
	radius   int
	t        float64
	seed     int64
}

// New creates a quarks field with the provided configuration.
func New(cfg Config) *Field {
	if cfg.Size <= 0 {
		cfg.Size = 64
	}
	if cfg.Count < 1 {
		cfg.Count = 1
	}
	if cfg.Radius < 1 {
		cfg.Radius = 1
	}
	return &Field{
		grid:   core.NewTorus(cfg.Size),
		rng:    core.NewRNG(1),
		count:  cfg.Count,
		radius: cfg.Radius,
	}
}

// Name identifies the simulation.
func (f *Field) Name() string { return "quarks" }

// Size returns the grid dimensions.
func (f *Field) Size() core.Size { return core.Size{W: f.grid.N, H: f.grid.N} }

// Cells exposes the current state buffer.
func (f *Field) Cells() []uint8 { return f.grid.Cells() }

// Prev exposes the previous generation for blending.
func (f *Field) Prev() []uint8 { return f.grid.Prev() }

// States reports the full byte range the diffusion runs over.
func (f *Field) States() int { return 256 }

// Emitters reports the number of active hotspots.
func (f *Field) Emitters() int { return len(f.emitters) }

// Reset fills the grid with noise and rolls a fresh emitter set.
func (f *Field) Reset(seed int64) {
	f.rng = core.NewRNG(seed)
	f.seed = seed
	f.t = 0
	cur := f.grid.Cells()
	prev := f.grid.Prev()
	for i := range cur {
		cur[i] = uint8(f.rng.IntN(256))
		prev[i] = cur[i]
	}
	f.rollEmitters()
}

func (f *Field) rollEmitters() {
	n := float64(f.grid.N)
	f.emitters = f.emitters[:0]
	for i := 0; i < f.count; i++ {
		e := emitter{
			baseX:      f.rng.Range(0, n),
			baseY:      f.rng.Range(0, n),
			phase:      f.rng.Range(0, 2*math.Pi),
			freq:       f.rng.Range(0.8, 1.5),
			radius:     float64(f.radius),
			moveSpeedX: f.rng.Range(0.15, 0.35) * f.rng.Sign(),
			moveSpeedY: f.rng.Range(0.15, 0.35) * f.rng.Sign(),
			movePhaseX: f.rng.Range(0, 2*math.Pi),
			movePhaseY: f.rng.Range(0, 2*math.Pi),
			rotSpeed:   f.rng.Range(0.4, 1.0) * f.rng.Sign(),
			rotPhase:   f.rng.Range(0, 2*math.Pi),
		}
		// Pinwheels twice as likely as rings.
		if f.rng.IntN(3) < 2 {
			e.shape = shapePinwheel
			e.armLength = f.rng.Between(2, 3)
			e.arms = 3 + f.rng.IntN(2)
		} else {
			e.shape = shapeRing
		}
		f.emitters = append(f.emitters, e)
	}
}

// Step diffuses the grid one generation, then stamps the emitters.
func (f *Field) Step() {
	g := f.grid
	var nb [8]uint8
	for y := 0; y < g.N; y++ {
		for x := 0; x < g.N; x++ {
			g.Neighbors8(x, y, &nb)
			total := 0
			for _, v := range nb {
				total += int(v)
			}
			g.SetNext(x, y, uint8((total/8+1)%256))
		}
	}
	g.Commit()

	f.t += timePerStep
	for i := range f.emitters {
		f.stamp(&f.emitters[i])
	}
}

func (f *Field) stamp(e *emitter) {
	g := f.grid
	cx := int(e.baseX+math.Sin(f.t*e.moveSpeedX+e.movePhaseX)*e.radius) % g.N
	cy := int(e.baseY+math.Sin(f.t*e.moveSpeedY+e.movePhaseY)*e.radius) % g.N
	val := uint8(128 + 127*math.Sin(f.t*e.freq+e.phase))
	angle := f.t*e.rotSpeed + e.rotPhase

	if e.shape == shapePinwheel {
		for arm := 0; arm < e.arms; arm++ {
			a := angle + float64(arm)*2*math.Pi/float64(e.arms)
			for dist := 0; dist <= e.armLength; dist++ {
				px := cx + int(math.Cos(a)*float64(dist))
				py := cy + int(math.Sin(a)*float64(dist))
				g.Set(px, py, val)
			}
		}
		return
	}
	const points = 12
	const ringRadius = 1.5
	for i := 0; i < points; i++ {
		a := angle + float64(i)*2*math.Pi/float64(points)
		px := cx + int(math.Cos(a)*ringRadius)
		py := cy + int(math.Sin(a)*ringRadius)
		g.Set(px, py, val)
	}
}

// SetIntParameter updates a tunable. Changing the emitter count rerolls the
// whole set; changing the roam radius retunes the existing orbits in place.
func (f *Field) SetIntParameter(key string, value int) bool {
	switch key {
	case "quarks":
		if value < 1 {
			value = 1
		}
		f.count = value
		f.Reset(f.seed + int64(value))
		return true
	case "radius":
		if value < 1 {
			value = 1
		}
		f.radius = value
		for i := range f.emitters {
			f.emitters[i].radius = float64(value)
		}
		return true
	}
	return false
}

// Parameters reports the current tunables.
func (f *Field) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Params: []core.Parameter{
		{Key: "quarks", Label: "Quarks", Type: core.ParamTypeInt, Value: strconv.Itoa(f.count)},
		{Key: "radius", Label: "Roam radius", Type: core.ParamTypeInt, Value: strconv.Itoa(f.radius)},
	}}
}

func init() {
	core.Register("quarks", func(cfg map[string]string) core.Engine {
		return New(FromMap(cfg))
	})
}

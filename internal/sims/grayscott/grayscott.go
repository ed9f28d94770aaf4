// Package grayscott implements the Gray-Scott reaction-diffusion model. Two
// chemical fields diffuse and react on a torus; the feed rate f and kill rate
// k select the pattern family. The feed rate is the live axis, with k derived
// from f so edits stay inside the chosen family's band.
package grayscott

import (
	"strconv"

	"ca-lab/internal/core"
)

// Diffusion rates.
const (
	du = 0.16
	dv = 0.08
)

const substeps = 8

// Family describes one stable pattern band in (f, k) space.
type Family struct {
	Name    string
	FMin    float64
	FMax    float64
	KMin    float64
	KMax    float64
	FCenter float64
}

// Families lists the four supported pattern bands.
var Families = []Family{
	{Name: "SPOTS", FMin: 0.030, FMax: 0.042, KMin: 0.060, KMax: 0.070, FCenter: 0.035},
	{Name: "LINES", FMin: 0.020, FMax: 0.032, KMin: 0.050, KMax: 0.062, FCenter: 0.025},
	{Name: "CORAL", FMin: 0.024, FMax: 0.036, KMin: 0.052, KMax: 0.063, FCenter: 0.029},
	{Name: "WORMS", FMin: 0.070, FMax: 0.086, KMin: 0.055, KMax: 0.067, FCenter: 0.078},
}

// KFor maps a feed rate to the family's kill rate, co-varying linearly
// across the band.
func (fam Family) KFor(f float64) float64 {
	span := fam.FMax - fam.FMin
	if span < 0.001 {
		span = 0.001
	}
	t := (f - fam.FMin) / span
	return fam.KMin + t*(fam.KMax-fam.KMin)
}

// ClampF forces a feed rate into the family's band.
func (fam Family) ClampF(f float64) float64 {
	if f < fam.FMin {
		return fam.FMin
	}
	if f > fam.FMax {
		return fam.FMax
	}
	return f
}

// Config holds the tunable parameters.
type Config struct {
	Size   int
	Family int
	F      float64
	K      float64
}

// DefaultConfig returns the spots family at its center point.
func DefaultConfig() Config {
	fam := Families[0]
	return Config{Size: 64, Family: 0, F: fam.FCenter, K: fam.KFor(fam.FCenter)}
}

// FromMap overrides defaults with string values, ignoring bad entries.
func FromMap(m map[string]string) Config {
	cfg := DefaultConfig()
	if v, err := strconv.Atoi(m["size"]); err == nil && v > 0 {
		cfg.Size = v
	}
	if v, err := strconv.Atoi(m["family"]); err == nil && v >= 0 && v < len(Families) {
		cfg.Family = v
		fam := Families[v]
		cfg.F = fam.FCenter
		cfg.K = fam.KFor(fam.FCenter)
	}
	if v, err := strconv.ParseFloat(m["f"], 64); err == nil {
		fam := Families[cfg.Family]
		cfg.F = fam.ClampF(v)
		cfg.K = fam.KFor(cfg.F)
	}
	if v, err := strconv.ParseFloat(m["k"], 64); err == nil {
		cfg.K = v
	}
	return cfg
}

// Sim runs the Gray-Scott system at display resolution.
type Sim struct {
	n      int
	u, v   *core.PaddedField
	un, vn *core.PaddedField
	rng    *core.RNG
	field  []float64

	family int
	f, k   float64
}

// New creates a Gray-Scott simulation with the provided configuration.
func New(cfg Config) *Sim {
	if cfg.Size <= 0 {
		cfg.Size = 64
	}
	if cfg.Family < 0 || cfg.Family >= len(Families) {
		cfg.Family = 0
	}
	s := &Sim{
		n:      cfg.Size,
		u:      core.NewPaddedField(cfg.Size),
		v:      core.NewPaddedField(cfg.Size),
		un:     core.NewPaddedField(cfg.Size),
		vn:     core.NewPaddedField(cfg.Size),
		rng:    core.NewRNG(1),
		field:  make([]float64, cfg.Size*cfg.Size),
		family: cfg.Family,
		f:      cfg.F,
		k:      cfg.K,
	}
	s.u.Fill(1)
	return s
}

// Name identifies the simulation.
func (s *Sim) Name() string { return "grayscott" }

// Size returns the display dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.n, H: s.n} }

// F reports the current feed rate.
func (s *Sim) F() float64 { return s.f }

// K reports the current kill rate.
func (s *Sim) K() float64 { return s.k }

// Family reports the active pattern family index.
func (s *Sim) Family() int { return s.family }

// FamilyName reports the active pattern family label.
func (s *Sim) FamilyName() string { return Families[s.family].Name }

// Reset restores the U=1, V=0 steady state and drops a handful of circular
// patches of mixed chemicals to nucleate patterns.
func (s *Sim) Reset(seed int64) {
	s.rng = core.NewRNG(seed)
	s.u.Fill(1)
	s.v.Fill(0)
	patches := s.rng.Between(3, 6)
	for p := 0; p < patches; p++ {
		cx := s.rng.Between(5, s.n-6)
		cy := s.rng.Between(5, s.n-6)
		r := s.rng.Between(2, 4)
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if dx*dx+dy*dy > r*r {
					continue
				}
				x := ((cx+dx)%s.n + s.n) % s.n
				y := ((cy+dy)%s.n + s.n) % s.n
				s.u.Set(x, y, 0.5+s.rng.Range(-0.05, 0.05))
				s.v.Set(x, y, 0.5+s.rng.Range(-0.05, 0.05))
			}
		}
	}
}

// Step runs the fixed sub-step count of the explicit Euler update.
func (s *Sim) Step() {
	f, k := s.f, s.k
	for i := 0; i < substeps; i++ {
		s.u.WrapGhost()
		s.v.WrapGhost()
		for y := 0; y < s.n; y++ {
			for x := 0; x < s.n; x++ {
				uv := s.u.At(x, y)
				vv := s.v.At(x, y)
				uvv := uv * vv * vv
				s.un.Set(x, y, uv+du*s.u.Laplacian(x, y)-uvv+f*(1-uv))
				s.vn.Set(x, y, vv+dv*s.v.Laplacian(x, y)+uvv-(f+k)*vv)
			}
		}
		s.u, s.un = s.un, s.u
		s.v, s.vn = s.vn, s.v
	}
}

// Field exposes the V concentration clamped to [0, 1].
func (s *Sim) Field() []float64 {
	s.field = s.v.Interior(s.field)
	for i, v := range s.field {
		if v < 0 {
			s.field[i] = 0
		} else if v > 1 {
			s.field[i] = 1
		}
	}
	return s.field
}

// SetFloatParameter updates the feed rate (clamped into the active family,
// with k re-derived) or pins the kill rate directly.
func (s *Sim) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "f":
		fam := Families[s.family]
		s.f = fam.ClampF(value)
		s.k = fam.KFor(s.f)
		return true
	case "k":
		s.k = value
		return true
	}
	return false
}

// SetIntParameter switches the pattern family, pulling f into the new band.
func (s *Sim) SetIntParameter(key string, value int) bool {
	if key != "family" {
		return false
	}
	if value < 0 {
		value = 0
	}
	if value >= len(Families) {
		value = len(Families) - 1
	}
	s.family = value
	fam := Families[value]
	s.f = fam.ClampF(s.f)
	s.k = fam.KFor(s.f)
	return true
}

// Parameters reports the current tunables.
func (s *Sim) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Params: []core.Parameter{
		{Key: "f", Label: "Feed rate", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(s.f, 'f', 3, 64)},
		{Key: "k", Label: "Kill rate", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(s.k, 'f', 3, 64)},
		{Key: "family", Label: "Family", Type: core.ParamTypeInt, Value: strconv.Itoa(s.family)},
	}}
}

func init() {
	core.Register("grayscott", func(cfg map[string]string) core.Engine {
		return New(FromMap(cfg))
	})
}

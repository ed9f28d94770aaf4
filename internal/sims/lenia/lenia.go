// Package lenia implements Lenia, a continuous-state cellular automaton.
// The field convolves with a ring-shaped bell kernel each step and grows or
// decays by a Gaussian growth map centered on mu with width sigma. The
// simulation runs at 128x128 and downsamples 2x2 for display.
package lenia

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/dsp/fourier"

	"ca-lab/internal/core"
)

const (
	simSize      = 128
	kernelRadius = 13

	stepDT   = 0.1
	substeps = 2

	soupFill = 0.35

	// A field whose total mass drops below reseedMass for more than
	// deadFrameLimit consecutive steps is considered extinct.
	reseedMass     = 2.0
	deadFrameLimit = 3
)

// Config holds the tunable growth parameters.
type Config struct {
	DisplaySize int
	Mu          float64
	Sigma       float64
}

// DefaultConfig returns the parameters the lab opens with.
func DefaultConfig() Config {
	return Config{DisplaySize: 64, Mu: 0.15, Sigma: 0.022}
}

// FromMap overrides defaults with string values, ignoring bad entries.
func FromMap(m map[string]string) Config {
	cfg := DefaultConfig()
	if v, err := strconv.ParseFloat(m["mu"], 64); err == nil && v > 0 {
		cfg.Mu = v
	}
	if v, err := strconv.ParseFloat(m["sigma"], 64); err == nil && v > 0 {
		cfg.Sigma = v
	}
	return cfg
}

// Sim is the Lenia field with an FFT-convolution stepper.
type Sim struct {
	dispN int
	grid  []float64
	field []float64
	rng   *core.RNG

	mu, sigma float64

	fft       *fft2
	kernelFFT []complex128
	stateC    []complex128

	deadFrames int
}

// fft2 applies a square 2D complex transform as two passes of gonum's 1D
// complex FFT plan: every row, then every column. Both directions work in
// place on a row-major n*n slice.
type fft2 struct {
	plan *fourier.CmplxFFT
	col  []complex128
}

func newFFT2(n int) *fft2 {
	return &fft2{plan: fourier.NewCmplxFFT(n), col: make([]complex128, n)}
}

func (f *fft2) forward(data []complex128) { f.transform(data, false) }

// inverse is unnormalized, like the plan it wraps: a forward/inverse round
// trip scales every element by n*n.
func (f *fft2) inverse(data []complex128) { f.transform(data, true) }

func (f *fft2) transform(data []complex128, inverse bool) {
	n := f.plan.Len()
	for y := 0; y < n; y++ {
		row := data[y*n : (y+1)*n]
		if inverse {
			f.plan.Sequence(row, row)
		} else {
			f.plan.Coefficients(row, row)
		}
	}
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			f.col[y] = data[y*n+x]
		}
		if inverse {
			f.plan.Sequence(f.col, f.col)
		} else {
			f.plan.Coefficients(f.col, f.col)
		}
		for y := 0; y < n; y++ {
			data[y*n+x] = f.col[y]
		}
	}
}

// New creates a Lenia simulation with the provided configuration. The FFT
// plan and kernel spectrum are built lazily on the first step.
func New(cfg Config) *Sim {
	if cfg.DisplaySize <= 0 || simSize%cfg.DisplaySize != 0 {
		cfg.DisplaySize = 64
	}
	return &Sim{
		dispN: cfg.DisplaySize,
		grid:  make([]float64, simSize*simSize),
		field: make([]float64, cfg.DisplaySize*cfg.DisplaySize),
		rng:   core.NewRNG(1),
		mu:    cfg.Mu,
		sigma: cfg.Sigma,
	}
}

// Name identifies the simulation.
func (s *Sim) Name() string { return "lenia" }

// Size returns the display dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.dispN, H: s.dispN} }

// Mu reports the growth center.
func (s *Sim) Mu() float64 { return s.mu }

// Sigma reports the growth width.
func (s *Sim) Sigma() float64 { return s.sigma }

// Mass reports the total field mass at simulation resolution.
func (s *Sim) Mass() float64 {
	total := 0.0
	for _, v := range s.grid {
		total += v
	}
	return total
}

func bell(x, mu, sigma float64) float64 {
	d := x - mu
	return math.Exp(-d * d / (2 * sigma * sigma))
}

// ensureFFT builds the FFT plan and the kernel spectrum. The ring kernel is
// laid out around the origin with wrapped coordinates and normalized to unit
// mass, so convolution conserves field mass.
func (s *Sim) ensureFFT() {
	if s.fft != nil {
		return
	}
	s.fft = newFFT2(simSize)
	kernel := make([]complex128, simSize*simSize)
	sum := 0.0
	for y := 0; y < simSize; y++ {
		dy := float64(y)
		if y > simSize/2 {
			dy = float64(y - simSize)
		}
		for x := 0; x < simSize; x++ {
			dx := float64(x)
			if x > simSize/2 {
				dx = float64(x - simSize)
			}
			dist := math.Hypot(dx, dy) / kernelRadius
			if dist > 1 {
				continue
			}
			v := bell(dist, 0.5, 0.15)
			kernel[y*simSize+x] = complex(v, 0)
			sum += v
		}
	}
	if sum > 0 {
		inv := complex(1/sum, 0)
		for i := range kernel {
			kernel[i] *= inv
		}
	}
	s.fft.forward(kernel)
	s.kernelFFT = kernel
	s.stateC = make([]complex128, simSize*simSize)
}

// Reset fills the field with a 35% random soup.
func (s *Sim) Reset(seed int64) {
	s.rng = core.NewRNG(seed)
	s.deadFrames = 0
	for i := range s.grid {
		if s.rng.Float64() < soupFill {
			s.grid[i] = s.rng.Float64()
		} else {
			s.grid[i] = 0
		}
	}
}

// Step runs the fixed sub-step count of the growth update, reseeding when
// the field has been effectively empty for several steps.
func (s *Sim) Step() {
	s.ensureFFT()
	for i := 0; i < substeps; i++ {
		s.substep()
	}
	if s.Mass() < reseedMass {
		s.deadFrames++
		if s.deadFrames > deadFrameLimit {
			s.Reset(s.rng.Source().Int64())
		}
	} else {
		s.deadFrames = 0
	}
}

func (s *Sim) substep() {
	for i, v := range s.grid {
		s.stateC[i] = complex(v, 0)
	}
	s.fft.forward(s.stateC)
	for i := range s.stateC {
		s.stateC[i] *= s.kernelFFT[i]
	}
	s.fft.inverse(s.stateC)

	// The inverse transform is unnormalized; scale by the element count.
	norm := 1 / float64(simSize*simSize)
	twoSigmaSq := 2 * s.sigma * s.sigma
	for i, v := range s.grid {
		potential := real(s.stateC[i]) * norm
		d := potential - s.mu
		growth := 2*math.Exp(-d*d/twoSigmaSq) - 1
		v += stepDT * growth
		if v < 0 {
			v = 0
		} else if v > 1 {
			v = 1
		}
		s.grid[i] = v
	}
}

// Field exposes the 2x2 block-mean downsample of the simulation grid.
func (s *Sim) Field() []float64 {
	factor := simSize / s.dispN
	area := float64(factor * factor)
	for y := 0; y < s.dispN; y++ {
		for x := 0; x < s.dispN; x++ {
			total := 0.0
			for by := 0; by < factor; by++ {
				row := (y*factor + by) * simSize
				for bx := 0; bx < factor; bx++ {
					total += s.grid[row+x*factor+bx]
				}
			}
			s.field[y*s.dispN+x] = total / area
		}
	}
	return s.field
}

// SetFloatParameter updates a growth parameter.
func (s *Sim) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "mu":
		if value > 0 {
			s.mu = value
			return true
		}
	case "sigma":
		if value > 0 {
			s.sigma = value
			return true
		}
	}
	return false
}

// Parameters reports the current tunables.
func (s *Sim) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Params: []core.Parameter{
		{Key: "mu", Label: "Growth center", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(s.mu, 'f', 3, 64)},
		{Key: "sigma", Label: "Growth width", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(s.sigma, 'f', 3, 64)},
	}}
}

func init() {
	core.Register("lenia", func(cfg map[string]string) core.Engine {
		return New(FromMap(cfg))
	})
}

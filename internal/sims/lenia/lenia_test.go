package lenia

import (
	"math"
	"testing"
)

func TestKernelSpectrumDCIsUnity(t *testing.T) {
	s := New(DefaultConfig())
	s.ensureFFT()
	// The kernel is normalized to unit mass, so its zero-frequency
	// coefficient is 1: convolving a uniform field leaves it unchanged.
	dc := s.kernelFFT[0]
	if math.Abs(real(dc)-1) > 1e-9 || math.Abs(imag(dc)) > 1e-9 {
		t.Fatalf("kernel DC coefficient = %v, want 1", dc)
	}
}

func TestTransformRoundTripScalesByElementCount(t *testing.T) {
	const n = 8
	f := newFFT2(n)
	data := make([]complex128, n*n)
	data[3*n+5] = 1.5

	f.forward(data)
	f.inverse(data)

	// Forward then inverse multiplies by n per pass, n*n in total.
	for i, v := range data {
		want := 0.0
		if i == 3*n+5 {
			want = 1.5 * n * n
		}
		if math.Abs(real(v)-want) > 1e-9 || math.Abs(imag(v)) > 1e-9 {
			t.Fatalf("round trip [%d] = %v, want %v", i, v, want)
		}
	}
}

func TestUniformFieldSeesUniformPotential(t *testing.T) {
	s := New(DefaultConfig())
	for i := range s.grid {
		s.grid[i] = 0.4
	}
	// With potential 0.4 everywhere and mu=0.4, growth is +1: the whole
	// field rises by dt per substep.
	s.mu = 0.4
	s.sigma = 0.05
	s.ensureFFT()
	s.substep()
	want := 0.4 + stepDT
	for i, v := range s.grid {
		if math.Abs(v-want) > 1e-6 {
			t.Fatalf("grid[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestFieldStaysBounded(t *testing.T) {
	s := New(DefaultConfig())
	s.Reset(5)
	for i := 0; i < 5; i++ {
		s.Step()
	}
	for i, v := range s.Field() {
		if v < 0 || v > 1 {
			t.Fatalf("field[%d] = %v, want within [0, 1]", i, v)
		}
	}
}

func TestDownsampleAveragesBlocks(t *testing.T) {
	s := New(DefaultConfig())
	// Paint one 2x2 simulation block fully alive.
	s.grid[0] = 1
	s.grid[1] = 1
	s.grid[simSize] = 1
	s.grid[simSize+1] = 1
	f := s.Field()
	if f[0] != 1 {
		t.Fatalf("field[0] = %v, want 1", f[0])
	}
	if f[1] != 0 {
		t.Fatalf("field[1] = %v, want 0", f[1])
	}
}

func TestEmptyFieldReseedsAfterGrace(t *testing.T) {
	s := New(DefaultConfig())
	s.mu = 0.45 // unreachable growth center: everything dies
	s.sigma = 0.01
	s.Reset(2)
	for i := 0; i < 60; i++ {
		s.Step()
		if s.Mass() >= reseedMass && i > deadFrameLimit {
			return // reseed brought the field back
		}
	}
	t.Fatal("field never reseeded after extinction")
}

func TestVoidClassification(t *testing.T) {
	if got := classify(0.45, 0.05); got != "VOID" {
		t.Fatalf("classify(0.45, 0.05) = %q, want VOID", got)
	}
	if got := classify(0.15, 0.022); got != "SMOOTH FLOW" {
		t.Fatalf("classify(0.15, 0.022) = %q, want SMOOTH FLOW", got)
	}
}

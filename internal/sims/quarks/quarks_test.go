package quarks

import "testing"

func TestDiffusionAveragesNeighborhood(t *testing.T) {
	f := New(Config{Size: 8, Count: 1, Radius: 4})
	cells := f.Cells()
	for i := range cells {
		cells[i] = 80
	}
	f.Step()
	// Uniform field diffuses to avg+1 everywhere; emitter stamps are the
	// only cells allowed to differ.
	diff := 0
	for _, v := range f.Cells() {
		if v != 81 {
			diff++
		}
	}
	if diff > 16 {
		t.Fatalf("%d cells off the diffusion value, want only emitter stamps", diff)
	}
}

func TestResetRollsRequestedEmitterCount(t *testing.T) {
	f := New(Config{Size: 64, Count: 7, Radius: 10})
	f.Reset(3)
	if f.Emitters() != 7 {
		t.Fatalf("emitters = %d, want 7", f.Emitters())
	}
}

func TestCountChangeRerollsEmitters(t *testing.T) {
	f := New(DefaultConfig())
	f.Reset(3)
	if !f.SetIntParameter("quarks", 9) {
		t.Fatal("SetIntParameter(quarks) not handled")
	}
	if f.Emitters() != 9 {
		t.Fatalf("emitters after change = %d, want 9", f.Emitters())
	}
}

func TestRadiusChangeKeepsEmitters(t *testing.T) {
	f := New(DefaultConfig())
	f.Reset(3)
	before := f.emitters[0].baseX
	if !f.SetIntParameter("radius", 30) {
		t.Fatal("SetIntParameter(radius) not handled")
	}
	if f.emitters[0].baseX != before {
		t.Fatal("radius change rerolled emitter positions")
	}
	for i, e := range f.emitters {
		if e.radius != 30 {
			t.Fatalf("emitter %d radius = %v, want 30", i, e.radius)
		}
	}
}

func TestStepAdvancesClock(t *testing.T) {
	f := New(DefaultConfig())
	f.Reset(1)
	f.Step()
	f.Step()
	if f.t != 2*timePerStep {
		t.Fatalf("t = %v, want %v", f.t, 2*timePerStep)
	}
}

package rug

import "testing"

func TestResetSeedsBorderRing(t *testing.T) {
	r := New(DefaultConfig())
	r.Reset(9)
	edge := uint8(r.Edge())
	if edge == 0 {
		t.Fatal("edge value should be nonzero after reset")
	}
	n := r.n
	cells := r.Cells()
	for i := 0; i < n; i++ {
		if cells[i] != edge || cells[(n-1)*n+i] != edge {
			t.Fatalf("border row cell %d not seeded with edge value", i)
		}
		if cells[i*n] != edge || cells[i*n+n-1] != edge {
			t.Fatalf("border column cell %d not seeded with edge value", i)
		}
	}
	// Interior starts blank.
	if cells[(n/2)*n+n/2] != 0 {
		t.Fatal("interior cell not blank after reset")
	}
}

func TestAverageRuleOnUniformNeighborhood(t *testing.T) {
	r := New(Config{Size: 8, Increment: 3, States: 256})
	for i := range r.cur {
		r.cur[i] = 40
	}
	r.edge = 40
	r.Step()
	// Every neighborhood averages to 40, so all cells become 43.
	for i, v := range r.Cells() {
		if v != 43 {
			t.Fatalf("cell %d = %d, want 43", i, v)
		}
	}
}

func TestBoundaryUsesEdgeValue(t *testing.T) {
	r := New(Config{Size: 4, Increment: 1, States: 256})
	r.edge = 80
	// Blank interior: the corner's five out-of-bounds neighbors contribute
	// the edge value, its three in-bounds neighbors zero.
	r.Step()
	want := uint8((5*80/8 + 1) % 256)
	if got := r.Cells()[0]; got != want {
		t.Fatalf("corner after step = %d, want %d", got, want)
	}
}

func TestShrinkingStatesFoldsCellsAndEdge(t *testing.T) {
	r := New(DefaultConfig())
	r.Reset(4)
	r.edge = 190
	if !r.SetIntParameter("states", 64) {
		t.Fatal("SetIntParameter(states) not handled")
	}
	if r.Edge() >= 64 {
		t.Fatalf("edge = %d, want folded below 64", r.Edge())
	}
	for i, v := range r.Cells() {
		if int(v) >= 64 {
			t.Fatalf("cell %d = %d, want folded below 64", i, v)
		}
	}
}

func TestStepRotatesPrevGeneration(t *testing.T) {
	r := New(DefaultConfig())
	r.Reset(11)
	before := append([]uint8(nil), r.Cells()...)
	r.Step()
	for i, v := range r.Prev() {
		if v != before[i] {
			t.Fatalf("prev cell %d = %d, want pre-step value %d", i, v, before[i])
		}
	}
}

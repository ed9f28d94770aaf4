package core

import "testing"

func TestTorusWraparound(t *testing.T) {
	g := NewTorus(8)
	g.Set(3, 5, 42)

	for _, k := range []int{-2, -1, 0, 1, 3} {
		for _, m := range []int{-2, -1, 0, 1, 3} {
			if got := g.At(3+k*8, 5+m*8); got != 42 {
				t.Fatalf("At(%d,%d) = %d, want 42", 3+k*8, 5+m*8, got)
			}
		}
	}

	g.Set(-1, -1, 7)
	if got := g.At(7, 7); got != 7 {
		t.Fatalf("negative wrap: At(7,7) = %d, want 7", got)
	}
}

func TestTorusNeighbors8(t *testing.T) {
	g := NewTorus(3)
	// Values 1..9 row-major so every neighbor is distinguishable.
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			g.Set(x, y, uint8(y*3+x+1))
		}
	}

	var out [8]uint8
	g.Neighbors8(0, 0, &out)
	want := [8]uint8{9, 7, 8, 3, 2, 6, 4, 5}
	if out != want {
		t.Fatalf("corner neighbors = %v, want %v", out, want)
	}
}

func TestTorusCommitRotation(t *testing.T) {
	g := NewTorus(2)
	g.Set(0, 0, 1)
	g.SetNext(0, 0, 2)
	g.Commit()

	if got := g.At(0, 0); got != 2 {
		t.Fatalf("current after commit = %d, want 2", got)
	}
	if got := g.Prev()[0]; got != 1 {
		t.Fatalf("previous after commit = %d, want 1", got)
	}
}

func TestStepClockBlend(t *testing.T) {
	c := NewStepClock(0.1)
	if c.Advance(0.05) {
		t.Fatal("clock fired before interval elapsed")
	}
	if b := c.Blend(); b < 0.49 || b > 0.51 {
		t.Fatalf("blend = %f, want 0.5", b)
	}
	if !c.Advance(0.06) {
		t.Fatal("clock did not fire after interval elapsed")
	}
	if b := c.Blend(); b != 0 {
		t.Fatalf("blend after firing = %f, want 0", b)
	}

	every := NewStepClock(0)
	if !every.Advance(0.001) || every.Blend() != 1 {
		t.Fatal("zero-interval clock must fire every update with blend 1")
	}
}

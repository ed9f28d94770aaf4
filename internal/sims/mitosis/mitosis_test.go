package mitosis

import (
	"math"
	"testing"
)

func healthy(x, y float64) colony {
	return colony{x: x, y: y, radius: 3, energy: 1, growthRate: 1, alive: true}
}

func TestResetSeedsSmallColonies(t *testing.T) {
	s := New(DefaultConfig())
	s.Reset(7)
	if n := s.Colonies(); n < 3 || n > 6 {
		t.Fatalf("reset spawned %d colonies, want 3..6", n)
	}
	for i, c := range s.colonies {
		if c.x < 12 || c.x > 52 || c.y < 12 || c.y > 52 {
			t.Fatalf("colony %d seeded at (%v, %v), want away from the walls", i, c.x, c.y)
		}
		if c.radius < 2.5 || c.radius > 3.5 {
			t.Fatalf("colony %d seeded with radius %v, want 2.5..3.5", i, c.radius)
		}
	}
}

func TestLargeColonySplits(t *testing.T) {
	s := New(DefaultConfig())
	s.colonies = []colony{{x: 32, y: 32, radius: 7, energy: 1, growthRate: 1, alive: true}}
	s.Step()
	if s.Colonies() != 2 {
		t.Fatalf("got %d colonies after division, want 2", s.Colonies())
	}
	for i, c := range s.colonies {
		if c.radius >= splitRadius {
			t.Fatalf("colony %d kept radius %v past the division threshold", i, c.radius)
		}
		if c.generation != 1 {
			t.Fatalf("colony %d has generation %d, want 1", i, c.generation)
		}
	}
}

func TestStarvedColonyDies(t *testing.T) {
	s := New(DefaultConfig())
	s.colonies = []colony{
		healthy(15, 15), healthy(45, 15), healthy(15, 45),
		{x: 45, y: 45, radius: 3, energy: 0.05, growthRate: 1, alive: true},
	}
	s.Step()
	if s.Colonies() != 3 {
		t.Fatalf("got %d colonies, want the starved one culled from 4", s.Colonies())
	}
}

func TestOldColonyDies(t *testing.T) {
	s := New(DefaultConfig())
	s.colonies = []colony{
		healthy(15, 15), healthy(45, 15), healthy(15, 45),
		{x: 45, y: 45, radius: 3, energy: 1, age: 20, growthRate: 1, alive: true},
	}
	s.Step()
	for _, c := range s.colonies {
		if c.age > 15 {
			t.Fatalf("colony aged %v survived past its lifespan", c.age)
		}
	}
	if s.Colonies() != 3 {
		t.Fatalf("got %d colonies, want the old one culled from 4", s.Colonies())
	}
}

func TestLargerColonyDrainsSmallerOnContact(t *testing.T) {
	s := New(DefaultConfig())
	big := colony{x: 30, y: 30, radius: 5, energy: 0.8, growthRate: 1, alive: true}
	small := colony{x: 33, y: 30, radius: 3, energy: 0.8, growthRate: 1, alive: true}
	s.colonies = []colony{big, small}
	s.Step()

	if s.colonies[0].energy <= s.colonies[1].energy {
		t.Fatalf("big colony energy %v did not exceed small colony energy %v after contact",
			s.colonies[0].energy, s.colonies[1].energy)
	}
	dist := math.Hypot(s.colonies[1].x-s.colonies[0].x, s.colonies[1].y-s.colonies[0].y)
	if dist <= 3 {
		t.Fatalf("colonies stayed %v apart, want pushed beyond the initial 3", dist)
	}
}

func TestWallsClampColonyCenters(t *testing.T) {
	s := New(DefaultConfig())
	s.colonies = []colony{
		healthy(15, 15), healthy(45, 15), healthy(15, 45),
		{x: 1, y: 32, radius: 3, energy: 1, growthRate: 1, alive: true},
	}
	s.Step()
	for i, c := range s.colonies {
		margin := c.radius + 2
		if c.x < margin-1e-9 || c.x > 64-margin+1e-9 {
			t.Fatalf("colony %d center x=%v outside the wall margin %v", i, c.x, margin)
		}
	}
}

func TestFieldIsSolidInsideAndEmptyFarAway(t *testing.T) {
	s := New(DefaultConfig())
	s.colonies = []colony{{x: 32, y: 32, radius: 4, energy: 1, growthRate: 1, alive: true}}
	f := s.Field()
	if got := f[32*64+32]; got != 1 {
		t.Fatalf("field at the colony center = %v, want 1", got)
	}
	if got := f[32*64+36]; math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("field on the rim = %v, want 0.5", got)
	}
	if got := f[32*64+50]; got != 0 {
		t.Fatalf("field far from the colony = %v, want 0", got)
	}
}

func TestMetabolismClampsEnergy(t *testing.T) {
	s := New(DefaultConfig())
	// A huge disk earns more from its area per frame than the cap allows.
	s.colonies = []colony{{x: 32, y: 32, radius: 20, energy: 1.45, growthRate: 1, alive: true}}
	s.metabolize()
	if got := s.colonies[0].energy; got != 1.5 {
		t.Fatalf("energy = %v after an oversized income, want clamped to 1.5", got)
	}
}

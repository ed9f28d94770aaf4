package slime

import "testing"

func TestResetSpawnsAllColonies(t *testing.T) {
	c := New(DefaultConfig())
	c.Reset(8)
	var seen [numColonies + 1]bool
	for _, id := range c.ids {
		seen[id] = true
	}
	for id := 1; id <= numColonies; id++ {
		if !seen[id] {
			t.Fatalf("colony %d missing after reset", id)
		}
	}
}

func TestEncodingSeparatesColoniesAndStrength(t *testing.T) {
	c := New(DefaultConfig())
	c.ids[0] = 1
	c.strength[0] = 1
	c.ids[1] = 1
	c.strength[1] = 0.01
	c.ids[2] = 6
	c.strength[2] = 1
	c.encode()

	if c.cur[0] == c.cur[1] {
		t.Fatal("strong and weak cells of one colony encode identically")
	}
	if c.cur[0] == c.cur[2] {
		t.Fatal("different colonies at equal strength encode identically")
	}
	max := uint8(c.States() - 1)
	for i := 0; i < 3; i++ {
		if c.cur[i] == 0 || c.cur[i] > max {
			t.Fatalf("cell %d encoded as %d, want within (0, %d]", i, c.cur[i], max)
		}
	}
}

func TestEmptyCellsEncodeAsZero(t *testing.T) {
	c := New(DefaultConfig())
	c.encode()
	for i, v := range c.cur {
		if v != 0 {
			t.Fatalf("empty cell %d encoded as %d, want 0", i, v)
		}
	}
}

func TestGrowthOnlyClaimsFrontier(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Growth = 1.0 // expand every frontier cell
	c := New(cfg)
	c.ids[0] = 1 // lone seed in a corner
	c.strength[0] = 1
	c.recount()
	c.growthStep()

	claimed := 0
	for i, id := range c.ids {
		if id == 0 {
			continue
		}
		claimed++
		x, y := i%c.n, i/c.n
		if x > 1 || y > 1 {
			t.Fatalf("cell (%d,%d) claimed far from the frontier", x, y)
		}
	}
	if claimed < 2 {
		t.Fatal("frontier never expanded at growth chance 1.0")
	}
}

func TestStarvedCellsDie(t *testing.T) {
	c := New(DefaultConfig())
	c.ids[0] = 2
	c.strength[0] = 0.04 // below the survival floor
	c.recount()
	c.competitionStep()
	if c.ids[0] != 0 {
		t.Fatalf("cell with strength 0.04 survived as colony %d", c.ids[0])
	}
}

func TestStepRefreshesDisplayBuffers(t *testing.T) {
	c := New(DefaultConfig())
	c.Reset(12)
	before := append([]uint8(nil), c.Cells()...)
	c.Step()
	for i, v := range c.Prev() {
		if v != before[i] {
			t.Fatalf("prev[%d] = %d, want pre-step display value %d", i, v, before[i])
		}
	}
}

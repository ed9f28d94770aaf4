// Package slime implements competing slime-mold colonies on a bounded grid.
// Six colonies expand along their frontiers, attack weaker borders, and decay
// with age; the display encodes colony identity and strength into a small
// discrete state space.
package slime

import (
	"math"
	"strconv"

	"ca-lab/internal/core"
)

const (
	numColonies = 6

	// Strength quantizes to this many brightness levels per colony, plus the
	// shared empty state.
	brightnessLevels = 4

	stepSeconds = 0.08
)

// Config holds the tunable parameters.
type Config struct {
	Size   int
	Growth float64
	Attack float64
}

// DefaultConfig returns the parameters the lab opens with.
func DefaultConfig() Config {
	return Config{Size: 64, Growth: 0.15, Attack: 0.10}
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
	if v, err := strconv.ParseFloat(m["attack"], 64); err == nil && v > 0 {
		cfg.Attack = v
	}
	return cfg
}

// Colonies is the competing-colony simulation.
type Colonies struct {
	n        int
	ids      []uint8
	strength []float64
	age      []float64
	power    [numColonies + 1]float64
	rng      *core.RNG

	growth float64
	attack float64

	counts [numColonies + 1]int
	total  int

	cur  []uint8
	prev []uint8
}

// New creates a colony simulation with the provided configuration.
func New(cfg Config) *Colonies {
	if cfg.Size <= 0 {
		cfg.Size = 64
	}
	total := cfg.Size * cfg.Size
	return &Colonies{
		n:        cfg.Size,
		ids:      make([]uint8, total),
		strength: make([]float64, total),
		age:      make([]float64, total),
		rng:      core.NewRNG(1),
		growth:   cfg.Growth,
		attack:   cfg.Attack,
		cur:      make([]uint8, total),
		prev:     make([]uint8, total),
	}
}

// Name identifies the simulation.
func (c *Colonies) Name() string { return "slime" }

// Size returns the grid dimensions.
func (c *Colonies) Size() core.Size { return core.Size{W: c.n, H: c.n} }

// Cells exposes the encoded display buffer.
func (c *Colonies) Cells() []uint8 { return c.cur }

// Prev exposes the previous encoded display buffer.
func (c *Colonies) Prev() []uint8 { return c.prev }

// States reports the encoded state count: empty plus each colony at each
// brightness level.
func (c *Colonies) States() int { return 1 + numColonies*brightnessLevels }

// ColonyAt reports the colony id occupying (x, y), zero for empty.
func (c *Colonies) ColonyAt(x, y int) uint8 { return c.ids[y*c.n+x] }

// Reset spawns each colony as a small blob away from the others.
func (c *Colonies) Reset(seed int64) {
	c.rng = core.NewRNG(seed)
	for i := range c.ids {
		c.ids[i] = 0
		c.strength[i] = 0
		c.age[i] = 0
	}
	for id := 1; id <= numColonies; id++ {
		c.power[id] = c.rng.Range(0.95, 1.05)
	}

	type point struct{ x, y float64 }
	var centers []point
	for id := 1; id <= numColonies; id++ {
		var cx, cy int
		for try := 0; try < 50; try++ {
			cx = c.rng.Between(8, c.n-8)
			cy = c.rng.Between(8, c.n-8)
			ok := true
			for _, p := range centers {
				if math.Hypot(float64(cx)-p.x, float64(cy)-p.y) < 15 {
					ok = false
					break
				}
			}
			if ok {
				break
			}
		}
		centers = append(centers, point{float64(cx), float64(cy)})
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				x, y := cx+dx, cy+dy
				if x < 0 || x >= c.n || y < 0 || y >= c.n {
					continue
				}
				if c.rng.Float64() < 0.7 {
					i := y*c.n + x
					c.ids[i] = uint8(id)
					c.strength[i] = 1
					c.age[i] = 0
				}
			}
		}
	}
	c.encode()
	copy(c.prev, c.cur)
}

// neighborStrength sums per-colony neighbor strength around (x, y).
func (c *Colonies) neighborStrength(x, y int, out *[numColonies + 1]float64) {
	for i := range out {
		out[i] = 0
	}
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if nx < 0 || nx >= c.n || ny < 0 || ny >= c.n {
				continue
			}
			i := ny*c.n + nx
			if c.ids[i] > 0 {
				out[c.ids[i]] += c.strength[i]
			}
		}
	}
}

// colonyPower scales base power by territory share: small colonies fight
// back harder, dominant ones get a mild bonus.
func (c *Colonies) colonyPower(id uint8) float64 {
	if c.total == 0 {
		return 1
	}
	base := c.power[id]
	mine := c.counts[id]
	if mine == 0 {
		return base
	}
	share := float64(mine) / float64(c.total)
	switch {
	case share < 0.10:
		return base * (1 + (0.10-share)*3)
	case share > 0.40:
		return base * (1 + (share-0.40)*0.5)
	default:
		return base
	}
}

func (c *Colonies) recount() {
	for i := range c.counts {
		c.counts[i] = 0
	}
	c.total = 0
	for _, id := range c.ids {
		if id > 0 {
			c.counts[id]++
			c.total++
		}
	}
}

// Step runs one growth round and one competition round, then refreshes the
// encoded display buffers.
func (c *Colonies) Step() {
	for i := range c.age {
		if c.ids[i] > 0 {
			c.age[i] += stepSeconds
		}
	}
	c.recount()
	c.growthStep()
	c.competitionStep()

	// A map fully owned by one colony occasionally restarts the war.
	for id := 1; id <= numColonies; id++ {
		if c.counts[id] >= c.n*c.n && c.rng.Float64() < 0.02 {
			c.Reset(c.rng.Source().Int64())
			return
		}
	}

	copy(c.prev, c.cur)
	c.encode()
}

func (c *Colonies) growthStep() {
	type cell struct{ x, y int }
	var frontier []cell
	var nb [numColonies + 1]float64
	for y := 0; y < c.n; y++ {
		for x := 0; x < c.n; x++ {
			if c.ids[y*c.n+x] != 0 {
				continue
			}
			c.neighborStrength(x, y, &nb)
			for id := 1; id <= numColonies; id++ {
				if nb[id] > 0 {
					frontier = append(frontier, cell{x, y})
					break
				}
			}
		}
	}
	c.rng.Source().Shuffle(len(frontier), func(i, j int) {
		frontier[i], frontier[j] = frontier[j], frontier[i]
	})

	for _, fc := range frontier {
		if c.rng.Float64() > c.growth {
			continue
		}
		c.neighborStrength(fc.x, fc.y, &nb)
		winner := uint8(0)
		best := 0.0
		for id := 1; id <= numColonies; id++ {
			if nb[id] > best {
				best = nb[id]
				winner = uint8(id)
			}
		}
		if winner == 0 {
			continue
		}
		// Crowded frontiers mostly stall, keeping borders ragged.
		same := 0
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := fc.x+dx, fc.y+dy
				if nx >= 0 && nx < c.n && ny >= 0 && ny < c.n && c.ids[ny*c.n+nx] == winner {
					same++
				}
			}
		}
		if same > 3 && c.rng.Float64() > 0.3 {
			continue
		}
		i := fc.y*c.n + fc.x
		c.ids[i] = winner
		c.strength[i] = math.Min(1, best*c.colonyPower(winner)*0.3)
		c.age[i] = 0
	}
}

func (c *Colonies) competitionStep() {
	type attack struct {
		idx       int
		byColony  uint8
		advantage float64
	}
	var attacks []attack
	var nb [numColonies + 1]float64
	for y := 0; y < c.n; y++ {
		for x := 0; x < c.n; x++ {
			i := y*c.n + x
			id := c.ids[i]
			if id == 0 {
				continue
			}
			mine := c.strength[i] * c.colonyPower(id)
			c.neighborStrength(x, y, &nb)
			for enemy := uint8(1); enemy <= numColonies; enemy++ {
				if enemy == id || nb[enemy] == 0 {
					continue
				}
				enemyPower := nb[enemy] * c.colonyPower(enemy)
				if enemyPower > mine*1.2 {
					attacks = append(attacks, attack{i, enemy, enemyPower - mine})
				}
			}
		}
	}
	for _, a := range attacks {
		if c.rng.Float64() < a.advantage*c.attack {
			c.ids[a.idx] = a.byColony
			c.strength[a.idx] = 0.5
			c.age[a.idx] = 0
		}
	}

	// Strength settles: contested cells weaken, well-backed cells harden,
	// old cells decay, and exhausted cells die off.
	next := make([]float64, len(c.strength))
	for y := 0; y < c.n; y++ {
		for x := 0; x < c.n; x++ {
			i := y*c.n + x
			id := c.ids[i]
			if id == 0 {
				continue
			}
			c.neighborStrength(x, y, &nb)
			same := nb[id]
			enemies := 0.0
			for e := uint8(1); e <= numColonies; e++ {
				if e != id {
					enemies += nb[e]
				}
			}
			switch {
			case enemies > 0:
				next[i] = math.Max(0.1, c.strength[i]-0.02)
			case same > 3:
				next[i] = math.Min(1, c.strength[i]+0.01)
			default:
				next[i] = c.strength[i]
			}
			if c.age[i] > 10 {
				next[i] = math.Max(0.1, next[i]-(c.age[i]-10)*0.003)
			}
			if enemies > 0 && c.strength[i] > 0.8 && c.rng.Float64() < 0.01 {
				next[i] = 0.3
			}
			if next[i] < 0.05 {
				c.ids[i] = 0
				next[i] = 0
				c.age[i] = 0
			}
		}
	}
	c.strength = next
}

// encode packs colony id and quantized strength into the display buffer:
// state 0 is empty, then four brightness levels per colony.
func (c *Colonies) encode() {
	for i, id := range c.ids {
		if id == 0 {
			c.cur[i] = 0
			continue
		}
		level := int(c.strength[i] * float64(brightnessLevels))
		if level >= brightnessLevels {
			level = brightnessLevels - 1
		}
		c.cur[i] = uint8(1 + (int(id)-1)*brightnessLevels + level)
	}
}

// SetFloatParameter updates a tunable.
func (c *Colonies) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "growth":
		if value > 0 {
			c.growth = value
			return true
		}
	case "attack":
		if value > 0 {
			c.attack = value
			return true
		}
	}
	return false
}

// Parameters reports the current tunables.
func (c *Colonies) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Params: []core.Parameter{
		{Key: "growth", Label: "Growth chance", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(c.growth, 'f', 2, 64)},
		{Key: "attack", Label: "Attack power", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(c.attack, 'f', 2, 64)},
	}}
}

func init() {
	core.Register("slime", func(cfg map[string]string) core.Engine {
		return New(FromMap(cfg))
	})
}

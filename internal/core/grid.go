package core

// mooreOffsets is the fixed neighbor order used by Neighbors8. Engines rely
// on the order being stable so their own tie-break logic is reproducible.
var mooreOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Torus stores an N×N grid of byte-sized cell values in row-major order with
// toroidal wrapping and a current/next/previous buffer triple. The dimensions
// are fixed for the lifetime of the grid; constructing a new Torus is the
// only resize path.
type Torus struct {
	N    int
	cur  []uint8
	next []uint8
	prev []uint8
}

// NewTorus allocates a toroidal grid with side length n.
func NewTorus(n int) *Torus {
	if n <= 0 {
		n = 1
	}
	total := n * n
	return &Torus{
		N:    n,
		cur:  make([]uint8, total),
		next: make([]uint8, total),
		prev: make([]uint8, total),
	}
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Torus) Wrap(x, y int) (int, int) {
	x = (x%g.N + g.N) % g.N
	y = (y%g.N + g.N) % g.N
	return x, y
}

// Index returns the linear slice index for coordinates (x, y) after wrapping.
func (g *Torus) Index(x, y int) int {
	x, y = g.Wrap(x, y)
	return y*g.N + x
}

// At reads the current-buffer value at (x, y) with wraparound.
func (g *Torus) At(x, y int) uint8 { return g.cur[g.Index(x, y)] }

// Set writes the current-buffer value at (x, y) with wraparound.
func (g *Torus) Set(x, y int, v uint8) { g.cur[g.Index(x, y)] = v }

// SetNext writes the next-buffer value at (x, y) with wraparound.
func (g *Torus) SetNext(x, y int, v uint8) { g.next[g.Index(x, y)] = v }

// Neighbors8 fills out with the Moore neighborhood of (x, y) from the current
// buffer, in the fixed order row-by-row, left to right, center excluded.
func (g *Torus) Neighbors8(x, y int, out *[8]uint8) {
	for i, d := range mooreOffsets {
		out[i] = g.cur[g.Index(x+d[0], y+d[1])]
	}
}

// Cells exposes the current buffer so callers can read/write values directly.
func (g *Torus) Cells() []uint8 { return g.cur }

// Next exposes the next buffer. Rules write a full next generation here and
// then call Commit; they must never read it back mid-step.
func (g *Torus) Next() []uint8 { return g.next }

// Prev exposes the previous buffer, kept solely for inter-step color
// blending. It is never fed back into a rule.
func (g *Torus) Prev() []uint8 { return g.prev }

// Commit rotates the buffer triple after a step: prev takes the old current,
// current takes the freshly computed next, and the old prev slice is recycled
// as the new next buffer.
func (g *Torus) Commit() {
	g.prev, g.cur, g.next = g.cur, g.next, g.prev
}

// Clear zeroes all three buffers.
func (g *Torus) Clear() {
	for i := range g.cur {
		g.cur[i] = 0
		g.next[i] = 0
		g.prev[i] = 0
	}
}

package core

// PaddedField stores an N×N scalar field surrounded by a one-cell ghost
// border, so stencil code never branches on boundary conditions. Interior
// coordinates run 0..N-1; the border is refreshed by WrapGhost before each
// stencil pass.
type PaddedField struct {
	N    int
	data []float64
}

// NewPaddedField allocates a field with interior side length n.
func NewPaddedField(n int) *PaddedField {
	if n <= 0 {
		n = 1
	}
	return &PaddedField{N: n, data: make([]float64, (n+2)*(n+2))}
}

func (f *PaddedField) idx(x, y int) int { return (y+1)*(f.N+2) + (x + 1) }

// At reads the interior value at (x, y).
func (f *PaddedField) At(x, y int) float64 { return f.data[f.idx(x, y)] }

// Set writes the interior value at (x, y).
func (f *PaddedField) Set(x, y int, v float64) { f.data[f.idx(x, y)] = v }

// Fill sets every interior value to v.
func (f *PaddedField) Fill(v float64) {
	for y := 0; y < f.N; y++ {
		for x := 0; x < f.N; x++ {
			f.data[f.idx(x, y)] = v
		}
	}
}

// WrapGhost copies the opposite interior edges into the ghost border,
// corners included, giving the field toroidal topology for stencil reads.
func (f *PaddedField) WrapGhost() {
	n := f.N
	stride := n + 2
	// Top and bottom ghost rows take the far interior rows.
	copy(f.data[1:1+n], f.data[n*stride+1:n*stride+1+n])
	copy(f.data[(n+1)*stride+1:(n+1)*stride+1+n], f.data[stride+1:stride+1+n])
	// Left and right ghost columns take the far interior columns.
	for y := 1; y <= n; y++ {
		row := y * stride
		f.data[row] = f.data[row+n]
		f.data[row+n+1] = f.data[row+1]
	}
	// Corners wrap diagonally.
	f.data[0] = f.data[n*stride+n]
	f.data[n+1] = f.data[n*stride+1]
	f.data[(n+1)*stride] = f.data[stride+n]
	f.data[(n+1)*stride+n+1] = f.data[stride+1]
}

// Laplacian computes the 5-point discrete Laplacian at interior (x, y).
// WrapGhost must have been called since the last interior write for border
// cells to see toroidal neighbors.
func (f *PaddedField) Laplacian(x, y int) float64 {
	i := f.idx(x, y)
	stride := f.N + 2
	return f.data[i-1] + f.data[i+1] + f.data[i-stride] + f.data[i+stride] - 4*f.data[i]
}

// Interior copies the interior values into dst (allocating when nil) and
// returns it, row-major.
func (f *PaddedField) Interior(dst []float64) []float64 {
	if len(dst) != f.N*f.N {
		dst = make([]float64, f.N*f.N)
	}
	for y := 0; y < f.N; y++ {
		for x := 0; x < f.N; x++ {
			dst[y*f.N+x] = f.data[f.idx(x, y)]
		}
	}
	return dst
}

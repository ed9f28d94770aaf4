package render

import "image/color"

// Frame is the headless render sink: a fixed-size RGBA pixel buffer the lab
// controller draws into. Output adapters (LED matrix, windowed display) blit
// it however they like.
type Frame struct {
	W, H int
	Pix  []color.RGBA
}

// NewFrame allocates a frame with the given dimensions.
func NewFrame(w, h int) *Frame {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Frame{W: w, H: h, Pix: make([]color.RGBA, w*h)}
}

// SetPixel writes a pixel; out-of-bounds coordinates are ignored.
func (f *Frame) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= f.W || y < 0 || y >= f.H {
		return
	}
	f.Pix[y*f.W+x] = c
}

// At reads a pixel; out-of-bounds coordinates return black.
func (f *Frame) At(x, y int) color.RGBA {
	if x < 0 || x >= f.W || y < 0 || y >= f.H {
		return color.RGBA{A: 255}
	}
	return f.Pix[y*f.W+x]
}

// Clear fills the frame with the given color.
func (f *Frame) Clear(c color.RGBA) {
	for i := range f.Pix {
		f.Pix[i] = c
	}
}

// RGBA serializes the frame into a packed byte buffer (allocating when the
// provided one is too small) for texture upload.
func (f *Frame) RGBA(buf []byte) []byte {
	need := 4 * len(f.Pix)
	if len(buf) != need {
		buf = make([]byte, need)
	}
	for i, c := range f.Pix {
		base := i * 4
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = 255
	}
	return buf
}

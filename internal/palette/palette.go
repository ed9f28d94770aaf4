// Package palette builds fixed-size color ramps and maps scalar cell state
// to RGB for the lab visuals.
package palette

import (
	"image/color"
	"math"
)

// Palette is an ordered sequence of colors. Index 0 maps to the engine's
// empty/background value where applicable. Palettes are immutable once built.
type Palette []color.RGBA

// rainbowKeys are the seven hue anchors used by the banded rainbow ramps.
var rainbowKeys = []color.RGBA{
	{R: 255, A: 255},
	{R: 255, G: 127, A: 255},
	{R: 255, G: 255, A: 255},
	{G: 255, A: 255},
	{B: 255, A: 255},
	{R: 75, B: 130, A: 255},
	{R: 148, B: 211, A: 255},
}

// Lerp linearly interpolates between two colors per channel, t in [0, 1].
func Lerp(a, b color.RGBA, t float64) color.RGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}

// Gradient builds an n-entry ramp interpolating through the key colors.
// Index 0 is exactly the first key and index n-1 exactly the last key.
func Gradient(keys []color.RGBA, n int) Palette {
	if n <= 0 || len(keys) == 0 {
		return nil
	}
	p := make(Palette, n)
	if len(keys) == 1 || n == 1 {
		for i := range p {
			p[i] = keys[0]
		}
		return p
	}
	segments := len(keys) - 1
	for i := range p {
		pos := float64(i) / float64(n-1) * float64(segments)
		seg := int(pos)
		if seg >= segments {
			seg = segments - 1
		}
		p[i] = Lerp(keys[seg], keys[seg+1], pos-float64(seg))
	}
	return p
}

// BandedRainbow builds an n-entry ramp cycling through the rainbow hues the
// given number of times, producing repeating colored bands.
func BandedRainbow(bands, n int) Palette {
	if n <= 0 {
		return nil
	}
	if bands < 1 {
		bands = 1
	}
	p := make(Palette, n)
	keys := len(rainbowKeys)
	for i := range p {
		pos := float64(i*bands*keys) / float64(n)
		a := int(pos) % keys
		b := (a + 1) % keys
		p[i] = Lerp(rainbowKeys[a], rainbowKeys[b], pos-math.Floor(pos))
	}
	return p
}

// MonoBands builds an n-entry single-hue ramp whose brightness oscillates
// through the given number of bands.
func MonoBands(base color.RGBA, bands, n int) Palette {
	if n <= 0 {
		return nil
	}
	if bands < 1 {
		bands = 1
	}
	p := make(Palette, n)
	for i := range p {
		pos := float64(i*bands*2) / float64(n)
		brightness := (math.Sin(pos*math.Pi) + 1) / 2
		p[i] = color.RGBA{
			R: uint8(float64(base.R) * brightness),
			G: uint8(float64(base.G) * brightness),
			B: uint8(float64(base.B) * brightness),
			A: 255,
		}
	}
	return p
}

// Hue maps h in [0, 1) around the RGB hue wheel at full saturation.
func Hue(h float64) color.RGBA {
	h = h - math.Floor(h)
	s := h * 6
	sector := int(s) % 6
	frac := s - math.Floor(s)
	ramp := uint8(255 * frac)
	fall := uint8(255 * (1 - frac))
	switch sector {
	case 0:
		return color.RGBA{R: 255, G: ramp, A: 255}
	case 1:
		return color.RGBA{R: fall, G: 255, A: 255}
	case 2:
		return color.RGBA{G: 255, B: ramp, A: 255}
	case 3:
		return color.RGBA{G: fall, B: 255, A: 255}
	case 4:
		return color.RGBA{R: ramp, B: 255, A: 255}
	default:
		return color.RGBA{R: 255, B: fall, A: 255}
	}
}

// HueWheel builds an n-entry ramp sweeping the hue wheel from start across
// span (both as wheel fractions, wrapping past 1).
func HueWheel(n int, start, span float64) Palette {
	if n <= 0 {
		return nil
	}
	p := make(Palette, n)
	for i := range p {
		p[i] = Hue(start + span*float64(i)/float64(n))
	}
	return p
}

// Sample maps t in [0, 1] to a color by linear interpolation between the two
// nearest palette entries. Out-of-range values are clamped.
func (p Palette) Sample(t float64) color.RGBA {
	if len(p) == 0 {
		return color.RGBA{A: 255}
	}
	if t <= 0 {
		return p[0]
	}
	if t >= 1 {
		return p[len(p)-1]
	}
	pos := t * float64(len(p)-1)
	lo := int(pos)
	hi := lo + 1
	if hi > len(p)-1 {
		hi = len(p) - 1
	}
	return Lerp(p[lo], p[hi], pos-float64(lo))
}

// Entry returns the palette color for a discrete state, scaling the state
// range [0, states) onto the full ramp. States outside the range clamp.
func (p Palette) Entry(state, states int) color.RGBA {
	if len(p) == 0 {
		return color.RGBA{A: 255}
	}
	if states <= 1 {
		return p[0]
	}
	idx := state * (len(p) - 1) / (states - 1)
	if idx < 0 {
		idx = 0
	}
	if idx > len(p)-1 {
		idx = len(p) - 1
	}
	return p[idx]
}

// RGB is shorthand for an opaque color literal.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

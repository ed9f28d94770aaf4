package palette

import (
	"image/color"
	"testing"
)

func TestGradientEndpointsExact(t *testing.T) {
	keys := []color.RGBA{RGB(20, 0, 80), RGB(0, 200, 150), RGB(150, 0, 100)}
	for _, n := range []int{2, 13, 64, 256} {
		p := Gradient(keys, n)
		if len(p) != n {
			t.Fatalf("n=%d: length %d", n, len(p))
		}
		if p[0] != keys[0] {
			t.Fatalf("n=%d: index 0 = %v, want first key %v", n, p[0], keys[0])
		}
		if p[n-1] != keys[len(keys)-1] {
			t.Fatalf("n=%d: index %d = %v, want last key %v", n, n-1, p[n-1], keys[len(keys)-1])
		}
	}
}

func TestGradientMidpoint(t *testing.T) {
	p := Gradient([]color.RGBA{RGB(0, 0, 0), RGB(200, 100, 50)}, 3)
	if p[1] != RGB(100, 50, 25) {
		t.Fatalf("midpoint = %v, want (100,50,25)", p[1])
	}
}

func TestSampleEndpoints(t *testing.T) {
	p := Gradient([]color.RGBA{RGB(10, 20, 30), RGB(240, 250, 255)}, 6)
	if p.Sample(0) != p[0] {
		t.Fatal("Sample(0) must return the first entry")
	}
	if p.Sample(1) != p[5] {
		t.Fatal("Sample(1) must return the last entry")
	}
	if p.Sample(-3) != p[0] || p.Sample(9) != p[5] {
		t.Fatal("out-of-range samples must clamp")
	}
}

func TestEntryScalesStateRange(t *testing.T) {
	p := Gradient([]color.RGBA{RGB(0, 0, 0), RGB(255, 255, 255)}, 256)
	if p.Entry(0, 16) != p[0] {
		t.Fatal("state 0 must map to palette index 0")
	}
	if p.Entry(15, 16) != p[255] {
		t.Fatal("max state must map to the last palette entry")
	}
	// Identity when palette length matches the state count.
	q := Gradient([]color.RGBA{RGB(0, 0, 0), RGB(255, 0, 0)}, 16)
	if q.Entry(7, 16) != q[7] {
		t.Fatal("same-length palette lookup must be the identity")
	}
}

func TestBandedRainbowRepeats(t *testing.T) {
	p := BandedRainbow(4, 256)
	if len(p) != 256 {
		t.Fatalf("length %d, want 256", len(p))
	}
	if p[0] != RGB(255, 0, 0) {
		t.Fatalf("band start = %v, want pure red", p[0])
	}
	// One full cycle spans n/bands entries.
	if p[64] != p[0] {
		t.Fatalf("entry 64 = %v, want band restart %v", p[64], p[0])
	}
}

func TestMonoBandsBrightness(t *testing.T) {
	p := MonoBands(RGB(0, 100, 255), 10, 256)
	if p[0] != RGB(0, 50, 127) {
		t.Fatalf("band origin = %v, want half brightness", p[0])
	}
	for i, c := range p {
		if c.R != 0 {
			t.Fatalf("entry %d leaked red channel: %v", i, c)
		}
	}
}

func TestLerpBounds(t *testing.T) {
	a, b := RGB(0, 0, 0), RGB(255, 255, 255)
	if Lerp(a, b, 0) != a || Lerp(a, b, 1) != b {
		t.Fatal("Lerp endpoints must be exact")
	}
	mid := Lerp(a, b, 0.5)
	if mid.R < 127 || mid.R > 128 {
		t.Fatalf("Lerp midpoint = %v", mid)
	}
}

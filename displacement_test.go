package liquidglass

import (
	"math"
	"testing"
)

// neutralAt reports whether the pixel holds the neutral fill (128, 128, 0, 255).
func neutralAt(buf *PixelBuffer, x, y int) bool {
	r, g, b, a := buf.At(x, y)
	return r == 128 && g == 128 && b == 0 && a == 255
}

// --- Background fill ---

func TestDisplacementNeutralOutsideBand(t *testing.T) {
	table := ComputeRefractionTable(80, 16, ConvexSquircle, 1.45, 128)
	const (
		w, h   = 120, 80
		radius = 30.0
		bezel  = 16.0
	)
	buf := ComputeDisplacementField(w, h, w, h, radius, bezel, table.MaxAbs(), table)

	outerSq := (radius + 1) * (radius + 1)
	innerSq := (radius - bezel) * (radius - bezel)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			lx, ly := cornerLocal(float64(x), float64(y), w, h, radius)
			d2 := lx*lx + ly*ly
			if d2 > outerSq && !neutralAt(buf, x, y) {
				t.Fatalf("pixel (%d, %d) outside the band is not neutral", x, y)
			}
			if d2 < innerSq && !neutralAt(buf, x, y) {
				t.Fatalf("pixel (%d, %d) in the flat interior is not neutral", x, y)
			}
		}
	}
}

// --- Band pixels are opaque and displaced inward ---

func TestDisplacementBandEncoding(t *testing.T) {
	table := ComputeRefractionTable(80, 16, ConvexSquircle, 1.45, 128)
	const (
		w, h   = 120, 80
		radius = 30.0
		bezel  = 16.0
	)
	buf := ComputeDisplacementField(w, h, w, h, radius, bezel, table.MaxAbs(), table)

	// Mid-left edge, one pixel into the bezel: the outward direction is -X,
	// so with a positive table value the encoded X displacement points +X
	// (back toward the pane interior) and Y stays neutral.
	r, g, b, a := buf.At(1, h/2)
	if a != 255 || b != 0 {
		t.Fatalf("band pixel (B, A) = (%d, %d), want (0, 255)", b, a)
	}
	if r <= 128 {
		t.Errorf("left-edge band pixel R = %d, want > 128 (inward displacement)", r)
	}
	if g != 128 {
		t.Errorf("left-edge band pixel G = %d, want 128 (no vertical component)", g)
	}

	// Same depth on the top edge displaces along +Y instead.
	r, g, _, _ = buf.At(w/2, 1)
	if g <= 128 {
		t.Errorf("top-edge band pixel G = %d, want > 128", g)
	}
	if r != 128 {
		t.Errorf("top-edge band pixel R = %d, want 128", r)
	}
}

// --- Antialiasing fades displacement across the outer pixel ---

func TestDisplacementAntialiasRing(t *testing.T) {
	table := ComputeRefractionTable(80, 16, ConvexCircle, 1.45, 128)
	const (
		w, h   = 100, 100
		radius = 40.0
		bezel  = 12.0
	)
	buf := ComputeDisplacementField(w, h, w, h, radius, bezel, table.MaxAbs(), table)

	// Walk the top edge band at depth 0 (distance exactly radius): on the
	// straight edge at y=0 the distance is radius, the first AA step, where
	// opacity is still 1 and the outermost table entry applies.
	if _, _, _, a := buf.At(w/2, 0); a != 255 {
		t.Errorf("alpha at the band edge = %d, want 255", a)
	}
}

// --- Degenerate inputs stay total ---

func TestDisplacementDegenerateGeometry(t *testing.T) {
	table := ComputeRefractionTable(80, 16, ConvexCircle, 1.45, 32)
	tests := []struct {
		name          string
		canvasW       int
		canvasH       int
		objW, objH    float64
		radius, bezel float64
		maxDisp       float64
	}{
		{"bezel wider than radius", 40, 40, 40, 40, 8, 20, table.MaxAbs()},
		{"zero object", 40, 40, 0, 0, 8, 4, table.MaxAbs()},
		{"zero canvas", 0, 0, 40, 40, 8, 4, table.MaxAbs()},
		{"zero max displacement", 40, 40, 40, 40, 8, 4, 0},
		{"nan max displacement", 40, 40, 40, 40, 8, 4, math.NaN()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := ComputeDisplacementField(tt.canvasW, tt.canvasH, tt.objW, tt.objH, tt.radius, tt.bezel, tt.maxDisp, table)
			if buf.Width != max(tt.canvasW, 0) || buf.Height != max(tt.canvasH, 0) {
				t.Fatalf("buffer size = %dx%d, want %dx%d", buf.Width, buf.Height, tt.canvasW, tt.canvasH)
			}
			for i := 3; i < len(buf.Pix); i += 4 {
				if buf.Pix[i] != 255 {
					t.Fatal("displacement alpha must be 255 everywhere")
				}
			}
		})
	}
}

// --- End-to-end scenario ---

func TestDisplacementEndToEnd(t *testing.T) {
	table := ComputeRefractionTable(80, 16, ConvexSquircle, 1.45, 128)
	buf := ComputeDisplacementField(90, 60, 90, 60, 30, 16, table.MaxAbs(), table)
	if buf.Width != 90 || buf.Height != 60 {
		t.Fatalf("buffer size = %dx%d, want 90x60", buf.Width, buf.Height)
	}
	if !neutralAt(buf, 45, 30) {
		r, g, b, a := buf.At(45, 30)
		t.Errorf("center pixel = (%d, %d, %d, %d), want neutral (128, 128, 0, 255)", r, g, b, a)
	}
}

// --- Object centered on a larger canvas ---

func TestDisplacementCenteredObject(t *testing.T) {
	table := ComputeRefractionTable(80, 12, ConvexCircle, 1.45, 128)
	buf := ComputeDisplacementField(200, 200, 100, 60, 20, 12, table.MaxAbs(), table)
	// Corners of the canvas sit well outside the centered 100x60 object.
	for _, p := range [][2]int{{0, 0}, {199, 0}, {0, 199}, {199, 199}, {10, 100}} {
		if !neutralAt(buf, p[0], p[1]) {
			t.Errorf("canvas pixel (%d, %d) outside the object is not neutral", p[0], p[1])
		}
	}
	// The object's left edge band starts at x = (200-100)/2 = 50.
	if r, _, _, _ := buf.At(51, 100); r <= 128 {
		t.Errorf("band pixel at the centered object edge R = %d, want > 128", r)
	}
}

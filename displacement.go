package liquidglass

import "math"

// Neutral displacement encoding: R/G at the 128 midpoint mean zero offset on
// both axes. Every pixel outside the bezel band keeps this fill.
const (
	displacementNeutral = 128
	displacementRange   = 127
)

// cornerLocal maps a point inside a w×h rounded rectangle to coordinates
// relative to the nearest corner circle center. Points past the straight
// edges of the corner region get a zero component on that axis, so only the
// bezel band carries nonzero locals; the squared length of the result is the
// squared radial distance used for band classification.
func cornerLocal(x, y, w, h, radius float64) (lx, ly float64) {
	if x < radius {
		lx = x - radius
	} else if x > w-radius {
		lx = x - (w - radius)
	}
	if y < radius {
		ly = y - radius
	} else if y > h-radius {
		ly = y - (h - radius)
	}
	return lx, ly
}

// ComputeDisplacementField rasterizes the refraction table into a canvasW×canvasH
// RGBA map. The object (the glass pane) is centered on the canvas; its bezel
// band — radial distance within [radius−bezelWidth, radius+1] of the rounded
// rect edge — is painted with the table value for that depth, directed toward
// the pane center and normalized by maxDisplacement:
//
//	R = 128 + dx·127·opacity   G = 128 + dy·127·opacity   B = 0   A = 255
//
// where opacity fades linearly over the final pixel beyond radius. Pixels
// outside the band keep the neutral fill (128, 128, 0, 255), i.e. zero
// displacement over the flat interior and exterior. A zero or NaN
// maxDisplacement is treated as 1 so the encode never divides into NaN.
// Degenerate geometry (bezel wider than radius, zero-sized objects) clamps
// rather than erroring, per the contract that every numeric input is total.
func ComputeDisplacementField(canvasW, canvasH int, objW, objH, radius, bezelWidth, maxDisplacement float64, table RefractionTable) *PixelBuffer {
	buf := NewPixelBuffer(canvasW, canvasH)
	buf.fill(displacementNeutral, displacementNeutral, 0, 255)

	m := maxDisplacement
	if m == 0 || math.IsNaN(m) {
		m = 1
	}
	inner := radius - bezelWidth
	if inner < 0 {
		inner = 0
	}
	innerSq := inner * inner
	outerSq := (radius + 1) * (radius + 1)
	radiusSq := radius * radius

	ox := (float64(canvasW) - objW) / 2
	oy := (float64(canvasH) - objH) / 2
	x0 := max(int(math.Floor(ox)), 0)
	y0 := max(int(math.Floor(oy)), 0)
	x1 := min(int(math.Ceil(ox+objW)), buf.Width)
	y1 := min(int(math.Ceil(oy+objH)), buf.Height)

	for py := y0; py < y1; py++ {
		y := float64(py) - oy
		for px := x0; px < x1; px++ {
			x := float64(px) - ox
			lx, ly := cornerLocal(x, y, objW, objH, radius)
			d2 := lx*lx + ly*ly
			if d2 < innerSq || d2 > outerSq {
				continue
			}
			dist := math.Sqrt(d2)
			opacity := 1.0
			if d2 >= radiusSq {
				opacity = clamp(radius+1-dist, 0, 1)
			}
			ratio := clamp((radius-dist)/bezelWidth, 0, 1)
			v := table.At(ratio)

			// Unit direction from the bezel center out to the pixel; the
			// displacement points back inward. dist can only be zero when
			// the band degenerates onto the corner center itself, where the
			// direction is undefined and the offset stays zero.
			var dx, dy float64
			if dist > 0 {
				dx = -(lx / dist) * v / m
				dy = -(ly / dist) * v / m
			}
			buf.set(px, py,
				clampByte(displacementNeutral+dx*displacementRange*opacity),
				clampByte(displacementNeutral+dy*displacementRange*opacity),
				0, 255)
		}
	}
	return buf
}

package liquidglass

import "math"

// DefaultLightAngle is the light direction used by Config when none is set:
// 60° below the horizontal axis, lighting the top-left and bottom-right arcs.
const DefaultLightAngle = math.Pi / 3

// specularBandWidth is the thickness in pixels of the highlight band hugging
// the outer bezel edge.
const specularBandWidth = 1.5

// ComputeSpecularField paints the thin light reflection along the outer edge
// of a w×h rounded rectangle into an RGBA map sized ceil(objW)×ceil(objH).
//
// Only pixels within [radius−1.5, radius+1] of radial distance are lit. The
// gray level is 255·|n·L|·falloff, where n is the edge normal with its Y
// flipped into light space, L the unit light direction for lightAngle, and
// falloff the quarter-circle ease √(1−(1−edgeRatio)²) concentrating the
// highlight in the outermost pixels. Alpha is the gray level attenuated again
// by |n·L|·falloff and by the edge antialias — the squared-coefficient
// compression is intentional, it is what keeps the highlight sharp.
// Everything outside the band stays fully transparent.
//
// bezelWidth does not shape the highlight (the band width is fixed); it is
// accepted so the specular and displacement generators share a signature over
// the same geometry.
func ComputeSpecularField(objW, objH, radius, bezelWidth, lightAngle float64) *PixelBuffer {
	w := int(math.Ceil(objW))
	h := int(math.Ceil(objH))
	buf := NewPixelBuffer(w, h)

	lightX := math.Cos(lightAngle)
	lightY := math.Sin(lightAngle)

	inner := radius - specularBandWidth
	if inner < 0 {
		inner = 0
	}
	innerSq := inner * inner
	outerSq := (radius + 1) * (radius + 1)
	radiusSq := radius * radius

	for py := 0; py < h; py++ {
		y := float64(py)
		for px := 0; px < w; px++ {
			x := float64(px)
			lx, ly := cornerLocal(x, y, objW, objH, radius)
			d2 := lx*lx + ly*ly
			if d2 < innerSq || d2 > outerSq {
				continue
			}
			dist := math.Sqrt(d2)
			if dist == 0 {
				continue // degenerate band on the corner center, no normal
			}
			opacity := 1.0
			if d2 >= radiusSq {
				opacity = clamp(radius+1-dist, 0, 1)
			}

			// Edge normal dotted with the light, Y negated to convert from
			// screen coordinates (Y down) to light space (Y up). The absolute
			// value makes the highlight symmetric on opposite arcs.
			dot := math.Abs((lx/dist)*lightX - (ly/dist)*lightY)

			edgeRatio := clamp((radius-dist)/specularBandWidth, 0, 1)
			falloff := math.Sqrt(1 - (1-edgeRatio)*(1-edgeRatio))

			gray := 255 * dot * falloff
			c := clampByte(gray)
			a := clampByte(gray * dot * falloff * opacity)
			buf.set(px, py, c, c, c, a)
		}
	}
	return buf
}

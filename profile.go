package liquidglass

import (
	"math"
	"sort"
)

// SurfaceProfile maps a normalized position across the bezel to a normalized
// surface height. Position 0 is the outer edge of the bezel, 1 the inner edge
// where the flat top of the glass begins; heights are in [0, 1]. Profiles are
// pure and stateless — the refraction sampler differentiates them numerically,
// so any continuous function works.
type SurfaceProfile func(x float64) float64

// Built-in profile names, usable with ProfileByName and Config.Profile.
const (
	ProfileConvexCircle   = "convex_circle"
	ProfileConvexSquircle = "convex_squircle"
	ProfileConcave        = "concave"
	ProfileLip            = "lip"
)

// ConvexCircle is a quarter-circle bulge: steep at the outer edge, flattening
// toward the top. The classic rounded glass edge.
func ConvexCircle(x float64) float64 {
	x = clamp(x, 0, 1)
	return math.Sqrt(1 - (1-x)*(1-x))
}

// ConvexSquircle is a superelliptical bulge (exponent 4). Flatter top and a
// tighter corner than ConvexCircle, giving a thinner refraction band.
func ConvexSquircle(x float64) float64 {
	x = clamp(x, 0, 1)
	ix := 1 - x
	return math.Pow(1-ix*ix*ix*ix, 0.25)
}

// Concave is an inward-curved bezel: shallow at the outer edge, steep at the
// inner edge. Refraction pulls toward the center instead of away.
func Concave(x float64) float64 {
	x = clamp(x, 0, 1)
	return 1 - math.Sqrt(1-x*x)
}

// Lip blends ConvexCircle into Concave across the bezel using a smootherstep
// weight, producing a raised rim with a dished center transition.
func Lip(x float64) float64 {
	x = clamp(x, 0, 1)
	w := smootherstep(x)
	return ConvexCircle(x)*(1-w) + Concave(x)*w
}

// smootherstep is Perlin's 6t⁵−15t⁴+10t³ ease with zero first and second
// derivatives at both ends. Input must already be in [0, 1].
func smootherstep(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

var profiles = map[string]SurfaceProfile{
	ProfileConvexCircle:   ConvexCircle,
	ProfileConvexSquircle: ConvexSquircle,
	ProfileConcave:        Concave,
	ProfileLip:            Lip,
}

// ProfileByName returns the built-in profile registered under name.
// The second return value is false for unknown names.
func ProfileByName(name string) (SurfaceProfile, bool) {
	p, ok := profiles[name]
	return p, ok
}

// ProfileNames returns the built-in profile names in sorted order.
func ProfileNames() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// clamp limits v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampByte converts v to a byte, clamping to [0, 255]. NaN maps to 0.
func clampByte(v float64) byte {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}

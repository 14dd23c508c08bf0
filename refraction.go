package liquidglass

import "math"

// DefaultSamples is the refraction table resolution used when a caller passes
// a non-positive sample count.
const DefaultSamples = 128

// RefractionTable holds signed horizontal ray displacements, indexed by
// normalized bezel depth: entry i corresponds to depth ratio i/len. Entries
// are in the same units as glassThickness/bezelWidth (pixels). Tables are
// immutable snapshots — parameter changes produce a fresh table.
type RefractionTable []float64

// ComputeRefractionTable traces one vertical ray per sample through the bezel
// cross-section and records how far it lands horizontally after refracting at
// the surface and traveling down to the backing plane.
//
// For each sample position x across the bezel the surface height and slope
// (forward difference, backward at the right boundary) give the outward
// normal; vector Snell's law with eta = 1/refractiveIndex bends the ray.
// Total internal reflection yields a zero entry. A refracted ray grazing
// horizontal makes the remaining-path division blow up; the value is kept
// as IEEE-754 produces it, since the displacement field normalizes by the
// table maximum and a clamped sample would skew every other entry.
func ComputeRefractionTable(glassThickness, bezelWidth float64, profile SurfaceProfile, refractiveIndex float64, samples int) RefractionTable {
	if samples <= 0 {
		samples = DefaultSamples
	}
	table := make(RefractionTable, samples)
	eta := 1 / refractiveIndex
	const step = 1e-4
	for i := range table {
		x := float64(i) / float64(samples)
		y := profile(x)
		var slope float64
		if x+step <= 1 {
			slope = (profile(x+step) - y) / step
		} else {
			slope = (y - profile(x-step)) / step
		}

		// Outward surface normal for a height field y(x).
		inv := 1 / math.Hypot(slope, 1)
		nx := -slope * inv
		ny := -inv

		// Snell's law in vector form for an incident ray traveling straight
		// down, t = eta·i − (eta·cosθ + √k)·n with i = (0, 1).
		k := 1 - eta*eta*(1-ny*ny)
		if k < 0 {
			continue // total internal reflection, no refracted ray
		}
		f := eta*ny + math.Sqrt(k)
		rx := -f * nx
		ry := eta - f*ny

		// The ray still has to descend through the rest of the bezel height
		// plus the glass slab before it reaches the backing content.
		remaining := y*bezelWidth + glassThickness
		table[i] = rx * (remaining / ry)
	}
	return table
}

// At looks up the entry for a normalized bezel depth ratio. The index is the
// floor of ratio·len, clamped to the table bounds; an empty table reads 0.
func (t RefractionTable) At(ratio float64) float64 {
	if len(t) == 0 {
		return 0
	}
	idx := int(ratio * float64(len(t)))
	if idx < 0 {
		idx = 0
	} else if idx >= len(t) {
		idx = len(t) - 1
	}
	return t[idx]
}

// MaxAbs returns the largest absolute entry. Used as the normalizing divisor
// when encoding a displacement field.
func (t RefractionTable) MaxAbs() float64 {
	m := 0.0
	for _, v := range t {
		if a := math.Abs(v); a > m {
			m = a
		}
	}
	return m
}

package liquidglass

import "math"

// Interaction targets. Pressing a pane squeezes it slightly, deepens its
// shadow, and boosts the refraction; releasing springs everything back.
const (
	pressedScale  = 0.96
	pressedBoost  = 1.35
	pressedShadow = 1.0
	restScale     = 1.0
	restBoost     = 1.0
	restShadow    = 0.35
	pointerFollow = 0.08 // fraction of the pointer delta the pane drifts by
)

// Config describes one glass pane. The zero value is usable: New fills in
// every unset field with a sensible default, so callers only specify what
// they care about.
type Config struct {
	// Width and Height are the pane size in pixels.
	Width, Height float64
	// CornerRadius of the rounded rectangle. Assumed ≥ BezelWidth; smaller
	// values produce a degenerate but well-defined band.
	CornerRadius float64
	// BezelWidth is how far the curved edge region extends inward.
	BezelWidth float64
	// GlassThickness is the flat slab height under the bezel, in pixels of
	// optical path. Thicker glass refracts farther.
	GlassThickness float64
	// RefractiveIndex of the glass, typically 1.4–1.6.
	RefractiveIndex float64
	// LightAngle is the specular light direction in radians.
	LightAngle float64
	// Profile names the bezel cross-section; see ProfileNames.
	Profile string
	// Samples is the refraction table resolution.
	Samples int
}

func (c Config) withDefaults() Config {
	if c.Width <= 0 {
		c.Width = 200
	}
	if c.Height <= 0 {
		c.Height = 200
	}
	if c.CornerRadius <= 0 {
		c.CornerRadius = 24
	}
	if c.BezelWidth <= 0 {
		c.BezelWidth = 16
	}
	if c.GlassThickness <= 0 {
		c.GlassThickness = 80
	}
	if c.RefractiveIndex <= 0 {
		c.RefractiveIndex = 1.45
	}
	if c.LightAngle == 0 {
		c.LightAngle = DefaultLightAngle
	}
	if c.Profile == "" {
		c.Profile = ProfileConvexSquircle
	}
	if c.Samples <= 0 {
		c.Samples = DefaultSamples
	}
	return c
}

// Glass is one configured pane: the optical parameters, the refraction table
// and field maps derived from them, and the spring set animating it. Create
// as many instances as there are panes — nothing is shared between them.
//
// Derived data is cached and rebuilt lazily: setters only mark the instance
// dirty, and the next accessor call recomputes the table and both maps from
// scratch as fresh immutable snapshots.
type Glass struct {
	cfg     Config
	profile SurfaceProfile

	table        RefractionTable
	displacement *PixelBuffer
	specular     *PixelBuffer
	maxDisp      float64
	dirty        bool
	gen          uint64

	// The animated scalars. Scale and Boost rest at 1, Shadow at its resting
	// opacity, the offsets at 0. Each is owned by this pane alone.
	Scale   *Spring
	Shadow  *Spring
	OffsetX *Spring
	OffsetY *Spring
	Boost   *Spring
}

// New creates a pane from cfg (zero fields defaulted) with its springs at
// rest and its derived maps computed on first access.
func New(cfg Config) *Glass {
	cfg = cfg.withDefaults()
	profile, ok := ProfileByName(cfg.Profile)
	if !ok {
		cfg.Profile = ProfileConvexSquircle
		profile = ConvexSquircle
	}
	return &Glass{
		cfg:     cfg,
		profile: profile,
		dirty:   true,
		Scale:   NewSpring(restScale),
		Shadow:  NewSpring(restShadow),
		OffsetX: NewSpring(0),
		OffsetY: NewSpring(0),
		Boost:   NewSpring(restBoost),
	}
}

// Config returns the pane's current configuration.
func (g *Glass) Config() Config { return g.cfg }

// Generation increments every time the derived maps are rebuilt. Consumers
// that cache GPU uploads compare it to decide whether to re-upload.
func (g *Glass) Generation() uint64 {
	g.ensure()
	return g.gen
}

// Resize sets the pane size and invalidates the derived maps.
func (g *Glass) Resize(w, h float64) {
	if w == g.cfg.Width && h == g.cfg.Height {
		return
	}
	g.cfg.Width, g.cfg.Height = w, h
	g.dirty = true
}

// SetCornerRadius sets the rounded-corner radius.
func (g *Glass) SetCornerRadius(r float64) {
	if r == g.cfg.CornerRadius {
		return
	}
	g.cfg.CornerRadius = r
	g.dirty = true
}

// SetBezelWidth sets the curved edge width.
func (g *Glass) SetBezelWidth(b float64) {
	if b == g.cfg.BezelWidth {
		return
	}
	g.cfg.BezelWidth = b
	g.dirty = true
}

// SetGlassThickness sets the slab height under the bezel.
func (g *Glass) SetGlassThickness(t float64) {
	if t == g.cfg.GlassThickness {
		return
	}
	g.cfg.GlassThickness = t
	g.dirty = true
}

// SetRefractiveIndex sets the glass index of refraction.
func (g *Glass) SetRefractiveIndex(n float64) {
	if n == g.cfg.RefractiveIndex {
		return
	}
	g.cfg.RefractiveIndex = n
	g.dirty = true
}

// SetLightAngle sets the specular light direction in radians.
func (g *Glass) SetLightAngle(a float64) {
	if a == g.cfg.LightAngle {
		return
	}
	g.cfg.LightAngle = a
	g.dirty = true
}

// SetProfile switches the bezel cross-section. Unknown names are ignored.
func (g *Glass) SetProfile(name string) {
	if name == g.cfg.Profile {
		return
	}
	profile, ok := ProfileByName(name)
	if !ok {
		return
	}
	g.cfg.Profile = name
	g.profile = profile
	g.dirty = true
}

func (g *Glass) ensure() {
	if !g.dirty {
		return
	}
	cw := int(math.Ceil(g.cfg.Width))
	ch := int(math.Ceil(g.cfg.Height))
	g.table = ComputeRefractionTable(g.cfg.GlassThickness, g.cfg.BezelWidth, g.profile, g.cfg.RefractiveIndex, g.cfg.Samples)
	g.maxDisp = g.table.MaxAbs()
	if g.maxDisp == 0 || math.IsNaN(g.maxDisp) {
		g.maxDisp = 1
	}
	g.displacement = ComputeDisplacementField(cw, ch, g.cfg.Width, g.cfg.Height, g.cfg.CornerRadius, g.cfg.BezelWidth, g.maxDisp, g.table)
	g.specular = ComputeSpecularField(g.cfg.Width, g.cfg.Height, g.cfg.CornerRadius, g.cfg.BezelWidth, g.cfg.LightAngle)
	g.dirty = false
	g.gen++
}

// Table returns the pane's refraction lookup table, recomputing if stale.
func (g *Glass) Table() RefractionTable {
	g.ensure()
	return g.table
}

// DisplacementMap returns the pane's displacement field, recomputing if stale.
func (g *Glass) DisplacementMap() *PixelBuffer {
	g.ensure()
	return g.displacement
}

// SpecularMap returns the pane's specular field, recomputing if stale.
func (g *Glass) SpecularMap() *PixelBuffer {
	g.ensure()
	return g.specular
}

// MaxDisplacement returns the normalizer the displacement map was encoded
// with, in pixels. Decoding multiplies the map's signed channels back by this.
func (g *Glass) MaxDisplacement() float64 {
	g.ensure()
	return g.maxDisp
}

// Press springs the pane into its pressed pose: slightly shrunk, deeper
// shadow, boosted refraction.
func (g *Glass) Press() {
	g.Scale.SetTarget(pressedScale)
	g.Shadow.SetTarget(pressedShadow)
	g.Boost.SetTarget(pressedBoost)
}

// Release springs the pane back to its resting pose.
func (g *Glass) Release() {
	g.Scale.SetTarget(restScale)
	g.Shadow.SetTarget(restShadow)
	g.Boost.SetTarget(restBoost)
}

// PointTo aims the drift springs at a fraction of the pointer's offset from
// the pane center, so the pane leans gently toward the cursor.
func (g *Glass) PointTo(dx, dy float64) {
	g.OffsetX.SetTarget(dx * pointerFollow)
	g.OffsetY.SetTarget(dy * pointerFollow)
}

// Reset snaps every spring to its resting value, skipping the animation.
func (g *Glass) Reset() {
	g.Scale.SnapTo(restScale)
	g.Shadow.SnapTo(restShadow)
	g.OffsetX.SnapTo(0)
	g.OffsetY.SnapTo(0)
	g.Boost.SnapTo(restBoost)
}

// springs returns the spring set in its fixed update order.
func (g *Glass) springs() [5]*Spring {
	return [5]*Spring{g.Scale, g.Shadow, g.OffsetX, g.OffsetY, g.Boost}
}

// Update advances all springs by dt seconds (clamped to MaxSpringDT) and
// reports whether any is still moving. A frame driver keeps calling Update
// while this returns true, then idles until the next target change.
func (g *Glass) Update(dt float64) bool {
	if dt > MaxSpringDT {
		dt = MaxSpringDT
	}
	active := false
	for _, s := range g.springs() {
		s.Update(dt)
		if !s.Settled() {
			active = true
		}
	}
	return active
}

// Settled reports whether every spring is at rest.
func (g *Glass) Settled() bool {
	for _, s := range g.springs() {
		if !s.Settled() {
			return false
		}
	}
	return true
}

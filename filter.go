package liquidglass

import "github.com/hajimehoshi/ebiten/v2"

// Filter is the interface for effects applied to a rendered backdrop region.
type Filter interface {
	// Apply renders src into dst with the filter effect.
	Apply(src, dst *ebiten.Image)
	// Padding returns the extra pixels needed around the source to
	// accommodate the effect. Zero means no padding.
	Padding() int
}

// glassShaderSrc decodes the displacement map, samples the backdrop at the
// offset position, and adds the specular highlight on top. Uses
// //kage:unit pixels as required by Ebitengine. imageSrc0 is the backdrop,
// imageSrc1 the displacement map, imageSrc2 the specular map; all three must
// be the same size (a DrawRectShader requirement — Apply keeps the maps sized
// to the source region).
const glassShaderSrc = `//kage:unit pixels
package main

var MaxDisplacement float
var Boost float
var SpecularStrength float

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	// src is in imageSrc0's coordinate space; rebase for the other sources.
	p := src - imageSrc0Origin()
	d := imageSrc1At(p + imageSrc1Origin())
	// R/G hold the offset remapped about a 128 midpoint and pre-scaled by
	// the bezel coverage; the map's alpha is constant 255 so premultiplied
	// sampling leaves the channels untouched.
	off := (d.rg - vec2(128.0/255.0)) * (255.0/127.0) * MaxDisplacement * Boost
	c := imageSrc0At(src + off)
	s := imageSrc2At(p + imageSrc2Origin())
	return c + s*SpecularStrength
}
`

// Lazy shader compilation (no sync.Once — liquidglass is single-threaded).
var glassShader *ebiten.Shader

func ensureGlassShader() *ebiten.Shader {
	if glassShader == nil {
		s, err := ebiten.NewShader([]byte(glassShaderSrc))
		if err != nil {
			panic("liquidglass: failed to compile glass shader: " + err.Error())
		}
		glassShader = s
	}
	return glassShader
}

// GlassFilter refracts a backdrop region through a Glass pane. Apply resizes
// the pane to the source bounds, uploads the pane's field maps (only when the
// pane regenerated since the last upload), and runs the glass shader.
type GlassFilter struct {
	Glass *Glass
	// SpecularStrength scales the highlight contribution. 1 by default.
	SpecularStrength float64

	dispTex     *ebiten.Image
	specTex     *ebiten.Image
	texW, texH  int
	uploadedGen uint64
	uniforms    map[string]any
	shaderOp    ebiten.DrawRectShaderOptions
}

// NewGlassFilter creates a filter over the given pane. GPU resources are
// allocated lazily on first Apply.
func NewGlassFilter(g *Glass) *GlassFilter {
	return &GlassFilter{
		Glass:            g,
		SpecularStrength: 1,
		uniforms:         make(map[string]any, 3),
	}
}

// ensureTextures (re)allocates the map textures to w×h and forces a
// re-upload when the size changed.
func (f *GlassFilter) ensureTextures(w, h int) {
	if f.dispTex != nil && f.texW == w && f.texH == h {
		return
	}
	if f.dispTex != nil {
		f.dispTex.Deallocate()
		f.specTex.Deallocate()
	}
	f.dispTex = ebiten.NewImage(w, h)
	f.specTex = ebiten.NewImage(w, h)
	f.texW, f.texH = w, h
	f.uploadedGen = 0
}

// Apply refracts src into dst through the pane's displacement map and lays
// the specular highlight on top.
func (f *GlassFilter) Apply(src, dst *ebiten.Image) {
	shader := ensureGlassShader()
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	f.Glass.Resize(float64(w), float64(h))
	disp := f.Glass.DisplacementMap()
	spec := f.Glass.SpecularMap()
	gen := f.Glass.Generation()

	f.ensureTextures(disp.Width, disp.Height)
	if f.uploadedGen != gen {
		f.dispTex.WritePixels(disp.Pix)
		f.specTex.WritePixels(spec.Pix)
		f.uploadedGen = gen
	}

	// Scalar float32 boxing is unavoidable with Ebitengine's uniform API.
	f.uniforms["MaxDisplacement"] = float32(f.Glass.MaxDisplacement())
	f.uniforms["Boost"] = float32(f.Glass.Boost.Value)
	f.uniforms["SpecularStrength"] = float32(f.SpecularStrength)
	f.shaderOp.Images[0] = src
	f.shaderOp.Images[1] = f.dispTex
	f.shaderOp.Images[2] = f.specTex
	f.shaderOp.Uniforms = f.uniforms
	dst.DrawRectShader(w, h, shader, &f.shaderOp)
}

// Padding returns 0; refraction only shifts samples within the source region.
func (f *GlassFilter) Padding() int { return 0 }

// FilterChainPadding returns the cumulative padding required by a slice of
// filters. Padding is cumulative: an offscreen buffer feeding a chain is
// sized to accommodate the sum.
func FilterChainPadding(filters []Filter) int {
	pad := 0
	for _, f := range filters {
		pad += f.Padding()
	}
	return pad
}

// ApplyChain runs filters in order from src into dst, ping-ponging through a
// temporary image for chains longer than one. An empty chain copies src.
func ApplyChain(filters []Filter, src, dst *ebiten.Image) {
	switch len(filters) {
	case 0:
		dst.DrawImage(src, nil)
	case 1:
		filters[0].Apply(src, dst)
	default:
		bounds := src.Bounds()
		scratch := ebiten.NewImage(bounds.Dx(), bounds.Dy())
		defer scratch.Deallocate()
		current := src
		for i, f := range filters {
			// Alternate targets so the final pass lands in dst.
			target := scratch
			if (len(filters)-i)%2 == 1 {
				target = dst
			}
			target.Clear()
			f.Apply(current, target)
			current = target
		}
	}
}

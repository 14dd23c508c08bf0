// Package liquidglass renders a "liquid glass" effect for [Ebitengine]:
// a translucent bezeled pane that refracts the content beneath it, catches a
// specular highlight along its edge, and reacts to interaction with
// spring-damped motion.
//
// # How it works
//
// A [SurfaceProfile] describes the bezel cross-section as a height curve.
// [ComputeRefractionTable] traces rays through that curve with Snell's law to
// build a 1D table of lateral displacements. [ComputeDisplacementField]
// rasterizes the table around a rounded rectangle into a two-channel offset
// map, and [ComputeSpecularField] paints the edge highlight. All of this is
// pure CPU math over plain pixel buffers; a Kage shader ([GlassFilter])
// consumes the maps to shift and light the backdrop on the GPU.
//
// # Quick start
//
// Configure a pane and apply its filter to the backdrop region it covers:
//
//	pane := liquidglass.New(liquidglass.Config{
//		Width: 240, Height: 160, CornerRadius: 30,
//	})
//	filter := liquidglass.NewGlassFilter(pane)
//
//	// each frame:
//	pane.Update(dt)                   // advance the interaction springs
//	filter.Apply(backdropRegion, dst) // refract the backdrop into dst
//
// Interaction is target-based: call [Glass.Press], [Glass.Release], and
// [Glass.PointTo] from your input handling and the pane's springs do the
// rest. [Glass.Update] reports whether anything is still moving, so a frame
// driver can stop updating once every spring has settled. Duration-based
// parameter morphs use [ParamTransition] (via [gween]).
//
// The package is single-threaded by design: fields are recomputed
// synchronously as immutable snapshots, and nothing locks.
//
// See the runnable programs under examples/ for complete setups.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package liquidglass

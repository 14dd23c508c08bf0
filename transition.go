package liquidglass

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ParamTransition animates up to 2 optical parameters of a Glass over a fixed
// duration. Springs handle the interaction scalars; transitions handle the
// duration-based morphs (growing a pane, sweeping the refractive index).
// Create one via the convenience constructors and call Update(dt) each frame.
//
// Writes go through the pane's dirty-marking setters, so the refraction table
// and field maps regenerate as the parameter moves. There is no global
// animation manager — users call Update themselves.
type ParamTransition struct {
	tweens [2]*gween.Tween
	count  int
	apply  [2]func(float64)
	Done   bool
}

// Update advances all tweens by dt seconds and writes the values into the
// pane. Done is set once every tween has finished.
func (t *ParamTransition) Update(dt float32) {
	if t.Done {
		return
	}
	allDone := true
	for i := 0; i < t.count; i++ {
		v, finished := t.tweens[i].Update(dt)
		t.apply[i](float64(v))
		if !finished {
			allDone = false
		}
	}
	t.Done = allDone
}

// TransitionBezelWidth animates the pane's bezel width to the target value
// over the specified duration using the easing function.
func TransitionBezelWidth(g *Glass, to float64, duration float32, fn ease.TweenFunc) *ParamTransition {
	t := &ParamTransition{count: 1}
	t.tweens[0] = gween.New(float32(g.Config().BezelWidth), float32(to), duration, fn)
	t.apply[0] = g.SetBezelWidth
	return t
}

// TransitionThickness animates the pane's glass thickness to the target value
// over the specified duration using the easing function.
func TransitionThickness(g *Glass, to float64, duration float32, fn ease.TweenFunc) *ParamTransition {
	t := &ParamTransition{count: 1}
	t.tweens[0] = gween.New(float32(g.Config().GlassThickness), float32(to), duration, fn)
	t.apply[0] = g.SetGlassThickness
	return t
}

// TransitionRefractiveIndex animates the pane's refractive index to the
// target value over the specified duration using the easing function.
func TransitionRefractiveIndex(g *Glass, to float64, duration float32, fn ease.TweenFunc) *ParamTransition {
	t := &ParamTransition{count: 1}
	t.tweens[0] = gween.New(float32(g.Config().RefractiveIndex), float32(to), duration, fn)
	t.apply[0] = g.SetRefractiveIndex
	return t
}

// TransitionLightAngle animates the specular light direction to the target
// angle over the specified duration using the easing function.
func TransitionLightAngle(g *Glass, to float64, duration float32, fn ease.TweenFunc) *ParamTransition {
	t := &ParamTransition{count: 1}
	t.tweens[0] = gween.New(float32(g.Config().LightAngle), float32(to), duration, fn)
	t.apply[0] = g.SetLightAngle
	return t
}

// TransitionSize animates the pane's width and height to the target size over
// the specified duration using the easing function.
func TransitionSize(g *Glass, toW, toH float64, duration float32, fn ease.TweenFunc) *ParamTransition {
	t := &ParamTransition{count: 2}
	t.tweens[0] = gween.New(float32(g.Config().Width), float32(toW), duration, fn)
	t.tweens[1] = gween.New(float32(g.Config().Height), float32(toH), duration, fn)
	t.apply[0] = func(w float64) { g.Resize(w, g.Config().Height) }
	t.apply[1] = func(h float64) { g.Resize(g.Config().Width, h) }
	return t
}

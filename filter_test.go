package liquidglass

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// GPU work (shader compilation, texture upload) happens lazily inside Apply,
// so construction and padding are testable without a graphics context.

func TestGlassFilterPadding(t *testing.T) {
	f := NewGlassFilter(New(Config{}))
	if f.Padding() != 0 {
		t.Errorf("GlassFilter Padding() = %d, want 0", f.Padding())
	}
}

func TestNewGlassFilterDefaults(t *testing.T) {
	g := New(Config{})
	f := NewGlassFilter(g)
	if f.Glass != g {
		t.Error("filter not bound to the given pane")
	}
	if f.SpecularStrength != 1 {
		t.Errorf("SpecularStrength = %v, want 1", f.SpecularStrength)
	}
}

func TestFilterChainPadding(t *testing.T) {
	pads := []Filter{padFilter(0), padFilter(3), padFilter(8)}
	if got := FilterChainPadding(pads); got != 11 {
		t.Errorf("FilterChainPadding = %d, want 11", got)
	}
	if got := FilterChainPadding(nil); got != 0 {
		t.Errorf("FilterChainPadding(nil) = %d, want 0", got)
	}
}

// padFilter is a Filter stub carrying only a padding value.
type padFilter int

func (p padFilter) Apply(src, dst *ebiten.Image) {}

func (p padFilter) Padding() int { return int(p) }

package liquidglass

import "github.com/hajimehoshi/ebiten/v2"

// PixelBuffer is a CPU-side RGBA8 image, row-major, 4 bytes per pixel.
// The field generators produce these; Image uploads one to the GPU.
// Buffers are treated as immutable once returned — regeneration always
// allocates a fresh buffer, so a consumer may hold one across recomputes.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []byte
}

// NewPixelBuffer allocates a zeroed (fully transparent) buffer. Negative
// dimensions clamp to zero.
func NewPixelBuffer(w, h int) *PixelBuffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &PixelBuffer{Width: w, Height: h, Pix: make([]byte, w*h*4)}
}

// At returns the RGBA components at (x, y). Out-of-bounds reads return zeros.
func (p *PixelBuffer) At(x, y int) (r, g, b, a byte) {
	if x < 0 || y < 0 || x >= p.Width || y >= p.Height {
		return 0, 0, 0, 0
	}
	i := (y*p.Width + x) * 4
	return p.Pix[i], p.Pix[i+1], p.Pix[i+2], p.Pix[i+3]
}

// set writes the RGBA components at (x, y). Callers guarantee bounds.
func (p *PixelBuffer) set(x, y int, r, g, b, a byte) {
	i := (y*p.Width + x) * 4
	p.Pix[i] = r
	p.Pix[i+1] = g
	p.Pix[i+2] = b
	p.Pix[i+3] = a
}

// fill writes the same RGBA value to every pixel.
func (p *PixelBuffer) fill(r, g, b, a byte) {
	for i := 0; i < len(p.Pix); i += 4 {
		p.Pix[i] = r
		p.Pix[i+1] = g
		p.Pix[i+2] = b
		p.Pix[i+3] = a
	}
}

// Image uploads the buffer into a new ebiten.Image. Zero-sized buffers
// produce a 1x1 transparent image, since Ebitengine rejects empty images.
func (p *PixelBuffer) Image() *ebiten.Image {
	if p.Width <= 0 || p.Height <= 0 {
		return ebiten.NewImage(1, 1)
	}
	img := ebiten.NewImage(p.Width, p.Height)
	img.WritePixels(p.Pix)
	return img
}

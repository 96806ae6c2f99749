package ir

import (
	"image"
	"image/color"
)

// Raster is the decoded source image handed from the decoder to the
// compositor. Pixels are stored row-major with Channels interleaved bytes
// per pixel: 1 = gray, 2 = gray+alpha, 3 = RGB, 4 = RGBA.
type Raster struct {
	Width    int
	Height   int
	Channels int
	Pix      []byte // len = Width * Height * Channels
	Format   string // decoder name, e.g. "png", "jpeg"
}

// PixelAt returns the Channels bytes of the pixel at (x, y).
func (r *Raster) PixelAt(x, y int) []byte {
	i := (y*r.Width + x) * r.Channels
	return r.Pix[i : i+r.Channels : i+r.Channels]
}

// Matte is the compositor's output: a non-premultiplied RGBA buffer, 4 bytes
// per pixel, row-major.
type Matte struct {
	Width  int
	Height int
	Pix    []byte // len = Width * Height * 4
}

// NewMatte allocates a zeroed (fully transparent black) matte.
func NewMatte(width, height int) *Matte {
	return &Matte{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*4),
	}
}

// Stride returns the number of bytes per row.
func (m *Matte) Stride() int {
	return m.Width * 4
}

// AlphaAt returns the alpha value of the pixel at (x, y).
func (m *Matte) AlphaAt(x, y int) uint8 {
	return m.Pix[(y*m.Width+x)*4+3]
}

func (m *Matte) ColorModel() color.Model {
	return color.NRGBAModel
}

func (m *Matte) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.Width, m.Height)
}

func (m *Matte) At(x, y int) color.Color {
	if !(image.Point{x, y}.In(m.Bounds())) {
		return color.NRGBA{}
	}
	i := (y*m.Width + x) * 4
	return color.NRGBA{R: m.Pix[i], G: m.Pix[i+1], B: m.Pix[i+2], A: m.Pix[i+3]}
}

// Opaque always reports false. image/png drops the alpha channel from
// opaque images, and a matte is always written as RGBA.
func (m *Matte) Opaque() bool {
	return false
}

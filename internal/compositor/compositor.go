package compositor

import (
	"github.com/enfff/wbr/internal/ir"
)

// Rec. 601 luma weights.
const (
	weightR float32 = 0.299
	weightG float32 = 0.587
	weightB float32 = 0.114
)

// Luminance returns the brightness of one source pixel.
//
// For pixels with three or more channels the Rec. 601 weighted sum of the
// first three channels is computed in float32 and truncated toward zero.
// Gray and gray+alpha pixels use the gray value directly. Any alpha channel
// is ignored.
func Luminance(px []byte, channels int) uint8 {
	if channels >= 3 {
		// Each product is rounded to float32 explicitly so no platform fuses
		// the multiply-adds.
		l := float32(weightR*float32(px[0])) +
			float32(weightG*float32(px[1])) +
			float32(weightB*float32(px[2]))
		return uint8(l)
	}
	return px[0]
}

// Composite converts src into a black matte whose alpha is 255 minus the
// source luminance: white becomes fully transparent, black fully opaque.
func Composite(src *ir.Raster) *ir.Matte {
	dst := ir.NewMatte(src.Width, src.Height)
	n := src.Width * src.Height
	c := src.Channels
	for i := 0; i < n; i++ {
		s := i * c
		d := i * 4
		// R, G and B stay 0 from the allocation.
		dst.Pix[d+3] = 255 - Luminance(src.Pix[s:s+c], c)
	}
	return dst
}

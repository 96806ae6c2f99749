package codec

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"

	// Registered input formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/enfff/wbr/internal/ir"
)

// DecodeImage decodes an image in any registered format from memory,
// returning the image and the format name.
func DecodeImage(data []byte) (image.Image, string, error) {
	if len(data) == 0 {
		return nil, "", errors.New("empty input")
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", err
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, format, fmt.Errorf("%s image has no pixels (%dx%d)", format, b.Dx(), b.Dy())
	}
	return img, format, nil
}

// Decode decodes an image from memory into a flat 8-bit raster that keeps
// the channel layout stored in the file.
func Decode(data []byte) (*ir.Raster, error) {
	img, format, err := DecodeImage(data)
	if err != nil {
		return nil, err
	}
	return Flatten(img, format, HeaderChannels(data)), nil
}

// Flatten copies img into a raster with the given channel count, as read by
// HeaderChannels. When channels is 0 the count is taken from the pixels:
// gray images yield 1 channel, opaque color images 3, transparent gray
// images 2 and everything else 4. Samples are non-premultiplied and
// narrowed to 8 bits.
func Flatten(img image.Image, format string, channels int) *ir.Raster {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	if channels > 1 {
		return pack(toNRGBA(img), w, h, channels, format)
	}

	switch src := img.(type) {
	case *image.Gray:
		r := newRaster(w, h, 1, format)
		for y := 0; y < h; y++ {
			off := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(r.Pix[y*w:(y+1)*w], src.Pix[off:off+w])
		}
		return r
	case *image.Gray16:
		r := newRaster(w, h, 1, format)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				r.Pix[y*w+x] = uint8(src.Gray16At(b.Min.X+x, b.Min.Y+y).Y >> 8)
			}
		}
		return r
	}

	nrgba := toNRGBA(img)
	if channels == 1 {
		return pack(nrgba, w, h, 1, format)
	}

	opaque, gray := true, true
	for i := 0; i < len(nrgba); i += 4 {
		if nrgba[i+3] != 0xff {
			opaque = false
		}
		if nrgba[i] != nrgba[i+1] || nrgba[i] != nrgba[i+2] {
			gray = false
		}
	}

	switch {
	case opaque:
		return pack(nrgba, w, h, 3, format)
	case gray:
		return pack(nrgba, w, h, 2, format)
	}
	return pack(nrgba, w, h, 4, format)
}

// pack narrows tightly packed NRGBA pixels to channels bytes per pixel:
// 1 keeps R, 2 keeps R and A, 3 keeps RGB, 4 keeps everything.
func pack(nrgba []byte, w, h, channels int, format string) *ir.Raster {
	if channels == 4 {
		return &ir.Raster{Width: w, Height: h, Channels: 4, Pix: nrgba, Format: format}
	}
	r := newRaster(w, h, channels, format)
	for i, j := 0, 0; i < len(nrgba); i, j = i+4, j+channels {
		switch channels {
		case 1:
			r.Pix[j] = nrgba[i]
		case 2:
			r.Pix[j] = nrgba[i]
			r.Pix[j+1] = nrgba[i+3]
		case 3:
			copy(r.Pix[j:j+3], nrgba[i:i+3])
		}
	}
	return r
}

func newRaster(w, h, channels int, format string) *ir.Raster {
	return &ir.Raster{
		Width:    w,
		Height:   h,
		Channels: channels,
		Pix:      make([]byte, w*h*channels),
		Format:   format,
	}
}

// toNRGBA returns the pixels of img as tightly packed non-premultiplied RGBA.
func toNRGBA(img image.Image) []byte {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := make([]byte, w*h*4)

	if src, ok := img.(*image.NRGBA); ok {
		for y := 0; y < h; y++ {
			off := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(out[y*w*4:(y+1)*w*4], src.Pix[off:off+w*4])
		}
		return out
	}

	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			out[i] = c.R
			out[i+1] = c.G
			out[i+2] = c.B
			out[i+3] = c.A
			i += 4
		}
	}
	return out
}

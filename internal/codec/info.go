package codec

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
)

// colorModelName returns a string for a decoder's color model.
func colorModelName(m color.Model) string {
	switch m {
	case color.GrayModel:
		return "Grayscale"
	case color.Gray16Model:
		return "Grayscale (16-bit)"
	case color.RGBAModel:
		return "RGBA"
	case color.RGBA64Model:
		return "RGBA (16-bit)"
	case color.NRGBAModel:
		return "NRGBA"
	case color.NRGBA64Model:
		return "NRGBA (16-bit)"
	case color.YCbCrModel:
		return "YCbCr"
	case color.CMYKModel:
		return "CMYK"
	case color.AlphaModel, color.Alpha16Model:
		return "Alpha"
	}
	if p, ok := m.(color.Palette); ok {
		return fmt.Sprintf("Paletted (%d colors)", len(p))
	}
	return "Unknown"
}

// ImageInfo contains header metadata about an image file.
type ImageInfo struct {
	Width      int
	Height     int
	Format     string
	ColorModel string
}

// GetInfo reads image metadata without decoding pixel data.
func GetInfo(data []byte) (*ImageInfo, error) {
	if len(data) == 0 {
		return nil, errors.New("empty input")
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return &ImageInfo{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Format:     format,
		ColorModel: colorModelName(cfg.ColorModel),
	}, nil
}

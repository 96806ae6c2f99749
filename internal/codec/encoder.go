package codec

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/enfff/wbr/internal/ir"
)

// ParseCompression converts a level name to a PNG compression level.
func ParseCompression(s string) (png.CompressionLevel, error) {
	switch s {
	case "", "default":
		return png.DefaultCompression, nil
	case "none":
		return png.NoCompression, nil
	case "speed":
		return png.BestSpeed, nil
	case "best":
		return png.BestCompression, nil
	default:
		return 0, fmt.Errorf("unknown compression level %q (use default, none, speed, best)", s)
	}
}

// EncodePNG encodes m as an 8-bit RGBA PNG. The alpha channel is always
// written, even if every pixel is opaque.
func EncodePNG(m *ir.Matte, level png.CompressionLevel) ([]byte, error) {
	expected := m.Width * m.Height * 4
	if len(m.Pix) != expected {
		return nil, fmt.Errorf("expected %d RGBA bytes for %dx%d, got %d", expected, m.Width, m.Height, len(m.Pix))
	}

	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: level}
	if err := enc.Encode(&buf, m); err != nil {
		return nil, fmt.Errorf("png encode: %w", err)
	}
	return buf.Bytes(), nil
}

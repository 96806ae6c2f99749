package pipeline

import (
	"errors"
	"fmt"
	"image/png"

	"github.com/enfff/wbr/internal/codec"
	"github.com/enfff/wbr/internal/compositor"
	"github.com/enfff/wbr/internal/ir"
)

var (
	// ErrDecode wraps failures to read the input image.
	ErrDecode = errors.New("decode failed")
	// ErrEncode wraps failures to produce the output PNG.
	ErrEncode = errors.New("encode failed")
)

// Options controls the background removal pipeline.
type Options struct {
	Compression png.CompressionLevel // zlib level of the output PNG

	// Loaded, if set, is called once the input is decoded and before the
	// alpha pass runs.
	Loaded func(width, height, channels int)
}

// Result holds the output of a pipeline run.
type Result struct {
	Data     []byte // encoded RGBA PNG
	Matte    *ir.Matte
	Width    int
	Height   int
	Channels int    // channel count of the decoded source
	Format   string // source format name
}

// Run executes the full pipeline: decode → luminance-to-alpha → PNG encode.
func Run(data []byte, opts Options) (*Result, error) {
	// 1. Decode
	src, err := codec.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if opts.Loaded != nil {
		opts.Loaded(src.Width, src.Height, src.Channels)
	}

	// 2. Alpha pass
	matte := compositor.Composite(src)

	// 3. Encode RGBA PNG
	encoded, err := codec.EncodePNG(matte, opts.Compression)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}

	return &Result{
		Data:     encoded,
		Matte:    matte,
		Width:    src.Width,
		Height:   src.Height,
		Channels: src.Channels,
		Format:   src.Format,
	}, nil
}

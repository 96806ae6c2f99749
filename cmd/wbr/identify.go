package main

import (
	"fmt"
	"os"

	"github.com/enfff/wbr/internal/codec"
	"github.com/enfff/wbr/internal/compositor"
	"github.com/enfff/wbr/internal/inspect"
	"github.com/enfff/wbr/internal/paths"
	"github.com/spf13/cobra"
)

func addIdentifyFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("identify", false, "Inspect the image and preview its alpha coverage instead of writing output")
	cmd.Flags().Int("colors", 4, "Number of palette colors to report with --identify")
	cmd.Flags().String("palette", "dominantcolor", "Palette method for --identify (dominantcolor, kmeans)")
}

// runIdentify prints image metadata, the alpha coverage the matte would have
// and a source palette. Nothing is written to disk.
func runIdentify(cmd *cobra.Command, path string) error {
	colors, _ := cmd.Flags().GetInt("colors")
	methodStr, _ := cmd.Flags().GetString("palette")

	method, err := inspect.ParseMethod(methodStr)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	info, err := codec.GetInfo(data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	img, format, err := codec.DecodeImage(data)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	src := codec.Flatten(img, format, codec.HeaderChannels(data))
	cov := inspect.Measure(compositor.Composite(src))

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "File:        %s\n", path)
	fmt.Fprintf(out, "Format:      %s\n", info.Format)
	fmt.Fprintf(out, "Dimensions:  %d x %d\n", info.Width, info.Height)
	fmt.Fprintf(out, "Color model: %s\n", info.ColorModel)
	fmt.Fprintf(out, "Channels:    %d\n", src.Channels)
	fmt.Fprintf(out, "File size:   %d bytes (%.1f KB)\n", len(data), float64(len(data))/1024)
	fmt.Fprintf(out, "Output:      %s\n", paths.Output(path))

	fmt.Fprintln(out, "Alpha coverage:")
	fmt.Fprintf(out, "  Mean:        %.1f (stddev %.1f)\n", cov.Mean, cov.StdDev)
	fmt.Fprintf(out, "  Median:      %.0f\n", cov.Median)
	fmt.Fprintf(out, "  Transparent: %.1f%%\n", cov.Transparent*100)
	fmt.Fprintf(out, "  Opaque:      %.1f%%\n", cov.Opaque*100)

	palette := inspect.Palette(img, colors, method)
	fmt.Fprintf(out, "Palette (%s):\n", method)
	if len(palette) == 0 {
		fmt.Fprintln(out, "  none")
	}
	for _, s := range palette {
		fmt.Fprintf(out, "  %s  %5.1f%%\n", s.Hex(), s.Weight*100)
	}

	return nil
}

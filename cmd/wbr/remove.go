package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/enfff/wbr/internal/codec"
	"github.com/enfff/wbr/internal/paths"
	"github.com/enfff/wbr/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	errUsage         = errors.New("expected exactly one input image path")
	errInputNotFound = errors.New("input file does not exist")
)

func exactlyOneInput(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	return nil
}

func addRemoveFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "Output PNG path (default <input stem>"+paths.Suffix+" next to the input)")
	cmd.Flags().String("compression", "default", "PNG compression (default, none, speed, best)")
	cmd.Flags().BoolP("quiet", "q", false, "Suppress progress messages")
}

func runRemove(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	outputPath, _ := cmd.Flags().GetString("output")
	compression, _ := cmd.Flags().GetString("compression")
	quiet, _ := cmd.Flags().GetBool("quiet")
	identify, _ := cmd.Flags().GetBool("identify")

	level, err := codec.ParseCompression(compression)
	if err != nil {
		return err
	}

	if _, err := os.Stat(inputPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", errInputNotFound, inputPath)
		}
		return fmt.Errorf("checking input: %w", err)
	}

	if identify {
		return runIdentify(cmd, inputPath)
	}

	if outputPath == "" {
		outputPath = paths.Output(inputPath)
	}

	out := cmd.OutOrStdout()
	if quiet {
		out = io.Discard
	}

	fmt.Fprintf(out, "Processing: %s\n", inputPath)
	fmt.Fprintf(out, "Output will be saved to: %s\n", outputPath)

	inputData, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to load image: %s: %w: %w", inputPath, pipeline.ErrDecode, err)
	}

	result, err := pipeline.Run(inputData, pipeline.Options{
		Compression: level,
		Loaded: func(width, height, channels int) {
			fmt.Fprintf(out, "Loaded image: %dx%d with %d channels\n", width, height, channels)
		},
	})
	if err != nil {
		if errors.Is(err, pipeline.ErrDecode) {
			return fmt.Errorf("failed to load image: %s: %w", inputPath, err)
		}
		return fmt.Errorf("failed to write output image: %s: %w", outputPath, err)
	}

	if err := os.WriteFile(outputPath, result.Data, 0644); err != nil {
		return fmt.Errorf("failed to write output image: %s: %w: %w", outputPath, pipeline.ErrEncode, err)
	}

	fmt.Fprintf(out, "Successfully created: %s\n", outputPath)
	return nil
}

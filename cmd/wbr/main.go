package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "wbr <input_image_path>",
		Short: "Remove the white background from black silhouette images",
		Long: `White Background Remover (wbr)
Removes white background from black silhouette images.

Bright pixels become transparent and dark pixels opaque black
(alpha = 255 - luminance). The result is written as an RGBA PNG
next to the input with a '_nobg' suffix, e.g. input.jpg -> input_nobg.png.`,
		Args:          exactlyOneInput,
		RunE:          runRemove,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	addRemoveFlags(root)
	addIdentifyFlags(root)
	return root
}

func printUsage(w io.Writer, program string) {
	fmt.Fprintln(w, "White Background Remover (wbr)")
	fmt.Fprintln(w, "Removes white background from black silhouette images.")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Usage: %s <input_image_path>\n", program)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input_image_path  Path to the input image (JPEG, PNG, BMP, GIF, TIFF, WebP)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  Creates a new PNG file with '_nobg' suffix in the same directory")
	fmt.Fprintln(w, "  Example: input.jpg -> input_nobg.png")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Use --identify to inspect an image without writing output.")
}

// run executes the command line and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	if args == nil {
		// cobra falls back to os.Args on nil.
		args = []string{}
	}
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		if errors.Is(err, errUsage) {
			printUsage(stdout, root.Name())
		} else {
			fmt.Fprintln(stderr, "Error:", err)
		}
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// Package paths derives output file names from input file names.
package paths

import (
	"path/filepath"
	"strings"
)

// Suffix is appended to the input stem to form the output file name.
const Suffix = "_nobg.png"

// Output returns the path of the PNG written for input: the input's stem
// followed by Suffix, in the input's directory. An input without a
// directory component yields a bare file name.
//
//	foo/bar.jpg -> foo/bar_nobg.png
//	bar.jpg     -> bar_nobg.png
//	dir/.png    -> dir/_nobg.png
func Output(input string) string {
	dir, file := filepath.Split(input)
	return dir + Stem(file) + Suffix
}

// Stem returns the base name of path with its final extension removed.
func Stem(path string) string {
	base := filepath.Base(path)
	if base == "." || base == string(filepath.Separator) {
		return ""
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}

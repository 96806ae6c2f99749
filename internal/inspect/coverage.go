// Package inspect summarizes source images and their alpha mattes for the
// identify command.
package inspect

import (
	"slices"

	"gonum.org/v1/gonum/stat"

	"github.com/enfff/wbr/internal/ir"
)

// Coverage describes the alpha distribution of a matte.
type Coverage struct {
	Pixels      int
	Mean        float64 // mean alpha, 0-255
	StdDev      float64
	Median      float64
	Transparent float64 // fraction of pixels with alpha 0
	Opaque      float64 // fraction of pixels with alpha 255
}

// Measure computes alpha statistics over every pixel of m.
func Measure(m *ir.Matte) Coverage {
	n := m.Width * m.Height
	if n == 0 {
		return Coverage{}
	}

	alphas := make([]float64, n)
	var transparent, opaque int
	for i := 0; i < n; i++ {
		a := m.Pix[i*4+3]
		switch a {
		case 0:
			transparent++
		case 255:
			opaque++
		}
		alphas[i] = float64(a)
	}

	mean, std := stat.MeanStdDev(alphas, nil)
	if n == 1 {
		std = 0
	}
	slices.Sort(alphas)

	return Coverage{
		Pixels:      n,
		Mean:        mean,
		StdDev:      std,
		Median:      stat.Quantile(0.5, stat.Empirical, alphas, nil),
		Transparent: float64(transparent) / float64(n),
		Opaque:      float64(opaque) / float64(n),
	}
}

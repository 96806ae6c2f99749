package inspect

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"slices"

	"github.com/cenkalti/dominantcolor"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

// Method selects the palette extraction algorithm.
type Method int

const (
	MethodDominantColor Method = iota
	MethodKMeans
)

func (m Method) String() string {
	switch m {
	case MethodKMeans:
		return "kmeans"
	default:
		return "dominantcolor"
	}
}

// ParseMethod converts a method name to a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "", "dominantcolor":
		return MethodDominantColor, nil
	case "kmeans":
		return MethodKMeans, nil
	default:
		return 0, fmt.Errorf("unknown palette method %q (use dominantcolor, kmeans)", s)
	}
}

// Swatch is one palette entry. Weight is the share of sampled pixels the
// color represents.
type Swatch struct {
	Color  colorful.Color
	Weight float64
}

// Hex returns the color as #rrggbb.
func (s Swatch) Hex() string {
	return s.Color.Hex()
}

// Palette returns up to k representative colors of img, ordered from
// darkest to brightest. kmeans falls back to dominantcolor when clustering
// yields nothing.
func Palette(img image.Image, k int, method Method) []Swatch {
	if k <= 0 {
		return nil
	}
	var p []Swatch
	if method == MethodKMeans {
		p = kmeansPalette(img, k)
	}
	if len(p) == 0 {
		p = dominantPalette(img, k)
	}
	SortByBrightness(p)
	return p
}

// SortByBrightness orders swatches by relative luminance, darkest first.
func SortByBrightness(p []Swatch) {
	slices.SortStableFunc(p, func(a, b Swatch) int {
		ya, yb := relativeLuminance(a.Color), relativeLuminance(b.Color)
		switch {
		case ya < yb:
			return -1
		case ya > yb:
			return 1
		}
		return 0
	})
}

func relativeLuminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func dominantPalette(img image.Image, k int) []Swatch {
	found := dominantcolor.FindWeight(img, k)
	out := make([]Swatch, 0, len(found))
	for _, c := range found {
		c.RGBA.A = 255
		col, _ := colorful.MakeColor(c.RGBA)
		out = append(out, Swatch{Color: col.Clamped(), Weight: c.Weight})
	}
	return out
}

// kmeansSampleLimit bounds the number of pixels handed to k-means.
const kmeansSampleLimit = 1 << 14

// sampleColors returns the non-transparent pixels of img on a regular grid
// as straight RGB coordinates in [0, 1]. The grid stride grows with the
// square root of the pixel count so that roughly limit pixels are visited.
func sampleColors(img image.Image, limit int) clusters.Observations {
	b := img.Bounds()
	n := b.Dx() * b.Dy()
	if n <= 0 || limit <= 0 {
		return nil
	}
	stride := 1
	if n > limit {
		stride = int(math.Ceil(math.Sqrt(float64(n) / float64(limit))))
	}

	obs := make(clusters.Observations, 0, min(n, limit))
	for y := b.Min.Y; y < b.Max.Y; y += stride {
		for x := b.Min.X; x < b.Max.X; x += stride {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c.A == 0 {
				continue
			}
			obs = append(obs, clusters.Coordinates{
				float64(c.R) / 255,
				float64(c.G) / 255,
				float64(c.B) / 255,
			})
		}
	}
	return obs
}

func kmeansPalette(img image.Image, k int) []Swatch {
	dataset := sampleColors(img, kmeansSampleLimit)
	if len(dataset) == 0 {
		return nil
	}

	km := kmeans.New()
	cc, err := km.Partition(dataset, min(k, len(dataset)))
	if err != nil {
		return nil
	}

	out := make([]Swatch, 0, len(cc))
	for _, c := range cc {
		if len(c.Observations) == 0 || len(c.Center) < 3 {
			continue
		}
		col := colorful.Color{R: c.Center[0], G: c.Center[1], B: c.Center[2]}.Clamped()
		out = append(out, Swatch{
			Color:  col,
			Weight: float64(len(c.Observations)) / float64(len(dataset)),
		})
	}
	return out
}

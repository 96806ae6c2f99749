package inspect

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/muesli/clusters"

	"github.com/enfff/wbr/internal/ir"
)

func matteWithAlphas(alphas ...uint8) *ir.Matte {
	m := ir.NewMatte(len(alphas), 1)
	for i, a := range alphas {
		m.Pix[i*4+3] = a
	}
	return m
}

func TestMeasure(t *testing.T) {
	cov := Measure(matteWithAlphas(0, 100, 255))

	if cov.Pixels != 3 {
		t.Errorf("pixels %d, want 3", cov.Pixels)
	}
	if math.Abs(cov.Mean-355.0/3) > 1e-9 {
		t.Errorf("mean %f, want %f", cov.Mean, 355.0/3)
	}
	if cov.Median != 100 {
		t.Errorf("median %f, want 100", cov.Median)
	}
	if math.Abs(cov.Transparent-1.0/3) > 1e-9 || math.Abs(cov.Opaque-1.0/3) > 1e-9 {
		t.Errorf("transparent %f opaque %f, want 1/3 each", cov.Transparent, cov.Opaque)
	}
	if cov.StdDev <= 0 {
		t.Errorf("stddev %f, want > 0", cov.StdDev)
	}
}

func TestMeasureSinglePixel(t *testing.T) {
	cov := Measure(matteWithAlphas(42))
	if cov.Mean != 42 || cov.Median != 42 || cov.StdDev != 0 {
		t.Errorf("got mean %f median %f stddev %f, want 42/42/0", cov.Mean, cov.Median, cov.StdDev)
	}
}

func TestMeasureEmpty(t *testing.T) {
	if cov := Measure(ir.NewMatte(0, 0)); cov != (Coverage{}) {
		t.Errorf("expected zero coverage, got %+v", cov)
	}
}

func TestParseMethod(t *testing.T) {
	for in, want := range map[string]Method{
		"":              MethodDominantColor,
		"dominantcolor": MethodDominantColor,
		"kmeans":        MethodKMeans,
	} {
		got, err := ParseMethod(in)
		if err != nil || got != want {
			t.Errorf("ParseMethod(%q) = %v, %v; want %v", in, got, err, want)
		}
		if in != "" && got.String() != in {
			t.Errorf("%v.String() = %q, want %q", got, got.String(), in)
		}
	}
	if _, err := ParseMethod("median-cut"); err == nil {
		t.Error("expected error for unknown method")
	}
}

// silhouette is a white image with a black square in the middle.
func silhouette() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			c := color.RGBA{255, 255, 255, 255}
			if x >= 10 && x < 30 && y >= 10 && y < 30 {
				c = color.RGBA{0, 0, 0, 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func checkSorted(t *testing.T, p []Swatch) {
	t.Helper()
	for i := 1; i < len(p); i++ {
		if relativeLuminance(p[i-1].Color) > relativeLuminance(p[i].Color) {
			t.Errorf("palette not sorted dark to bright: %s before %s", p[i-1].Hex(), p[i].Hex())
		}
	}
}

func TestPaletteDominantColor(t *testing.T) {
	p := Palette(silhouette(), 4, MethodDominantColor)
	if len(p) == 0 || len(p) > 4 {
		t.Fatalf("expected 1-4 swatches, got %d", len(p))
	}
	checkSorted(t, p)
	for _, s := range p {
		t.Logf("%s %.3f", s.Hex(), s.Weight)
	}
}

func TestPaletteKMeans(t *testing.T) {
	p := Palette(silhouette(), 2, MethodKMeans)
	if len(p) == 0 || len(p) > 2 {
		t.Fatalf("expected 1-2 swatches, got %d", len(p))
	}
	checkSorted(t, p)

	var total float64
	for _, s := range p {
		total += s.Weight
		t.Logf("%s %.3f", s.Hex(), s.Weight)
	}
	if math.Abs(total-1) > 1e-9 {
		t.Errorf("weights sum to %f, want 1", total)
	}
}

func TestPaletteZeroColors(t *testing.T) {
	if p := Palette(silhouette(), 0, MethodKMeans); p != nil {
		t.Errorf("expected nil palette, got %v", p)
	}
}

func TestSampleColors(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	img.SetNRGBA(2, 2, color.NRGBA{0, 0, 0, 0})
	img.SetNRGBA(0, 2, color.NRGBA{255, 0, 0, 128})

	// Every pixel but the transparent one.
	if got := sampleColors(img, 100); len(got) != 15 {
		t.Errorf("unbounded: got %d samples, want 15", len(got))
	}

	// Limit 4 visits (0,0), (2,0), (0,2), (2,2); (2,2) is transparent.
	got := sampleColors(img, 4)
	if len(got) != 3 {
		t.Fatalf("limit 4: got %d samples, want 3", len(got))
	}
	red, ok := got[2].(clusters.Coordinates)
	if !ok {
		t.Fatalf("sample is %T, want clusters.Coordinates", got[2])
	}
	if red[0] != 1 || red[1] != 0 || red[2] != 0 {
		t.Errorf("half-transparent red sampled as %v, want straight [1 0 0]", red)
	}

	if got := sampleColors(image.NewNRGBA(image.Rect(0, 0, 0, 0)), 4); got != nil {
		t.Errorf("empty image: got %v, want nil", got)
	}
}

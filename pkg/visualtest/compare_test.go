package visualtest

import (
	"image"
	"image/color"
	"testing"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestCompareIdentical(t *testing.T) {
	a := solid(10, 10, color.RGBA{255, 0, 0, 255})
	b := solid(10, 10, color.RGBA{255, 0, 0, 255})

	result, err := Compare(a, b, 0)
	if err != nil {
		t.Fatalf("compare error: %v", err)
	}
	if !result.Match || result.DifferentPixels != 0 {
		t.Errorf("identical images reported different: %+v", result)
	}
	if result.TotalPixels != 100 {
		t.Errorf("total pixels = %d, want 100", result.TotalPixels)
	}
}

func TestCompareCountsDifferences(t *testing.T) {
	a := solid(10, 10, color.RGBA{255, 0, 0, 255})
	b := solid(10, 10, color.RGBA{255, 0, 0, 255})
	b.SetRGBA(3, 4, color.RGBA{0, 0, 255, 255})

	result, err := Compare(a, b, 0)
	if err != nil {
		t.Fatalf("compare error: %v", err)
	}
	if result.Match || result.DifferentPixels != 1 {
		t.Errorf("expected exactly one differing pixel: %+v", result)
	}
	if result.MaxDifference != 255 {
		t.Errorf("max difference = %d, want 255", result.MaxDifference)
	}
}

func TestCompareTolerance(t *testing.T) {
	a := solid(4, 4, color.RGBA{100, 100, 100, 255})
	b := solid(4, 4, color.RGBA{102, 100, 100, 255})

	result, err := Compare(a, b, 2)
	if err != nil {
		t.Fatalf("compare error: %v", err)
	}
	if !result.Match {
		t.Errorf("difference of 2 should pass with tolerance 2: %+v", result)
	}

	result, err = Compare(a, b, 1)
	if err != nil {
		t.Fatalf("compare error: %v", err)
	}
	if result.Match {
		t.Error("difference of 2 should fail with tolerance 1")
	}
}

func TestCompareDimensionMismatch(t *testing.T) {
	a := solid(10, 10, color.RGBA{})
	b := solid(10, 20, color.RGBA{})
	if _, err := Compare(a, b, 0); err == nil {
		t.Error("expected dimension mismatch error")
	}
}

// Package visualtest compares rendered images pixel-by-pixel for tests.
package visualtest

import (
	"fmt"
	"image"
)

// Result contains the outcome of an image comparison.
type Result struct {
	Match           bool
	DifferentPixels int
	TotalPixels     int
	MaxDifference   int // max per-channel difference found
}

// Compare compares two images pixel-by-pixel. tolerance is the maximum
// allowed difference per 8-bit color channel; use 0 for an exact match.
func Compare(actual, expected image.Image, tolerance int) (*Result, error) {
	ab, eb := actual.Bounds(), expected.Bounds()
	if ab.Dx() != eb.Dx() || ab.Dy() != eb.Dy() {
		return nil, fmt.Errorf("image dimensions differ: actual=%v, expected=%v", ab, eb)
	}

	result := &Result{TotalPixels: ab.Dx() * ab.Dy()}
	for y := 0; y < ab.Dy(); y++ {
		for x := 0; x < ab.Dx(); x++ {
			ar, ag, abl, aa := actual.At(ab.Min.X+x, ab.Min.Y+y).RGBA()
			er, eg, ebl, ea := expected.At(eb.Min.X+x, eb.Min.Y+y).RGBA()
			diff := maxDiff(ar, er, ag, eg, abl, ebl, aa, ea)
			if diff > result.MaxDifference {
				result.MaxDifference = diff
			}
			if diff > tolerance {
				result.DifferentPixels++
			}
		}
	}
	result.Match = result.DifferentPixels == 0
	return result, nil
}

// maxDiff returns the largest 8-bit channel difference among the given
// channel pairs (values are 16-bit as returned by RGBA).
func maxDiff(pairs ...uint32) int {
	maxd := 0
	for i := 0; i < len(pairs); i += 2 {
		d := int(pairs[i]>>8) - int(pairs[i+1]>>8)
		if d < 0 {
			d = -d
		}
		if d > maxd {
			maxd = d
		}
	}
	return maxd
}

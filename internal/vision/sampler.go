// Package vision analyzes the visual state of recognized text regions.
// It samples pixel regions, computes brightness statistics, and classifies
// which of several candidate labels is in an illuminated "active" state.
package vision

import (
	"image"

	"netshot/pkg/geometry"
)

// Region is a rectangular grayscale pixel sample cut from a source image.
// A zero-area region is the designated empty sentinel; downstream
// statistics report it as insufficient data instead of failing.
type Region struct {
	Pix    []uint8
	Width  int
	Height int
}

// Empty returns true if the region has no pixels.
func (r Region) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// At returns the pixel intensity at (x, y) in region-local coordinates.
func (r Region) At(x, y int) uint8 {
	return r.Pix[y*r.Width+x]
}

// Grayscale converts an image to 8-bit grayscale luminance.
// Uses the fast integer approximation (19595*R + 38470*G + 7471*B) >> 16.
func Grayscale(src image.Image) *image.Gray {
	if g, ok := src.(*image.Gray); ok {
		return g
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	gray := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, _ := src.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			gray.Pix[y*gray.Stride+x] = uint8((19595*(r>>8) + 38470*(g>>8) + 7471*(b>>8)) >> 16)
		}
	}
	return gray
}

// SampleRegion extracts the pixels under box from a grayscale image.
// The box is clipped to the image bounds; a box that clips to zero area
// yields the empty region sentinel. The source image is never modified.
func SampleRegion(gray *image.Gray, box geometry.RectInt) Region {
	b := gray.Bounds()
	clipped := box.Clip(b.Dx(), b.Dy())
	if clipped.Empty() {
		return Region{}
	}

	pix := make([]uint8, clipped.Width*clipped.Height)
	for y := 0; y < clipped.Height; y++ {
		srcOff := (clipped.Y+y)*gray.Stride + clipped.X
		copy(pix[y*clipped.Width:(y+1)*clipped.Width], gray.Pix[srcOff:srcOff+clipped.Width])
	}
	return Region{Pix: pix, Width: clipped.Width, Height: clipped.Height}
}

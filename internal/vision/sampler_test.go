package vision

import (
	"image"
	"image/color"
	"testing"

	"netshot/pkg/geometry"
)

// uniformGray builds a grayscale image filled with one intensity.
func uniformGray(w, h int, v uint8) *image.Gray {
	g := image.NewGray(image.Rect(0, 0, w, h))
	for i := range g.Pix {
		g.Pix[i] = v
	}
	return g
}

func TestGrayscaleLuminance(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	img.Set(1, 0, color.RGBA{R: 0, G: 0, B: 0, A: 255})

	gray := Grayscale(img)
	if got := gray.GrayAt(0, 0).Y; got < 254 {
		t.Errorf("white pixel luminance: got %d, want ~255", got)
	}
	if got := gray.GrayAt(1, 0).Y; got != 0 {
		t.Errorf("black pixel luminance: got %d, want 0", got)
	}
}

func TestGrayscalePassthrough(t *testing.T) {
	g := uniformGray(4, 4, 128)
	if Grayscale(g) != g {
		t.Error("grayscale input should be returned as-is")
	}
}

func TestSampleRegionClipsToBounds(t *testing.T) {
	g := uniformGray(10, 10, 200)

	r := SampleRegion(g, geometry.NewRectInt(8, 8, 5, 5))
	if r.Width != 2 || r.Height != 2 {
		t.Fatalf("clipped sample: got %dx%d, want 2x2", r.Width, r.Height)
	}
	for _, p := range r.Pix {
		if p != 200 {
			t.Fatalf("sample pixel: got %d, want 200", p)
		}
	}
}

func TestSampleRegionZeroArea(t *testing.T) {
	g := uniformGray(10, 10, 50)

	if r := SampleRegion(g, geometry.NewRectInt(3, 3, 0, 5)); !r.Empty() {
		t.Error("zero-width box should yield the empty sentinel")
	}
	if r := SampleRegion(g, geometry.NewRectInt(50, 50, 5, 5)); !r.Empty() {
		t.Error("fully out-of-bounds box should yield the empty sentinel")
	}
}

func TestSampleRegionCopiesPixels(t *testing.T) {
	g := uniformGray(4, 4, 100)
	r := SampleRegion(g, geometry.NewRectInt(0, 0, 4, 4))

	g.Pix[0] = 0
	if r.Pix[0] != 100 {
		t.Error("sample should be an independent copy of the source pixels")
	}
}

func TestSampleRegionValues(t *testing.T) {
	g := uniformGray(4, 4, 0)
	g.SetGray(2, 1, color.Gray{Y: 77})

	r := SampleRegion(g, geometry.NewRectInt(1, 1, 3, 2))
	if r.Width != 3 || r.Height != 2 {
		t.Fatalf("sample size: got %dx%d, want 3x2", r.Width, r.Height)
	}
	// (2,1) in image coordinates is (1,0) in region-local coordinates.
	if got := r.At(1, 0); got != 77 {
		t.Errorf("sample pixel: got %d, want 77", got)
	}
}

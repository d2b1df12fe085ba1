package vision

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Profile holds brightness statistics for one sampled region.
// Values are derived once and never mutated afterwards.
type Profile struct {
	Mean             float64 `json:"mean"`      // arithmetic mean intensity, 0-255
	StdDev           float64 `json:"std_dev"`   // population standard deviation
	Median           float64 `json:"median"`    // median intensity, 0-255
	Sharpness        float64 `json:"sharpness"` // variance of the Laplacian response
	InsufficientData bool    `json:"insufficient_data,omitempty"`
}

// Measure computes the brightness profile of a region.
// An empty region yields a zeroed profile flagged InsufficientData.
func Measure(r Region) Profile {
	if r.Empty() {
		return Profile{InsufficientData: true}
	}

	xs := make([]float64, len(r.Pix))
	for i, p := range r.Pix {
		xs[i] = float64(p)
	}

	mean := stat.Mean(xs, nil)
	std := math.Sqrt(stat.MomentAbout(2, xs, mean, nil))

	return Profile{
		Mean:      clamp255(mean),
		StdDev:    std,
		Median:    clamp255(median(xs)),
		Sharpness: sharpness(r),
	}
}

// sharpness returns the variance of a 4-neighbor discrete Laplacian applied
// to the region interior. Bright but blurred regions score low, so this
// separates a genuinely crisp label from exposure artifacts.
func sharpness(r Region) float64 {
	if r.Width < 3 || r.Height < 3 {
		return 0
	}

	resp := make([]float64, 0, (r.Width-2)*(r.Height-2))
	for y := 1; y < r.Height-1; y++ {
		for x := 1; x < r.Width-1; x++ {
			c := float64(r.At(x, y))
			l := 4*c - float64(r.At(x-1, y)) - float64(r.At(x+1, y)) -
				float64(r.At(x, y-1)) - float64(r.At(x, y+1))
			resp = append(resp, l)
		}
	}

	mean := stat.Mean(resp, nil)
	return stat.MomentAbout(2, resp, mean, nil)
}

// median returns the middle value, averaging the two middle values for an
// even count. The input slice is not modified.
func median(xs []float64) float64 {
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func clamp255(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

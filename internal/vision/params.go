package vision

// Params holds thresholds for activation classification.
type Params struct {
	// BrightnessThreshold is the minimum amount a region's mean must exceed
	// the group baseline (median of means) to be considered active.
	BrightnessThreshold float64

	// ContrastThreshold is the minimum amount a region's standard deviation
	// must exceed the group's minimum standard deviation. This rejects
	// uniformly bright screenshots with no real text contrast.
	ContrastThreshold float64
}

// DefaultParams returns default classification thresholds.
// Tuned for backlit status screens where the selected label is rendered
// noticeably brighter than its dimmed siblings.
func DefaultParams() Params {
	return Params{
		BrightnessThreshold: 15,
		ContrastThreshold:   30,
	}
}

// WithThresholds returns a copy of params with custom threshold values.
func (p Params) WithThresholds(brightness, contrast float64) Params {
	p.BrightnessThreshold = brightness
	p.ContrastThreshold = contrast
	return p
}

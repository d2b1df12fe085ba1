package vision

import (
	"fmt"
)

// Status indicates whether a label is visually active or inactive.
type Status int

const (
	// StatusInactive indicates a dimmed or unselected label.
	StatusInactive Status = iota
	// StatusActive indicates an illuminated/highlighted label.
	StatusActive
)

func (s Status) String() string {
	if s == StatusActive {
		return "active"
	}
	return "inactive"
}

// MarshalText implements encoding.TextMarshaler for JSON output.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Level is an ordinal brightness bucket derived from mean intensity.
type Level int

const (
	LevelVeryLow Level = iota
	LevelLow
	LevelMedium
	LevelHigh
	LevelVeryHigh
)

func (l Level) String() string {
	switch l {
	case LevelVeryLow:
		return "very_low"
	case LevelLow:
		return "low"
	case LevelMedium:
		return "medium"
	case LevelHigh:
		return "high"
	case LevelVeryHigh:
		return "very_high"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler for JSON output.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// LevelFromMean assigns a mean intensity to one of five fixed buckets,
// the quintiles of the 0-255 range. Boundaries are closed at the top:
// 50.9 is very_low, 51 is low.
func LevelFromMean(mean float64) Level {
	switch {
	case mean < 51:
		return LevelVeryLow
	case mean < 102:
		return LevelLow
	case mean < 153:
		return LevelMedium
	case mean < 204:
		return LevelHigh
	default:
		return LevelVeryHigh
	}
}

// Candidate is one label competing within a role group.
type Candidate struct {
	Label   string
	Profile Profile
}

// Activation is the classification result for one candidate label.
type Activation struct {
	Label   string
	Level   Level
	Status  Status
	Profile Profile
}

// Classify assigns an active/inactive status to every candidate in a role
// group of mutually exclusive labels.
//
// The baseline is the median of mean brightness across candidates with
// sufficient data. A candidate is active iff its mean exceeds the baseline
// by more than BrightnessThreshold AND its standard deviation exceeds the
// group minimum by more than ContrastThreshold. The two-threshold test is
// what prevents a uniformly bright (overexposed) screenshot from producing
// a spurious active label.
//
// When several candidates pass, only the one with the highest mean stays
// active (ties break to the earliest candidate). When none pass, the whole
// group is inactive; that is a valid outcome, not an error. Candidates
// flagged InsufficientData are never active and do not contribute to the
// baseline.
func Classify(group []Candidate, params Params) []Activation {
	results := make([]Activation, len(group))

	var means []float64
	minStd := -1.0
	for _, c := range group {
		if c.Profile.InsufficientData {
			continue
		}
		means = append(means, c.Profile.Mean)
		if minStd < 0 || c.Profile.StdDev < minStd {
			minStd = c.Profile.StdDev
		}
	}

	var baseline float64
	if len(means) > 0 {
		baseline = median(means)
	}

	winner := -1
	for i, c := range group {
		results[i] = Activation{
			Label:   c.Label,
			Level:   LevelFromMean(c.Profile.Mean),
			Status:  StatusInactive,
			Profile: c.Profile,
		}
		if c.Profile.InsufficientData {
			continue
		}

		delta := c.Profile.Mean - baseline
		contrast := c.Profile.StdDev - minStd
		if delta > params.BrightnessThreshold && contrast > params.ContrastThreshold {
			if winner < 0 || c.Profile.Mean > group[winner].Profile.Mean {
				winner = i
			}
		}
	}

	if winner >= 0 {
		results[winner].Status = StatusActive
	}

	if len(group) > 0 {
		fmt.Printf("Classify: %d candidates, baseline=%.1f, minStd=%.1f, active=%s\n",
			len(group), baseline, minStd, activeLabel(results, winner))
	}

	return results
}

func activeLabel(results []Activation, winner int) string {
	if winner < 0 {
		return "<none>"
	}
	return results[winner].Label
}

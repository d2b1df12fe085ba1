package report

import (
	"strings"

	"netshot/internal/extract"
	"netshot/internal/vision"
)

// Build merges extracted field matches with the operator role-group
// classification into one Result.
//
// The currently active operator is the classifier's winning label when one
// exists; otherwise, if the text mentions exactly one known operator, that
// mention is used; otherwise the field stays absent. available_operators
// lists every label of the role group in the order the labels were first
// seen in the OCR text.
func Build(text string, matches []extract.Match, operators []string, activations []vision.Activation) *Result {
	r := NewEmpty(text)

	for _, m := range matches {
		target := r.StructuredData.NetworkInfo
		if m.Category == "speed_test" {
			target = r.StructuredData.SpeedTest
		}
		setField(target, m.Field, normalizeUnit(m.Field, m.Value))
	}

	if len(operators) > 0 {
		r.StructuredData.SpeedTest["operators"] = operators
	}

	if active, ok := activeOperator(operators, activations); ok {
		r.StructuredData.SpeedTest["active_operator"] = active
	}

	if len(activations) > 0 {
		states := make([]OperatorState, len(activations))
		for i, a := range activations {
			states[i] = OperatorState{
				Name:            a.Label,
				Status:          a.Status,
				BrightnessLevel: a.Level,
			}
		}
		r.StructuredData.SpeedTest["available_operators"] = states
	}

	return r
}

// setField stores a value, nesting on dots: "signal_strength.rsrp" lands
// under the signal_strength sub-map.
func setField(target map[string]any, field, value string) {
	parent, leaf, nested := strings.Cut(field, ".")
	if !nested {
		target[field] = value
		return
	}
	sub, ok := target[parent].(map[string]any)
	if !ok {
		sub = map[string]any{}
		target[parent] = sub
	}
	sub[leaf] = value
}

// normalizeUnit appends the conventional unit to speed-test figures whose
// patterns capture bare numbers, matching the presentation the status
// screens use ("168ms", "85.5Mbps").
func normalizeUnit(field, value string) string {
	switch field {
	case "ping":
		if !strings.HasSuffix(strings.ToLower(value), "ms") {
			return value + "ms"
		}
	case "download", "upload":
		if !strings.HasSuffix(strings.ToLower(value), "mbps") {
			return value + "Mbps"
		}
	}
	return value
}

func activeOperator(operators []string, activations []vision.Activation) (string, bool) {
	for _, a := range activations {
		if a.Status == vision.StatusActive {
			return a.Label, true
		}
	}
	if len(operators) == 1 {
		return operators[0], true
	}
	return "", false
}

// Summarize computes run diagnostics from the classification results.
func Summarize(avgConfidence float64, activations []vision.Activation) *ProcessingInfo {
	info := &ProcessingInfo{
		OCRConfidence:           avgConfidence,
		OperatorsDetected:       len(activations),
		VisualAnalysisPerformed: len(activations) > 0,
	}
	for _, a := range activations {
		if a.Status == vision.StatusActive {
			info.ActiveRegions++
		} else {
			info.InactiveRegions++
		}
	}
	return info
}

// Package report fuses pattern-extraction output with visual activation
// classification into the final structured result.
package report

import (
	"encoding/json"

	"netshot/internal/vision"
)

// Result is the structured record produced for one analysis request.
// It has no persistence beyond the request that created it.
type Result struct {
	ExtractedText  string          `json:"extracted_text"`
	StructuredData StructuredData  `json:"structured_data"`
	ProcessingInfo *ProcessingInfo `json:"processing_info,omitempty"`
}

// StructuredData groups the extracted fields by semantic category.
// Fields absent from the source text are absent from the maps, never set
// to empty placeholders.
type StructuredData struct {
	NetworkInfo map[string]any `json:"network_info"`
	SpeedTest   map[string]any `json:"speed_test"`
}

// OperatorState reports the visual state of one operator label.
type OperatorState struct {
	Name            string        `json:"name"`
	Status          vision.Status `json:"status"`
	BrightnessLevel vision.Level  `json:"brightness_level"`
}

// ProcessingInfo carries diagnostic figures about the analysis run.
type ProcessingInfo struct {
	OCRConfidence           float64 `json:"ocr_confidence"`
	OperatorsDetected       int     `json:"operators_detected"`
	VisualAnalysisPerformed bool    `json:"visual_analysis_performed"`
	ActiveRegions           int     `json:"active_regions"`
	InactiveRegions         int     `json:"inactive_regions"`
}

// NewEmpty returns a result with no extracted fields, used when OCR finds
// no text. An empty result is a valid outcome, not an error.
func NewEmpty(text string) *Result {
	return &Result{
		ExtractedText: text,
		StructuredData: StructuredData{
			NetworkInfo: map[string]any{},
			SpeedTest:   map[string]any{},
		},
	}
}

// JSON serializes the result. Map keys marshal in sorted order, so the
// same input always produces byte-identical output.
func (r *Result) JSON(pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(r, "", "  ")
	}
	return json.Marshal(r)
}

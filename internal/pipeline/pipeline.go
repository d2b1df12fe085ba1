// Package pipeline orchestrates one screenshot analysis: OCR, visual
// activation classification, field extraction, and fusion.
package pipeline

import (
	"fmt"
	"image"

	"netshot/internal/config"
	"netshot/internal/extract"
	"netshot/internal/ocr"
	"netshot/internal/report"
	"netshot/internal/vision"
)

// Recognizer is the OCR collaborator boundary. Implementations must return
// word boxes in the same pixel frame as the supplied image. Callers
// wanting timeout or cancellation around OCR wrap their Recognizer; the
// pipeline itself never retries.
type Recognizer interface {
	Recognize(img image.Image) (text string, regions []ocr.TextRegion, err error)
}

// Pipeline runs the full analysis. Construct once with New; a Pipeline is
// safe for concurrent Analyze calls because its configuration is read-only
// after construction.
type Pipeline struct {
	rec       Recognizer
	extractor *extract.Extractor
	params    vision.Params
	operators []string
}

// New builds a pipeline from a recognizer and configuration. Rule
// compilation errors are fatal here rather than at analysis time.
func New(rec Recognizer, cfg *config.Config) (*Pipeline, error) {
	if rec == nil {
		return nil, fmt.Errorf("nil recognizer")
	}
	if cfg == nil {
		cfg = config.Default()
	}

	rules, err := extract.Compile(cfg.Rules)
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		rec:       rec,
		extractor: extract.New(rules, cfg.KnownOperators),
		params:    vision.DefaultParams().WithThresholds(cfg.BrightnessThreshold, cfg.ContrastThreshold),
		operators: cfg.KnownOperators,
	}, nil
}

// Analyze runs the pipeline on one image and returns its structured
// result. A failed or empty OCR pass yields an empty result, not an
// error; only malformed input (nil or zero-dimension image) is fatal.
func (p *Pipeline) Analyze(img image.Image) (*report.Result, error) {
	if img == nil {
		return nil, fmt.Errorf("nil image")
	}
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, fmt.Errorf("zero-dimension image (%dx%d)", bounds.Dx(), bounds.Dy())
	}

	text, regions, err := p.rec.Recognize(img)
	if err != nil {
		fmt.Printf("Analyze: OCR failed (%v), returning empty result\n", err)
		return report.NewEmpty(""), nil
	}
	if text == "" && len(regions) == 0 {
		return report.NewEmpty(""), nil
	}

	activations := p.classifyOperators(img, text, regions)
	matches := p.extractor.Extract(text)
	operators := p.extractor.Operators(text)

	result := report.Build(text, matches, operators, activations)
	result.ProcessingInfo = report.Summarize(ocr.AverageConfidence(regions), activations)
	return result, nil
}

// classifyOperators builds the operator role group and classifies it.
// Each known operator mentioned in the text claims the first OCR region
// containing its name; group order follows first appearance in the text,
// so downstream output order is stable for a given input.
func (p *Pipeline) classifyOperators(img image.Image, text string, regions []ocr.TextRegion) []vision.Activation {
	mentioned := extract.FindOperators(text, p.operators)
	if len(mentioned) == 0 {
		return nil
	}

	gray := vision.Grayscale(img)

	var group []vision.Candidate
	for _, op := range mentioned {
		region, ok := findRegion(regions, op)
		if !ok {
			continue
		}
		sample := vision.SampleRegion(gray, region.Box)
		group = append(group, vision.Candidate{
			Label:   op,
			Profile: vision.Measure(sample),
		})
	}
	if len(group) == 0 {
		return nil
	}

	return vision.Classify(group, p.params)
}

func findRegion(regions []ocr.TextRegion, operator string) (ocr.TextRegion, bool) {
	for _, r := range regions {
		if extract.ContainsName(r.Text, operator) {
			return r, true
		}
	}
	return ocr.TextRegion{}, false
}

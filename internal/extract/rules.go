// Package extract pulls structured fields out of raw OCR text using
// configurable, ordered regular-expression rule sets.
package extract

import (
	"fmt"
	"regexp"
)

// FieldSpec configures one extractable field. Patterns are tried in order
// until one matches; a dot in the field name ("signal_strength.rsrp")
// nests the value in the structured output.
type FieldSpec struct {
	Field    string   `yaml:"field"`
	Patterns []string `yaml:"patterns"`
}

// RuleSpec configures the fields of one semantic category.
type RuleSpec struct {
	Category string      `yaml:"category"`
	Fields   []FieldSpec `yaml:"fields"`
}

// Field is a compiled extraction rule for one field.
type Field struct {
	Name     string
	Patterns []*regexp.Regexp
}

// Category is a compiled, ordered set of field rules.
type Category struct {
	Name   string
	Fields []Field
}

// Rules is the full compiled rule set. Order is significant: categories,
// fields, and patterns are all tried in declaration order, which keeps the
// output deterministic for a given input.
type Rules []Category

// Compile compiles rule specs into matchable rules. All patterns are
// case-insensitive. Compilation happens once at startup; the result is
// immutable and safe for concurrent use.
func Compile(specs []RuleSpec) (Rules, error) {
	rules := make(Rules, 0, len(specs))
	for _, cs := range specs {
		cat := Category{Name: cs.Category}
		for _, fs := range cs.Fields {
			f := Field{Name: fs.Field}
			for _, p := range fs.Patterns {
				re, err := regexp.Compile("(?i)" + p)
				if err != nil {
					return nil, fmt.Errorf("invalid pattern for %s.%s: %w", cs.Category, fs.Field, err)
				}
				f.Patterns = append(f.Patterns, re)
			}
			cat.Fields = append(cat.Fields, f)
		}
		rules = append(rules, cat)
	}
	return rules, nil
}

// DefaultSpecs returns the default rule set for mobile-network status
// screens: signal metrics, network type, coordinates, and speed-test
// figures. Patterns tolerate full-width colons and OCR-confusable glyphs
// (I/1/l in SINR), since the source text comes from an OCR engine.
func DefaultSpecs() []RuleSpec {
	return []RuleSpec{
		{
			Category: "network_info",
			Fields: []FieldSpec{
				{Field: "operator", Patterns: []string{
					`(?P<val>中国移动|中国联通|中国电信|中国广电)`,
				}},
				{Field: "network_type", Patterns: []string{
					`\b(?P<val>[2-5]G)\b`,
				}},
				{Field: "location", Patterns: []string{
					`(?P<lon>\d+\.\d+)\s*/\s*(?P<lat>\d+\.\d+)`,
				}},
				{Field: "signal_strength.rsrp", Patterns: []string{
					`RSRP[:：\s]*(?P<val>-?\d+)`,
				}},
				{Field: "signal_strength.rsrq", Patterns: []string{
					`RSRQ[:：\s]*(?P<val>-?\d+)`,
				}},
				{Field: "signal_strength.sinr", Patterns: []string{
					`S[I1l]NR[:：\s]*(?P<val>-?\d+)`,
				}},
			},
		},
		{
			Category: "speed_test",
			Fields: []FieldSpec{
				{Field: "ping", Patterns: []string{
					`(?:延迟|ping)[:：\s]*(?P<val>\d+)\s*ms`,
					`(?P<val>\d+)\s*ms`,
				}},
				{Field: "download", Patterns: []string{
					`下载[^\d\n]{0,8}(?P<val>\d+\.?\d*)\s*Mbps`,
					`(?P<val>\d+\.?\d*)\s*Mbps[^\n]{0,8}下载`,
				}},
				{Field: "upload", Patterns: []string{
					`上传[^\d\n]{0,8}(?P<val>\d+\.?\d*)\s*Mbps`,
					`(?P<val>\d+\.?\d*)\s*Mbps[^\n]{0,8}上传`,
				}},
			},
		},
	}
}

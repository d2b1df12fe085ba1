package extract

import (
	"sort"
	"strings"
	"unicode"
)

// Operators scans the text for every known operator name appearing as a
// literal substring, tolerant of case and interleaved whitespace (OCR often
// splits multi-character names). The result preserves first-seen order in
// the text, which is user-visible and must stay stable for a given input.
func (e *Extractor) Operators(text string) []string {
	return FindOperators(text, e.operators)
}

// FindOperators is the standalone form of Extractor.Operators.
func FindOperators(text string, known []string) []string {
	haystack := strings.ToLower(squashSpace(text))

	type hit struct {
		name string
		pos  int
	}
	var hits []hit
	for _, op := range known {
		needle := strings.ToLower(squashSpace(op))
		if needle == "" {
			continue
		}
		if i := strings.Index(haystack, needle); i >= 0 {
			hits = append(hits, hit{name: op, pos: i})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })

	names := make([]string, len(hits))
	for i, h := range hits {
		names[i] = h.name
	}
	return names
}

// ContainsName reports whether the text contains the operator name,
// ignoring case and interleaved whitespace.
func ContainsName(text, name string) bool {
	needle := strings.ToLower(squashSpace(name))
	if needle == "" {
		return false
	}
	return strings.Contains(strings.ToLower(squashSpace(text)), needle)
}

// squashSpace removes all whitespace so "中国 联通" matches "中国联通".
func squashSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

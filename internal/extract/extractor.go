package extract

import (
	"regexp"
	"strings"
)

// Match is one extracted field value. Pos is the byte offset of the match
// in the source text, used to resolve "first match by position".
type Match struct {
	Category string
	Field    string
	Value    string
	Pos      int
}

// mbpsAny matches any bare "N Mbps" figure. Used as a positional fallback:
// when the labelled download/upload patterns miss, the first occurrence is
// taken as download and the second as upload.
var mbpsAny = regexp.MustCompile(`(?i)(\d+\.?\d*)\s*Mbps`)

// Extractor applies a compiled rule set to OCR text. Construct once and
// reuse; it holds no per-call state.
type Extractor struct {
	rules     Rules
	operators []string
}

// New creates an Extractor from compiled rules and a known-operator list.
func New(rules Rules, operators []string) *Extractor {
	return &Extractor{rules: rules, operators: operators}
}

// Extract runs every configured rule against the text and returns the
// matches in rule order. Fields with no match are simply absent from the
// result; callers can distinguish "not present" from "present but empty".
func (e *Extractor) Extract(text string) []Match {
	var matches []Match
	for _, cat := range e.rules {
		for _, field := range cat.Fields {
			if m, ok := matchField(cat.Name, field, text); ok {
				matches = append(matches, m)
			}
		}
	}
	return append(matches, e.speedFallback(text, matches)...)
}

// matchField tries each pattern in order; the first pattern that matches
// anywhere wins, at its earliest position in the text.
func matchField(category string, field Field, text string) (Match, bool) {
	for _, re := range field.Patterns {
		loc := re.FindStringSubmatchIndex(text)
		if loc == nil {
			continue
		}
		return Match{
			Category: category,
			Field:    field.Name,
			Value:    submatchValue(re, text, loc),
			Pos:      loc[0],
		}, true
	}
	return Match{}, false
}

// submatchValue extracts the captured value. Patterns with named groups
// yield the named captures joined with "/" in declaration order (a single
// named group yields itself; the lon/lat pair yields "lon/lat"). Patterns
// without named groups fall back to the first capture group, then to the
// whole match. Captures are whitespace-trimmed but otherwise verbatim.
func submatchValue(re *regexp.Regexp, text string, loc []int) string {
	var named []string
	for i, name := range re.SubexpNames() {
		if name == "" || loc[2*i] < 0 {
			continue
		}
		named = append(named, text[loc[2*i]:loc[2*i+1]])
	}
	if len(named) > 0 {
		return strings.TrimSpace(strings.Join(named, "/"))
	}
	if len(loc) >= 4 && loc[2] >= 0 {
		return strings.TrimSpace(text[loc[2]:loc[3]])
	}
	return strings.TrimSpace(text[loc[0]:loc[1]])
}

// speedFallback fills in missing download/upload figures from bare Mbps
// occurrences, in reading order: first is download, second is upload.
func (e *Extractor) speedFallback(text string, matched []Match) []Match {
	hasDownload, hasUpload := false, false
	for _, m := range matched {
		if m.Category != "speed_test" {
			continue
		}
		switch m.Field {
		case "download":
			hasDownload = true
		case "upload":
			hasUpload = true
		}
	}
	if hasDownload && hasUpload {
		return nil
	}

	locs := mbpsAny.FindAllStringSubmatchIndex(text, 2)
	var extra []Match
	if !hasDownload && len(locs) >= 1 {
		extra = append(extra, Match{
			Category: "speed_test",
			Field:    "download",
			Value:    text[locs[0][2]:locs[0][3]],
			Pos:      locs[0][0],
		})
	}
	if !hasUpload && len(locs) >= 2 {
		extra = append(extra, Match{
			Category: "speed_test",
			Field:    "upload",
			Value:    text[locs[1][2]:locs[1][3]],
			Pos:      locs[1][0],
		})
	}
	return extra
}

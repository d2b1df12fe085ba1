package extract

import (
	"reflect"
	"testing"
)

var knownOperators = []string{"中国移动", "中国联通", "中国电信", "中国广电"}

func TestFindOperatorsFirstSeenOrder(t *testing.T) {
	// 中国联通 appears before 中国移动 in the text, so it must come first
	// regardless of the order of the known list.
	got := FindOperators("中国联通 5G | 中国移动", knownOperators)
	want := []string{"中国联通", "中国移动"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFindOperatorsWhitespaceSplit(t *testing.T) {
	// OCR tends to insert spaces between CJK glyphs.
	got := FindOperators("中国 电 信", knownOperators)
	want := []string{"中国电信"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFindOperatorsNone(t *testing.T) {
	if got := FindOperators("no carriers here", knownOperators); len(got) != 0 {
		t.Errorf("got %v, want none", got)
	}
}

func TestFindOperatorsEmptyText(t *testing.T) {
	if got := FindOperators("", knownOperators); len(got) != 0 {
		t.Errorf("got %v, want none", got)
	}
}

func TestFindOperatorsDuplicateMentions(t *testing.T) {
	// Repeated mentions of the same operator yield one entry.
	got := FindOperators("中国移动 ... 中国移动", knownOperators)
	want := []string{"中国移动"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestContainsName(t *testing.T) {
	if !ContainsName("中国 联通", "中国联通") {
		t.Error("whitespace-split name should match")
	}
	if ContainsName("中国联通", "中国移动") {
		t.Error("different operator should not match")
	}
	if ContainsName("anything", "") {
		t.Error("empty name should never match")
	}
}

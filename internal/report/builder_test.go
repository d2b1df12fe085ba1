package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"netshot/internal/extract"
	"netshot/internal/vision"
)

func activation(label string, status vision.Status, level vision.Level) vision.Activation {
	return vision.Activation{Label: label, Status: status, Level: level}
}

func TestBuildNestsSignalStrength(t *testing.T) {
	matches := []extract.Match{
		{Category: "network_info", Field: "signal_strength.rsrp", Value: "-89"},
		{Category: "network_info", Field: "signal_strength.rsrq", Value: "-11"},
		{Category: "network_info", Field: "network_type", Value: "5G"},
	}
	r := Build("text", matches, nil, nil)

	sig, ok := r.StructuredData.NetworkInfo["signal_strength"].(map[string]any)
	if !ok {
		t.Fatalf("signal_strength missing or wrong type: %+v", r.StructuredData.NetworkInfo)
	}
	if sig["rsrp"] != "-89" || sig["rsrq"] != "-11" {
		t.Errorf("nested values: %+v", sig)
	}
	if r.StructuredData.NetworkInfo["network_type"] != "5G" {
		t.Errorf("network_type: %+v", r.StructuredData.NetworkInfo["network_type"])
	}
}

func TestBuildNormalizesUnits(t *testing.T) {
	matches := []extract.Match{
		{Category: "speed_test", Field: "ping", Value: "23"},
		{Category: "speed_test", Field: "download", Value: "85.6"},
		{Category: "speed_test", Field: "upload", Value: "12.3Mbps"},
	}
	r := Build("", matches, nil, nil)

	st := r.StructuredData.SpeedTest
	if st["ping"] != "23ms" {
		t.Errorf("ping: got %v, want 23ms", st["ping"])
	}
	if st["download"] != "85.6Mbps" {
		t.Errorf("download: got %v, want 85.6Mbps", st["download"])
	}
	if st["upload"] != "12.3Mbps" {
		t.Errorf("upload must not get a second suffix: got %v", st["upload"])
	}
}

func TestBuildActiveOperatorFromClassifier(t *testing.T) {
	operators := []string{"中国联通", "中国移动"}
	activations := []vision.Activation{
		activation("中国联通", vision.StatusActive, vision.LevelHigh),
		activation("中国移动", vision.StatusInactive, vision.LevelMedium),
	}
	r := Build("", nil, operators, activations)

	if r.StructuredData.SpeedTest["active_operator"] != "中国联通" {
		t.Errorf("active_operator: %v", r.StructuredData.SpeedTest["active_operator"])
	}

	states, ok := r.StructuredData.SpeedTest["available_operators"].([]OperatorState)
	if !ok {
		t.Fatalf("available_operators missing: %+v", r.StructuredData.SpeedTest)
	}
	if len(states) != 2 || states[0].Name != "中国联通" || states[1].Name != "中国移动" {
		t.Errorf("state order: %+v", states)
	}
	if states[0].Status != vision.StatusActive || states[0].BrightnessLevel != vision.LevelHigh {
		t.Errorf("first state: %+v", states[0])
	}
}

func TestBuildActiveOperatorSingleMentionFallback(t *testing.T) {
	// No classifier winner, but the text mentions exactly one operator.
	operators := []string{"中国电信"}
	activations := []vision.Activation{
		activation("中国电信", vision.StatusInactive, vision.LevelLow),
	}
	r := Build("", nil, operators, activations)

	if r.StructuredData.SpeedTest["active_operator"] != "中国电信" {
		t.Errorf("single-mention fallback: %v", r.StructuredData.SpeedTest["active_operator"])
	}
}

func TestBuildActiveOperatorAbsentWhenAmbiguous(t *testing.T) {
	operators := []string{"中国联通", "中国移动"}
	activations := []vision.Activation{
		activation("中国联通", vision.StatusInactive, vision.LevelMedium),
		activation("中国移动", vision.StatusInactive, vision.LevelMedium),
	}
	r := Build("", nil, operators, activations)

	if _, ok := r.StructuredData.SpeedTest["active_operator"]; ok {
		t.Error("active_operator must be absent with no winner and multiple mentions")
	}
}

func TestBuildEmptyMapsNotNull(t *testing.T) {
	r := Build("", nil, nil, nil)
	data, err := r.JSON(false)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte(`"network_info":{}`)) {
		t.Errorf("network_info must serialize as {}: %s", data)
	}
	if !bytes.Contains(data, []byte(`"speed_test":{}`)) {
		t.Errorf("speed_test must serialize as {}: %s", data)
	}
	if bytes.Contains(data, []byte("processing_info")) {
		t.Errorf("processing_info must be omitted when unset: %s", data)
	}
}

func TestBuildJSONIdempotent(t *testing.T) {
	matches := []extract.Match{
		{Category: "network_info", Field: "operator", Value: "中国移动"},
		{Category: "speed_test", Field: "ping", Value: "23"},
	}
	operators := []string{"中国移动"}
	activations := []vision.Activation{
		activation("中国移动", vision.StatusActive, vision.LevelHigh),
	}

	first, err := Build("raw", matches, operators, activations).JSON(true)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Build("raw", matches, operators, activations).JSON(true)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("same input must produce byte-identical output")
	}
}

func TestStatusAndLevelJSONEncoding(t *testing.T) {
	state := OperatorState{
		Name:            "中国广电",
		Status:          vision.StatusActive,
		BrightnessLevel: vision.LevelVeryHigh,
	}
	data, err := json.Marshal(state)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte(`"status":"active"`)) {
		t.Errorf("status encoding: %s", data)
	}
	if !bytes.Contains(data, []byte(`"brightness_level":"very_high"`)) {
		t.Errorf("level encoding: %s", data)
	}
}

func TestSummarize(t *testing.T) {
	activations := []vision.Activation{
		activation("a", vision.StatusActive, vision.LevelHigh),
		activation("b", vision.StatusInactive, vision.LevelLow),
		activation("c", vision.StatusInactive, vision.LevelLow),
	}
	info := Summarize(0.87, activations)

	if info.OCRConfidence != 0.87 {
		t.Errorf("confidence: %v", info.OCRConfidence)
	}
	if info.OperatorsDetected != 3 || info.ActiveRegions != 1 || info.InactiveRegions != 2 {
		t.Errorf("counts: %+v", info)
	}
	if !info.VisualAnalysisPerformed {
		t.Error("visual analysis flag should be set")
	}

	empty := Summarize(0, nil)
	if empty.VisualAnalysisPerformed {
		t.Error("flag must be false with no activations")
	}
}

package main

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestFoldReportJSONKeepsZeroAngle(t *testing.T) {
	// A perfectly vertical fold measures an angle and slope of exactly
	// zero; the JSON report must still carry them.
	r := foldReport{
		File:      "spread.png",
		Present:   true,
		Kind:      "fitted",
		Side:      "center",
		X:         200.5,
		Angle:     0,
		AngleKind: "measured",
		Slope:     0,
		Intercept: 200.5,
	}

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	got := string(data)
	for _, want := range []string{`"angle":0`, `"slope":0`, `"angle_kind":"measured"`} {
		if !strings.Contains(got, want) {
			t.Errorf("report JSON missing %s: %s", want, got)
		}
	}
}

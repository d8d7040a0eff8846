package main

import (
	"path/filepath"
	"testing"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		path, suffix, outDir, want string
	}{
		{"scans/page01.png", "left", "", filepath.Join("scans", "page01_left.png")},
		{"scans/page01.jpeg", "right", "", filepath.Join("scans", "page01_right.jpeg")},
		{"page01.png", "single", "out", filepath.Join("out", "page01_single.png")},
		{"scans/noext", "left", "", filepath.Join("scans", "noext_left.png")},
	}

	for _, tt := range tests {
		splitOutDir = tt.outDir
		if got := outputPath(tt.path, tt.suffix); got != tt.want {
			t.Errorf("outputPath(%q, %q) = %q, want %q", tt.path, tt.suffix, got, tt.want)
		}
	}
	splitOutDir = ""
}

package model

import (
	"fmt"
	"strings"
)

// Side indicates where the fold is expected to sit within the spread.
type Side int

const (
	// SideAuto requests automatic side detection from global brightness.
	SideAuto Side = iota
	// SideLeft places the fold in the left fifth of the image.
	SideLeft
	// SideRight places the fold in the right fifth of the image.
	SideRight
	// SideCenter places the fold in the central band of the image,
	// the common case for symmetric double-page scans.
	SideCenter
)

// String returns the lowercase name of the side.
func (s Side) String() string {
	switch s {
	case SideAuto:
		return "auto"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideCenter:
		return "center"
	}
	return fmt.Sprintf("Side(%d)", int(s))
}

// ParseSide parses a side name, case-insensitively. Accepted values are
// "auto", "left", "right" and "center".
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return SideAuto, nil
	case "left":
		return SideLeft, nil
	case "right":
		return SideRight, nil
	case "center", "centre":
		return SideCenter, nil
	}
	return SideAuto, fmt.Errorf("unknown side %q (want auto, left, right or center)", s)
}

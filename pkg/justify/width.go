package justify

import (
	"github.com/mattn/go-runewidth"
)

// Mode selects how the width of a string is measured.
type Mode int

const (
	// ModeLength measures UTF-8 code units, i.e. len(s).
	ModeLength Mode = iota
	// ModeCells measures terminal display cells: 2 for wide East Asian
	// runes, 0 for combining marks, 1 otherwise.
	ModeCells
)

// cells is a locale-independent condition; ambiguous-width runes are narrow.
var cells = runewidth.NewCondition()

// String returns the mode name used in flags and logs.
func (m Mode) String() string {
	switch m {
	case ModeLength:
		return "length"
	case ModeCells:
		return "cells"
	default:
		return "unknown"
	}
}

// Width returns the width of s in mode m.
func (m Mode) Width(s string) int {
	if m != ModeCells {
		return len(s)
	}
	w := 0
	for _, r := range s {
		w += cells.RuneWidth(r)
	}
	return w
}

package justify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModeWidth(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		length int
		cells  int
	}{
		{name: "ascii", text: "abc", length: 3, cells: 3},
		{name: "empty", text: "", length: 0, cells: 0},
		{name: "kanji", text: "日本", length: 6, cells: 4},
		{name: "hangul", text: "한", length: 3, cells: 2},
		{name: "combining acute", text: "e\u0301", length: 3, cells: 1},
		{name: "katakana and latin", text: "テAAス", length: 8, cells: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.length, ModeLength.Width(tt.text))
			assert.Equal(t, tt.cells, ModeCells.Width(tt.text))
		})
	}
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "length", ModeLength.String())
	assert.Equal(t, "cells", ModeCells.String())
	assert.Equal(t, "unknown", Mode(7).String())
}

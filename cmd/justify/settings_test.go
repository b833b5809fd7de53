package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younsl/justify/pkg/justify"
)

func defaultOptions() options {
	return options{newline: `\n`, hyphen: "-", separator: `\n\n`}
}

func TestParseWidth(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected int
	}{
		{name: "no args keeps width", args: nil, expected: 72},
		{name: "integer", args: []string{"40"}, expected: 40},
		{name: "unparsable resets to default", args: []string{"wide"}, expected: 80},
		{name: "last wins", args: []string{"40", "60"}, expected: 60},
		{name: "unparsable after integer", args: []string{"40", "x"}, expected: 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseWidth(tt.args, 72))
		})
	}
}

func TestUnescape(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{in: `\n`, expected: "\n"},
		{in: `\r\n`, expected: "\r\n"},
		{in: `\n--\n`, expected: "\n--\n"},
		{in: "-", expected: "-"},
		{in: "", expected: ""},
		{in: `"\t"`, expected: "\"\t\""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := unescape(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := unescape(`\q`)
	assert.Error(t, err)
}

func TestOptionsSettings(t *testing.T) {
	noTerminal := func() (int, bool) { return 0, false }
	terminal := func() (int, bool) { return 132, true }

	t.Run("defaults", func(t *testing.T) {
		s, err := defaultOptions().settings(nil, noTerminal)
		require.NoError(t, err)

		assert.Equal(t, 80, s.Width)
		assert.Equal(t, justify.ModeLength, s.Mode)
		assert.Equal(t, justify.Balanced, s.InsertAt)
		assert.Equal(t, "\n", s.Newline)
		assert.Equal(t, "-", s.Hyphen)
		assert.Equal(t, "\n\n", s.Separator)
		assert.False(t, s.JustifyLastLine)
		assert.False(t, s.HyphenateOverflow)
		assert.False(t, s.IgnoreSpaces)
	})

	t.Run("flags", func(t *testing.T) {
		o := defaultOptions()
		o.cells, o.justifyLast, o.hyphenate, o.ignoreSpaces, o.right = true, true, true, true, true
		o.hyphen = ""

		s, err := o.settings([]string{"20"}, noTerminal)
		require.NoError(t, err)

		assert.Equal(t, 20, s.Width)
		assert.Equal(t, justify.ModeCells, s.Mode)
		assert.Equal(t, justify.Right, s.InsertAt)
		assert.Equal(t, "", s.Hyphen)
		assert.True(t, s.JustifyLastLine)
		assert.True(t, s.HyphenateOverflow)
		assert.True(t, s.IgnoreSpaces)
	})

	t.Run("left", func(t *testing.T) {
		o := defaultOptions()
		o.left = true

		s, err := o.settings(nil, noTerminal)
		require.NoError(t, err)
		assert.Equal(t, justify.Left, s.InsertAt)
	})

	t.Run("auto width", func(t *testing.T) {
		o := defaultOptions()
		o.autoWidth = true

		s, err := o.settings(nil, terminal)
		require.NoError(t, err)
		assert.Equal(t, 132, s.Width)

		s, err = o.settings([]string{"50"}, terminal)
		require.NoError(t, err)
		assert.Equal(t, 50, s.Width, "positional width wins over terminal width")

		s, err = o.settings(nil, noTerminal)
		require.NoError(t, err)
		assert.Equal(t, 80, s.Width)
	})

	t.Run("crlf", func(t *testing.T) {
		o := defaultOptions()
		o.newline, o.separator = `\r\n`, `\r\n\r\n`

		s, err := o.settings(nil, noTerminal)
		require.NoError(t, err)
		assert.Equal(t, "\r\n", s.Newline)
		assert.Equal(t, "\r\n\r\n", s.Separator)
	})

	t.Run("zero width is rejected", func(t *testing.T) {
		_, err := defaultOptions().settings([]string{"0"}, noTerminal)
		assert.ErrorIs(t, err, justify.ErrInvalidSettings)
	})

	t.Run("hyphen wider than width is rejected", func(t *testing.T) {
		o := defaultOptions()
		o.hyphenate = true

		_, err := o.settings([]string{"1"}, noTerminal)
		assert.ErrorIs(t, err, justify.ErrInvalidSettings)
	})

	t.Run("bad escape", func(t *testing.T) {
		o := defaultOptions()
		o.separator = `\z`

		_, err := o.settings(nil, noTerminal)
		assert.ErrorContains(t, err, "separator")
	})
}

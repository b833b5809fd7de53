package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/younsl/justify/pkg/justify"
)

// options holds the parsed command line flags.
type options struct {
	cells        bool
	justifyLast  bool
	hyphenate    bool
	ignoreSpaces bool
	left         bool
	right        bool
	autoWidth    bool

	newline   string
	hyphen    string
	separator string

	file        string
	stats       bool
	progress    bool
	verbose     bool
	showVersion bool
}

// widthFunc reports the terminal width, or false when there is no terminal.
type widthFunc func() (int, bool)

// parseWidth applies positional arguments in order: an integer sets the
// width, anything else resets it to the default. The last argument wins.
func parseWidth(args []string, width int) int {
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			n = justify.DefaultWidth
		}
		width = n
	}
	return width
}

// unescape interprets backslash escapes such as \n, \r\n or \t.
func unescape(s string) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}
	u, err := strconv.Unquote(`"` + strings.ReplaceAll(s, `"`, `\"`) + `"`)
	if err != nil {
		return "", fmt.Errorf("invalid escape sequence in %q: %w", s, err)
	}
	return u, nil
}

// settings converts the flags and positional arguments into justify settings.
func (o options) settings(args []string, termWidth widthFunc) (justify.Settings, error) {
	s := justify.DefaultSettings()

	// Width: positional argument, then terminal width, then default
	if o.autoWidth && termWidth != nil {
		if w, ok := termWidth(); ok && w > 0 {
			s.Width = w
		}
	}
	s.Width = parseWidth(args, s.Width)

	if o.cells {
		s.Mode = justify.ModeCells
	}
	s.JustifyLastLine = o.justifyLast
	s.HyphenateOverflow = o.hyphenate
	s.IgnoreSpaces = o.ignoreSpaces

	switch {
	case o.left:
		s.InsertAt = justify.Left
	case o.right:
		s.InsertAt = justify.Right
	}

	var err error
	if s.Newline, err = unescape(o.newline); err != nil {
		return s, fmt.Errorf("newline: %w", err)
	}
	if s.Hyphen, err = unescape(o.hyphen); err != nil {
		return s, fmt.Errorf("hyphen: %w", err)
	}
	if s.Separator, err = unescape(o.separator); err != nil {
		return s, fmt.Errorf("separator: %w", err)
	}

	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

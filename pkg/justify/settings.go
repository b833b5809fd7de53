package justify

import (
	"fmt"
	"strings"
)

// Default values used by DefaultSettings
const (
	DefaultWidth     = 80
	DefaultNewline   = "\n"
	DefaultHyphen    = "-"
	DefaultSeparator = "\n\n"
)

// Settings controls Justify and Paragraph.
type Settings struct {
	// Width is the target line width, in units of Mode.
	Width int
	// Mode selects how widths are measured.
	Mode Mode
	// JustifyLastLine pads the last line of each paragraph as well.
	// Lines with very few words can look odd.
	JustifyLastLine bool
	// HyphenateOverflow splits words wider than Width into hyphenated chunks.
	HyphenateOverflow bool
	// IgnoreSpaces is meant for scripts without word-delimiting spaces
	// (Thai, Japanese) together with HyphenateOverflow: the hyphenator alone
	// fits lines and no spaces are inserted.
	IgnoreSpaces bool
	// InsertAt picks the gaps that receive padding. Nil means Balanced.
	InsertAt Placement
	// Newline separates output lines and input paragraphs, e.g. "\r\n".
	Newline string
	// Hyphen is appended to every chunk but the last of a hyphenated word.
	Hyphen string
	// Separator is placed between paragraphs by Justify.
	Separator string
}

// DefaultSettings returns 80-column, balanced, byte-length settings.
func DefaultSettings() Settings {
	return Settings{
		Width:     DefaultWidth,
		Mode:      ModeLength,
		InsertAt:  Balanced,
		Newline:   DefaultNewline,
		Hyphen:    DefaultHyphen,
		Separator: DefaultSeparator,
	}
}

// Validate reports settings that would make justification underflow or
// loop forever.
func (s Settings) Validate() error {
	if s.Width < 1 {
		return fmt.Errorf("%w: width must be positive, got %d", ErrInvalidSettings, s.Width)
	}
	if s.Newline == "" {
		return fmt.Errorf("%w: newline must not be empty", ErrInvalidSettings)
	}
	if s.Mode != ModeLength && s.Mode != ModeCells {
		return fmt.Errorf("%w: unknown measurement mode %d", ErrInvalidSettings, int(s.Mode))
	}
	if s.HyphenateOverflow {
		if hw := s.Mode.Width(s.Hyphen); s.Width <= hw {
			return fmt.Errorf("%w: width %d leaves no room for hyphen %q (width %d)",
				ErrInvalidSettings, s.Width, s.Hyphen, hw)
		}
	}
	return nil
}

func (s Settings) placement() Placement {
	if s.InsertAt == nil {
		return Balanced
	}
	return s.InsertAt
}

// hasLineBreak reports whether text holds a literal "\n" or the configured newline.
func (s Settings) hasLineBreak(text string) bool {
	return strings.Contains(text, "\n") || (s.Newline != "" && strings.Contains(text, s.Newline))
}

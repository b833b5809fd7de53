package justify

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Hyphenate splits every unit wider than s.Width into chunks of at most
// s.Width minus the hyphen width, appending s.Hyphen to all chunks but the
// last. Units are the words of the whole text, reassembled with single
// spaces (so line breaks do not survive), or, with s.IgnoreSpaces, whole
// lines joined by s.Newline.
func Hyphenate(text string, s Settings) (string, error) {
	s.HyphenateOverflow = true
	if err := s.Validate(); err != nil {
		return "", err
	}
	return hyphenate(text, s), nil
}

func hyphenate(text string, s Settings) string {
	if s.IgnoreSpaces {
		return hyphenateUnits(strings.Split(text, s.Newline), s.Newline, s)
	}
	// word mode joins everything, newlines included, with single spaces
	return hyphenateUnits(strings.Fields(text), " ", s)
}

func hyphenateUnits(units []string, joiner string, s Settings) string {
	var b strings.Builder
	for i, u := range units {
		if i > 0 {
			b.WriteString(joiner)
		}
		if s.Mode.Width(u) <= s.Width {
			b.WriteString(u)
			continue
		}
		chunks := chunk(u, s.Width-s.Mode.Width(s.Hyphen), s.Mode)
		for j, c := range chunks {
			if j > 0 {
				b.WriteString(joiner)
			}
			b.WriteString(c)
			if j < len(chunks)-1 {
				b.WriteString(s.Hyphen)
			}
		}
	}
	return b.String()
}

// chunk greedily splits u into grapheme-aligned pieces no wider than budget.
// A single cluster wider than budget becomes a piece of its own.
func chunk(u string, budget int, m Mode) []string {
	var (
		chunks []string
		start  int
		w      int
	)
	g := uniseg.NewGraphemes(u)
	for g.Next() {
		from, _ := g.Positions()
		cw := m.Width(g.Str())
		if w+cw > budget && from > start {
			chunks = append(chunks, u[start:from])
			start, w = from, 0
		}
		w += cw
	}
	return append(chunks, u[start:])
}

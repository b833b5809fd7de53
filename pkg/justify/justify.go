package justify

import (
	"fmt"
	"slices"
	"strings"
)

// Paragraph justifies a single paragraph. It fails with ErrInvalidInput if
// text contains "\n" or s.Newline.
func Paragraph(text string, s Settings) (string, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}
	return paragraph(text, s)
}

func paragraph(text string, s Settings) (string, error) {
	if s.hasLineBreak(text) {
		return "", fmt.Errorf("%w: paragraph contains a line break", ErrInvalidInput)
	}

	tokens := slices.Collect(Tokens(text))
	if len(tokens) == 0 {
		return "", nil
	}
	lines := Lines(tokens, Breaks(tokens, s.Width, s.Mode))

	out := make([]string, 0, len(lines))
	for i, line := range lines {
		if i == len(lines)-1 && !s.JustifyLastLine {
			out = append(out, strings.Join(line, ""))
			break
		}
		if s.IgnoreSpaces {
			out = append(out, joinWords(line))
			continue
		}
		l, err := Distribute(line, padding(line, s.Width, s.Mode), s.placement())
		if err != nil {
			return "", fmt.Errorf("line %d: %w", i+1, err)
		}
		out = append(out, l)
	}
	return strings.Join(out, s.Newline), nil
}

// Justify justifies every paragraph of text. Paragraphs are separated by
// s.Newline on input and by s.Separator on output; blank lines are dropped.
//
// With s.IgnoreSpaces the (optionally hyphenated) text is returned as is:
// the hyphenator is the only line-fitting step in that mode.
func Justify(text string, s Settings) (string, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}
	if s.HyphenateOverflow {
		text = hyphenate(text, s)
	}
	if s.IgnoreSpaces {
		return text, nil
	}

	var out []string
	for i, p := range strings.Split(text, s.Newline) {
		if isBlank(p) {
			continue
		}
		j, err := paragraph(p, s)
		if err != nil {
			return "", fmt.Errorf("paragraph %d: %w", i+1, err)
		}
		out = append(out, j)
	}
	return strings.Join(out, s.Separator), nil
}

// joinWords separates the words of line by exactly one space.
func joinWords(line []string) string {
	words := make([]string, len(line))
	for i, tok := range line {
		words[i] = tok[:len(tok)-trailingSpace(tok)]
	}
	return strings.Join(words, " ")
}

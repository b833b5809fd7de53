package justify

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokens splits a newline-free string into words that keep at most one
// trailing whitespace rune. Runs of whitespace collapse onto the preceding
// word, so "a  b" yields "a " and "b".
func Tokens(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		start := 0
		for i, r := range text {
			if !unicode.IsSpace(r) {
				continue
			}
			end := i + utf8.RuneLen(r)
			if tok := text[start:end]; !isBlank(tok) {
				if !yield(tok) {
					return
				}
			}
			start = end
		}
		if start < len(text) {
			yield(text[start:])
		}
	}
}

func isBlank(s string) bool {
	return strings.TrimFunc(s, unicode.IsSpace) == ""
}

// trailingSpace returns the byte length of the whitespace rune ending tok,
// or 0 if tok does not end in whitespace.
func trailingSpace(tok string) int {
	r, size := utf8.DecodeLastRuneInString(tok)
	if size == 0 || !unicode.IsSpace(r) {
		return 0
	}
	return size
}

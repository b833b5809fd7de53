// Package justify reflows plain text into fixed-width lines for terminal
// display.
//
// Text is split into tokens (a word plus at most one trailing whitespace
// rune), tokens are grouped into lines no wider than Settings.Width, and the
// missing width of each line is inserted into its inter-word gaps according
// to a Placement. Words wider than the target can optionally be hyphenated
// first. Widths are measured in UTF-8 code units or, with ModeCells, in
// terminal display cells.
//
// All functions are pure: a Settings value may be shared between goroutines
// and nothing is cached between calls.
package justify

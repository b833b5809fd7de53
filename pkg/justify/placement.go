package justify

import (
	"fmt"
	"strings"
)

// Placement decides which gaps of a line receive padding spaces. The set of
// placements is closed: Left, Right, Balanced, or a Custom function.
type Placement interface {
	// gaps returns how many spaces each of the len(line)-1 gaps receives.
	gaps(line []string, add int) ([]int, error)
}

// PlaceFunc picks the gap for one padding space. It receives the 0-based
// index of the space being placed, the total number of spaces to place, the
// number of gaps and the line itself, and returns a gap index in
// [0, gaps). It must be deterministic and free of side effects.
type PlaceFunc func(unit, total, gaps int, line []string) int

type cyclic int

const (
	left cyclic = iota
	right
	balanced
)

var (
	// Left fills gaps from the left on every pass.
	Left Placement = left
	// Right fills gaps from the right on every pass.
	Right Placement = right
	// Balanced alternates between the ends: with five gaps the spaces go to
	// gaps 1, 5, 2, 4, 3, 1, 5, ...
	Balanced Placement = balanced
)

func (c cyclic) gaps(line []string, add int) ([]int, error) {
	n := len(line) - 1
	counts := make([]int, n)
	for u := 0; u < add; u++ {
		j := u % n
		switch c {
		case left:
			counts[j]++
		case right:
			counts[n-1-j]++
		case balanced:
			// j is 0-based here; even j counts from the left
			if j%2 == 0 {
				counts[j/2]++
			} else {
				counts[n-1-j/2]++
			}
		}
	}
	return counts, nil
}

func (c cyclic) String() string {
	switch c {
	case left:
		return "left"
	case right:
		return "right"
	default:
		return "balanced"
	}
}

type custom PlaceFunc

// Custom returns a Placement that asks fn for the gap of every space.
func Custom(fn PlaceFunc) Placement {
	return custom(fn)
}

func (f custom) gaps(line []string, add int) ([]int, error) {
	n := len(line) - 1
	counts := make([]int, n)
	for u := 0; u < add; u++ {
		g := f(u, add, n, line)
		if g < 0 || g >= n {
			return nil, fmt.Errorf("%w: gap %d of %d for space %d", ErrInvalidPlacement, g, n, u)
		}
		counts[g]++
	}
	return counts, nil
}

func (custom) String() string { return "custom" }

// Distribute joins line with add extra spaces spread over its gaps by p.
// Lines of zero or one token are returned concatenated.
func Distribute(line []string, add int, p Placement) (string, error) {
	if len(line) < 2 {
		return strings.Join(line, ""), nil
	}
	if p == nil {
		p = Balanced
	}
	counts, err := p.gaps(line, add)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	size := add
	for _, tok := range line {
		size += len(tok)
	}
	b.Grow(size)
	for i, tok := range line {
		b.WriteString(tok)
		if i < len(counts) {
			b.WriteString(strings.Repeat(" ", counts[i]))
		}
	}
	return b.String(), nil
}

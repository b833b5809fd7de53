package justify

// Breaks returns the indices of the tokens that start a line, beginning
// with 0. A trailing whitespace rune does not count towards the overflow
// check, so a line that fits exactly is not broken early.
func Breaks(tokens []string, width int, m Mode) []int {
	breaks := make([]int, 1, len(tokens)/4+1)
	n := 0
	for i, tok := range tokens {
		if tok == "" {
			continue
		}
		w := m.Width(tok)
		c := n + w
		if ts := trailingSpace(tok); ts > 0 {
			c -= m.Width(tok[len(tok)-ts:])
		}
		// i == 0 never breaks: there is nothing before it to move down
		if c > width && i > 0 {
			breaks = append(breaks, i)
			n = w
			continue
		}
		n += w
	}
	return breaks
}

// Lines slices tokens at breaks. The final token of every line except the
// last loses its trailing whitespace rune.
func Lines(tokens []string, breaks []int) [][]string {
	lines := make([][]string, 0, len(breaks))
	for i, start := range breaks {
		end := len(tokens)
		last := i == len(breaks)-1
		if !last {
			end = breaks[i+1]
		}
		line := append([]string(nil), tokens[start:end]...)
		if len(line) == 0 {
			continue
		}
		if !last {
			tail := line[len(line)-1]
			line[len(line)-1] = tail[:len(tail)-trailingSpace(tail)]
		}
		lines = append(lines, line)
	}
	return lines
}

// padding returns how many spaces line needs to reach width, never negative.
func padding(line []string, width int, m Mode) int {
	w := 0
	for _, tok := range line {
		w += m.Width(tok)
	}
	if w >= width {
		return 0
	}
	return width - w
}

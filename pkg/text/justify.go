package text

import (
	"strings"
)

// JustifyString widens the interior spaces of line so that it is exactly width
// characters long.
//
// Every space between the first and last non-space character is a gap.
// With deficit = width - len(line), each gap receives deficit/gaps extra
// spaces and the first deficit%gaps gaps, counted left to right, receive one
// more. Lines without gaps, or already at least width long, are returned
// unchanged.
func JustifyString(line string, width int) string {
	cs := Chars(line)
	deficit := width - len(cs)
	if deficit <= 0 {
		return line
	}

	first, last := -1, -1
	for i, c := range cs {
		if c != " " {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		return line
	}

	gaps := 0
	for _, c := range cs[first:last] {
		if c == " " {
			gaps++
		}
	}
	if gaps == 0 {
		return line
	}

	base, extra := deficit/gaps, deficit%gaps
	var b strings.Builder
	b.Grow(len(line) + deficit)
	gap := 0
	for i, c := range cs {
		b.WriteString(c)
		if c != " " || i <= first || i >= last {
			continue
		}
		n := base
		if gap < extra {
			n++
		}
		b.WriteString(strings.Repeat(" ", n))
		gap++
	}
	return b.String()
}

// JustifyLine justifies the plain part of l so that the whole line, faded
// segment included, is width characters long.
func JustifyLine(l Line, width int) Line {
	return Line{Text: JustifyString(l.Text, width-Len(l.Faded)), Faded: l.Faded}
}

// JustifyAll justifies every line of w to width.
func JustifyAll(w Wrapped, width int) Wrapped {
	out := make(Wrapped, len(w))
	for i, l := range w {
		out[i] = JustifyLine(l, width)
	}
	return out
}

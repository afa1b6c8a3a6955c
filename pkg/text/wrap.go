package text

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/matzehuels/cellkit/pkg/errors"
)

const (
	// EllipsisGlyph replaces the last visible character of an ellipsized line.
	EllipsisGlyph = "…"

	// DefaultFadeLength is the number of trailing characters marked as faded.
	DefaultFadeLength = 1

	// MaxWrapChunks bounds the number of chunks a single logical line may
	// be cut into.
	MaxWrapChunks = 10000
)

// Line is one output line. Faded holds the trailing segment the renderer
// should draw dimmed; it is empty for plain lines.
type Line struct {
	Text  string `json:"text"`
	Faded string `json:"faded,omitempty"`
}

// String returns the full line content.
func (l Line) String() string { return l.Text + l.Faded }

// Len returns the line length in characters.
func (l Line) Len() int { return Len(l.Text) + Len(l.Faded) }

// Wrapped is an ordered sequence of output lines.
type Wrapped []Line

// Width returns the length of the longest line.
func (w Wrapped) Width() int {
	widest := 0
	for _, l := range w {
		widest = max(widest, l.Len())
	}
	return widest
}

// Strings returns the lines as plain strings.
func (w Wrapped) Strings() []string {
	out := make([]string, len(w))
	for i, l := range w {
		out[i] = l.String()
	}
	return out
}

// Len returns the number of characters (grapheme clusters) in s.
func Len(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// Chars splits s into characters (grapheme clusters).
func Chars(s string) []string {
	out := make([]string, 0, len(s))
	state := -1
	var cluster string
	for s != "" {
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		out = append(out, cluster)
	}
	return out
}

// Wrap shapes content into lines of at most width characters.
//
// Without soft wrap the content is one line: if it is longer than width it
// is cut to width and the overflow policy applies to the cut line. With soft
// wrap every explicit line break starts a new logical line, and each logical
// line is chunked into pieces of exactly width characters; only the final
// output line is checked against the overflow policy.
//
// A non-positive width or height yields no lines.
func Wrap(content string, width, height int, softWrap bool, overflow Overflow, fadeLength int) (Wrapped, error) {
	if width <= 0 || height <= 0 {
		return Wrapped{}, nil
	}

	if !softWrap {
		cs := Chars(content)
		if len(cs) <= width || overflow == Visible {
			return Wrapped{{Text: content}}, nil
		}
		return Wrapped{truncate(cs[:width], overflow, fadeLength)}, nil
	}

	var lines Wrapped
	for _, logical := range splitLines(content) {
		chunks, err := chunk(logical, width)
		if err != nil {
			return nil, err
		}
		for _, c := range chunks {
			lines = append(lines, Line{Text: c})
		}
	}

	last := Chars(lines[len(lines)-1].Text)
	if len(last) >= width && overflow != Visible {
		lines[len(lines)-1] = truncate(last[:width], overflow, fadeLength)
	}
	return lines, nil
}

// lineBreaks maps every explicit line break to "\n": LF, CR, CRLF, VT, FF,
// the file/group/record separators, NEL and the Unicode line and paragraph
// separators.
var lineBreaks = strings.NewReplacer(
	"\r\n", "\n",
	"\r", "\n",
	"\v", "\n",
	"\f", "\n",
	"\x1c", "\n",
	"\x1d", "\n",
	"\x1e", "\n",
	"\u0085", "\n",
	"\u2028", "\n",
	"\u2029", "\n",
)

// splitLines splits on explicit line breaks. A trailing break does not
// start an extra empty line; empty content is one empty line.
func splitLines(content string) []string {
	lines := strings.Split(lineBreaks.Replace(content), "\n")
	if len(lines) > 1 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// chunk cuts one logical line into consecutive pieces of width characters.
// An empty line yields one empty chunk.
func chunk(line string, width int) ([]string, error) {
	cs := Chars(line)
	if len(cs) == 0 {
		return []string{""}, nil
	}
	n := (len(cs) + width - 1) / width
	if n > MaxWrapChunks {
		return nil, errors.Wrap(errors.ErrCodeWrapOverflow,
			&errors.WrapOverflowError{Width: width, Limit: MaxWrapChunks},
			"line of %d characters is too long to wrap", len(cs))
	}

	out := make([]string, 0, n)
	for i := 0; i < len(cs); i += width {
		out = append(out, strings.Join(cs[i:min(i+width, len(cs))], ""))
	}
	return out, nil
}

// truncate applies an overflow policy to a line already cut to width.
func truncate(cs []string, overflow Overflow, fadeLength int) Line {
	switch overflow {
	case Ellipsis:
		if len(cs) == 0 {
			return Line{}
		}
		return Line{Text: strings.Join(cs[:len(cs)-1], "") + EllipsisGlyph}
	case Fade:
		n := min(max(fadeLength, 0), len(cs))
		return Line{
			Text:  strings.Join(cs[:len(cs)-n], ""),
			Faded: strings.Join(cs[len(cs)-n:], ""),
		}
	}
	return Line{Text: strings.Join(cs, "")}
}

// LimitLines cuts w to maxLines lines. When lines were dropped the overflow
// policy is applied to the new last line so the cut stays visible: a full
// line is truncated as usual, a shorter line gets the ellipsis appended or
// its tail faded. A non-positive maxLines leaves w unchanged.
func LimitLines(w Wrapped, maxLines, width int, overflow Overflow, fadeLength int) Wrapped {
	if maxLines <= 0 || len(w) <= maxLines {
		return w
	}
	w = append(Wrapped(nil), w[:maxLines]...)
	if overflow == Visible || overflow == Clip {
		return w
	}

	cs := Chars(w[maxLines-1].String())
	if len(cs) >= width {
		w[maxLines-1] = truncate(cs[:width], overflow, fadeLength)
		return w
	}
	if overflow == Ellipsis {
		w[maxLines-1] = Line{Text: strings.Join(cs, "") + EllipsisGlyph}
		return w
	}
	w[maxLines-1] = truncate(cs, overflow, fadeLength)
	return w
}

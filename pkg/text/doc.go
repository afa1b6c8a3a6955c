// Package text wraps, truncates and justifies text into fixed-width lines.
//
// # Overview
//
// The shaper works in characters, where one character is one grapheme
// cluster (so "é" written as e + combining accent counts once). Wrapping is
// by character count, not by word boundary: a long logical line is cut into
// consecutive chunks of exactly the target width.
//
//	lines, err := text.Wrap("This is long example text for overflow testing.", 20, 5, true, text.Clip, 1)
//	// 3 lines: 20, 20 and 7 characters
//
// # Overflow
//
// When a line does not fit, an [Overflow] policy decides what is shown:
//
//   - [Clip]: cut at the width
//   - [Ellipsis]: cut at the width and replace the last character with "…"
//   - [Fade]: cut at the width and mark the trailing characters as faded
//   - [Visible]: leave the line as it is
//
// A faded line is a [Line] with a non-empty Faded segment. The marker is a
// presentation hint for the renderer; layout treats the line as plain text.
//
// # Justification
//
// [JustifyString] widens the interior spaces of a line so the line fills the width
// exactly. It is applied per line after wrapping when a [Run] is justified.
//
// # Errors
//
// A logical line that would need more than [MaxWrapChunks] chunks fails with
// a WRAP_OVERFLOW error instead of doing unbounded work; the caller should
// disable soft wrap or pre-break the input.
package text

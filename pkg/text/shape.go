package text

// Shape runs the full shaping pipeline for r at the given box size: spacing,
// wrapping, the line limit and, for justified runs, justification.
func Shape(r Run, width, height, fadeLength int) (Wrapped, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	content := ApplySpacing(r.Content, r.Style.LetterSpacing, r.Style.WordSpacing)
	lines, err := Wrap(content, width, height, r.SoftWrap, r.Overflow, fadeLength)
	if err != nil {
		return nil, err
	}
	lines = LimitLines(lines, r.MaxLines, width, r.Overflow, fadeLength)
	if r.Align == Justify {
		lines = JustifyAll(lines, width)
	}
	return lines, nil
}

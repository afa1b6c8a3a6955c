package text

import (
	"strings"
	"unicode"
)

// ApplySpacing widens content by its style's word and letter spacing.
//
// Each space becomes word spaces (zero keeps one space), then letter spaces
// are inserted between every two adjacent non-space characters.
func ApplySpacing(content string, letter, word int) string {
	if word > 1 {
		content = strings.ReplaceAll(content, " ", strings.Repeat(" ", word))
	}
	if letter <= 0 {
		return content
	}

	cs := Chars(content)
	pad := strings.Repeat(" ", letter)
	var b strings.Builder
	b.Grow(len(content) + len(cs)*letter)
	for i, c := range cs {
		b.WriteString(c)
		if i+1 < len(cs) && !isSpace(c) && !isSpace(cs[i+1]) {
			b.WriteString(pad)
		}
	}
	return b.String()
}

func isSpace(c string) bool {
	for _, r := range c {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return c != ""
}

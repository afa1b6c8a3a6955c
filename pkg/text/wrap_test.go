package text

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/matzehuels/cellkit/pkg/errors"
)

func TestWrapNoSoftWrap(t *testing.T) {
	const long = "123456789123456789"
	tests := []struct {
		name     string
		content  string
		overflow Overflow
		want     Line
	}{
		{"ellipsis", long, Ellipsis, Line{Text: "123456789…"}},
		{"fade", long, Fade, Line{Text: "123456789", Faded: "1"}},
		{"clip", long, Clip, Line{Text: "1234567891"}},
		{"visible", long, Visible, Line{Text: long}},
		{"fits", "short", Ellipsis, Line{Text: "short"}},
		{"exact width", "0123456789", Ellipsis, Line{Text: "0123456789"}},
		{"empty", "", Clip, Line{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Wrap(tt.content, 10, 1, false, tt.overflow, DefaultFadeLength)
			if err != nil {
				t.Fatalf("Wrap() error = %v", err)
			}
			if len(got) != 1 {
				t.Fatalf("Wrap() returned %d lines, want 1", len(got))
			}
			if got[0] != tt.want {
				t.Errorf("Wrap() = %+v, want %+v", got[0], tt.want)
			}
		})
	}
}

func TestWrapEllipsisKeepsWidth(t *testing.T) {
	got, err := Wrap("123456789123456789", 10, 1, false, Ellipsis, DefaultFadeLength)
	if err != nil {
		t.Fatal(err)
	}
	if n := got[0].Len(); n != 10 {
		t.Errorf("line length = %d, want 10", n)
	}
	if !strings.HasSuffix(got[0].String(), EllipsisGlyph) {
		t.Errorf("line %q does not end in %q", got[0].String(), EllipsisGlyph)
	}
}

func TestWrapSoftWrap(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		width    int
		overflow Overflow
		want     []Line
	}{
		{
			name:    "character chunks",
			content: "This is long example text for overflow testing.",
			width:   20,
			want: []Line{
				{Text: "This is long example"},
				{Text: " text for overflow t"},
				{Text: "esting."},
			},
		},
		{
			name:    "line and paragraph separators",
			content: "ab\vcd\fef\x1cgh\u0085ij\u2028kl\u2029mn",
			width:   5,
			want: []Line{
				{Text: "ab"}, {Text: "cd"}, {Text: "ef"}, {Text: "gh"},
				{Text: "ij"}, {Text: "kl"}, {Text: "mn"},
			},
		},
		{
			name:    "crlf is one break",
			content: "ab\r\ncd\r\rx\x1d\x1ey",
			width:   5,
			want: []Line{
				{Text: "ab"}, {Text: "cd"}, {Text: ""}, {Text: "x"}, {Text: ""}, {Text: "y"},
			},
		},
		{
			name:     "full last line ellipsized",
			content:  "abcdefghij",
			width:    5,
			overflow: Ellipsis,
			want:     []Line{{Text: "abcde"}, {Text: "fghi…"}},
		},
		{
			name:     "full last line faded",
			content:  "abcdefghij",
			width:    5,
			overflow: Fade,
			want:     []Line{{Text: "abcde"}, {Text: "fghi", Faded: "j"}},
		},
		{
			name:     "full last line visible",
			content:  "abcdefghij",
			width:    5,
			overflow: Visible,
			want:     []Line{{Text: "abcde"}, {Text: "fghij"}},
		},
		{
			name:     "short last line untouched",
			content:  "abcdefg",
			width:    5,
			overflow: Ellipsis,
			want:     []Line{{Text: "abcde"}, {Text: "fg"}},
		},
		{
			name:    "explicit breaks",
			content: "ab\n\ncd\n",
			width:   5,
			want:    []Line{{Text: "ab"}, {Text: ""}, {Text: "cd"}},
		},
		{
			name:    "crlf breaks",
			content: "ab\r\ncd",
			width:   5,
			want:    []Line{{Text: "ab"}, {Text: "cd"}},
		},
		{
			name:    "empty content",
			content: "",
			width:   5,
			want:    []Line{{Text: ""}},
		},
		{
			name:    "grapheme clusters count once",
			content: "he\u0301llo",
			width:   3,
			want:    []Line{{Text: "he\u0301l"}, {Text: "lo"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Wrap(tt.content, tt.width, 10, true, tt.overflow, DefaultFadeLength)
			if err != nil {
				t.Fatalf("Wrap() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Wrap() = %q, want %d lines", got.Strings(), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestWrapEmptyBox(t *testing.T) {
	for _, size := range [][2]int{{0, 5}, {5, 0}, {-1, 3}} {
		got, err := Wrap("content", size[0], size[1], true, Clip, 1)
		if err != nil {
			t.Fatalf("Wrap(%v) error = %v", size, err)
		}
		if len(got) != 0 {
			t.Errorf("Wrap(%v) = %q, want no lines", size, got.Strings())
		}
	}
}

func TestWrapOverflow(t *testing.T) {
	content := strings.Repeat("x", MaxWrapChunks+1)
	_, err := Wrap(content, 1, 1, true, Clip, 1)
	if !errors.Is(err, errors.ErrCodeWrapOverflow) {
		t.Fatalf("Wrap() error = %v, want %v", err, errors.ErrCodeWrapOverflow)
	}
	var overflow *errors.WrapOverflowError
	if !stderrors.As(err, &overflow) {
		t.Fatalf("Wrap() error %v does not carry *WrapOverflowError", err)
	}
	if overflow.Width != 1 || overflow.Limit != MaxWrapChunks {
		t.Errorf("WrapOverflowError = %+v", overflow)
	}

	// Exactly at the bound is still allowed.
	if _, err := Wrap(content[1:], 1, 1, true, Clip, 1); err != nil {
		t.Errorf("Wrap() at bound error = %v", err)
	}
	// Without soft wrap there is no chunking.
	if _, err := Wrap(content, 1, 1, false, Clip, 1); err != nil {
		t.Errorf("Wrap() without soft wrap error = %v", err)
	}
}

func TestLimitLines(t *testing.T) {
	tests := []struct {
		name     string
		in       Wrapped
		max      int
		overflow Overflow
		want     []Line
	}{
		{
			name:     "no limit",
			in:       Wrapped{{Text: "abcd"}, {Text: "ef"}},
			overflow: Ellipsis,
			want:     []Line{{Text: "abcd"}, {Text: "ef"}},
		},
		{
			name:     "full line ellipsized",
			in:       Wrapped{{Text: "abcd"}, {Text: "efgh"}, {Text: "ij"}},
			max:      2,
			overflow: Ellipsis,
			want:     []Line{{Text: "abcd"}, {Text: "efg…"}},
		},
		{
			name:     "short line gets ellipsis appended",
			in:       Wrapped{{Text: "ab"}, {Text: "cd"}, {Text: "ef"}},
			max:      2,
			overflow: Ellipsis,
			want:     []Line{{Text: "ab"}, {Text: "cd…"}},
		},
		{
			name:     "short line faded",
			in:       Wrapped{{Text: "ab"}, {Text: "cd"}, {Text: "ef"}},
			max:      2,
			overflow: Fade,
			want:     []Line{{Text: "ab"}, {Text: "c", Faded: "d"}},
		},
		{
			name:     "clip only cuts",
			in:       Wrapped{{Text: "ab"}, {Text: "cd"}, {Text: "ef"}},
			max:      1,
			overflow: Clip,
			want:     []Line{{Text: "ab"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LimitLines(tt.in, tt.max, 4, tt.overflow, 1)
			if len(got) != len(tt.want) {
				t.Fatalf("LimitLines() = %q, want %d lines", got.Strings(), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestWrappedWidth(t *testing.T) {
	w := Wrapped{{Text: "ab"}, {Text: "cde", Faded: "f"}, {}}
	if got := w.Width(); got != 4 {
		t.Errorf("Width() = %d, want 4", got)
	}
}

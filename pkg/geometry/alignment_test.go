package geometry

import (
	"testing"

	"github.com/matzehuels/cellkit/pkg/errors"
)

func TestNewAlignment(t *testing.T) {
	tests := []struct {
		name    string
		x, y    float64
		wantErr bool
	}{
		{"center", 0, 0, false},
		{"corners", -1, 1, false},
		{"fraction", 0.25, -0.75, false},
		{"x too small", -1.5, 0, true},
		{"y too large", 0, 1.0001, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewAlignment(tt.x, tt.y)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewAlignment(%v, %v) error = %v, wantErr %v", tt.x, tt.y, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeAlignmentRange) {
					t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeAlignmentRange)
				}
				return
			}
			if a.X() != tt.x || a.Y() != tt.y {
				t.Errorf("components = (%v, %v), want (%v, %v)", a.X(), a.Y(), tt.x, tt.y)
			}
		})
	}
}

func TestAlignmentOffset(t *testing.T) {
	tests := []struct {
		name     string
		align    Alignment
		free     Size
		wantLeft int
		wantTop  int
	}{
		{"center 10x4 box, 4x2 child", Center, Size{Width: 6, Height: 2}, 3, 1},
		{"top-left", TopLeft, Size{Width: 6, Height: 2}, 0, 0},
		{"bottom-right", BottomRight, Size{Width: 6, Height: 2}, 6, 2},
		{"top-center", TopCenter, Size{Width: 7, Height: 3}, 4, 0},
		{"negative free space", Center, Size{Width: -3, Height: -1}, 0, 0},
		{"half rounds to even", Center, Size{Width: 5, Height: 1}, 2, 0},
		{"three quarters", MustAlignment(0.5, 0.5), Size{Width: 8, Height: 4}, 6, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			left, top := tt.align.Offset(tt.free)
			if left != tt.wantLeft || top != tt.wantTop {
				t.Errorf("Offset(%v) = (%d, %d), want (%d, %d)", tt.free, left, top, tt.wantLeft, tt.wantTop)
			}
		})
	}
}

func TestAlignmentString(t *testing.T) {
	if got := Center.String(); got != "center" {
		t.Errorf("Center.String() = %q, want %q", got, "center")
	}
	if got := MustAlignment(0.5, -1).String(); got != "Alignment(0.5, -1.0)" {
		t.Errorf("String() = %q, want %q", got, "Alignment(0.5, -1.0)")
	}
	if got := TopLeft.Neg(); got != BottomRight {
		t.Errorf("TopLeft.Neg() = %v, want %v", got, BottomRight)
	}
}

func TestParseAlignment(t *testing.T) {
	tests := []struct {
		input   string
		want    Alignment
		wantErr bool
	}{
		{"center", Center, false},
		{"top-right", TopRight, false},
		{"bottom_left", BottomLeft, false},
		{"0.5,-1", MustAlignment(0.5, -1), false},
		{" -1 , 0 ", CenterLeft, false},
		{"2,0", Alignment{}, true},
		{"middle", Alignment{}, true},
		{"a,b", Alignment{}, true},
	}

	for _, tt := range tests {
		got, err := ParseAlignment(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAlignment(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseAlignment(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

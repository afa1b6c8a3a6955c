package geometry

import "testing"

func TestSizeAxes(t *testing.T) {
	s := Size{Width: 10, Height: 4}

	if s.Main(Horizontal) != 10 || s.Cross(Horizontal) != 4 {
		t.Errorf("horizontal main/cross = %d/%d, want 10/4", s.Main(Horizontal), s.Cross(Horizontal))
	}
	if s.Main(Vertical) != 4 || s.Cross(Vertical) != 10 {
		t.Errorf("vertical main/cross = %d/%d, want 4/10", s.Main(Vertical), s.Cross(Vertical))
	}
	if got := s.WithMain(Vertical, 7); got != (Size{Width: 10, Height: 7}) {
		t.Errorf("WithMain(Vertical, 7) = %v", got)
	}
	if got := s.WithCross(Vertical, 2); got != (Size{Width: 2, Height: 4}) {
		t.Errorf("WithCross(Vertical, 2) = %v", got)
	}
	if got := SizeOn(Vertical, 3, 9); got != (Size{Width: 9, Height: 3}) {
		t.Errorf("SizeOn(Vertical, 3, 9) = %v", got)
	}
}

func TestSizeValidate(t *testing.T) {
	tests := []struct {
		name    string
		size    Size
		wantErr bool
	}{
		{"zero", Size{}, false},
		{"positive", Size{Width: 80, Height: 24}, false},
		{"negative width", Size{Width: -1, Height: 24}, true},
		{"negative height", Size{Width: 80, Height: -5}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.size.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRect(t *testing.T) {
	r := NewRect(2, 3, Size{Width: 4, Height: 2})

	if r.Right() != 6 || r.Bottom() != 5 {
		t.Errorf("Right/Bottom = %d/%d, want 6/5", r.Right(), r.Bottom())
	}
	if !r.Contains(2, 3) || !r.Contains(5, 4) {
		t.Error("rect should contain its corners")
	}
	if r.Contains(6, 3) || r.Contains(2, 5) {
		t.Error("rect should not contain cells past its edges")
	}
	if got := r.Translate(1, -1); got.X != 3 || got.Y != 2 {
		t.Errorf("Translate(1, -1) = %+v", got)
	}
}

func TestEdges(t *testing.T) {
	e := EdgeTRBL(1, 2, 3, 4)
	if e.Horizontal() != 6 || e.Vertical() != 4 {
		t.Errorf("Horizontal/Vertical = %d/%d, want 6/4", e.Horizontal(), e.Vertical())
	}
	if got := Leading(Horizontal, 5); got != (Edges{Left: 5}) {
		t.Errorf("Leading(Horizontal, 5) = %v", got)
	}
	if got := Leading(Vertical, 5); got != (Edges{Top: 5}) {
		t.Errorf("Leading(Vertical, 5) = %v", got)
	}
	if !(Edges{}).IsZero() || e.IsZero() {
		t.Error("IsZero mismatch")
	}
	if got := e.Add(Edges{Top: 1}); got.Top != 2 {
		t.Errorf("Add().Top = %d, want 2", got.Top)
	}
}

func TestDimension(t *testing.T) {
	if got := Auto().Or(7); got != 7 {
		t.Errorf("Auto().Or(7) = %d, want 7", got)
	}
	if got := Cells(3).Or(7); got != 3 {
		t.Errorf("Cells(3).Or(7) = %d, want 3", got)
	}
	if Auto().String() != "auto" || Cells(3).String() != "3" {
		t.Error("Dimension.String mismatch")
	}
}

func TestParseAxis(t *testing.T) {
	if a, err := ParseAxis("row"); err != nil || a != Horizontal {
		t.Errorf("ParseAxis(row) = %v, %v", a, err)
	}
	if a, err := ParseAxis("vertical"); err != nil || a != Vertical {
		t.Errorf("ParseAxis(vertical) = %v, %v", a, err)
	}
	if _, err := ParseAxis("diagonal"); err == nil {
		t.Error("ParseAxis(diagonal) should fail")
	}
	if Horizontal.Flip() != Vertical || Vertical.Flip() != Horizontal {
		t.Error("Flip mismatch")
	}
}

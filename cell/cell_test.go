package cell

import "testing"

func TestRuneWidth(t *testing.T) {
	tests := []struct {
		r    rune
		want int
	}{
		{'a', 1},
		{'█', 1},
		{'▚', 1},
		{'世', 2},
		{'\t', 0},
		{0x7F, 0},
	}
	for _, tt := range tests {
		if got := RuneWidth(tt.r); got != tt.want {
			t.Errorf("RuneWidth(%q) = %d, want %d", tt.r, got, tt.want)
		}
	}
}

func TestNewStyled(t *testing.T) {
	s := NewStyle(ColorRed).WithBackground(ColorBlack)
	c := NewStyled('▌', s)

	if c.Rune != '▌' || c.Width != 1 {
		t.Errorf("unexpected cell %+v", c)
	}
	if !c.Style.Equals(s) {
		t.Errorf("style = %+v, want %+v", c.Style, s)
	}
}

func TestCellEquals(t *testing.T) {
	a := New('x')
	b := New('x')
	if !a.Equals(b) {
		t.Error("identical cells should be equal")
	}
	if a.Equals(b.WithStyle(NewStyle(ColorRed))) {
		t.Error("cells with different styles should differ")
	}
	if a.Equals(New('y')) {
		t.Error("cells with different runes should differ")
	}
}

func TestEmpty(t *testing.T) {
	e := Empty()
	if e.Rune != ' ' || e.Width != 1 || !e.Style.IsDefault() {
		t.Errorf("unexpected empty cell %+v", e)
	}
}

func TestStyleBuilders(t *testing.T) {
	s := NewStyle(ColorCyan).Bold().Dim()
	if !s.Attributes.Has(AttrBold) || !s.Attributes.Has(AttrDim) {
		t.Error("builder attributes missing")
	}
	if s.Attributes.Has(AttrReverse) {
		t.Error("unset attribute reported present")
	}
	if s.IsDefault() {
		t.Error("styled value should not be default")
	}
}

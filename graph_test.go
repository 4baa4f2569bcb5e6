package gridplot

import "testing"

func identity(v float64) float64 { return v }

func snapshot(b *Buffer) []bool {
	out := make([]bool, 0, b.Width()*b.Height())
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			out = append(out, b.At(x, y))
		}
	}
	return out
}

func TestHistSize(t *testing.T) {
	tests := []struct {
		width, height int
		wantW, wantH  int
	}{
		{100, 40, 50, 20},
		{10, 10, 5, 5},
		{7, 5, 3, 2},
	}

	for _, tt := range tests {
		g := Hist(tt.width, tt.height, identity)
		w, h := g.Size()
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("Hist(%d, %d).Size() = (%d, %d), want (%d, %d)",
				tt.width, tt.height, w, h, tt.wantW, tt.wantH)
		}

		// Size is independent of the dataset.
		g.SetData([]float64{0.1, 0.5, 0.9})
		w, h = g.Size()
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("Size() after SetData = (%d, %d), want (%d, %d)",
				w, h, tt.wantW, tt.wantH)
		}
	}
}

func TestRenderIdempotent(t *testing.T) {
	g := Hist(20, 10, identity)
	g.SetData([]float64{0.2, 0.8, 0.5, 0.9})

	first := snapshot(g.buf)
	g.Render()
	second := snapshot(g.buf)

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("buffer differs at index %d after second Render", i)
		}
	}
}

func TestSetDataRoundTrip(t *testing.T) {
	g := Hist(10, 10, identity)

	a := []float64{0.1, 0.2, 0.3}
	b := []float64{0.9, 0.8}

	if prev := g.SetData(a); prev != nil {
		t.Errorf("first SetData should return the empty initial dataset, got %v", prev)
	}
	got := g.SetData(b)
	if len(got) != len(a) {
		t.Fatalf("SetData(b) returned %d elements, want %d", len(got), len(a))
	}
	for i := range a {
		if got[i] != a[i] {
			t.Errorf("returned dataset differs at %d: got %v, want %v", i, got[i], a[i])
		}
	}
}

func TestHistDegenerateData(t *testing.T) {
	for _, data := range [][]float64{nil, {}, {0.7}} {
		g := Hist(12, 8, identity)
		g.SetData(data)
		for _, v := range snapshot(g.buf) {
			if v {
				t.Fatalf("buffer should be all false for %d-element dataset", len(data))
			}
		}
	}
}

// Column bar heights must be non-decreasing for increasing data, which
// pins the index formula to be monotonic in x.
func TestHistMonotonicIndex(t *testing.T) {
	data := []float64{0.1, 0.3, 0.5, 0.7, 0.9}
	g := Hist(20, 10, identity)
	g.SetData(data)

	prev := -1
	for x := 0; x < g.buf.Width(); x++ {
		height := 0
		for y := 0; y < g.buf.Height(); y++ {
			if g.buf.At(x, y) {
				height++
			}
		}
		if height < prev {
			t.Fatalf("column %d has height %d, below previous %d", x, height, prev)
		}
		prev = height
	}
}

func TestHistBarShape(t *testing.T) {
	// Both elements key to 0.5: every column fills the bottom half plus
	// the row at the midpoint.
	g := Hist(4, 8, identity)
	g.SetData([]float64{0.5, 0.5})

	for x := 0; x < 4; x++ {
		for y := 0; y < 8; y++ {
			want := 0.5 >= float64(y)/8
			if g.buf.At(x, y) != want {
				t.Errorf("cell (%d, %d) = %v, want %v", x, y, g.buf.At(x, y), want)
			}
		}
	}
}

func TestScatterSinglePoint(t *testing.T) {
	g := Scatter(10, 10,
		func(p [2]float64) float64 { return p[0] },
		func(p [2]float64) float64 { return p[1] })
	g.SetData([][2]float64{{0.5, 0.5}})

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			want := x == 5 && y == 5
			if g.buf.At(x, y) != want {
				t.Errorf("cell (%d, %d) = %v, want %v", x, y, g.buf.At(x, y), want)
			}
		}
	}
}

func TestScatterEmptyData(t *testing.T) {
	g := Scatter(10, 10,
		func(p [2]float64) float64 { return p[0] },
		func(p [2]float64) float64 { return p[1] })
	g.Render()

	for _, v := range snapshot(g.buf) {
		if v {
			t.Fatal("buffer should be all false with no data")
		}
	}
}

// Charts grow upward: a half-height bar prints blank rows on top, a
// lower-half block at the boundary, and full blocks below.
func TestGraphCellOrientation(t *testing.T) {
	g := Hist(2, 8, identity)
	g.SetData([]float64{0.5, 0.5})

	// Buffer rows 0..4 are true (0.5 >= y/8 for y <= 4).
	wantRunes := []rune{' ', '▄', '█', '█'}
	for y, want := range wantRunes {
		got := g.Cell(0, y)
		if got.Rune != want {
			t.Errorf("Cell(0, %d).Rune = %q, want %q", y, got.Rune, want)
		}
	}
}

func TestGraphCellStyle(t *testing.T) {
	g := Hist(4, 4, identity)
	g.SetData([]float64{0.5, 0.5})

	if !g.Cell(0, 0).Style.Equals(defaultGraphStyle) {
		t.Error("cells should carry the default graph style")
	}
}

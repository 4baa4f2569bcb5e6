package gridplot

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dshills/gridplot/backend"
)

func TestFprintLinesPerRow(t *testing.T) {
	g := Hist(8, 8, identity)
	g.SetData([]float64{0.5, 0.5})

	var buf bytes.Buffer
	if err := Fprint(&buf, g); err != nil {
		t.Fatalf("Fprint: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(lines))
	}
	for i, line := range lines {
		if !strings.HasSuffix(line, "\x1b[0m") {
			t.Errorf("line %d missing trailing reset", i)
		}
	}
}

func TestBlit(t *testing.T) {
	h := NewHBar(4, 1.0)
	null := backend.NewNull(10, 3)

	Blit(null, h, 2, 1)

	if got := null.CellAt(2, 1).Rune; got != '█' {
		t.Errorf("cell at offset should hold the bar glyph, got %q", got)
	}
	if got := null.CellAt(6, 1).Rune; got != ' ' {
		t.Errorf("cell past the bar should stay empty, got %q", got)
	}
	if got := null.CellAt(2, 0).Rune; got != ' ' {
		t.Errorf("row above the bar should stay empty, got %q", got)
	}
}

func TestBlitClipsAtEdges(t *testing.T) {
	h := NewHBar(8, 1.0)
	null := backend.NewNull(4, 1)

	// Wider than the surface; the overflow must be dropped silently.
	Blit(null, h, 0, 0)

	if got := null.CellAt(3, 0).Rune; got != '█' {
		t.Errorf("in-bounds cell should be drawn, got %q", got)
	}
}

package gridplot

import "github.com/dshills/gridplot/cell"

// HBar is a single-row horizontal fill indicator, one line of a horizontal
// bar plot. Eighth-block glyphs give eight fill levels per character.
type HBar struct {
	// Value is how much of the bar is filled, 0.0 to 1.0.
	Value float64

	// Width is the bar width in characters.
	Width int

	style cell.Style
}

// NewHBar creates a bar of the given character width and fill ratio.
func NewHBar(width int, value float64) *HBar {
	return &HBar{
		Value: value,
		Width: width,
		style: defaultGraphStyle,
	}
}

// SetStyle sets the style applied to every printed cell.
func (h *HBar) SetStyle(s cell.Style) {
	h.style = s
}

// Size returns (Width, 1).
func (h *HBar) Size() (int, int) {
	return h.Width, 1
}

// Cell returns the fill glyph for column x: full left of the fill edge,
// empty right of it, and one of eight partial blocks at the edge itself.
func (h *HBar) Cell(x, y int) cell.Cell {
	index := int(clamp(9*(h.Value*float64(h.Width)-float64(x)), 0, 8))
	return cell.NewStyled(hBlocks[index], h.style)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

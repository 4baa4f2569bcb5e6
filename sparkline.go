package gridplot

import (
	"github.com/aclements/go-moremath/stats"

	"github.com/dshills/gridplot/cell"
)

// Sparkline is a one-row trend chart: each column shows one value as a
// vertical eighth-block glyph. Width in characters equals len(Values).
type Sparkline struct {
	// Values are the samples, one per column.
	Values []float64

	// Min and Max fix the display range. Leave both zero to derive the
	// range from the data.
	Min, Max float64

	style cell.Style
}

// NewSparkline creates a sparkline over values with an auto-detected range.
func NewSparkline(values []float64) *Sparkline {
	return &Sparkline{
		Values: values,
		style:  defaultGraphStyle,
	}
}

// SetStyle sets the style applied to every printed cell.
func (s *Sparkline) SetStyle(st cell.Style) {
	s.style = st
}

// Size returns (len(Values), 1).
func (s *Sparkline) Size() (int, int) {
	return len(s.Values), 1
}

// Cell returns the block glyph for column x. Flat data (an empty range)
// renders the empty glyph.
func (s *Sparkline) Cell(x, y int) cell.Cell {
	lo, hi := s.bounds()
	if hi <= lo {
		return cell.NewStyled(vBlocks[0], s.style)
	}
	norm := clamp((s.Values[x]-lo)/(hi-lo), 0, 1)
	return cell.NewStyled(vBlocks[int(norm*8+0.5)], s.style)
}

func (s *Sparkline) bounds() (float64, float64) {
	if s.Min != 0 || s.Max != 0 {
		return s.Min, s.Max
	}
	if len(s.Values) == 0 {
		return 0, 0
	}
	return stats.Sample{Xs: s.Values}.Bounds()
}

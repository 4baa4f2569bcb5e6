package gridplot

import (
	"math"

	"github.com/dshills/gridplot/cell"
)

// Graph is a 2D chart over an arbitrary dataset. Every pixel is on or off,
// so heat maps are out; the boolean buffer runs at twice the character
// resolution in both axes and 2x2 blocks collapse into quadrant glyphs at
// print time.
//
// Chart shape comes from the renderer function installed by Hist or
// Scatter; the buffer is fully recomputed from the dataset on every
// SetData.
type Graph[V any] struct {
	buf    *Buffer
	data   []V
	render func(data []V, x, y int) bool
	style  cell.Style
}

// defaultGraphStyle matches the classic white-on-near-black palette entries.
var defaultGraphStyle = cell.NewStyle(cell.ColorFromIndex(231)).WithBackground(cell.ColorFromIndex(16))

// Hist creates a histogram graph. width and height are sub-pixel values,
// twice the printed character size in each axis. key maps a datum into
// [0, 1); column x shows a bar rising to the keyed value of the datum at
// index len(data)*x/width. Datasets of one or zero elements draw nothing.
func Hist[V any](width, height int, key func(V) float64) *Graph[V] {
	render := func(data []V, x, y int) bool {
		if len(data) <= 1 {
			return false
		}
		index := len(data) * x / width
		return key(data[index]) >= float64(y)/float64(height)
	}
	return &Graph[V]{
		buf:    NewBuffer(width, height, false),
		render: render,
		style:  defaultGraphStyle,
	}
}

// Scatter creates a scatter graph. hkey and vkey map a datum onto [0, 1)
// in each axis; a pixel is lit when some datum's scaled, floored position
// equals it. A point landing exactly on a grid line belongs to the cell it
// floors into. Every pixel scans the whole dataset, so rendering is
// O(width*height*n) and meant for small datasets.
func Scatter[V any](width, height int, hkey, vkey func(V) float64) *Graph[V] {
	render := func(data []V, x, y int) bool {
		for _, v := range data {
			a := math.Floor(hkey(v) * float64(width))
			b := math.Floor(vkey(v) * float64(height))
			if a == float64(x) && b == float64(y) {
				return true
			}
		}
		return false
	}
	return &Graph[V]{
		buf:    NewBuffer(width, height, false),
		render: render,
		style:  defaultGraphStyle,
	}
}

// Render recomputes the whole buffer from the current dataset. SetData
// calls this automatically; calling it again without a data change is a
// no-op in effect.
func (g *Graph[V]) Render() {
	for x := 0; x < g.buf.Width(); x++ {
		for y := 0; y < g.buf.Height(); y++ {
			g.buf.Set(x, y, g.render(g.data, x, y))
		}
	}
}

// SetData swaps in a new dataset, re-renders, and returns the previous
// dataset. The buffer is fully consistent with data when SetData returns.
func (g *Graph[V]) SetData(data []V) []V {
	old := g.data
	g.data = data
	g.Render()
	return old
}

// SetStyle sets the style applied to every printed cell.
func (g *Graph[V]) SetStyle(s cell.Style) {
	g.style = s
}

// Size returns the printed size in characters: half the buffer resolution
// in each axis.
func (g *Graph[V]) Size() (int, int) {
	return g.buf.Width() / 2, g.buf.Height() / 2
}

// Cell packs the 2x2 sub-pixel block for character (x, y) into a quadrant
// glyph. Row 0 is the top of the output while buffer y=0 is the bottom of
// the chart, so sampling flips vertically.
func (g *Graph[V]) Cell(x, y int) cell.Cell {
	bx := 2 * x
	by := g.buf.Height() - 2*(y+1)

	var mask int
	if g.buf.At(bx, by+1) {
		mask |= 1
	}
	if g.buf.At(bx+1, by+1) {
		mask |= 2
	}
	if g.buf.At(bx, by) {
		mask |= 4
	}
	if g.buf.At(bx+1, by) {
		mask |= 8
	}
	return cell.NewStyled(quadBlocks[mask], g.style)
}

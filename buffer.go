package gridplot

// Buffer is a fixed-size 2D occupancy grid at sub-character resolution.
// It is never resized after creation; coordinates must stay within
// [0,width) x [0,height) or access panics.
type Buffer struct {
	width, height int
	rows          [][]bool
}

// NewBuffer creates a width x height buffer with every cell set to def.
func NewBuffer(width, height int, def bool) *Buffer {
	b := &Buffer{width: width, height: height}
	b.rows = make([][]bool, height)
	for y := range b.rows {
		b.rows[y] = make([]bool, width)
		if def {
			for x := range b.rows[y] {
				b.rows[y][x] = true
			}
		}
	}
	return b
}

// Width returns the buffer width in sub-pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in sub-pixels.
func (b *Buffer) Height() int { return b.height }

// Set stores v at (x, y).
func (b *Buffer) Set(x, y int, v bool) {
	b.rows[y][x] = v
}

// At returns the value at (x, y).
func (b *Buffer) At(x, y int) bool {
	return b.rows[y][x]
}

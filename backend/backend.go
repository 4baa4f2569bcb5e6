// Package backend provides the output surfaces charts draw onto: a live
// tcell terminal, an ANSI line writer for plain standard-output printing,
// and an in-memory surface for tests.
package backend

import "github.com/dshills/gridplot/cell"

// Backend is a drawable grid of colored characters.
// Implementations handle the actual terminal or display plumbing.
type Backend interface {
	// Init prepares the backend for drawing.
	// Must be called before any other method.
	Init() error

	// Fini releases resources and restores terminal state.
	Fini()

	// Size returns the drawable dimensions in character cells.
	Size() (width, height int)

	// SetCell sets the cell at the given position.
	// Positions outside the surface are silently ignored.
	SetCell(x, y int, c cell.Cell)

	// CellAt returns the cell at the given position.
	// Positions outside the surface return an empty cell.
	CellAt(x, y int) cell.Cell

	// Clear resets every cell to empty.
	Clear()

	// Show flushes pending changes to the display.
	Show()

	// HasTrueColor reports 24-bit color support.
	HasTrueColor() bool
}

// Null is an in-memory backend for tests.
type Null struct {
	width, height int
	cells         [][]cell.Cell
}

// NewNull creates a null backend with the given dimensions.
func NewNull(width, height int) *Null {
	n := &Null{width: width, height: height}
	n.cells = make([][]cell.Cell, height)
	for y := range n.cells {
		n.cells[y] = make([]cell.Cell, width)
		for x := range n.cells[y] {
			n.cells[y][x] = cell.Empty()
		}
	}
	return n
}

func (n *Null) Init() error { return nil }

func (n *Null) Fini() {}

func (n *Null) Size() (int, int) {
	return n.width, n.height
}

func (n *Null) SetCell(x, y int, c cell.Cell) {
	if x >= 0 && x < n.width && y >= 0 && y < n.height {
		n.cells[y][x] = c
	}
}

func (n *Null) CellAt(x, y int) cell.Cell {
	if x >= 0 && x < n.width && y >= 0 && y < n.height {
		return n.cells[y][x]
	}
	return cell.Empty()
}

func (n *Null) Clear() {
	for y := range n.cells {
		for x := range n.cells[y] {
			n.cells[y][x] = cell.Empty()
		}
	}
}

func (n *Null) Show() {}

func (n *Null) HasTrueColor() bool { return true }

package gridplot

import (
	"io"
	"os"

	"github.com/dshills/gridplot/backend"
	"github.com/dshills/gridplot/cell"
)

// GridPrinter is implemented by anything representable as a grid of colored
// characters. Row 0 is the top line of output; x and y passed to Cell must
// respect the bounds reported by Size.
type GridPrinter interface {
	// Size returns the grid dimensions as (columns, rows).
	Size() (cols, rows int)

	// Cell returns the colored character at (x, y).
	Cell(x, y int) cell.Cell
}

// Fprint writes g to w, one ANSI-colored line per row.
func Fprint(w io.Writer, g GridPrinter) error {
	cols, rows := g.Size()
	lw := backend.NewLineWriter(w)
	row := make([]cell.Cell, cols)
	for y := 0; y < rows; y++ {
		for x := range row {
			row[x] = g.Cell(x, y)
		}
		if err := lw.WriteRow(row); err != nil {
			return err
		}
	}
	return nil
}

// Print writes g to standard output.
func Print(g GridPrinter) error {
	return Fprint(os.Stdout, g)
}

// Blit draws g onto b with its top-left corner at (ox, oy). Cells falling
// outside b are dropped by the backend. The caller flushes with b.Show.
func Blit(b backend.Backend, g GridPrinter, ox, oy int) {
	cols, rows := g.Size()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			b.SetCell(ox+x, oy+y, g.Cell(x, y))
		}
	}
}

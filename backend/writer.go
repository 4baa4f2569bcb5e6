package backend

import (
	"bytes"
	"io"
	"strconv"

	"github.com/dshills/gridplot/cell"
)

// LineWriter renders rows of cells to an io.Writer as ANSI-colored text,
// one line per row. Consecutive cells sharing a style share one escape
// sequence; every line ends with a reset so chart colors never leak into
// surrounding output.
type LineWriter struct {
	w   io.Writer
	buf bytes.Buffer
}

// NewLineWriter creates a line writer on w.
func NewLineWriter(w io.Writer) *LineWriter {
	return &LineWriter{w: w}
}

// WriteRow emits one row of cells followed by a reset and a newline.
func (lw *LineWriter) WriteRow(cells []cell.Cell) error {
	lw.buf.Reset()

	var cur cell.Style
	styled := false
	for _, c := range cells {
		if !styled || !c.Style.Equals(cur) {
			lw.writeSGR(c.Style)
			cur = c.Style
			styled = true
		}
		lw.buf.WriteRune(c.Rune)
	}
	lw.buf.WriteString("\x1b[0m\n")

	_, err := lw.w.Write(lw.buf.Bytes())
	return err
}

// writeSGR appends the escape sequence selecting style, starting from a
// clean reset state.
func (lw *LineWriter) writeSGR(s cell.Style) {
	lw.buf.WriteString("\x1b[0")

	if s.Attributes.Has(cell.AttrBold) {
		lw.buf.WriteString(";1")
	}
	if s.Attributes.Has(cell.AttrDim) {
		lw.buf.WriteString(";2")
	}
	if s.Attributes.Has(cell.AttrItalic) {
		lw.buf.WriteString(";3")
	}
	if s.Attributes.Has(cell.AttrUnderline) {
		lw.buf.WriteString(";4")
	}
	if s.Attributes.Has(cell.AttrBlink) {
		lw.buf.WriteString(";5")
	}
	if s.Attributes.Has(cell.AttrReverse) {
		lw.buf.WriteString(";7")
	}
	if s.Attributes.Has(cell.AttrStrikethrough) {
		lw.buf.WriteString(";9")
	}

	lw.writeColor(s.Foreground, 38)
	lw.writeColor(s.Background, 48)

	lw.buf.WriteByte('m')
}

// writeColor appends one color parameter. base is 38 for foreground, 48
// for background. Default colors are already covered by the leading reset.
func (lw *LineWriter) writeColor(c cell.Color, base int) {
	if c.IsDefault() {
		return
	}
	lw.buf.WriteByte(';')
	lw.buf.WriteString(strconv.Itoa(base))
	if c.Indexed {
		lw.buf.WriteString(";5;")
		lw.buf.WriteString(strconv.Itoa(int(c.R)))
		return
	}
	lw.buf.WriteString(";2;")
	lw.buf.WriteString(strconv.Itoa(int(c.R)))
	lw.buf.WriteByte(';')
	lw.buf.WriteString(strconv.Itoa(int(c.G)))
	lw.buf.WriteByte(';')
	lw.buf.WriteString(strconv.Itoa(int(c.B)))
}

package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/gridplot/cell"
)

// Terminal implements Backend on a live terminal using tcell.
type Terminal struct {
	screen tcell.Screen
	mu     sync.Mutex
}

// NewTerminal creates a terminal backend.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.HideCursor()
	return nil
}

func (t *Terminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

func (t *Terminal) SetCell(x, y int, c cell.Cell) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.SetContent(x, y, c.Rune, nil, convertStyle(c.Style))
}

func (t *Terminal) CellAt(x, y int) cell.Cell {
	t.mu.Lock()
	defer t.mu.Unlock()

	mainc, _, style, _ := t.screen.GetContent(x, y) //nolint:staticcheck // GetContent is the correct API
	return cell.Cell{
		Rune:  mainc,
		Width: cell.RuneWidth(mainc),
		Style: convertTcellStyle(style),
	}
}

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

func (t *Terminal) HasTrueColor() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Colors() > 256
}

// WaitKey blocks until a key press or an interrupt event arrives.
// Resize events redraw via tcell and are not reported.
func (t *Terminal) WaitKey() {
	for {
		switch t.screen.PollEvent().(type) {
		case *tcell.EventKey, *tcell.EventInterrupt, nil:
			return
		}
	}
}

// Interrupt wakes a pending WaitKey.
func (t *Terminal) Interrupt() {
	t.screen.PostEventWait(tcell.NewEventInterrupt(nil))
}

// convertStyle converts a cell.Style to tcell.Style.
func convertStyle(s cell.Style) tcell.Style {
	style := tcell.StyleDefault

	if !s.Foreground.IsDefault() {
		style = style.Foreground(convertColor(s.Foreground))
	}
	if !s.Background.IsDefault() {
		style = style.Background(convertColor(s.Background))
	}

	if s.Attributes.Has(cell.AttrBold) {
		style = style.Bold(true)
	}
	if s.Attributes.Has(cell.AttrDim) {
		style = style.Dim(true)
	}
	if s.Attributes.Has(cell.AttrItalic) {
		style = style.Italic(true)
	}
	if s.Attributes.Has(cell.AttrUnderline) {
		style = style.Underline(true)
	}
	if s.Attributes.Has(cell.AttrBlink) {
		style = style.Blink(true)
	}
	if s.Attributes.Has(cell.AttrReverse) {
		style = style.Reverse(true)
	}
	if s.Attributes.Has(cell.AttrStrikethrough) {
		style = style.StrikeThrough(true)
	}

	return style
}

func convertColor(c cell.Color) tcell.Color {
	if c.Indexed {
		return tcell.PaletteColor(int(c.R))
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// convertTcellStyle converts tcell.Style back to a cell.Style.
func convertTcellStyle(ts tcell.Style) cell.Style {
	fg, bg, attrs := ts.Decompose()

	s := cell.Style{
		Foreground: convertTcellColor(fg),
		Background: convertTcellColor(bg),
	}

	if attrs&tcell.AttrBold != 0 {
		s.Attributes |= cell.AttrBold
	}
	if attrs&tcell.AttrDim != 0 {
		s.Attributes |= cell.AttrDim
	}
	if attrs&tcell.AttrItalic != 0 {
		s.Attributes |= cell.AttrItalic
	}
	if attrs&tcell.AttrUnderline != 0 {
		s.Attributes |= cell.AttrUnderline
	}
	if attrs&tcell.AttrBlink != 0 {
		s.Attributes |= cell.AttrBlink
	}
	if attrs&tcell.AttrReverse != 0 {
		s.Attributes |= cell.AttrReverse
	}
	if attrs&tcell.AttrStrikeThrough != 0 {
		s.Attributes |= cell.AttrStrikethrough
	}

	return s
}

func convertTcellColor(tc tcell.Color) cell.Color {
	if tc == tcell.ColorDefault {
		return cell.ColorDefault
	}
	if tc >= tcell.ColorValid && tc < tcell.ColorIsRGB {
		return cell.ColorFromIndex(uint8(tc - tcell.ColorValid))
	}
	r, g, b := tc.RGB()
	return cell.ColorFromRGB(uint8(r), uint8(g), uint8(b))
}

package cell

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is one terminal color: truecolor RGB, a 256-palette index, or the
// terminal's configured default.
type Color struct {
	R, G, B uint8
	// Indexed selects 256-palette mode; the index lives in R and G/B are
	// ignored.
	Indexed bool
	// Default marks the terminal's own default color.
	Default bool
}

// ColorDefault is the terminal's default color. Use it for transparent or
// inherited cells.
var ColorDefault = Color{Default: true}

// Common chart colors.
var (
	ColorBlack   = Color{R: 0, G: 0, B: 0}
	ColorWhite   = Color{R: 255, G: 255, B: 255}
	ColorRed     = Color{R: 255, G: 0, B: 0}
	ColorGreen   = Color{R: 0, G: 255, B: 0}
	ColorBlue    = Color{R: 0, G: 0, B: 255}
	ColorYellow  = Color{R: 255, G: 255, B: 0}
	ColorCyan    = Color{R: 0, G: 255, B: 255}
	ColorMagenta = Color{R: 255, G: 0, B: 255}
	ColorGray    = Color{R: 128, G: 128, B: 128}
)

// ColorFromRGB creates a truecolor value from RGB components.
func ColorFromRGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ColorFromIndex creates a 256-palette color.
func ColorFromIndex(index uint8) Color {
	return Color{R: index, Indexed: true}
}

// ColorFromHex parses "#RGB", "#RRGGBB", "RGB" or "RRGGBB".
func ColorFromHex(hex string) (Color, error) {
	h := strings.TrimPrefix(hex, "#")
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	case 6:
	default:
		return Color{}, fmt.Errorf("invalid hex color %q", hex)
	}
	c, err := colorful.Hex("#" + h)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q", hex)
	}
	return fromColorful(c), nil
}

// IsDefault returns true for the terminal default color.
func (c Color) IsDefault() bool {
	return c.Default
}

// Equals reports whether two colors are the same.
func (c Color) Equals(other Color) bool {
	if c.Default != other.Default {
		return false
	}
	if c.Default {
		return true
	}
	if c.Indexed != other.Indexed {
		return false
	}
	if c.Indexed {
		return c.R == other.R
	}
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// String returns a readable form: "default", "idx(N)", or "#RRGGBB".
func (c Color) String() string {
	if c.Default {
		return "default"
	}
	if c.Indexed {
		return fmt.Sprintf("idx(%d)", c.R)
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Blend mixes c toward other in Lab space. Amount 0 returns c, 1 returns
// other. Indexed and default colors cannot be mixed and snap to the nearer
// endpoint.
func (c Color) Blend(other Color, amount float64) Color {
	if c.Indexed || c.Default || other.Indexed || other.Default {
		if amount < 0.5 {
			return c
		}
		return other
	}
	return fromColorful(c.toColorful().BlendLab(other.toColorful(), amount).Clamped())
}

// Lighten moves the color toward white. Amount is 0 to 1.
func (c Color) Lighten(amount float64) Color {
	return c.Blend(ColorWhite, amount)
}

// Darken moves the color toward black. Amount is 0 to 1.
func (c Color) Darken(amount float64) Color {
	return c.Blend(ColorBlack, amount)
}

// Palette returns n distinguishable chart colors, evenly spaced around the
// HCL hue circle.
func Palette(n int) []Color {
	out := make([]Color, 0, n)
	for i := 0; i < n; i++ {
		hue := 360 * float64(i) / float64(n)
		out = append(out, fromColorful(colorful.Hcl(hue, 0.5, 0.7).Clamped()))
	}
	return out
}

func (c Color) toColorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

func fromColorful(c colorful.Color) Color {
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}
}

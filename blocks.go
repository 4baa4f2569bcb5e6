package gridplot

// Horizontal eighth blocks, empty through full.
var hBlocks = [9]rune{' ', '▏', '▎', '▍', '▌', '▋', '▊', '▉', '█'}

// Vertical eighth blocks, empty through full.
var vBlocks = [9]rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// quadBlocks maps a 4-bit sub-pixel mask to a quadrant block glyph.
// Bit 0 is the upper left, bit 1 the upper right, bit 2 the lower left,
// bit 3 the lower right.
var quadBlocks = [16]rune{
	' ', '▘', '▝', '▀',
	'▖', '▌', '▞', '▛',
	'▗', '▚', '▐', '▜',
	'▄', '▙', '▟', '█',
}

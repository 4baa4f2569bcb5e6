// Package gridplot renders numeric datasets as character-grid charts in a
// terminal: histograms, scatter plots, horizontal bar indicators, and
// sparklines.
//
// Charts squeeze extra fidelity out of the terminal with unicode block
// elements. A Graph stores each pixel as a boolean and packs 2x2 blocks of
// them into quadrant glyphs (such as ▚, ▛, ▗), doubling the effective
// resolution in both axes. HBar and Sparkline use eighth-block glyphs for
// eight sub-character fill levels per cell.
//
// Anything implementing GridPrinter can be written to standard output with
// Print, to any io.Writer with Fprint, or composed into a live tcell screen
// with Blit.
package gridplot

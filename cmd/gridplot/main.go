// Package main is the entry point for the gridplot demo tool.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tidwall/gjson"

	"github.com/dshills/gridplot"
	"github.com/dshills/gridplot/backend"
	"github.com/dshills/gridplot/cell"
	"github.com/dshills/gridplot/internal/script"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

type options struct {
	chart   string
	width   int
	height  int
	samples int
	value   float64
	fg      string
	bg      string
	theme   string
	expr    string
	live    bool
	stats   bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	style, styled, err := loadStyle(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	xs, values, err := sampleData(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if opts.live {
		if err := runLive(opts, style, styled); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	var grid gridplot.GridPrinter
	switch opts.chart {
	case "hist":
		g := gridplot.Hist(opts.width, opts.height, gridplot.NormalKey(values))
		if styled {
			g.SetStyle(style)
		}
		g.SetData(values)
		grid = g
	case "scatter":
		hkey := gridplot.NormalKey(xs)
		vkey := gridplot.NormalKey(values)
		g := gridplot.Scatter(opts.width, opts.height,
			func(p [2]float64) float64 { return hkey(p[0]) },
			func(p [2]float64) float64 { return vkey(p[1]) })
		if styled {
			g.SetStyle(style)
		}
		pts := make([][2]float64, len(xs))
		for i := range xs {
			pts[i] = [2]float64{xs[i], values[i]}
		}
		g.SetData(pts)
		grid = g
	case "hbar":
		h := gridplot.NewHBar(opts.width, opts.value)
		if styled {
			h.SetStyle(style)
		}
		grid = h
	case "spark":
		s := gridplot.NewSparkline(values)
		if styled {
			s.SetStyle(style)
		}
		grid = s
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown chart type %q (want hist, scatter, hbar, or spark)\n", opts.chart)
		return 1
	}

	if err := gridplot.Print(grid); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if opts.stats && opts.chart != "hbar" {
		lo, mean, hi := gridplot.Describe(values)
		fmt.Printf("n=%d min=%.4g mean=%.4g max=%.4g\n", len(values), lo, mean, hi)
	}

	return 0
}

// sampleData builds the demo dataset: xs are evenly spaced sample
// positions and values are sin(x), or the -expr Lua expression applied to
// each x instead.
func sampleData(opts options) (xs, values []float64, err error) {
	xs = make([]float64, opts.samples)
	values = make([]float64, opts.samples)
	for i := range xs {
		xs[i] = float64(i) / 5.0
	}

	if opts.expr == "" {
		for i, x := range xs {
			values[i] = math.Sin(x)
		}
		return xs, values, nil
	}

	ex, err := script.Compile(opts.expr)
	if err != nil {
		return nil, nil, err
	}
	defer ex.Close()
	values, err = ex.Map(xs)
	if err != nil {
		return nil, nil, err
	}
	return xs, values, nil
}

// runLive animates a sine histogram and a phase bar on a tcell screen
// until a key press or interrupt.
func runLive(opts options, style cell.Style, styled bool) error {
	term, err := backend.NewTerminal()
	if err != nil {
		return err
	}
	if err := term.Init(); err != nil {
		return err
	}
	defer term.Fini()

	done := make(chan struct{})
	go func() {
		term.WaitKey()
		close(done)
	}()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)

	// Fixed key: live samples stay within [-1, 1].
	g := gridplot.Hist(opts.width, opts.height, func(v float64) float64 {
		return clampUnit((v + 1) / 2)
	})
	bar := gridplot.NewHBar(opts.width/2, 0)
	if styled {
		g.SetStyle(style)
		bar.SetStyle(style)
	}

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	values := make([]float64, opts.samples)
	phase := 0.0
	for {
		select {
		case <-done:
			return nil
		case <-signals:
			term.Interrupt()
			<-done
			return nil
		case <-ticker.C:
			phase += 0.2
			for i := range values {
				values[i] = math.Sin(float64(i)/5.0 + phase)
			}
			g.SetData(values)
			bar.Value = (math.Sin(phase) + 1) / 2
			term.Clear()
			gridplot.Blit(term, g, 1, 1)
			gridplot.Blit(term, bar, 1, opts.height/2+2)
			term.Show()
		}
	}
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v >= 1 {
		return math.Nextafter(1, 0)
	}
	return v
}

// loadStyle resolves chart colors: theme file first, then -fg/-bg
// overrides. styled is false when nothing was configured, so charts keep
// their built-in palette.
func loadStyle(opts options) (style cell.Style, styled bool, err error) {
	fg, bg := opts.fg, opts.bg

	if opts.theme != "" {
		data, err := os.ReadFile(opts.theme)
		if err != nil {
			return style, false, fmt.Errorf("theme: %w", err)
		}
		if fg == "" {
			if v := gjson.GetBytes(data, "foreground"); v.Exists() {
				fg = v.String()
			}
		}
		if bg == "" {
			if v := gjson.GetBytes(data, "background"); v.Exists() {
				bg = v.String()
			}
		}
	}

	if fg == "" && bg == "" {
		return style, false, nil
	}

	style = cell.DefaultStyle()
	if fg != "" {
		c, err := cell.ColorFromHex(fg)
		if err != nil {
			return style, false, fmt.Errorf("foreground: %w", err)
		}
		style = style.WithForeground(c)
	}
	if bg != "" {
		c, err := cell.ColorFromHex(bg)
		if err != nil {
			return style, false, fmt.Errorf("background: %w", err)
		}
		style = style.WithBackground(c)
	}
	return style, true, nil
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.chart, "chart", "hist", "Chart type: hist, scatter, hbar, or spark")
	flag.IntVar(&opts.width, "width", 100, "Chart width in sub-pixels (hist, scatter) or characters (hbar, spark)")
	flag.IntVar(&opts.height, "height", 40, "Chart height in sub-pixels")
	flag.IntVar(&opts.samples, "n", 100, "Number of demo samples")
	flag.Float64Var(&opts.value, "value", 0.5, "Fill ratio for -chart hbar")
	flag.StringVar(&opts.fg, "fg", "", "Foreground color as hex (e.g. #8be9fd)")
	flag.StringVar(&opts.bg, "bg", "", "Background color as hex")
	flag.StringVar(&opts.theme, "theme", "", "Path to a JSON theme file with foreground/background keys")
	flag.StringVar(&opts.expr, "expr", "", "Lua expression in x replacing the demo sine, e.g. 'math.cos(x)*x'")
	flag.BoolVar(&opts.live, "live", false, "Animate on a full terminal screen until a key press")
	flag.BoolVar(&opts.stats, "stats", false, "Print a summary line under the chart")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("gridplot %s (%s)\n", version, commit)
		os.Exit(0)
	}

	return opts
}

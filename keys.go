package gridplot

import (
	"math"

	"github.com/aclements/go-moremath/stats"
)

// NormalKey returns a key function that maps the observed range of xs onto
// [0, 1). Values at the observed maximum land just below 1 so scatter
// points at the extreme stay on the grid. A flat or empty sample maps
// everything to 0.
func NormalKey(xs []float64) func(float64) float64 {
	var lo, hi float64
	if len(xs) > 0 {
		lo, hi = stats.Sample{Xs: xs}.Bounds()
	}
	return func(v float64) float64 {
		if hi <= lo {
			return 0
		}
		n := clamp((v-lo)/(hi-lo), 0, 1)
		if n == 1 {
			n = math.Nextafter(1, 0)
		}
		return n
	}
}

// Describe summarizes xs as (min, mean, max) for chart footers.
func Describe(xs []float64) (lo, mean, hi float64) {
	if len(xs) == 0 {
		return 0, 0, 0
	}
	lo, hi = stats.Sample{Xs: xs}.Bounds()
	return lo, stats.Mean(xs), hi
}

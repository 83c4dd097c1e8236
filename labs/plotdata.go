// SPDX-License-Identifier: MIT

package labs

import (
	"math"
	"sort"

	"github.com/katalvlaran/numlab/chart"
	"github.com/katalvlaran/numlab/numeric"
)

// run is a contiguous stretch of drawable samples.
type run struct {
	x, y []float64
}

// splitRuns cuts (xs, ys) at every non-finite y so lines never bridge a
// pole or a clipped value.
func splitRuns(xs, ys []float64) []run {
	var out []run
	var cur run
	for i := range xs {
		if !numeric.Finite(ys[i]) {
			if len(cur.x) > 0 {
				out = append(out, cur)
				cur = run{}
			}
			continue
		}
		cur.x = append(cur.x, xs[i])
		cur.y = append(cur.y, ys[i])
	}
	if len(cur.x) > 0 {
		out = append(out, cur)
	}

	return out
}

// gapRanges shrinks [lo, hi] by margin at both ends and removes a margin
// around every pole inside it.
func gapRanges(lo, hi, margin float64, poles []float64) [][2]float64 {
	lo, hi = lo+margin, hi-margin
	ps := append([]float64(nil), poles...)
	sort.Float64s(ps)

	var out [][2]float64
	cur := lo
	for _, p := range ps {
		if p <= lo || p >= hi {
			continue
		}
		if p-margin > cur {
			out = append(out, [2]float64{cur, p - margin})
		}
		cur = math.Max(cur, p+margin)
	}
	if cur < hi {
		out = append(out, [2]float64{cur, hi})
	}

	return out
}

// paddedRange returns the y extent of runs widened by frac of its span,
// or nil when nothing is drawable.
func paddedRange(runs []run, frac float64) *chart.Range {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, r := range runs {
		for _, v := range r.y {
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
	}
	if lo > hi {
		return nil
	}
	pad := frac * (hi - lo)
	if pad == 0 {
		pad = 1
	}

	return &chart.Range{Min: lo - pad, Max: hi + pad}
}

// iterations returns 1..n as float64.
func iterations(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i + 1)
	}

	return out
}

// upTo keeps the pairs with x <= limit.
func upTo(xs, ys []float64, limit float64) ([]float64, []float64) {
	var ox, oy []float64
	for i, x := range xs {
		if x <= limit {
			ox = append(ox, x)
			oy = append(oy, ys[i])
		}
	}

	return ox, oy
}

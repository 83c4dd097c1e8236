// SPDX-License-Identifier: MIT

package chart

import (
	"image/color"
	"math"

	"github.com/katalvlaran/numlab/numeric"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	defaultLineWidth = 1.5
	defaultRadius    = 2.5
)

var dashPattern = []vg.Length{vg.Points(6), vg.Points(3)}

// bounds tracks the data extent of the drawn series.
type bounds struct {
	xmin, xmax, ymin, ymax float64
}

func emptyBounds() bounds {
	return bounds{math.Inf(1), math.Inf(-1), math.Inf(1), math.Inf(-1)}
}

func (b *bounds) add(x, y float64) {
	b.xmin, b.xmax = math.Min(b.xmin, x), math.Max(b.xmax, x)
	b.ymin, b.ymax = math.Min(b.ymin, y), math.Max(b.ymax, y)
}

func (b bounds) empty() bool { return b.xmin > b.xmax }

// legendEntry is collected while building and added once the position is known.
type legendEntry struct {
	label  string
	thumbs []plot.Thumbnailer
}

// Build converts a Panel into a gonum plot.
//
// Implementation:
//   - Stage 1: validate ranges and slice lengths.
//   - Stage 2: grid, then every series after MaskXY filtering; empty series
//     are skipped (no legend entry).
//   - Stage 3: reference lines spanning the fixed range or the data extent
//     (series and bar slots).
//   - Stage 4: bars with nominal X ticks.
//   - Stage 5: log scales, fixed ranges and the empty-log-axis fallback.
func Build(pn Panel) (*plot.Plot, error) {
	// Stage 1: validation.
	if err := checkRange(pn.XRange, pn.LogX); err != nil {
		return nil, chartErrorf("Build", err)
	}
	if err := checkRange(pn.YRange, pn.LogY); err != nil {
		return nil, chartErrorf("Build", err)
	}
	for _, s := range pn.Series {
		if len(s.X) != len(s.Y) {
			return nil, chartErrorf("Build", ErrLengthMismatch)
		}
	}
	if pn.Bars != nil && (len(pn.Bars.Labels) != len(pn.Bars.Values) ||
		(pn.Bars.Colors != nil && len(pn.Bars.Colors) != len(pn.Bars.Values))) {
		return nil, chartErrorf("Build", ErrLengthMismatch)
	}

	p := plot.New()
	p.Title.Text = pn.Title
	p.X.Label.Text = pn.XLabel
	p.Y.Label.Text = pn.YLabel

	// Stage 2: grid and series.
	if pn.Grid {
		g := plotter.NewGrid()
		if pn.Bars != nil {
			g.Vertical.Color = nil
		}
		p.Add(g)
	}
	var legend []legendEntry
	ext := emptyBounds()
	for i, s := range pn.Series {
		xs, ys := numeric.MaskXY(s.X, s.Y, pn.LogX, pn.LogY)
		if len(xs) == 0 {
			continue
		}
		xys := make(plotter.XYs, len(xs))
		for k := range xs {
			xys[k].X, xys[k].Y = xs[k], ys[k]
			ext.add(xs[k], ys[k])
		}
		thumbs, err := addSeries(p, s, xys, pick(s.Color, i))
		if err != nil {
			return nil, chartErrorf("Build", err)
		}
		if s.Label != "" {
			legend = append(legend, legendEntry{s.Label, thumbs})
		}
	}

	if pn.Bars != nil {
		bp := newBarPlotter(*pn.Bars, pn.LogY)
		for i, v := range pn.Bars.Values {
			if bp.drawable(v) {
				ext.add(float64(i)-0.5, v)
				ext.add(float64(i)+0.5, v)
			}
		}
	}

	// Stage 3: reference lines.
	xlo, xhi := span(pn.XRange, ext.xmin, ext.xmax)
	ylo, yhi := span(pn.YRange, ext.ymin, ext.ymax)
	for i, r := range pn.HLines {
		if xlo > xhi || !numeric.Finite(r.Value) || (pn.LogY && r.Value <= 0) {
			continue
		}
		l, err := refLine(plotter.XYs{{X: xlo, Y: r.Value}, {X: xhi, Y: r.Value}}, r, i)
		if err != nil {
			return nil, chartErrorf("Build", err)
		}
		p.Add(l)
		if r.Label != "" {
			legend = append(legend, legendEntry{r.Label, []plot.Thumbnailer{l}})
		}
	}
	for i, r := range pn.VLines {
		if ylo > yhi || !numeric.Finite(r.Value) || (pn.LogX && r.Value <= 0) {
			continue
		}
		l, err := refLine(plotter.XYs{{X: r.Value, Y: ylo}, {X: r.Value, Y: yhi}}, r, i)
		if err != nil {
			return nil, chartErrorf("Build", err)
		}
		p.Add(l)
		if r.Label != "" {
			legend = append(legend, legendEntry{r.Label, []plot.Thumbnailer{l}})
		}
	}

	// Stage 4: bars.
	if pn.Bars != nil && len(pn.Bars.Values) > 0 {
		p.Add(newBarPlotter(*pn.Bars, pn.LogY))
		p.NominalX(pn.Bars.Labels...)
		for _, sw := range pn.Bars.Legend {
			legend = append(legend, legendEntry{sw.Label, []plot.Thumbnailer{swatch{sw.Color}}})
		}
	}

	// Stage 5: scales and ranges.
	applyAxis(&p.X, pn.LogX, pn.XRange)
	applyAxis(&p.Y, pn.LogY, pn.YRange)
	placeLegend(p, pn.Legend, legend)

	return p, nil
}

func addSeries(p *plot.Plot, s Series, xys plotter.XYs, col color.Color) ([]plot.Thumbnailer, error) {
	width := s.Width
	if width <= 0 {
		width = defaultLineWidth
	}
	radius := s.Radius
	if radius <= 0 {
		radius = defaultRadius
	}

	styleLine := func(l *plotter.Line) {
		l.LineStyle.Color = col
		l.LineStyle.Width = vg.Points(width)
		if s.Dashed {
			l.LineStyle.Dashes = dashPattern
		}
	}
	styleScatter := func(sc *plotter.Scatter) {
		sc.GlyphStyle.Color = col
		sc.GlyphStyle.Radius = vg.Points(radius)
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
	}

	switch s.Kind {
	case Points:
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, err
		}
		styleScatter(sc)
		p.Add(sc)
		return []plot.Thumbnailer{sc}, nil
	case LinePoints:
		l, sc, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, err
		}
		styleLine(l)
		styleScatter(sc)
		p.Add(l, sc)
		return []plot.Thumbnailer{l, sc}, nil
	default:
		l, err := plotter.NewLine(xys)
		if err != nil {
			return nil, err
		}
		styleLine(l)
		p.Add(l)
		return []plot.Thumbnailer{l}, nil
	}
}

func refLine(xys plotter.XYs, r RefLine, i int) (*plotter.Line, error) {
	l, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	l.LineStyle.Color = r.Color
	if l.LineStyle.Color == nil {
		l.LineStyle.Color = Gray
	}
	l.LineStyle.Width = vg.Points(1)
	if r.Dashed {
		l.LineStyle.Dashes = plotutil.Dashes(1 + i%4)
	}

	return l, nil
}

// pick returns c, or the i-th palette colour when c is nil.
func pick(c color.Color, i int) color.Color {
	if c != nil {
		return c
	}

	return plotutil.Color(i)
}

func span(r *Range, lo, hi float64) (float64, float64) {
	if r != nil {
		return r.Min, r.Max
	}

	return lo, hi
}

func checkRange(r *Range, log bool) error {
	if r == nil {
		return nil
	}
	if !numeric.Finite(r.Min) || !numeric.Finite(r.Max) || r.Min >= r.Max || (log && r.Min <= 0) {
		return ErrBadRange
	}

	return nil
}

// applyAxis sets the scale, fixed range and log fallbacks of one axis.
func applyAxis(a *plot.Axis, log bool, r *Range) {
	if r != nil {
		a.Min, a.Max = r.Min, r.Max
	}
	if !log {
		return
	}
	a.Scale = plot.LogScale{}
	a.Tick.Marker = plot.LogTicks{Prec: -1}
	switch {
	case !(a.Min > 0) || a.Max < a.Min || math.IsInf(a.Max, 1):
		a.Min, a.Max = 1, 10
	case a.Min == a.Max:
		a.Min, a.Max = a.Min/2, a.Max*2
	}
}

func placeLegend(p *plot.Plot, pos LegendPos, entries []legendEntry) {
	if pos == LegendNone {
		return
	}
	for _, e := range entries {
		p.Legend.Add(e.label, e.thumbs...)
	}
	p.Legend.Top = pos == LegendTopRight || pos == LegendTopLeft
	p.Legend.Left = pos == LegendTopLeft || pos == LegendBottomLeft
}

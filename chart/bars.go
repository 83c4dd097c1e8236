// SPDX-License-Identifier: MIT

package chart

import (
	"fmt"
	"image/color"
	"math"

	"github.com/katalvlaran/numlab/numeric"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const defaultBarWidth = 0.6

// barPlotter draws one bar per value at x = i. Bars rise from y = 0 on a
// linear axis and from the bottom of the data area on a log axis, so
// non-positive baselines never reach the log transform.
type barPlotter struct {
	Bars
	logY bool
}

func newBarPlotter(b Bars, logY bool) *barPlotter {
	if b.Width <= 0 || b.Width > 1 {
		b.Width = defaultBarWidth
	}

	return &barPlotter{Bars: b, logY: logY}
}

func (b *barPlotter) drawable(v float64) bool {
	return numeric.Finite(v) && (!b.logY || v > 0)
}

func (b *barPlotter) color(i int) color.Color {
	if b.Colors != nil && b.Colors[i] != nil {
		return b.Colors[i]
	}

	return plotutil.Color(0)
}

// Plot implements plot.Plotter.
func (b *barPlotter) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	base := c.Min.Y
	if !b.logY {
		base = trY(0)
	}

	sty := plt.Y.Tick.Label
	sty.XAlign = draw.XCenter
	for i, v := range b.Values {
		if !b.drawable(v) {
			continue
		}
		x := float64(i)
		left, right := trX(x-b.Width/2), trX(x+b.Width/2)
		top := trY(v)
		poly := []vg.Point{{X: left, Y: base}, {X: right, Y: base}, {X: right, Y: top}, {X: left, Y: top}}
		c.FillPolygon(b.color(i), c.ClipPolygonXY(poly))

		label := b.label(v)
		if label == "" {
			continue
		}
		sty.YAlign = draw.YBottom
		if top < base {
			sty.YAlign = draw.YTop
		}
		c.FillText(sty, vg.Point{X: (left + right) / 2, Y: top}, label)
	}
}

func (b *barPlotter) label(v float64) string {
	switch {
	case b.Annotate != nil:
		return b.Annotate(v)
	case b.Format != "":
		return fmt.Sprintf(b.Format, v)
	default:
		return ""
	}
}

// DataRange implements plot.DataRanger.
func (b *barPlotter) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = -0.5, float64(len(b.Values))-0.5
	ymin, ymax = math.Inf(1), math.Inf(-1)
	if !b.logY {
		ymin, ymax = 0, 0
	}
	for _, v := range b.Values {
		if !b.drawable(v) {
			continue
		}
		ymin, ymax = math.Min(ymin, v), math.Max(ymax, v)
	}
	if b.logY && ymin <= ymax {
		// Leave room below the smallest bar.
		ymin /= 2
	}

	return xmin, xmax, ymin, ymax
}

// swatch is a filled-rectangle legend thumbnail.
type swatch struct {
	color color.Color
}

// Thumbnail implements plot.Thumbnailer.
func (s swatch) Thumbnail(c *draw.Canvas) {
	pts := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
	}
	c.FillPolygon(s.color, c.ClipPolygonY(pts))
}

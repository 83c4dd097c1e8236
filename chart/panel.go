// SPDX-License-Identifier: MIT

package chart

import "image/color"

// Kind selects how a Series is drawn.
type Kind int

const (
	// Line joins consecutive points.
	Line Kind = iota
	// Points draws a glyph per point.
	Points
	// LinePoints draws both.
	LinePoints
)

// LegendPos places the legend inside the data area.
type LegendPos int

const (
	LegendTopRight LegendPos = iota
	LegendTopLeft
	LegendBottomRight
	LegendBottomLeft
	LegendNone
)

// Range is a fixed axis range.
type Range struct {
	Min, Max float64
}

// Series is one data set. A nil Color picks from the default palette by
// series index. Width and Radius are in points; zero picks a default.
type Series struct {
	Label  string
	X, Y   []float64
	Kind   Kind
	Color  color.Color
	Dashed bool
	Width  float64
	Radius float64
}

// RefLine is a horizontal or vertical reference line spanning the data.
type RefLine struct {
	Value  float64
	Label  string
	Color  color.Color
	Dashed bool
}

// Bars is a nominal bar chart: one bar per label at x = 0, 1, 2, ...
// Colors, when set, must match Values in length; otherwise the palette's
// first colour is used. Annotate, when set, labels every bar; otherwise a
// non-empty Format labels it with fmt.Sprintf(Format, value).
type Bars struct {
	Labels   []string
	Values   []float64
	Colors   []color.Color
	Width    float64 // fraction of the slot, default 0.6
	Format   string
	Annotate func(v float64) string
	Legend   []Swatch
}

// Swatch is a colour legend entry for bar charts.
type Swatch struct {
	Label string
	Color color.Color
}

// Panel is one set of axes.
type Panel struct {
	Title  string
	XLabel string
	YLabel string

	LogX, LogY bool
	XRange     *Range
	YRange     *Range
	Grid       bool

	Series []Series
	HLines []RefLine
	VLines []RefLine
	Bars   *Bars

	Legend LegendPos
}

// Palette colours used by the lab reports.
var (
	Red    = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	Green  = color.RGBA{R: 44, G: 160, B: 44, A: 255}
	Blue   = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	Orange = color.RGBA{R: 255, G: 127, B: 14, A: 255}
	Purple = color.RGBA{R: 148, G: 103, B: 189, A: 255}
	Gray   = color.RGBA{R: 127, G: 127, B: 127, A: 255}
	Black  = color.RGBA{A: 255}
)

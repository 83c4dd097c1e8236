// SPDX-License-Identifier: MIT

package chart_test

import (
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/numlab/chart"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var small = []chart.Option{chart.WithSize(4, 3), chart.WithDPI(30)}

func requirePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, w, cfg.Width)
	assert.Equal(t, h, cfg.Height)
}

func TestBuild_LogMasking(t *testing.T) {
	p, err := chart.Build(chart.Panel{
		LogY: true,
		Series: []chart.Series{
			{X: []float64{1, 2, 3, 4}, Y: []float64{-1, 10, 100, math.NaN()}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 10.0, p.Y.Min)
	assert.Equal(t, 100.0, p.Y.Max)
	assert.Equal(t, 2.0, p.X.Min, "x of the masked points is dropped too")
}

func TestBuild_EmptyLogAxes(t *testing.T) {
	p, err := chart.Build(chart.Panel{
		LogX: true,
		LogY: true,
		Series: []chart.Series{
			{X: []float64{0, -1}, Y: []float64{1, 2}},
		},
		HLines: []chart.RefLine{{Value: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1.0, p.X.Min)
	assert.Equal(t, 10.0, p.X.Max)
	assert.Equal(t, 1.0, p.Y.Min)
	assert.Equal(t, 10.0, p.Y.Max)

	path := filepath.Join(t.TempDir(), "empty.png")
	assert.NotPanics(t, func() {
		require.NoError(t, chart.SavePanel(path, chart.Panel{LogX: true, LogY: true, Title: "empty"}, small...))
	})
	requirePNG(t, path, 120, 90)
}

func TestBuild_SinglePointLog(t *testing.T) {
	p, err := chart.Build(chart.Panel{
		LogY:   true,
		Series: []chart.Series{{X: []float64{1}, Y: []float64{4}, Kind: chart.Points}},
	})
	require.NoError(t, err)
	assert.Equal(t, 2.0, p.Y.Min)
	assert.Equal(t, 8.0, p.Y.Max)
}

func TestBuild_FixedRange(t *testing.T) {
	p, err := chart.Build(chart.Panel{
		YRange: &chart.Range{Min: -50000, Max: 55000},
		Series: []chart.Series{{X: []float64{0, 1}, Y: []float64{0, 1}}},
	})
	require.NoError(t, err)
	assert.Equal(t, -50000.0, p.Y.Min)
	assert.Equal(t, 55000.0, p.Y.Max)
}

func TestBuild_Errors(t *testing.T) {
	cases := []struct {
		name string
		pn   chart.Panel
		want error
	}{
		{"series length", chart.Panel{Series: []chart.Series{{X: []float64{1}, Y: nil}}}, chart.ErrLengthMismatch},
		{"bar length", chart.Panel{Bars: &chart.Bars{Labels: []string{"a"}, Values: []float64{1, 2}}}, chart.ErrLengthMismatch},
		{"bar colors", chart.Panel{Bars: &chart.Bars{Labels: []string{"a", "b"}, Values: []float64{1, 2}, Colors: []color.Color{chart.Red}}}, chart.ErrLengthMismatch},
		{"valid bars", chart.Panel{Bars: &chart.Bars{Labels: []string{"a"}, Values: []float64{1}}}, nil},
		{"inverted range", chart.Panel{XRange: &chart.Range{Min: 2, Max: 1}}, chart.ErrBadRange},
		{"log range", chart.Panel{LogY: true, YRange: &chart.Range{Min: 0, Max: 1}}, chart.ErrBadRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := chart.Build(tc.pn)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestSavePanel_Full(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "full.png")
	err := chart.SavePanel(path, chart.Panel{
		Title:  "full",
		XLabel: "x",
		YLabel: "y",
		Grid:   true,
		Series: []chart.Series{
			{Label: "line", X: []float64{0, 1, 2}, Y: []float64{0, 1, 4}},
			{Label: "points", X: []float64{0, 1, 2}, Y: []float64{1, 2, 3}, Kind: chart.Points, Color: chart.Red},
			{Label: "both", X: []float64{0, 1, 2}, Y: []float64{2, 1, 0}, Kind: chart.LinePoints, Dashed: true},
		},
		HLines: []chart.RefLine{{Value: 2, Label: "h", Dashed: true}},
		VLines: []chart.RefLine{{Value: 1, Label: "v", Color: chart.Green}},
		Legend: chart.LegendTopLeft,
	}, small...)
	require.NoError(t, err)
	requirePNG(t, path, 120, 90)
}

func TestSavePanel_Bars(t *testing.T) {
	dir := t.TempDir()
	bars := chart.Bars{
		Labels: []string{"jacobi", "gmres", "bad"},
		Values: []float64{1e-8, 1e-12, 0},
		Colors: []color.Color{chart.Green, chart.Green, chart.Red},
		Format: "%.1e",
		Legend: []chart.Swatch{{Label: "converged", Color: chart.Green}, {Label: "diverged", Color: chart.Red}},
	}

	for name, logY := range map[string]bool{"linear.png": false, "log.png": true} {
		path := filepath.Join(dir, name)
		assert.NotPanics(t, func() {
			require.NoError(t, chart.SavePanel(path, chart.Panel{LogY: logY, Grid: true, Bars: &bars}, small...))
		})
		requirePNG(t, path, 120, 90)
	}

	negative := chart.Bars{Labels: []string{"a", "b"}, Values: []float64{-68495.1, 3}, Format: "%.2f"}
	require.NoError(t, chart.SavePanel(filepath.Join(dir, "neg.png"), chart.Panel{Bars: &negative}, small...))

	var annotated []float64
	withLine := chart.Bars{
		Labels:   []string{"x", "y"},
		Values:   []float64{4.2, 4.3},
		Annotate: func(v float64) string { annotated = append(annotated, v); return "v" },
	}
	p, err := chart.Build(chart.Panel{Bars: &withLine, HLines: []chart.RefLine{{Value: 4.25, Label: "exact"}}})
	require.NoError(t, err)
	require.NotNil(t, p)
	require.NoError(t, chart.SavePanel(filepath.Join(dir, "annotated.png"), chart.Panel{Bars: &withLine}, small...))
	assert.Equal(t, []float64{4.2, 4.3}, annotated)
}

func TestSaveGrid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.png")
	line := chart.Panel{Series: []chart.Series{{X: []float64{0, 1}, Y: []float64{1, 2}}}}
	logp := chart.Panel{LogY: true, Series: []chart.Series{{X: []float64{0, 1}, Y: []float64{1, 100}}}}

	require.NoError(t, chart.SaveGrid(path, [][]chart.Panel{{line, logp}, {logp, line}}, chart.WithSize(6, 4), chart.WithDPI(20)))
	requirePNG(t, path, 120, 80)

	err := chart.SaveGrid(path, [][]chart.Panel{{line, line}, {line}})
	assert.ErrorIs(t, err, chart.ErrBadGrid)
	err = chart.SaveGrid(path, nil)
	assert.ErrorIs(t, err, chart.ErrBadGrid)
}

func TestOptions(t *testing.T) {
	o := chart.NewOptions()
	assert.Equal(t, chart.DefaultDPI, o.DPI())
	assert.InDelta(t, 10*72.0, float64(o.Width()), 1e-9)
	assert.InDelta(t, 6*72.0, float64(o.Height()), 1e-9)

	assert.Panics(t, func() { chart.WithDPI(0) })
	assert.Panics(t, func() { chart.WithSize(0, 1) })
	assert.Panics(t, func() { chart.WithSize(1, math.NaN()) })
}

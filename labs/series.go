// SPDX-License-Identifier: MIT

package labs

import (
	"github.com/katalvlaran/numlab/chart"
	"go.uber.org/zap"
)

// seriesFiles are the Dla_N.csv inputs in plotting order.
var seriesFiles = []struct{ file, label string }{
	{"Dla_2.csv", "2"},
	{"Dla_4.csv", "4"},
	{"Dla_8.csv", "8"},
	{"Dla_16.csv", "16"},
	{"Dla_100.csv", "100"},
}

// reportSeries overlays column 3 against column 1 of every Dla_N.csv.
// Missing files are logged and left out of the figure.
//
// Outputs: series_plot.png.
func reportSeries(env *Env) {
	pn := chart.Panel{
		Title:  "Functions from CSV files",
		XLabel: "x",
		YLabel: "y",
		Grid:   true,
	}
	for _, sf := range seriesFiles {
		cols, err := loadColumns(env.In(sf.file), []int{0, 2})
		if err != nil {
			env.Log.Warn("series input ignored", zap.String("file", sf.file), zap.Error(err))
			continue
		}
		pn.Series = append(pn.Series, chart.Series{Label: "Function " + sf.label, X: cols[0], Y: cols[1]})
	}

	env.step("series", "series_plot.png", func(path string) error {
		if len(pn.Series) == 0 {
			return ErrNoData
		}
		return chart.SavePanel(path, pn, env.chartOpts()...)
	})
}

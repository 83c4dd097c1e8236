// SPDX-License-Identifier: MIT

package labs

import (
	"github.com/katalvlaran/numlab/chart"
	"github.com/katalvlaran/numlab/dataio"
	"github.com/katalvlaran/numlab/numeric"
)

const nodeStride = 5

// reportInterpolation draws the Newton interpolation polynomial with every
// fifth node, and the Horner evaluation of the same polynomial.
//
// Outputs: wykres_newton.png, wykres_horner.png.
func reportInterpolation(env *Env) {
	env.step("newton", "wykres_newton.png", func(path string) error {
		xs, ys, err := loadXY(env.In("plot_data.csv"))
		if err != nil {
			return err
		}
		xi, fxi, err := dataio.LoadNodes(env.In("interpolacja_N_gr_03.txt"))
		if err != nil {
			return err
		}
		pn := chart.Panel{
			Title:  "Newton interpolation",
			XLabel: "x",
			YLabel: "W(x)",
			Grid:   true,
			YRange: &chart.Range{Min: -50000, Max: 55000},
			Series: []chart.Series{
				{Label: "Newton interpolation", X: xs, Y: ys, Color: chart.Blue},
				{
					Label:  "nodes (every 5th)",
					X:      numeric.Stride(xi, nodeStride),
					Y:      numeric.Stride(fxi, nodeStride),
					Kind:   chart.Points,
					Color:  chart.Red,
					Radius: 3,
				},
			},
		}
		return chart.SavePanel(path, pn, env.chartOpts(chart.WithSize(14, 7))...)
	})

	env.step("horner", "wykres_horner.png", func(path string) error {
		xs, ys, err := loadXY(env.In("horner_data.csv"))
		if err != nil {
			return err
		}
		pn := chart.Panel{
			Title:  "Polynomial values (Horner)",
			XLabel: "x",
			YLabel: "W(x)",
			Grid:   true,
			Series: []chart.Series{{Label: "Horner", X: xs, Y: ys, Color: chart.Green}},
		}
		return chart.SavePanel(path, pn, env.chartOpts(chart.WithSize(14, 7))...)
	})
}

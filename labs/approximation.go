// SPDX-License-Identifier: MIT

package labs

import (
	"math"
	"strconv"

	"github.com/katalvlaran/numlab/chart"
	"github.com/katalvlaran/numlab/dataio"
	"github.com/katalvlaran/numlab/numeric"
)

// Least-squares setup of the approximation lab.
const (
	approxA, approxB = 1.5, 3.0
	approxDegree     = 6
	approxMinDegree  = 2
	approxMaxDegree  = 8
	// approxSamples is the number of grid intervals of the error tables.
	approxSamples = 1000
)

// approxF is e^x·cos(6x) − x³ + 5x² − 10.
func approxF(x float64) float64 {
	return math.Exp(x)*math.Cos(6*x) - x*x*x + 5*x*x - 10
}

// reportApproximation plots a least-squares approximation against the
// exact function, its pointwise error and the RMSE by polynomial degree.
//
// Inputs: approximation_data.txt (x, f(x), F(x), error) and
// error_by_degree.txt (degree, rmse), tab separated with # comments.
// A missing table is computed by fitting f on [1.5, 3] (degree 6 for
// the data table, degrees 2..8 for the RMSE table) and written to the
// output directory.
//
// Outputs: approximation_plot.png, error_plot.png, error_vs_degree_plot.png.
func reportApproximation(env *Env) {
	cols, err := approximationTable(env)
	if err != nil {
		env.skip("approximation", err)
		env.skip("error", err)
	} else {
		x, f, approx, diff := cols[0], cols[1], cols[2], cols[3]
		env.figure("approximation", "approximation_plot.png", chart.Panel{
			Title:  "Approximation of f(x) = e^x·cos(6x) − x³ + 5x² − 10",
			XLabel: "x",
			YLabel: "function value",
			Grid:   true,
			Series: []chart.Series{
				{Label: "exact f(x)", X: x, Y: f, Color: chart.Blue, Width: 2},
				{Label: "approximation F(x)", X: x, Y: approx, Color: chart.Red, Dashed: true, Width: 2},
			},
		})
		env.figure("error", "error_plot.png", chart.Panel{
			Title:  "Approximation error",
			XLabel: "x",
			YLabel: "f(x) − F(x)",
			Grid:   true,
			Legend: chart.LegendNone,
			Series: []chart.Series{{X: x, Y: diff, Color: chart.Green, Width: 2}},
		})
	}

	deg, err := degreeTable(env)
	if err != nil {
		env.skip("rmse", err)
		return
	}
	env.figure("rmse", "error_vs_degree_plot.png", chart.Panel{
		Title:  "Approximation error vs polynomial degree",
		XLabel: "polynomial degree",
		YLabel: "RMSE (log scale)",
		LogY:   true,
		Grid:   true,
		Legend: chart.LegendNone,
		Series: []chart.Series{{X: deg[0], Y: deg[1], Kind: chart.LinePoints, Color: chart.Blue, Width: 2}},
	})
}

// approximationTable loads or computes x, f(x), F(x) and f(x) − F(x).
func approximationTable(env *Env) ([][]float64, error) {
	const name = "approximation_data.txt"
	cols, err := loadColumns(env.In(name), []int{0, 1, 2, 3}, dataio.WithNames("x", "f_x", "F_x", "error"))
	if err == nil || !missing(err) {
		return cols, err
	}

	p, err := numeric.LeastSquares(approxF, approxA, approxB, approxDegree)
	if err != nil {
		return nil, err
	}
	xs := numeric.Linspace(approxA, approxB, approxSamples+1)
	cols = [][]float64{xs, make([]float64, len(xs)), make([]float64, len(xs)), make([]float64, len(xs))}
	lines := []string{"# x\tf(x)\tF(x)\terror"}
	for i, x := range xs {
		f, fit := approxF(x), p.Eval(x)
		cols[1][i], cols[2][i], cols[3][i] = f, fit, f-fit
		lines = append(lines, ftoa(x)+"\t"+ftoa(f)+"\t"+ftoa(fit)+"\t"+ftoa(f-fit))
	}
	env.step("approximation-data", name, func(path string) error { return writeText(path, lines) })

	return cols, nil
}

// degreeTable loads or computes the RMSE of the fit for each degree.
func degreeTable(env *Env) ([][]float64, error) {
	const name = "error_by_degree.txt"
	cols, err := loadColumns(env.In(name), []int{0, 1}, dataio.WithNames("degree", "rmse"))
	if err == nil || !missing(err) {
		return cols, err
	}

	cols = [][]float64{nil, nil}
	lines := []string{"# Degree\tRMSE"}
	for d := approxMinDegree; d <= approxMaxDegree; d++ {
		p, err := numeric.LeastSquares(approxF, approxA, approxB, d)
		if err != nil {
			return nil, err
		}
		rmse, err := numeric.SampleRMSE(approxF, p.Eval, approxA, approxB, approxSamples+1)
		if err != nil {
			return nil, err
		}
		cols[0], cols[1] = append(cols[0], float64(d)), append(cols[1], rmse)
		lines = append(lines, strconv.Itoa(d)+"\t"+ftoa(rmse))
	}
	env.step("degree-data", name, func(path string) error { return writeText(path, lines) })

	return cols, nil
}

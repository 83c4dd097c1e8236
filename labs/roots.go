// SPDX-License-Identifier: MIT

package labs

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/katalvlaran/numlab/chart"
	"github.com/katalvlaran/numlab/numeric"
	"github.com/katalvlaran/numlab/rootfind"
	"go.uber.org/zap"
)

const (
	// overviewMargin keeps plotted samples away from the scan ends and poles.
	overviewMargin = 0.1
	// overviewSamples is the grid size of each plotted stretch.
	overviewSamples = 1000
)

var methodColors = map[rootfind.Method]color.Color{
	rootfind.MethodBisection: chart.Blue,
	rootfind.MethodNewton:    chart.Red,
	rootfind.MethodSecant:    chart.Green,
}

// reportRoots locates the roots of the lab functions, compares the three
// methods on the first root of each and writes the summary table.
//
// Outputs: functions_plot.png, convergence_<function>.png,
// results_summary.csv.
func reportRoots(env *Env) {
	fns := rootfind.LabFunctions()
	found := make([][]float64, len(fns))
	for i, fn := range fns {
		roots, err := rootfind.FindRoots(fn.Eval, env.ScanMin, env.ScanMax, env.Roots...)
		if err != nil {
			env.skip("find:"+fn.Slug(), err)
			continue
		}
		found[i] = roots
		env.Log.Info("roots located", zap.String("function", fn.Name), zap.Float64s("roots", roots))
	}

	// Overview.
	panels := make([][]chart.Panel, len(fns))
	for i, fn := range fns {
		panels[i] = []chart.Panel{overviewPanel(env, fn, found[i])}
	}
	env.grid("functions", "functions_plot.png", 12, 15, panels)

	// Method comparison on the first root of each function.
	var cmps []rootfind.Comparison
	for i, fn := range fns {
		step := "convergence:" + fn.Slug()
		if len(found[i]) == 0 {
			env.skip(step, labErrorf(fn.Name, ErrNoRoots))
			continue
		}
		cmp, err := rootfind.Compare(fn, found[i][0], env.Roots...)
		if err != nil {
			env.skip(step, err)
			continue
		}
		cmps = append(cmps, cmp)
		for _, r := range cmp.Results {
			env.Log.Debug("method finished",
				zap.String("function", fn.Name),
				zap.String("method", string(r.Method)),
				zap.Float64("root", r.Root),
				zap.Int("iterations", r.Iterations()),
				zap.Stringer("reason", r.Reason),
			)
		}
		env.grid(step, "convergence_"+fn.Slug()+".png", 16, 7, [][]chart.Panel{convergencePanels(cmp)})
	}

	env.step("summary", "results_summary.csv", func(path string) error {
		if len(cmps) == 0 {
			return ErrNoRoots
		}
		return writeWith(path, func(w io.Writer) error {
			return rootfind.WriteSummaryCSV(w, rootfind.Summarize(cmps))
		})
	})
}

// overviewPanel draws fn over the scan interval with its roots on y = 0.
func overviewPanel(env *Env, fn rootfind.Function, roots []float64) chart.Panel {
	var runs []run
	for _, rg := range gapRanges(env.ScanMin, env.ScanMax, overviewMargin, fn.Poles) {
		xs := numeric.Linspace(rg[0], rg[1], overviewSamples)
		ys := make([]float64, len(xs))
		for k, x := range xs {
			ys[k] = fn.Eval(x)
			if math.Abs(ys[k]) >= env.ValueClip {
				ys[k] = math.NaN()
			}
		}
		runs = append(runs, splitRuns(xs, ys)...)
	}

	pn := chart.Panel{
		Title:  fmt.Sprintf("%s: f(x) = %s", fn.Name, fn.Formula),
		XLabel: "x",
		YLabel: "f(x)",
		Grid:   true,
		XRange: &chart.Range{Min: env.ScanMin, Max: env.ScanMax},
		YRange: paddedRange(runs, 0.1),
		HLines: []chart.RefLine{{Value: 0, Color: chart.Black, Dashed: true}},
	}
	for k, r := range runs {
		s := chart.Series{X: r.x, Y: r.y, Color: chart.Blue}
		if k == 0 {
			s.Label = "f(x)"
		}
		pn.Series = append(pn.Series, s)
	}
	if len(roots) > 0 {
		pn.Series = append(pn.Series, chart.Series{
			Label:  "roots",
			X:      roots,
			Y:      make([]float64, len(roots)),
			Kind:   chart.Points,
			Color:  chart.Red,
			Radius: 4,
		})
	}

	return pn
}

// convergencePanels plots the trajectories and their absolute errors.
func convergencePanels(cmp rootfind.Comparison) []chart.Panel {
	values := chart.Panel{
		Title:  "Convergence: " + cmp.Function,
		XLabel: "iteration",
		YLabel: "approximation",
		Grid:   true,
		HLines: []chart.RefLine{{
			Value:  cmp.Estimate,
			Label:  fmt.Sprintf("root ≈ %.10f", cmp.Estimate),
			Color:  chart.Black,
			Dashed: true,
		}},
	}
	errs := chart.Panel{
		Title:  "Absolute error: " + cmp.Function,
		XLabel: "iteration",
		YLabel: "|x_k − root|",
		LogY:   true,
		Grid:   true,
	}
	for _, r := range cmp.Results {
		it := iterations(r.Iterations())
		col := methodColors[r.Method]
		values.Series = append(values.Series, chart.Series{
			Label: string(r.Method), X: it, Y: r.Approximations, Kind: chart.LinePoints, Color: col,
		})
		errs.Series = append(errs.Series, chart.Series{
			Label: string(r.Method), X: it, Y: r.AbsErrors(), Kind: chart.LinePoints, Color: col,
		})
	}

	return []chart.Panel{values, errs}
}

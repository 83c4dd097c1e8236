// SPDX-License-Identifier: MIT

package labs

import (
	"fmt"
	"image/color"

	"github.com/katalvlaran/numlab/chart"
	"github.com/katalvlaran/numlab/dataio"
	"github.com/katalvlaran/numlab/numeric"
	"go.uber.org/zap"
)

// thermalRun is one Euler simulation: time, numerical and analytical temperature.
type thermalRun struct {
	label string
	color color.Color
	t     []float64
	num   []float64
	ana   []float64
}

var thermalInputs = []struct {
	file, label string
	color       color.Color
}{
	{"wyniki_h1.txt", "h = 10.0 s", chart.Red},
	{"wyniki_h2.txt", "h = 1.0 s", chart.Blue},
	{"wyniki_h3.txt", "h = 0.1 s", chart.Green},
}

// reportThermal compares Euler's method with the analytical cooling curve
// for three integration steps.
//
// Inputs: wyniki_h{1,2,3}.txt (time, T_num, T_ana) and blad_vs_krok.txt
// (step, RMSE[, max error]), whitespace separated with # comments.
//
// Outputs: porownanie_rozwiazan.png, blad_wzgledny.png, mse_vs_krok.png,
// profil_temperatury.png, error_stats.txt.
func reportThermal(env *Env) {
	var runs []thermalRun
	finest := -1
	for _, in := range thermalInputs {
		cols, err := loadColumns(env.In(in.file), []int{0, 1, 2}, dataio.WithHeader(false))
		if err != nil {
			env.Log.Warn("thermal input ignored", zap.String("file", in.file), zap.Error(err))
			continue
		}
		runs = append(runs, thermalRun{label: in.label, color: in.color, t: cols[0], num: cols[1], ana: cols[2]})
		if in.file == thermalInputs[len(thermalInputs)-1].file {
			finest = len(runs) - 1
		}
	}

	if len(runs) == 0 {
		for _, s := range []string{"comparison", "relative-error", "profile", "statistics"} {
			env.skip(s, ErrNoData)
		}
	} else {
		env.figure("comparison", "porownanie_rozwiazan.png", thermalComparison(runs), chart.WithSize(12, 8))
		env.figure("relative-error", "blad_wzgledny.png", thermalRelative(runs), chart.WithSize(12, 6))
		env.step("statistics", "error_stats.txt", func(path string) error {
			return writeThermalStats(env, path, runs)
		})
		if finest < 0 {
			env.skip("profile", fmt.Errorf("%s: %w", thermalInputs[len(thermalInputs)-1].file, ErrNoData))
		} else {
			env.grid("profile", "profil_temperatury.png", 12, 8, thermalProfile(runs[finest]))
		}
	}

	env.step("rmse", "mse_vs_krok.png", func(path string) error {
		t, err := dataio.LoadTable(env.In("blad_vs_krok.txt"), dataio.WithHeader(false))
		if err != nil {
			return err
		}
		if t.Len() == 0 {
			return ErrNoData
		}
		steps, err := t.FloatsAt(0)
		if err != nil {
			return err
		}
		rmse, err := t.FloatsAt(1)
		if err != nil {
			return err
		}
		pn := chart.Panel{
			Title:  "Euler error vs integration step",
			XLabel: "integration step [s]",
			YLabel: "RMSE",
			LogX:   true,
			LogY:   true,
			Grid:   true,
			Legend: chart.LegendTopLeft,
			Series: []chart.Series{
				{Label: "RMSE", X: steps, Y: rmse, Kind: chart.LinePoints, Color: chart.Blue, Width: 2},
				{Label: "theoretical trend (RMSE ∝ h)", X: steps, Y: numeric.PowerTrend(steps, rmse[0], 1), Color: chart.Red, Dashed: true, Width: 2},
			},
		}
		if len(t.Names()) > 2 {
			maxErr, err := t.FloatsAt(2)
			if err != nil {
				return err
			}
			pn.Series = append(pn.Series, chart.Series{Label: "max error", X: steps, Y: maxErr, Kind: chart.LinePoints, Color: chart.Orange})
		}
		return chart.SavePanel(path, pn, env.chartOpts()...)
	})
}

func thermalComparison(runs []thermalRun) chart.Panel {
	pn := chart.Panel{
		Title:  "Sphere cooling: Euler method vs analytical solution",
		XLabel: "time [s]",
		YLabel: "temperature [K]",
		Grid:   true,
	}
	for _, r := range runs {
		pn.Series = append(pn.Series, chart.Series{Label: "Euler " + r.label, X: r.t, Y: r.num, Color: r.color, Width: 2})
	}
	pn.Series = append(pn.Series, chart.Series{
		Label: "analytical solution", X: runs[0].t, Y: runs[0].ana, Color: chart.Black, Dashed: true, Width: 2,
	})

	return pn
}

func thermalRelative(runs []thermalRun) chart.Panel {
	pn := chart.Panel{
		Title:  "Relative error of Euler's method over time",
		XLabel: "time [s]",
		YLabel: "relative error [%]",
		LogY:   true,
		Grid:   true,
	}
	for _, r := range runs {
		pct, err := numeric.RelativeErrorsPct(r.num, r.ana)
		if err != nil {
			continue
		}
		pn.Series = append(pn.Series, chart.Series{Label: r.label, X: r.t, Y: pct, Color: r.color, Width: 2})
	}

	return pn
}

func thermalProfile(r thermalRun) [][]chart.Panel {
	diff := make([]float64, len(r.num))
	for i := range diff {
		diff[i] = r.num[i] - r.ana[i]
	}

	return [][]chart.Panel{
		{{
			Title:  "Detailed temperature profile",
			XLabel: "time [s]",
			YLabel: "temperature [K]",
			Grid:   true,
			Series: []chart.Series{
				{Label: "Euler " + r.label, X: r.t, Y: r.num, Color: chart.Green, Width: 2},
				{Label: "analytical solution", X: r.t, Y: r.ana, Color: chart.Black, Dashed: true, Width: 2},
			},
		}},
		{{
			Title:  "Absolute error over time",
			XLabel: "time [s]",
			YLabel: "T_num − T_ana [K]",
			Grid:   true,
			Legend: chart.LegendNone,
			Series: []chart.Series{{X: r.t, Y: diff, Color: chart.Red, Width: 2}},
		}},
	}
}

// writeThermalStats tabulates RMSE, mean and max absolute error per run.
func writeThermalStats(env *Env, path string, runs []thermalRun) error {
	lines := []string{"# step\trmse\tmae\tmax_error"}
	for _, r := range runs {
		st, err := numeric.Summarize(r.num, r.ana)
		if err != nil {
			return fmt.Errorf("%s: %w", r.label, err)
		}
		env.Log.Info("euler error",
			zap.String("step", r.label),
			zap.Float64("rmse", st.RMSE),
			zap.Float64("mae", st.MAE),
			zap.Float64("max", st.Max),
		)
		lines = append(lines, fmt.Sprintf("%s\t%.6e\t%.6e\t%.6e", r.label, st.RMSE, st.MAE, st.Max))
	}

	return writeText(path, lines)
}

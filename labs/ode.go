// SPDX-License-Identifier: MIT

package labs

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"github.com/katalvlaran/numlab/chart"
	"github.com/katalvlaran/numlab/dataio"
	"github.com/katalvlaran/numlab/numeric"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
)

const (
	odeHorizon       = 2374.0 // end of the simulated interval [s]
	odeCompareStep   = 10.0
	odeCompareWindow = 500.0
	odeErrorStep     = 1.0
	odeErrorFloor    = 1e-15
	odeErrorCeil     = 1e-2
	odeErrorStride   = 10
)

var (
	odeSteps      = []float64{10, 5, 2, 1}
	odeStepColors = []color.Color{chart.Red, chart.Blue, chart.Green, chart.Orange}
)

type odeMethod struct {
	key, label string
	color      color.Color
	dashed     bool
}

// odeMethods lists the methods in mse_results.dat column order.
var odeMethods = []odeMethod{
	{"heun", "Heun", chart.Red, false},
	{"midpoint", "Midpoint", chart.Blue, true},
	{"rk4", "RK4", chart.Green, false},
}

// reportODE compares Heun, midpoint and RK4 solutions of the cooling
// equation with the analytical curve.
//
// Inputs: <method>_h<step>.dat and analytical.dat (time, temperature),
// mse_results.dat (h, Heun, Midpoint, RK4 with a header line).
//
// Outputs: cooling_curves_rk4.png, methods_comparison.png,
// mse_comparison.png, absolute_error.png.
func reportODE(env *Env) {
	tAna, TAna, anaErr := loadXY(env.In("analytical.dat"))
	if anaErr != nil {
		env.Log.Warn("analytical solution unavailable", zap.Error(anaErr))
	}

	env.step("cooling-curves", "cooling_curves_rk4.png", func(path string) error {
		pn := chart.Panel{
			Title:  "Sphere cooling curves, RK4",
			XLabel: "time [s]",
			YLabel: "temperature [°C]",
			Grid:   true,
			XRange: &chart.Range{Min: 0, Max: odeHorizon},
		}
		for i, h := range odeSteps {
			t, T, err := loadODE(env, "rk4", h)
			if err != nil {
				env.Log.Warn("rk4 input ignored", zap.Float64("h", h), zap.Error(err))
				continue
			}
			pn.Series = append(pn.Series, chart.Series{Label: fmt.Sprintf("h = %.1f s", h), X: t, Y: T, Color: odeStepColors[i], Width: 2})
		}
		if len(pn.Series) == 0 {
			return ErrNoData
		}
		if anaErr == nil {
			pn.Series = append(pn.Series, analyticalSeries(tAna, TAna, 2))
		}
		return chart.SavePanel(path, pn, env.chartOpts()...)
	})

	env.step("methods", "methods_comparison.png", func(path string) error {
		pn := chart.Panel{
			Title:  fmt.Sprintf("Numerical methods (h = %.1f s, first %.0f s)", odeCompareStep, odeCompareWindow),
			XLabel: "time [s]",
			YLabel: "temperature [°C]",
			Grid:   true,
			XRange: &chart.Range{Min: 0, Max: odeCompareWindow},
		}
		for _, m := range odeMethods {
			t, T, err := loadODE(env, m.key, odeCompareStep)
			if err != nil {
				env.Log.Warn("method input ignored", zap.String("method", m.key), zap.Error(err))
				continue
			}
			t, T = upTo(t, T, odeCompareWindow)
			pn.Series = append(pn.Series, chart.Series{Label: m.label, X: t, Y: T, Color: m.color, Dashed: m.dashed, Width: 2})
		}
		if len(pn.Series) == 0 {
			return ErrNoData
		}
		if anaErr == nil {
			t, T := upTo(tAna, TAna, odeCompareWindow)
			pn.Series = append(pn.Series, analyticalSeries(t, T, 3))
		}
		return chart.SavePanel(path, pn, env.chartOpts()...)
	})

	env.step("mse", "mse_comparison.png", func(path string) error {
		t, err := dataio.LoadTable(env.In("mse_results.dat"), dataio.WithHeader(true))
		if err != nil {
			return err
		}
		if t.Len() == 0 {
			return ErrNoData
		}
		hs, err := t.FloatsAt(0)
		if err != nil {
			return err
		}
		pn := chart.Panel{
			Title:  "MSE vs time step",
			XLabel: "time step h [s]",
			YLabel: "mean squared error",
			LogX:   true,
			LogY:   true,
			Grid:   true,
			Legend: chart.LegendTopLeft,
		}
		for i, m := range odeMethods {
			mse, err := t.FloatsAt(i + 1)
			if err != nil {
				return err
			}
			pn.Series = append(pn.Series, chart.Series{Label: m.label, X: hs, Y: mse, Kind: chart.LinePoints, Color: m.color, Width: 2})
		}
		return chart.SavePanel(path, pn, env.chartOpts()...)
	})

	env.step("absolute-error", "absolute_error.png", func(path string) error {
		if anaErr != nil {
			return anaErr
		}
		ref, err := numeric.LinearInterpolator(tAna, TAna)
		if err != nil {
			return err
		}
		pn := chart.Panel{
			Title:  fmt.Sprintf("Absolute error over time (h = %.1f s)", odeErrorStep),
			XLabel: "time [s]",
			YLabel: "absolute error [°C]",
			LogY:   true,
			Grid:   true,
			XRange: &chart.Range{Min: 0, Max: odeHorizon},
			YRange: &chart.Range{Min: odeErrorFloor, Max: odeErrorCeil},
		}
		for _, m := range odeMethods {
			t, T, err := loadODE(env, m.key, odeErrorStep)
			if err != nil {
				env.Log.Warn("method input ignored", zap.String("method", m.key), zap.Error(err))
				continue
			}
			abs := make([]float64, len(t))
			for i := range t {
				abs[i] = math.Abs(T[i] - ref.Predict(t[i]))
			}
			abs = numeric.Floor(abs, odeErrorFloor)
			env.Log.Debug("absolute error",
				zap.String("method", m.key),
				zap.Float64("min", floats.Min(abs)),
				zap.Float64("max", floats.Max(abs)),
			)
			pn.Series = append(pn.Series, chart.Series{
				Label:  m.label,
				X:      numeric.Stride(t, odeErrorStride),
				Y:      numeric.Stride(abs, odeErrorStride),
				Color:  m.color,
				Dashed: m.dashed,
				Width:  2,
			})
		}
		if len(pn.Series) == 0 {
			return ErrNoData
		}
		return chart.SavePanel(path, pn, env.chartOpts()...)
	})
}

func analyticalSeries(t, T []float64, width float64) chart.Series {
	return chart.Series{Label: "analytical solution", X: t, Y: T, Color: chart.Black, Dashed: true, Width: width}
}

// loadODE reads <method>_h<step>.dat, accepting both "h10.0" and "h10".
func loadODE(env *Env, method string, h float64) ([]float64, []float64, error) {
	var firstErr error
	for _, name := range odeFileNames(method, h) {
		t, T, err := loadXY(env.In(name))
		if err == nil {
			return t, T, nil
		}
		if !missing(err) {
			return nil, nil, err
		}
		if firstErr == nil {
			firstErr = err
		}
	}

	return nil, nil, firstErr
}

func odeFileNames(method string, h float64) []string {
	fixed := strconv.FormatFloat(h, 'f', 1, 64)
	short := strconv.FormatFloat(h, 'g', -1, 64)
	names := []string{method + "_h" + fixed + ".dat"}
	if short != fixed {
		names = append(names, method+"_h"+short+".dat")
	}

	return names
}

// SPDX-License-Identifier: MIT

package labs

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
)

// Report produces the outputs of one lab. Failures are recorded per step
// on the Env, never returned.
type Report func(env *Env)

// Lab is a registered report.
type Lab struct {
	Name   string
	Title  string
	Report Report
}

// registry lists the reports in run order.
var registry = []Lab{
	{Name: "roots", Title: "Root finding: bisection, Newton and secant", Report: reportRoots},
	{Name: "series", Title: "Function series from Dla_N.csv", Report: reportSeries},
	{Name: "interpolation", Title: "Newton interpolation and Horner evaluation", Report: reportInterpolation},
	{Name: "quadrature", Title: "Composite quadrature vs exact integrals", Report: reportQuadrature},
	{Name: "gauss", Title: "Gauss–Legendre quadrature", Report: reportGauss},
	{Name: "approximation", Title: "Least-squares approximation", Report: reportApproximation},
	{Name: "thermal", Title: "Euler method for sphere cooling", Report: reportThermal},
	{Name: "ode", Title: "Heun, midpoint and RK4 cooling curves", Report: reportODE},
	{Name: "solvers", Title: "Iterative linear solvers", Report: reportSolvers},
}

// Labs returns the registered reports in run order.
func Labs() []Lab { return append([]Lab(nil), registry...) }

// Names returns the registered report names in run order.
func Names() []string {
	names := make([]string, len(registry))
	for i, l := range registry {
		names[i] = l.Name
	}

	return names
}

// Lookup returns the report registered under name.
func Lookup(name string) (Lab, error) {
	for _, l := range registry {
		if l.Name == name {
			return l, nil
		}
	}

	return Lab{}, labErrorf("Lookup", fmt.Errorf("%w: %q", ErrUnknownLab, name))
}

// Run executes the named reports (all of them when names is empty) and
// writes the manifest to the output directory.
//
// Implementation:
//   - Stage 1: resolve every name first, so a typo runs nothing.
//   - Stage 2: create the output directory.
//   - Stage 3: run each report with a lab-scoped logger.
//   - Stage 4: stamp and write the manifest.
func Run(env *Env, names ...string) error {
	// Stage 1: resolve.
	selected := registry
	if len(names) > 0 {
		selected = nil
		seen := make(map[string]bool, len(names))
		for _, n := range names {
			if seen[n] {
				continue
			}
			seen[n] = true
			l, err := Lookup(n)
			if err != nil {
				return labErrorf("Run", err)
			}
			selected = append(selected, l)
		}
	}

	// Stage 2: output directory.
	if err := os.MkdirAll(env.OutDir, 0o755); err != nil {
		return labErrorf("Run", fmt.Errorf("failed to create output directory: %w", err))
	}

	// Stage 3: reports.
	for _, l := range selected {
		env.Manifest.Labs = append(env.Manifest.Labs, l.Name)
		sub := env.forLab(l.Name)
		start := time.Now()
		sub.Log.Info("report started", zap.String("title", l.Title))
		l.Report(sub)
		sub.Log.Info("report finished", zap.Duration("elapsed", time.Since(start)))
	}

	// Stage 4: manifest.
	env.Manifest.Finished = time.Now().UTC()
	if err := env.Manifest.Write(env.Out(ManifestFile)); err != nil {
		return labErrorf("Run", err)
	}
	env.Log.Info("run finished",
		zap.String("run_id", env.Manifest.RunID),
		zap.Int("ok", env.Manifest.Count(StatusOK)),
		zap.Int("skipped", env.Manifest.Count(StatusSkipped)),
	)

	return nil
}

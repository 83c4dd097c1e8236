// SPDX-License-Identifier: MIT

package labs

import (
	"encoding/csv"
	"fmt"
	"image/color"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/numlab/chart"
	"github.com/katalvlaran/numlab/dataio"
	"github.com/katalvlaran/numlab/numeric"
)

// profile shapes the synthetic residual trajectory of a solver.
type profile string

const (
	// profileDecay falls geometrically from 1 to the final norm over the
	// solver's iterations, then stays flat.
	profileDecay profile = "decay"
	// profileGrowth rises geometrically from 1 to the final norm.
	profileGrowth profile = "growth"
	// profileOscillating is a linear ramp to the final norm with a sine ripple.
	profileOscillating profile = "oscillating"
	// profileDip falls to dipFloor over the first half, then rises.
	profileDip profile = "dip"
)

const (
	dipFloor       = 1e-3
	rippleFraction = 0.1
	ripplePeriods  = 10
	minTrajectory  = 4
)

// solver is one row of the iterative solver summary.
type solver struct {
	method     string
	convergent bool
	finalNorm  float64
	iterations int
	reduction  float64
	seconds    float64
	profile    profile
}

// defaultSolvers is the measured summary used when solvers.csv is absent.
func defaultSolvers() []solver {
	return []solver{
		{"Jacobi", false, 6.65e+23, 100, 1.545396, 0.082684, profileGrowth},
		{"Gauss-Seidel", true, 1.9e-6, 100, 0.800983, 0.019541, profileDecay},
		{"GMRES", false, 1068.769, 100, 0.85074, 0.01049, profileOscillating},
		{"GMRES+Jacobi", false, 3.41e+18, 100, 1.247147, 0.007068, profileDip},
		{"GMRES+GS", true, 0.005622, 100, 0.38859, 0.008741, profileDecay},
		{"GMRES+ILU(0)", true, 0.000599, 13, 0.11504, 0.00983, profileDecay},
	}
}

var solverHeader = []string{"method", "convergent", "final_norm", "iterations", "reduction", "time", "profile"}

// reportSolvers summarises iterative linear solvers: synthetic residual
// trajectories shaped by each solver's outcome, and the final norms.
//
// Input: solvers.csv (method, convergent, final_norm, iterations and
// optional reduction, time, profile); built-in measurements otherwise.
//
// Outputs: solvers_summary.csv, solver_convergence.png, solver_norms.png.
func reportSolvers(env *Env) {
	solvers, err := loadSolvers(env)
	if err != nil {
		for _, s := range []string{"table", "trajectories", "final-norms"} {
			env.skip(s, err)
		}
		return
	}

	env.step("table", "solvers_summary.csv", func(path string) error {
		return writeWith(path, func(w io.Writer) error { return writeSolvers(w, solvers) })
	})
	env.figure("trajectories", "solver_convergence.png", trajectoryPanel(solvers), chart.WithSize(12, 7))
	env.figure("final-norms", "solver_norms.png", finalNormPanel(solvers), chart.WithSize(12, 6))
}

func loadSolvers(env *Env) ([]solver, error) {
	t, err := dataio.LoadTable(env.In("solvers.csv"), dataio.WithHeader(true))
	if missing(err) {
		return defaultSolvers(), nil
	}
	if err != nil {
		return nil, err
	}
	if t.Len() == 0 {
		return nil, ErrNoData
	}

	methods, err := t.Strings("method")
	if err != nil {
		return nil, err
	}
	flags, err := t.Strings("convergent")
	if err != nil {
		return nil, err
	}
	cols, err := t.Columns("final_norm", "iterations")
	if err != nil {
		return nil, err
	}
	optional := func(name string) ([]float64, error) {
		if !t.Has(name) {
			return make([]float64, t.Len()), nil
		}
		return t.Floats(name)
	}
	reduction, err := optional("reduction")
	if err != nil {
		return nil, err
	}
	seconds, err := optional("time")
	if err != nil {
		return nil, err
	}
	var profiles []string
	if t.Has("profile") {
		if profiles, err = t.Strings("profile"); err != nil {
			return nil, err
		}
	}

	out := make([]solver, len(methods))
	for i, m := range methods {
		conv, err := parseFlag(flags[i])
		if err != nil {
			return nil, fmt.Errorf("solvers.csv row %d: %w", i+1, err)
		}
		s := solver{
			method:     strings.TrimSpace(m),
			convergent: conv,
			finalNorm:  cols[0][i],
			iterations: int(cols[1][i]),
			reduction:  reduction[i],
			seconds:    seconds[i],
		}
		if s.finalNorm <= 0 || !numeric.Finite(s.finalNorm) || s.iterations < 1 {
			return nil, fmt.Errorf("solvers.csv row %d: norm must be > 0 and iterations >= 1: %w", i+1, ErrBadTable)
		}
		if profiles != nil {
			s.profile = profile(strings.ToLower(strings.TrimSpace(profiles[i])))
		}
		if s.profile == "" {
			s.profile = profileGrowth
			if s.convergent {
				s.profile = profileDecay
			}
		}
		out[i] = s
	}

	return out, nil
}

// parseFlag accepts true/false, yes/no, tak/nie and 1/0.
func parseFlag(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "tak", "y":
		return true, nil
	case "no", "nie", "n":
		return false, nil
	}
	v, err := strconv.ParseBool(strings.TrimSpace(s))
	if err != nil {
		return false, fmt.Errorf("convergent %q: %w", s, ErrBadTable)
	}

	return v, nil
}

func writeSolvers(w io.Writer, solvers []solver) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(solverHeader); err != nil {
		return err
	}
	for _, s := range solvers {
		rec := []string{
			s.method,
			strconv.FormatBool(s.convergent),
			ftoa(s.finalNorm),
			strconv.Itoa(s.iterations),
			ftoa(s.reduction),
			ftoa(s.seconds),
			string(s.profile),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// trajectory returns n residual norms shaped by the solver's profile.
func (s solver) trajectory(n int) []float64 {
	switch s.profile {
	case profileDecay:
		k := s.iterations
		if k < 2 || k > n {
			k = n
		}
		out := numeric.Geomspace(1, s.finalNorm, k)
		for len(out) < n {
			out = append(out, s.finalNorm)
		}
		return out
	case profileOscillating:
		base := numeric.Linspace(1, s.finalNorm, n)
		phase := numeric.Linspace(0, 2*math.Pi*ripplePeriods, n)
		for i := range base {
			base[i] += math.Sin(phase[i]) * s.finalNorm * rippleFraction
		}
		return base
	case profileDip:
		half := n / 2
		return append(numeric.Geomspace(1, dipFloor, half), numeric.Geomspace(dipFloor, s.finalNorm, n-half)...)
	default:
		return numeric.Geomspace(1, s.finalNorm, n)
	}
}

func outcome(convergent bool) string {
	if convergent {
		return "convergent"
	}

	return "divergent"
}

func trajectoryPanel(solvers []solver) chart.Panel {
	n := minTrajectory
	for _, s := range solvers {
		if s.iterations > n {
			n = s.iterations
		}
	}
	it := iterations(n)

	pn := chart.Panel{
		Title:  "Simulated residual norm by iteration",
		XLabel: "iteration",
		YLabel: "residual norm (log scale)",
		LogY:   true,
		Grid:   true,
		Legend: chart.LegendTopLeft,
	}
	for _, s := range solvers {
		pn.Series = append(pn.Series, chart.Series{
			Label: fmt.Sprintf("%s (%s)", s.method, outcome(s.convergent)),
			X:     it,
			Y:     s.trajectory(n),
			Width: 2,
		})
		if s.convergent && s.iterations < n {
			pn.VLines = append(pn.VLines, chart.RefLine{
				Value:  float64(s.iterations),
				Label:  fmt.Sprintf("%s converged after %d iterations", s.method, s.iterations),
				Color:  chart.Red,
				Dashed: true,
			})
		}
	}

	return pn
}

func finalNormPanel(solvers []solver) chart.Panel {
	sorted := append([]solver(nil), solvers...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].finalNorm < sorted[j].finalNorm })

	bars := chart.Bars{
		Labels:   make([]string, len(sorted)),
		Values:   make([]float64, len(sorted)),
		Colors:   make([]color.Color, len(sorted)),
		Annotate: formatNorm,
		Legend: []chart.Swatch{
			{Label: "convergent", Color: chart.Green},
			{Label: "divergent", Color: chart.Red},
		},
	}
	for i, s := range sorted {
		bars.Labels[i], bars.Values[i] = s.method, s.finalNorm
		bars.Colors[i] = chart.Red
		if s.convergent {
			bars.Colors[i] = chart.Green
		}
	}

	return chart.Panel{
		Title:  "Final residual norm by method",
		XLabel: "method",
		YLabel: "final residual norm (log scale)",
		LogY:   true,
		Grid:   true,
		Bars:   &bars,
		Legend: chart.LegendTopLeft,
	}
}

// formatNorm switches to scientific notation for very large or small norms.
func formatNorm(v float64) string {
	if v >= 1e6 || v < 1e-3 {
		return fmt.Sprintf("%.2e", v)
	}

	return fmt.Sprintf("%.6f", v)
}

// SPDX-License-Identifier: MIT

package labs

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/numlab/chart"
	"github.com/katalvlaran/numlab/dataio"
	"github.com/katalvlaran/numlab/numeric"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
)

const (
	// convergenceMaxPanels bounds the doubling sequence n = 2, 4, ...
	convergenceMaxPanels = 1024
	// comparisonPanels is the subinterval count of the method comparisons.
	comparisonPanels = 1000
)

var (
	ruleLabels = map[numeric.Rule]string{
		numeric.RuleMidpoint:  "Rectangle",
		numeric.RuleTrapezoid: "Trapezoid",
		numeric.RuleSimpson:   "Simpson",
	}
	ruleColors = map[numeric.Rule]color.Color{
		numeric.RuleMidpoint:  chart.Red,
		numeric.RuleTrapezoid: chart.Green,
		numeric.RuleSimpson:   chart.Blue,
	}
	// ruleOrders are the convergence orders drawn as O(h^k) guides.
	ruleOrders = map[numeric.Rule]float64{
		numeric.RuleMidpoint:  2,
		numeric.RuleTrapezoid: 2,
		numeric.RuleSimpson:   4,
	}
)

// convergenceTable holds composite-rule values for growing panel counts.
type convergenceTable struct {
	n     []float64
	rules map[numeric.Rule][]float64
	exact float64 // NaN when unknown
}

// reference returns the value errors of rule r are measured against: the
// exact integral when known, else the value at the largest n.
func (c convergenceTable) reference(r numeric.Rule) float64 {
	if numeric.Finite(c.exact) {
		return c.exact
	}
	vals := c.rules[r]

	return vals[floats.MaxIdx(c.n)]
}

// reportQuadrature compares the composite rules against exact integrals of
// the polynomial from dane.txt and of x·cos³(x).
//
// convergence_data.txt is read from the data directory when present and
// otherwise computed from dane.txt and written to the output directory. A
// provided table without an exact column is measured against dane.txt, then
// exact_poly.txt from the data directory, then its own largest-n value.
//
// Outputs: exact_poly.txt, exact_xcos3x.txt, [convergence_data.txt],
// convergence_plot.png, error_plot.png, comparison_xcos3x.png.
func reportQuadrature(env *Env) {
	poly, polyErr := loadPolyIntegrand(env)
	exactPoly := math.NaN()
	if polyErr == nil {
		exactPoly = poly.exact
	}
	env.step("exact:poly", "exact_poly.txt", func(path string) error {
		if polyErr != nil {
			return polyErr
		}
		return dataio.WriteScalar(path, exactPoly)
	})

	xc := numeric.XCos3()
	exactX, xErr := xc.Exact()
	env.step("exact:xcos3x", "exact_xcos3x.txt", func(path string) error {
		if xErr != nil {
			return xErr
		}
		return dataio.WriteScalar(path, exactX)
	})

	if tbl, err := quadratureTable(env, poly, polyErr, exactPoly); err != nil {
		env.skip("convergence", err)
		env.skip("errors", err)
	} else {
		env.figure("convergence", "convergence_plot.png", convergenceValuesPanel(tbl), chart.WithSize(12, 8))
		env.figure("errors", "error_plot.png", convergenceErrorPanel(tbl), chart.WithSize(12, 8))
	}

	env.step("comparison", "comparison_xcos3x.png", func(path string) error {
		if xErr != nil {
			return xErr
		}
		rows, err := computeComparison(xc, exactX, 0)
		if err != nil {
			return err
		}
		labels, values := make([]string, len(rows)), make([]float64, len(rows))
		for i, r := range rows {
			labels[i], values[i] = methodLabel(r.method), r.value
		}
		pn := chart.Panel{
			Title:  "Integration methods for x·cos³(x)",
			YLabel: "integral value",
			Grid:   true,
			Legend: chart.LegendNone,
			Bars:   &chart.Bars{Labels: labels, Values: values, Format: "%.6f"},
		}
		return chart.SavePanel(path, pn, env.chartOpts()...)
	})
}

// polyIntegrand is the dane.txt polynomial with its exact integral.
type polyIntegrand struct {
	numeric.Integrand
	exact float64
}

func loadPolyIntegrand(env *Env) (polyIntegrand, error) {
	pf, err := dataio.LoadPolynomial(env.In("dane.txt"))
	if err != nil {
		return polyIntegrand{}, err
	}
	p := numeric.Polynomial(pf.Coeffs)

	return polyIntegrand{
		Integrand: numeric.Integrand{Name: "polynomial", Slug: "poly", F: p.Eval, A: pf.A, B: pf.B},
		exact:     p.Integral(pf.A, pf.B),
	}, nil
}

// quadratureTable loads convergence_data.txt or computes it from the polynomial.
func quadratureTable(env *Env, poly polyIntegrand, polyErr error, exact float64) (convergenceTable, error) {
	t, err := dataio.LoadTable(env.In("convergence_data.txt"))
	switch {
	case err == nil:
		if !t.Has("exact") && !numeric.Finite(exact) {
			exact = providedExact(env)
		}
		return convergenceFromTable(t, exact)
	case !missing(err):
		return convergenceTable{}, err
	case polyErr != nil:
		return convergenceTable{}, polyErr
	}

	tbl, err := computeConvergence(poly.Integrand, exact)
	if err != nil {
		return convergenceTable{}, err
	}
	env.step("convergence-data", "convergence_data.txt", func(path string) error {
		return writeConvergence(path, tbl)
	})

	return tbl, nil
}

// providedExact reads exact_poly.txt from the data directory; NaN when it
// is absent or unreadable.
func providedExact(env *Env) float64 {
	v, err := dataio.LoadScalar(env.In("exact_poly.txt"))
	if err != nil {
		if !missing(err) {
			env.Log.Warn("exact value ignored", zap.String("file", "exact_poly.txt"), zap.Error(err))
		}
		return math.NaN()
	}

	return v
}

func convergenceFromTable(t *dataio.Table, exact float64) (convergenceTable, error) {
	tbl := convergenceTable{rules: make(map[numeric.Rule][]float64), exact: exact}
	var err error
	if tbl.n, err = t.Floats("n"); err != nil {
		return tbl, err
	}
	if len(tbl.n) == 0 {
		return tbl, ErrNoData
	}
	for _, r := range numeric.Rules {
		if tbl.rules[r], err = t.Floats(string(r)); err != nil {
			return tbl, err
		}
	}
	if t.Has("exact") {
		col, err := t.Floats("exact")
		if err != nil {
			return tbl, err
		}
		tbl.exact = col[0]
	}

	return tbl, nil
}

func computeConvergence(in numeric.Integrand, exact float64) (convergenceTable, error) {
	tbl := convergenceTable{rules: make(map[numeric.Rule][]float64), exact: exact}
	for n := 2; n <= convergenceMaxPanels; n *= 2 {
		tbl.n = append(tbl.n, float64(n))
		for _, r := range numeric.Rules {
			v, err := numeric.Composite(r, in.F, in.A, in.B, n)
			if err != nil {
				return tbl, err
			}
			tbl.rules[r] = append(tbl.rules[r], v)
		}
	}

	return tbl, nil
}

func writeConvergence(path string, tbl convergenceTable) error {
	header := []string{"n"}
	for _, r := range numeric.Rules {
		header = append(header, string(r))
	}
	withExact := numeric.Finite(tbl.exact)
	if withExact {
		header = append(header, "exact")
	}
	lines := []string{strings.Join(header, ",")}
	for i, n := range tbl.n {
		rec := []string{strconv.Itoa(int(n))}
		for _, r := range numeric.Rules {
			rec = append(rec, ftoa(tbl.rules[r][i]))
		}
		if withExact {
			rec = append(rec, ftoa(tbl.exact))
		}
		lines = append(lines, strings.Join(rec, ","))
	}

	return writeText(path, lines)
}

func convergenceValuesPanel(tbl convergenceTable) chart.Panel {
	pn := chart.Panel{
		Title:  "Convergence of composite quadrature",
		XLabel: "number of subintervals n",
		YLabel: "integral value",
		LogX:   true,
		Grid:   true,
	}
	for _, r := range numeric.Rules {
		pn.Series = append(pn.Series, chart.Series{
			Label: ruleLabels[r], X: tbl.n, Y: tbl.rules[r], Kind: chart.LinePoints, Color: ruleColors[r],
		})
	}
	if numeric.Finite(tbl.exact) {
		pn.HLines = []chart.RefLine{{Value: tbl.exact, Label: "exact value", Color: chart.Black, Dashed: true}}
	}

	return pn
}

func convergenceErrorPanel(tbl convergenceTable) chart.Panel {
	pn := chart.Panel{
		Title:  "Relative error of composite quadrature",
		XLabel: "number of subintervals n",
		YLabel: "relative error",
		LogX:   true,
		LogY:   true,
		Grid:   true,
	}
	guides := make([]chart.Series, 0, len(numeric.Rules))
	seen := make(map[float64]bool)
	for _, r := range numeric.Rules {
		errs := numeric.RelativeErrors(tbl.rules[r], tbl.reference(r))
		col := ruleColors[r]
		pn.Series = append(pn.Series, chart.Series{
			Label: ruleLabels[r], X: tbl.n, Y: errs, Kind: chart.LinePoints, Color: col,
		})

		order := ruleOrders[r]
		guide := chart.Series{X: tbl.n, Y: numeric.PowerTrend(tbl.n, errs[0], -order), Color: col, Dashed: true, Width: 1}
		if !seen[order] {
			guide.Label = fmt.Sprintf("O(h^%d)", int(order))
			seen[order] = true
		}
		guides = append(guides, guide)
	}
	pn.Series = append(pn.Series, guides...)

	return pn
}

// ftoa formats v in its shortest round-trip form.
func ftoa(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

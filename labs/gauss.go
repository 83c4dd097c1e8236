// SPDX-License-Identifier: MIT

package labs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/numlab/chart"
	"github.com/katalvlaran/numlab/dataio"
	"github.com/katalvlaran/numlab/numeric"
)

// glMaxNodes is the largest Gauss–Legendre rule tabulated.
const glMaxNodes = 5

const (
	methodExact = "exact"
	glPrefix    = "gl_"
)

// methodRow is one line of a comparison table; err is relative, not percent.
type methodRow struct {
	method string
	value  float64
	err    float64
}

// glPoint is one line of a Gauss–Legendre convergence table.
type glPoint struct {
	n     int
	value float64
	exact float64
	err   float64
}

// reportGauss studies Gauss–Legendre quadrature: exact values of the two
// lab integrands, convergence in the node count, and a comparison with the
// composite rules for the polynomial from dane.txt and x·cos³(x).
//
// Tables (gl_convergence_<f>.txt, comparison_<f>.txt) are read from the data
// directory when present and otherwise computed and written out.
//
// Outputs: exact_<f>.txt, gl_convergence_<f>.png, comparison_<f>.png.
func reportGauss(env *Env) {
	for _, in := range []numeric.Integrand{numeric.X2Sin3(), numeric.ExpX2()} {
		exact, exactErr := in.Exact()
		env.step("exact:"+in.Slug, "exact_"+in.Slug+".txt", func(path string) error {
			if exactErr != nil {
				return exactErr
			}
			return dataio.WriteScalar(path, exact)
		})

		pts, err := glTable(env, in, exact, exactErr)
		if err != nil {
			env.skip("gl:"+in.Slug, err)
			continue
		}
		env.grid("gl:"+in.Slug, "gl_convergence_"+in.Slug+".png", 10, 6, [][]chart.Panel{glPanels(in.Name, pts)})
	}

	poly, polyErr := loadPolyIntegrand(env)
	xc := numeric.XCos3()
	exactX, xErr := xc.Exact()
	for _, tg := range []comparisonTarget{
		{slug: "poly", title: "polynomial", in: poly.Integrand, exact: poly.exact, err: polyErr},
		{slug: xc.Slug, title: "x·cos³(x)", in: xc, exact: exactX, err: xErr},
	} {
		step := "comparison:" + tg.slug
		rows, err := comparisonTable(env, tg)
		if err != nil {
			env.skip(step, err)
			continue
		}
		panels, err := comparisonGrid(rows, tg.title)
		if err != nil {
			env.skip(step, err)
			continue
		}
		env.grid(step, "comparison_"+tg.slug+".png", 12, 10, panels)
	}
}

// comparisonTarget is one integrand of the method comparison; err is the
// error met while preparing it.
type comparisonTarget struct {
	slug, title string
	in          numeric.Integrand
	exact       float64
	err         error
}

// glTable loads or computes the convergence table of in.
func glTable(env *Env, in numeric.Integrand, exact float64, exactErr error) ([]glPoint, error) {
	name := "gl_convergence_" + in.Slug + ".txt"
	t, err := dataio.LoadTable(env.In(name))
	switch {
	case err == nil:
		return glFromTable(t)
	case !missing(err):
		return nil, err
	case exactErr != nil:
		return nil, exactErr
	}

	pts := make([]glPoint, 0, glMaxNodes)
	for n := 1; n <= glMaxNodes; n++ {
		v, err := numeric.GaussLegendre(in.F, in.A, in.B, n)
		if err != nil {
			return nil, err
		}
		pts = append(pts, glPoint{n: n, value: v, exact: exact, err: numeric.RelativeError(v, exact)})
	}
	env.step("gl-data:"+in.Slug, name, func(path string) error {
		lines := []string{"n,gl_value,exact,error"}
		for _, p := range pts {
			lines = append(lines, strings.Join([]string{strconv.Itoa(p.n), ftoa(p.value), ftoa(p.exact), ftoa(p.err)}, ","))
		}
		return writeText(path, lines)
	})

	return pts, nil
}

func glFromTable(t *dataio.Table) ([]glPoint, error) {
	cols, err := t.Columns("n", "gl_value", "exact", "error")
	if err != nil {
		return nil, err
	}
	if t.Len() == 0 {
		return nil, ErrNoData
	}
	pts := make([]glPoint, t.Len())
	for i := range pts {
		pts[i] = glPoint{n: int(cols[0][i]), value: cols[1][i], exact: cols[2][i], err: cols[3][i]}
	}

	return pts, nil
}

func glPanels(name string, pts []glPoint) []chart.Panel {
	ns, vals, errs := make([]float64, len(pts)), make([]float64, len(pts)), make([]float64, len(pts))
	for i, p := range pts {
		ns[i], vals[i], errs[i] = float64(p.n), p.value, p.err
	}

	return []chart.Panel{
		{
			Title:  "G-L convergence for " + name,
			XLabel: "number of nodes n",
			YLabel: "integral value",
			Grid:   true,
			Series: []chart.Series{{X: ns, Y: vals, Kind: chart.LinePoints, Color: chart.Blue, Width: 2}},
			HLines: []chart.RefLine{{Value: pts[0].exact, Label: "exact value", Color: chart.Red, Dashed: true}},
		},
		{
			Title:  "G-L relative error for " + name,
			XLabel: "number of nodes n",
			YLabel: "relative error (log scale)",
			LogY:   true,
			Grid:   true,
			Legend: chart.LegendNone,
			Series: []chart.Series{{X: ns, Y: errs, Kind: chart.LinePoints, Color: chart.Red, Width: 2}},
		},
	}
}

// comparisonTable loads or computes comparison_<slug>.txt.
func comparisonTable(env *Env, tg comparisonTarget) ([]methodRow, error) {
	name := "comparison_" + tg.slug + ".txt"
	t, err := dataio.LoadTable(env.In(name))
	switch {
	case err == nil:
		return comparisonFromTable(t)
	case !missing(err):
		return nil, err
	case tg.err != nil:
		return nil, tg.err
	}

	rows, err := computeComparison(tg.in, tg.exact, glMaxNodes)
	if err != nil {
		return nil, err
	}
	env.step("comparison-data:"+tg.slug, name, func(path string) error {
		lines := []string{"method,value,error"}
		for _, r := range rows {
			lines = append(lines, strings.Join([]string{r.method, ftoa(r.value), ftoa(r.err)}, ","))
		}
		return writeText(path, lines)
	})

	return rows, nil
}

func comparisonFromTable(t *dataio.Table) ([]methodRow, error) {
	methods, err := t.Strings("method")
	if err != nil {
		return nil, err
	}
	cols, err := t.Columns("value", "error")
	if err != nil {
		return nil, err
	}
	rows := make([]methodRow, len(methods))
	for i, m := range methods {
		rows[i] = methodRow{method: strings.TrimSpace(m), value: cols[0][i], err: cols[1][i]}
	}

	return rows, nil
}

// computeComparison evaluates the composite rules with comparisonPanels
// subintervals, Gauss–Legendre with 1..glNodes nodes, and the exact value.
func computeComparison(in numeric.Integrand, exact float64, glNodes int) ([]methodRow, error) {
	var rows []methodRow
	for _, r := range numeric.Rules {
		v, err := numeric.Composite(r, in.F, in.A, in.B, comparisonPanels)
		if err != nil {
			return nil, err
		}
		rows = append(rows, methodRow{method: string(r), value: v, err: numeric.RelativeError(v, exact)})
	}
	for n := 1; n <= glNodes; n++ {
		v, err := numeric.GaussLegendre(in.F, in.A, in.B, n)
		if err != nil {
			return nil, err
		}
		rows = append(rows, methodRow{method: glPrefix + strconv.Itoa(n), value: v, err: numeric.RelativeError(v, exact)})
	}

	return append(rows, methodRow{method: methodExact, value: exact}), nil
}

// comparisonGrid lays out composite rules (left) against Gauss–Legendre
// (right): values on top, relative errors below.
func comparisonGrid(rows []methodRow, title string) ([][]chart.Panel, error) {
	var trad, gl []methodRow
	exact, haveExact := 0.0, false
	for _, r := range rows {
		switch {
		case r.method == methodExact:
			exact, haveExact = r.value, true
		case strings.HasPrefix(r.method, glPrefix):
			gl = append(gl, r)
		default:
			trad = append(trad, r)
		}
	}
	if !haveExact {
		return nil, fmt.Errorf("no %q row: %w", methodExact, ErrBadTable)
	}
	exactLine := []chart.RefLine{{Value: exact, Label: "exact value", Color: chart.Red, Dashed: true}}

	tradValues := barsOf(append(trad, methodRow{method: methodExact, value: exact}), false)
	tradValues.Format = "%.8f"
	glValues := barsOf(gl, false)
	glValues.Format = "%.8f"
	tradErrs, glErrs := barsOf(trad, true), barsOf(gl, true)

	return [][]chart.Panel{
		{
			{Title: "Composite rules for " + title, YLabel: "integral value", Grid: true, Bars: &tradValues, HLines: exactLine},
			{Title: "G-L quadrature for " + title, YLabel: "integral value", Grid: true, Bars: &glValues, HLines: exactLine},
		},
		{
			{Title: "Composite rules: relative error", YLabel: "relative error", LogY: true, Grid: true, Bars: &tradErrs},
			{Title: "G-L: relative error", YLabel: "relative error", LogY: true, Grid: true, Bars: &glErrs},
		},
	}, nil
}

func barsOf(rows []methodRow, errs bool) chart.Bars {
	b := chart.Bars{Labels: make([]string, len(rows)), Values: make([]float64, len(rows))}
	for i, r := range rows {
		b.Labels[i] = methodLabel(r.method)
		b.Values[i] = r.value
		if errs {
			b.Values[i] = r.err
		}
	}

	return b
}

// methodLabel turns a table method key into an axis label.
func methodLabel(m string) string {
	switch {
	case m == methodExact:
		return "Exact"
	case strings.HasPrefix(m, glPrefix):
		return "G-L (n=" + strings.TrimPrefix(m, glPrefix) + ")"
	}
	if l, ok := ruleLabels[numeric.Rule(m)]; ok {
		return l
	}

	return m
}

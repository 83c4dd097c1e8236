// SPDX-License-Identifier: MIT

package labs_test

import (
	"encoding/csv"
	"math"
	"os"
	"strconv"
	"testing"

	"github.com/katalvlaran/numlab/labs"
	"github.com/katalvlaran/numlab/rootfind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoots_Report(t *testing.T) {
	env, logs := newEnv(t)

	require.NoError(t, labs.Run(env, "roots"))

	requirePNG(t, env, "functions_plot.png", 12*20, 15*20)
	for _, fn := range rootfind.LabFunctions() {
		requirePNG(t, env, "convergence_"+fn.Slug()+".png", 16*20, 7*20)
	}
	assert.Zero(t, env.Manifest.Count(labs.StatusSkipped))
	assert.Equal(t, 3, logs.FilterMessage("roots located").Len())

	f, err := os.Open(env.Out("results_summary.csv"))
	require.NoError(t, err)
	defer f.Close()
	recs, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Greater(t, len(recs), 1)
	assert.Equal(t, rootfind.SummaryHeader, recs[0])

	byFn := make(map[string][]string)
	for _, rec := range recs[1:] {
		byFn[rec[0]] = append(byFn[rec[0]], rec[1])
		_, err := strconv.Atoi(rec[3])
		assert.NoError(t, err)
	}
	for _, fn := range rootfind.LabFunctions() {
		assert.Contains(t, byFn[fn.Name], string(rootfind.MethodNewton), fn.Name)
		assert.Contains(t, byFn[fn.Name], string(rootfind.MethodSecant), fn.Name)
	}
}

// TestRoots_NewtonResidual checks the first root of f2, a genuine root left
// of the pole at 0.
func TestRoots_NewtonResidual(t *testing.T) {
	env, _ := newEnv(t)
	require.NoError(t, labs.Run(env, "roots"))

	f, err := os.Open(env.Out("results_summary.csv"))
	require.NoError(t, err)
	defer f.Close()
	recs, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	fn := rootfind.LabFunctions()[1]
	for _, rec := range recs[1:] {
		if rec[0] != fn.Name || rec[1] != string(rootfind.MethodNewton) {
			continue
		}
		root, err := strconv.ParseFloat(rec[2], 64)
		require.NoError(t, err)
		assert.Less(t, root, 0.0)
		assert.Less(t, math.Abs(fn.Eval(root)), 1e-6)
		return
	}
	t.Fatalf("no newton row for %s", fn.Name)
}

func TestRoots_NarrowScanHasNoRoots(t *testing.T) {
	env, _ := newEnv(t)
	// f1 > 0 and f2 < 0 on [-3, -2.5].
	env.ScanMin, env.ScanMax = -3, -2.5

	require.NoError(t, labs.Run(env, "roots"))

	st := statuses(env.Manifest)
	assert.Equal(t, labs.StatusSkipped, st["roots/convergence:function_1"])
	assert.Equal(t, labs.StatusSkipped, st["roots/convergence:function_2"])
	assert.Equal(t, labs.StatusOK, st["roots/functions"])
	requireFile(t, env, "functions_plot.png")
}

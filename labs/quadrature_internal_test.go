// SPDX-License-Identifier: MIT

package labs

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/numlab/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tableEnv(t *testing.T, files map[string]string) *Env {
	t.Helper()
	cfg := config.Default()
	cfg.General.DataDir = t.TempDir()
	cfg.General.OutDir = filepath.Join(t.TempDir(), "out")
	env := NewEnv(cfg, nil).forLab("quadrature")
	for name, content := range files {
		require.NoError(t, os.WriteFile(env.In(name), []byte(content), 0o644))
	}

	return env
}

const tableNoExact = "n,rectangle,trapezoid,simpson\n2,1.0,2.0,3.0\n4,1.5,2.5,3.1\n"

func TestQuadratureTable_ExactSources(t *testing.T) {
	cases := []struct {
		name  string
		files map[string]string
		want  float64
	}{
		{"ExactPolyFile", map[string]string{"convergence_data.txt": tableNoExact, "exact_poly.txt": "3.25\n"}, 3.25},
		{"PolynomialFirst", map[string]string{"convergence_data.txt": tableNoExact, "exact_poly.txt": "3.25", "dane.txt": "2\n1 0 0\n0 3\n"}, 9},
		{"TableColumnWins", map[string]string{"convergence_data.txt": "n,rectangle,trapezoid,simpson,exact\n2,1,2,3,5\n", "exact_poly.txt": "3.25"}, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := tableEnv(t, tc.files)
			poly, polyErr := loadPolyIntegrand(env)
			exact := math.NaN()
			if polyErr == nil {
				exact = poly.exact
			}

			tbl, err := quadratureTable(env, poly, polyErr, exact)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, tbl.exact, 1e-12)
		})
	}
}

func TestQuadratureTable_LargestNFallback(t *testing.T) {
	env := tableEnv(t, map[string]string{"convergence_data.txt": tableNoExact, "exact_poly.txt": "n/a"})

	tbl, err := quadratureTable(env, polyIntegrand{}, os.ErrNotExist, math.NaN())
	require.NoError(t, err)
	assert.True(t, math.IsNaN(tbl.exact))
	assert.Equal(t, 3.1, tbl.reference("simpson"))
}

// SPDX-License-Identifier: MIT

package dataio_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/numlab/dataio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))

	return p
}

func TestReadTable_Formats(t *testing.T) {
	cases := []struct {
		name  string
		input string
		opts  []dataio.Option
	}{
		{"comma no header", "1,10\n2,20\n3,30\n", nil},
		{"comma with spaces", "1, 10\n 2 ,20\n3,30", nil},
		{"whitespace", "1   10\n2 20\n\n3\t30\n", nil},
		{"tab with comments", "# x\tf\n1\t10\n# mid\n2\t20\n3\t30 # trailing\n", nil},
		{"skip rows", "garbage line\n1 10\n2 20\n3 30\n", []dataio.Option{dataio.WithSkipRows(1)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tb, err := dataio.ReadTable(strings.NewReader(tc.input), tc.opts...)
			require.NoError(t, err)
			assert.Equal(t, 3, tb.Len())
			assert.Equal(t, []string{"0", "1"}, tb.Names())

			x, err := tb.FloatsAt(0)
			require.NoError(t, err)
			assert.Equal(t, []float64{1, 2, 3}, x)

			y, err := tb.Floats("1")
			require.NoError(t, err)
			assert.Equal(t, []float64{10, 20, 30}, y)
		})
	}
}

func TestReadTable_Header(t *testing.T) {
	input := "method,value,error\nrectangle,4.20251,1e-3\nexact,4.2025,0\n"

	tb, err := dataio.ReadTable(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"method", "value", "error"}, tb.Names())
	assert.Equal(t, 2, tb.Len())
	assert.True(t, tb.Has("value"))

	methods, err := tb.Strings("method")
	require.NoError(t, err)
	assert.Equal(t, []string{"rectangle", "exact"}, methods)

	cols, err := tb.Columns("value", "error")
	require.NoError(t, err)
	assert.Equal(t, []float64{4.20251, 4.2025}, cols[0])
	assert.Equal(t, []float64{1e-3, 0}, cols[1])

	_, err = tb.Floats("method")
	assert.ErrorIs(t, err, dataio.ErrMalformed)
	assert.Contains(t, err.Error(), "line 2")
}

func TestReadTable_NamesReplaceHeader(t *testing.T) {
	input := "h Heun Midpoint RK4\n10 1 2 3\n5 0.5 0.6 0.7\n"

	tb, err := dataio.ReadTable(strings.NewReader(input), dataio.WithNames("h", "heun", "mid", "rk4"))
	require.NoError(t, err)
	assert.Equal(t, 2, tb.Len())
	rk4, err := tb.Floats("rk4")
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 0.7}, rk4)
	assert.False(t, tb.Has("RK4"))
}

func TestReadTable_ForcedHeader(t *testing.T) {
	tb, err := dataio.ReadTable(strings.NewReader("1 2\n3 4\n"), dataio.WithHeader(true))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, tb.Names())
	assert.Equal(t, 1, tb.Len())

	tb, err = dataio.ReadTable(strings.NewReader("n y\n3 4\n"), dataio.WithHeader(false), dataio.WithComment(0))
	require.NoError(t, err)
	assert.Equal(t, 2, tb.Len())
	_, err = tb.FloatsAt(0)
	assert.ErrorIs(t, err, dataio.ErrMalformed)
}

func TestReadTable_Errors(t *testing.T) {
	_, err := dataio.ReadTable(strings.NewReader("# only comments\n\n"))
	assert.ErrorIs(t, err, dataio.ErrEmptyInput)

	_, err = dataio.ReadTable(strings.NewReader("a,b\n"))
	assert.ErrorIs(t, err, dataio.ErrEmptyInput, "header only")

	tb, err := dataio.ReadTable(strings.NewReader("1 2\n3\n"))
	require.NoError(t, err)
	_, err = tb.FloatsAt(1)
	assert.ErrorIs(t, err, dataio.ErrMalformed)
	_, err = tb.FloatsAt(5)
	assert.ErrorIs(t, err, dataio.ErrUnknownColumn)
	_, err = tb.Floats("missing")
	assert.ErrorIs(t, err, dataio.ErrUnknownColumn)
	_, err = tb.Strings("missing")
	assert.ErrorIs(t, err, dataio.ErrUnknownColumn)

	assert.Panics(t, func() { dataio.WithSkipRows(-1) })
}

func TestLoadTable(t *testing.T) {
	p := writeFile(t, "data.csv", "x,y,z\n0,1,2\n1,2,3\n")

	tb, err := dataio.LoadTable(p)
	require.NoError(t, err)
	z, err := tb.FloatsAt(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3}, z)

	_, err = dataio.LoadTable(filepath.Join(t.TempDir(), "nope.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

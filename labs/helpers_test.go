// SPDX-License-Identifier: MIT

package labs_test

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/numlab/config"
	"github.com/katalvlaran/numlab/labs"
	"github.com/katalvlaran/numlab/logging"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// newEnv returns an Env over a fresh data directory with small figures.
func newEnv(t *testing.T) (*labs.Env, *observer.ObservedLogs) {
	t.Helper()
	cfg := config.Default()
	cfg.General.DataDir = t.TempDir()
	cfg.General.OutDir = filepath.Join(t.TempDir(), "out")
	cfg.Plot.Width, cfg.Plot.Height, cfg.Plot.DPI = 4, 3, 20
	require.NoError(t, cfg.Validate())

	core, logs := observer.New(zapcore.DebugLevel)

	return labs.NewEnv(cfg, logging.FromZap(zap.New(core))), logs
}

func writeData(t *testing.T, env *labs.Env, files map[string]string) {
	t.Helper()
	for name, content := range files {
		require.NoError(t, os.WriteFile(env.In(name), []byte(content), 0o644))
	}
}

func requireFile(t *testing.T, env *labs.Env, name string) {
	t.Helper()
	st, err := os.Stat(env.Out(name))
	require.NoError(t, err, name)
	require.Positive(t, st.Size(), name)
}

func requireNoFile(t *testing.T, env *labs.Env, name string) {
	t.Helper()
	_, err := os.Stat(env.Out(name))
	require.ErrorIs(t, err, os.ErrNotExist, name)
}

// requirePNG checks that name decodes as a PNG of w×h pixels.
func requirePNG(t *testing.T, env *labs.Env, name string, w, h int) {
	t.Helper()
	f, err := os.Open(env.Out(name))
	require.NoError(t, err, name)
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	require.NoError(t, err, name)
	require.Equal(t, w, cfg.Width, name)
	require.Equal(t, h, cfg.Height, name)
}

// statuses maps "lab/step" to the recorded status.
func statuses(m *labs.Manifest) map[string]labs.Status {
	out := make(map[string]labs.Status, len(m.Steps))
	for _, s := range m.Steps {
		out[s.Lab+"/"+s.Name] = s.Status
	}

	return out
}

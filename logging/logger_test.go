// SPDX-License-Identifier: MIT

package logging_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/numlab/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_Levels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		l, err := logging.New(logging.Config{Level: level})
		require.NoError(t, err, level)
		assert.NotNil(t, l)
	}

	_, err := logging.New(logging.Config{Level: "loud"})
	assert.Error(t, err)
}

func TestNew_JSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	l, err := logging.New(logging.Config{Level: "info", OutputPaths: []string{path}})
	require.NoError(t, err)

	l.Wrote("out/plot.png")
	l.Debug("hidden")
	require.NoError(t, l.Sync())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(raw)
	assert.Contains(t, out, `"msg":"wrote file"`)
	assert.Contains(t, out, `"file":"out/plot.png"`)
	assert.False(t, strings.Contains(out, "hidden"))
}

func TestSkippedAndWrote(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := logging.FromZap(zap.New(core)).With(zap.String("lab", "roots"))

	l.Skipped("overview", errors.New("boom"), zap.String("file", "a.txt"))
	l.Wrote("b.png")

	entries := logs.All()
	require.Len(t, entries, 2)

	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, "step skipped", entries[0].Message)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "roots", ctx["lab"])
	assert.Equal(t, "overview", ctx["step"])
	assert.Equal(t, "boom", ctx["error"])
	assert.Equal(t, "a.txt", ctx["file"])

	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, "b.png", entries[1].ContextMap()["file"])
}

func TestFallbacks(t *testing.T) {
	assert.NotNil(t, logging.NewDefault())
	assert.NotNil(t, logging.FromZap(nil).Logger)
	assert.NotPanics(t, func() { logging.NewNop().Skipped("x", nil) })
}

// SPDX-License-Identifier: MIT

package labs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/katalvlaran/numlab/chart"
	"github.com/katalvlaran/numlab/config"
	"github.com/katalvlaran/numlab/logging"
	"github.com/katalvlaran/numlab/rootfind"
	"go.uber.org/zap"
)

// Env is the shared context of a run.
//
// Fields:
//   - DataDir / OutDir:  input and output directories.
//   - Log:               structured logger; reports add a "lab" field.
//   - Chart:             base figure options (size, DPI) from the config;
//     multi-panel figures append their own size.
//   - Roots:             root-finding options for the roots report.
//   - ScanMin/ScanMax:   root scan interval and x-range of the overview plot.
//   - ValueClip:         |f(x)| at or above this is not drawn.
//   - Manifest:          per-step outcomes, written at the end of Run.
type Env struct {
	DataDir   string
	OutDir    string
	Log       *logging.Logger
	Chart     []chart.Option
	Roots     []rootfind.Option
	ScanMin   float64
	ScanMax   float64
	ValueClip float64
	Manifest  *Manifest

	lab string
}

// NewEnv builds an Env from a validated configuration. A nil logger
// discards output.
func NewEnv(cfg *config.Config, log *logging.Logger) *Env {
	if log == nil {
		log = logging.NewNop()
	}

	return &Env{
		DataDir:   cfg.General.DataDir,
		OutDir:    cfg.General.OutDir,
		Log:       log,
		Chart:     cfg.Plot.Options(),
		Roots:     cfg.Roots.Options(),
		ScanMin:   cfg.Roots.ScanMin,
		ScanMax:   cfg.Roots.ScanMax,
		ValueClip: cfg.Roots.ValueClip,
		Manifest:  NewManifest(cfg.General.DataDir, cfg.General.OutDir),
	}
}

// forLab returns a copy scoped to one report.
func (e *Env) forLab(name string) *Env {
	sub := *e
	sub.lab = name
	sub.Log = e.Log.With(zap.String("lab", name))

	return &sub
}

// In returns the path of an input file.
func (e *Env) In(name string) string { return filepath.Join(e.DataDir, name) }

// Out returns the path of an output file.
func (e *Env) Out(name string) string { return filepath.Join(e.OutDir, name) }

// step runs fn against the output path of file and records the outcome.
func (e *Env) step(name, file string, fn func(path string) error) {
	path := e.Out(file)
	if err := fn(path); err != nil {
		e.skip(name, err)
		return
	}
	e.Log.Wrote(path, zap.String("step", name))
	e.Manifest.Add(Step{Lab: e.lab, Name: name, Status: StatusOK, Output: path})
}

// skip records a step that could not produce its output.
func (e *Env) skip(name string, err error) {
	e.Log.Skipped(name, err)
	e.Manifest.Add(Step{Lab: e.lab, Name: name, Status: StatusSkipped, Error: err.Error()})
}

// figure saves a single-panel figure.
func (e *Env) figure(name, file string, pn chart.Panel, opts ...chart.Option) {
	e.step(name, file, func(path string) error {
		return chart.SavePanel(path, pn, e.chartOpts(opts...)...)
	})
}

// grid saves a multi-panel figure of w×h inches.
func (e *Env) grid(name, file string, w, h float64, rows [][]chart.Panel) {
	e.step(name, file, func(path string) error {
		return chart.SaveGrid(path, rows, e.chartOpts(chart.WithSize(w, h))...)
	})
}

func (e *Env) chartOpts(extra ...chart.Option) []chart.Option {
	out := make([]chart.Option, 0, len(e.Chart)+len(extra))
	return append(append(out, e.Chart...), extra...)
}

// inputExists reports whether the data directory holds name.
func (e *Env) inputExists(name string) bool {
	_, err := os.Stat(e.In(name))
	return err == nil
}

// writeWith creates path and hands a buffered writer to fn.
func writeWith(path string, fn func(w io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	if err = fn(w); err != nil {
		return err
	}

	return w.Flush()
}

// writeText writes one line per element of lines.
func writeText(path string, lines []string) error {
	return writeWith(path, func(w io.Writer) error {
		for _, ln := range lines {
			if _, err := fmt.Fprintln(w, ln); err != nil {
				return err
			}
		}
		return nil
	})
}

// missing reports whether err is a missing-file error.
func missing(err error) bool { return errors.Is(err, os.ErrNotExist) }

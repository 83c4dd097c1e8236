// SPDX-License-Identifier: MIT

package labs

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// ManifestFile is the manifest name inside the output directory.
const ManifestFile = "manifest.yaml"

// Status is the outcome of one step.
type Status string

const (
	StatusOK      Status = "ok"
	StatusSkipped Status = "skipped"
)

// Step records one report output.
type Step struct {
	Lab    string `yaml:"lab"`
	Name   string `yaml:"step"`
	Status Status `yaml:"status"`
	Output string `yaml:"output,omitempty"`
	Error  string `yaml:"error,omitempty"`
}

// Manifest describes one run: its identity, directories and every step.
// Reports run one after another, so a Manifest is only touched by the
// goroutine calling Run.
type Manifest struct {
	RunID    string    `yaml:"run_id"`
	Started  time.Time `yaml:"started"`
	Finished time.Time `yaml:"finished,omitempty"`
	DataDir  string    `yaml:"data_dir"`
	OutDir   string    `yaml:"out_dir"`
	Labs     []string  `yaml:"labs"`
	Steps    []Step    `yaml:"steps"`
}

// NewManifest starts a manifest with a fresh run ID.
func NewManifest(dataDir, outDir string) *Manifest {
	return &Manifest{
		RunID:   uuid.NewString(),
		Started: time.Now().UTC(),
		DataDir: dataDir,
		OutDir:  outDir,
	}
}

// Add appends a step.
func (m *Manifest) Add(s Step) {
	m.Steps = append(m.Steps, s)
}

// Count returns the number of steps with status st.
func (m *Manifest) Count(st Status) int {
	n := 0
	for _, s := range m.Steps {
		if s.Status == st {
			n++
		}
	}

	return n
}

// Write encodes the manifest as YAML at path.
func (m *Manifest) Write(path string) error {
	raw, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	return nil
}

// ReadManifest decodes a manifest written by Write.
func ReadManifest(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to decode manifest: %w", err)
	}

	return &m, nil
}

package pi0eta

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(fname, []byte(content), 0o644))
	return fname
}

func TestLoadConfig(t *testing.T) {
	fname := writeConfig(t, `
inputs:
  - tree_pi0eta_030274.root
  - tree_pi0eta_030275.root
output: out.root
maxEvents: 5000
chiSqEdges: [5, 10, 15]
beamEnergy:
  min: 8.2
  max: 8.8
`)

	cfg, err := LoadConfig(fname)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, []string{"tree_pi0eta_030274.root", "tree_pi0eta_030275.root"}, cfg.Inputs)
	assert.Equal(t, "out.root", cfg.Output)
	assert.Equal(t, int64(5000), cfg.MaxEvents)
	assert.Equal(t, []float64{5, 10, 15}, cfg.ChiSqEdges)
	assert.Equal(t, &Window{Min: 8.2, Max: 8.8}, cfg.BeamEnergy)
	assert.Nil(t, cfg.MissingMassSquared)

	// untouched fields keep their defaults
	assert.Equal(t, DefaultTreeName, cfg.Tree)
	assert.Equal(t, "composition", cfg.LogPrefix)
	assert.Equal(t, DefaultMaxLogFiles, cfg.MaxLogFiles)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "inputs: [a.root\n"))
	assert.True(t, errors.Is(err, ErrBadConfig))

	_, err = LoadConfig(writeConfig(t, "maxEvents: lots\n"))
	assert.True(t, errors.Is(err, ErrBadConfig))
}

func TestConfigValidate(t *testing.T) {
	for _, tc := range []struct {
		name   string
		modify func(cfg *Config)
	}{
		{"no inputs", func(cfg *Config) { cfg.Inputs = nil }},
		{"no tree", func(cfg *Config) { cfg.Tree = "" }},
		{"no output", func(cfg *Config) { cfg.Output = "" }},
		{"negative cap", func(cfg *Config) { cfg.MaxEvents = -3 }},
		{"no log slots", func(cfg *Config) { cfg.MaxLogFiles = 0 }},
		{"unordered edges", func(cfg *Config) { cfg.ChiSqEdges = []float64{10, 30, 20} }},
		{"repeated edge", func(cfg *Config) { cfg.ChiSqEdges = []float64{10, 10} }},
		{"empty window", func(cfg *Config) { cfg.MissingMassSquared = &Window{Min: 0.05, Max: -0.05} }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Inputs = []string{"in.root"}
			require.NoError(t, cfg.Validate())

			tc.modify(&cfg)
			assert.True(t, errors.Is(cfg.Validate(), ErrBadConfig))
		})
	}
}

func TestConfigActions(t *testing.T) {
	ac := NewAnalysisContext(nil, io.Discard)

	cfg := DefaultConfig()
	actions := cfg.Actions(ac)
	require.Len(t, actions, 1)
	assert.Equal(t, "KinFitResults", actions[0].Name())

	cfg.BeamEnergy = &Window{Min: 8.2, Max: 8.8}
	cfg.MissingMassSquared = &Window{Min: -0.02, Max: 0.02}
	actions = cfg.Actions(ac)
	require.Len(t, actions, 3)
	assert.Equal(t, BeamEnergyCut{Min: 8.2, Max: 8.8}, actions[1])
	assert.Equal(t, MissingMassSquaredCut{Min: -0.02, Max: 0.02}, actions[2])
}

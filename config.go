package pi0eta

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultMaxLogFiles is how many composition log names a run probes before
// giving up.
const DefaultMaxLogFiles = 200

// Window is a closed [Min, Max] interval.
type Window struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Config describes one selector run: the inputs, where the outputs go and
// which optional cuts apply.
type Config struct {
	Tree   string   `yaml:"tree"`
	Inputs []string `yaml:"inputs"`
	Output string   `yaml:"output"`

	LogDir      string `yaml:"logDir"`
	LogPrefix   string `yaml:"logPrefix"`
	MaxLogFiles int    `yaml:"maxLogFiles"`

	MaxEvents  int64     `yaml:"maxEvents"`
	ChiSqEdges []float64 `yaml:"chiSqEdges"`

	BeamEnergy         *Window `yaml:"beamEnergy"`
	MissingMassSquared *Window `yaml:"missingMassSquared"`
}

func DefaultConfig() Config {
	return Config{
		Tree:        DefaultTreeName,
		Output:      "pi0eta_hists.root",
		LogDir:      ".",
		LogPrefix:   "composition",
		MaxLogFiles: DefaultMaxLogFiles,
		ChiSqEdges:  append([]float64(nil), DefaultChiSqEdges...),
	}
}

// LoadConfig reads a YAML run configuration. Fields absent from the file
// keep their DefaultConfig values.
func LoadConfig(fname string) (Config, error) {
	cfg := DefaultConfig()

	raw, err := os.ReadFile(fname)
	if err != nil {
		return cfg, errors.Wrap(err, "could not read run configuration")
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, errors.Wrapf(ErrBadConfig, "%s: %v", fname, err)
	}
	return cfg, nil
}

func (cfg *Config) Validate() error {
	switch {
	case len(cfg.Inputs) == 0:
		return errors.Wrap(ErrBadConfig, "no input files")
	case cfg.Tree == "":
		return errors.Wrap(ErrBadConfig, "no tree name")
	case cfg.Output == "":
		return errors.Wrap(ErrBadConfig, "no output file")
	case cfg.MaxEvents < 0:
		return errors.Wrapf(ErrBadConfig, "negative maxEvents %d", cfg.MaxEvents)
	case cfg.MaxLogFiles <= 0:
		return errors.Wrapf(ErrBadConfig, "maxLogFiles must be positive, got %d", cfg.MaxLogFiles)
	}
	for i := 1; i < len(cfg.ChiSqEdges); i++ {
		if cfg.ChiSqEdges[i] <= cfg.ChiSqEdges[i-1] {
			return errors.Wrapf(ErrBadConfig, "chiSqEdges not increasing at %d: %v", i, cfg.ChiSqEdges)
		}
	}
	for name, w := range map[string]*Window{"beamEnergy": cfg.BeamEnergy, "missingMassSquared": cfg.MissingMassSquared} {
		if w != nil && w.Max < w.Min {
			return errors.Wrapf(ErrBadConfig, "%s window [%g, %g] is empty", name, w.Min, w.Max)
		}
	}
	return nil
}

// Actions builds the analysis actions of the run: the kinematic-fit
// histogram, then the configured cuts.
func (cfg *Config) Actions(ac *AnalysisContext) []Action {
	actions := []Action{NewKinFitResults(ac)}
	if w := cfg.BeamEnergy; w != nil {
		actions = append(actions, BeamEnergyCut{Min: w.Min, Max: w.Max})
	}
	if w := cfg.MissingMassSquared; w != nil {
		actions = append(actions, MissingMassSquaredCut{Min: w.Min, Max: w.Max})
	}
	return actions
}

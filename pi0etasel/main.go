package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/pkg/profile"
	"github.com/plan-systems/klog"

	"github.com/decibelcooper/pi0eta"
)

var (
	configPath = flag.String("config", "", "YAML run configuration")
	treeName   = flag.String("tree", "", "name of the analysis tree (default "+pi0eta.DefaultTreeName+")")
	output     = flag.String("output", "", "output ROOT file for histograms")
	logDir     = flag.String("logdir", "", "directory of the composition log")
	maxEvents  = flag.Int64("maxevents", -1, "stop after this many events (0 for no limit)")
	doProfile  = flag.Bool("profile", false, "write a CPU profile to the working directory")
	chiSqEdges pi0eta.FloatArrayFlags
)

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage: `+os.Args[0]+` [options] [<root-input-files>...]

Input files given on the command line replace those of the configuration.

options:
`,
	)
	flag.PrintDefaults()
}

func main() {
	klog.InitFlags(nil)
	flag.Var(&chiSqEdges, "chisqedge", "upper kinfit chi2 edge of a pi0/eta mass histogram (repeatable, comma-separated)")
	flag.Usage = printUsage
	flag.Parse()

	err := run()
	if errors.Is(err, pi0eta.ErrBadConfig) {
		printUsage()
	}
	if err != nil {
		klog.Errorf("%v", err)
		klog.Flush()
		os.Exit(1)
	}
	klog.Flush()
}

// run does the whole selection so that its deferred cleanup, the profile
// included, happens before main exits.
func run() error {
	if *doProfile {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}

	cfg, err := loadConfig()
	if err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	logFile, err := pi0eta.OpenCompositionLog(cfg.LogDir, cfg.LogPrefix, cfg.MaxLogFiles)
	if err != nil {
		return err
	}
	defer logFile.Close()
	klog.Infof("writing compositions to %s", logFile.Name())

	ac := pi0eta.NewAnalysisContext(cfg.ChiSqEdges, logFile)
	sel := pi0eta.NewSelector(ac, pi0eta.Options{
		MaxEvents: cfg.MaxEvents,
		Actions:   cfg.Actions(ac),
	})

	for _, filename := range cfg.Inputs {
		err := processFile(sel, filename, cfg.Tree)
		if errors.Is(err, pi0eta.ErrEventCapReached) {
			klog.Infof("stopping early: %v", err)
			break
		}
		if err != nil {
			return errors.Wrap(err, filename)
		}
	}

	if err := ac.Save(cfg.Output); err != nil {
		return err
	}

	stats := sel.Stats()
	klog.Infof("processed %d events (%d skipped), kept %d of %d combos; histograms in %s",
		stats.Events, stats.EventsSkipped, stats.CombosKept, stats.Combos, cfg.Output)
	return nil
}

func loadConfig() (pi0eta.Config, error) {
	cfg := pi0eta.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = pi0eta.LoadConfig(*configPath)
		if err != nil {
			return cfg, err
		}
	}

	if flag.NArg() > 0 {
		cfg.Inputs = flag.Args()
	}
	if *treeName != "" {
		cfg.Tree = *treeName
	}
	if *output != "" {
		cfg.Output = *output
	}
	if *logDir != "" {
		cfg.LogDir = *logDir
	}
	if *maxEvents >= 0 {
		cfg.MaxEvents = *maxEvents
	}
	if chiSqEdges.IsSet() {
		cfg.ChiSqEdges = chiSqEdges.Array
	}

	return cfg, cfg.Validate()
}

func processFile(sel *pi0eta.Selector, filename, tree string) error {
	reader, err := pi0eta.OpenTree(filename, tree)
	if err != nil {
		return err
	}
	defer reader.Close()

	klog.Infof("%s: %d entries (thrown data: %v)", filename, reader.Entries(), reader.HasThrown())
	return sel.Run(reader)
}

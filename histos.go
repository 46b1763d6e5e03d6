package pi0eta

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/rhist"
	"go-hep.org/x/hep/groot/root"
	"go-hep.org/x/hep/hbook"
)

// DefaultChiSqEdges are the upper kinematic-fit chi2 edges of the cumulative
// pi0/eta mass histograms.
var DefaultChiSqEdges = []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}

// eventVsChiSqMaxEvent limits eventVsChiSq1234 to the first events of a run.
const eventVsChiSqMaxEvent = 100

// AnalysisContext owns the histograms and composition log of a run. It is
// created once before the first event and saved once after the last.
type AnalysisContext struct {
	BeamEnergy         *hbook.H1D
	MissingMassSquared *hbook.H1D
	Pi0Mass            []*hbook.H1D // one per ChiSqEdges entry
	EtaMass            []*hbook.H1D
	Pi0EtaMass         *hbook.H1D

	EventVsChiSq1234      *hbook.H2D
	ChiSq1234VsChiSqCombo *hbook.H2D

	NumUniquePairsPerPh1234Set *hbook.H1D
	NumUniquePh1234Sets        *hbook.H1D
	NumCombosSurvived          *hbook.H1D

	ChiSqEdges []float64

	Log *TopologyLog

	h1s []*hbook.H1D
	h2s []*hbook.H2D
}

// NewAnalysisContext books every histogram. log receives the composition
// report; pass io.Discard to drop it.
func NewAnalysisContext(chiSqEdges []float64, log io.Writer) *AnalysisContext {
	if len(chiSqEdges) == 0 {
		chiSqEdges = DefaultChiSqEdges
	}
	ac := &AnalysisContext{
		ChiSqEdges: append([]float64(nil), chiSqEdges...),
		Log:        NewTopologyLog(log),
	}

	ac.BeamEnergy = ac.NewH1D("BeamEnergy", ";Beam Energy (GeV)", 600, 0, 12)
	ac.MissingMassSquared = ac.NewH1D("MissingMassSquared", ";Missing Mass Squared (GeV/c^{2})^{2}", 600, -0.06, 0.06)
	for i := range ac.ChiSqEdges {
		ac.Pi0Mass = append(ac.Pi0Mass, ac.NewH1D(fmt.Sprintf("pi0Mass_chiSqBin%d", i), ";Mpi0", 100, 0, 0.5))
		ac.EtaMass = append(ac.EtaMass, ac.NewH1D(fmt.Sprintf("etaMass_chiSqBin%d", i), ";Meta", 100, 0, 1))
	}
	ac.Pi0EtaMass = ac.NewH1D("pi0etaMass", ";Mpi0eta", 150, 0, 3.5)

	ac.EventVsChiSq1234 = ac.NewH2D("eventVsChiSq1234", ";ChiSqs;Event Number", 40, 0, 40, 100, 0, 100)
	ac.ChiSq1234VsChiSqCombo = ac.NewH2D("chiSq1234VsChiSqCombo", ";ChiSqs1234;ChiSqCombo", 40, 0, 40, 100, 0, 100)

	ac.NumUniquePairsPerPh1234Set = ac.NewH1D("numUniquePairsPerPh1234Set", "", 5, 0, 5)
	ac.NumUniquePh1234Sets = ac.NewH1D("numUniquePh1234Sets", "", 10, 0, 10)
	ac.NumCombosSurvived = ac.NewH1D("NumCombosSurvived", ";Combos surviving actions", 20, 0, 20)
	return ac
}

// NewH1D books a named 1D histogram that is saved with the others.
func (ac *AnalysisContext) NewH1D(name, title string, n int, xmin, xmax float64) *hbook.H1D {
	h := hbook.NewH1D(n, xmin, xmax)
	annotate(h.Annotation(), name, title)
	ac.h1s = append(ac.h1s, h)
	return h
}

// NewH2D books a named 2D histogram that is saved with the others.
func (ac *AnalysisContext) NewH2D(name, title string, nx int, xmin, xmax float64, ny int, ymin, ymax float64) *hbook.H2D {
	h := hbook.NewH2D(nx, xmin, xmax, ny, ymin, ymax)
	annotate(h.Annotation(), name, title)
	ac.h2s = append(ac.h2s, h)
	return h
}

func annotate(ann hbook.Annotation, name, title string) {
	ann["name"] = name
	ann["title"] = title
}

// H1D returns the booked 1D histogram called name, or nil.
func (ac *AnalysisContext) H1D(name string) *hbook.H1D {
	for _, h := range ac.h1s {
		if h.Name() == name {
			return h
		}
	}
	return nil
}

// H2D returns the booked 2D histogram called name, or nil.
func (ac *AnalysisContext) H2D(name string) *hbook.H2D {
	for _, h := range ac.h2s {
		if h.Name() == name {
			return h
		}
	}
	return nil
}

// Save writes every booked histogram to a new ROOT file.
func (ac *AnalysisContext) Save(fname string) error {
	f, err := groot.Create(fname)
	if err != nil {
		return errors.Wrapf(err, "could not create %q", fname)
	}

	put := func(name string, v root.Object) error {
		if err := f.Put(name, v); err != nil {
			f.Close()
			return errors.Wrapf(err, "could not write %q to %q", name, fname)
		}
		return nil
	}
	for _, h := range ac.h1s {
		if err := put(h.Name(), rhist.NewH1DFrom(h)); err != nil {
			return err
		}
	}
	for _, h := range ac.h2s {
		if err := put(h.Name(), rhist.NewH2DFrom(h)); err != nil {
			return err
		}
	}

	return errors.Wrapf(f.Close(), "could not close %q", fname)
}

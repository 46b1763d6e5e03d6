package pi0eta

import (
	"fmt"

	"go-hep.org/x/hep/hbook"
)

// Action is a per-combo histogramming or cut step run by the Selector after
// the topology classification. Perform returns false to cut the combo.
type Action interface {
	Name() string
	ResetEvent()
	Perform(c *Combo, k *Kinematics) bool
}

// FinalStateKey is the key of every detector object in the combo, the beam
// filed under Unknown so it never groups with final-state particles.
func FinalStateKey(c *Combo) StructuralKey {
	return NewKeyBuilder().
		Add(Unknown, c.Beam.ID).
		Add(Proton, c.Proton.TrackID).
		Add(Gamma, c.Photon1.NeutralID, c.Photon2.NeutralID, c.Photon3.NeutralID, c.Photon4.NeutralID).
		Key()
}

// KinFitResults histograms the kinematic-fit chi2 once per distinct set of
// combo particles.
type KinFitResults struct {
	Hist *hbook.H1D

	tracker *Tracker
}

func NewKinFitResults(ac *AnalysisContext) *KinFitResults {
	return &KinFitResults{
		Hist:    ac.NewH1D("KinFitChiSq", ";#chi^{2} kinematic fit", 100, 0, 100),
		tracker: NewTracker(),
	}
}

func (a *KinFitResults) Name() string { return "KinFitResults" }

func (a *KinFitResults) ResetEvent() { a.tracker.ResetEvent() }

func (a *KinFitResults) Perform(c *Combo, k *Kinematics) bool {
	if a.tracker.TryMark(QuantityMissingMass, FinalStateKey(c)) {
		a.Hist.Fill(c.ChiSqKinFit, 1)
	}
	return true
}

// BeamEnergyCut keeps combos with Min <= E(beam) <= Max.
type BeamEnergyCut struct {
	Min, Max float64
}

func (a BeamEnergyCut) Name() string { return fmt.Sprintf("BeamEnergy[%g,%g]", a.Min, a.Max) }

func (a BeamEnergyCut) ResetEvent() {}

func (a BeamEnergyCut) Perform(c *Combo, k *Kinematics) bool {
	return k.BeamEnergy >= a.Min && k.BeamEnergy <= a.Max
}

// MissingMassSquaredCut keeps combos with Min <= MM2 <= Max.
type MissingMassSquaredCut struct {
	Min, Max float64
}

func (a MissingMassSquaredCut) Name() string {
	return fmt.Sprintf("MissingMassSquared[%g,%g]", a.Min, a.Max)
}

func (a MissingMassSquaredCut) ResetEvent() {}

func (a MissingMassSquaredCut) Perform(c *Combo, k *Kinematics) bool {
	return k.MissingMassSquared >= a.Min && k.MissingMassSquared <= a.Max
}

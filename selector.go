package pi0eta

import (
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
)

// Options configure a Selector.
type Options struct {
	// MaxEvents stops the run with ErrEventCapReached once that many events
	// have been processed. Zero means no limit.
	MaxEvents int64

	// Actions run, in order, on every combo after topology classification.
	Actions []Action
}

// Stats counts what a Selector has seen so far.
type Stats struct {
	Events        int64 // events processed, skipped ones included
	EventsSkipped int64
	Combos        int64
	CombosCut     int64 // cut upstream or by an action
	CombosKept    int64
}

// Selector runs the per-event selection. It is not safe for concurrent use:
// events and combos must be fed in storage order since the first combo to
// use a group of detector objects is the one histogrammed.
type Selector struct {
	ac      *AnalysisContext
	opts    Options
	tracker *Tracker

	prevRun uint32
	stats   Stats

	compositions []string
}

func NewSelector(ac *AnalysisContext, opts Options) *Selector {
	return &Selector{
		ac:      ac,
		opts:    opts,
		tracker: NewTracker(),
	}
}

func (s *Selector) Stats() Stats { return s.stats }

// Run processes every event of src. Events with malformed thrown ancestry
// are logged and skipped. The returned error wraps ErrEventCapReached when
// the run stopped on the event cap.
func (s *Selector) Run(src EventSource) error {
	return src.ScanEvents(func(evt *Event) error {
		err := s.Process(evt)
		if errors.Is(err, ErrMalformedAncestry) {
			klog.Warningf("skipping run %d event %d: %v", evt.Run, evt.Number, err)
			return nil
		}
		return err
	})
}

// Process runs one event through the selection.
func (s *Selector) Process(evt *Event) error {
	s.stats.Events++
	if s.opts.MaxEvents > 0 && s.stats.Events > s.opts.MaxEvents {
		s.stats.Events--
		return errors.Wrapf(ErrEventCapReached, "limit of %d events", s.opts.MaxEvents)
	}
	eventNum := s.stats.Events

	if evt.Run != s.prevRun {
		klog.V(1).Infof("new run %d", evt.Run)
		s.prevRun = evt.Run
	}

	s.tracker.ResetEvent()
	s.ac.Log.ResetEvent()
	for _, a := range s.opts.Actions {
		a.ResetEvent()
	}

	// Compositions are pure, so build them all first: a malformed event is
	// then dropped before anything is filled.
	if err := s.buildCompositions(evt); err != nil {
		s.stats.EventsSkipped++
		return errors.Wrapf(err, "run %d event %d", evt.Run, evt.Number)
	}

	var nKept int
	for i := range evt.Combos {
		combo := &evt.Combos[i]
		s.stats.Combos++

		if combo.IsCut {
			s.stats.CombosCut++
			continue
		}

		kin := ComputeKinematics(combo)

		if evt.HasThrown() {
			s.ac.Log.Classify(combo, TopologyRecord{
				ThrownTopology: evt.ThrownTopology,
				Composition:    s.compositions[i],
			})
		}

		if !s.performActions(combo, &kin) {
			combo.IsCut = true
			s.stats.CombosCut++
			continue
		}

		s.fill(combo, &kin, eventNum)
		nKept++
	}
	s.stats.CombosKept += int64(nKept)

	if err := s.ac.Log.Flush(); err != nil {
		return err
	}

	s.ac.NumUniquePairsPerPh1234Set.Fill(float64(s.tracker.Len(QuantityPhotonSet)), 1)
	s.ac.NumUniquePh1234Sets.Fill(float64(s.tracker.Len(QuantityPhotonPair)), 1)
	s.ac.NumCombosSurvived.Fill(float64(nKept), 1)

	klog.V(2).Infof("run %d event %d: %d/%d combos kept", evt.Run, evt.Number, nKept, len(evt.Combos))
	return nil
}

func (s *Selector) buildCompositions(evt *Event) error {
	s.compositions = s.compositions[:0]
	if !evt.HasThrown() {
		return nil
	}
	for i := range evt.Combos {
		combo := &evt.Combos[i]
		var comp string
		if !combo.IsCut {
			var err error
			comp, err = BuildComposition(combo.PhotonThrownIndices(), evt.Thrown)
			if err != nil {
				return err
			}
		}
		s.compositions = append(s.compositions, comp)
	}
	return nil
}

func (s *Selector) performActions(combo *Combo, kin *Kinematics) bool {
	for _, a := range s.opts.Actions {
		if !a.Perform(combo, kin) {
			klog.V(3).Infof("combo cut by %s", a.Name())
			return false
		}
	}
	return true
}

func (s *Selector) fill(combo *Combo, kin *Kinematics, eventNum int64) {
	ac := s.ac

	beamKey := NewKeyBuilder().Add(Unknown, combo.Beam.ID).Key()
	if s.tracker.TryMark(QuantityBeamEnergy, beamKey) {
		ac.BeamEnergy.Fill(kin.BeamEnergy, 1)
	}

	if s.tracker.TryMark(QuantityMissingMass, FinalStateKey(combo)) {
		ac.MissingMassSquared.Fill(kin.MissingMassSquared, 1)
	}

	for i, edge := range ac.ChiSqEdges {
		if combo.ChiSqKinFit < edge {
			ac.Pi0Mass[i].Fill(kin.Pi0Mass, 1)
			ac.EtaMass[i].Fill(kin.EtaMass, 1)
		}
	}
	ac.Pi0EtaMass.Fill(kin.Pi0EtaMass, 1)

	ph := combo.Photons()
	key12 := NewKeyBuilder().Add(Gamma, ph[0].NeutralID, ph[1].NeutralID).Key()
	key34 := NewKeyBuilder().Add(Gamma, ph[2].NeutralID, ph[3].NeutralID).Key()
	if !s.tracker.TryMark(QuantityPhotonPair, NewPairKey(key12, key34)) {
		return
	}
	if eventNum < eventVsChiSqMaxEvent {
		ac.EventVsChiSq1234.Fill(kin.ChiSqPair, float64(eventNum), 1)
	}
	ac.ChiSq1234VsChiSqCombo.Fill(kin.ChiSqPair, combo.ChiSqKinFit, 1)

	key1234 := NewKeyBuilder().Add(Gamma, ph[0].NeutralID, ph[1].NeutralID, ph[2].NeutralID, ph[3].NeutralID).Key()
	s.tracker.TryMark(QuantityPhotonSet, key1234)
}

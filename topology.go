package pi0eta

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Selection thresholds for the topology buckets.
const (
	ChiSqKinFitMax   = 13.277 // 99% quantile of chi2 with 4 degrees of freedom
	UnusedEnergyMax  = 0.010  // GeV
	ShowerQualityMin = 0.5
)

// Cut names a topology bucket and the predicate a combo must pass to land
// in it.
type Cut int

const (
	CutNone Cut = iota
	CutChiSqKinFit
	CutUnusedEnergy
	CutShowerQuality

	NumCuts
)

func (c Cut) String() string {
	switch c {
	case CutNone:
		return "none"
	case CutChiSqKinFit:
		return "chiSqKinFit"
	case CutUnusedEnergy:
		return "unusedEnergy"
	case CutShowerQuality:
		return "showerQuality"
	}
	return fmt.Sprintf("Cut(%d)", int(c))
}

// Pass reports whether combo satisfies the predicate of c.
func (c Cut) Pass(combo *Combo) bool {
	switch c {
	case CutNone:
		return true
	case CutChiSqKinFit:
		return combo.ChiSqKinFit < ChiSqKinFitMax
	case CutUnusedEnergy:
		return combo.UnusedShowerEnergy < UnusedEnergyMax
	case CutShowerQuality:
		for _, ph := range combo.Photons() {
			if !(ph.ShowerQuality > ShowerQualityMin) {
				return false
			}
		}
		return true
	}
	return false
}

// TopologyRecord pairs the generator-level topology of an event with the
// composition key of one of its combos.
type TopologyRecord struct {
	ThrownTopology string
	Composition    string
}

// TopologyLog collects, per event, the TopologyRecords of the combos
// passing each Cut and writes them out when the event ends.
type TopologyLog struct {
	w       io.Writer
	buckets [NumCuts][]TopologyRecord
}

// NewTopologyLog returns a TopologyLog writing to w. w stays owned by the
// caller.
func NewTopologyLog(w io.Writer) *TopologyLog {
	return &TopologyLog{w: w}
}

// ResetEvent drops every bucket.
func (l *TopologyLog) ResetEvent() {
	for i := range l.buckets {
		l.buckets[i] = l.buckets[i][:0]
	}
}

// Classify appends rec to the bucket of every Cut that combo passes and
// returns those cuts.
func (l *TopologyLog) Classify(combo *Combo, rec TopologyRecord) []Cut {
	var passed []Cut
	for c := CutNone; c < NumCuts; c++ {
		if !c.Pass(combo) {
			continue
		}
		l.buckets[c] = append(l.buckets[c], rec)
		passed = append(passed, c)
	}
	return passed
}

// Bucket returns a copy of the records collected so far under c for the
// current event.
func (l *TopologyLog) Bucket(c Cut) []TopologyRecord {
	return append([]TopologyRecord(nil), l.buckets[c]...)
}

// Weight is the combinatorial weight of each of n combos that survived
// the same cut in one event. ok is false when n is zero.
func Weight(n int) (w float64, ok bool) {
	if n <= 0 {
		return 0, false
	}
	return 1 / float64(n), true
}

// Flush writes every non-empty bucket of the current event and resets the
// buckets.
func (l *TopologyLog) Flush() error {
	ew := &errWriter{w: l.w}
	for c := CutNone; c < NumCuts; c++ {
		recs := l.buckets[c]
		weight, ok := Weight(len(recs))
		if !ok {
			continue
		}
		ew.printf("Filling topologies with cut: %v\n", c)
		ew.printf("-Num combos passed cuts: %d weight: %g\n", len(recs), weight)
		for _, rec := range recs {
			ew.printf("--Current topology: %s\n", rec.ThrownTopology)
			ew.printf("--Current composition: %s\n", rec.Composition)
		}
	}
	l.ResetEvent()
	return errors.Wrap(ew.err, "could not write composition log")
}

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

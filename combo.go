package pi0eta

import (
	"strconv"

	"go-hep.org/x/hep/fmom"
)

// ParticleType is the particle code used by the analysis trees (Geant3
// numbering, not PDG).
type ParticleType int

const (
	Unknown ParticleType = 0
	Gamma   ParticleType = 1
	Pi0     ParticleType = 7
	Proton  ParticleType = 14
	Eta     ParticleType = 17
)

func (t ParticleType) String() string {
	switch t {
	case Unknown:
		return "Unknown"
	case Gamma:
		return "Gamma"
	case Pi0:
		return "Pi0"
	case Proton:
		return "Proton"
	case Eta:
		return "Eta"
	}
	return "PID(" + strconv.Itoa(int(t)) + ")"
}

// NoParent is the parent index of a thrown particle at the root of its
// ancestry chain. NoThrownMatch is the thrown index of a photon that was
// not matched to any thrown particle.
const (
	NoParent      = -1
	NoThrownMatch = -1
)

// ThrownParticle is a generator-level particle. ParentIndex refers to the
// position of the parent in the same event's thrown array.
type ThrownParticle struct {
	PID         ParticleType
	P4          fmom.PxPyPzE
	ParentIndex int
}

type Beam struct {
	ID         int
	P4         fmom.PxPyPzE
	P4Measured fmom.PxPyPzE
}

type ChargedTrack struct {
	TrackID    int
	P4         fmom.PxPyPzE
	P4Measured fmom.PxPyPzE
}

type Photon struct {
	NeutralID     int
	ThrownIndex   int
	ShowerQuality float64
	P4            fmom.PxPyPzE
	P4Measured    fmom.PxPyPzE
}

// Combo is one candidate gamma p -> pi0 eta p, pi0 -> gamma gamma (photons
// 1 and 2), eta -> gamma gamma (photons 3 and 4). P4 holds kinematic-fit
// momenta, P4Measured the reconstructed ones.
type Combo struct {
	Beam    Beam
	Proton  ChargedTrack
	Photon1 Photon
	Photon2 Photon
	Photon3 Photon
	Photon4 Photon

	ChiSqKinFit        float64
	UnusedShowerEnergy float64

	IsCut bool
}

func (c *Combo) Photons() [4]*Photon {
	return [4]*Photon{&c.Photon1, &c.Photon2, &c.Photon3, &c.Photon4}
}

func (c *Combo) PhotonThrownIndices() [4]int {
	return [4]int{
		c.Photon1.ThrownIndex,
		c.Photon2.ThrownIndex,
		c.Photon3.ThrownIndex,
		c.Photon4.ThrownIndex,
	}
}

// Event is everything the selector sees for one tree entry.
type Event struct {
	Run    uint32
	Number uint64

	Thrown         []ThrownParticle
	ThrownTopology string

	Combos []Combo
}

// HasThrown reports whether the event carries generator truth. It is false
// for real detector data.
func (evt *Event) HasThrown() bool {
	return len(evt.Thrown) > 0
}

// EventSource delivers events in storage order. ScanEvents stops at the first
// error returned by fn and returns it.
type EventSource interface {
	ScanEvents(fn func(evt *Event) error) error
}

// Events is an in-memory EventSource.
type Events []*Event

func (evts Events) ScanEvents(fn func(evt *Event) error) error {
	for _, evt := range evts {
		if err := fn(evt); err != nil {
			return err
		}
	}
	return nil
}

package pi0eta

import (
	"github.com/pkg/errors"
	"go-hep.org/x/hep/fmom"
	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/rtree"
)

// DefaultTreeName is the tree written by the pi0 eta reaction filter.
const DefaultTreeName = "pi0eta__B4_M17_M7_Tree"

// Combo particle roles, as they prefix the per-combo branch names.
var comboRoles = [6]string{"ComboBeam", "Proton", "Photon1", "Photon2", "Photon3", "Photon4"}

type flatP4 struct {
	Px, Py, Pz, E []float64
}

func (p *flatP4) at(i int) fmom.PxPyPzE {
	return fmom.NewPxPyPzE(p.Px[i], p.Py[i], p.Pz[i], p.E[i])
}

func (p *flatP4) vars(prefix, suffix, count string) []rtree.ReadVar {
	return []rtree.ReadVar{
		{Name: prefix + "__Px" + suffix, Value: &p.Px},
		{Name: prefix + "__Py" + suffix, Value: &p.Py},
		{Name: prefix + "__Pz" + suffix, Value: &p.Pz},
		{Name: prefix + "__E" + suffix, Value: &p.E},
	}
}

// flatEvent mirrors one entry of the flat tree.
type flatEvent struct {
	Run      uint32
	Event    uint64
	Topology string

	NThrown      int32
	ThrownPID    []int32
	ThrownParent []int32
	Thrown       flatP4

	NCombos     int32
	IsCut       []bool
	ChiSq       []float64
	Unused      []float64
	BeamID      []int32
	ProtonID    []int32
	NeutralID   [4][]int32
	ThrownIndex [4][]int32
	Quality     [4][]float64
	Fit         [6]flatP4
	Measured    [6]flatP4
}

func (e *flatEvent) readVars(withThrown bool) []rtree.ReadVar {
	rvars := []rtree.ReadVar{
		{Name: "RunNumber", Value: &e.Run},
		{Name: "EventNumber", Value: &e.Event},
		{Name: "NumCombos", Value: &e.NCombos},
		{Name: "IsComboCut", Value: &e.IsCut},
		{Name: "ChiSq_KinFit", Value: &e.ChiSq},
		{Name: "Energy_UnusedShowers", Value: &e.Unused},
		{Name: "ComboBeam__BeamID", Value: &e.BeamID},
		{Name: "Proton__TrackID", Value: &e.ProtonID},
	}
	for k := 0; k < 4; k++ {
		role := comboRoles[k+2]
		rvars = append(rvars,
			rtree.ReadVar{Name: role + "__NeutralID", Value: &e.NeutralID[k]},
			rtree.ReadVar{Name: role + "__ThrownIndex", Value: &e.ThrownIndex[k]},
			rtree.ReadVar{Name: role + "__Shower_Quality", Value: &e.Quality[k]},
		)
	}
	for r, role := range comboRoles {
		rvars = append(rvars, e.Fit[r].vars(role, "", "NumCombos")...)
		rvars = append(rvars, e.Measured[r].vars(role, "_Measured", "NumCombos")...)
	}

	if withThrown {
		rvars = append(rvars,
			rtree.ReadVar{Name: "ThrownTopology", Value: &e.Topology},
			rtree.ReadVar{Name: "NumThrown", Value: &e.NThrown},
			rtree.ReadVar{Name: "Thrown__PID", Value: &e.ThrownPID},
			rtree.ReadVar{Name: "Thrown__ParentIndex", Value: &e.ThrownParent},
		)
		rvars = append(rvars, e.Thrown.vars("Thrown", "", "NumThrown")...)
	}
	return rvars
}

func (e *flatEvent) event(withThrown bool) *Event {
	evt := &Event{
		Run:    e.Run,
		Number: e.Event,
		Combos: make([]Combo, e.NCombos),
	}

	if withThrown {
		evt.ThrownTopology = e.Topology
		evt.Thrown = make([]ThrownParticle, e.NThrown)
		for i := range evt.Thrown {
			evt.Thrown[i] = ThrownParticle{
				PID:         ParticleType(e.ThrownPID[i]),
				P4:          e.Thrown.at(i),
				ParentIndex: int(e.ThrownParent[i]),
			}
		}
	}

	for i := range evt.Combos {
		c := &evt.Combos[i]
		c.IsCut = e.IsCut[i]
		c.ChiSqKinFit = e.ChiSq[i]
		c.UnusedShowerEnergy = e.Unused[i]
		c.Beam = Beam{ID: int(e.BeamID[i]), P4: e.Fit[0].at(i), P4Measured: e.Measured[0].at(i)}
		c.Proton = ChargedTrack{TrackID: int(e.ProtonID[i]), P4: e.Fit[1].at(i), P4Measured: e.Measured[1].at(i)}
		for k, ph := range c.Photons() {
			*ph = Photon{
				NeutralID:     int(e.NeutralID[k][i]),
				ThrownIndex:   int(e.ThrownIndex[k][i]),
				ShowerQuality: e.Quality[k][i],
				P4:            e.Fit[k+2].at(i),
				P4Measured:    e.Measured[k+2].at(i),
			}
		}
	}
	return evt
}

// TreeReader reads Events from a flat analysis tree.
type TreeReader struct {
	f         *groot.File
	tree      rtree.Tree
	hasThrown bool
}

// OpenTree opens the tree called name in the ROOT file fname. Trees made
// from detector data carry no Thrown branches; their events have no thrown
// particles.
func OpenTree(fname, name string) (*TreeReader, error) {
	f, err := groot.Open(fname)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open %q", fname)
	}

	obj, err := f.Get(name)
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(ErrNoTree, "%q in %q: %v", name, fname, err)
	}
	tree, ok := obj.(rtree.Tree)
	if !ok {
		f.Close()
		return nil, errors.Wrapf(ErrNoTree, "%q in %q is a %T", name, fname, obj)
	}

	return &TreeReader{
		f:         f,
		tree:      tree,
		hasThrown: tree.Branch("Thrown__PID") != nil,
	}, nil
}

func (r *TreeReader) Entries() int64 { return r.tree.Entries() }

func (r *TreeReader) HasThrown() bool { return r.hasThrown }

// ScanEvents calls fn for every entry of the tree, in order.
func (r *TreeReader) ScanEvents(fn func(evt *Event) error) error {
	var flat flatEvent
	rr, err := rtree.NewReader(r.tree, flat.readVars(r.hasThrown))
	if err != nil {
		return errors.Wrap(err, "could not create tree reader")
	}
	defer rr.Close()

	return rr.Read(func(rctx rtree.RCtx) error {
		return fn(flat.event(r.hasThrown))
	})
}

func (r *TreeReader) Close() error {
	return r.f.Close()
}

package pi0eta

import "go-hep.org/x/hep/fmom"

// photonPair returns two back-to-back photons along x whose invariant mass
// is m.
func photonPair(m float64) (fmom.PxPyPzE, fmom.PxPyPzE) {
	return fmom.NewPxPyPzE(m/2, 0, 0, m/2), fmom.NewPxPyPzE(-m/2, 0, 0, m/2)
}

type comboFixture struct {
	beamID, protonID int
	neutralIDs       [4]int
	thrownIndices    [4]int
	chiSq            float64
	unusedEnergy     float64
	showerQuality    [4]float64
	beamEnergy       float64
	isCut            bool
}

func newFixture(beamID, protonID int, neutralIDs [4]int) comboFixture {
	return comboFixture{
		beamID:        beamID,
		protonID:      protonID,
		neutralIDs:    neutralIDs,
		thrownIndices: [4]int{NoThrownMatch, NoThrownMatch, NoThrownMatch, NoThrownMatch},
		chiSq:         5,
		unusedEnergy:  0,
		showerQuality: [4]float64{1, 1, 1, 1},
		beamEnergy:    8.5,
	}
}

func (s comboFixture) combo() Combo {
	g1, g2 := photonPair(Pi0MassTrue)
	g3, g4 := photonPair(EtaMassTrue)
	beam := fmom.NewPxPyPzE(0, 0, s.beamEnergy, s.beamEnergy)
	// the proton takes whatever the photons leave, so the missing mass is zero
	proton := fmom.NewPxPyPzE(0, 0, s.beamEnergy, s.beamEnergy+ProtonMass-Pi0MassTrue-EtaMassTrue)

	c := Combo{
		Beam:               Beam{ID: s.beamID, P4: beam, P4Measured: beam},
		Proton:             ChargedTrack{TrackID: s.protonID, P4: proton, P4Measured: proton},
		ChiSqKinFit:        s.chiSq,
		UnusedShowerEnergy: s.unusedEnergy,
		IsCut:              s.isCut,
	}
	for k, p4 := range [4]fmom.PxPyPzE{g1, g2, g3, g4} {
		ph := c.Photons()[k]
		*ph = Photon{
			NeutralID:     s.neutralIDs[k],
			ThrownIndex:   s.thrownIndices[k],
			ShowerQuality: s.showerQuality[k],
			P4:            p4,
			P4Measured:    p4,
		}
	}
	return c
}

// thrownP6 is a small generator record: index 2 is a primary photon-like
// particle, index 5 hangs below index 1 which is a primary with PID 0.
func thrownP6() []ThrownParticle {
	return []ThrownParticle{
		{PID: 14, ParentIndex: NoParent},
		{PID: 0, ParentIndex: NoParent},
		{PID: 7, ParentIndex: NoParent},
		{PID: 17, ParentIndex: NoParent},
		{PID: 1, ParentIndex: 3},
		{PID: 17, ParentIndex: 1},
	}
}

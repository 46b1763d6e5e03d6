package pi0eta

import (
	"math"

	"go-hep.org/x/hep/fmom"
)

// Reference masses and widths (GeV) used for the photon-pair chi.
const (
	Pi0MassTrue    = 0.135784
	EtaMassTrue    = 0.548036
	Pi0MassStdTrue = 0.00753584
	EtaMassStdTrue = 0.0170809

	ProtonMass = 0.938272046
)

// TargetP4 is a proton at rest.
var TargetP4 = fmom.NewPxPyPzE(0, 0, 0, ProtonMass)

// Kinematics holds the derived quantities of one combo.
type Kinematics struct {
	BeamEnergy float64

	Pi0Mass    float64 // photons 1+2, kinfit
	EtaMass    float64 // photons 3+4, kinfit
	Pi0EtaMass float64

	MissingMassSquared float64 // measured momenta
	ChiSqPair          float64
}

func ComputeKinematics(c *Combo) Kinematics {
	pi0 := sumP4(c.Photon1.P4, c.Photon2.P4)
	eta := sumP4(c.Photon3.P4, c.Photon4.P4)
	pi0eta := sumP4(pi0, eta)

	initial := sumP4(c.Beam.P4Measured, TargetP4)
	final := sumP4(
		c.Proton.P4Measured,
		c.Photon1.P4Measured, c.Photon2.P4Measured,
		c.Photon3.P4Measured, c.Photon4.P4Measured,
	)
	missing := fmom.NewPxPyPzE(
		initial.Px()-final.Px(),
		initial.Py()-final.Py(),
		initial.Pz()-final.Pz(),
		initial.E()-final.E(),
	)

	k := Kinematics{
		BeamEnergy:         c.Beam.P4.E(),
		Pi0Mass:            pi0.M(),
		EtaMass:            eta.M(),
		Pi0EtaMass:         pi0eta.M(),
		MissingMassSquared: missing.M2(),
	}
	k.ChiSqPair = PhotonPairChi(k.Pi0Mass, k.EtaMass)
	return k
}

// PhotonPairChi measures how far the two photon pairs sit from the pi0 and
// eta masses, in units of the reconstructed mass resolution.
func PhotonPairChi(pi0Mass, etaMass float64) float64 {
	pi0Term := (pi0Mass - Pi0MassTrue) / Pi0MassStdTrue
	etaTerm := (etaMass - EtaMassTrue) / EtaMassStdTrue
	return math.Hypot(pi0Term, etaTerm)
}

func sumP4(ps ...fmom.PxPyPzE) fmom.PxPyPzE {
	var px, py, pz, e float64
	for i := range ps {
		p := &ps[i]
		px += p.Px()
		py += p.Py()
		pz += p.Pz()
		e += p.E()
	}
	return fmom.NewPxPyPzE(px, py, pz, e)
}

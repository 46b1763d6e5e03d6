package pi0eta

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyBuilderOrderIndependent(t *testing.T) {
	a := NewKeyBuilder().Add(Gamma, 5, 3).Add(Proton, 2).Key()
	b := NewKeyBuilder().Add(Proton, 2).Add(Gamma, 3).Add(Gamma, 5).Key()
	assert.Equal(t, a, b)
	assert.Equal(t, "1:3,5;14:2;", a.String())

	dup := NewKeyBuilder().Add(Gamma, 3, 5, 5, 3).Add(Proton, 2).Key()
	assert.Equal(t, a, dup)
}

func TestKeyBuilderTypeMatters(t *testing.T) {
	beam := NewKeyBuilder().Add(Unknown, 4).Key()
	photon := NewKeyBuilder().Add(Gamma, 4).Key()
	assert.NotEqual(t, beam, photon)

	// IDs move between types
	a := NewKeyBuilder().Add(Gamma, 1).Add(Proton, 2).Key()
	b := NewKeyBuilder().Add(Gamma, 2).Add(Proton, 1).Key()
	assert.NotEqual(t, a, b)
}

func TestPairKeyUnordered(t *testing.T) {
	k12 := NewKeyBuilder().Add(Gamma, 1, 2).Key()
	k34 := NewKeyBuilder().Add(Gamma, 3, 4).Key()
	k13 := NewKeyBuilder().Add(Gamma, 1, 3).Key()

	assert.Equal(t, NewPairKey(k12, k34), NewPairKey(k34, k12))
	assert.NotEqual(t, NewPairKey(k12, k34), NewPairKey(k13, k34))
}

func TestTracker(t *testing.T) {
	tr := NewTracker()
	k := NewKeyBuilder().Add(Gamma, 1, 2, 3, 4).Key()

	assert.False(t, tr.Seen(QuantityPhotonSet, k))
	assert.True(t, tr.TryMark(QuantityPhotonSet, k))
	assert.False(t, tr.TryMark(QuantityPhotonSet, k))
	assert.True(t, tr.Seen(QuantityPhotonSet, k))

	// quantities are tracked independently
	assert.False(t, tr.Seen(QuantityMissingMass, k))
	tr.MarkSeen(QuantityMissingMass, k)
	assert.Equal(t, 1, tr.Len(QuantityMissingMass))

	pair := NewPairKey(NewKeyBuilder().Add(Gamma, 1, 2).Key(), NewKeyBuilder().Add(Gamma, 3, 4).Key())
	assert.True(t, tr.TryMark(QuantityPhotonPair, pair))
	assert.Equal(t, 1, tr.Len(QuantityPhotonPair))
	assert.Equal(t, 0, tr.Len(QuantityBeamEnergy))

	tr.ResetEvent()
	for _, q := range []Quantity{QuantityPhotonSet, QuantityMissingMass, QuantityPhotonPair} {
		assert.Equal(t, 0, tr.Len(q), string(q))
	}
	assert.True(t, tr.TryMark(QuantityPhotonSet, k))
}

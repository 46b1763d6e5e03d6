package pi0eta

import (
	"strconv"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/trees/redblacktree"
)

// StructuralKey identifies a group of detector objects by type: which
// track, shower and beam IDs went into a quantity. Keys built from the same
// objects are equal no matter the insertion order, and can be used directly
// as map keys.
type StructuralKey struct {
	enc string
}

func (k StructuralKey) String() string { return k.enc }

func (k StructuralKey) uniqueKey() {}

// KeyBuilder accumulates (type, ID) pairs for a StructuralKey.
type KeyBuilder struct {
	types *redblacktree.Tree // ParticleType -> *treeset.Set of IDs
}

func NewKeyBuilder() *KeyBuilder {
	return &KeyBuilder{types: redblacktree.NewWithIntComparator()}
}

// Add records ids under pid. Duplicate IDs collapse.
func (b *KeyBuilder) Add(pid ParticleType, ids ...int) *KeyBuilder {
	var set *treeset.Set
	if v, found := b.types.Get(int(pid)); found {
		set = v.(*treeset.Set)
	} else {
		set = treeset.NewWithIntComparator()
		b.types.Put(int(pid), set)
	}
	for _, id := range ids {
		set.Add(id)
	}
	return b
}

// Key freezes the builder contents into a canonical encoding: types in
// ascending order, each followed by its sorted IDs, e.g. "1:3,5;14:2;".
func (b *KeyBuilder) Key() StructuralKey {
	var sb strings.Builder
	it := b.types.Iterator()
	for it.Next() {
		sb.WriteString(strconv.Itoa(it.Key().(int)))
		sb.WriteByte(':')
		for i, id := range it.Value().(*treeset.Set).Values() {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Itoa(id.(int)))
		}
		sb.WriteByte(';')
	}
	return StructuralKey{enc: sb.String()}
}

// PairKey is an unordered pair of StructuralKeys.
type PairKey struct {
	lo, hi StructuralKey
}

// NewPairKey returns the pair {a, b}; NewPairKey(a, b) == NewPairKey(b, a).
func NewPairKey(a, b StructuralKey) PairKey {
	if b.enc < a.enc {
		a, b = b, a
	}
	return PairKey{lo: a, hi: b}
}

func (k PairKey) String() string { return "{" + k.lo.enc + "|" + k.hi.enc + "}" }

func (k PairKey) uniqueKey() {}

// UniqueKey is implemented by StructuralKey and PairKey.
type UniqueKey interface {
	uniqueKey()
}

// Quantity names a histogrammed quantity whose fills are deduplicated.
type Quantity string

const (
	QuantityBeamEnergy  Quantity = "BeamEnergy"
	QuantityMissingMass Quantity = "MissingMassSquared"
	QuantityPhotonPair  Quantity = "PhotonPairChiSq"
	QuantityPhotonSet   Quantity = "Ph1234"
)

// Tracker remembers, per quantity, which groups of detector objects have
// already been histogrammed in the current event. The first combo in
// storage order to use a group wins; later combos sharing it are skipped.
type Tracker struct {
	used map[Quantity]map[UniqueKey]struct{}
}

func NewTracker() *Tracker {
	return &Tracker{used: make(map[Quantity]map[UniqueKey]struct{})}
}

func (t *Tracker) Seen(q Quantity, key UniqueKey) bool {
	_, seen := t.used[q][key]
	return seen
}

func (t *Tracker) MarkSeen(q Quantity, key UniqueKey) {
	set, ok := t.used[q]
	if !ok {
		set = make(map[UniqueKey]struct{})
		t.used[q] = set
	}
	set[key] = struct{}{}
}

// TryMark marks key as seen for q and reports whether it was new.
func (t *Tracker) TryMark(q Quantity, key UniqueKey) bool {
	if t.Seen(q, key) {
		return false
	}
	t.MarkSeen(q, key)
	return true
}

// Len returns the number of distinct keys recorded for q this event.
func (t *Tracker) Len(q Quantity) int {
	return len(t.used[q])
}

// ResetEvent forgets every key.
func (t *Tracker) ResetEvent() {
	for _, set := range t.used {
		for k := range set {
			delete(set, k)
		}
	}
}

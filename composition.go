package pi0eta

import "strings"

// UnmatchedAncestry stands in for the ancestry of a photon with no thrown
// match.
const UnmatchedAncestry = "(0)"

// compositionSep joins the per-photon ancestries, photon1 first.
const compositionSep = "_"

// BuildComposition returns the composition key of a combo: the ancestry of
// each of its four photons, in photon1..photon4 order, joined by "_".
// Reordering otherwise identical photons changes the key.
func BuildComposition(thrownIndices [4]int, thrown []ThrownParticle) (string, error) {
	var sb strings.Builder
	for i, idx := range thrownIndices {
		if i > 0 {
			sb.WriteString(compositionSep)
		}
		if idx == NoThrownMatch {
			sb.WriteString(UnmatchedAncestry)
			continue
		}
		if idx < 0 || idx >= len(thrown) {
			return "", &MalformedAncestryError{Start: idx, Index: idx, Parent: idx, OutOfRange: true}
		}

		ancestry, err := WalkAncestry(idx, thrown)
		if err != nil {
			return "", err
		}
		sb.WriteString(ancestry)
	}
	return sb.String(), nil
}

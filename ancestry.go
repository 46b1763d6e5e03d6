package pi0eta

import (
	"fmt"
	"strconv"
	"strings"
)

// WalkAncestry follows parent links from thrown[start] up to the root and
// returns the parent PIDs encountered, nearest first, each in parentheses,
// e.g. "(7)(0)". A primary particle yields the empty string.
//
// start must be a valid index into thrown; passing NoThrownMatch is a
// programming error and panics. An acyclic chain can never take more than
// len(thrown)-1 steps, so a longer walk is reported as a
// *MalformedAncestryError.
func WalkAncestry(start int, thrown []ThrownParticle) (string, error) {
	if start < 0 || start >= len(thrown) {
		panic(fmt.Sprintf("pi0eta: ancestry walk from invalid thrown index %d (%d thrown)", start, len(thrown)))
	}

	var sb strings.Builder
	idx := start
	for steps := 0; ; steps++ {
		parent := thrown[idx].ParentIndex
		if parent == NoParent {
			return sb.String(), nil
		}
		if parent < 0 || parent >= len(thrown) {
			return "", &MalformedAncestryError{Start: start, Index: idx, Parent: parent, Steps: steps, OutOfRange: true}
		}
		if steps >= len(thrown)-1 {
			return "", &MalformedAncestryError{Start: start, Index: idx, Parent: parent, Steps: steps + 1}
		}

		sb.WriteByte('(')
		sb.WriteString(strconv.Itoa(int(thrown[parent].PID)))
		sb.WriteByte(')')
		idx = parent
	}
}

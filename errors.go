package pi0eta

import (
	"fmt"

	"github.com/pkg/errors"
)

// Errors
var (
	ErrMalformedAncestry = errors.New("malformed thrown ancestry")
	ErrEventCapReached   = errors.New("maximum number of events reached")
	ErrNoTree            = errors.New("tree not found")
	ErrBadConfig         = errors.New("bad run configuration")
	ErrNoFreeLogSlot     = errors.New("no free composition log slot")
)

// MalformedAncestryError reports a thrown parent chain that either points
// outside the thrown array or never reaches a root. A photon whose thrown
// index is itself out of range is reported with Index and Parent equal to
// Start.
type MalformedAncestryError struct {
	Start  int // thrown index the walk started from
	Index  int // thrown index being visited when the walk gave up
	Parent int // offending parent index
	Steps  int

	OutOfRange bool
}

func (e *MalformedAncestryError) Error() string {
	if e.OutOfRange && e.Index == e.Parent {
		return fmt.Sprintf("%v: photon thrown index %d out of range", ErrMalformedAncestry, e.Start)
	}
	if e.OutOfRange {
		return fmt.Sprintf("%v: thrown[%d] has parent index %d out of range", ErrMalformedAncestry, e.Index, e.Parent)
	}
	return fmt.Sprintf("%v: walk from thrown[%d] did not reach a root after %d steps", ErrMalformedAncestry, e.Start, e.Steps)
}

func (e *MalformedAncestryError) Is(target error) bool {
	return target == ErrMalformedAncestry
}

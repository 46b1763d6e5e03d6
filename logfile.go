package pi0eta

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// OpenCompositionLog creates the first of dir/<prefix>_0.txt ...
// dir/<prefix>_<max-1>.txt that does not exist yet. Creation is exclusive,
// so runs started side by side in the same directory each get their own
// file.
func OpenCompositionLog(dir, prefix string, max int) (*os.File, error) {
	for i := 0; i < max; i++ {
		fname := filepath.Join(dir, fmt.Sprintf("%s_%d.txt", prefix, i))
		f, err := os.OpenFile(fname, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		switch {
		case err == nil:
			return f, nil
		case os.IsExist(err):
			continue
		default:
			return nil, errors.Wrap(err, "could not create composition log")
		}
	}
	return nil, errors.Wrapf(ErrNoFreeLogSlot, "%s_0..%d.txt in %s", prefix, max-1, dir)
}

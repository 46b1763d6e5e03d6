package pi0eta

import (
	"fmt"
	"strconv"
	"strings"
)

// FloatArrayFlags is a flag.Value collecting floats. It accepts repeated
// flags and comma-separated lists ("-chisqedge 10,20 -chisqedge 50"). The
// first Set discards whatever Array held before, so Array can carry
// defaults.
type FloatArrayFlags struct {
	Array   []float64
	beenSet bool
}

func (f *FloatArrayFlags) Set(valueStr string) error {
	var values []float64
	for _, field := range strings.Split(valueStr, ",") {
		value, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return err
		}
		values = append(values, value)
	}

	if !f.beenSet {
		f.beenSet = true
		f.Array = nil
	}

	f.Array = append(f.Array, values...)
	return nil
}

func (f *FloatArrayFlags) String() string {
	if f == nil {
		return "[]"
	}
	return fmt.Sprint(f.Array)
}

// IsSet reports whether the flag appeared on the command line.
func (f *FloatArrayFlags) IsSet() bool {
	return f.beenSet
}

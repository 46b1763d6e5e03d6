package pi0eta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/plot"
)

func labelled(ticks []plot.Tick) (vals []float64, labels []string) {
	for _, t := range ticks {
		if t.IsMinor() {
			continue
		}
		vals = append(vals, t.Value)
		labels = append(labels, t.Label)
	}
	return vals, labels
}

func TestPreciseTicksBeamEnergy(t *testing.T) {
	ticks := PreciseTicks{NSuggestedTicks: 5}.Ticks(0, 12)

	vals, labels := labelled(ticks)
	assert.Equal(t, []float64{0, 3, 6, 9, 12}, vals)
	assert.Equal(t, []string{"0", "3", "6", "9", "12"}, labels)

	for _, tick := range ticks {
		assert.True(t, tick.Value >= 0 && tick.Value <= 12, "%v", tick.Value)
	}
	assert.Greater(t, len(ticks), len(vals), "minor ticks between majors")
}

func TestPreciseTicksStraddlingZero(t *testing.T) {
	ticks := PreciseTicks{NSuggestedTicks: 5}.Ticks(-0.06, 0.06)

	vals, labels := labelled(ticks)
	assert.Contains(t, vals, -0.03)
	assert.Contains(t, vals, 0.0)
	assert.Contains(t, vals, 0.03)
	assert.Contains(t, labels, "-0.03")
	assert.Contains(t, labels, "0")

	seen := make(map[float64]bool)
	for _, tick := range ticks {
		assert.False(t, seen[tick.Value], "duplicate tick at %v", tick.Value)
		seen[tick.Value] = true
	}
}

func TestPreciseTicksIllegalRange(t *testing.T) {
	assert.Panics(t, func() { PreciseTicks{}.Ticks(1, 1) })
}

func TestPreciseTicksFewSuggested(t *testing.T) {
	for _, n := range []int{1, -3} {
		var ticks []plot.Tick
		assert.NotPanics(t, func() { ticks = PreciseTicks{NSuggestedTicks: n}.Ticks(0, 12) })
		vals, _ := labelled(ticks)
		assert.NotEmpty(t, vals, "n=%d", n)
		for _, v := range vals {
			assert.True(t, v >= 0 && v <= 12, "%v", v)
		}
	}
}

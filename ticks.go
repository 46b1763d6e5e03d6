package pi0eta

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// PreciseTicks places round-valued major ticks, labelled with only as many
// decimals as the tick spacing needs, and unlabelled minor ticks between
// them. It handles ranges straddling zero, such as missing mass squared.
type PreciseTicks struct {
	NSuggestedTicks int
}

func (t PreciseTicks) Ticks(min, max float64) []plot.Tick {
	switch {
	case t.NSuggestedTicks == 0:
		t.NSuggestedTicks = 4
	case t.NSuggestedTicks < 2:
		t.NSuggestedTicks = 2
	}

	if max <= min {
		panic("illegal range")
	}

	tens := math.Pow10(int(math.Floor(math.Log10(max - min))))
	n := (max - min) / tens
	for n < float64(t.NSuggestedTicks)-1 {
		tens /= 10
		n = (max - min) / tens
	}

	majorMult := int(n / float64(t.NSuggestedTicks-1))
	switch majorMult {
	case 7:
		majorMult = 6
	case 9:
		majorMult = 8
	}
	majorDelta := float64(majorMult) * tens

	// decimals needed to tell adjacent major ticks apart
	prec := 1 - int(math.Floor(math.Log10(majorDelta)))
	if prec < 0 {
		prec = 0
	}

	var ticks []plot.Tick
	val := math.Floor(min/majorDelta) * majorDelta
	for val <= max {
		if v := round(val, prec); v >= min && v <= max {
			ticks = append(ticks, plot.Tick{Value: v, Label: formatFloatTick(v, -1)})
		}
		val += majorDelta
	}

	minorDelta := majorDelta / 2
	switch majorMult {
	case 3, 6:
		minorDelta = majorDelta / 3
	case 5:
		minorDelta = majorDelta / 5
	}

	val = math.Floor(min/minorDelta) * minorDelta
	for val <= max {
		v := round(val, prec+1)
		if v >= min && v <= max && !hasTick(ticks, v, minorDelta/2) {
			ticks = append(ticks, plot.Tick{Value: v})
		}
		val += minorDelta
	}
	return ticks
}

func hasTick(ticks []plot.Tick, v, tol float64) bool {
	for _, t := range ticks {
		if math.Abs(t.Value-v) < tol {
			return true
		}
	}
	return false
}

func round(x float64, prec int) float64 {
	if x == 0 {
		// Make sure zero is returned
		// without the negative bit set.
		return 0
	}
	// Fast path for positive precision on integers.
	if prec >= 0 && x == math.Trunc(x) {
		return x
	}
	pow := math.Pow10(prec)
	intermed := x * pow
	if math.IsInf(intermed, 0) {
		return x
	}
	if x < 0 {
		x = math.Ceil(intermed - 0.5)
	} else {
		x = math.Floor(intermed + 0.5)
	}

	if x == 0 {
		return 0
	}

	return x / pow
}

func formatFloatTick(v float64, prec int) string {
	return strconv.FormatFloat(v, 'g', prec, 64)
}

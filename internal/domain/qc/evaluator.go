package qc

import (
	"strconv"

	"qc_review_bot/internal/domain/analyte"
)

// Deviation is the distance of a value from the lot mean in standard deviations.
// A zero standard deviation with value != mean has no defined deviation; callers
// must check Defined before using Value.
type Deviation struct {
	value   float64
	defined bool
}

// Undefined is the deviation of a value that differs from the mean of a lot
// whose standard deviation is zero.
var Undefined = Deviation{}

func definedDeviation(v float64) Deviation {
	return Deviation{value: v, defined: true}
}

func (d Deviation) Defined() bool { return d.defined }

// Value returns the deviation and whether it is defined.
func (d Deviation) Value() (float64, bool) { return d.value, d.defined }

func (d Deviation) String() string {
	if !d.defined {
		return "n/a"
	}
	return strconv.FormatFloat(d.value, 'f', 2, 64)
}

// Result is the outcome of evaluating one measurement.
type Result struct {
	Status    Status
	Deviation Deviation
}

// Evaluate classifies a measurement against its inclusive acceptance bounds and
// computes its deviation from the lot mean. Bounds alone decide the status; the
// deviation is informational.
func Evaluate(m analyte.Measurement) Result {
	return Result{
		Status:    classify(m.Value, m.MinLevel, m.MaxLevel),
		Deviation: deviation(m.Value, m.Mean, m.StdDeviation),
	}
}

func classify(value, minLevel, maxLevel float64) Status {
	switch {
	case value > maxLevel:
		return OutOfRangeHigh
	case value < minLevel:
		return OutOfRangeLow
	default:
		return InRange
	}
}

func deviation(value, mean, sd float64) Deviation {
	if sd > 0 {
		return definedDeviation((value - mean) / sd)
	}
	if value == mean {
		return definedDeviation(0)
	}
	return Undefined
}

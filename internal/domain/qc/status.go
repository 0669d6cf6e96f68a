package qc

// Status is the qualitative QC status of a measurement. It is derived on every
// read and never stored.
type Status uint8

const (
	InRange Status = iota
	OutOfRangeHigh
	OutOfRangeLow
)

func (s Status) String() string {
	switch s {
	case InRange:
		return "IN_RANGE"
	case OutOfRangeHigh:
		return "OUT_OF_RANGE_HIGH"
	case OutOfRangeLow:
		return "OUT_OF_RANGE_LOW"
	default:
		return "UNKNOWN"
	}
}

// Label is the short form shown next to a result.
func (s Status) Label() string {
	switch s {
	case InRange:
		return "OK"
	case OutOfRangeHigh:
		return "HIGH"
	case OutOfRangeLow:
		return "LOW"
	default:
		return "?"
	}
}

// Statuses lists every status in display order.
func Statuses() []Status {
	return []Status{InRange, OutOfRangeHigh, OutOfRangeLow}
}

package report

import (
	"fmt"
	"slices"
	"strconv"

	"qc_review_bot/internal/domain/analyte"
)

type options struct {
	panelName string
	lotNumber string
}

// Option sets header fields that do not come from the measurements.
type Option func(*options)

// WithPanel names the QC panel and control lot of the report.
func WithPanel(panelName, lotNumber string) Option {
	return func(o *options) {
		o.panelName = panelName
		o.lotNumber = lotNumber
	}
}

// Assemble builds a view over measurements, keeping their order. The header
// takes reference data from the first measurement; every later measurement
// that disagrees adds an ErrInconsistentReferenceData defect.
func Assemble(measurements []analyte.Measurement, opts ...Option) View {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	v := View{
		Header: Header{
			QCPanelName: o.panelName,
			LotNumber:   o.lotNumber,
		},
		measurements: slices.Clone(measurements),
	}
	if len(measurements) == 0 {
		return v
	}

	first := measurements[0]
	v.Header.ClosedDate = first.ClosedDate
	v.Header.AnalyteName = first.AnalyteName
	v.Header.MinLevel = first.MinLevel
	v.Header.MaxLevel = first.MaxLevel

	for i, m := range measurements[1:] {
		if diff := referenceDiff(first, m); diff != "" {
			v.Defects = append(v.Defects, fmt.Errorf("%w: row %d %s", ErrInconsistentReferenceData, i+2, diff))
		}
	}
	return v
}

func referenceDiff(want, got analyte.Measurement) string {
	switch {
	case got.AnalyteName != want.AnalyteName:
		return fmt.Sprintf("analyte %q, expected %q", got.AnalyteName, want.AnalyteName)
	case got.MinLevel != want.MinLevel:
		return fmt.Sprintf("min level %g, expected %g", got.MinLevel, want.MinLevel)
	case got.MaxLevel != want.MaxLevel:
		return fmt.Sprintf("max level %g, expected %g", got.MaxLevel, want.MaxLevel)
	case got.Mean != want.Mean:
		return fmt.Sprintf("mean %g, expected %g", got.Mean, want.Mean)
	case got.StdDeviation != want.StdDeviation:
		return fmt.Sprintf("std deviation %g, expected %g", got.StdDeviation, want.StdDeviation)
	}
	return ""
}

// FormatResult renders a value with the fixed two-decimal display precision.
func FormatResult(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// FormatLevel renders a range bound without trailing zeros.
func FormatLevel(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

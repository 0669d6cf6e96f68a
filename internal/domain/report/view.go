package report

import (
	"errors"
	"iter"
	"time"

	"qc_review_bot/internal/domain/analyte"
	"qc_review_bot/internal/domain/qc"
)

// ErrInconsistentReferenceData marks measurements of one report that disagree
// on lot reference data. It is a defect of the view, not a failure.
var ErrInconsistentReferenceData = errors.New("inconsistent reference data")

const (
	RunDateLayout = "01/02/2006"
	RunTimeLayout = "3:04:05 PM"
)

// Header summarises a report. Reference fields come from the first measurement.
type Header struct {
	QCPanelName string
	LotNumber   string
	ClosedDate  time.Time
	AnalyteName string
	MinLevel    float64
	MaxLevel    float64
}

// Row is one QC run as displayed.
type Row struct {
	RunDate   string
	RunTime   string
	Result    string // value with two decimals
	Tech      string
	Comments  string
	Status    qc.Status
	Deviation qc.Deviation
}

// View is the displayable form of an ordered set of measurements.
type View struct {
	Header  Header
	Defects []error

	measurements []analyte.Measurement
}

// Len is the number of rows.
func (v View) Len() int { return len(v.measurements) }

// Empty reports whether there is nothing to show.
func (v View) Empty() bool { return len(v.measurements) == 0 }

// Rows yields one row per measurement in input order. Rows are evaluated as
// they are pulled and the sequence may be ranged over any number of times.
func (v View) Rows() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for _, m := range v.measurements {
			if !yield(newRow(m)) {
				return
			}
		}
	}
}

// Summary counts rows per status.
func (v View) Summary() map[qc.Status]int {
	counts := make(map[qc.Status]int, len(qc.Statuses()))
	for row := range v.Rows() {
		counts[row.Status]++
	}
	return counts
}

func newRow(m analyte.Measurement) Row {
	res := qc.Evaluate(m)
	return Row{
		RunDate:   m.ClosedDate.Format(RunDateLayout),
		RunTime:   m.ClosedDate.Format(RunTimeLayout),
		Result:    FormatResult(m.Value),
		Tech:      m.Initials,
		Comments:  m.Comment,
		Status:    res.Status,
		Deviation: res.Deviation,
	}
}

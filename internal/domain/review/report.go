package review

import (
	"time"

	"github.com/google/uuid"
)

// StudentReport is the unit under review: the QC runs a student recorded
// against one lot.
type StudentReport struct {
	ID            uuid.UUID
	StudentID     uuid.UUID
	LotID         uuid.UUID
	CreatedDate   time.Time
	QCName        string
	AnalyteInputs []AnalyteInputRef // display order
}

// AnalyteInputRef points at one captured measurement of a report.
type AnalyteInputRef struct {
	ID          uuid.UUID
	AnalyteName string
	Position    int
}

// AnalyteNames returns the distinct analyte names in first-seen order.
func (r *StudentReport) AnalyteNames() []string {
	seen := make(map[string]struct{}, len(r.AnalyteInputs))
	names := make([]string, 0, len(r.AnalyteInputs))
	for _, in := range r.AnalyteInputs {
		if _, ok := seen[in.AnalyteName]; ok {
			continue
		}
		seen[in.AnalyteName] = struct{}{}
		names = append(names, in.AnalyteName)
	}
	return names
}

// Reviewable reports whether the report can be put in front of a reviewer.
func (r *StudentReport) Reviewable() error {
	if len(r.AnalyteInputs) == 0 {
		return ErrEmptyReport
	}
	return nil
}

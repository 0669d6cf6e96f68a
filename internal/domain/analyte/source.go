package analyte

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNetwork marks a failure to reach the measurement source.
var ErrNetwork = errors.New("measurement source unavailable")

// Source fetches the raw QC runs recorded for one analyte, in run order.
// Implementations wrap transport failures with ErrNetwork and do not retry.
type Source interface {
	FetchMeasurements(ctx context.Context, analyteName string) ([]RawRecord, error)
}

// ReportSource fetches the raw runs captured for one student report, in input
// order. Each record carries its FieldInputID.
type ReportSource interface {
	FetchReportMeasurements(ctx context.Context, reportID uuid.UUID) ([]RawRecord, error)
}

package review

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Repository persists student reports and their decision trail.
// Storage failures wrap ErrPersistence; an unknown report is ErrReportNotFound.
type Repository interface {
	LoadReport(ctx context.Context, reportID uuid.UUID) (*StudentReport, error)
	// SaveReviewDecision appends rec to the report's trail. It never updates an
	// existing record.
	SaveReviewDecision(ctx context.Context, reportID uuid.UUID, rec *DecisionRecord) error
	// ListDecisions returns the trail oldest first.
	ListDecisions(ctx context.Context, reportID uuid.UUID) ([]*DecisionRecord, error)
	// ListPendingReports returns reports created before the cutoff that have no decision yet.
	ListPendingReports(ctx context.Context, createdBefore time.Time) ([]*StudentReport, error)
}

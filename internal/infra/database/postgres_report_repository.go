package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"qc_review_bot/internal/domain/review"
)

type PostgresReportRepository struct {
	db *sql.DB
}

var _ review.Repository = (*PostgresReportRepository)(nil)

func NewPostgresReportRepository(db *sql.DB) *PostgresReportRepository {
	return &PostgresReportRepository{db: db}
}

func (r *PostgresReportRepository) LoadReport(ctx context.Context, reportID uuid.UUID) (*review.StudentReport, error) {
	query := `SELECT report_id, student_id, lot_id, created_date, qc_name
               FROM student_reports WHERE report_id = $1`
	rep := &review.StudentReport{}
	err := r.db.QueryRowContext(ctx, query, reportID).
		Scan(&rep.ID, &rep.StudentID, &rep.LotID, &rep.CreatedDate, &rep.QCName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, review.ErrReportNotFound
		}
		return nil, fmt.Errorf("%w: loading report %s: %w", review.ErrPersistence, reportID, err)
	}

	inputs, err := r.loadInputs(ctx, []uuid.UUID{reportID})
	if err != nil {
		return nil, err
	}
	rep.AnalyteInputs = inputs[reportID]
	return rep, nil
}

// loadInputs returns the input references of each report, ordered by position.
func (r *PostgresReportRepository) loadInputs(ctx context.Context, reportIDs []uuid.UUID) (map[uuid.UUID][]review.AnalyteInputRef, error) {
	ids := make([]string, len(reportIDs))
	for i, id := range reportIDs {
		ids[i] = id.String()
	}

	query := `SELECT report_id, analyte_input_id, analyte_name, position
               FROM analyte_inputs
               WHERE report_id = ANY($1::uuid[])
               ORDER BY report_id, position`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("%w: querying analyte inputs: %w", review.ErrPersistence, err)
	}
	defer rows.Close()

	inputs := make(map[uuid.UUID][]review.AnalyteInputRef, len(reportIDs))
	for rows.Next() {
		var reportID uuid.UUID
		var in review.AnalyteInputRef
		if err := rows.Scan(&reportID, &in.ID, &in.AnalyteName, &in.Position); err != nil {
			return nil, fmt.Errorf("%w: scanning analyte input row: %w", review.ErrPersistence, err)
		}
		inputs[reportID] = append(inputs[reportID], in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating analyte input rows: %w", review.ErrPersistence, err)
	}
	return inputs, nil
}

// SaveReviewDecision inserts rec. A zero ID or DecidedAt is filled in.
func (r *PostgresReportRepository) SaveReviewDecision(ctx context.Context, reportID uuid.UUID, rec *review.DecisionRecord) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.DecidedAt.IsZero() {
		rec.DecidedAt = time.Now().UTC()
	}
	rec.ReportID = reportID

	query := `INSERT INTO review_decisions (decision_id, report_id, reviewer_id, verdict, comment, decided_at)
               VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID, reportID, rec.ReviewerID, rec.Decision.Verdict().String(), rec.Decision.Comment(), rec.DecidedAt)
	if err != nil {
		if hasCode(err, codeForeignKeyViolation) {
			return fmt.Errorf("%w: %w", review.ErrReportNotFound, err)
		}
		return fmt.Errorf("%w: saving decision for report %s: %w", review.ErrPersistence, reportID, err)
	}
	return nil
}

func (r *PostgresReportRepository) ListDecisions(ctx context.Context, reportID uuid.UUID) ([]*review.DecisionRecord, error) {
	query := `SELECT decision_id, report_id, reviewer_id, verdict, comment, decided_at
               FROM review_decisions
               WHERE report_id = $1
               ORDER BY decided_at, decision_id`
	rows, err := r.db.QueryContext(ctx, query, reportID)
	if err != nil {
		return nil, fmt.Errorf("%w: querying decisions: %w", review.ErrPersistence, err)
	}
	defer rows.Close()

	records := make([]*review.DecisionRecord, 0)
	for rows.Next() {
		rec := &review.DecisionRecord{}
		var verdict, comment string
		if err := rows.Scan(&rec.ID, &rec.ReportID, &rec.ReviewerID, &verdict, &comment, &rec.DecidedAt); err != nil {
			return nil, fmt.Errorf("%w: scanning decision row: %w", review.ErrPersistence, err)
		}
		v, err := review.ParseVerdict(verdict)
		if err != nil {
			return nil, fmt.Errorf("%w: decision %s: %w", review.ErrPersistence, rec.ID, err)
		}
		if rec.Decision, err = review.RestoreDecision(v, comment); err != nil {
			return nil, fmt.Errorf("%w: decision %s: %w", review.ErrPersistence, rec.ID, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating decision rows: %w", review.ErrPersistence, err)
	}
	return records, nil
}

func (r *PostgresReportRepository) ListPendingReports(ctx context.Context, createdBefore time.Time) ([]*review.StudentReport, error) {
	query := `SELECT sr.report_id, sr.student_id, sr.lot_id, sr.created_date, sr.qc_name
               FROM student_reports sr
               WHERE sr.created_date < $1
                 AND NOT EXISTS (SELECT 1 FROM review_decisions rd WHERE rd.report_id = sr.report_id)
               ORDER BY sr.created_date, sr.report_id`
	rows, err := r.db.QueryContext(ctx, query, createdBefore)
	if err != nil {
		return nil, fmt.Errorf("%w: querying pending reports: %w", review.ErrPersistence, err)
	}
	defer rows.Close()

	reports := make([]*review.StudentReport, 0)
	for rows.Next() {
		rep := &review.StudentReport{}
		if err := rows.Scan(&rep.ID, &rep.StudentID, &rep.LotID, &rep.CreatedDate, &rep.QCName); err != nil {
			return nil, fmt.Errorf("%w: scanning report row: %w", review.ErrPersistence, err)
		}
		reports = append(reports, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating report rows: %w", review.ErrPersistence, err)
	}
	if len(reports) == 0 {
		return reports, nil
	}

	ids := make([]uuid.UUID, len(reports))
	for i, rep := range reports {
		ids[i] = rep.ID
	}
	inputs, err := r.loadInputs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, rep := range reports {
		rep.AnalyteInputs = inputs[rep.ID]
	}
	return reports, nil
}

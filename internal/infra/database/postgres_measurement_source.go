package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"qc_review_bot/internal/domain/analyte"
)

// PostgresMeasurementSource serves captured analyte inputs as raw records, so
// rows written by the capture process go through the same normalizer as API data.
type PostgresMeasurementSource struct {
	db *sql.DB
}

var (
	_ analyte.Source       = (*PostgresMeasurementSource)(nil)
	_ analyte.ReportSource = (*PostgresMeasurementSource)(nil)
)

func NewPostgresMeasurementSource(db *sql.DB) *PostgresMeasurementSource {
	return &PostgresMeasurementSource{db: db}
}

const analyteInputColumns = `analyte_input_id, closed_date, analyte_name, analyte_value, mean, std_devi, min_level, max_level, initials, comment`

// FetchMeasurements returns every captured run of the analyte across reports.
func (s *PostgresMeasurementSource) FetchMeasurements(ctx context.Context, analyteName string) ([]analyte.RawRecord, error) {
	query := `SELECT ` + analyteInputColumns + `
               FROM analyte_inputs
               WHERE analyte_name = $1
               ORDER BY closed_date NULLS LAST, report_id, position`
	return s.query(ctx, query, analyteName)
}

// FetchReportMeasurements returns the runs of one report in input order.
func (s *PostgresMeasurementSource) FetchReportMeasurements(ctx context.Context, reportID uuid.UUID) ([]analyte.RawRecord, error) {
	query := `SELECT ` + analyteInputColumns + `
               FROM analyte_inputs
               WHERE report_id = $1
               ORDER BY position`
	return s.query(ctx, query, reportID)
}

func (s *PostgresMeasurementSource) query(ctx context.Context, query string, arg any) ([]analyte.RawRecord, error) {
	rows, err := s.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("%w: querying analyte inputs: %w", analyte.ErrNetwork, err)
	}
	defer rows.Close()

	records := make([]analyte.RawRecord, 0)
	for rows.Next() {
		var (
			inputID                           uuid.UUID
			closedDate                        sql.NullTime
			name                              string
			value, initials, comment          sql.NullString
			mean, stdDevi, minLevel, maxLevel sql.NullFloat64
		)
		if err := rows.Scan(&inputID, &closedDate, &name, &value, &mean, &stdDevi, &minLevel, &maxLevel, &initials, &comment); err != nil {
			return nil, fmt.Errorf("%w: scanning analyte input row: %w", analyte.ErrNetwork, err)
		}

		rec := analyte.RawRecord{
			analyte.FieldInputID:     inputID.String(),
			analyte.FieldAnalyteName: name,
		}
		putNullable(rec, analyte.FieldClosedDate, closedDate.Time, closedDate.Valid)
		putNullable(rec, analyte.FieldAnalyteValue, value.String, value.Valid)
		putNullable(rec, analyte.FieldMean, mean.Float64, mean.Valid)
		putNullable(rec, analyte.FieldStdDeviation, stdDevi.Float64, stdDevi.Valid)
		putNullable(rec, analyte.FieldMinLevel, minLevel.Float64, minLevel.Valid)
		putNullable(rec, analyte.FieldMaxLevel, maxLevel.Float64, maxLevel.Valid)
		putNullable(rec, analyte.FieldInitials, initials.String, initials.Valid)
		putNullable(rec, analyte.FieldComment, comment.String, comment.Valid)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating analyte input rows: %w", analyte.ErrNetwork, err)
	}
	return records, nil
}

func putNullable(rec analyte.RawRecord, field string, v any, valid bool) {
	if valid {
		rec[field] = v
	}
}

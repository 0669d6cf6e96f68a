package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"qc_review_bot/internal/domain/reviewer"
)

type PostgresReviewerRepository struct {
	db *sql.DB
}

var _ reviewer.Repository = (*PostgresReviewerRepository)(nil)

func NewPostgresReviewerRepository(db *sql.DB) *PostgresReviewerRepository {
	return &PostgresReviewerRepository{db: db}
}

const reviewerColumns = `id, telegram_id, first_name, last_name, is_active, created_at, updated_at`

func (r *PostgresReviewerRepository) Create(ctx context.Context, rv *reviewer.Reviewer) error {
	query := `INSERT INTO reviewers (telegram_id, first_name, last_name, is_active)
               VALUES ($1, $2, $3, $4)
               RETURNING id, created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query, rv.TelegramID, rv.FirstName, rv.LastName, rv.IsActive).
		Scan(&rv.ID, &rv.CreatedAt, &rv.UpdatedAt)
	if err != nil {
		if hasCode(err, codeUniqueViolation) {
			return reviewer.ErrDuplicateTelegramID
		}
		return fmt.Errorf("error creating reviewer: %w", err)
	}
	return nil
}

func (r *PostgresReviewerRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*reviewer.Reviewer, error) {
	query := `SELECT ` + reviewerColumns + ` FROM reviewers WHERE telegram_id = $1`
	rv, err := scanReviewer(r.db.QueryRowContext(ctx, query, telegramID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, reviewer.ErrNotFound
		}
		return nil, fmt.Errorf("error getting reviewer by Telegram ID: %w", err)
	}
	return rv, nil
}

func (r *PostgresReviewerRepository) Update(ctx context.Context, rv *reviewer.Reviewer) error {
	query := `UPDATE reviewers
               SET first_name = $1, last_name = $2, is_active = $3, updated_at = NOW()
               WHERE id = $4
               RETURNING updated_at`
	err := r.db.QueryRowContext(ctx, query, rv.FirstName, rv.LastName, rv.IsActive, rv.ID).Scan(&rv.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return reviewer.ErrNotFound
		}
		return fmt.Errorf("error updating reviewer: %w", err)
	}
	return nil
}

func (r *PostgresReviewerRepository) ListActive(ctx context.Context) ([]*reviewer.Reviewer, error) {
	return r.list(ctx, `SELECT `+reviewerColumns+` FROM reviewers WHERE is_active = TRUE ORDER BY first_name, id`)
}

func (r *PostgresReviewerRepository) ListAll(ctx context.Context) ([]*reviewer.Reviewer, error) {
	return r.list(ctx, `SELECT `+reviewerColumns+` FROM reviewers ORDER BY first_name, id`)
}

func (r *PostgresReviewerRepository) list(ctx context.Context, query string) ([]*reviewer.Reviewer, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing reviewers: %w", err)
	}
	defer rows.Close()

	reviewers := make([]*reviewer.Reviewer, 0)
	for rows.Next() {
		rv, err := scanReviewer(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning reviewer row: %w", err)
		}
		reviewers = append(reviewers, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reviewer rows: %w", err)
	}
	return reviewers, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReviewer(row rowScanner) (*reviewer.Reviewer, error) {
	rv := &reviewer.Reviewer{}
	err := row.Scan(&rv.ID, &rv.TelegramID, &rv.FirstName, &rv.LastName, &rv.IsActive, &rv.CreatedAt, &rv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return rv, nil
}

package reviewer

import (
	"context"
	"errors"
)

var (
	ErrNotFound            = errors.New("reviewer not found")
	ErrDuplicateTelegramID = errors.New("reviewer with this Telegram ID already exists")
)

// Repository persists reviewers.
type Repository interface {
	Create(ctx context.Context, r *Reviewer) error
	GetByTelegramID(ctx context.Context, telegramID int64) (*Reviewer, error)
	Update(ctx context.Context, r *Reviewer) error // FirstName, LastName, IsActive
	ListActive(ctx context.Context) ([]*Reviewer, error)
	ListAll(ctx context.Context) ([]*Reviewer, error)
}

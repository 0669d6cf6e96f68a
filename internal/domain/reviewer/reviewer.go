package reviewer

import (
	"database/sql"
	"time"
)

// Reviewer is a lab supervisor allowed to review student QC reports.
type Reviewer struct {
	ID         int64
	TelegramID int64
	FirstName  string
	LastName   sql.NullString
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// DisplayName is the first name, followed by the last name when known.
func (r *Reviewer) DisplayName() string {
	if r.LastName.Valid && r.LastName.String != "" {
		return r.FirstName + " " + r.LastName.String
	}
	return r.FirstName
}

package review

import "errors"

// ErrValidation matches every *ValidationError.
var ErrValidation = errors.New("review validation failed")

// ErrInvalidState is returned for any operation on a closed session.
var ErrInvalidState = errors.New("review session is closed")

var (
	ErrPersistence    = errors.New("review storage failure")
	ErrReportNotFound = errors.New("student report not found")
	ErrEmptyReport    = errors.New("student report has no analyte inputs")
)

const (
	ReasonCommentRequired  = "comment required"
	ReasonNoStatusSelected = "no status selected"
)

// ValidationError is a reviewer-correctable problem found at submit time.
// The session stays open.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

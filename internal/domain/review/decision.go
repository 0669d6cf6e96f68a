package review

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Verdict is the reviewer's choice. The zero value means nothing was chosen.
type Verdict uint8

const (
	Approved Verdict = iota + 1
	Concern
)

func (v Verdict) String() string {
	switch v {
	case Approved:
		return "APPROVED"
	case Concern:
		return "CONCERN"
	default:
		return "NONE"
	}
}

// ParseVerdict is the inverse of String for the two real verdicts.
func ParseVerdict(s string) (Verdict, error) {
	switch s {
	case "APPROVED":
		return Approved, nil
	case "CONCERN":
		return Concern, nil
	default:
		return 0, fmt.Errorf("unknown verdict %q", s)
	}
}

// Decision is a validated reviewer verdict. Comment is non-empty exactly when
// Verdict is Concern. Only Session.Submit produces one.
type Decision struct {
	verdict Verdict
	comment string
}

func (d Decision) Verdict() Verdict { return d.verdict }
func (d Decision) Comment() string  { return d.comment }

// RestoreDecision rebuilds a decision read back from storage.
func RestoreDecision(verdict Verdict, comment string) (Decision, error) {
	switch verdict {
	case Approved:
		if comment != "" {
			return Decision{}, fmt.Errorf("approved decision carries a comment")
		}
	case Concern:
		if isBlank(comment) {
			return Decision{}, fmt.Errorf("concern decision has no comment")
		}
	default:
		return Decision{}, fmt.Errorf("unknown verdict %d", verdict)
	}
	return Decision{verdict: verdict, comment: comment}, nil
}

// DecisionRecord is a decision as stored against a report. Records are only
// ever appended; the newest one is the report's reviewed state.
type DecisionRecord struct {
	ID         uuid.UUID
	ReportID   uuid.UUID
	ReviewerID int64
	Decision   Decision
	DecidedAt  time.Time
}

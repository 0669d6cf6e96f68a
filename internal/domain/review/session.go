package review

import (
	"strings"

	"github.com/google/uuid"
)

// State is where a session sits in the review lifecycle.
type State uint8

const (
	StatePending State = iota
	StateApproved
	StateConcern
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "PENDING"
	case StateApproved:
		return "APPROVED"
	case StateConcern:
		return "CONCERN"
	default:
		return "UNKNOWN"
	}
}

// Snapshot is a read-only copy of a session for display.
type Snapshot struct {
	ReportID uuid.UUID
	State    State
	Choice   Verdict
	Draft    string
	Closed   bool
}

// Session holds one reviewer's in-progress review of one report. A session has
// a single owner and is not safe for concurrent use. Nothing is persisted
// until Submit succeeds and the caller stores the decision.
type Session struct {
	reportID uuid.UUID
	choice   Verdict
	draft    string
	closed   bool
	decision Decision
}

func NewSession(reportID uuid.UUID) *Session {
	return &Session{reportID: reportID}
}

func (s *Session) ReportID() uuid.UUID { return s.reportID }

// SelectStatus records the reviewer's current choice. Choosing Approved drops
// any draft comment.
func (s *Session) SelectStatus(v Verdict) error {
	if s.closed {
		return ErrInvalidState
	}
	if v != Approved && v != Concern {
		return &ValidationError{Reason: ReasonNoStatusSelected}
	}
	s.choice = v
	if v == Approved {
		s.draft = ""
	}
	return nil
}

// SetComment replaces the draft comment. It is only checked on Submit.
func (s *Session) SetComment(text string) error {
	if s.closed {
		return ErrInvalidState
	}
	s.draft = text
	return nil
}

// Submit validates the current choice and closes the session. On a
// validation error the session stays open for correction.
func (s *Session) Submit() (Decision, error) {
	if s.closed {
		return Decision{}, ErrInvalidState
	}

	var d Decision
	switch s.choice {
	case Approved:
		d = Decision{verdict: Approved}
	case Concern:
		if isBlank(s.draft) {
			return Decision{}, &ValidationError{Reason: ReasonCommentRequired}
		}
		d = Decision{verdict: Concern, comment: s.draft}
	default:
		return Decision{}, &ValidationError{Reason: ReasonNoStatusSelected}
	}

	s.closed = true
	s.draft = ""
	s.decision = d
	return d, nil
}

// Decision returns the submitted decision, if any.
func (s *Session) Decision() (Decision, bool) {
	return s.decision, s.closed
}

func (s *Session) CurrentState() Snapshot {
	snap := Snapshot{
		ReportID: s.reportID,
		State:    StatePending,
		Choice:   s.choice,
		Draft:    s.draft,
		Closed:   s.closed,
	}
	if s.closed {
		snap.Choice = s.decision.verdict
		switch s.decision.verdict {
		case Approved:
			snap.State = StateApproved
		case Concern:
			snap.State = StateConcern
			snap.Draft = s.decision.comment
		}
	}
	return snap
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

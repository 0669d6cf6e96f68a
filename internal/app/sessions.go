package app

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"qc_review_bot/internal/domain/review"
)

// ErrNoSession is returned when a reviewer has no open review.
var ErrNoSession = errors.New("no review in progress")

// sessionEntry is one reviewer's session. mu serialises every operation on
// it, so a Submit and its save cannot interleave with another update.
type sessionEntry struct {
	mu         sync.Mutex
	session    *review.Session
	reviewerID int64                  // reviewers.id of the owner
	unsaved    *review.DecisionRecord // submitted but not yet stored
	discarded  bool
}

// SessionRegistry gives each reviewer at most one review session.
type SessionRegistry struct {
	mu       sync.Mutex
	sessions map[int64]*sessionEntry // keyed by owner Telegram ID
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{sessions: make(map[int64]*sessionEntry)}
}

// Open starts a session for owner, replacing any session it already had.
// It reports whether the replaced session still held unsaved work.
func (r *SessionRegistry) Open(owner int64, reviewerID int64, reportID uuid.UUID) bool {
	entry := &sessionEntry{session: review.NewSession(reportID), reviewerID: reviewerID}

	r.mu.Lock()
	prev, replaced := r.sessions[owner]
	r.sessions[owner] = entry
	r.mu.Unlock()

	if !replaced {
		return false
	}
	return prev.discard()
}

// With runs fn on owner's session while holding the session lock.
func (r *SessionRegistry) With(owner int64, fn func(*sessionEntry) error) error {
	r.mu.Lock()
	entry, ok := r.sessions[owner]
	r.mu.Unlock()
	if !ok {
		return ErrNoSession
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	if entry.discarded {
		return ErrNoSession
	}
	return fn(entry)
}

// Discard drops owner's session without persisting anything. It reports
// whether the session still held unsaved work.
func (r *SessionRegistry) Discard(owner int64) bool {
	r.mu.Lock()
	entry, ok := r.sessions[owner]
	delete(r.sessions, owner)
	r.mu.Unlock()
	if !ok {
		return false
	}
	return entry.discard()
}

// discard marks e dead and reports whether it held a draft or an unsaved decision.
func (e *sessionEntry) discard() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	pending := !e.discarded && (e.unsaved != nil || !e.session.CurrentState().Closed)
	e.discarded = true
	e.unsaved = nil
	return pending
}

// release removes entry when its decision can no longer be stored. Callers
// hold entry.mu.
func (r *SessionRegistry) release(owner int64, entry *sessionEntry) {
	r.mu.Lock()
	if r.sessions[owner] == entry {
		delete(r.sessions, owner)
	}
	r.mu.Unlock()
	entry.discarded = true
}

// Snapshot returns owner's session state, if any.
func (r *SessionRegistry) Snapshot(owner int64) (review.Snapshot, bool) {
	var snap review.Snapshot
	err := r.With(owner, func(e *sessionEntry) error {
		snap = e.session.CurrentState()
		return nil
	})
	return snap, err == nil
}

// Len is the number of tracked sessions, submitted ones included.
func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

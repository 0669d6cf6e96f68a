package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"qc_review_bot/internal/domain/reviewer"
)

// Custom application-level errors for admin service
var (
	ErrAdminNotAuthorized      = errors.New("performing user is not authorized as an admin")
	ErrReviewerAlreadyExists   = errors.New("reviewer with this Telegram ID already exists")
	ErrReviewerAlreadyInactive = errors.New("reviewer is already inactive")
)

// AdminService manages the reviewer allow-list.
type AdminService struct {
	reviewerRepo    reviewer.Repository
	adminTelegramID int64
}

func NewAdminService(rr reviewer.Repository, adminID int64) *AdminService {
	return &AdminService{
		reviewerRepo:    rr,
		adminTelegramID: adminID,
	}
}

// AddReviewer registers a new active reviewer, or reactivates an inactive one.
func (s *AdminService) AddReviewer(ctx context.Context, performingAdminID int64, telegramID int64, firstName string, lastNameValue string) (*reviewer.Reviewer, error) {
	if performingAdminID != s.adminTelegramID {
		return nil, ErrAdminNotAuthorized
	}

	existing, err := s.reviewerRepo.GetByTelegramID(ctx, telegramID)
	switch {
	case err == nil && existing.IsActive:
		return nil, ErrReviewerAlreadyExists
	case err == nil:
		existing.IsActive = true
		existing.FirstName = firstName
		existing.LastName = nullString(lastNameValue)
		if err := s.reviewerRepo.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("failed to reactivate reviewer: %w", err)
		}
		return existing, nil
	case !errors.Is(err, reviewer.ErrNotFound):
		return nil, fmt.Errorf("failed to check existing reviewer: %w", err)
	}

	newReviewer := &reviewer.Reviewer{
		TelegramID: telegramID,
		FirstName:  firstName,
		LastName:   nullString(lastNameValue),
		IsActive:   true,
	}
	if err := s.reviewerRepo.Create(ctx, newReviewer); err != nil {
		if errors.Is(err, reviewer.ErrDuplicateTelegramID) {
			return nil, ErrReviewerAlreadyExists
		}
		return nil, fmt.Errorf("failed to create reviewer in repository: %w", err)
	}
	return newReviewer, nil
}

// RemoveReviewer deactivates a reviewer. Their past decisions stay attributed.
func (s *AdminService) RemoveReviewer(ctx context.Context, performingAdminID int64, telegramID int64) (*reviewer.Reviewer, error) {
	if performingAdminID != s.adminTelegramID {
		return nil, ErrAdminNotAuthorized
	}

	target, err := s.reviewerRepo.GetByTelegramID(ctx, telegramID)
	if err != nil {
		if errors.Is(err, reviewer.ErrNotFound) {
			return nil, reviewer.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get reviewer by Telegram ID for removal: %w", err)
	}
	if !target.IsActive {
		return target, ErrReviewerAlreadyInactive
	}

	target.IsActive = false
	if err := s.reviewerRepo.Update(ctx, target); err != nil {
		return nil, fmt.Errorf("failed to update reviewer to inactive in repository: %w", err)
	}
	return target, nil
}

// ListReviewers returns active reviewers, or all of them when includeInactive is set.
func (s *AdminService) ListReviewers(ctx context.Context, performingAdminID int64, includeInactive bool) ([]*reviewer.Reviewer, error) {
	if performingAdminID != s.adminTelegramID {
		return nil, ErrAdminNotAuthorized
	}
	if includeInactive {
		return s.reviewerRepo.ListAll(ctx)
	}
	return s.reviewerRepo.ListActive(ctx)
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

package service

import (
	"context"
	"fmt"

	"station-reassignment-service/internal/domain"
	"station-reassignment-service/internal/my_errors"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

type ReassignmentService struct {
	repo ReassignmentRepository
}

func NewReassignmentService(repo ReassignmentRepository) *ReassignmentService {
	return &ReassignmentService{repo: repo}
}

// ListReassignments returns stored reassignments, newest first. An empty status
// means pending-approval.
func (s *ReassignmentService) ListReassignments(ctx context.Context, status string, limit int) ([]domain.Reassignment, error) {
	if status == "" {
		status = domain.StatusPendingApproval
	}
	switch status {
	case domain.StatusPendingApproval, domain.StatusApproved, domain.StatusRejected:
	default:
		return nil, fmt.Errorf("%w: status %q", my_errors.ErrValidation, status)
	}

	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	reassignments, err := s.repo.ListReassignments(ctx, status, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list reassignments: %w", err)
	}
	return reassignments, nil
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"station-reassignment-service/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"

	pendingSubjectConstraint = "station_reassignments_pending_subject_key"
)

// ReassignmentRepository stores reassignments in postgres. Its Submit makes
// it usable as the assignment gateway when the service owns the database.
type ReassignmentRepository struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

func NewReassignmentRepository(pool *pgxpool.Pool) *ReassignmentRepository {
	return &ReassignmentRepository{pool: pool, now: time.Now}
}

// Submit inserts one pending-approval row.
func (r *ReassignmentRepository) Submit(ctx context.Context, req domain.ReassignmentRequest) error {
	query := `
        INSERT INTO station_reassignments
            (id, subject_id, target_station_id, prior_station_id, effective_date, remarks, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    `
	_, err := r.pool.Exec(ctx, query,
		uuid.NewString(),
		req.SubjectID,
		req.TargetStationID,
		req.PriorStationID,
		req.EffectiveDate,
		req.Remarks,
		domain.StatusPendingApproval,
		r.now(),
	)
	if err != nil {
		return mapPgError(err)
	}
	return nil
}

func (r *ReassignmentRepository) ListReassignments(ctx context.Context, status string, limit int) ([]domain.Reassignment, error) {
	query := `
        SELECT id::text, subject_id, target_station_id, prior_station_id, effective_date, remarks, status, created_at
        FROM station_reassignments
        WHERE status = $1
        ORDER BY created_at DESC
        LIMIT $2
    `
	rows, err := r.pool.Query(ctx, query, status, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list reassignments: %w", err)
	}
	defer rows.Close()

	reassignments := []domain.Reassignment{}
	for rows.Next() {
		var ra domain.Reassignment
		if err := rows.Scan(
			&ra.ID,
			&ra.SubjectID,
			&ra.TargetStationID,
			&ra.PriorStationID,
			&ra.EffectiveDate,
			&ra.Remarks,
			&ra.Status,
			&ra.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan reassignment: %w", err)
		}
		reassignments = append(reassignments, ra)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reassignments: %w", err)
	}
	return reassignments, nil
}

// mapPgError turns constraint violations into user-facing reasons.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return &domain.SubmitError{Reason: "failed to store reassignment", Err: err}
	}

	switch pgErr.Code {
	case pgUniqueViolation:
		if pgErr.ConstraintName == pendingSubjectConstraint {
			return &domain.SubmitError{Reason: "duplicate: subject already has a pending reassignment", Err: err}
		}
		return &domain.SubmitError{Reason: "duplicate reassignment", Err: err}
	case pgForeignKeyViolation:
		return &domain.SubmitError{Reason: "unknown station or subject", Err: err}
	case pgCheckViolation:
		return &domain.SubmitError{Reason: "reassignment rejected by storage rules", Err: err}
	default:
		return &domain.SubmitError{Reason: "failed to store reassignment", Err: err}
	}
}

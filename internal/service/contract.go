package service

import (
	"context"
	"time"

	"station-reassignment-service/internal/domain"
)

// AssignmentGateway submits a single reassignment to the receiving system.
// Implementations make exactly one write attempt and report failures as
// returned errors, preferably *domain.SubmitError.
type AssignmentGateway interface {
	Submit(ctx context.Context, req domain.ReassignmentRequest) error
}

// ProgressReporter observes a batch run. It has no control over the run.
type ProgressReporter interface {
	Report(p domain.Progress)
}

// Pacer throttles dispatch between consecutive items.
type Pacer interface {
	Wait(ctx context.Context) error
}

// RunStarter is optionally implemented by a Pacer that must account for the
// first dispatch of a run.
type RunStarter interface {
	Start()
}

type BatchMetrics interface {
	RecordItem(succeeded bool, latency time.Duration)
	RecordBatch(classification domain.Classification, cancelled bool, duration time.Duration)
	SetInFlight(current, total int)
}

type ReassignmentRepository interface {
	ListReassignments(ctx context.Context, status string, limit int) ([]domain.Reassignment, error)
}

// RunObserver is optionally implemented by a ProgressReporter that wants to
// know when a run starts and finishes.
type RunObserver interface {
	RunStarted(runID string, total int)
	RunFinished(report *domain.BatchReport)
}

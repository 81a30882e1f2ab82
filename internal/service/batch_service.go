package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"station-reassignment-service/internal/domain"
	"station-reassignment-service/internal/my_errors"

	"github.com/google/uuid"
)

const reasonCancelled = "cancelled before dispatch"

// BatchService runs batch station reassignments. Items are always dispatched
// one at a time in selection order; a failed item never stops the run.
type BatchService struct {
	gateway  AssignmentGateway
	pacer    Pacer
	reporter ProgressReporter
	metrics  BatchMetrics
	logger   *slog.Logger
	now      func() time.Time
	newRunID func() string

	running atomic.Bool
}

type BatchOption func(*BatchService)

func WithProgress(reporter ProgressReporter) BatchOption {
	return func(s *BatchService) {
		if reporter != nil {
			s.reporter = reporter
		}
	}
}

func WithMetrics(metrics BatchMetrics) BatchOption {
	return func(s *BatchService) {
		if metrics != nil {
			s.metrics = metrics
		}
	}
}

func WithLogger(logger *slog.Logger) BatchOption {
	return func(s *BatchService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the submission clock used for the default effective date.
func WithClock(now func() time.Time) BatchOption {
	return func(s *BatchService) {
		if now != nil {
			s.now = now
		}
	}
}

func WithRunIDs(newRunID func() string) BatchOption {
	return func(s *BatchService) {
		if newRunID != nil {
			s.newRunID = newRunID
		}
	}
}

func NewBatchService(gateway AssignmentGateway, pacer Pacer, opts ...BatchOption) *BatchService {
	s := &BatchService{
		gateway:  gateway,
		pacer:    pacer,
		reporter: NopProgress{},
		metrics:  NopMetrics{},
		logger:   slog.Default(),
		now:      time.Now,
		newRunID: uuid.NewString,
	}
	if s.pacer == nil {
		s.pacer = noPacing{}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Running reports whether a batch loop is active.
func (s *BatchService) Running() bool {
	return s.running.Load()
}

// Run validates cmd, submits one reassignment per entity and returns the
// aggregated report. Only validation failures and ErrBatchInProgress are
// returned as errors; per-item failures are recorded in the report.
//
// Cancelling ctx stops further dispatch. Items not yet dispatched are
// recorded as failed and the report is still returned.
func (s *BatchService) Run(ctx context.Context, cmd domain.BatchCommand) (*domain.BatchReport, error) {
	startTime := s.now()
	runStart := time.Now()

	effectiveDate, err := validateCommand(cmd, startTime)
	if err != nil {
		return nil, err
	}

	if !s.running.CompareAndSwap(false, true) {
		return nil, my_errors.ErrBatchInProgress
	}
	defer s.running.Store(false)

	runID := s.newRunID()
	run := buildRun(cmd, effectiveDate)
	total := len(run.Items)
	observer, _ := s.reporter.(RunObserver)

	logger := s.logger.With(slog.String("run_id", runID))
	logger.Info("batch reassignment started",
		slog.Int("total", total),
		slog.String("target_station_id", run.Items[0].TargetStationID),
	)

	if observer != nil {
		observer.RunStarted(runID, total)
	}

	if starter, ok := s.pacer.(RunStarter); ok {
		starter.Start()
	}

	cancelled := false
	for run.Cursor = 0; run.Cursor < total; run.Cursor++ {
		i := run.Cursor
		if ctx.Err() != nil {
			cancelled = true
			break
		}

		s.reporter.Report(domain.Progress{
			RunID:   runID,
			Current: i + 1,
			Total:   total,
			Label:   cmd.Entities[i].Label(),
		})
		s.metrics.SetInFlight(i+1, total)

		itemStart := time.Now()
		outcome := s.submit(ctx, run.Items[i])
		run.Results[i] = outcome
		s.metrics.RecordItem(outcome.Succeeded, time.Since(itemStart))

		if !outcome.Succeeded {
			logger.Warn("reassignment submission failed",
				slog.String("subject_id", run.Items[i].SubjectID),
				slog.String("reason", outcome.Reason),
			)
		}

		// no wait after the last item
		if i == total-1 {
			continue
		}
		if err := s.pacer.Wait(ctx); err != nil {
			run.Cursor++
			cancelled = true
			break
		}
	}

	if cancelled {
		for j := run.Cursor; j < total; j++ {
			run.Results[j] = domain.Failed(reasonCancelled)
		}
	}

	report := SummarizeOutcomes(run.Results, cmd.Entities)
	report.RunID = runID
	report.StartedAt = startTime
	report.ProcessingTime = time.Since(runStart)
	report.Cancelled = cancelled
	if cancelled {
		report.Summary = fmt.Sprintf("%s (run cancelled)", report.Summary)
	}

	s.metrics.SetInFlight(0, 0)
	s.metrics.RecordBatch(report.Classification, cancelled, report.ProcessingTime)

	logger.Info("batch reassignment finished",
		slog.String("classification", string(report.Classification)),
		slog.Int("success_count", report.SuccessCount),
		slog.Int("failure_count", report.FailureCount),
		slog.Bool("cancelled", cancelled),
	)

	if observer != nil {
		observer.RunFinished(&report)
	}

	return &report, nil
}

func (s *BatchService) submit(ctx context.Context, req domain.ReassignmentRequest) (outcome domain.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("assignment gateway panicked",
				slog.String("subject_id", req.SubjectID),
				slog.Any("panic", r),
			)
			outcome = domain.Failed("unexpected gateway failure")
		}
	}()

	if err := s.gateway.Submit(ctx, req); err != nil {
		return domain.Failed(failureReason(err))
	}
	return domain.Succeeded()
}

func failureReason(err error) string {
	var submitErr *domain.SubmitError
	if errors.As(err, &submitErr) && submitErr.Reason != "" {
		return submitErr.Reason
	}
	return err.Error()
}

func validateCommand(cmd domain.BatchCommand, submittedAt time.Time) (time.Time, error) {
	if len(cmd.Entities) == 0 {
		return time.Time{}, fmt.Errorf("%w: %w", my_errors.ErrValidation, my_errors.ErrEmptySelection)
	}
	for i, e := range cmd.Entities {
		if strings.TrimSpace(e.ID) == "" {
			return time.Time{}, fmt.Errorf("%w: entities[%d].id: %w", my_errors.ErrValidation, i, my_errors.ErrEmptyField)
		}
	}
	if strings.TrimSpace(cmd.TargetStationID) == "" {
		return time.Time{}, fmt.Errorf("%w: target_station_id: %w", my_errors.ErrValidation, my_errors.ErrEmptyField)
	}
	if strings.TrimSpace(cmd.Remarks) == "" {
		return time.Time{}, fmt.Errorf("%w: remarks: %w", my_errors.ErrValidation, my_errors.ErrEmptyField)
	}

	if strings.TrimSpace(cmd.EffectiveDate) == "" {
		return submittedAt, nil
	}
	effectiveDate, err := ParseEffectiveDate(cmd.EffectiveDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: effective_date: %w", my_errors.ErrValidation, err)
	}
	return effectiveDate, nil
}

var effectiveDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseEffectiveDate accepts an ISO-8601 calendar date or timestamp.
// Values without a zone are read as UTC.
func ParseEffectiveDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range effectiveDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%q: %w", value, my_errors.ErrInvalidEffectiveDate)
}

// buildRun creates one request per entity in selection order. Target, date and
// remarks are shared by every item.
func buildRun(cmd domain.BatchCommand, effectiveDate time.Time) *domain.BatchRun {
	target := strings.TrimSpace(cmd.TargetStationID)
	remarks := strings.TrimSpace(cmd.Remarks)
	items := make([]domain.ReassignmentRequest, len(cmd.Entities))
	for i, e := range cmd.Entities {
		var prior *string
		if e.CurrentStationID != "" {
			station := e.CurrentStationID
			prior = &station
		}
		items[i] = domain.ReassignmentRequest{
			SubjectID:       e.ID,
			TargetStationID: target,
			PriorStationID:  prior,
			EffectiveDate:   effectiveDate,
			Remarks:         remarks,
			Status:          domain.StatusPendingApproval,
		}
	}

	return &domain.BatchRun{
		Items:   items,
		Results: make([]domain.Outcome, len(items)),
	}
}

type noPacing struct{}

func (noPacing) Wait(ctx context.Context) error {
	return ctx.Err()
}

type NopMetrics struct{}

func (NopMetrics) RecordItem(bool, time.Duration)                         {}
func (NopMetrics) RecordBatch(domain.Classification, bool, time.Duration) {}
func (NopMetrics) SetInFlight(int, int)                                   {}

package service

import (
	"log/slog"
	"sync"

	"station-reassignment-service/internal/domain"
)

type NopProgress struct{}

func (NopProgress) Report(domain.Progress) {}

// ProgressFunc adapts a function to ProgressReporter.
type ProgressFunc func(p domain.Progress)

func (f ProgressFunc) Report(p domain.Progress) {
	f(p)
}

// MultiProgress fans progress out to several reporters in order.
type MultiProgress []ProgressReporter

func (m MultiProgress) Report(p domain.Progress) {
	for _, r := range m {
		r.Report(p)
	}
}

func (m MultiProgress) RunStarted(runID string, total int) {
	for _, r := range m {
		if o, ok := r.(RunObserver); ok {
			o.RunStarted(runID, total)
		}
	}
}

func (m MultiProgress) RunFinished(report *domain.BatchReport) {
	for _, r := range m {
		if o, ok := r.(RunObserver); ok {
			o.RunFinished(report)
		}
	}
}

// LogProgress writes every progress tuple to the logger.
type LogProgress struct {
	Logger *slog.Logger
}

func (l LogProgress) Report(p domain.Progress) {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("submitting reassignment",
		slog.String("run_id", p.RunID),
		slog.Int("current", p.Current),
		slog.Int("total", p.Total),
		slog.String("label", p.Label),
	)
}

// ProgressTracker keeps the latest progress snapshot for readers such as the
// progress endpoint. Safe for concurrent use.
type ProgressTracker struct {
	mu      sync.RWMutex
	latest  domain.Progress
	running bool
}

func NewProgressTracker() *ProgressTracker {
	return &ProgressTracker{}
}

func (t *ProgressTracker) Report(p domain.Progress) {
	t.mu.Lock()
	t.latest = p
	t.mu.Unlock()
}

func (t *ProgressTracker) RunStarted(runID string, total int) {
	t.mu.Lock()
	t.latest = domain.Progress{RunID: runID, Total: total}
	t.running = true
	t.mu.Unlock()
}

func (t *ProgressTracker) RunFinished(_ *domain.BatchReport) {
	t.mu.Lock()
	t.running = false
	t.mu.Unlock()
}

// Snapshot returns the latest progress and whether a run is active.
func (t *ProgressTracker) Snapshot() (domain.Progress, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.latest, t.running
}

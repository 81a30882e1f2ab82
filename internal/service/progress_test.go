package service

import (
	"bytes"
	"log/slog"
	"testing"

	"station-reassignment-service/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestProgressTracker_Lifecycle(t *testing.T) {
	tracker := NewProgressTracker()

	_, running := tracker.Snapshot()
	assert.False(t, running)

	tracker.RunStarted("run-7", 2)
	p, running := tracker.Snapshot()
	assert.True(t, running)
	assert.Equal(t, domain.Progress{RunID: "run-7", Total: 2}, p)

	tracker.Report(domain.Progress{RunID: "run-7", Current: 1, Total: 2, Label: "A"})
	p, _ = tracker.Snapshot()
	assert.Equal(t, "A", p.Label)

	tracker.RunFinished(&domain.BatchReport{})
	p, running = tracker.Snapshot()
	assert.False(t, running)
	assert.Equal(t, 1, p.Current, "last snapshot is kept after the run")
}

func TestMultiProgress_ForwardsToAll(t *testing.T) {
	var got []string
	tracker := NewProgressTracker()
	multi := MultiProgress{
		ProgressFunc(func(p domain.Progress) { got = append(got, p.Label) }),
		tracker,
	}

	multi.RunStarted("r", 1)
	multi.Report(domain.Progress{Current: 1, Total: 1, Label: "A"})

	assert.Equal(t, []string{"A"}, got)
	p, running := tracker.Snapshot()
	assert.True(t, running)
	assert.Equal(t, "A", p.Label)

	multi.RunFinished(nil)
	_, running = tracker.Snapshot()
	assert.False(t, running)
}

func TestLogProgress(t *testing.T) {
	var buf bytes.Buffer
	LogProgress{Logger: slog.New(slog.NewTextHandler(&buf, nil))}.Report(domain.Progress{
		RunID: "r", Current: 2, Total: 5, Label: "Bob",
	})

	assert.Contains(t, buf.String(), "current=2")
	assert.Contains(t, buf.String(), "total=5")
	assert.Contains(t, buf.String(), "label=Bob")
}

func TestBatchService_NotifiesRunObserver(t *testing.T) {
	tracker := NewProgressTracker()
	svc := newTestService(newFakeGateway(), nil, WithProgress(tracker))

	_, err := svc.Run(t.Context(), domain.BatchCommand{Entities: entities("A", "B"), TargetStationID: "s", Remarks: "r"})
	assert.NoError(t, err)

	p, running := tracker.Snapshot()
	assert.False(t, running)
	assert.Equal(t, domain.Progress{RunID: "run-1", Current: 2, Total: 2, Label: "B"}, p)
}

package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"station-reassignment-service/internal/domain"
	"station-reassignment-service/internal/dto"
	"station-reassignment-service/internal/my_errors"
	"station-reassignment-service/internal/response"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBatchService struct {
	got    domain.BatchCommand
	report *domain.BatchReport
	err    error
	calls  int
}

func (s *stubBatchService) Run(_ context.Context, cmd domain.BatchCommand) (*domain.BatchReport, error) {
	s.calls++
	s.got = cmd
	return s.report, s.err
}

type stubProgress struct {
	p       domain.Progress
	running bool
}

func (s stubProgress) Snapshot() (domain.Progress, bool) {
	return s.p, s.running
}

func postBatch(t *testing.T, h *BatchHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/reassignments/batch", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	h.SubmitBatch(rec, req)
	return rec
}

const validBody = `{
	"selected_entities": [
		{"id": "e1", "display_name": "A", "current_station_id": "s1"},
		{"id": "e2", "display_name": "B", "station_id": "s2"},
		{"id": "e3", "display_name": "C"}
	],
	"target_station_id": "StationX",
	"remarks": "Transfer"
}`

func TestBatchHandler_SubmitBatch(t *testing.T) {
	svc := &stubBatchService{report: &domain.BatchReport{
		RunID:          "run-1",
		Classification: domain.PartialSuccess,
		Summary:        "2 of 3 reassignments submitted for approval, 1 failed",
		FailureDetails: []domain.FailureDetail{{SubjectID: "e2", SubjectLabel: "B", Reason: "duplicate"}},
		Total:          3,
		SuccessCount:   2,
		FailureCount:   1,
	}}
	h := NewBatchHandler(svc, stubProgress{}, validator.New(), 0)

	rec := postBatch(t, h, validBody)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp response.BatchReportResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "PartialSuccess", resp.Classification)
	assert.Equal(t, 2, resp.SuccessCount)
	assert.Equal(t, []string{"e2"}, resp.FailedSubjectIDs)
	assert.Equal(t, "duplicate", resp.FailureDetails[0].Reason)

	require.Len(t, svc.got.Entities, 3)
	assert.Equal(t, "s1", svc.got.Entities[0].CurrentStationID)
	assert.Equal(t, "s2", svc.got.Entities[1].CurrentStationID)
	assert.Empty(t, svc.got.Entities[2].CurrentStationID)
	assert.Equal(t, "StationX", svc.got.TargetStationID)
}

func TestBatchHandler_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
		code string
	}{
		{"malformed json", `{"selected_entities": [`, dto.ErrCodeBadRequest},
		{"empty selection", `{"selected_entities": [], "target_station_id": "s", "remarks": "r"}`, dto.ErrCodeValidation},
		{"missing remarks", `{"selected_entities": [{"id": "e1"}], "target_station_id": "s"}`, dto.ErrCodeValidation},
		{"missing target", `{"selected_entities": [{"id": "e1"}], "remarks": "r"}`, dto.ErrCodeValidation},
		{"entity without id", `{"selected_entities": [{"display_name": "x"}], "target_station_id": "s", "remarks": "r"}`, dto.ErrCodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubBatchService{}
			rec := postBatch(t, NewBatchHandler(svc, stubProgress{}, validator.New(), 0), tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			var resp dto.ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, tt.code, resp.Error.Code)
			assert.Zero(t, svc.calls)
		})
	}
}

func TestBatchHandler_MapsServiceErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", fmt.Errorf("%w: remarks: %w", my_errors.ErrValidation, my_errors.ErrEmptyField), http.StatusBadRequest, dto.ErrCodeValidation},
		{"in progress", my_errors.ErrBatchInProgress, http.StatusConflict, dto.ErrCodeBatchInProgress},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, dto.ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewBatchHandler(&stubBatchService{err: tt.err}, stubProgress{}, validator.New(), 0)
			rec := postBatch(t, h, validBody)

			assert.Equal(t, tt.status, rec.Code)
			var resp dto.ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, tt.code, resp.Error.Code)
		})
	}
}

func TestBatchHandler_GetProgress(t *testing.T) {
	h := NewBatchHandler(&stubBatchService{}, stubProgress{
		p:       domain.Progress{RunID: "r", Current: 2, Total: 3, Label: "B"},
		running: true,
	}, validator.New(), 0)

	rec := httptest.NewRecorder()
	h.GetProgress(rec, httptest.NewRequest(http.MethodGet, "/reassignments/batch/progress", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp dto.ProgressDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, dto.ProgressDTO{RunID: "r", Label: "B", Current: 2, Total: 3, Running: true}, resp)
}

type blockingBatchService struct {
	started chan struct{}
}

func (s *blockingBatchService) Run(ctx context.Context, cmd domain.BatchCommand) (*domain.BatchReport, error) {
	close(s.started)
	<-ctx.Done()
	return &domain.BatchReport{
		Classification: domain.TotalFailure,
		Total:          len(cmd.Entities),
		FailureCount:   len(cmd.Entities),
		Cancelled:      true,
	}, nil
}

func TestBatchHandler_ShutdownCancelsRun(t *testing.T) {
	shutdown, stop := context.WithCancel(context.Background())
	defer stop()

	svc := &blockingBatchService{started: make(chan struct{})}
	h := NewBatchHandler(svc, stubProgress{}, validator.New(), time.Hour).WithShutdown(shutdown)

	done := make(chan *httptest.ResponseRecorder, 1)
	go func() {
		done <- postBatch(t, h, validBody)
	}()

	<-svc.started
	stop()

	rec := <-done
	require.Equal(t, http.StatusOK, rec.Code)

	var resp response.BatchReportResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.True(t, resp.Cancelled)
	assert.Equal(t, 3, resp.Total)
}

package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"station-reassignment-service/internal/domain"
	"station-reassignment-service/internal/dto"
	"station-reassignment-service/internal/mapper"
	"station-reassignment-service/internal/my_errors"
	"station-reassignment-service/internal/request"

	"github.com/go-playground/validator/v10"
)

type BatchService interface {
	Run(ctx context.Context, cmd domain.BatchCommand) (*domain.BatchReport, error)
}

type ProgressSource interface {
	Snapshot() (domain.Progress, bool)
}

type BatchHandler struct {
	batchService BatchService
	progress     ProgressSource
	validator    *validator.Validate
	timeout      time.Duration
	shutdown     context.Context
}

func NewBatchHandler(batchService BatchService, progress ProgressSource, validator *validator.Validate, timeout time.Duration) *BatchHandler {
	return &BatchHandler{
		batchService: batchService,
		progress:     progress,
		validator:    validator,
		timeout:      timeout,
	}
}

// WithShutdown stops running batches once ctx is done. The run then reports
// the remaining items as cancelled and the handler still writes the report.
func (h *BatchHandler) WithShutdown(ctx context.Context) *BatchHandler {
	h.shutdown = ctx
	return h
}

// SubmitBatch godoc
// @Summary Reassign selected personnel to a station
// @Description Submits one pending-approval reassignment per selected entity, sequentially, and reports the aggregate outcome.
// @Tags Reassignments
// @Accept json
// @Produce json
// @Param request body request.BatchReassignRequest true "Batch reassignment request"
// @Success 200 {object} response.BatchReportResponse "Batch processed (any classification)"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 409 {object} dto.ErrorResponse "A batch run is already in progress"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reassignments/batch [post]
func (h *BatchHandler) SubmitBatch(w http.ResponseWriter, r *http.Request) {
	var req request.BatchReassignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeBadRequest, "invalid request body")
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, "validation error: "+err.Error())
		return
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	if h.shutdown != nil {
		stop := context.AfterFunc(h.shutdown, cancel)
		defer stop()
	}
	if h.timeout > 0 {
		var cancelTimeout context.CancelFunc
		ctx, cancelTimeout = context.WithTimeout(ctx, h.timeout)
		defer cancelTimeout()
	}

	report, err := h.batchService.Run(ctx, mapper.MapBatchRequestToDomain(&req))
	if err != nil {
		if my_errors.IsValidation(err) {
			respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, err.Error())
			return
		}
		if errors.Is(err, my_errors.ErrBatchInProgress) {
			respondError(w, http.StatusConflict, dto.ErrCodeBatchInProgress, my_errors.ErrBatchInProgress.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, dto.ErrCodeInternal, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, mapper.MapBatchReportToDTO(report))
}

// GetProgress godoc
// @Summary Current batch progress
// @Description Latest progress tuple of the active or most recent batch run
// @Tags Reassignments
// @Produce json
// @Success 200 {object} dto.ProgressDTO "Progress snapshot"
// @Router /reassignments/batch/progress [get]
func (h *BatchHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	p, running := h.progress.Snapshot()
	respondJSON(w, http.StatusOK, mapper.MapProgressToDTO(p, running))
}

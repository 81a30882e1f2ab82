package handler

import (
	"context"
	"net/http"
	"strconv"

	"station-reassignment-service/internal/domain"
	"station-reassignment-service/internal/dto"
	"station-reassignment-service/internal/mapper"
	"station-reassignment-service/internal/my_errors"
	"station-reassignment-service/internal/response"
)

type ReassignmentService interface {
	ListReassignments(ctx context.Context, status string, limit int) ([]domain.Reassignment, error)
}

type ReassignmentHandler struct {
	reassignmentService ReassignmentService
}

func NewReassignmentHandler(reassignmentService ReassignmentService) *ReassignmentHandler {
	return &ReassignmentHandler{reassignmentService: reassignmentService}
}

// ListReassignments godoc
// @Summary List stored reassignments
// @Description List reassignment records by status, newest first
// @Tags Reassignments
// @Produce json
// @Param status query string false "pending-approval (default), approved or rejected"
// @Param limit query int false "Maximum records (default 50, max 500)"
// @Success 200 {object} response.ReassignmentListResponse "Reassignments"
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /reassignments [get]
func (h *ReassignmentHandler) ListReassignments(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, dto.ErrCodeBadRequest, "limit must be an integer")
			return
		}
		limit = parsed
	}

	list, err := h.reassignmentService.ListReassignments(r.Context(), r.URL.Query().Get("status"), limit)
	if err != nil {
		if my_errors.IsValidation(err) {
			respondError(w, http.StatusBadRequest, dto.ErrCodeValidation, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, dto.ErrCodeInternal, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, response.ReassignmentListResponse{
		Reassignments: mapper.MapDomainReassignmentsToDTO(list),
		Count:         len(list),
	})
}

package response

import "station-reassignment-service/internal/dto"

type ReassignmentListResponse struct {
	Reassignments []dto.ReassignmentDTO `json:"reassignments"`
	Count         int                   `json:"count"`
}

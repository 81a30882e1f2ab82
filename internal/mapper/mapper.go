package mapper

import (
	"strings"

	"station-reassignment-service/internal/domain"
	"station-reassignment-service/internal/dto"
	"station-reassignment-service/internal/request"
	"station-reassignment-service/internal/response"
)

// Batch mappers

// MapSelectedEntityToDomain collapses current_station_id and its legacy alias
// station_id into a single station reference.
func MapSelectedEntityToDomain(in request.SelectedEntityInput) domain.Entity {
	station := strings.TrimSpace(in.CurrentStationID)
	if station == "" {
		station = strings.TrimSpace(in.StationID)
	}
	return domain.Entity{
		ID:               strings.TrimSpace(in.ID),
		DisplayName:      strings.TrimSpace(in.DisplayName),
		CurrentStationID: station,
	}
}

func MapBatchRequestToDomain(req *request.BatchReassignRequest) domain.BatchCommand {
	entities := make([]domain.Entity, len(req.SelectedEntities))
	for i, e := range req.SelectedEntities {
		entities[i] = MapSelectedEntityToDomain(e)
	}
	return domain.BatchCommand{
		Entities:        entities,
		TargetStationID: strings.TrimSpace(req.TargetStationID),
		EffectiveDate:   req.EffectiveDate,
		Remarks:         req.Remarks,
	}
}

func MapBatchReportToDTO(report *domain.BatchReport) response.BatchReportResponse {
	details := make([]dto.FailureDetailDTO, len(report.FailureDetails))
	for i, d := range report.FailureDetails {
		details[i] = dto.FailureDetailDTO{
			SubjectID:    d.SubjectID,
			SubjectLabel: d.SubjectLabel,
			Reason:       d.Reason,
		}
	}

	return response.BatchReportResponse{
		RunID:            report.RunID,
		Classification:   string(report.Classification),
		Summary:          report.Summary,
		FailureDetails:   details,
		FailedSubjectIDs: report.FailedSubjectIDs(),
		Total:            report.Total,
		SuccessCount:     report.SuccessCount,
		FailureCount:     report.FailureCount,
		ProcessingTimeMs: report.ProcessingTime.Milliseconds(),
		Cancelled:        report.Cancelled,
	}
}

func MapProgressToDTO(p domain.Progress, running bool) dto.ProgressDTO {
	return dto.ProgressDTO{
		RunID:   p.RunID,
		Label:   p.Label,
		Current: p.Current,
		Total:   p.Total,
		Running: running,
	}
}

// Reassignment mappers
func MapDomainReassignmentToDTO(ra *domain.Reassignment) dto.ReassignmentDTO {
	return dto.ReassignmentDTO{
		CreatedAt:       ra.CreatedAt,
		EffectiveDate:   ra.EffectiveDate,
		ID:              ra.ID,
		SubjectID:       ra.SubjectID,
		TargetStationID: ra.TargetStationID,
		PriorStationID:  ra.PriorStationID,
		Remarks:         ra.Remarks,
		Status:          ra.Status,
	}
}

func MapDomainReassignmentsToDTO(list []domain.Reassignment) []dto.ReassignmentDTO {
	result := make([]dto.ReassignmentDTO, len(list))
	for i, ra := range list {
		result[i] = MapDomainReassignmentToDTO(&ra)
	}
	return result
}

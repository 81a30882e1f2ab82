package response

import "station-reassignment-service/internal/dto"

type BatchReportResponse struct {
	RunID            string                 `json:"run_id"`
	Classification   string                 `json:"classification"`
	Summary          string                 `json:"summary"`
	FailureDetails   []dto.FailureDetailDTO `json:"failure_details"`
	FailedSubjectIDs []string               `json:"failed_subject_ids"`
	Total            int                    `json:"total"`
	SuccessCount     int                    `json:"success_count"`
	FailureCount     int                    `json:"failure_count"`
	ProcessingTimeMs int64                  `json:"processing_time_ms"`
	Cancelled        bool                   `json:"cancelled"`
}

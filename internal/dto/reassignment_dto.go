package dto

import "time"

type FailureDetailDTO struct {
	SubjectID    string `json:"subject_id"`
	SubjectLabel string `json:"subject_label"`
	Reason       string `json:"reason"`
}

type ReassignmentDTO struct {
	CreatedAt       time.Time `json:"created_at"`
	EffectiveDate   time.Time `json:"effective_date"`
	ID              string    `json:"id"`
	SubjectID       string    `json:"subject_id"`
	TargetStationID string    `json:"target_station_id"`
	PriorStationID  *string   `json:"prior_station_id,omitempty"`
	Remarks         string    `json:"remarks"`
	Status          string    `json:"status"`
}

type ProgressDTO struct {
	RunID   string `json:"run_id,omitempty"`
	Label   string `json:"label"`
	Current int    `json:"current"`
	Total   int    `json:"total"`
	Running bool   `json:"running"`
}

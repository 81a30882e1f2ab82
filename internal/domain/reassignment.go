package domain

import "time"

const (
	StatusPendingApproval = "pending-approval"
	StatusApproved        = "approved"
	StatusRejected        = "rejected"
)

// Entity is a selected subject as seen at the input boundary, already normalized
// to a single station reference.
type Entity struct {
	ID               string
	DisplayName      string
	CurrentStationID string
}

// Label returns the name used in progress and failure reporting.
func (e Entity) Label() string {
	if e.DisplayName != "" {
		return e.DisplayName
	}
	return e.ID
}

// ReassignmentRequest is one per-subject write sent through the gateway.
type ReassignmentRequest struct {
	EffectiveDate   time.Time
	SubjectID       string
	TargetStationID string
	PriorStationID  *string
	Remarks         string
	Status          string
}

// Reassignment is a stored reassignment record, as kept by the receiving system.
type Reassignment struct {
	CreatedAt       time.Time
	EffectiveDate   time.Time
	ID              string
	SubjectID       string
	TargetStationID string
	PriorStationID  *string
	Remarks         string
	Status          string
}

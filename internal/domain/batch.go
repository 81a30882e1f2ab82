package domain

import "time"

type Classification string

const (
	CompleteSuccess Classification = "CompleteSuccess"
	PartialSuccess  Classification = "PartialSuccess"
	TotalFailure    Classification = "TotalFailure"
)

// BatchCommand is the caller's input for one batch run.
type BatchCommand struct {
	Entities        []Entity
	TargetStationID string
	// EffectiveDate is an ISO-8601 date or timestamp; empty means submission time.
	EffectiveDate string
	Remarks       string
}

// Outcome is the recorded result of one item.
type Outcome struct {
	Succeeded bool
	Reason    string
}

func Succeeded() Outcome {
	return Outcome{Succeeded: true}
}

func Failed(reason string) Outcome {
	return Outcome{Reason: reason}
}

// BatchRun is the transient state of one run. It is never persisted.
type BatchRun struct {
	Items   []ReassignmentRequest
	Results []Outcome
	Cursor  int
}

type FailureDetail struct {
	SubjectID    string
	SubjectLabel string
	Reason       string
}

type BatchReport struct {
	StartedAt      time.Time
	RunID          string
	Classification Classification
	Summary        string
	FailureDetails []FailureDetail
	Total          int
	SuccessCount   int
	FailureCount   int
	ProcessingTime time.Duration
	Cancelled      bool
}

// FailedSubjectIDs returns the subjects that failed, in item order.
func (r *BatchReport) FailedSubjectIDs() []string {
	ids := make([]string, 0, len(r.FailureDetails))
	for _, d := range r.FailureDetails {
		ids = append(ids, d.SubjectID)
	}
	return ids
}

// Progress is one advisory progress tuple. Current is 1-based.
type Progress struct {
	RunID   string
	Label   string
	Current int
	Total   int
}

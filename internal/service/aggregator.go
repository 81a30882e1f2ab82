package service

import (
	"fmt"

	"station-reassignment-service/internal/domain"
)

// SummarizeOutcomes classifies a run. results and subjects are parallel and
// in item order. The function is pure: the same input always yields the same report.
func SummarizeOutcomes(results []domain.Outcome, subjects []domain.Entity) domain.BatchReport {
	report := domain.BatchReport{
		Total:          len(results),
		FailureDetails: []domain.FailureDetail{},
	}

	for i, outcome := range results {
		if outcome.Succeeded {
			report.SuccessCount++
			continue
		}

		report.FailureCount++
		detail := domain.FailureDetail{Reason: outcome.Reason}
		if i < len(subjects) {
			detail.SubjectID = subjects[i].ID
			detail.SubjectLabel = subjects[i].Label()
		}
		report.FailureDetails = append(report.FailureDetails, detail)
	}

	// order matters
	switch {
	case report.SuccessCount == report.Total:
		report.Classification = domain.CompleteSuccess
	case report.SuccessCount > 0 && report.FailureCount > 0:
		report.Classification = domain.PartialSuccess
	default:
		report.Classification = domain.TotalFailure
	}

	report.Summary = summaryFor(report)
	return report
}

func summaryFor(r domain.BatchReport) string {
	switch r.Classification {
	case domain.CompleteSuccess:
		return fmt.Sprintf("%d of %d reassignments submitted for approval", r.SuccessCount, r.Total)
	case domain.PartialSuccess:
		return fmt.Sprintf("%d of %d reassignments submitted for approval, %d failed", r.SuccessCount, r.Total, r.FailureCount)
	default:
		return fmt.Sprintf("all %d reassignments failed", r.Total)
	}
}

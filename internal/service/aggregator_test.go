package service

import (
	"testing"

	"station-reassignment-service/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeOutcomes_Classification(t *testing.T) {
	subjects := entities("A", "B", "C")

	tests := []struct {
		name    string
		results []domain.Outcome
		want    domain.Classification
		summary string
	}{
		{
			name:    "all succeed",
			results: []domain.Outcome{domain.Succeeded(), domain.Succeeded(), domain.Succeeded()},
			want:    domain.CompleteSuccess,
			summary: "3 of 3 reassignments submitted for approval",
		},
		{
			name:    "some fail",
			results: []domain.Outcome{domain.Succeeded(), domain.Failed("duplicate"), domain.Succeeded()},
			want:    domain.PartialSuccess,
			summary: "2 of 3 reassignments submitted for approval, 1 failed",
		},
		{
			name:    "all fail",
			results: []domain.Outcome{domain.Failed("x"), domain.Failed("y"), domain.Failed("z")},
			want:    domain.TotalFailure,
			summary: "all 3 reassignments failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := SummarizeOutcomes(tt.results, subjects)
			assert.Equal(t, tt.want, report.Classification)
			assert.Equal(t, tt.summary, report.Summary)
			assert.Equal(t, len(tt.results), report.Total)
			assert.Equal(t, report.Total, report.SuccessCount+report.FailureCount)
			assert.Len(t, report.FailureDetails, report.FailureCount)
		})
	}
}

func TestSummarizeOutcomes_FailureDetailsKeepOrder(t *testing.T) {
	subjects := []domain.Entity{
		{ID: "1", DisplayName: "Ada"},
		{ID: "2"},
		{ID: "3", DisplayName: "Cy"},
	}
	results := []domain.Outcome{domain.Failed("first"), domain.Failed("second"), domain.Succeeded()}

	report := SummarizeOutcomes(results, subjects)

	assert.Equal(t, []domain.FailureDetail{
		{SubjectID: "1", SubjectLabel: "Ada", Reason: "first"},
		{SubjectID: "2", SubjectLabel: "2", Reason: "second"},
	}, report.FailureDetails)
}

func TestSummarizeOutcomes_Idempotent(t *testing.T) {
	subjects := entities("A", "B")
	results := []domain.Outcome{domain.Failed("nope"), domain.Succeeded()}

	first := SummarizeOutcomes(results, subjects)
	second := SummarizeOutcomes(results, subjects)

	assert.Equal(t, first, second)
	assert.Equal(t, []domain.Outcome{domain.Failed("nope"), domain.Succeeded()}, results)
}

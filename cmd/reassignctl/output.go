package main

import (
	"fmt"
	"io"
	"strings"

	"station-reassignment-service/internal/domain"
)

type consoleProgress struct {
	out io.Writer
}

func (c consoleProgress) Report(p domain.Progress) {
	fmt.Fprintf(c.out, "[%d/%d] %s\n", p.Current, p.Total, p.Label)
}

func printReport(out io.Writer, report *domain.BatchReport) {
	fmt.Fprintf(out, "%s: %s\n", report.Classification, report.Summary)
	for _, d := range report.FailureDetails {
		fmt.Fprintf(out, "  - %s (%s): %s\n", d.SubjectLabel, d.SubjectID, d.Reason)
	}
	if len(report.FailureDetails) > 0 {
		fmt.Fprintf(out, "failed subjects: %s\n", strings.Join(report.FailedSubjectIDs(), ","))
	}
}

// Package report provides report generation for test results.
package report

import "io"

// Reporter defines the interface for generating test reports.
type Reporter interface {
	// GenerateReport creates a report for a single test result.
	GenerateReport(result *TestResult) ([]byte, error)

	// GenerateRunSummary creates a summary of all test results
	// from one run.
	GenerateRunSummary(results []*TestResult) ([]byte, error)

	// WriteReport writes a report to the specified writer.
	WriteReport(w io.Writer, result *TestResult) error
}

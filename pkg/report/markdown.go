package report

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"
)

// MarkdownReporter generates Markdown reports from test results.
type MarkdownReporter struct {
	outputDir string
}

// NewMarkdownReporter creates a new Markdown reporter.
func NewMarkdownReporter(outputDir string) *MarkdownReporter {
	return &MarkdownReporter{outputDir: outputDir}
}

// GenerateReport creates a Markdown report for a single test
// result.
func (r *MarkdownReporter) GenerateReport(
	result *TestResult,
) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.WriteReport(&buf, result); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteReport writes a Markdown report to the specified writer.
func (r *MarkdownReporter) WriteReport(
	w io.Writer,
	result *TestResult,
) error {
	fmt.Fprintf(w, "# Test Report: %s\n\n", result.Name)
	fmt.Fprintf(
		w,
		"**Status:** %s\n\n",
		strings.ToUpper(result.Status),
	)
	fmt.Fprintf(
		w,
		"**Generated:** %s\n\n",
		result.EndTime.Format(time.RFC3339),
	)
	fmt.Fprintf(w, "**Duration:** %v\n\n", result.Duration)

	if len(result.Assertions) > 0 {
		fmt.Fprintln(w, "## Failed Assertions")
		fmt.Fprintln(w)
		for _, a := range result.Assertions {
			fmt.Fprintf(w, "### %s\n\n", a.Location)
			fmt.Fprintln(w, "```")
			fmt.Fprintln(w, a.Description)
			fmt.Fprintln(w, "```")
			fmt.Fprintln(w)
		}
	}

	return nil
}

// GenerateRunSummary creates a Markdown summary of all test
// results.
func (r *MarkdownReporter) GenerateRunSummary(
	results []*TestResult,
) ([]byte, error) {
	summary := BuildRunSummary(results)
	return []byte(generateSummaryMarkdown(summary)), nil
}

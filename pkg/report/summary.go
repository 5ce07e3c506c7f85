package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Injection points for marshal failures in tests.
var (
	jsonMarshal       = json.Marshal
	jsonMarshalIndent = json.MarshalIndent
)

// RunSummary represents an aggregated summary of one test run.
type RunSummary struct {
	ID            string        `json:"id"`
	GeneratedAt   time.Time     `json:"generated_at"`
	Tests         []TestSummary `json:"tests"`
	TotalTests    int           `json:"total_tests"`
	PassedTests   int           `json:"passed_tests"`
	FailedTests   int           `json:"failed_tests"`
	TotalDuration time.Duration `json:"total_duration"`
	PassRate      float64       `json:"pass_rate"`
}

// TestSummary represents a summary of a single test.
type TestSummary struct {
	Name        string        `json:"name"`
	Status      string        `json:"status"`
	Duration    time.Duration `json:"duration"`
	Failures    int           `json:"failures"`
	ResultsPath string        `json:"results_path,omitempty"`
}

// BuildRunSummary creates a run summary from test results.
func BuildRunSummary(
	results []*TestResult,
) *RunSummary {
	summary := &RunSummary{
		ID: fmt.Sprintf(
			"summary_%s",
			time.Now().Format("20060102_150405"),
		),
		GeneratedAt: time.Now(),
		Tests: make(
			[]TestSummary, 0, len(results),
		),
	}

	for _, r := range results {
		ts := TestSummary{
			Name:     r.Name,
			Status:   r.Status,
			Duration: r.Duration,
			Failures: len(r.Assertions),
		}

		summary.Tests = append(summary.Tests, ts)
		summary.TotalTests++
		summary.TotalDuration += r.Duration

		if r.Status == StatusPassed {
			summary.PassedTests++
		} else {
			summary.FailedTests++
		}
	}

	if summary.TotalTests > 0 {
		summary.PassRate =
			float64(summary.PassedTests) /
				float64(summary.TotalTests)
	}

	return summary
}

// SaveRunSummary saves the run summary to both JSON and Markdown
// files in the given output directory.
func SaveRunSummary(
	summary *RunSummary,
	outputDir string,
) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf(
			"failed to create output directory: %w", err,
		)
	}

	ts := summary.GeneratedAt.Format("20060102_150405")

	jsonPath := filepath.Join(
		outputDir,
		fmt.Sprintf("run_summary_%s.json", ts),
	)
	jsonData, err := jsonMarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf(
			"failed to marshal summary: %w", err,
		)
	}
	if err := os.WriteFile(jsonPath, jsonData, 0644); err != nil {
		return fmt.Errorf(
			"failed to write JSON summary: %w", err,
		)
	}

	mdPath := filepath.Join(
		outputDir,
		fmt.Sprintf("run_summary_%s.md", ts),
	)
	mdContent := generateSummaryMarkdown(summary)
	if err := os.WriteFile(
		mdPath, []byte(mdContent), 0644,
	); err != nil {
		return fmt.Errorf(
			"failed to write Markdown summary: %w", err,
		)
	}

	latestJSON := filepath.Join(outputDir, "latest_summary.json")
	latestMD := filepath.Join(outputDir, "latest_summary.md")

	_ = os.Remove(latestJSON)
	_ = os.Remove(latestMD)
	_ = os.Symlink(filepath.Base(jsonPath), latestJSON)
	_ = os.Symlink(filepath.Base(mdPath), latestMD)

	return nil
}

// generateSummaryMarkdown creates markdown from a run summary.
func generateSummaryMarkdown(summary *RunSummary) string {
	var sb strings.Builder

	sb.WriteString("# Test Run Summary\n\n")
	sb.WriteString(
		fmt.Sprintf(
			"**Summary ID:** %s\n\n", summary.ID,
		),
	)
	sb.WriteString(
		fmt.Sprintf(
			"**Generated:** %s\n\n",
			summary.GeneratedAt.Format(time.RFC3339),
		),
	)

	sb.WriteString("## Overview\n\n")
	sb.WriteString(
		"| Test | Status | Duration | Failures |\n",
	)
	sb.WriteString(
		"|------|--------|----------|----------|\n",
	)

	for _, t := range summary.Tests {
		status := strings.ToUpper(t.Status)
		sb.WriteString(
			fmt.Sprintf(
				"| %s | %s | %v | %d |\n",
				t.Name, status, t.Duration, t.Failures,
			),
		)
	}

	sb.WriteString("\n## Statistics\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(
		fmt.Sprintf(
			"| Total Tests | %d |\n",
			summary.TotalTests,
		),
	)
	sb.WriteString(
		fmt.Sprintf(
			"| Passed | %d |\n", summary.PassedTests,
		),
	)
	sb.WriteString(
		fmt.Sprintf(
			"| Failed | %d |\n", summary.FailedTests,
		),
	)
	sb.WriteString(
		fmt.Sprintf(
			"| Pass Rate | %.0f%% |\n",
			summary.PassRate*100,
		),
	)
	sb.WriteString(
		fmt.Sprintf(
			"| Total Duration | %v |\n",
			summary.TotalDuration,
		),
	)

	sb.WriteString("\n---\n\n")
	sb.WriteString("*Generated by the matchers test framework*\n")

	return sb.String()
}

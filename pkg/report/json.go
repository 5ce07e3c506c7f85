package report

import (
	"encoding/json"
	"io"
	"time"
)

// Injection points for marshal failures in tests.
var (
	jsonReportMarshal       = json.Marshal
	jsonReportMarshalIndent = json.MarshalIndent
)

// JSONReporter generates JSON reports from test results.
type JSONReporter struct {
	outputDir string
	pretty    bool
}

// NewJSONReporter creates a new JSON reporter. When pretty is
// true, output is indented for readability.
func NewJSONReporter(
	outputDir string,
	pretty bool,
) *JSONReporter {
	return &JSONReporter{
		outputDir: outputDir,
		pretty:    pretty,
	}
}

// GenerateReport creates a JSON report for a single test result.
func (r *JSONReporter) GenerateReport(
	result *TestResult,
) ([]byte, error) {
	if r.pretty {
		return jsonReportMarshalIndent(result, "", "  ")
	}
	return jsonReportMarshal(result)
}

// jsonRunSummary is the JSON structure for a run summary.
type jsonRunSummary struct {
	GeneratedAt   time.Time     `json:"generated_at"`
	TotalTests    int           `json:"total_tests"`
	Passed        int           `json:"passed"`
	Failed        int           `json:"failed"`
	TotalDuration time.Duration `json:"total_duration"`
	Results       []*TestResult `json:"results"`
}

// GenerateRunSummary creates a JSON summary of all test results.
func (r *JSONReporter) GenerateRunSummary(
	results []*TestResult,
) ([]byte, error) {
	summary := jsonRunSummary{
		GeneratedAt: time.Now(),
		TotalTests:  len(results),
		Results:     results,
	}

	for _, res := range results {
		if res.Status == StatusPassed {
			summary.Passed++
		} else {
			summary.Failed++
		}
		summary.TotalDuration += res.Duration
	}

	if r.pretty {
		return jsonReportMarshalIndent(summary, "", "  ")
	}
	return jsonReportMarshal(summary)
}

// WriteReport writes a JSON report to the specified writer.
func (r *JSONReporter) WriteReport(
	w io.Writer,
	result *TestResult,
) error {
	data, err := r.GenerateReport(result)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

package report

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"strings"
	"time"
)

// HTMLReporter generates HTML reports from test results.
type HTMLReporter struct {
	outputDir string
}

// NewHTMLReporter creates a new HTML reporter.
func NewHTMLReporter(outputDir string) *HTMLReporter {
	return &HTMLReporter{outputDir: outputDir}
}

// GenerateReport creates an HTML report for a single test result.
func (r *HTMLReporter) GenerateReport(
	result *TestResult,
) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.WriteReport(&buf, result); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteReport writes an HTML report to the specified writer.
func (r *HTMLReporter) WriteReport(
	w io.Writer,
	result *TestResult,
) error {
	r.writeHeader(w, "Test Report: "+result.Name)

	fmt.Fprintf(
		w,
		"<h1>Test Report: %s</h1>\n",
		html.EscapeString(result.Name),
	)
	fmt.Fprintf(
		w,
		"<p><strong>Generated:</strong> %s</p>\n",
		result.EndTime.Format(time.RFC3339),
	)

	r.writeSummaryTable(w, result)
	r.writeAssertionsSection(w, result)

	r.writeFooter(w)
	return nil
}

func (r *HTMLReporter) writeSummaryTable(
	w io.Writer,
	result *TestResult,
) {
	statusClass := "status-passed"
	if result.Status != StatusPassed {
		statusClass = "status-failed"
	}

	fmt.Fprintln(w, "<h2>Summary</h2>")
	fmt.Fprintln(w, "<table>")
	fmt.Fprintln(w, "<tr><th>Metric</th><th>Value</th></tr>")
	fmt.Fprintf(
		w,
		"<tr><td>Status</td><td class=\"%s\">"+
			"<strong>%s</strong></td></tr>\n",
		statusClass, strings.ToUpper(result.Status),
	)
	fmt.Fprintf(
		w,
		"<tr><td>Start Time</td><td>%s</td></tr>\n",
		result.StartTime.Format(time.RFC3339),
	)
	fmt.Fprintf(
		w,
		"<tr><td>End Time</td><td>%s</td></tr>\n",
		result.EndTime.Format(time.RFC3339),
	)
	fmt.Fprintf(
		w,
		"<tr><td>Duration</td><td>%v</td></tr>\n",
		result.Duration,
	)
	fmt.Fprintf(
		w,
		"<tr><td>Failed Assertions</td><td>%d</td></tr>\n",
		len(result.Assertions),
	)

	fmt.Fprintln(w, "</table>")
}

func (r *HTMLReporter) writeAssertionsSection(
	w io.Writer,
	result *TestResult,
) {
	if len(result.Assertions) == 0 {
		return
	}

	fmt.Fprintln(w, "<h2>Failed Assertions</h2>")
	fmt.Fprintln(w, "<table>")
	fmt.Fprintln(
		w,
		"<tr><th>Location</th><th>Description</th></tr>",
	)

	for _, a := range result.Assertions {
		fmt.Fprintf(
			w,
			"<tr><td><code>%s</code></td>"+
				"<td><pre>%s</pre></td></tr>\n",
			html.EscapeString(a.Location),
			html.EscapeString(a.Description),
		)
	}

	fmt.Fprintln(w, "</table>")
}

// GenerateRunSummary creates an HTML summary of all test results.
func (r *HTMLReporter) GenerateRunSummary(
	results []*TestResult,
) ([]byte, error) {
	var buf bytes.Buffer

	r.writeHeader(&buf, "Test Run Summary")

	fmt.Fprintln(&buf, "<h1>Test Run Summary</h1>")
	fmt.Fprintf(
		&buf,
		"<p><strong>Generated:</strong> %s</p>\n",
		time.Now().Format(time.RFC3339),
	)

	r.writeRunOverview(&buf, results)
	r.writeRunStats(&buf, results)
	r.writeRunDetails(&buf, results)
	r.writeFooter(&buf)

	return buf.Bytes(), nil
}

func (r *HTMLReporter) writeRunOverview(
	w io.Writer,
	results []*TestResult,
) {
	fmt.Fprintln(w, "<h2>Overview</h2>")
	fmt.Fprintln(w, "<table>")
	fmt.Fprintln(
		w,
		"<tr><th>Test</th><th>Status</th>"+
			"<th>Duration</th><th>Finished</th></tr>",
	)

	for _, result := range results {
		cls := "status-passed"
		if result.Status != StatusPassed {
			cls = "status-failed"
		}
		fmt.Fprintf(
			w,
			"<tr><td>%s</td>"+
				"<td class=\"%s\">%s</td>"+
				"<td>%v</td><td>%s</td></tr>\n",
			html.EscapeString(result.Name),
			cls, strings.ToUpper(result.Status),
			result.Duration,
			result.EndTime.Format("2006-01-02 15:04:05"),
		)
	}

	fmt.Fprintln(w, "</table>")
}

func (r *HTMLReporter) writeRunStats(
	w io.Writer,
	results []*TestResult,
) {
	passedCount := 0
	totalDuration := time.Duration(0)
	for _, res := range results {
		if res.Status == StatusPassed {
			passedCount++
		}
		totalDuration += res.Duration
	}

	fmt.Fprintln(w, "<h2>Statistics</h2>")
	fmt.Fprintln(w, "<table>")
	fmt.Fprintln(w, "<tr><th>Metric</th><th>Value</th></tr>")
	fmt.Fprintf(
		w,
		"<tr><td>Total Tests</td><td>%d</td></tr>\n",
		len(results),
	)
	fmt.Fprintf(
		w,
		"<tr><td>Passed</td><td>%d</td></tr>\n",
		passedCount,
	)
	fmt.Fprintf(
		w,
		"<tr><td>Failed</td><td>%d</td></tr>\n",
		len(results)-passedCount,
	)

	if len(results) > 0 {
		pct := float64(passedCount) /
			float64(len(results)) * 100
		fmt.Fprintf(
			w,
			"<tr><td>Pass Rate</td>"+
				"<td>%.0f%%</td></tr>\n",
			pct,
		)
	}

	fmt.Fprintf(
		w,
		"<tr><td>Total Duration</td>"+
			"<td>%v</td></tr>\n",
		totalDuration,
	)
	fmt.Fprintln(w, "</table>")
}

func (r *HTMLReporter) writeRunDetails(
	w io.Writer,
	results []*TestResult,
) {
	fmt.Fprintln(w, "<h2>Test Details</h2>")

	for _, result := range results {
		fmt.Fprintf(
			w,
			"<h3>%s</h3>\n",
			html.EscapeString(result.Name),
		)
		fmt.Fprintf(
			w,
			"<p><strong>Status:</strong> %s</p>\n",
			strings.ToUpper(result.Status),
		)
		fmt.Fprintf(
			w,
			"<p><strong>Duration:</strong> %v</p>\n",
			result.Duration,
		)

		for _, a := range result.Assertions {
			fmt.Fprintf(
				w,
				"<pre>%s</pre>\n",
				html.EscapeString(a.Description),
			)
		}
	}
}

func (r *HTMLReporter) writeHeader(w io.Writer, title string) {
	fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>%s</title>
<style>
body {
  font-family: -apple-system, BlinkMacSystemFont,
    "Segoe UI", Roboto, sans-serif;
  max-width: 960px;
  margin: 0 auto;
  padding: 20px;
  color: #333;
  background: #f9f9f9;
}
h1 { color: #2c3e50; border-bottom: 2px solid #3498db; padding-bottom: 10px; }
h2 { color: #2c3e50; margin-top: 30px; }
h3 { color: #34495e; }
table {
  border-collapse: collapse;
  width: 100%%;
  margin: 10px 0;
  background: #fff;
}
th, td {
  border: 1px solid #ddd;
  padding: 8px 12px;
  text-align: left;
}
th { background: #3498db; color: #fff; }
tr:nth-child(even) { background: #f2f2f2; }
.status-passed { color: #27ae60; font-weight: bold; }
.status-failed { color: #e74c3c; font-weight: bold; }
code {
  background: #ecf0f1;
  padding: 2px 6px;
  border-radius: 3px;
  font-size: 0.9em;
}
pre {
  background: #ecf0f1;
  padding: 8px;
  border-radius: 3px;
  font-size: 0.9em;
  white-space: pre-wrap;
}
footer {
  margin-top: 40px;
  padding-top: 10px;
  border-top: 1px solid #ddd;
  color: #7f8c8d;
  font-size: 0.9em;
}
</style>
</head>
<body>
`, html.EscapeString(title))
}

func (r *HTMLReporter) writeFooter(w io.Writer) {
	fmt.Fprintln(w, "<footer>")
	fmt.Fprintln(
		w, "<p>Generated by the matchers test framework</p>",
	)
	fmt.Fprintln(w, "</footer>")
	fmt.Fprintln(w, "</body>")
	fmt.Fprintln(w, "</html>")
}

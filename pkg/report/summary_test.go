package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRunSummary_Basic(t *testing.T) {
	results := makeTestResults()

	summary := BuildRunSummary(results)

	assert.NotEmpty(t, summary.ID)
	assert.NotZero(t, summary.GeneratedAt)
	assert.Equal(t, 2, summary.TotalTests)
	assert.Equal(t, 1, summary.PassedTests)
	assert.Equal(t, 1, summary.FailedTests)
	assert.Equal(t, 0.5, summary.PassRate)
	assert.Len(t, summary.Tests, 2)
}

func TestBuildRunSummary_Empty(t *testing.T) {
	summary := BuildRunSummary(nil)

	assert.Equal(t, 0, summary.TotalTests)
	assert.Equal(t, float64(0), summary.PassRate)
	assert.Empty(t, summary.Tests)
}

func TestBuildRunSummary_FailureCounts(t *testing.T) {
	results := makeTestResults()

	summary := BuildRunSummary(results)

	assert.Equal(t, 1, summary.Tests[0].Failures)
	assert.Equal(t, 0, summary.Tests[1].Failures)
}

func TestSaveRunSummary(t *testing.T) {
	dir := t.TempDir()
	results := makeTestResults()
	summary := BuildRunSummary(results)

	err := SaveRunSummary(summary, dir)
	require.NoError(t, err)

	// Check JSON file exists
	matches, err := filepath.Glob(
		filepath.Join(dir, "run_summary_*.json"),
	)
	require.NoError(t, err)
	assert.Len(t, matches, 1)

	data, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.True(t, json.Valid(data))

	// Check Markdown file exists
	mdMatches, err := filepath.Glob(
		filepath.Join(dir, "run_summary_*.md"),
	)
	require.NoError(t, err)
	assert.Len(t, mdMatches, 1)

	// Check symlinks
	_, err = os.Lstat(
		filepath.Join(dir, "latest_summary.json"),
	)
	assert.NoError(t, err)
	_, err = os.Lstat(
		filepath.Join(dir, "latest_summary.md"),
	)
	assert.NoError(t, err)
}

func TestSaveRunSummary_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "dir")
	summary := BuildRunSummary(nil)

	err := SaveRunSummary(summary, dir)
	require.NoError(t, err)

	_, err = os.Stat(dir)
	assert.NoError(t, err)
}

func TestGenerateSummaryMarkdown(t *testing.T) {
	summary := BuildRunSummary(makeTestResults())

	md := generateSummaryMarkdown(summary)

	assert.Contains(t, md, "# Test Run Summary")
	assert.Contains(t, md, "| Suite.First | FAILED |")
	assert.Contains(t, md, "| Suite.Second | PASSED |")
	assert.Contains(t, md, "| Pass Rate | 50% |")
}

func TestAppendToHistory(t *testing.T) {
	dir := t.TempDir()
	historyPath := filepath.Join(dir, "history.jsonl")

	result := makeTestResult()
	err := AppendToHistory(
		historyPath, result, "/tmp/results",
	)
	require.NoError(t, err)

	// Append another entry
	result.Name = "Suite.Second"
	err = AppendToHistory(
		historyPath, result, "/tmp/results2",
	)
	require.NoError(t, err)

	data, err := os.ReadFile(historyPath)
	require.NoError(t, err)

	lines := splitNonEmpty(string(data))
	assert.Len(t, lines, 2)

	var entry HistoricalEntry
	err = json.Unmarshal([]byte(lines[0]), &entry)
	require.NoError(t, err)
	assert.Equal(t, "Suite.First", entry.Test)
	assert.Equal(t, "failed", entry.Status)
	assert.Equal(t, 1, entry.Failures)
}

func splitNonEmpty(s string) []string {
	var result []string
	for _, line := range splitLines(s) {
		if line != "" {
			result = append(result, line)
		}
	}
	return result
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

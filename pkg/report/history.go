package report

import (
	"fmt"
	"os"
	"time"
)

// HistoricalEntry represents a single test run in the historical
// log.
type HistoricalEntry struct {
	Timestamp   time.Time `json:"timestamp"`
	Test        string    `json:"test"`
	Status      string    `json:"status"`
	Duration    string    `json:"duration"`
	Failures    int       `json:"failures"`
	ResultsPath string    `json:"results_path"`
}

// AppendToHistory adds an entry to the historical log stored
// at historyPath. Each entry is a single JSON line.
func AppendToHistory(
	historyPath string,
	result *TestResult,
	resultsPath string,
) error {
	entry := HistoricalEntry{
		Timestamp:   result.EndTime,
		Test:        result.Name,
		Status:      result.Status,
		Duration:    result.Duration.String(),
		Failures:    len(result.Assertions),
		ResultsPath: resultsPath,
	}

	data, err := jsonMarshal(entry)
	if err != nil {
		return fmt.Errorf(
			"failed to marshal history entry: %w", err,
		)
	}

	file, err := os.OpenFile(
		historyPath,
		os.O_CREATE|os.O_APPEND|os.O_WRONLY,
		0644,
	)
	if err != nil {
		return fmt.Errorf(
			"failed to open history file: %w", err,
		)
	}
	defer func() { _ = file.Close() }()

	_, err = fmt.Fprintln(file, string(data))
	return err
}

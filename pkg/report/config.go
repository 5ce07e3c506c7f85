package report

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Options configures report generation. It is typically loaded
// from a YAML file checked in next to the test suite.
type Options struct {
	// OutputDir is where generated reports are written.
	OutputDir string `json:"output_dir" yaml:"output_dir"`
	// Format selects the reporter: json, markdown, or html.
	Format string `json:"format" yaml:"format"`
	// Pretty indents JSON output for readability.
	Pretty bool `json:"pretty" yaml:"pretty"`
	// HistoryPath, when set, appends one JSON line per test to
	// the named file.
	HistoryPath string `json:"history_path" yaml:"history_path"`
}

// DefaultOptions returns options suitable for local runs.
func DefaultOptions() *Options {
	return &Options{
		OutputDir: "reports",
		Format:    "json",
		Pretty:    true,
	}
}

// LoadOptions reads report options from a YAML file.
func LoadOptions(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to read report config: %w", err,
		)
	}

	opts := DefaultOptions()
	if err := yaml.Unmarshal(data, opts); err != nil {
		return nil, fmt.Errorf(
			"failed to parse report config: %w", err,
		)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return opts, nil
}

// Validate checks the options for unsupported values.
func (o *Options) Validate() error {
	switch o.Format {
	case "json", "markdown", "html":
		return nil
	default:
		return fmt.Errorf(
			"unsupported report format %q", o.Format,
		)
	}
}

// NewReporter creates the Reporter selected by the options.
func NewReporter(o *Options) (Reporter, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	switch o.Format {
	case "json":
		return NewJSONReporter(o.OutputDir, o.Pretty), nil
	case "markdown":
		return NewMarkdownReporter(o.OutputDir), nil
	default:
		return NewHTMLReporter(o.OutputDir), nil
	}
}

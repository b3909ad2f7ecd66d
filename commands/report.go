package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/spikeworks/recmeta/validation"
)

// FileReport holds the validation outcome for one file.
type FileReport struct {
	Path       string             `yaml:"path"`
	ParseError string             `yaml:"parse_error,omitempty"`
	Issues     []validation.Issue `yaml:"issues,omitempty"`
}

// Errors counts error-severity issues; a parse failure counts as one.
func (f FileReport) Errors() int {
	if f.ParseError != "" {
		return 1
	}
	n := 0
	for _, issue := range f.Issues {
		if issue.Severity == validation.SeverityError {
			n++
		}
	}
	return n
}

// Warnings counts warning-severity issues.
func (f FileReport) Warnings() int {
	n := 0
	for _, issue := range f.Issues {
		if issue.Severity == validation.SeverityWarning {
			n++
		}
	}
	return n
}

// Report is the machine-readable outcome of one validation run.
type Report struct {
	ReportID    string       `yaml:"report_id"`
	GeneratedAt time.Time    `yaml:"generated_at"`
	Files       []FileReport `yaml:"files"`
	Errors      int          `yaml:"errors"`
	Warnings    int          `yaml:"warnings"`
}

// NewReport creates an empty report stamped with a unique run id.
func NewReport() *Report {
	return &Report{
		ReportID:    uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
	}
}

// Add appends a file outcome and updates the aggregate counts.
func (r *Report) Add(file FileReport) {
	r.Files = append(r.Files, file)
	r.Errors += file.Errors()
	r.Warnings += file.Warnings()
}

// WriteYAML writes the report to path as YAML.
func (r *Report) WriteYAML(path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Render prints a human-readable issue listing.
func (r *Report) Render(w io.Writer) {
	for _, file := range r.Files {
		if file.ParseError != "" {
			fmt.Fprintf(w, "%s: %s\n", file.Path, file.ParseError)
			continue
		}
		if len(file.Issues) == 0 {
			fmt.Fprintf(w, "%s: ok\n", file.Path)
			continue
		}
		fmt.Fprintf(w, "%s:\n", file.Path)
		for _, issue := range file.Issues {
			path := issue.Path
			if path == "" {
				path = "(document)"
			}
			fmt.Fprintf(w, "  %-7s %s [%s] %s\n", issue.Severity, path, issue.Code, issue.Message)
		}
	}
	fmt.Fprintf(w, "%d file(s), %d error(s), %d warning(s)\n", len(r.Files), r.Errors, r.Warnings)
}

// Package validation implements the two-layer validation engine:
// structural validation against the fixed metadata schema and
// cross-field business rules, merged into one stable, sorted issue
// report.
package validation

import (
	"sort"
	"strings"
)

// Severity classifies a validation finding.
type Severity string

// Issue severities. Error-severity issues block export; warnings do
// not.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is one normalized validation finding. Path uses the grammar
// `field`, `field.nested`, `field[INDEX].nested`; an empty path means
// the whole document.
type Issue struct {
	Path     string   `yaml:"path"`
	Code     string   `yaml:"code"`
	Severity Severity `yaml:"severity"`
	Message  string   `yaml:"message"`
}

// TopLevelField returns the first path segment (the top-level field
// the issue belongs to), or "" for whole-document issues.
func (i Issue) TopLevelField() string {
	path := i.Path
	if idx := strings.IndexAny(path, ".["); idx >= 0 {
		path = path[:idx]
	}
	return path
}

// SortIssues orders issues by (path, code) lexicographic ascending,
// with message as a final tiebreaker so repeated calls on identical
// input produce identical output.
func SortIssues(issues []Issue) {
	sort.SliceStable(issues, func(a, b int) bool {
		if issues[a].Path != issues[b].Path {
			return issues[a].Path < issues[b].Path
		}
		if issues[a].Code != issues[b].Code {
			return issues[a].Code < issues[b].Code
		}
		return issues[a].Message < issues[b].Message
	})
}

// HasErrors reports whether any issue has error severity. The export
// gate blocks while this is true.
func HasErrors(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

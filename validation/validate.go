package validation

import "github.com/spikeworks/recmeta/document"

// Validate runs structural and rule validation over a document and
// returns the merged issues sorted by (path, code). Sorting is applied
// as the very last step so callers never observe validator-internal
// ordering.
func Validate(raw document.Raw) []Issue {
	issues := append(ValidateSchema(raw), ValidateRules(raw)...)
	SortIssues(issues)
	return issues
}

// ValidateDocument validates a typed document by converting it to its
// untyped form first. Used on the export path, where the caller holds
// a normalized Document rather than freshly decoded text.
func ValidateDocument(doc *document.Document) []Issue {
	return Validate(doc.ToRaw())
}

// ValidateField filters the full validation result to issues belonging
// to one top-level field. Matching is by exact first path segment, not
// substring.
func ValidateField(raw document.Raw, field string) []Issue {
	var out []Issue
	for _, issue := range Validate(raw) {
		if issue.TopLevelField() == field {
			out = append(out, issue)
		}
	}
	return out
}

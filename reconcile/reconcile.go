// Package reconcile merges a partially valid imported document with
// the field defaults, accepting or rejecting external data one
// top-level field at a time.
package reconcile

import (
	"github.com/spikeworks/recmeta/document"
	"github.com/spikeworks/recmeta/validation"
)

// TypeMismatchReason is reported for fields excluded solely because
// their runtime shape did not match the default's type.
const TypeMismatchReason = "type mismatch"

// ExcludedField names a top-level field whose imported value was
// replaced by the default, with the first matching issue's message as
// the reason.
type ExcludedField struct {
	Field  string `yaml:"field"`
	Reason string `yaml:"reason"`
}

// Result is the reconciled document plus the exclusions a caller
// reports to the user.
type Result struct {
	Document *document.Document
	Excluded []ExcludedField
}

// Reconcile decides per top-level field whether to accept the imported
// value or fall back to the default:
//
//   - a field named by any issue's path is excluded,
//   - a field whose value cannot decode into the typed field is
//     excluded as a type mismatch, independent of reported issues,
//   - fields absent from the import keep their defaults silently,
//   - everything else is accepted as imported.
//
// After the field pass, a subject is always present (synthesized from
// defaults when needed) and an out-of-enumeration subject sex is
// coerced to the unknown code rather than rejecting the import.
// The input raw document is never mutated.
func Reconcile(raw document.Raw, issues []validation.Issue) *Result {
	doc := document.Defaults()
	var excluded []ExcludedField

	violating := make(map[string]string, len(issues))
	for _, issue := range issues {
		// Warnings flag quirks, not invalid data; they never reject a
		// field.
		if issue.Severity != validation.SeverityError {
			continue
		}
		field := issue.TopLevelField()
		if field == "" {
			continue
		}
		if _, ok := violating[field]; !ok {
			violating[field] = issue.Message
		}
	}

	for _, field := range document.FieldNames() {
		value, present := raw[field]
		if !present {
			continue
		}
		if reason, bad := violating[field]; bad {
			excluded = append(excluded, ExcludedField{Field: field, Reason: reason})
			continue
		}
		if err := doc.SetField(field, value); err != nil {
			excluded = append(excluded, ExcludedField{Field: field, Reason: TypeMismatchReason})
		}
	}

	if !document.ValidSex(doc.Subject.Sex) {
		doc.Subject.Sex = document.SexUnknown
	}

	return &Result{Document: doc, Excluded: excluded}
}

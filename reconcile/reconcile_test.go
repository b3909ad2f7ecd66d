package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spikeworks/recmeta/document"
	"github.com/spikeworks/recmeta/validation"
)

func TestReconcileCleanImportAcceptsEverything(t *testing.T) {
	raw := document.Defaults().ToRaw()
	raw["lab"] = "Frank Lab"
	raw["session_id"] = "rat01_01"

	result := Reconcile(raw, validation.Validate(raw))

	assert.Empty(t, result.Excluded)
	assert.Equal(t, "Frank Lab", result.Document.Lab)
	assert.Equal(t, "rat01_01", result.Document.SessionID)
}

func TestReconcileAbsentFieldsKeepDefaultsSilently(t *testing.T) {
	result := Reconcile(document.Raw{}, nil)

	assert.Empty(t, result.Excluded)
	assert.Equal(t, document.Defaults(), result.Document)
}

func TestReconcileExcludesFieldNamedByIssue(t *testing.T) {
	raw := document.Raw{
		"lab":     "Frank Lab",
		"cameras": []any{map[string]any{"id": "front"}},
	}
	issues := []validation.Issue{{
		Path:     "cameras[0].id",
		Code:     "type",
		Severity: validation.SeverityError,
		Message:  "expected integer, but got string",
	}}

	result := Reconcile(raw, issues)

	require.Len(t, result.Excluded, 1)
	assert.Equal(t, "cameras", result.Excluded[0].Field)
	assert.Equal(t, "expected integer, but got string", result.Excluded[0].Reason)
	assert.Equal(t, []document.Camera{}, result.Document.Cameras)
	assert.Equal(t, "Frank Lab", result.Document.Lab)
}

func TestReconcileFirstIssueMessageWins(t *testing.T) {
	raw := document.Raw{"cameras": []any{}}
	issues := []validation.Issue{
		{Path: "cameras[0].id", Severity: validation.SeverityError, Message: "first"},
		{Path: "cameras[1].id", Severity: validation.SeverityError, Message: "second"},
	}

	result := Reconcile(raw, issues)

	require.Len(t, result.Excluded, 1)
	assert.Equal(t, "first", result.Excluded[0].Reason)
}

func TestReconcileTypeMismatchWithoutIssues(t *testing.T) {
	// A shape the typed field cannot hold is rejected even when no
	// validator reported it.
	raw := document.Raw{
		"lab":        []any{"not", "a", "string"},
		"session_id": "rat01_01",
	}

	result := Reconcile(raw, nil)

	require.Len(t, result.Excluded, 1)
	assert.Equal(t, "lab", result.Excluded[0].Field)
	assert.Equal(t, TypeMismatchReason, result.Excluded[0].Reason)
	assert.Equal(t, "", result.Document.Lab)
	assert.Equal(t, "rat01_01", result.Document.SessionID)
}

func TestReconcileWarningsDoNotExclude(t *testing.T) {
	raw := document.Raw{"experiment_date": ""}
	issues := []validation.Issue{{
		Path:     "experiment_date",
		Code:     "experiment_date_missing",
		Severity: validation.SeverityWarning,
		Message:  "experiment_date is unset",
	}}

	result := Reconcile(raw, issues)

	assert.Empty(t, result.Excluded)
	assert.Equal(t, "", result.Document.ExperimentDate)
}

func TestReconcileSynthesizesSubject(t *testing.T) {
	result := Reconcile(document.Raw{"lab": "Frank Lab"}, nil)

	assert.Equal(t, document.Defaults().Subject, result.Document.Subject)
}

func TestReconcileCoercesUnknownSex(t *testing.T) {
	raw := document.Raw{
		"subject": map[string]any{
			"description": "Long-Evans Rat",
			"genotype":    "Wild Type",
			"sex":         "Z",
			"species":     "Rattus norvegicus",
			"subject_id":  "RAT01",
			"weight":      350,
		},
	}

	result := Reconcile(raw, nil)

	assert.Empty(t, result.Excluded)
	assert.Equal(t, document.SexUnknown, result.Document.Subject.Sex)
	assert.Equal(t, "RAT01", result.Document.Subject.SubjectID)
}

func TestReconcileDoesNotMutateInput(t *testing.T) {
	raw := document.Raw{
		"lab":     "Frank Lab",
		"subject": map[string]any{"sex": "Z"},
	}

	Reconcile(raw, nil)

	assert.Equal(t, "Frank Lab", raw["lab"])
	assert.Equal(t, map[string]any{"sex": "Z"}, raw["subject"])
}

func TestReconcilePartiallyValidImport(t *testing.T) {
	// The full import path: validate the untyped document, then merge.
	raw := document.Defaults().ToRaw()
	raw["lab"] = "Frank Lab"
	raw["cameras"] = []any{map[string]any{
		"id":               "front",
		"meters_per_pixel": 0.00055,
		"camera_name":      "front cam",
	}}
	raw["electrode_groups"] = []any{map[string]any{
		"id":          "0",
		"device_type": "not_a_probe",
		"location":    "CA1",
	}}

	issues := validation.Validate(raw)
	require.True(t, validation.HasErrors(issues))

	result := Reconcile(raw, issues)

	fields := make([]string, len(result.Excluded))
	for i, ex := range result.Excluded {
		fields[i] = ex.Field
	}
	assert.ElementsMatch(t, []string{"cameras", "electrode_groups"}, fields)

	assert.Equal(t, "Frank Lab", result.Document.Lab)
	assert.Equal(t, []document.Camera{}, result.Document.Cameras)
	assert.Equal(t, []document.ElectrodeGroup{}, result.Document.ElectrodeGroups)
}

package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/spikeworks/recmeta/codec"
	"github.com/spikeworks/recmeta/document"
	"github.com/spikeworks/recmeta/validation"
)

func encodedDefaults(t *testing.T) []byte {
	t.Helper()
	data, err := codec.Encode(document.Defaults())
	require.NoError(t, err)
	return data
}

func TestReportAggregatesCounts(t *testing.T) {
	report := NewReport()
	report.Add(FileReport{Path: "a.yml", Issues: []validation.Issue{
		{Path: "lab", Code: "type", Severity: validation.SeverityError},
		{Path: "experiment_date", Code: "experiment_date_missing", Severity: validation.SeverityWarning},
	}})
	report.Add(FileReport{Path: "b.yml"})
	report.Add(FileReport{Path: "c.yml", ParseError: "parse metadata YAML: bad indent"})

	assert.Equal(t, 2, report.Errors)
	assert.Equal(t, 1, report.Warnings)
	assert.Len(t, report.Files, 3)

	_, err := uuid.Parse(report.ReportID)
	assert.NoError(t, err, "report id must be a UUID")
}

func TestFileReportCounters(t *testing.T) {
	file := FileReport{Issues: []validation.Issue{
		{Severity: validation.SeverityError},
		{Severity: validation.SeverityError},
		{Severity: validation.SeverityWarning},
	}}
	assert.Equal(t, 2, file.Errors())
	assert.Equal(t, 1, file.Warnings())

	broken := FileReport{ParseError: "unreadable"}
	assert.Equal(t, 1, broken.Errors())
	assert.Equal(t, 0, broken.Warnings())
}

func TestReportRender(t *testing.T) {
	report := NewReport()
	report.Add(FileReport{Path: "clean.yml"})
	report.Add(FileReport{Path: "dirty.yml", Issues: []validation.Issue{
		{Path: "", Code: "required", Severity: validation.SeverityError, Message: "missing properties: 'lab'"},
	}})

	var buf strings.Builder
	report.Render(&buf)
	out := buf.String()

	assert.Contains(t, out, "clean.yml: ok")
	assert.Contains(t, out, "dirty.yml:")
	assert.Contains(t, out, "(document)")
	assert.Contains(t, out, "2 file(s), 1 error(s), 0 warning(s)")
}

func TestReportWriteYAML(t *testing.T) {
	report := NewReport()
	report.Add(FileReport{Path: "a.yml", Issues: []validation.Issue{
		{Path: "subject.sex", Code: "enum", Severity: validation.SeverityError, Message: "value must be one of"},
	}})

	path := filepath.Join(t.TempDir(), "report.yml")
	require.NoError(t, report.WriteYAML(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded Report
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, report.ReportID, decoded.ReportID)
	require.Len(t, decoded.Files, 1)
	assert.Equal(t, "subject.sex", decoded.Files[0].Issues[0].Path)
}

func TestValidateFileCleanDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rat01_metadata.yml")
	require.NoError(t, os.WriteFile(path, encodedDefaults(t), 0644))

	file := validateFile(path)
	assert.Empty(t, file.ParseError)
	assert.Equal(t, 0, file.Errors())
	assert.Equal(t, 1, file.Warnings(), "default document warns about the unset date")
}

func TestValidateFileMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yml")
	require.NoError(t, os.WriteFile(path, []byte("lab: [unclosed\n"), 0644))

	file := validateFile(path)
	assert.Contains(t, file.ParseError, "parse metadata YAML")
	assert.Equal(t, 1, file.Errors())
}

func TestValidateFileUnreadable(t *testing.T) {
	file := validateFile(filepath.Join(t.TempDir(), "missing.yml"))
	assert.NotEmpty(t, file.ParseError)
	assert.Equal(t, 1, file.Errors())
}

// Package codec serializes session-metadata documents to and from
// YAML deterministically and derives the canonical export filename.
package codec

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/spikeworks/recmeta/document"
)

// ExperimentDatePlaceholder is emitted in place of the date when the
// document carries none. Preserved, documented behavior: downstream
// tooling must not misinterpret it as a real date.
const ExperimentDatePlaceholder = "{EXPERIMENT_DATE_in_format_mmddYYYY}"

// ParseError reports malformed input text. It is fatal to the decode
// call and always propagates to the caller; the codec never defaults
// over it.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse metadata YAML: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Encode serializes a document deterministically: key order follows
// the document's field order, line endings are Unix, channel maps are
// emitted with sorted keys, and the emitter's default scalar style is
// applied uniformly. Encoding the same document twice yields identical
// bytes.
func Encode(doc *document.Document) ([]byte, error) {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode metadata: %w", err)
	}
	return data, nil
}

// DecodeRaw parses YAML text into the untyped document form used by
// the validators and the import reconciler. Malformed input yields a
// *ParseError carrying the parser's message.
func DecodeRaw(text []byte) (document.Raw, error) {
	var raw document.Raw
	if err := yaml.Unmarshal(text, &raw); err != nil {
		return nil, &ParseError{Err: err}
	}
	if raw == nil {
		raw = document.Raw{}
	}
	return raw, nil
}

// Decode parses YAML text into a typed Document. Fields absent from
// the text are filled from defaults; for any document produced by
// Encode the round trip is lossless.
func Decode(text []byte) (*document.Document, error) {
	raw, err := DecodeRaw(text)
	if err != nil {
		return nil, err
	}
	return document.FromRaw(raw), nil
}

// FormatFilename derives the canonical export filename,
// {experiment_date}_{lowercased subject id}_metadata.yml. An absent
// date substitutes ExperimentDatePlaceholder rather than failing.
func FormatFilename(doc *document.Document) string {
	date := doc.ExperimentDate
	if date == "" {
		date = ExperimentDatePlaceholder
	}
	return fmt.Sprintf("%s_%s_metadata.yml", date, strings.ToLower(doc.Subject.SubjectID))
}

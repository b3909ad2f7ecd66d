package validation

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/spikeworks/recmeta/document"
)

// The schema is a fixed, versioned build-time input. It is compiled
// exactly once at process start and reused for every validation call.
//
//go:embed schema.json
var schemaJSON string

const schemaResource = "recording_metadata.schema.json"

var metadataSchema = func() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaResource, strings.NewReader(schemaJSON)); err != nil {
		panic(fmt.Sprintf("add metadata schema resource: %v", err))
	}
	return compiler.MustCompile(schemaResource)
}()

// SchemaEnumDeviceTypes returns the device_type enum the embedded
// schema carries, so the topology catalog and the schema can be tested
// for agreement.
func SchemaEnumDeviceTypes() ([]string, error) {
	var doc struct {
		Properties struct {
			ElectrodeGroups struct {
				Items struct {
					Properties struct {
						DeviceType struct {
							Enum []string `json:"enum"`
						} `json:"device_type"`
					} `json:"properties"`
				} `json:"items"`
			} `json:"electrode_groups"`
		} `json:"properties"`
	}
	if err := json.Unmarshal([]byte(schemaJSON), &doc); err != nil {
		return nil, fmt.Errorf("parse embedded schema: %w", err)
	}
	return doc.Properties.ElectrodeGroups.Items.Properties.DeviceType.Enum, nil
}

// ValidateSchema checks the document against the fixed metadata schema
// and returns one issue per violation. Paths are normalized instance
// locations; codes are the violated schema keywords. Output order is
// not significant here; the facade re-sorts.
func ValidateSchema(raw document.Raw) []Issue {
	instance, err := toJSONValue(raw)
	if err != nil {
		return []Issue{{
			Path:     "",
			Code:     "document",
			Severity: SeverityError,
			Message:  fmt.Sprintf("document is not a representable mapping: %v", err),
		}}
	}

	err = metadataSchema.Validate(instance)
	if err == nil {
		return nil
	}

	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []Issue{{
			Path:     "",
			Code:     "schema",
			Severity: SeverityError,
			Message:  err.Error(),
		}}
	}

	var issues []Issue
	collectLeaves(ve, &issues)
	return issues
}

// collectLeaves walks the validator's cause tree and emits one issue
// per leaf violation. The native instance location for "required"
// violations points at the parent object, but the validator's message
// already names the missing fields, so the field name survives into
// the issue.
func collectLeaves(ve *jsonschema.ValidationError, out *[]Issue) {
	if len(ve.Causes) == 0 {
		*out = append(*out, Issue{
			Path:     NormalizePath(ve.InstanceLocation),
			Code:     keywordCode(ve.KeywordLocation),
			Severity: SeverityError,
			Message:  ve.Message,
		})
		return
	}
	for _, cause := range ve.Causes {
		collectLeaves(cause, out)
	}
}

// keywordCode extracts the violated schema keyword from a keyword
// location such as "/properties/cameras/items/required".
func keywordCode(keywordLocation string) string {
	segments := strings.Split(keywordLocation, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		seg := segments[i]
		if seg == "" || isIndex(seg) {
			continue
		}
		return seg
	}
	return "schema"
}

// toJSONValue converts a YAML-decoded value into the JSON-compatible
// shape the schema engine expects. Mapping keys are stringified; this
// is the untyped decode boundary where integer channel-map keys become
// the object keys the schema's patternProperties match against.
func toJSONValue(v any) (any, error) {
	data, err := json.Marshal(stringifyKeys(v))
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func stringifyKeys(v any) any {
	switch t := v.(type) {
	case document.Raw:
		return stringifyKeys(map[string]any(t))
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = stringifyKeys(val)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = stringifyKeys(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = stringifyKeys(val)
		}
		return out
	default:
		return v
	}
}

package validation

import (
	"fmt"
	"strings"

	"github.com/spikeworks/recmeta/channelmap"
	"github.com/spikeworks/recmeta/document"
)

// Rule issue codes.
const (
	CodeCamerasRequired     = "cameras_required"
	CodePartialOptogenetics = "partial_optogenetics_configuration"
	CodeExperimentDateUnset = "experiment_date_missing"
)

// optoFields are the all-or-nothing optogenetics sections, in the
// order violations report them. fs_gui_yamls and stimulation_software
// are deliberately not part of this group.
var optoFields = []string{"opto_excitation_source", "optical_fiber", "virus_injection"}

// ValidateRules applies the cross-field business rules. Rules are
// independent and never short-circuit each other; every rule
// contributes zero or more issues. Output order is not significant
// here; the facade re-sorts.
func ValidateRules(raw document.Raw) []Issue {
	var issues []Issue
	issues = append(issues, cameraPresenceRule(raw, "tasks")...)
	issues = append(issues, cameraPresenceRule(raw, "associated_video_files")...)
	issues = append(issues, optogeneticsRule(raw)...)
	issues = append(issues, channelWiringRule(raw)...)
	issues = append(issues, experimentDateRule(raw)...)
	return issues
}

// cameraPresenceRule checks that any section referencing camera ids
// has a cameras section to reference. An empty cameras array
// satisfies the rule; only absence violates it.
func cameraPresenceRule(raw document.Raw, field string) []Issue {
	list, ok := raw.List(field)
	if !ok || len(list) == 0 {
		return nil
	}
	references := false
	for _, item := range list {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if v, present := entry["camera_id"]; present && v != nil {
			references = true
			break
		}
	}
	if !references || raw.Has("cameras") {
		return nil
	}
	return []Issue{{
		Path:     field,
		Code:     CodeCamerasRequired,
		Severity: SeverityError,
		Message:  fmt.Sprintf("%s reference camera ids but the cameras section is not defined", field),
	}}
}

// optogeneticsRule enforces the all-or-nothing constraint over the
// optogenetics sections: either all three are empty/absent or all
// three are populated. Null and missing both count as empty.
func optogeneticsRule(raw document.Raw) []Issue {
	var present, missing []string
	for _, field := range optoFields {
		if raw.EmptyOrAbsent(field) {
			missing = append(missing, field)
		} else {
			present = append(present, field)
		}
	}
	if len(present) == 0 || len(missing) == 0 {
		return nil
	}
	return []Issue{{
		Path:     optoFields[0],
		Code:     CodePartialOptogenetics,
		Severity: SeverityError,
		Message: fmt.Sprintf("optogenetics configuration is partial: %s populated; %s missing",
			strings.Join(present, ", "), strings.Join(missing, ", ")),
	}}
}

// channelWiringRule delegates to the channel-map checker. Sections
// that fail to decode are skipped here because the schema validator
// already reports their structural problems.
func channelWiringRule(raw document.Raw) []Issue {
	var groups []document.ElectrodeGroup
	var entries []document.ChannelMapEntry
	raw.Section("electrode_groups", &groups)
	if !raw.Section("ntrode_electrode_group_channel_map", &entries) {
		return nil
	}

	findings := channelmap.Check(groups, entries)
	issues := make([]Issue, 0, len(findings))
	for _, f := range findings {
		issues = append(issues, Issue{
			Path:     f.Path,
			Code:     f.Code,
			Severity: SeverityError,
			Message:  f.Message,
		})
	}
	return issues
}

// experimentDateRule warns when the experiment date is unset, since
// the derived filename then carries a literal placeholder token that
// downstream tooling must not misread as a real date.
func experimentDateRule(raw document.Raw) []Issue {
	if v, ok := raw["experiment_date"]; ok {
		if s, isString := v.(string); isString && s != "" {
			return nil
		}
	}
	return []Issue{{
		Path:     "experiment_date",
		Code:     CodeExperimentDateUnset,
		Severity: SeverityWarning,
		Message:  "experiment_date is unset; the exported filename will carry a placeholder instead of a date",
	}}
}

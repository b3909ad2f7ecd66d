// Package document defines the session-metadata record produced and
// consumed by the recmeta core: a struct of known fields with stable
// field order, the untyped Raw boundary used at YAML decode time, and
// the channel-map records owned by the document.
package document

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Subject sex codes. Anything outside this set is coerced to SexUnknown
// during import reconciliation.
const (
	SexMale    = "M"
	SexFemale  = "F"
	SexUnknown = "U"
	SexOther   = "O"
)

// ValidSex reports whether code is one of the fixed subject sex codes.
func ValidSex(code string) bool {
	switch code {
	case SexMale, SexFemale, SexUnknown, SexOther:
		return true
	}
	return false
}

// Subject describes the recorded animal.
type Subject struct {
	Description string  `yaml:"description"`
	Genotype    string  `yaml:"genotype"`
	Sex         string  `yaml:"sex"`
	Species     string  `yaml:"species"`
	SubjectID   string  `yaml:"subject_id"`
	Weight      float64 `yaml:"weight"`
}

// DataAcqDevice describes one data acquisition device.
type DataAcqDevice struct {
	Name       string `yaml:"name"`
	System     string `yaml:"system"`
	Amplifier  string `yaml:"amplifier"`
	ADCCircuit string `yaml:"adc_circuit"`
}

// Camera describes one behaviour camera.
type Camera struct {
	ID             int     `yaml:"id"`
	MetersPerPixel float64 `yaml:"meters_per_pixel"`
	Manufacturer   string  `yaml:"manufacturer"`
	Model          string  `yaml:"model"`
	Lens           string  `yaml:"lens"`
	CameraName     string  `yaml:"camera_name"`
}

// Task describes one behavioural task and the epochs/cameras it covers.
type Task struct {
	TaskName        string `yaml:"task_name"`
	TaskDescription string `yaml:"task_description"`
	TaskEnvironment string `yaml:"task_environment"`
	CameraID        []int  `yaml:"camera_id"`
	TaskEpochs      []int  `yaml:"task_epochs"`
}

// AssociatedFile is a non-video file attached to the session.
type AssociatedFile struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Path        string `yaml:"path"`
	TaskEpochs  []int  `yaml:"task_epochs"`
}

// AssociatedVideoFile is a video recording attached to the session.
type AssociatedVideoFile struct {
	Name       string `yaml:"name"`
	CameraID   int    `yaml:"camera_id"`
	TaskEpochs []int  `yaml:"task_epochs"`
}

// Units names the measurement units used for analog signals and
// behavioural event timestamps.
type Units struct {
	Analog           string `yaml:"analog"`
	BehavioralEvents string `yaml:"behavioral_events"`
}

// BehavioralEvent describes one digital behavioural event channel.
type BehavioralEvent struct {
	Description string `yaml:"description"`
	Name        string `yaml:"name"`
}

// Device lists the recording hardware names.
type Device struct {
	Name []string `yaml:"name"`
}

// ElectrodeGroup is a physically co-located probe implant. ID is a
// caller-supplied string treated as a numeric sequence for
// auto-increment; see NextElectrodeGroupID.
type ElectrodeGroup struct {
	ID               string  `yaml:"id"`
	Location         string  `yaml:"location"`
	DeviceType       string  `yaml:"device_type"`
	Description      string  `yaml:"description"`
	TargetedLocation string  `yaml:"targeted_location"`
	TargetedX        float64 `yaml:"targeted_x"`
	TargetedY        float64 `yaml:"targeted_y"`
	TargetedZ        float64 `yaml:"targeted_z"`
	Units            string  `yaml:"units"`
}

// OptoExcitationSource describes an optogenetic light source.
type OptoExcitationSource struct {
	Name           string  `yaml:"name"`
	Description    string  `yaml:"description"`
	Model          string  `yaml:"model"`
	WavelengthInNm float64 `yaml:"wavelength_in_nm"`
	PowerInW       float64 `yaml:"power_in_W"`
}

// OpticalFiber describes an implanted optical fiber.
type OpticalFiber struct {
	Name             string `yaml:"name"`
	Hemisphere       string `yaml:"hemisphere"`
	Location         string `yaml:"location"`
	FiberDescription string `yaml:"fiber_description"`
}

// VirusInjection describes a viral vector injection site.
type VirusInjection struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Location    string  `yaml:"location"`
	Hemisphere  string  `yaml:"hemisphere"`
	VolumeInUl  float64 `yaml:"volume_in_ul"`
}

// FsGuiYaml references a statescript/FSGui configuration file used in
// one or more epochs. Optional regardless of the optogenetics sections.
type FsGuiYaml struct {
	Name   string `yaml:"name"`
	Path   string `yaml:"path"`
	Epochs []int  `yaml:"epochs"`
}

// Document is the full metadata record. Struct field order defines the
// emitted YAML key order, which downstream diffing depends on. Every
// field has a default (see Defaults); a normalized Document always
// carries every default key.
type Document struct {
	ExperimenterName      []string               `yaml:"experimenter_name"`
	Lab                   string                 `yaml:"lab"`
	Institution           string                 `yaml:"institution"`
	ExperimentDescription string                 `yaml:"experiment_description"`
	ExperimentDate        string                 `yaml:"experiment_date"`
	SessionDescription    string                 `yaml:"session_description"`
	SessionID             string                 `yaml:"session_id"`
	Subject               Subject                `yaml:"subject"`
	DataAcqDevice         []DataAcqDevice        `yaml:"data_acq_device"`
	Cameras               []Camera               `yaml:"cameras"`
	Tasks                 []Task                 `yaml:"tasks"`
	AssociatedFiles       []AssociatedFile       `yaml:"associated_files"`
	AssociatedVideoFiles  []AssociatedVideoFile  `yaml:"associated_video_files"`
	Units                 Units                  `yaml:"units"`
	TimesPeriodMultiplier float64                `yaml:"times_period_multiplier"`
	RawDataToVolts        float64                `yaml:"raw_data_to_volts"`
	DefaultHeaderFilePath string                 `yaml:"default_header_file_path"`
	BehavioralEvents      []BehavioralEvent      `yaml:"behavioral_events"`
	Device                Device                 `yaml:"device"`
	ElectrodeGroups       []ElectrodeGroup       `yaml:"electrode_groups"`
	ChannelMaps           []ChannelMapEntry      `yaml:"ntrode_electrode_group_channel_map"`
	OptoExcitationSource  []OptoExcitationSource `yaml:"opto_excitation_source"`
	OpticalFiber          []OpticalFiber         `yaml:"optical_fiber"`
	VirusInjection        []VirusInjection       `yaml:"virus_injection"`
	StimulationSoftware   string                 `yaml:"stimulation_software"`
	FsGuiYamls            []FsGuiYaml            `yaml:"fs_gui_yamls"`
}

// fieldNames lists every top-level field in struct (authored) order.
// Keep in sync with the Document struct tags.
var fieldNames = []string{
	"experimenter_name",
	"lab",
	"institution",
	"experiment_description",
	"experiment_date",
	"session_description",
	"session_id",
	"subject",
	"data_acq_device",
	"cameras",
	"tasks",
	"associated_files",
	"associated_video_files",
	"units",
	"times_period_multiplier",
	"raw_data_to_volts",
	"default_header_file_path",
	"behavioral_events",
	"device",
	"electrode_groups",
	"ntrode_electrode_group_channel_map",
	"opto_excitation_source",
	"optical_fiber",
	"virus_injection",
	"stimulation_software",
	"fs_gui_yamls",
}

// FieldNames returns the top-level field names in authored order.
// Callers must not modify the returned slice.
func FieldNames() []string {
	return fieldNames
}

// fieldPointer maps a top-level field name to a pointer at the
// corresponding struct field, so decode-time field access stays
// explicit rather than reflective.
func (d *Document) fieldPointer(name string) (any, error) {
	switch name {
	case "experimenter_name":
		return &d.ExperimenterName, nil
	case "lab":
		return &d.Lab, nil
	case "institution":
		return &d.Institution, nil
	case "experiment_description":
		return &d.ExperimentDescription, nil
	case "experiment_date":
		return &d.ExperimentDate, nil
	case "session_description":
		return &d.SessionDescription, nil
	case "session_id":
		return &d.SessionID, nil
	case "subject":
		return &d.Subject, nil
	case "data_acq_device":
		return &d.DataAcqDevice, nil
	case "cameras":
		return &d.Cameras, nil
	case "tasks":
		return &d.Tasks, nil
	case "associated_files":
		return &d.AssociatedFiles, nil
	case "associated_video_files":
		return &d.AssociatedVideoFiles, nil
	case "units":
		return &d.Units, nil
	case "times_period_multiplier":
		return &d.TimesPeriodMultiplier, nil
	case "raw_data_to_volts":
		return &d.RawDataToVolts, nil
	case "default_header_file_path":
		return &d.DefaultHeaderFilePath, nil
	case "behavioral_events":
		return &d.BehavioralEvents, nil
	case "device":
		return &d.Device, nil
	case "electrode_groups":
		return &d.ElectrodeGroups, nil
	case "ntrode_electrode_group_channel_map":
		return &d.ChannelMaps, nil
	case "opto_excitation_source":
		return &d.OptoExcitationSource, nil
	case "optical_fiber":
		return &d.OpticalFiber, nil
	case "virus_injection":
		return &d.VirusInjection, nil
	case "stimulation_software":
		return &d.StimulationSoftware, nil
	case "fs_gui_yamls":
		return &d.FsGuiYamls, nil
	}
	return nil, fmt.Errorf("unknown document field: %s", name)
}

// SetField decodes value into the named top-level field. A decode
// failure means the value's runtime shape does not match the field's
// type; the field is left untouched in that case.
func (d *Document) SetField(name string, value any) error {
	target, err := d.fieldPointer(name)
	if err != nil {
		return err
	}
	return Coerce(value, target)
}

// Coerce decodes an untyped YAML value into target via a marshal
// round trip. It fails when the value's shape does not match the
// target type, which is exactly the type check the import boundary
// needs.
func Coerce(value any, target any) error {
	data, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Errorf("remarshal value: %w", err)
	}
	return yaml.Unmarshal(data, target)
}

// Clone returns a deep copy of the document via a YAML round trip.
// Documents contain only plain values, so the round trip is lossless.
func (d *Document) Clone() *Document {
	data, err := yaml.Marshal(d)
	if err != nil {
		// Documents are plain data; marshal cannot fail for a value
		// constructed through this package.
		panic(fmt.Sprintf("clone document: %v", err))
	}
	var out Document
	if err := yaml.Unmarshal(data, &out); err != nil {
		panic(fmt.Sprintf("clone document: %v", err))
	}
	return &out
}

// ToRaw converts the typed document to its untyped form.
func (d *Document) ToRaw() Raw {
	data, err := yaml.Marshal(d)
	if err != nil {
		panic(fmt.Sprintf("convert document: %v", err))
	}
	var raw Raw
	if err := yaml.Unmarshal(data, &raw); err != nil {
		panic(fmt.Sprintf("convert document: %v", err))
	}
	return raw
}

// FromRaw builds a typed Document from an untyped one. Fields absent
// from raw keep their defaults; fields whose shape does not match the
// typed field also keep their defaults (the schema validator reports
// those separately).
func FromRaw(raw Raw) *Document {
	doc := Defaults()
	for _, name := range fieldNames {
		value, ok := raw[name]
		if !ok {
			continue
		}
		// Best effort: a mismatched field keeps its default.
		_ = doc.SetField(name, value)
	}
	return doc
}

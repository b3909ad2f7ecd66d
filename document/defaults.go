package document

// Defaults returns a fresh Document carrying the default value for
// every top-level field. Missing fields in imported documents are
// filled from here, and import fallback substitutes these values for
// rejected fields.
func Defaults() *Document {
	return &Document{
		ExperimenterName:      []string{},
		Lab:                   "",
		Institution:           "",
		ExperimentDescription: "",
		ExperimentDate:        "",
		SessionDescription:    "",
		SessionID:             "",
		Subject: Subject{
			Description: "Long-Evans Rat",
			Genotype:    "Wild Type",
			Sex:         SexMale,
			Species:     "Rattus norvegicus",
			SubjectID:   "",
			Weight:      0,
		},
		DataAcqDevice:        []DataAcqDevice{},
		Cameras:              []Camera{},
		Tasks:                []Task{},
		AssociatedFiles:      []AssociatedFile{},
		AssociatedVideoFiles: []AssociatedVideoFile{},
		Units: Units{
			Analog:           "unspecified",
			BehavioralEvents: "unspecified",
		},
		TimesPeriodMultiplier: 1.5,
		RawDataToVolts:        0.000000195,
		DefaultHeaderFilePath: "",
		BehavioralEvents:      []BehavioralEvent{},
		Device: Device{
			Name: []string{"Trodes"},
		},
		ElectrodeGroups:      []ElectrodeGroup{},
		ChannelMaps:          []ChannelMapEntry{},
		OptoExcitationSource: []OptoExcitationSource{},
		OpticalFiber:         []OpticalFiber{},
		VirusInjection:       []VirusInjection{},
		StimulationSoftware:  "",
		FsGuiYamls:           []FsGuiYaml{},
	}
}

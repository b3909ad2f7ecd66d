package channelmap

import (
	"fmt"
	"sort"

	"github.com/spikeworks/recmeta/device"
	"github.com/spikeworks/recmeta/document"
)

// Finding codes for channel wiring violations.
const (
	CodeChannelOutOfRange     = "channel_out_of_range"
	CodeDuplicateHardwareChan = "duplicate_hardware_channel"
	CodeBadChannelNotInMap    = "bad_channel_not_in_map"
)

// Finding is one wiring violation. The validation facade converts
// findings into issues; keeping the type here avoids a dependency
// cycle between the rule engine and this package.
type Finding struct {
	Path    string
	Code    string
	Message string
}

// Check verifies every channel-map entry against the owning group's
// device topology:
//
//  1. every channel index is in range [0, channelCount) for the
//     group's device type,
//  2. no two channel indexes in one map share a hardware channel
//     (duplicate wiring is a scientifically invalid state),
//  3. every bad channel is an index present in the map.
//
// Map keys are walked in sorted order so finding order is stable
// across calls.
func Check(groups []document.ElectrodeGroup, entries []document.ChannelMapEntry) []Finding {
	deviceByGroup := make(map[string]string, len(groups))
	for _, g := range groups {
		deviceByGroup[g.ID] = g.DeviceType
	}

	var findings []Finding
	for i, entry := range entries {
		mapPath := fmt.Sprintf("ntrode_electrode_group_channel_map[%d].map", i)
		badPath := fmt.Sprintf("ntrode_electrode_group_channel_map[%d].bad_channels", i)

		keys := entry.Map.SortedKeys()

		// Range check needs the owning group's topology; skip when the
		// group or its device type is unknown since that is reported
		// elsewhere.
		if spec, ok := device.Lookup(deviceByGroup[entry.ElectrodeGroupID]); ok {
			for _, k := range keys {
				if k < 0 || k >= spec.ChannelCount {
					findings = append(findings, Finding{
						Path: mapPath,
						Code: CodeChannelOutOfRange,
						Message: fmt.Sprintf("channel index %d is outside [0, %d) for device type %q",
							k, spec.ChannelCount, spec.ID),
					})
				}
			}
		}

		firstKey := make(map[int]int, len(keys))
		for _, k := range keys {
			hw := entry.Map[k]
			if prev, seen := firstKey[hw]; seen {
				findings = append(findings, Finding{
					Path: mapPath,
					Code: CodeDuplicateHardwareChan,
					Message: fmt.Sprintf("hardware channel %d is wired to both channel index %d and %d",
						hw, prev, k),
				})
				continue
			}
			firstKey[hw] = k
		}

		bad := append([]int(nil), entry.BadChannels...)
		sort.Ints(bad)
		for _, b := range bad {
			if _, ok := entry.Map[b]; !ok {
				findings = append(findings, Finding{
					Path:    badPath,
					Code:    CodeBadChannelNotInMap,
					Message: fmt.Sprintf("bad channel %d is not a channel index in the map", b),
				})
			}
		}
	}
	return findings
}

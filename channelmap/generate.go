// Package channelmap derives hardware channel maps from electrode
// group topology and checks existing maps for electrically invalid
// wiring.
package channelmap

import (
	"github.com/spikeworks/recmeta/device"
	"github.com/spikeworks/recmeta/document"
)

// GenerateAll produces one identity channel map per shank for every
// electrode group, in input order. Ntrode ids are assigned sequentially
// across the whole call starting at 1, threaded as an explicit counter.
// Groups with an unrecognized device type are silently skipped; device
// type validity is reported by the schema validator, not here.
//
// Shank k of a group occupies hardware channels
// [k*channelsPerShank, (k+1)*channelsPerShank), so channel numbering is
// contiguous and non-overlapping across the shanks of one group.
// Callers decide whether to overwrite maps a document already carries.
func GenerateAll(groups []document.ElectrodeGroup) []document.ChannelMapEntry {
	entries := []document.ChannelMapEntry{}
	ntrodeID := 1
	for _, group := range groups {
		spec, ok := device.Lookup(group.DeviceType)
		if !ok {
			continue
		}
		perShank := spec.ChannelsPerShank()
		for shank := 0; shank < spec.ShankCount; shank++ {
			m := make(document.ChannelMap, perShank)
			for ch := 0; ch < perShank; ch++ {
				m[ch] = shank*perShank + ch
			}
			entries = append(entries, document.ChannelMapEntry{
				NtrodeID:         ntrodeID,
				ElectrodeGroupID: group.ID,
				BadChannels:      []int{},
				Map:              m,
			})
			ntrodeID++
		}
	}
	return entries
}

// Package device holds the fixed catalog of supported probe types and
// their channel/shank topology. The catalog is a closed enumeration:
// no dynamic registration, loaded once, immutable.
package device

import "sort"

// Spec describes the hardware topology of one probe type.
type Spec struct {
	ID           string
	ChannelCount int
	ShankCount   int
}

// ChannelsPerShank returns the number of channels on each shank.
func (s Spec) ChannelsPerShank() int {
	if s.ShankCount == 0 {
		return 0
	}
	return s.ChannelCount / s.ShankCount
}

// catalog enumerates every supported probe type, from single-shank
// tetrodes up to 128-channel 4-shank silicon probes. The schema's
// device_type enum must list exactly these ids; a test enforces that.
var catalog = map[string]Spec{
	"tetrode_12.5":               {ID: "tetrode_12.5", ChannelCount: 4, ShankCount: 1},
	"A1x32-6mm-50-177-H32_21mm":  {ID: "A1x32-6mm-50-177-H32_21mm", ChannelCount: 32, ShankCount: 1},
	"16c-1s6mm6cm-20um-40um-sl":  {ID: "16c-1s6mm6cm-20um-40um-sl", ChannelCount: 16, ShankCount: 1},
	"32c-1s6mm6cm-15um-26um-sl":  {ID: "32c-1s6mm6cm-15um-26um-sl", ChannelCount: 32, ShankCount: 1},
	"32c-2s8mm6cm-20um-40um-dl":  {ID: "32c-2s8mm6cm-20um-40um-dl", ChannelCount: 32, ShankCount: 2},
	"64c-2s6mm6cm-20um-40um-dl":  {ID: "64c-2s6mm6cm-20um-40um-dl", ChannelCount: 64, ShankCount: 2},
	"64c-3s6mm6cm-20um-40um-sl":  {ID: "64c-3s6mm6cm-20um-40um-sl", ChannelCount: 64, ShankCount: 3},
	"64c-4s6mm6cm-20um-40um-dl":  {ID: "64c-4s6mm6cm-20um-40um-dl", ChannelCount: 64, ShankCount: 4},
	"96c-3s6mm6cm-20um-40um-sl":  {ID: "96c-3s6mm6cm-20um-40um-sl", ChannelCount: 96, ShankCount: 3},
	"128c-2s8mm6cm-20um-40um-dl": {ID: "128c-2s8mm6cm-20um-40um-dl", ChannelCount: 128, ShankCount: 2},
	"128c-4s6mm6cm-15um-26um-sl": {ID: "128c-4s6mm6cm-15um-26um-sl", ChannelCount: 128, ShankCount: 4},
	"128c-4s8mm6cm-20um-40um-sl": {ID: "128c-4s8mm6cm-20um-40um-sl", ChannelCount: 128, ShankCount: 4},
}

// Lookup returns the topology spec for a device type id.
func Lookup(id string) (Spec, bool) {
	spec, ok := catalog[id]
	return spec, ok
}

// ChannelCount returns the total channel count for a device type, or 0
// when the id is unknown or empty.
func ChannelCount(id string) int {
	return catalog[id].ChannelCount
}

// ShankCount returns the shank count for a device type, or 0 when the
// id is unknown or empty.
func ShankCount(id string) int {
	return catalog[id].ShankCount
}

// IsValid reports whether id names a supported device type.
func IsValid(id string) bool {
	_, ok := catalog[id]
	return ok
}

// Types returns every supported device type id in ascending order.
func Types() []string {
	ids := make([]string, 0, len(catalog))
	for id := range catalog {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

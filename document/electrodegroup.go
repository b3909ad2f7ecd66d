package document

import "strconv"

// NextElectrodeGroupID returns the id for a new electrode group. Ids
// are caller-supplied strings treated as a numeric sequence: the next
// id is max(numeric ids)+1, with non-numeric ids counting as 0. An
// empty group list yields "0".
func NextElectrodeGroupID(groups []ElectrodeGroup) string {
	if len(groups) == 0 {
		return "0"
	}
	max := 0
	for _, g := range groups {
		if n, err := strconv.Atoi(g.ID); err == nil && n > max {
			max = n
		}
	}
	return strconv.Itoa(max + 1)
}

// RemoveElectrodeGroup returns a copy of the document with the group
// removed and every channel-map entry owned by it cascade-deleted, so
// no orphaned maps remain. The receiver is not modified.
func (d *Document) RemoveElectrodeGroup(id string) *Document {
	out := d.Clone()

	groups := make([]ElectrodeGroup, 0, len(out.ElectrodeGroups))
	for _, g := range out.ElectrodeGroups {
		if g.ID != id {
			groups = append(groups, g)
		}
	}
	out.ElectrodeGroups = groups

	maps := make([]ChannelMapEntry, 0, len(out.ChannelMaps))
	for _, entry := range out.ChannelMaps {
		if entry.ElectrodeGroupID != id {
			maps = append(maps, entry)
		}
	}
	out.ChannelMaps = maps

	return out
}

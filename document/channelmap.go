package document

import (
	"fmt"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ChannelMap maps a logical channel index to a physical hardware
// channel number for one ntrode.
type ChannelMap map[int]int

// MarshalYAML emits the map with keys in ascending order so encoded
// documents are byte-for-byte stable across runs.
func (m ChannelMap) MarshalYAML() (any, error) {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range keys {
		var keyNode, valNode yaml.Node
		if err := keyNode.Encode(k); err != nil {
			return nil, err
		}
		if err := valNode.Encode(m[k]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &keyNode, &valNode)
	}
	return node, nil
}

// UnmarshalYAML accepts both plain and quoted integer keys, since
// hand-edited documents quote them inconsistently.
func (m *ChannelMap) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("channel map must be a mapping, got %s", value.ShortTag())
	}
	out := make(ChannelMap, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, err := strconv.Atoi(value.Content[i].Value)
		if err != nil {
			return fmt.Errorf("channel map key %q is not an integer", value.Content[i].Value)
		}
		var hw int
		if err := value.Content[i+1].Decode(&hw); err != nil {
			return fmt.Errorf("channel map value for key %d: %w", key, err)
		}
		out[key] = hw
	}
	*m = out
	return nil
}

// SortedKeys returns the map's channel indexes in ascending order.
// Consumers iterate through this so no map iteration order leaks into
// output.
func (m ChannelMap) SortedKeys() []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// ChannelMapEntry is the channel map recorded for one ntrode (one
// shank of an electrode group). Entries are owned by the document's
// ntrode_electrode_group_channel_map collection.
type ChannelMapEntry struct {
	NtrodeID         int        `yaml:"ntrode_id"`
	ElectrodeGroupID string     `yaml:"electrode_group_id"`
	BadChannels      []int      `yaml:"bad_channels"`
	Map              ChannelMap `yaml:"map"`
}

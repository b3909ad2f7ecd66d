package channelmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spikeworks/recmeta/document"
)

func tetrodeGroup(id string) document.ElectrodeGroup {
	return document.ElectrodeGroup{ID: id, DeviceType: "tetrode_12.5"}
}

func TestCheckCleanMap(t *testing.T) {
	findings := Check(
		[]document.ElectrodeGroup{tetrodeGroup("0")},
		[]document.ChannelMapEntry{{
			NtrodeID:         1,
			ElectrodeGroupID: "0",
			BadChannels:      []int{},
			Map:              document.ChannelMap{0: 5, 1: 6, 2: 7, 3: 8},
		}},
	)

	assert.Empty(t, findings)
}

func TestCheckDuplicateHardwareChannel(t *testing.T) {
	findings := Check(
		[]document.ElectrodeGroup{tetrodeGroup("0")},
		[]document.ChannelMapEntry{{
			NtrodeID:         1,
			ElectrodeGroupID: "0",
			Map:              document.ChannelMap{0: 5, 1: 5, 2: 7, 3: 8},
		}},
	)

	require.Len(t, findings, 1)
	assert.Equal(t, CodeDuplicateHardwareChan, findings[0].Code)
	assert.Equal(t, "ntrode_electrode_group_channel_map[0].map", findings[0].Path)
	assert.Contains(t, findings[0].Message, "hardware channel 5")
}

func TestCheckChannelOutOfRange(t *testing.T) {
	// A tetrode has 4 channels, so index 4 is out of range.
	findings := Check(
		[]document.ElectrodeGroup{tetrodeGroup("0")},
		[]document.ChannelMapEntry{{
			NtrodeID:         1,
			ElectrodeGroupID: "0",
			Map:              document.ChannelMap{1: 1, 2: 2, 3: 3, 4: 4},
		}},
	)

	require.Len(t, findings, 1)
	assert.Equal(t, CodeChannelOutOfRange, findings[0].Code)
	assert.Contains(t, findings[0].Message, "channel index 4")
}

func TestCheckNegativeChannelIndex(t *testing.T) {
	findings := Check(
		[]document.ElectrodeGroup{tetrodeGroup("0")},
		[]document.ChannelMapEntry{{
			NtrodeID:         1,
			ElectrodeGroupID: "0",
			Map:              document.ChannelMap{-1: 0, 0: 1},
		}},
	)

	require.Len(t, findings, 1)
	assert.Equal(t, CodeChannelOutOfRange, findings[0].Code)
}

func TestCheckBadChannelNotInMap(t *testing.T) {
	findings := Check(
		[]document.ElectrodeGroup{tetrodeGroup("0")},
		[]document.ChannelMapEntry{{
			NtrodeID:         1,
			ElectrodeGroupID: "0",
			BadChannels:      []int{1, 7},
			Map:              document.ChannelMap{0: 0, 1: 1, 2: 2, 3: 3},
		}},
	)

	require.Len(t, findings, 1)
	assert.Equal(t, CodeBadChannelNotInMap, findings[0].Code)
	assert.Equal(t, "ntrode_electrode_group_channel_map[0].bad_channels", findings[0].Path)
	assert.Contains(t, findings[0].Message, "bad channel 7")
}

func TestCheckUnknownGroupSkipsRangeButNotDuplicates(t *testing.T) {
	// The owning group is missing entirely, so no topology is known.
	// Range checking is skipped (device validity is reported
	// elsewhere) but duplicate wiring is still detected.
	findings := Check(
		nil,
		[]document.ChannelMapEntry{{
			NtrodeID:         1,
			ElectrodeGroupID: "9",
			Map:              document.ChannelMap{0: 5, 1: 5, 2: 999},
		}},
	)

	require.Len(t, findings, 1)
	assert.Equal(t, CodeDuplicateHardwareChan, findings[0].Code)
}

func TestCheckMultipleEntriesIndexedPaths(t *testing.T) {
	findings := Check(
		[]document.ElectrodeGroup{tetrodeGroup("0"), tetrodeGroup("1")},
		[]document.ChannelMapEntry{
			{NtrodeID: 1, ElectrodeGroupID: "0", Map: document.ChannelMap{0: 0, 1: 1, 2: 2, 3: 3}},
			{NtrodeID: 2, ElectrodeGroupID: "1", Map: document.ChannelMap{0: 4, 1: 4}},
		},
	)

	require.Len(t, findings, 1)
	assert.Equal(t, "ntrode_electrode_group_channel_map[1].map", findings[0].Path)
}

func TestCheckDeterministicOrder(t *testing.T) {
	groups := []document.ElectrodeGroup{tetrodeGroup("0")}
	entries := []document.ChannelMapEntry{{
		NtrodeID:         1,
		ElectrodeGroupID: "0",
		BadChannels:      []int{9, 8},
		Map:              document.ChannelMap{0: 1, 1: 1, 2: 1, 7: 0},
	}}

	first := Check(groups, entries)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Check(groups, entries))
	}
}

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spikeworks/recmeta/channelmap"
	"github.com/spikeworks/recmeta/codec"
)

func newGenMapsCmd() *cobra.Command {
	var force bool
	var outPath string

	cmd := &cobra.Command{
		Use:   "genmaps <file>",
		Short: "Generate ntrode channel maps from the document's electrode groups",
		Long:  "Genmaps derives one identity channel map per shank for every electrode group\nwith a recognized device type. Regenerating is destructive to hand-edited\nmaps, so a document that already carries maps is only overwritten with\n--force.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			doc, err := codec.Decode(text)
			if err != nil {
				return err
			}

			if len(doc.ChannelMaps) > 0 && !force {
				return fmt.Errorf("document already has %d channel map(s); pass --force to overwrite",
					len(doc.ChannelMaps))
			}

			out := doc.Clone()
			out.ChannelMaps = channelmap.GenerateAll(out.ElectrodeGroups)

			data, err := codec.Encode(out)
			if err != nil {
				return err
			}

			if outPath == "" {
				outPath = args[0]
			}
			if err := os.WriteFile(outPath, data, 0644); err != nil {
				return fmt.Errorf("write document: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "generated %d channel map(s) for %d electrode group(s) -> %s\n",
				len(out.ChannelMaps), len(out.ElectrodeGroups), outPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite channel maps the document already carries")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output path (default: rewrite the input file)")

	return cmd
}

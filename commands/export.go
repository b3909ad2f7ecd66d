package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/spikeworks/recmeta/codec"
	"github.com/spikeworks/recmeta/validation"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Re-encode a metadata document deterministically under its canonical filename",
		Long:  "Export validates the document and blocks while any error-severity issue\nexists. A clean document is re-encoded deterministically and written to the\nconfigured output directory under its canonical filename.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			text, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			raw, err := codec.DecodeRaw(text)
			if err != nil {
				return err
			}

			issues := validation.Validate(raw)
			blocking := validation.HasErrors(issues)
			if !blocking && cfg.Validation.Strict && len(issues) > 0 {
				blocking = true
			}
			if blocking {
				report := NewReport()
				report.Add(FileReport{Path: args[0], Issues: issues})
				report.Render(cmd.OutOrStdout())
				return fmt.Errorf("export blocked: document has validation errors")
			}

			doc, err := codec.Decode(text)
			if err != nil {
				return err
			}

			data, err := codec.Encode(doc)
			if err != nil {
				return err
			}

			outPath := filepath.Join(cfg.Output.Dir, codec.FormatFilename(doc))
			if err := os.WriteFile(outPath, data, 0644); err != nil {
				return fmt.Errorf("write exported document: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "exported %s -> %s\n", args[0], outPath)
			return nil
		},
	}

	return cmd
}

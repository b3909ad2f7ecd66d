package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/spikeworks/recmeta/codec"
	"github.com/spikeworks/recmeta/reconcile"
	"github.com/spikeworks/recmeta/validation"
)

func newImportCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a metadata document, reconciling invalid fields with defaults",
		Long:  "Import decodes an externally produced metadata document, validates it, and\naccepts it field by field: fields with validation errors or type mismatches\nfall back to their defaults and are reported. Malformed YAML aborts the\nimport entirely.",
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
				// A parse error is fatal to the import; it is never
				// reconciled away.
				return err
			}

			issues := validation.Validate(raw)
			result := reconcile.Reconcile(raw, issues)

			for _, excluded := range result.Excluded {
				slog.Warn("Field excluded from import",
					slog.String("field", excluded.Field),
					slog.String("reason", excluded.Reason))
			}

			data, err := codec.Encode(result.Document)
			if err != nil {
				return err
			}

			if outPath == "" {
				outPath = filepath.Join(cfg.Output.Dir, codec.FormatFilename(result.Document))
			}
			if err := os.WriteFile(outPath, data, 0644); err != nil {
				return fmt.Errorf("write imported document: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "imported %s -> %s (%d field(s) reset to defaults)\n",
				args[0], outPath, len(result.Excluded))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output path (default: canonical filename in the configured output dir)")

	return cmd
}

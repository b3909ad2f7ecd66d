package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spikeworks/recmeta/codec"
	"github.com/spikeworks/recmeta/validation"
)

func newValidateCmd() *cobra.Command {
	var reportPath string

	cmd := &cobra.Command{
		Use:   "validate <pattern>...",
		Short: "Validate metadata documents against the schema and business rules",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			files, err := ResolveFiles(args)
			if err != nil {
				return err
			}

			report := NewReport()
			for _, path := range files {
				report.Add(validateFile(path))
			}

			report.Render(cmd.OutOrStdout())

			if reportPath != "" {
				if err := report.WriteYAML(reportPath); err != nil {
					return err
				}
			}

			if report.Errors > 0 {
				return fmt.Errorf("validation failed: %d error(s)", report.Errors)
			}
			if cfg.Validation.Strict && report.Warnings > 0 {
				return fmt.Errorf("validation failed in strict mode: %d warning(s)", report.Warnings)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&reportPath, "report", "", "write a YAML validation report to this path")

	return cmd
}

// validateFile decodes and validates a single metadata file. Parse
// failures are reported, not fatal to the batch.
func validateFile(path string) FileReport {
	file := FileReport{Path: path}

	text, err := os.ReadFile(path)
	if err != nil {
		file.ParseError = err.Error()
		return file
	}

	raw, err := codec.DecodeRaw(text)
	if err != nil {
		var parseErr *codec.ParseError
		if errors.As(err, &parseErr) {
			file.ParseError = parseErr.Error()
			return file
		}
		file.ParseError = err.Error()
		return file
	}

	file.Issues = validation.Validate(raw)
	return file
}

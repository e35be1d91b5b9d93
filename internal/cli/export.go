package cli

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/periodic/pkg/element"
	"github.com/matzehuels/periodic/pkg/errors"
	"github.com/matzehuels/periodic/pkg/pipeline"
)

// exportCommand creates the export command, which dumps the raw catalog.
func (c *CLI) exportCommand() *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the element catalog as JSON or YAML",
		Example: `  periodic export
  periodic export -f yaml -o elements.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateDataFormat(format); err != nil {
				return err
			}
			elements := element.Default().All()
			if output == "" {
				return encode(cmd.OutOrStdout(), format, elements)
			}

			var buf bytes.Buffer
			if err := encode(&buf, format, elements); err != nil {
				return err
			}
			if err := writeOutput(output, buf.Bytes()); err != nil {
				return err
			}
			printSuccess("Exported %d elements", len(elements))
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", pipeline.FormatJSON, "output format: json or yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

// validateDataFormat accepts the two data formats.
func validateDataFormat(format string) error {
	switch format {
	case pipeline.FormatJSON, pipeline.FormatYAML:
		return nil
	}
	return errors.New(errors.ErrCodeInvalidFormat, "unknown data format %q (want json or yaml)", format)
}

// encode writes v to w as indented JSON or YAML.
func encode(w io.Writer, format string, v any) error {
	switch format {
	case pipeline.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode yaml")
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode json")
		}
		return nil
	}
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/periodic/pkg/element"
	"github.com/matzehuels/periodic/pkg/pipeline"
	"github.com/matzehuels/periodic/pkg/render/sink"
	"github.com/matzehuels/periodic/pkg/table"
)

// classification is the classify command's output document.
type classification struct {
	Filter       string      `json:"filter" yaml:"filter"`
	Counts       sink.Counts `json:"counts" yaml:"counts"`
	table.Groups `yaml:",inline"`
}

func newClassification(g table.Groups, f table.Filter) classification {
	nonNil := func(es []element.Element) []element.Element {
		if es == nil {
			return []element.Element{}
		}
		return es
	}
	return classification{
		Filter: f.String(),
		Counts: sink.Counts{
			Main:        len(g.Main),
			Lanthanides: len(g.Lanthanides),
			Actinides:   len(g.Actinides),
		},
		Groups: table.Groups{
			Main:        nonNil(g.Main),
			Lanthanides: nonNil(g.Lanthanides),
			Actinides:   nonNil(g.Actinides),
		},
	}
}

// classifyCommand creates the classify command, which prints the three
// element groups as data.
func (c *CLI) classifyCommand() *cobra.Command {
	var category, output string

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Print the main table, lanthanide and actinide groups",
		Example: `  periodic classify
  periodic classify --category metalloid -o yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateDataFormat(output); err != nil {
				return err
			}
			opts := pipeline.Options{Category: category, Logger: c.Logger}
			if err := opts.ValidateAndSetDefaults(); err != nil {
				return err
			}
			runner := pipeline.NewRunner(nil, nil, c.Logger)
			g, err := runner.Classify(cmd.Context(), opts)
			if err != nil {
				return err
			}
			return encode(cmd.OutOrStdout(), output, newClassification(g, opts.Filter()))
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "keep only one category")
	cmd.Flags().StringVarP(&output, "output", "o", pipeline.FormatJSON, "output format: json or yaml")
	_ = cmd.RegisterFlagCompletionFunc("category", completeCategories)
	return cmd
}

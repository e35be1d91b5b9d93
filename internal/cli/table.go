package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/periodic/pkg/element"
	"github.com/matzehuels/periodic/pkg/pipeline"
	"github.com/matzehuels/periodic/pkg/table"
)

// tableCommand creates the table command, which prints a colored grid.
func (c *CLI) tableCommand() *cobra.Command {
	var category, theme string

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the periodic table as a colored terminal grid",
		Example: `  periodic table
  periodic table --category noble-gas
  periodic table --theme light`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.renderDefaults()
			opts.Category = category
			if theme != "" {
				opts.Theme = theme
			}
			return c.runTable(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "show only one category")
	cmd.Flags().StringVar(&theme, "theme", "", "color theme: light or dark")
	_ = cmd.RegisterFlagCompletionFunc("category", completeCategories)
	return cmd
}

func (c *CLI) runTable(cmd *cobra.Command, opts pipeline.Options) error {
	opts.Logger = c.Logger
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	runner := pipeline.NewRunner(nil, nil, c.Logger)
	groups, err := runner.Classify(cmd.Context(), opts)
	if err != nil {
		return err
	}

	placements := table.Place(groups)
	g := newGrid(placements, opts.ResolvedTheme())

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, StyleTitle.Render("Periodic Table")+" "+StyleDim.Render(opts.Filter().String()))
	fmt.Fprintln(out, g.render(""))
	if len(placements) == 0 {
		fmt.Fprintln(out, StyleDim.Render("no elements in this category"))
		return nil
	}
	fmt.Fprintln(out, legend(placements))
	fmt.Fprintln(out, statsLine(len(groups.Main), len(groups.Lanthanides), len(groups.Actinides), false))
	return nil
}

// showCommand creates the show command, which prints one element's card.
func (c *CLI) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <symbol|number|name>",
		Short: "Show the detail card of one element",
		Example: `  periodic show Fe
  periodic show 26
  periodic show helium`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := pipeline.NewRunner(nil, nil, c.Logger)
			e, err := runner.Catalog.Lookup(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), detailCard(placementOf(e)))
			return nil
		},
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			var syms []string
			for _, e := range element.Default().All() {
				syms = append(syms, e.Symbol)
			}
			return syms, cobra.ShellCompDirectiveNoFileComp
		},
	}
}

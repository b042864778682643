package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/moditems/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newDescribeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe [items...]",
		Short: "Show item definitions as the host would present them",
		Long: "Show item definitions as the host would present them.\n" +
			"Without arguments the registered identifiers are listed.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := c.app.Load(cmd.Context(), c.loadOptions(false)); err != nil {
				return err
			}

			p := newPrinter(cmd.OutOrStdout())
			if len(args) == 0 {
				for _, id := range c.app.Definitions() {
					p.line("%s", id)
				}
				return nil
			}

			var base domain.Presentation
			base.Title, _ = cmd.Flags().GetString("title")
			base.Description, _ = cmd.Flags().GetString("description")
			base.Icon, _ = cmd.Flags().GetString("icon")
			base.Cost, _ = cmd.Flags().GetInt("cost")

			for _, id := range args {
				def, ok := c.app.Definition(id)
				if !ok {
					return zerr.With(domain.ErrUnknownDefinition, "item", id)
				}
				p.definition(def.ID, c.app.Present(id, base), def)
			}
			return nil
		},
	}
	cmd.Flags().String("title", "", "Base title shown when the definition has none")
	cmd.Flags().String("description", "", "Base description shown when the definition has none")
	cmd.Flags().String("icon", "", "Base icon shown when the definition has none")
	cmd.Flags().Int("cost", 0, "Base cost; always replaced by the definition's cost")
	return cmd
}

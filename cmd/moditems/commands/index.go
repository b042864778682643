package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/moditems/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newIndexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "index [entities...]",
		Short: "Show how each entity's stats graph is indexed",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			world, err := c.app.Load(cmd.Context(), c.loadOptions(true))
			if err != nil {
				return err
			}
			if world == nil {
				return nil
			}

			names := args
			if len(names) == 0 {
				names = world.Names()
			}

			p := newPrinter(cmd.OutOrStdout())
			for _, name := range names {
				e, ok := world.Entity(name)
				if !ok {
					return zerr.With(domain.ErrEntityNotFound, "entity", name)
				}
				in, err := c.app.Inspect(e)
				if err != nil {
					p.line("%s: %s", name, err.Error())
					continue
				}
				p.report(in)
			}
			return nil
		},
	}
}

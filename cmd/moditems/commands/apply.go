package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/moditems/internal/core/domain"
	"go.trai.ch/moditems/internal/core/ports"
)

func (c *CLI) newApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply [items...]",
		Short: "Apply items to an entity and print its stats",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return nil
			}
			entity, _ := cmd.Flags().GetString("entity")

			world, err := c.app.Load(cmd.Context(), c.loadOptions(true))
			if err != nil {
				return err
			}

			var target ports.Entity
			if world != nil {
				if e, ok := world.Entity(entity); ok {
					target = e
				}
			}

			p := newPrinter(cmd.OutOrStdout())
			failed := false
			for _, id := range args {
				res := c.app.ApplyItem(cmd.Context(), id, target)
				p.result(id, entity, res)
				failed = failed || res.Aborted()
			}

			if target != nil {
				if in, err := c.app.Inspect(target); err == nil {
					p.stats(in)
				}
			}

			if failed {
				return domain.ErrApplyFailed
			}
			return nil
		},
	}
	cmd.Flags().StringP("entity", "e", "", "Name of the entity receiving the items")
	_ = cmd.MarkFlagRequired("entity")
	return cmd
}

package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Reload item definitions whenever they change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := c.app.Load(cmd.Context(), c.loadOptions(false)); err != nil {
				return err
			}
			return c.app.Watch(cmd.Context(), c.defsDir)
		},
	}
}

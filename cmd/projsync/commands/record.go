package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newRecordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "record [paths...]",
		Short: "Record that project files were written",
		Args:  cobra.ArbitraryArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			return c.app.RecordGeneration(args)
		},
	}
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newOwnerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "owner <sourcePath>",
		Short: "Show the assembly compiling a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, err := c.app.Owner(args[0])
			if err != nil {
				return err
			}
			if name == "" {
				name = "no assembly"
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), name)
			return err
		},
	}
}

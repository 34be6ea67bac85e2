package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/projsync/internal/core/domain"
)

func (c *CLI) newFlagsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flags",
		Short: "Show the project generation flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.printFlags(cmd)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle <names...>",
		Short: "Toggle generation flags",
		Long:  "Toggle generation flags. Known flags: " + strings.Join(domain.FlagNames(), ", "),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.ToggleFlags(args); err != nil {
				return err
			}
			return c.printFlags(cmd)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Clear every generation flag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.app.ResetFlags(); err != nil {
				return err
			}
			return c.printFlags(cmd)
		},
	})

	return cmd
}

func (c *CLI) printFlags(cmd *cobra.Command) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), c.app.Flags().String())
	return err
}

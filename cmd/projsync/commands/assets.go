package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newAssetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assets",
		Short: "List the asset paths of the project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			paths, err := c.app.Assets()
			if err != nil {
				return err
			}
			return printLines(cmd, paths)
		},
	}
}

func (c *CLI) newAnalyzersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyzers",
		Short: "List the Roslyn analyzer plugins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			paths, err := c.app.Analyzers()
			if err != nil {
				return err
			}
			return printLines(cmd, paths)
		},
	}
}

func printLines(cmd *cobra.Command, lines []string) error {
	out := cmd.OutOrStdout()
	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}

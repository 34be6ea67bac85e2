package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/projsync/internal/core/domain"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Report whether project files need to be regenerated",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := c.app.Status()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !report.NeedsRegeneration() {
				_, _ = fmt.Fprintln(out, "up to date")
			}
			if report.FilesChanged {
				_, _ = fmt.Fprintln(out, "project files changed since last generation")
			}
			if report.CatalogChanged {
				_, _ = fmt.Fprintln(out, "assemblies or flags changed since last generation")
			}

			exitCode, _ := cmd.Flags().GetBool("exit-code")
			if exitCode && report.NeedsRegeneration() {
				return domain.ErrRegenerationRequired
			}
			return nil
		},
	}
	cmd.Flags().BoolP("exit-code", "e", false, "Exit with status 1 when regeneration is needed")
	return cmd
}

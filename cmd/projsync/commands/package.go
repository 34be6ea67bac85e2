package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newPackageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "package <assetPath>",
		Short: "Show the package owning an asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := c.app.Package(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if report.Info == nil {
				_, _ = fmt.Fprintln(out, "not in a package")
				return nil
			}
			_, _ = fmt.Fprintf(out, "%s\t%s", report.Info.PackageID(), report.Info.Source)
			if report.Excluded {
				_, _ = fmt.Fprint(out, "\texcluded")
			}
			_, _ = fmt.Fprintln(out)
			return nil
		},
	}
}

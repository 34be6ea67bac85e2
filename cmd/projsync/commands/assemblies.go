package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newAssembliesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assemblies",
		Short: "List the projects that would be generated",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			projects, err := c.app.Assemblies()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, p := range projects {
				_, _ = fmt.Fprintf(out, "%s\t%s\t%d files", p.Name, p.Entry.OutputPath, len(p.Entry.SourceFiles))
				if p.Entry.RootNamespace != "" {
					_, _ = fmt.Fprintf(out, "\tnamespace %s", p.Entry.RootNamespace)
				}
				_, _ = fmt.Fprintln(out)
			}
			return nil
		},
	}
}

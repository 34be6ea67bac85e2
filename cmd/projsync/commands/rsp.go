package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func (c *CLI) newResponseFileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rsp <path>",
		Short: "Parse a compiler response file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			refDirs, _ := cmd.Flags().GetStringSlice("ref-dir")
			data, err := c.app.ResponseFile(args[0], refDirs)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printList(out, "define", data.Defines)
			printList(out, "reference", data.FullPathReferences)
			printList(out, "argument", data.OtherArguments)
			printList(out, "error", data.Errors)
			if data.Unsafe {
				_, _ = fmt.Fprintln(out, "unsafe")
			}
			return nil
		},
	}
	cmd.Flags().StringSlice("ref-dir", nil, "Directories searched for references not found in the project")
	return cmd
}

func printList(w io.Writer, label string, values []string) {
	for _, v := range values {
		_, _ = fmt.Fprintf(w, "%s\t%s\n", label, v)
	}
}

// Command symgql is a small front end for the symgql library: it collapses
// edges/node pagination wrappers in response JSON and syntax-checks query
// documents.  Input comes from a file argument or stdin.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/symgql/symgql"
)

func main() {
	root := &cobra.Command{
		Use:          "symgql",
		Short:        "GraphQL query text utilities",
		SilenceUsage: true,
	}
	root.AddCommand(simplifyCommand(), checkCommand())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// readInput returns the contents of the named file, or of stdin when no
// file (or "-") is given.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(args[0])
}

func simplifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "simplify [file]",
		Short: "Collapse edges/node pagination wrappers in response JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			out, err := symgql.SimplifyJSON(data)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}
}

func checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check [file]",
		Short: "Syntax-check a GraphQL query document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			if err := symgql.CheckSyntax(string(data)); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return err
		},
	}
}

// slon - command line tool for the SLON data notation
//
// Subcommands:
//   fmt       parse SLON and re-emit it in canonical form
//   check     validate SLON input, reporting the first error
//   from-json convert a JSON document to SLON
//   to-json   convert a SLON document to JSON
//
// Each subcommand reads from the named file, or stdin when no file is
// given, and writes to stdout.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/slon-format/slon/slon"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "slon",
		Short:         "Work with SLON documents",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newFmtCmd(), newCheckCmd(), newFromJSONCmd(), newToJSONCmd())
	return root
}

// readInput returns the contents of the first arg as a file, or stdin
// when no args are given.
func readInput(args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}

func newFmtCmd() *cobra.Command {
	var sortKeys bool
	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Re-emit a SLON document in canonical form",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args)
			if err != nil {
				return err
			}
			v, err := slon.Parse(string(data))
			if err != nil {
				return err
			}
			out, err := slon.EmitWithOptions(v, slon.EmitOptions{SortKeys: sortKeys})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&sortKeys, "sort", false, "emit object keys in sorted order")
	return cmd
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [file...]",
		Short: "Validate SLON documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					return err
				}
				if _, err := slon.Parse(string(data)); err != nil {
					return err
				}
				return nil
			}
			var failed bool
			for _, name := range args {
				data, err := os.ReadFile(name)
				if err == nil {
					_, err = slon.Parse(string(data))
				}
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", name, err)
					failed = true
				}
			}
			if failed {
				return fmt.Errorf("invalid input")
			}
			return nil
		},
	}
}

func newFromJSONCmd() *cobra.Command {
	var sortKeys bool
	cmd := &cobra.Command{
		Use:   "from-json [file]",
		Short: "Convert a JSON document to SLON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args)
			if err != nil {
				return err
			}
			v, err := slon.FromJSON(data)
			if err != nil {
				return err
			}
			out, err := slon.EmitWithOptions(v, slon.EmitOptions{SortKeys: sortKeys})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&sortKeys, "sort", false, "emit object keys in sorted order")
	return cmd
}

func newToJSONCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "to-json [file]",
		Short: "Convert a SLON document to JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args)
			if err != nil {
				return err
			}
			v, err := slon.Parse(string(data))
			if err != nil {
				return err
			}
			out, err := slon.ToJSON(v)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
}

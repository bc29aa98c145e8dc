package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dhamidi/arbor/arith"
	"github.com/dhamidi/arbor/format"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var includePositions bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a file (or - for stdin) and dump the syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args[0])
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			tree := arith.Parse(data)

			switch outputFormat {
			case "sexp":
				enc := format.NewSExpEncoder(os.Stdout)
				if includePositions {
					enc.WithPositions()
				}
				if err := enc.Encode(tree.RootNode()); err != nil {
					return fmt.Errorf("encode sexp: %w", err)
				}
				fmt.Println()
			case "json":
				enc := format.NewTreeJSONEncoder(os.Stdout)
				if err := enc.Encode(tree.RootNode()); err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
				fmt.Println()
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "sexp", "output format (sexp, json)")
	cmd.Flags().BoolVar(&includePositions, "positions", false, "include byte spans in sexp output")

	return cmd
}

func readInput(name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}

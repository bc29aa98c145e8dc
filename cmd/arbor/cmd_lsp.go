package main

import (
	"github.com/dhamidi/arbor/lsp"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

func newLSPCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			verbosity := 1
			if verbose {
				verbosity = 2
			}
			commonlog.Configure(verbosity, nil)
			server := lsp.NewLSPServer("0.1.0")
			return server.RunStdio()
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

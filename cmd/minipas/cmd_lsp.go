package main

import (
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	"github.com/xyproto/env/v2"

	"github.com/minipas/minipas/pascal/codebase"
)

const version = "0.1.0"

func newLSPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			commonlog.Configure(env.Int("MINIPAS_LOG_VERBOSITY", 1), nil)
			server := codebase.NewLSPServer(version)
			return server.RunStdio()
		},
	}
}

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lintwire-labs/lintwire/internal/engine"
	"github.com/lintwire-labs/lintwire/internal/lsp"
)

// NewLSPCommand creates the lsp command.
func NewLSPCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		Long: `Start the LSP server for editor integration.

The server communicates over stdin/stdout using JSON-RPC. Open documents
are annotated on every change; annotations are published as diagnostics
and suppression quick-fixes are served as code actions.`,
		Example: `  # Start LSP server (usually launched by an editor)
  lintwire lsp`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := ConfigFrom(cmd.Context())
			if cfg == nil {
				return fmt.Errorf("configuration not loaded")
			}
			logger := LoggerFrom(cmd.Context())

			eng := engine.NewRemote(cfg.Engine)
			server := lsp.NewServer(os.Stdin, os.Stdout, cfg, eng, logger)
			return server.Run()
		},
	}
}

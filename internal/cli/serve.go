package cli

import (
	"fmt"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/HendryAvila/caddie-iq/internal/logging"
	"github.com/HendryAvila/caddie-iq/internal/server"
)

// NewServeCommand runs the MCP server over stdio.
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server (stdio transport)",
		Long: `Start the MCP server on stdin/stdout. Add it to your AI tool's MCP config:

  {
    "mcpServers": {
      "caddie": {
        "command": "caddie",
        "args": ["serve"]
      }
    }
  }`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			// stdout carries the MCP protocol; logs must stay on stderr.
			log := logging.New(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())

			s, cleanup, err := server.New(cfg, log)
			defer cleanup()
			if err != nil {
				return fmt.Errorf("creating server: %w", err)
			}

			log.WithField("backend", cfg.Backend).Info("caddie-iq serving on stdio")
			return mcpserver.ServeStdio(s)
		},
	}
}

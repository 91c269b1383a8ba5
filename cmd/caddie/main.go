// Caddie IQ: an on-course golf caddie as an MCP server and CLI.
//
// Usage:
//
//	caddie serve              # Start MCP server (stdio transport)
//	caddie advise 152 --wind medium --wind-dir into
//	caddie round start --course salt-creek-retreat-in
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/HendryAvila/caddie-iq/internal/cli"
)

func main() {
	// Graceful shutdown on interrupt.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

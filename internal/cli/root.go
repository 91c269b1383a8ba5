// Package cli is the caddie command line. Besides `serve`, which runs the
// MCP server on stdio, every subcommand calls the same tool handlers the
// MCP server exposes and prints their markdown to the terminal.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spf13/cobra"

	"github.com/HendryAvila/caddie-iq/internal/config"
	"github.com/HendryAvila/caddie-iq/internal/logging"
	"github.com/HendryAvila/caddie-iq/internal/server"
)

// NewRootCommand creates and returns the root cobra command for caddie.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "caddie",
		Short: "Caddie IQ: on-course golf advice and stat tracking",
		Long: `Caddie IQ gives club and target advice for the next shot, tracks
fairways, greens in regulation and putts per course, and keeps a log of
played rounds.

Run "caddie serve" to expose it to an AI assistant over MCP (stdio), or use
the subcommands directly from a terminal.`,
		Version: server.Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
				color.NoColor = true
			}
		},
	}

	pf := cmd.PersistentFlags()
	pf.String("config", "", "Path to config file (default: <data-dir>/config.yaml)")
	pf.String("data-dir", "", "Directory for saved data (default: ~/.caddie)")
	pf.String("backend", "", "Store backend: file, sqlite or memory")
	pf.String("log-level", "", "Log level: trace, debug, info, warn, error")
	pf.Bool("no-color", false, "Disable colored output")

	cmd.AddCommand(NewServeCommand())
	cmd.AddCommand(NewAdviseCommand())
	cmd.AddCommand(NewOutcomeCommand())
	cmd.AddCommand(NewRoundCommand())
	cmd.AddCommand(NewStatsCommand())
	cmd.AddCommand(NewCoursesCommand())
	cmd.AddCommand(NewNoteCommand())
	cmd.AddCommand(NewBagCommand())
	cmd.AddCommand(NewProfileCommand())
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// Execute runs the root command with a context cancelled on interrupt.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// NewVersionCommand prints the build version.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "caddie-iq v%s\n", server.Version)
		},
	}
}

// loadConfig resolves the config file, then layers environment and
// explicitly set flags on top, in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()

	path, _ := flags.GetString("config")
	if path == "" {
		path = config.DefaultPath()
		if dir, _ := flags.GetString("data-dir"); dir != "" {
			path = filepath.Join(dir, config.FileName)
		}
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv(os.LookupEnv)
	cfg.MergeWithFlags(changedString(cmd, "data-dir"), changedString(cmd, "backend"), changedString(cmd, "log-level"))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// changedString returns the flag value only when the user set it.
func changedString(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

// withApp bootstraps the store and service for one command and closes
// them afterwards. Logs go to stderr so stdout stays clean.
func withApp(cmd *cobra.Command, fn func(app *server.App) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log := logging.New(cfg.LogLevel, cfg.LogFormat, cmd.ErrOrStderr())

	app, cleanup, err := server.Bootstrap(cfg, log)
	defer cleanup()
	if err != nil {
		return err
	}
	return fn(app)
}

type toolHandler interface {
	Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// runTool calls a tool handler with args and prints its text. A tool
// error becomes a command error carrying the tool's message.
func runTool(cmd *cobra.Command, h toolHandler, args map[string]any) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	req := mcp.CallToolRequest{}
	req.Params.Arguments = args

	result, err := h.Handle(ctx, req)
	if err != nil {
		return err
	}
	text := resultText(result)
	if result.IsError {
		return errors.New(text)
	}
	printMarkdown(cmd.OutOrStdout(), text)
	return nil
}

func resultText(result *mcp.CallToolResult) string {
	if result == nil {
		return ""
	}
	var parts []string
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			parts = append(parts, tc.Text)
		}
	}
	return strings.Join(parts, "\n")
}

// printMarkdown writes tool markdown, highlighting headings.
func printMarkdown(w io.Writer, text string) {
	heading := color.New(color.FgCyan, color.Bold)
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		if strings.HasPrefix(line, "#") {
			heading.Fprintln(w, line)
			continue
		}
		fmt.Fprintln(w, line)
	}
}

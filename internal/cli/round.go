package cli

import (
	"github.com/spf13/cobra"

	"github.com/HendryAvila/caddie-iq/internal/server"
	"github.com/HendryAvila/caddie-iq/internal/tools"
)

// NewRoundCommand groups the round lifecycle subcommands.
func NewRoundCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "round",
		Short: "Start, end and review rounds",
	}

	start := &cobra.Command{
		Use:   "start",
		Short: "Start a round (an active round is left unfinished)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			courseID, _ := cmd.Flags().GetString("course")
			return withApp(cmd, func(app *server.App) error {
				return runTool(cmd, tools.NewRoundStartTool(app.Service), map[string]any{"course_id": courseID})
			})
		},
	}
	start.Flags().String("course", "", "Course id (required)")
	_ = start.MarkFlagRequired("course")

	end := &cobra.Command{
		Use:   "end",
		Short: "Finish the active round",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(app *server.App) error {
				return runTool(cmd, tools.NewRoundEndTool(app.Service, app.Renderer), nil)
			})
		},
	}

	status := &cobra.Command{
		Use:   "status",
		Short: "Show the active round and recent history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(app *server.App) error {
				return runTool(cmd, tools.NewRoundStatusTool(app.Service, app.Renderer), nil)
			})
		},
	}

	cmd.AddCommand(start, end, status)
	return cmd
}

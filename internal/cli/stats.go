package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/HendryAvila/caddie-iq/internal/server"
	"github.com/HendryAvila/caddie-iq/internal/tools"
)

// NewStatsCommand shows or resets a course's stats.
func NewStatsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show the tracked stats for a course",
		Long: `Show the tracked stats for a course. With --reset the course's stats are
erased; --yes is required to confirm.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			courseID, _ := flags.GetString("course")
			reset, _ := flags.GetBool("reset")
			yes, _ := flags.GetBool("yes")

			if yes && !reset {
				return errors.New("--yes only applies with --reset")
			}

			return withApp(cmd, func(app *server.App) error {
				if reset {
					return runTool(cmd, tools.NewStatsResetTool(app.Service), map[string]any{
						"course_id": courseID,
						"confirm":   yes,
					})
				}
				return runTool(cmd, tools.NewStatsTool(app.Service, app.Renderer), map[string]any{"course_id": courseID})
			})
		},
	}

	cmd.Flags().String("course", "", "Course id (required)")
	cmd.Flags().Bool("reset", false, "Erase the course's stats")
	cmd.Flags().Bool("yes", false, "Confirm --reset")
	_ = cmd.MarkFlagRequired("course")

	return cmd
}

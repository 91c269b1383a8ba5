package cli

import (
	"github.com/spf13/cobra"

	"github.com/HendryAvila/caddie-iq/internal/server"
	"github.com/HendryAvila/caddie-iq/internal/tools"
)

// NewOutcomeCommand records one hole's result.
func NewOutcomeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "outcome",
		Short: "Record a hole result against the course stats and the active round",
		Long: `Record a hole result. Any subset of --tee, --gir and --putts is accepted;
an outcome with none of them is ignored.

Example:
  caddie outcome --course salt-creek-retreat-in --tee fairway --gir yes --putts 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			courseID, _ := flags.GetString("course")
			tee, _ := flags.GetString("tee")
			gir, _ := flags.GetString("gir")

			toolArgs := map[string]any{
				"course_id": courseID,
				"tee":       tee,
				"gir":       gir,
			}
			if flags.Changed("putts") {
				putts, _ := flags.GetInt("putts")
				toolArgs["putts"] = float64(putts)
			}

			return withApp(cmd, func(app *server.App) error {
				return runTool(cmd, tools.NewRecordOutcomeTool(app.Service, app.Renderer), toolArgs)
			})
		},
	}

	cmd.Flags().String("course", "", "Course id (required)")
	cmd.Flags().String("tee", "", "Tee shot result: fairway, left, right, short or long")
	cmd.Flags().String("gir", "", "Green in regulation: yes or no")
	cmd.Flags().Int("putts", 0, "Number of putts")
	_ = cmd.MarkFlagRequired("course")

	return cmd
}

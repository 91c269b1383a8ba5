package cli

import (
	"github.com/spf13/cobra"

	"github.com/HendryAvila/caddie-iq/internal/server"
	"github.com/HendryAvila/caddie-iq/internal/tools"
)

// noteFlags maps flag names to caddie_hole_note_save arguments.
var noteFlags = map[string]string{
	"club":   "preferred_club",
	"miss":   "usual_miss",
	"target": "safe_target",
	"danger": "danger_note",
	"cue":    "mental_cue",
}

// NewNoteCommand shows, saves or deletes the notes for a hole.
func NewNoteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Show the saved notes for a hole",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			toolArgs := holeArgs(cmd)
			return withApp(cmd, func(app *server.App) error {
				return runTool(cmd, tools.NewHoleNoteGetTool(app.Service, app.Renderer), toolArgs)
			})
		},
	}
	addHoleFlags(cmd)

	set := &cobra.Command{
		Use:     "set",
		Short:   "Save notes for a hole; the saved note is replaced",
		Example: `  caddie note set --course salt-creek-retreat-in --hole 7 --club 6i --miss right --cue "smooth tempo"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			toolArgs := holeArgs(cmd)
			for flag, key := range noteFlags {
				v, _ := cmd.Flags().GetString(flag)
				toolArgs[key] = v
			}
			return withApp(cmd, func(app *server.App) error {
				return runTool(cmd, tools.NewHoleNoteSaveTool(app.Service), toolArgs)
			})
		},
	}
	addHoleFlags(set)
	set.Flags().String("club", "", "Preferred club")
	set.Flags().String("miss", "", "Usual miss")
	set.Flags().String("target", "", "Safe target")
	set.Flags().String("danger", "", "Trouble to remember")
	set.Flags().String("cue", "", "Mental cue")

	del := &cobra.Command{
		Use:     "delete",
		Aliases: []string{"rm"},
		Short:   "Forget the saved notes for a hole",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			toolArgs := holeArgs(cmd)
			return withApp(cmd, func(app *server.App) error {
				return runTool(cmd, tools.NewHoleNoteDeleteTool(app.Service), toolArgs)
			})
		},
	}
	addHoleFlags(del)

	cmd.AddCommand(set, del)
	return cmd
}

func addHoleFlags(cmd *cobra.Command) {
	cmd.Flags().String("course", "", "Course id (required)")
	cmd.Flags().Int("hole", 0, "Hole number 1-18 (required)")
	_ = cmd.MarkFlagRequired("course")
	_ = cmd.MarkFlagRequired("hole")
}

func holeArgs(cmd *cobra.Command) map[string]any {
	courseID, _ := cmd.Flags().GetString("course")
	hole, _ := cmd.Flags().GetInt("hole")
	return map[string]any{"course_id": courseID, "hole": float64(hole)}
}

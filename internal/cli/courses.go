package cli

import (
	"github.com/spf13/cobra"

	"github.com/HendryAvila/caddie-iq/internal/server"
	"github.com/HendryAvila/caddie-iq/internal/tools"
)

// NewCoursesCommand lists the known courses.
func NewCoursesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "courses",
		Short: "List the courses and their ids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(app *server.App) error {
				return runTool(cmd, tools.NewCoursesTool(app.Service, app.Renderer), nil)
			})
		},
	}
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/HendryAvila/caddie-iq/internal/server"
	"github.com/HendryAvila/caddie-iq/internal/tools"
)

// profileFlags maps flag names to caddie_profile_save arguments.
var profileFlags = map[string]string{
	"name":         "name",
	"handicap":     "handicap",
	"shape":        "shape",
	"avatar-color": "avatar_color",
	"avatar-tone":  "avatar_tone",
	"avatar-hat":   "avatar_hat",
}

// NewProfileCommand shows or updates the player profile.
func NewProfileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show the player profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(app *server.App) error {
				return runTool(cmd, tools.NewProfileGetTool(app.Service, app.Renderer), nil)
			})
		},
	}

	set := &cobra.Command{
		Use:     "set",
		Short:   "Update profile fields; unset flags keep their saved value",
		Example: `  caddie profile set --name "Sam" --handicap 12.4 --shape draw`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			toolArgs := map[string]any{}
			for flag, key := range profileFlags {
				if cmd.Flags().Changed(flag) {
					v, _ := cmd.Flags().GetString(flag)
					toolArgs[key] = v
				}
			}
			return withApp(cmd, func(app *server.App) error {
				return runTool(cmd, tools.NewProfileSaveTool(app.Service, app.Renderer), toolArgs)
			})
		},
	}
	set.Flags().String("name", "", "Player name")
	set.Flags().String("handicap", "", "Handicap index")
	set.Flags().String("shape", "", "Typical shot shape, e.g. draw, fade, straight")
	set.Flags().String("avatar-color", "", "Avatar color as a CSS hex value")
	set.Flags().String("avatar-tone", "", "Avatar skin tone")
	set.Flags().String("avatar-hat", "", "Avatar hat style")

	cmd.AddCommand(set)
	return cmd
}

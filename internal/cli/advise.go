package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/HendryAvila/caddie-iq/internal/server"
	"github.com/HendryAvila/caddie-iq/internal/tools"
)

// NewAdviseCommand asks the caddie about the next shot.
func NewAdviseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "advise <distance>",
		Short: "Get club and target advice for a shot",
		Long: `Get club and target advice for a shot. The distance is in yards and may
carry a unit, e.g. "152" or "152yds".

Examples:
  caddie advise 150
  caddie advise 165 --course salt-creek-retreat-in --hole 7 --wind medium --wind-dir into
  caddie advise 140 --lie rough --hazard left --hazard short`,
		Args: cobra.ExactArgs(1),
		RunE: runAdvise,
	}

	cmd.Flags().String("course", "", "Course id (see \"caddie courses\")")
	cmd.Flags().Int("hole", 0, "Hole number 1-18")
	cmd.Flags().Int("par", 0, "Par of the hole (default: the course's par)")
	cmd.Flags().String("lie", "", "Lie: fairway, rough, sand or other")
	cmd.Flags().String("wind", "", "Wind strength: none, light, medium or strong")
	cmd.Flags().String("wind-dir", "", "Wind direction: none, into, with, cross-left or cross-right")
	cmd.Flags().StringSlice("hazard", nil, "Trouble around the target: left, right, short, long (repeatable)")

	return cmd
}

func runAdvise(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	toolArgs := map[string]any{"distance": args[0]}

	for flag, key := range map[string]string{
		"course":   "course_id",
		"lie":      "lie",
		"wind":     "wind_strength",
		"wind-dir": "wind_direction",
	} {
		if v, _ := flags.GetString(flag); v != "" {
			toolArgs[key] = v
		}
	}
	for flag, key := range map[string]string{"hole": "hole", "par": "par"} {
		if flags.Changed(flag) {
			v, _ := flags.GetInt(flag)
			toolArgs[key] = float64(v)
		}
	}

	hazards, _ := flags.GetStringSlice("hazard")
	for _, h := range hazards {
		h = strings.ToLower(strings.TrimSpace(h))
		switch h {
		case "left", "right", "short", "long":
			toolArgs["hazard_"+h] = true
		default:
			return fmt.Errorf("unknown hazard %q: use left, right, short or long", h)
		}
	}

	return withApp(cmd, func(app *server.App) error {
		return runTool(cmd, tools.NewAdviceTool(app.Service, app.Renderer), toolArgs)
	})
}

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/HendryAvila/caddie-iq/internal/server"
	"github.com/HendryAvila/caddie-iq/internal/tools"
)

// NewBagCommand manages the player's clubs.
func NewBagCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bag",
		Short: "List, save and remove clubs in the bag",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List clubs, longest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(app *server.App) error {
				return runTool(cmd, tools.NewBagListTool(app.Service, app.Renderer), nil)
			})
		},
	}

	save := &cobra.Command{
		Use:   "save <club> <carry>",
		Short: "Save a club with its carry in yards",
		Example: `  caddie bag save 7i 155
  caddie bag save driver 245 --label "Big Bertha"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			carry, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("carry must be a whole number of yards, got %q", args[1])
			}
			label, _ := cmd.Flags().GetString("label")
			note, _ := cmd.Flags().GetString("note")

			return withApp(cmd, func(app *server.App) error {
				return runTool(cmd, tools.NewBagSaveTool(app.Service), map[string]any{
					"club":  args[0],
					"carry": float64(carry),
					"label": label,
					"note":  note,
				})
			})
		},
	}
	save.Flags().String("label", "", "Display name for the club")
	save.Flags().String("note", "", "Free-text note")

	remove := &cobra.Command{
		Use:     "delete <club>",
		Aliases: []string{"rm"},
		Short:   "Remove a club",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(app *server.App) error {
				return runTool(cmd, tools.NewBagDeleteTool(app.Service), map[string]any{"club": args[0]})
			})
		},
	}

	cmd.AddCommand(list, save, remove)
	return cmd
}

package favorites

import (
	"fmt"
	"strconv"

	"librarydesk/internal/app/client"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <id>",
	Short: "Add a record to favorites",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid media id: %q", args[0])
		}

		if err := app.HTTP.AddFavorite(cmd.Context(), id); err != nil {
			return err
		}

		color.Green("✓ Media item %d added to favorites", id)
		return nil
	},
}

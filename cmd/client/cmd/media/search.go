package media

import (
	"fmt"
	"strings"

	"librarydesk/internal/app/client"

	"github.com/spf13/cobra"
)

var searchFormat string

var searchCmd = &cobra.Command{
	Use:   "search <name>",
	Short: "Search records by exact name",
	Long:  `Find every record whose name matches exactly, ignoring case.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		name := strings.Join(args, " ")
		items, err := app.HTTP.SearchMedia(cmd.Context(), name)
		if err != nil {
			return err
		}

		if len(items) == 0 {
			fmt.Printf("No media found with exact name: %q\n", name)
			return nil
		}

		return printMediaList(items, searchFormat)
	},
}

func init() {
	searchCmd.Flags().StringVarP(&searchFormat, "format", "f", "table", "output format (simple, table, json)")
}

package media

import (
	"librarydesk/internal/app/client"
	"librarydesk/internal/domain/media"

	"github.com/spf13/cobra"
)

var (
	listCategory string
	listFormat   string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog records",
	Long:  `List all records, or only those in one category (case-insensitive exact match).`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		var items []media.Media
		if listCategory != "" {
			items, err = app.HTTP.MediaByCategory(cmd.Context(), listCategory)
		} else {
			items, err = app.HTTP.ListMedia(cmd.Context())
		}
		if err != nil {
			return err
		}

		return printMediaList(items, listFormat)
	},
}

func init() {
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "filter by category (Book, Film, Magazine, ...)")
	listCmd.Flags().StringVarP(&listFormat, "format", "f", "table", "output format (simple, table, json)")
}

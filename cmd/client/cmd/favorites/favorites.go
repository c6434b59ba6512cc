package favorites

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"librarydesk/internal/app/client"
	"librarydesk/internal/domain/media"

	"github.com/spf13/cobra"
)

// FavoritesCmd is the parent command for the favorites operations.
var FavoritesCmd = &cobra.Command{
	Use:   "favorites",
	Short: "Manage favorited records",
}

var listFormat string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List favorited records",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		items, err := app.HTTP.Favorites(cmd.Context())
		if err != nil {
			return err
		}

		if listFormat == "json" {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(items)
		}

		printFavoritesTable(items)
		return nil
	},
}

var idsCmd = &cobra.Command{
	Use:   "ids",
	Short: "List favorite ids only",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		ids, err := app.HTTP.FavoriteIDs(cmd.Context())
		if err != nil {
			return err
		}

		if len(ids) == 0 {
			fmt.Println("Your favorites list is empty")
			return nil
		}
		for _, id := range ids {
			fmt.Println(id)
		}
		return nil
	},
}

func printFavoritesTable(items []media.Media) {
	if len(items) == 0 {
		fmt.Println("Your favorites list is empty")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tCategory\tName\tAuthor\t\n")
	fmt.Fprintf(w, "---\t---\t---\t---\t\n")
	for _, item := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t\n", item.ID, item.Category, item.Name, item.Author)
	}
	w.Flush()
	fmt.Printf("\nTotal favorites: %d\n", len(items))
}

func init() {
	listCmd.Flags().StringVarP(&listFormat, "format", "f", "table", "output format (table, json)")

	FavoritesCmd.AddCommand(listCmd)
	FavoritesCmd.AddCommand(idsCmd)
	FavoritesCmd.AddCommand(addCmd)
	FavoritesCmd.AddCommand(removeCmd)
}

package media

import (
	"fmt"
	"strconv"

	"librarydesk/internal/app/client"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var getFormat string

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one record in detail",
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

		item, err := app.HTTP.GetMedia(cmd.Context(), id)
		if err != nil {
			return err
		}

		if getFormat == "json" {
			return printMediaJSON(item)
		}

		favIDs, err := app.HTTP.FavoriteIDs(cmd.Context())
		if err != nil {
			return err
		}
		isFavorite := false
		for _, fav := range favIDs {
			if fav == item.ID {
				isFavorite = true
				break
			}
		}

		fmt.Printf("ID:               %d\n", item.ID)
		fmt.Printf("Name:             %s\n", item.Name)
		fmt.Printf("Author:           %s\n", item.Author)
		fmt.Printf("Category:         %s\n", item.Category)
		fmt.Printf("Publication date: %s\n", item.PublicationDate)
		if isFavorite {
			color.Yellow("Favorite:         ★ yes")
		} else {
			fmt.Println("Favorite:         no")
		}
		if item.Screenshot != nil {
			fmt.Printf("Screenshot:       %s\n", *item.Screenshot)
		} else {
			fmt.Println("Screenshot:       none")
		}
		return nil
	},
}

func init() {
	getCmd.Flags().StringVarP(&getFormat, "format", "f", "text", "output format (text, json)")
}

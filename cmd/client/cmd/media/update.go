package media

import (
	"fmt"
	"strconv"

	"librarydesk/internal/app/client"
	"librarydesk/internal/domain/media"

	"github.com/spf13/cobra"
)

var (
	updateName     string
	updateAuthor   string
	updateDate     string
	updateCategory string
)

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Edit a record",
	Long: `Edit a catalog record. Fields not given as flags keep their current
value; the full record is validated locally and then submitted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid media id: %q", args[0])
		}

		current, err := app.HTTP.GetMedia(cmd.Context(), id)
		if err != nil {
			return err
		}

		draft := media.Draft{
			Name:            current.Name,
			Author:          current.Author,
			PublicationDate: current.PublicationDate,
			Category:        current.Category,
		}
		if updateName != "" {
			draft.Name = updateName
		}
		if updateAuthor != "" {
			draft.Author = updateAuthor
		}
		if updateDate != "" {
			draft.PublicationDate = updateDate
		}
		if updateCategory != "" {
			draft.Category = updateCategory
		}

		if err := draft.Validate(); err != nil {
			return err
		}

		if err := app.HTTP.UpdateMedia(cmd.Context(), id, draft); err != nil {
			return err
		}

		success("Media item %d updated", id)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVarP(&updateName, "name", "n", "", "new title")
	updateCmd.Flags().StringVarP(&updateAuthor, "author", "a", "", "new author or director")
	updateCmd.Flags().StringVarP(&updateDate, "date", "d", "", "new publication date (YYYY-MM-DD)")
	updateCmd.Flags().StringVarP(&updateCategory, "category", "c", "", "new category")
}

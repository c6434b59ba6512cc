package media

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"librarydesk/internal/app/client"
	"librarydesk/internal/domain/media"

	"github.com/spf13/cobra"
)

var (
	createName     string
	createAuthor   string
	createDate     string
	createCategory string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new record",
	Long: `Create a new catalog record. Fields not given as flags are asked
for interactively. All fields are required and the publication date
must be a valid YYYY-MM-DD date; the record is only submitted once it
validates locally.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		draft := media.Draft{
			Name:            createName,
			Author:          createAuthor,
			PublicationDate: createDate,
			Category:        createCategory,
		}
		if err := fillDraft(&draft); err != nil {
			return err
		}
		if err := draft.Validate(); err != nil {
			return err
		}

		id, err := app.HTTP.CreateMedia(cmd.Context(), draft)
		if err != nil {
			return err
		}

		success("Media item %q created with ID %d", draft.Name, id)
		return nil
	},
}

// fillDraft prompts for any field not supplied through flags.
func fillDraft(draft *media.Draft) error {
	scanner := bufio.NewScanner(os.Stdin)

	prompt := func(label string, dst *string) error {
		if *dst != "" {
			return nil
		}
		fmt.Printf("%s: ", label)
		if !scanner.Scan() {
			return fmt.Errorf("input aborted")
		}
		*dst = strings.TrimSpace(scanner.Text())
		return nil
	}

	if err := prompt("Name", &draft.Name); err != nil {
		return err
	}
	if err := prompt("Author", &draft.Author); err != nil {
		return err
	}
	if err := prompt("Publication date (YYYY-MM-DD)", &draft.PublicationDate); err != nil {
		return err
	}
	if err := prompt("Category (Book, Film, Magazine)", &draft.Category); err != nil {
		return err
	}
	return nil
}

func init() {
	createCmd.Flags().StringVarP(&createName, "name", "n", "", "title of the media item")
	createCmd.Flags().StringVarP(&createAuthor, "author", "a", "", "author or director")
	createCmd.Flags().StringVarP(&createDate, "date", "d", "", "publication date (YYYY-MM-DD)")
	createCmd.Flags().StringVarP(&createCategory, "category", "c", "", "category (Book, Film, Magazine, ...)")
}

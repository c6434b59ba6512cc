package media

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"librarydesk/internal/app/client"

	"github.com/spf13/cobra"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a record",
	Long:  `Delete a catalog record. The record is also removed from favorites.`,
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

		if !deleteYes {
			fmt.Printf("Delete media item %d? [y/N]: ", id)
			scanner := bufio.NewScanner(os.Stdin)
			if !scanner.Scan() || strings.ToLower(strings.TrimSpace(scanner.Text())) != "y" {
				fmt.Println("Aborted")
				return nil
			}
		}

		if err := app.HTTP.DeleteMedia(cmd.Context(), id); err != nil {
			return err
		}

		success("Media item %d deleted", id)
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "skip the confirmation prompt")
}

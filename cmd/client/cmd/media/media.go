package media

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"librarydesk/internal/domain/media"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// MediaCmd is the parent command for all catalog record operations.
var MediaCmd = &cobra.Command{
	Use:   "media",
	Short: "Browse and edit catalog records",
	Long:  `List, filter, search, create, update and delete media records, and manage their screenshots.`,
}

func init() {
	MediaCmd.AddCommand(listCmd)
	MediaCmd.AddCommand(getCmd)
	MediaCmd.AddCommand(searchCmd)
	MediaCmd.AddCommand(createCmd)
	MediaCmd.AddCommand(updateCmd)
	MediaCmd.AddCommand(deleteCmd)
	MediaCmd.AddCommand(screenshotCmd)
}

func printMediaTable(items []media.Media) {
	if len(items) == 0 {
		fmt.Println("No media found")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tYear\tCategory\tName\tAuthor\t\n")
	fmt.Fprintf(w, "---\t---\t---\t---\t---\t\n")
	for _, item := range items {
		year := "N/A"
		if y := item.Year(); y != 0 {
			year = fmt.Sprintf("%d", y)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t\n",
			item.ID, year, item.Category, item.Name, item.Author)
	}
	w.Flush()
	fmt.Printf("\nTotal: %d\n", len(items))
}

func printMediaSimple(items []media.Media) {
	if len(items) == 0 {
		fmt.Println("No media found")
		return
	}

	for _, item := range items {
		fmt.Printf("%d. %s (%s, %s) by %s\n",
			item.ID, item.Name, item.Category, item.PublicationDate, item.Author)
	}
	fmt.Printf("\nTotal: %d\n", len(items))
}

func printMediaJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func printMediaList(items []media.Media, format string) error {
	switch format {
	case "json":
		return printMediaJSON(items)
	case "table":
		printMediaTable(items)
		return nil
	default:
		printMediaSimple(items)
		return nil
	}
}

func success(format string, args ...any) {
	color.Green("✓ "+format, args...)
}

package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"librarydesk/internal/app/client"

	"github.com/spf13/cobra"
)

var format string

// StatsCmd prints catalog totals and a per-category breakdown.
var StatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog statistics",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		st, err := app.HTTP.Stats(cmd.Context())
		if err != nil {
			return err
		}

		if format == "json" {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(st)
		}

		fmt.Printf("Total items:     %d\n", st.TotalItems)
		fmt.Printf("Total favorites: %d\n", st.TotalFavorites)

		if len(st.Categories) == 0 {
			return nil
		}
		fmt.Println("Categories:")
		names := make([]string, 0, len(st.Categories))
		for name := range st.Categories {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("  %-12s %d\n", name, st.Categories[name])
		}
		return nil
	},
}

func init() {
	StatsCmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, json)")
}

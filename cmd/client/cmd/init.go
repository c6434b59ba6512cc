package cmd

import (
	favoritesCmd "librarydesk/cmd/client/cmd/favorites"
	mediaCmd "librarydesk/cmd/client/cmd/media"
	statsCmd "librarydesk/cmd/client/cmd/stats"
)

func init() {
	rootCmd.AddCommand(mediaCmd.MediaCmd)
	rootCmd.AddCommand(favoritesCmd.FavoritesCmd)
	rootCmd.AddCommand(statsCmd.StatsCmd)
}

package cmd

import (
	"errors"
	"fmt"
	"os"

	"librarydesk/internal/app/client"
	"librarydesk/internal/app/client/config"
	"librarydesk/internal/utils/logger"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"
)

var (
	cfg        *config.Config
	log        *slog.Logger
	debug      bool
	serverURL  string
	configFile string
)

var rootCmd = &cobra.Command{
	Use:   "librarydesk",
	Short: "Library Desk - a personal media catalog client",
	Long: `Library Desk is the command-line client for the personal media
catalog service. It browses, filters, searches, favorites and edits
book, film and magazine records, and manages their screenshots.

The service address is taken from SERVER_ADDRESS (or a .env file) and
can be overridden with --server.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var apiErr *client.APIError
		switch {
		case errors.Is(err, client.ErrUnavailable):
			color.Red("✗ %v", err)
			color.Yellow("Is the catalog service running? Start cmd/server or point --server at it.")
		case errors.As(err, &apiErr):
			color.Red("✗ %s", apiErr.Message)
		default:
			color.Red("✗ %v", err)
		}
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	if configFile != "" {
		if _, err := os.Stat(configFile); err != nil {
			return fmt.Errorf("config file %s is not readable: %w", configFile, err)
		}
	}

	cfg = config.MustLoad(configFile)
	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}
	if debug {
		cfg.Env = "local"
	}

	log = logger.New(cfg.Env)

	app, err := client.New(cfg, log)
	if err != nil {
		return err
	}

	cmd.SetContext(client.NewContext(cmd.Context(), app))
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "catalog service address (host:port)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "env file to load configuration from")
}

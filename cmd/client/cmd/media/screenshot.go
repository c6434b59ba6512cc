package media

import (
	"fmt"
	"os"
	"path"
	"strconv"

	"librarydesk/internal/app/client"

	"github.com/spf13/cobra"
)

var screenshotCmd = &cobra.Command{
	Use:   "screenshot",
	Short: "Manage record screenshots",
}

var screenshotUploadCmd = &cobra.Command{
	Use:   "upload <id> <file>",
	Short: "Attach an image to a record",
	Long:  `Upload an image (png, jpg, jpeg, gif, bmp; at most 5 MiB) as the record's screenshot.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid media id: %q", args[0])
		}

		stored, err := app.HTTP.UploadScreenshot(cmd.Context(), id, args[1])
		if err != nil {
			return err
		}

		success("Screenshot uploaded: %s", stored)
		return nil
	},
}

var screenshotInfoCmd = &cobra.Command{
	Use:   "info <id>",
	Short: "Show a record's screenshot state",
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

		has, storedPath, err := app.HTTP.ScreenshotInfo(cmd.Context(), id)
		if err != nil {
			return err
		}

		if !has {
			fmt.Println("No screenshot attached")
			return nil
		}
		fmt.Printf("Screenshot: %s\n", storedPath)
		return nil
	},
}

var screenshotDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a record's screenshot",
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

		if err := app.HTTP.DeleteScreenshot(cmd.Context(), id); err != nil {
			return err
		}

		success("Screenshot removed from media item %d", id)
		return nil
	},
}

var screenshotExportCmd = &cobra.Command{
	Use:   "export <id> <dest>",
	Short: "Download a record's screenshot to a local file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := client.FromContext(cmd.Context())
		if err != nil {
			return err
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid media id: %q", args[0])
		}

		has, storedPath, err := app.HTTP.ScreenshotInfo(cmd.Context(), id)
		if err != nil {
			return err
		}
		if !has {
			return fmt.Errorf("media item %d has no screenshot", id)
		}

		data, err := app.HTTP.DownloadScreenshot(cmd.Context(), path.Base(storedPath))
		if err != nil {
			return err
		}

		if err := os.WriteFile(args[1], data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", args[1], err)
		}

		success("Screenshot saved to %s (%d bytes)", args[1], len(data))
		return nil
	},
}

func init() {
	screenshotCmd.AddCommand(screenshotUploadCmd)
	screenshotCmd.AddCommand(screenshotInfoCmd)
	screenshotCmd.AddCommand(screenshotDeleteCmd)
	screenshotCmd.AddCommand(screenshotExportCmd)
}

package media

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"librarydesk/internal/domain/media"
	"librarydesk/internal/infrastructure/screenshots"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) uploadScreenshot(ctx context.Context, input *uploadScreenshotInput) (*uploadScreenshotOutput, error) {
	form := input.RawBody.Data()
	if !form.File.IsSet {
		return nil, huma.Error400BadRequest("No file part in request")
	}
	if form.File.Filename == "" {
		return nil, huma.Error400BadRequest("No selected file")
	}
	if !screenshots.Allowed(form.File.Filename) {
		return nil, huma.Error400BadRequest(fmt.Sprintf(
			"File type not allowed. Allowed: %s",
			strings.Join(screenshots.AllowedExtensions(), ", "),
		))
	}

	if _, err := h.service.Get(ctx, input.ID); err != nil {
		if errors.Is(err, media.ErrNotFound) {
			return nil, huma.Error404NotFound(notFoundMsg(input.ID))
		}
		return nil, huma.Error500InternalServerError("Internal server error occurred while uploading screenshot")
	}

	stored, err := h.shots.Save(input.ID, form.File.Filename, form.File)
	if err != nil {
		switch {
		case errors.Is(err, screenshots.ErrNotAllowed):
			return nil, huma.Error400BadRequest(fmt.Sprintf(
				"File type not allowed. Allowed: %s",
				strings.Join(screenshots.AllowedExtensions(), ", "),
			))
		case errors.Is(err, screenshots.ErrTooLarge):
			return nil, huma.Error400BadRequest("File exceeds the maximum allowed size of 5 MiB")
		default:
			h.log.Error("failed to store screenshot", "media_id", input.ID, "error", err)
			return nil, huma.Error500InternalServerError("Internal server error occurred while uploading screenshot")
		}
	}

	if err := h.service.AttachScreenshot(ctx, input.ID, stored); err != nil {
		// The record path was not updated, so the stored file is orphaned.
		_ = h.shots.Remove(stored)
		if errors.Is(err, media.ErrNotFound) {
			return nil, huma.Error404NotFound(notFoundMsg(input.ID))
		}
		return nil, huma.Error500InternalServerError("Internal server error occurred while uploading screenshot")
	}

	return &uploadScreenshotOutput{
		Body: uploadScreenshotResponse{
			Message:        "Screenshot uploaded successfully",
			ScreenshotPath: stored,
		},
	}, nil
}

func (h *Handler) screenshotInfo(ctx context.Context, input *getInput) (*screenshotInfoOutput, error) {
	path, err := h.service.Screenshot(ctx, input.ID)
	if err != nil && !errors.Is(err, media.ErrNotFound) {
		return nil, huma.Error500InternalServerError("Internal server error")
	}

	return &screenshotInfoOutput{
		Body: screenshotInfoResponse{
			HasScreenshot:  path != nil,
			ScreenshotPath: path,
		},
	}, nil
}

func (h *Handler) deleteScreenshot(ctx context.Context, input *getInput) (*messageOutput, error) {
	path, err := h.service.Screenshot(ctx, input.ID)
	if err != nil && !errors.Is(err, media.ErrNotFound) {
		return nil, huma.Error500InternalServerError("Internal server error occurred while deleting screenshot")
	}

	if path != nil {
		if err := h.shots.Remove(*path); err != nil {
			h.log.Warn("failed to remove screenshot file", "media_id", input.ID, "path", *path, "error", err)
		}
	}

	if err == nil {
		if err := h.service.RemoveScreenshot(ctx, input.ID); err != nil && !errors.Is(err, media.ErrNotFound) {
			return nil, huma.Error500InternalServerError("Internal server error occurred while deleting screenshot")
		}
	}

	return &messageOutput{
		Body: messageResponse{
			Message: "Screenshot deleted successfully",
		},
	}, nil
}

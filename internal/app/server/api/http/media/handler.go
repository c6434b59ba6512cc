package media

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"librarydesk/internal/domain/media"
	"librarydesk/internal/infrastructure/screenshots"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    media.Servicer
	shots      *screenshots.Dir
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service media.Servicer, shots *screenshots.Dir, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		shots:      shots,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.byCategoryOp(), h.byCategory)
	huma.Register(api, h.searchOp(), h.search)
	huma.Register(api, h.getOp(), h.get)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)

	huma.Register(api, h.uploadScreenshotOp(), h.uploadScreenshot)
	huma.Register(api, h.screenshotInfoOp(), h.screenshotInfo)
	huma.Register(api, h.deleteScreenshotOp(), h.deleteScreenshot)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	items, err := h.service.List(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("Internal server error occurred while fetching media")
	}
	return &listOutput{Body: items}, nil
}

func (h *Handler) byCategory(ctx context.Context, input *categoryInput) (*listOutput, error) {
	items, err := h.service.ByCategory(ctx, input.Category)
	if err != nil {
		return nil, huma.Error500InternalServerError("Internal server error occurred while filtering media")
	}
	return &listOutput{Body: items}, nil
}

func (h *Handler) search(ctx context.Context, input *searchInput) (*searchOutput, error) {
	if input.Name == "" {
		return nil, huma.Error400BadRequest("Name parameter is required for search")
	}

	items, err := h.service.SearchByName(ctx, input.Name)
	if err != nil {
		return nil, huma.Error500InternalServerError("Internal server error occurred during search")
	}

	status := http.StatusOK
	if len(items) == 0 {
		status = http.StatusNotFound
	}
	return &searchOutput{Status: status, Body: items}, nil
}

func (h *Handler) get(ctx context.Context, input *getInput) (*getOutput, error) {
	item, err := h.service.Get(ctx, input.ID)
	if err != nil {
		if errors.Is(err, media.ErrNotFound) {
			return nil, huma.Error404NotFound(notFoundMsg(input.ID))
		}
		return nil, huma.Error500InternalServerError("Internal server error occurred while fetching metadata")
	}
	return &getOutput{Body: *item}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	id, err := h.service.Create(ctx, input.Body.draft())
	if err != nil {
		if errors.Is(err, media.ErrValidation) {
			return nil, huma.Error400BadRequest(err.Error())
		}
		return nil, huma.Error500InternalServerError("Internal server error occurred while creating media")
	}

	return &createOutput{
		Body: createResponse{
			Message: "Media item created successfully",
			ID:      id,
		},
	}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*messageOutput, error) {
	err := h.service.Update(ctx, input.ID, input.Body.draft())
	if err != nil {
		switch {
		case errors.Is(err, media.ErrValidation):
			return nil, huma.Error400BadRequest(err.Error())
		case errors.Is(err, media.ErrNotFound):
			return nil, huma.Error404NotFound(notFoundMsg(input.ID))
		default:
			return nil, huma.Error500InternalServerError("Internal server error occurred while updating media")
		}
	}

	return &messageOutput{
		Body: messageResponse{
			Message: fmt.Sprintf("Media item with ID %d updated successfully", input.ID),
		},
	}, nil
}

func (h *Handler) delete(ctx context.Context, input *getInput) (*messageOutput, error) {
	err := h.service.Delete(ctx, input.ID)
	if err != nil {
		if errors.Is(err, media.ErrNotFound) {
			return nil, huma.Error404NotFound(notFoundMsg(input.ID))
		}
		return nil, huma.Error500InternalServerError("Internal server error occurred while deleting media")
	}

	return &messageOutput{
		Body: messageResponse{
			Message: fmt.Sprintf("Media item with ID %d deleted successfully", input.ID),
		},
	}, nil
}

func notFoundMsg(id int) string {
	return fmt.Sprintf("Media item with ID %d not found", id)
}

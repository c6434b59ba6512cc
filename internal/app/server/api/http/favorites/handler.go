package favorites

import (
	"context"
	"errors"
	"fmt"

	"librarydesk/internal/domain/favorite"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    favorite.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service favorite.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.idsOp(), h.ids)
	huma.Register(api, h.addOp(), h.add)
	huma.Register(api, h.removeOp(), h.remove)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	records, err := h.service.Records(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("Internal server error occurred while fetching favorites")
	}
	return &listOutput{Body: records}, nil
}

func (h *Handler) ids(ctx context.Context, _ *struct{}) (*idsOutput, error) {
	ids, err := h.service.IDs(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("Internal server error")
	}
	return &idsOutput{Body: idsResponse{FavoriteIDs: ids}}, nil
}

func (h *Handler) add(ctx context.Context, input *idInput) (*messageOutput, error) {
	err := h.service.Add(ctx, input.ID)
	if err != nil {
		if errors.Is(err, favorite.ErrUnknownMedia) || errors.Is(err, favorite.ErrAlreadyFavorite) {
			return nil, huma.Error404NotFound("Media item not found or already a favorite")
		}
		return nil, huma.Error500InternalServerError("Internal server error")
	}

	return &messageOutput{
		Body: favoriteMessageResponse{
			Message: fmt.Sprintf("Media item %d added to favorites", input.ID),
		},
	}, nil
}

func (h *Handler) remove(ctx context.Context, input *idInput) (*messageOutput, error) {
	err := h.service.Remove(ctx, input.ID)
	if err != nil {
		if errors.Is(err, favorite.ErrNotFavorite) {
			return nil, huma.Error404NotFound("Media item was not in favorites")
		}
		return nil, huma.Error500InternalServerError("Internal server error")
	}

	return &messageOutput{
		Body: favoriteMessageResponse{
			Message: fmt.Sprintf("Media item %d removed from favorites", input.ID),
		},
	}, nil
}

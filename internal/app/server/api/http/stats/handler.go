package stats

import (
	"context"

	"librarydesk/internal/domain/media"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    media.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service media.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.statsOp(), h.stats)
}

func (h *Handler) stats(ctx context.Context, _ *struct{}) (*statsOutput, error) {
	stats, err := h.service.Stats(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("Internal server error occurred while fetching statistics")
	}
	return &statsOutput{Body: stats}, nil
}

package stats

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) statsOp() huma.Operation {
	return huma.Operation{
		OperationID: "stats",
		Method:      http.MethodGet,
		Path:        "/stats",
		Summary:     "Catalog statistics",
		Description: "Total item count, total favorite count and per-category counts.",
		Tags:        []string{"stats"},
		Middlewares: h.middleware,
	}
}

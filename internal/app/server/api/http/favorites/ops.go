package favorites

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "favorites-list",
		Method:      http.MethodGet,
		Path:        "/favorites",
		Summary:     "List favorited media items",
		Tags:        []string{"favorites"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) idsOp() huma.Operation {
	return huma.Operation{
		OperationID: "favorites-ids",
		Method:      http.MethodGet,
		Path:        "/favorites/ids",
		Summary:     "List favorite ids only",
		Tags:        []string{"favorites"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) addOp() huma.Operation {
	return huma.Operation{
		OperationID: "favorites-add",
		Method:      http.MethodPost,
		Path:        "/favorites/add/{id}",
		Summary:     "Add a media item to favorites",
		Description: "Fails with 404 when the id is unknown or the item is already a favorite.",
		Tags:        []string{"favorites"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) removeOp() huma.Operation {
	return huma.Operation{
		OperationID: "favorites-remove",
		Method:      http.MethodPost,
		Path:        "/favorites/remove/{id}",
		Summary:     "Remove a media item from favorites",
		Description: "Fails with 404 when the item is not a favorite.",
		Tags:        []string{"favorites"},
		Middlewares: h.middleware,
	}
}

package media

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "media-list",
		Method:      http.MethodGet,
		Path:        "/media",
		Summary:     "List all media items",
		Tags:        []string{"media"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) byCategoryOp() huma.Operation {
	return huma.Operation{
		OperationID: "media-by-category",
		Method:      http.MethodGet,
		Path:        "/media/category/{category}",
		Summary:     "Filter media items by category",
		Description: "Case-insensitive exact match on the category name.",
		Tags:        []string{"media"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) searchOp() huma.Operation {
	return huma.Operation{
		OperationID: "media-search",
		Method:      http.MethodGet,
		Path:        "/media/search",
		Summary:     "Search media items by exact name",
		Description: "Returns every record whose name matches exactly, ignoring case. An empty result is reported as 404 with an empty array.",
		Tags:        []string{"media"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "media-get",
		Method:      http.MethodGet,
		Path:        "/media/{id}",
		Summary:     "Fetch one media item",
		Tags:        []string{"media"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "media-create",
		Method:        http.MethodPost,
		Path:          "/media",
		Summary:       "Create a media item",
		Description:   "Requires name, author, publication_date and category. Missing fields are a validation failure.",
		DefaultStatus: http.StatusCreated,
		Tags:          []string{"media"},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "media-update",
		Method:      http.MethodPut,
		Path:        "/media/{id}",
		Summary:     "Update a media item",
		Description: "Requires the same full field set as create.",
		Tags:        []string{"media"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "media-delete",
		Method:      http.MethodDelete,
		Path:        "/media/{id}",
		Summary:     "Delete a media item",
		Description: "Removes the record and drops its id from favorites in the same persisted write.",
		Tags:        []string{"media"},
		Middlewares: h.middleware,
	}
}

// ==================== Screenshot operations ====================

func (h *Handler) uploadScreenshotOp() huma.Operation {
	return huma.Operation{
		OperationID:   "media-screenshot-upload",
		Method:        http.MethodPost,
		Path:          "/media/{id}/screenshot",
		Summary:       "Upload a screenshot for a media item",
		Description:   "Accepts a multipart image upload (png, jpg, jpeg, gif, bmp; 5 MiB cap) and records its path on the item.",
		DefaultStatus: http.StatusCreated,
		Tags:          []string{"media", "screenshots"},
		Middlewares:   h.middleware,
	}
}

func (h *Handler) screenshotInfoOp() huma.Operation {
	return huma.Operation{
		OperationID: "media-screenshot-info",
		Method:      http.MethodGet,
		Path:        "/media/{id}/screenshot",
		Summary:     "Get screenshot metadata for a media item",
		Tags:        []string{"media", "screenshots"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteScreenshotOp() huma.Operation {
	return huma.Operation{
		OperationID: "media-screenshot-delete",
		Method:      http.MethodDelete,
		Path:        "/media/{id}/screenshot",
		Summary:     "Remove the screenshot of a media item",
		Tags:        []string{"media", "screenshots"},
		Middlewares: h.middleware,
	}
}

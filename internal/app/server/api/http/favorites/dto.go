package favorites

import (
	"librarydesk/internal/domain/media"
)

type listOutput struct {
	Body []media.Media
}

type idsOutput struct {
	Body idsResponse
}

type idsResponse struct {
	FavoriteIDs []int `json:"favorite_ids"`
}

type idInput struct {
	ID int `path:"id" example:"1" doc:"Media item ID"`
}

type messageOutput struct {
	Body favoriteMessageResponse
}

// favoriteMessageResponse is deliberately not named messageResponse: body
// types share one schema namespace across all registered operations, and
// the media package already claims that name.
type favoriteMessageResponse struct {
	Message string `json:"message"`
}

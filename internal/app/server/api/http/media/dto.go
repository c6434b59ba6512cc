package media

import (
	"github.com/danielgtaylor/huma/v2"

	"librarydesk/internal/domain/media"
)

type listOutput struct {
	Body []media.Media
}

type categoryInput struct {
	Category string `path:"category" doc:"Category to filter by, matched case-insensitively"`
}

type searchInput struct {
	Name string `query:"name" doc:"Exact name to search for, matched case-insensitively"`
}

// searchOutput carries its own status: an empty result is reported as 404
// with an empty array body.
type searchOutput struct {
	Status int
	Body   []media.Media
}

type getInput struct {
	ID int `path:"id" example:"1" doc:"Media item ID"`
}

type getOutput struct {
	Body media.Media
}

// mutateRequest is the payload for create and update. Fields are optional
// at the schema level so that missing ones surface as a 400 validation
// failure, not a schema error.
type mutateRequest struct {
	Name            string `json:"name,omitempty" doc:"Title of the media item"`
	Author          string `json:"author,omitempty" doc:"Author or director"`
	PublicationDate string `json:"publication_date,omitempty" example:"1965-08-01" doc:"Publication date in YYYY-MM-DD form"`
	Category        string `json:"category,omitempty" example:"Book" doc:"Category, conventionally Book, Film or Magazine"`
}

func (r mutateRequest) draft() media.Draft {
	return media.Draft{
		Name:            r.Name,
		Author:          r.Author,
		PublicationDate: r.PublicationDate,
		Category:        r.Category,
	}
}

type createInput struct {
	Body mutateRequest
}

type createOutput struct {
	Body createResponse
}

type createResponse struct {
	Message string `json:"message"`
	ID      int    `json:"id"`
}

type updateInput struct {
	ID   int `path:"id" example:"1" doc:"Media item ID"`
	Body mutateRequest
}

type messageOutput struct {
	Body messageResponse
}

type messageResponse struct {
	Message string `json:"message"`
}

// ==================== Screenshots ====================

type uploadScreenshotInput struct {
	ID      int `path:"id" example:"1" doc:"Media item ID"`
	RawBody huma.MultipartFormFiles[screenshotFormData]
}

type screenshotFormData struct {
	File huma.FormFile `form:"file" doc:"Image file (png, jpg, jpeg, gif, bmp)"`
}

type uploadScreenshotOutput struct {
	Body uploadScreenshotResponse
}

type uploadScreenshotResponse struct {
	Message        string `json:"message"`
	ScreenshotPath string `json:"screenshot_path"`
}

type screenshotInfoOutput struct {
	Body screenshotInfoResponse
}

type screenshotInfoResponse struct {
	HasScreenshot  bool    `json:"has_screenshot"`
	ScreenshotPath *string `json:"screenshot_path"`
}

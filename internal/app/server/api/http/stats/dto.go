package stats

import (
	"librarydesk/internal/domain/media"
)

type statsOutput struct {
	Body media.Stats
}

package favorite

import (
	"errors"
)

var (
	ErrUnknownMedia    = errors.New("media item not found")
	ErrAlreadyFavorite = errors.New("media item is already a favorite")
	ErrNotFavorite     = errors.New("media item is not a favorite")
)

package media

import (
	"errors"
)

var (
	ErrNotFound   = errors.New("media item not found")
	ErrValidation = errors.New("invalid media data")
)

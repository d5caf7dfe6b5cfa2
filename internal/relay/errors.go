package relay

import (
	"errors"
)

var (
	ErrMissingFields = errors.New("email and photo are required")
	ErrInvalidEmail  = errors.New("invalid email address")
	ErrNotImage      = errors.New("photo is not an image")
	ErrPhotoTooLarge = errors.New("photo exceeds maximum allowed size")
)

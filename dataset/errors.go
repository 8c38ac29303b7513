package dataset

import "errors"

var (
	// ErrNoImages is returned when a directory holds no decodable images.
	ErrNoImages = errors.New("dataset: no images found")

	// ErrBadImage wraps a file that exists but cannot be decoded.
	ErrBadImage = errors.New("dataset: cannot decode image")
)

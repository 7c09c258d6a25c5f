package projector

import "errors"

var (
	ErrEmptyBounds      = errors.New("bounding box is empty")
	ErrViewportTooSmall = errors.New("viewport is smaller than its padding")
)

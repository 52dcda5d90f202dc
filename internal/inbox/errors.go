package inbox

import "errors"

var (
	ErrItemNotFound    = errors.New("inbox item not found")
	ErrTitleRequired   = errors.New("title is required")
	ErrInvalidDuration = errors.New("duration must be between 1 and 1440 minutes")
)

package agenda

import "errors"

var (
	ErrEmptyTopic      = errors.New("topic is required")
	ErrInvalidDuration = errors.New("duration must be a positive number of minutes")
)

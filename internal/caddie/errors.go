package caddie

import "errors"

// Validation errors returned to hosts. Hosts turn them into prompt text.
var (
	ErrNoCourseSelected = errors.New("pick a course first")
	ErrUnknownCourse    = errors.New("unknown course")
	ErrInvalidHole      = errors.New("hole must be between 1 and 18")
)

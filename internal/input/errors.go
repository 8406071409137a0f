package input

import "errors"

var (
	// ErrBlankPath is returned when no input path is provided.
	ErrBlankPath = errors.New("input path must not be blank")
	// ErrEmptyInput is returned when the input resolves to no content.
	ErrEmptyInput = errors.New("input is empty")
	// ErrNotFound is returned when the input path cannot be resolved.
	ErrNotFound = errors.New("input not found")
)

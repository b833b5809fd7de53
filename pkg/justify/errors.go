package justify

import "errors"

var (
	// ErrInvalidInput is returned when a paragraph contains a line break.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidSettings is returned when Settings cannot produce any output,
	// e.g. a width that leaves no room next to the hyphen.
	ErrInvalidSettings = errors.New("invalid settings")

	// ErrInvalidPlacement is returned when a custom placement picks a gap
	// that does not exist on the line.
	ErrInvalidPlacement = errors.New("invalid placement")
)

package dom

import "errors"

var (
	// ErrInvalidSelector is returned when a CSS selector cannot be parsed.
	ErrInvalidSelector = errors.New("invalid selector")

	// ErrNotFound is returned when a selector matches nothing.
	ErrNotFound = errors.New("element not found")

	// ErrParse is returned when an HTML document cannot be parsed.
	ErrParse = errors.New("failed to parse html")
)

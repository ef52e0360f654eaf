package formvalidator

import "errors"

var (
	// ErrNoForm is returned when New is called without a form element.
	ErrNoForm = errors.New("formvalidator: form element is required")

	// ErrNoFields is returned when no fields could be collected from the form.
	ErrNoFields = errors.New("formvalidator: form has no fields to validate")

	// ErrUnknownField is returned for elements the validator does not track.
	ErrUnknownField = errors.New("formvalidator: field is not tracked")
)

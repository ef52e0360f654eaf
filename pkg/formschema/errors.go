package formschema

import "errors"

var (
	// ErrNoForm is returned when the form selector matches nothing.
	ErrNoForm = errors.New("formschema: form not found")

	// ErrUnknownSchema is returned by Set.Get for a name that was not loaded.
	ErrUnknownSchema = errors.New("formschema: unknown schema")
)

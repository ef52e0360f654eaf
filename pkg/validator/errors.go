package validator

import "errors"

var (
	// ErrUnknownValidator is returned when a validator name is not registered.
	ErrUnknownValidator = errors.New("unknown validator")

	// ErrEmptyName is returned when registering a validator without a name.
	ErrEmptyName = errors.New("validator name cannot be empty")

	// ErrNilPredicate is returned when registering a nil predicate.
	ErrNilPredicate = errors.New("validator predicate cannot be nil")

	// ErrInvalidPattern is returned when a pattern validator does not compile.
	ErrInvalidPattern = errors.New("invalid validator pattern")

	// ErrInvalidPatternFile is returned when a pattern file cannot be decoded.
	ErrInvalidPatternFile = errors.New("invalid validator pattern file")
)

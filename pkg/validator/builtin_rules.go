package validator

import "regexp"

// Built-in validator names.
const (
	Email        = "email"
	Text         = "text"
	Name         = "name"
	URL          = "url"
	Alpha        = "alpha"
	Alphanumeric = "alphanumeric"
	Numeric      = "numeric"
)

var (
	emailRegex = regexp.MustCompile(`(?i)^[A-Z0-9._%+-]+@[A-Z0-9.-]+\.[A-Z]{2,4}$`)

	// Letters, spaces, hyphens, apostrophes and ampersands.
	nameRegex = regexp.MustCompile(`^[A-Za-z '&-]+$`)

	// Prefix match: anything may follow the host and optional port.
	urlRegex = regexp.MustCompile(`(?i)^(https?|ftp|rmtp|mms)://([A-Z0-9][A-Z0-9_-]*)(\.[A-Z0-9][A-Z0-9_-]*)+(:\d+)?/?`)

	alphaRegex = regexp.MustCompile(`^[a-zA-Z]+$`)

	nonWordRegex = regexp.MustCompile(`\W`)

	// Optionally negative decimal without leading zeros: 0, -12, 3.25, 0.5.
	numericRegex = regexp.MustCompile(`^-?(0|[1-9]\d*)(\.\d+)?$`)
)

type builtin struct {
	name      string
	predicate Predicate
	message   string
}

var builtins = []builtin{
	{Email, IsEmail, "must be a valid email address"},
	{Text, IsText, "field is required"},
	{Name, IsName, "must contain only letters, spaces, hyphens, apostrophes or ampersands"},
	{URL, IsURL, "must be a valid URL"},
	{Alpha, IsAlpha, "must contain only letters"},
	{Alphanumeric, IsAlphanumeric, "must contain only letters, digits or underscores"},
	{Numeric, IsNumeric, "must be a number"},
}

func IsEmail(value string) bool {
	return emailRegex.MatchString(value)
}

// IsText reports whether value is non-empty. Whitespace counts as content.
func IsText(value string) bool {
	return len(value) > 0
}

func IsName(value string) bool {
	return nameRegex.MatchString(value)
}

// IsURL accepts http, https, ftp, rmtp and mms URLs with a dotted host.
func IsURL(value string) bool {
	return urlRegex.MatchString(value)
}

func IsAlpha(value string) bool {
	return alphaRegex.MatchString(value)
}

// IsAlphanumeric reports whether value has no characters outside [A-Za-z0-9_].
// The empty string passes; pair it with text to require a value.
func IsAlphanumeric(value string) bool {
	return !nonWordRegex.MatchString(value)
}

func IsNumeric(value string) bool {
	return numericRegex.MatchString(value)
}

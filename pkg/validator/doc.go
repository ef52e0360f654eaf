// Package validator provides the named, pure predicates used to validate
// form field values, together with a small Rule/ValidationErrors toolkit for
// aggregating failures into a single error.
//
// # Registry
//
// Validators live in a Registry that maps a name to a Predicate. There is no
// package-level registry: DefaultRegistry returns a fresh copy holding the
// built-in validators, and callers extend or replace entries on their own
// instance.
//
//	reg := validator.DefaultRegistry()
//	_ = reg.RegisterPattern("zip", `^\d{5}$`)
//
//	ok, err := reg.Check("email", "a@b.co") // true, nil
//
// Built-in validators:
//   - email        – local@domain.tld with a 2-4 letter TLD
//   - text         – non-empty value
//   - name         – letters, spaces, hyphens, apostrophes, ampersands
//   - url          – http, https, ftp, rmtp or mms URL with a dotted host
//   - alpha        – letters only
//   - alphanumeric – no characters outside [A-Za-z0-9_]
//   - numeric      – decimal number, optionally negative
//
// # Tags
//
// ParseTags reads validator names from an element attribute. For class
// attributes only "validate-<type>" tokens count; a field without tags is
// checked with "text".
//
// # Pattern files
//
// LoadPatterns registers regex validators declared in YAML, which lets a
// deployment add validators without code changes.
//
// # Rules
//
// Registry.Rule adapts a validator into a Rule; Apply evaluates rules and
// returns ValidationErrors, which implements error and can be recovered with
// ExtractValidationErrors.
//
//	err := validator.Apply(
//	    reg.Rule("email", validator.Email, form.Get("email")),
//	    reg.Rule("age", validator.Numeric, form.Get("age")),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs.ByField()
//	}
package validator

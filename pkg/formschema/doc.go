// Package formschema extracts validation rules from HTML forms so submitted
// values can be checked on the server with the same validators the browser
// side uses.
//
// A Schema is built by parsing a document, locating the form and reading
// each field's validate-<type> tags and optional flag:
//
//	s, err := formschema.Parse(r, "form#signup")
//	if err != nil {
//		return err
//	}
//	if errs := s.Validate(req.PostForm); errs != nil {
//		// errs.ByField() maps field names to failed validators
//	}
//
// LoadDir loads every *.html file of a directory into a Set keyed by file
// name.
package formschema

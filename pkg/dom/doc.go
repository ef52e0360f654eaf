// Package dom abstracts the handful of DOM capabilities form validation
// needs (values, attributes, classes, event listeners and selector queries)
// behind the Element interface, and provides Document, an in-memory element
// tree parsed with golang.org/x/net/html and queried with cascadia selectors.
//
//	doc, _ := dom.ParseString(page)
//	form := doc.MustQuery("form#signup")
//	email := doc.MustQuery("input[name=email]")
//	email.Input("a@b.co") // sets the value and dispatches keyup
//	ok := form.Submit()   // false when a listener prevented the default
package dom

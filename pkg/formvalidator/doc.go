// Package formvalidator validates a form's fields as the user interacts with
// them.
//
// A FormValidator attaches to a form element, collects its fields, and reads
// each field's validators from its class attribute ("validate-email",
// "validate-numeric", ...; no tag means "text", a non-empty check). It keeps
// one state record per field and an aggregate Status:
//
//	untouched → touched → valid ⇄ invalid
//
// The status is valid exactly when every non-optional field is valid, and it
// never returns to untouched. Field and form elements receive CSS classes
// mirroring their state, and subscribers receive typed lifecycle events:
// touched, valid, invalid, inputValid, inputInvalid, validSubmit and
// invalidSubmit.
//
// A field that becomes valid is shown right away; a failing field is only
// shown on the alert event (blur by default) or on submit. After its first
// alert a field is re-shown on every correction event (keyup by default).
//
//	doc, _ := dom.ParseString(page)
//	v, err := formvalidator.New(doc.MustQuery("form#signup"),
//	    formvalidator.WithLogger(log),
//	    formvalidator.WithHandler(func(e formvalidator.Event) {
//	        if e.Type == formvalidator.EventInputInvalid {
//	            fmt.Println(e.Field.Attr("name"), e.Errors)
//	        }
//	    }),
//	)
//	defer v.Deactivate()
//
// Values changed by scripts do not fire input events; the validator polls
// for them every Options.CheckPeriodical.
package formvalidator

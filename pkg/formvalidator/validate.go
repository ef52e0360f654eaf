package formvalidator

import (
	"slices"

	"github.com/dmitrymomot/formguard/pkg/dom"
	"github.com/dmitrymomot/formguard/pkg/logger"
)

// ValidateField runs the field's validators, records the result and updates
// the aggregate status. It reports whether the field passed.
func (v *FormValidator) ValidateField(el dom.Element) (bool, error) {
	var (
		valid bool
		err   error
	)
	v.do(func() {
		f, ok := v.byElem[el]
		if !ok {
			err = ErrUnknownField
			return
		}
		v.validate(f)
		valid = f.valid
	})
	return valid, err
}

// ValidateAll validates every tracked field and reports whether the form is
// valid.
func (v *FormValidator) ValidateAll() bool {
	var valid bool
	v.do(func() { valid = v.validateAll() })
	return valid
}

// OnSubmit validates the form for a submit event. When the form is invalid
// the event's default action is prevented and invalidSubmit is emitted;
// otherwise validSubmit is emitted. Failing fields are displayed as invalid.
func (v *FormValidator) OnSubmit(e *dom.Event) bool {
	var valid bool
	v.do(func() {
		valid = v.validateAll()
		// valid fields were already shown by validate
		for _, f := range v.fields {
			if !f.valid {
				v.alert(f)
			}
		}

		if !valid {
			e.PreventDefault()
			v.log.Info("invalid form submission prevented", logger.Status(v.currentStatus().String()))
			v.queue(Event{Type: EventInvalidSubmit, Submit: e})
			return
		}
		v.queue(Event{Type: EventValidSubmit, Submit: e})
	})
	return valid
}

// CheckForChanges re-validates fields whose value differs from the last
// value seen. Polling calls it on every tick while active.
func (v *FormValidator) CheckForChanges() {
	v.do(v.checkForChanges)
}

func (v *FormValidator) checkForChanges() {
	for _, f := range v.fields {
		current := f.el.Value()
		if current != f.lastValue {
			v.validate(f)
		}
		f.lastValue = current
	}
}

func (v *FormValidator) validateAll() bool {
	for _, f := range v.fields {
		v.validate(f)
	}
	return v.status.Is(StatusValid)
}

// validate is the per-field pipeline: touch the form, evaluate the field,
// show it immediately when valid, then recompute the aggregate status.
// Failures are only displayed on alert.
func (v *FormValidator) validate(f *field) {
	v.touch()
	v.evaluate(f)
	if f.valid {
		v.alert(f)
	}
	v.recompute()
}

// evaluate runs the field's validators. An empty optional field passes
// without running validators. Unknown validator names count as failures.
func (v *FormValidator) evaluate(f *field) {
	value := f.el.Value()
	f.lastValue = value
	f.validated = true
	f.errors = nil

	if value == "" && v.isOptional(f) {
		f.valid = true
		return
	}

	for _, name := range v.tags(f.el) {
		ok, err := v.registry.Check(name, value)
		if err != nil {
			v.log.Warn("unknown validator", logger.Field(fieldName(f.el)), logger.Error(err))
		}
		if !ok && !slices.Contains(f.errors, name) {
			f.errors = append(f.errors, name)
		}
	}
	f.valid = len(f.errors) == 0
}

// alert displays the field's validity once the form has been touched, and
// starts watching the field for corrections.
func (v *FormValidator) alert(f *field) {
	if !v.status.Is(StatusUntouched) {
		if !f.validated {
			v.evaluate(f)
			v.recompute()
		}
		v.display(f)
	}
	v.watch(f)
}

func (v *FormValidator) display(f *field) {
	validClass, invalidClass := v.opts.ValidClass, v.opts.InvalidClass

	if v.isOptional(f) && f.el.Value() == "" {
		f.el.RemoveClass(validClass, invalidClass)
		return
	}

	if f.valid {
		f.el.AddClass(validClass)
		f.el.RemoveClass(invalidClass)
		v.queue(Event{Type: EventInputValid, Field: f.el})
		return
	}

	f.el.AddClass(invalidClass)
	f.el.RemoveClass(validClass)
	v.log.Debug("field invalid", logger.Field(fieldName(f.el)), logger.Validators(f.errors))
	v.queue(Event{Type: EventInputInvalid, Field: f.el, Errors: slices.Clone(f.errors)})
}

func (v *FormValidator) watch(f *field) {
	if f.watching || !v.active || v.opts.CorrectionEvent == "" {
		return
	}
	f.watching = true
	f.removeCorrection = f.el.AddListener(v.opts.CorrectionEvent, v.listener(f, v.alert))
}

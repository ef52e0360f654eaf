package formvalidator

import (
	"slices"

	"github.com/dmitrymomot/formguard/pkg/dom"
	"github.com/dmitrymomot/formguard/pkg/validator"
)

// field is the validator-owned state record of one element.
type field struct {
	el        dom.Element
	optional  bool
	lastValue string
	valid     bool
	validated bool
	errors    []string

	// watching is set after the first alert; the correction listener then
	// keeps the displayed validity current.
	watching         bool
	removeCorrection func()
}

// FieldState is a snapshot of a field's validation state.
type FieldState struct {
	Element    dom.Element
	Name       string
	Validators []string
	Optional   bool
	LastValue  string
	Validated  bool
	Valid      bool
	Errors     []string
	// Watching is set once the field has been alerted; from then on the
	// correction event refreshes its displayed validity.
	Watching bool
}

func (v *FormValidator) snapshot(f *field) FieldState {
	return FieldState{
		Element:    f.el,
		Name:       fieldName(f.el),
		Validators: v.tags(f.el),
		Optional:   v.isOptional(f),
		LastValue:  f.lastValue,
		Validated:  f.validated,
		Valid:      f.valid,
		Errors:     slices.Clone(f.errors),
		Watching:   f.watching,
	}
}

// tags returns the validator names declared on el.
func (v *FormValidator) tags(el dom.Element) []string {
	attr := v.opts.AttributeForType
	return validator.ParseTags(el.Attr(attr), attr == "class")
}

func (v *FormValidator) isOptional(f *field) bool {
	return f.optional || (v.opts.OptionalClass != "" && f.el.HasClass(v.opts.OptionalClass))
}

// fieldName identifies el in logs and error maps.
func fieldName(el dom.Element) string {
	if name := el.Attr("name"); name != "" {
		return name
	}
	return el.Attr("id")
}

package formvalidator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formguard/pkg/broadcast"
	"github.com/dmitrymomot/formguard/pkg/dom"
	"github.com/dmitrymomot/formguard/pkg/logger"
	"github.com/dmitrymomot/formguard/pkg/statemachine"
	"github.com/dmitrymomot/formguard/pkg/validator"
)

// FormValidator tracks the validity of a form's fields, mirrors it onto CSS
// classes and reports changes as lifecycle events.
//
// All methods are safe for concurrent use. State changes are serialized;
// events are delivered after the change that produced them is complete.
type FormValidator struct {
	id       string
	form     dom.Element
	opts     Options
	registry *validator.Registry
	log      *slog.Logger
	bus      broadcast.Broadcaster[Event]

	explicit []dom.Element
	optional []dom.Element

	observers broadcast.Observers[Event]

	mu       sync.Mutex
	fields   []*field
	byElem   map[dom.Element]*field
	status   *statemachine.Machine
	pending  []Event
	active   bool
	unbind   []func()
	stopPoll context.CancelFunc
}

// New builds a validator for form. Fields come from WithFields or, by
// default, from Options.InputSelector under form. Every validator tag used by
// a field must exist in the registry. Unless Options.Active is false the
// validator is activated before New returns.
func New(form dom.Element, opts ...Option) (*FormValidator, error) {
	if form == nil {
		return nil, ErrNoForm
	}

	v := &FormValidator{
		id:       uuid.NewString(),
		form:     form,
		opts:     DefaultOptions(),
		registry: validator.DefaultRegistry(),
		log:      logger.Discard(),
		byElem:   make(map[dom.Element]*field),
	}
	for _, opt := range opts {
		opt(v)
	}
	v.log = v.log.With(logger.Component("formvalidator"), logger.Form(v.id))
	v.status = v.newStatusMachine()

	if err := v.collectFields(); err != nil {
		return nil, err
	}
	if err := v.checkValidators(); err != nil {
		return nil, err
	}

	if v.opts.Active {
		v.Activate(context.Background())
	}
	return v, nil
}

func (v *FormValidator) collectFields() error {
	elements := v.explicit
	if len(elements) == 0 {
		found, err := v.form.QueryAll(v.opts.InputSelector)
		if err != nil {
			return fmt.Errorf("formvalidator: select fields: %w", err)
		}
		elements = found
	}

	for _, el := range elements {
		v.track(el, false)
	}
	for _, el := range v.optional {
		v.track(el, true)
		if v.opts.OptionalClass != "" {
			el.AddClass(v.opts.OptionalClass)
		}
	}

	if len(v.fields) == 0 {
		return ErrNoFields
	}
	return nil
}

func (v *FormValidator) track(el dom.Element, optional bool) {
	if el == nil {
		return
	}
	if f, ok := v.byElem[el]; ok {
		f.optional = f.optional || optional
		return
	}
	f := &field{el: el, optional: optional, lastValue: el.Value()}
	v.fields = append(v.fields, f)
	v.byElem[el] = f
}

func (v *FormValidator) checkValidators() error {
	for _, f := range v.fields {
		if missing := v.registry.Unknown(v.tags(f.el)...); len(missing) > 0 {
			return fmt.Errorf("%w: field %q uses %s",
				validator.ErrUnknownValidator, fieldName(f.el), strings.Join(missing, ", "))
		}
	}
	return nil
}

// ID returns the identifier reported in events.
func (v *FormValidator) ID() string {
	return v.id
}

// Form returns the form element.
func (v *FormValidator) Form() dom.Element {
	return v.form
}

// Status returns the aggregate status.
func (v *FormValidator) Status() Status {
	return v.currentStatus()
}

// Active reports whether listeners are bound.
func (v *FormValidator) Active() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.active
}

// Field returns the state of a tracked element.
func (v *FormValidator) Field(el dom.Element) (FieldState, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	f, ok := v.byElem[el]
	if !ok {
		return FieldState{}, false
	}
	return v.snapshot(f), true
}

// Fields returns the state of every tracked field in tracking order.
func (v *FormValidator) Fields() []FieldState {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]FieldState, len(v.fields))
	for i, f := range v.fields {
		out[i] = v.snapshot(f)
	}
	return out
}

// ValidationErrors reports the failures of validated, non-optional fields, or
// nil when there are none.
func (v *FormValidator) ValidationErrors() validator.ValidationErrors {
	v.mu.Lock()
	defer v.mu.Unlock()

	var errs validator.ValidationErrors
	for _, f := range v.fields {
		if !f.validated || f.valid || v.isOptional(f) {
			continue
		}
		for _, name := range f.errors {
			errs.Add(validator.ValidationError{
				Field:     fieldName(f.el),
				Validator: name,
				Message:   v.registry.Message(name),
			})
		}
	}
	return errs
}

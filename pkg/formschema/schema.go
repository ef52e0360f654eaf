package formschema

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"

	"github.com/dmitrymomot/formguard/pkg/dom"
	"github.com/dmitrymomot/formguard/pkg/formvalidator"
	"github.com/dmitrymomot/formguard/pkg/logger"
	"github.com/dmitrymomot/formguard/pkg/validator"
)

// Field describes one named form field.
type Field struct {
	Name       string   `json:"name"`
	Validators []string `json:"validators"`
	Optional   bool     `json:"optional,omitempty"`
}

// Schema is the set of validation rules of a single form.
type Schema struct {
	Name   string  `json:"name"`
	Fields []Field `json:"fields"`

	registry *validator.Registry
}

type options struct {
	name      string
	validator formvalidator.Options
	registry  *validator.Registry
	log       *slog.Logger
}

// Option configures Parse and LoadDir.
type Option func(*options)

// WithName sets the schema name. LoadDir names schemas after their file.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

// WithValidatorOptions sets the field selector, optional class and tag
// attribute used to read the form. Defaults to formvalidator.DefaultOptions()
// with DefaultInputSelector.
func WithValidatorOptions(opts formvalidator.Options) Option {
	return func(o *options) { o.validator = opts }
}

// WithRegistry sets the registry fields are checked against.
func WithRegistry(r *validator.Registry) Option {
	return func(o *options) {
		if r != nil {
			o.registry = r
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// DefaultInputSelector selects the fields of a schema. Unlike the browser
// side default it includes textareas and selects.
const DefaultInputSelector = "input, select, textarea"

func newOptions(opts []Option) *options {
	vopts := formvalidator.DefaultOptions()
	vopts.InputSelector = DefaultInputSelector
	o := &options{
		validator: vopts,
		registry:  validator.DefaultRegistry(),
		log:       logger.Discard(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Parse reads an HTML document from r and builds the schema of the first form
// matching formSelector. Fields without a name are skipped since they are
// never submitted; for repeated names the first field wins.
func Parse(r io.Reader, formSelector string, opts ...Option) (*Schema, error) {
	o := newOptions(opts)

	doc, err := dom.Parse(r)
	if err != nil {
		return nil, err
	}
	form, err := doc.Query(formSelector)
	if err != nil {
		if errors.Is(err, dom.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNoForm, formSelector)
		}
		return nil, err
	}

	vopts := o.validator
	vopts.Active = false
	fv, err := formvalidator.New(form,
		formvalidator.WithOptions(vopts),
		formvalidator.WithRegistry(o.registry),
		formvalidator.WithLogger(o.log),
	)
	if err != nil {
		return nil, err
	}

	s := &Schema{Name: o.name, registry: o.registry}
	seen := make(map[string]bool)
	for _, f := range fv.Fields() {
		if f.Element.Attr("name") == "" || seen[f.Name] {
			continue
		}
		seen[f.Name] = true
		s.Fields = append(s.Fields, Field{
			Name:       f.Name,
			Validators: f.Validators,
			Optional:   f.Optional,
		})
	}
	if len(s.Fields) == 0 {
		return nil, formvalidator.ErrNoFields
	}

	o.log.Debug("schema parsed", logger.Form(s.Name), slog.Int("fields", len(s.Fields)))
	return s, nil
}

// Field returns the field with the given name.
func (s *Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Validate checks submitted values against every field. Missing values are
// treated as empty. An empty optional field passes. It returns nil when all
// fields pass.
func (s *Schema) Validate(values url.Values) validator.ValidationErrors {
	var rules []validator.Rule
	for _, f := range s.Fields {
		value := values.Get(f.Name)
		if f.Optional && value == "" {
			continue
		}
		for _, name := range f.Validators {
			rules = append(rules, s.registry.Rule(f.Name, name, value))
		}
	}
	return validator.ExtractValidationErrors(validator.Apply(rules...))
}

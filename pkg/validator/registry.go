package validator

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"
	"sync"
)

// Predicate reports whether a field value passes a validator.
// Predicates must be pure: the same value always yields the same result.
type Predicate func(value string) bool

// Registry maps validator names to predicates.
// It is safe for concurrent use, so one registry can back many forms.
type Registry struct {
	mu         sync.RWMutex
	predicates map[string]Predicate
	messages   map[string]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		predicates: make(map[string]Predicate),
		messages:   make(map[string]string),
	}
}

// DefaultRegistry returns a new registry holding the built-in validators.
// Each call returns an independent copy.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, b := range builtins {
		r.predicates[b.name] = b.predicate
		r.messages[b.name] = b.message
	}
	return r
}

// Register adds or replaces a named predicate.
func (r *Registry) Register(name string, p Predicate) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if p == nil {
		return fmt.Errorf("%w: %s", ErrNilPredicate, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.predicates[name] = p
	return nil
}

// MustRegister works like Register but panics on error.
func (r *Registry) MustRegister(name string, p Predicate) {
	if err := r.Register(name, p); err != nil {
		panic(fmt.Sprintf("failed to register validator: %v", err))
	}
}

// RegisterPattern registers a predicate that matches value against pattern.
func (r *Registry) RegisterPattern(name, pattern string) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("%w %q for %s: %v", ErrInvalidPattern, pattern, name, err)
	}
	if err := r.Register(name, re.MatchString); err != nil {
		return err
	}
	r.SetMessage(name, fmt.Sprintf("must match the %s format", name))
	return nil
}

// SetMessage overrides the human readable failure message for name.
func (r *Registry) SetMessage(name, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages[name] = message
}

// Message returns the failure message for name.
func (r *Registry) Message(name string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if msg, ok := r.messages[name]; ok {
		return msg
	}
	return fmt.Sprintf("must pass %s validation", name)
}

func (r *Registry) Lookup(name string) (Predicate, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.predicates[name]
	return p, ok
}

func (r *Registry) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Names returns the registered validator names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.predicates))
}

// Clone returns an independent copy of the registry.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return &Registry{
		predicates: maps.Clone(r.predicates),
		messages:   maps.Clone(r.messages),
	}
}

// Check runs the named predicate against value.
func (r *Registry) Check(name, value string) (bool, error) {
	p, ok := r.Lookup(name)
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownValidator, name)
	}
	return p(value), nil
}

// Unknown returns the names that are not registered, preserving order.
func (r *Registry) Unknown(names ...string) []string {
	var missing []string
	for _, name := range names {
		if !r.Has(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// Rule adapts a registered validator into a Rule for use with Apply.
// An unregistered name yields a rule that always fails.
func (r *Registry) Rule(field, name, value string) Rule {
	return Rule{
		Check: func() bool {
			ok, err := r.Check(name, value)
			return err == nil && ok
		},
		Error: ValidationError{
			Field:     field,
			Validator: name,
			Message:   r.Message(name),
		},
	}
}

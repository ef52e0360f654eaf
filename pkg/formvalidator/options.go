package formvalidator

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/formguard/pkg/broadcast"
	"github.com/dmitrymomot/formguard/pkg/config"
	"github.com/dmitrymomot/formguard/pkg/dom"
	"github.com/dmitrymomot/formguard/pkg/validator"
)

// Options holds the declarative settings of a FormValidator. The env tags
// allow loading them with LoadOptions.
type Options struct {
	// Active binds listeners as part of New.
	Active bool `env:"ACTIVE" envDefault:"true"`
	// ValidateOnSubmit validates every field when the form is submitted and
	// prevents submission of an invalid form.
	ValidateOnSubmit bool `env:"VALIDATE_ON_SUBMIT" envDefault:"true"`
	// InputSelector selects the fields under the form when no explicit field
	// list is given.
	InputSelector string `env:"INPUT_SELECTOR" envDefault:"input"`

	InvalidClass  string `env:"INVALID_CLASS" envDefault:"invalid"`
	ValidClass    string `env:"VALID_CLASS" envDefault:"valid"`
	OptionalClass string `env:"OPTIONAL_CLASS" envDefault:"optional"`

	// AttributeForType names the attribute that carries validator tags.
	// For "class" only validate-<type> tokens are read.
	AttributeForType string `env:"ATTRIBUTE_FOR_TYPE" envDefault:"class"`

	// ValidateEvent triggers validation. "change" is always bound as well.
	ValidateEvent string `env:"VALIDATE_EVENT" envDefault:"keyup"`
	// AlertEvent displays a field's validity, including failures.
	AlertEvent string `env:"ALERT_EVENT" envDefault:"blur"`
	// CorrectionEvent re-displays validity once a field has been alerted.
	CorrectionEvent string `env:"CORRECTION_EVENT" envDefault:"keyup"`

	// CheckPeriodical is the polling interval for externally changed values.
	// Zero disables polling.
	CheckPeriodical time.Duration `env:"CHECK_PERIODICAL" envDefault:"1s"`
}

// DefaultOptions returns the built-in defaults.
func DefaultOptions() Options {
	return Options{
		Active:           true,
		ValidateOnSubmit: true,
		InputSelector:    "input",
		InvalidClass:     "invalid",
		ValidClass:       "valid",
		OptionalClass:    "optional",
		AttributeForType: "class",
		ValidateEvent:    dom.EventKeyUp,
		AlertEvent:       dom.EventBlur,
		CorrectionEvent:  dom.EventKeyUp,
		CheckPeriodical:  time.Second,
	}
}

// EnvPrefix is the prefix LoadOptions uses for environment variables.
const EnvPrefix = "FORMGUARD_"

// LoadOptions reads Options from FORMGUARD_* environment variables.
func LoadOptions(opts ...config.Option) (Options, error) {
	var o Options
	if err := config.Load(&o, append([]config.Option{config.WithPrefix(EnvPrefix)}, opts...)...); err != nil {
		return Options{}, err
	}
	return o, nil
}

// Option configures a FormValidator.
type Option func(*FormValidator)

// WithOptions replaces the declarative options.
func WithOptions(o Options) Option {
	return func(v *FormValidator) { v.opts = o }
}

// WithFields validates exactly these elements instead of querying
// InputSelector.
func WithFields(fields ...dom.Element) Option {
	return func(v *FormValidator) { v.explicit = append(v.explicit, fields...) }
}

// WithOptionalFields marks elements as optional. They are also tracked when
// not matched by InputSelector.
func WithOptionalFields(fields ...dom.Element) Option {
	return func(v *FormValidator) { v.optional = append(v.optional, fields...) }
}

// WithInputSelector overrides Options.InputSelector.
func WithInputSelector(selector string) Option {
	return func(v *FormValidator) { v.opts.InputSelector = selector }
}

// WithPollInterval overrides Options.CheckPeriodical.
func WithPollInterval(d time.Duration) Option {
	return func(v *FormValidator) { v.opts.CheckPeriodical = d }
}

// Inactive skips activation in New; call Activate later.
func Inactive() Option {
	return func(v *FormValidator) { v.opts.Active = false }
}

// WithRegistry sets the validator registry. Defaults to
// validator.DefaultRegistry().
func WithRegistry(r *validator.Registry) Option {
	return func(v *FormValidator) {
		if r != nil {
			v.registry = r
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(v *FormValidator) {
		if l != nil {
			v.log = l
		}
	}
}

// WithHandler subscribes h before activation, so it sees every event.
func WithHandler(h Handler) Option {
	return func(v *FormValidator) { v.Subscribe(h) }
}

// WithBroadcaster mirrors every event to b for asynchronous consumers.
func WithBroadcaster(b broadcast.Broadcaster[Event]) Option {
	return func(v *FormValidator) { v.bus = b }
}

// WithID sets the identifier reported in events and logs. Defaults to a
// random UUID.
func WithID(id string) Option {
	return func(v *FormValidator) {
		if id != "" {
			v.id = id
		}
	}
}

package dom

// Listener handles an event dispatched to an element.
type Listener func(e *Event)

// Element is the subset of a DOM element that form validation relies on.
// Implementations must be comparable (pointer types) because callers key
// per-element state by Element identity.
type Element interface {
	// Tag returns the lower-case tag name.
	Tag() string

	// Value returns the current form value of the element.
	Value() string

	// Attr returns the attribute value, or "" when absent.
	Attr(name string) string

	HasClass(name string) bool
	AddClass(names ...string)
	RemoveClass(names ...string)

	// AddListener subscribes fn to events of the given type and returns a func
	// that unsubscribes it.
	AddListener(event string, fn Listener) (remove func())

	// QueryAll returns the descendants matching a CSS selector, in document order.
	QueryAll(selector string) ([]Element, error)
}

// Event is dispatched to element listeners.
type Event struct {
	Type   string
	Target Element

	defaultPrevented bool
}

func NewEvent(typ string, target Element) *Event {
	return &Event{Type: typ, Target: target}
}

// PreventDefault cancels the host's default action, e.g. form submission.
func (e *Event) PreventDefault() {
	if e != nil {
		e.defaultPrevented = true
	}
}

func (e *Event) DefaultPrevented() bool {
	return e != nil && e.defaultPrevented
}

// Common event types.
const (
	EventKeyUp  = "keyup"
	EventChange = "change"
	EventBlur   = "blur"
	EventSubmit = "submit"
	EventInput  = "input"
)

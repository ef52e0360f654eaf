package formvalidator

import (
	"context"
	"slices"

	"github.com/dmitrymomot/formguard/pkg/broadcast"
	"github.com/dmitrymomot/formguard/pkg/dom"
	"github.com/dmitrymomot/formguard/pkg/logger"
)

// EventType names a lifecycle event.
type EventType string

const (
	EventTouched       EventType = "touched"
	EventValid         EventType = "valid"
	EventInvalid       EventType = "invalid"
	EventInputValid    EventType = "inputValid"
	EventInputInvalid  EventType = "inputInvalid"
	EventValidSubmit   EventType = "validSubmit"
	EventInvalidSubmit EventType = "invalidSubmit"
)

// Event is the payload delivered to subscribers.
type Event struct {
	Type   EventType
	FormID string
	Form   dom.Element

	// Field is set for inputValid and inputInvalid.
	Field dom.Element
	// Errors lists the failed validator names for inputInvalid.
	Errors []string

	// Status is the new status for touched, valid and invalid. For every
	// other event it is the status once the operation that produced the
	// event has finished, including the recompute a field change triggers.
	Status Status

	// Submit is the originating submit event for validSubmit and invalidSubmit.
	Submit *dom.Event
}

// IsStatusChange reports whether t announces an aggregate status change.
func (t EventType) IsStatusChange() bool {
	switch t {
	case EventTouched, EventValid, EventInvalid:
		return true
	}
	return false
}

// Handler receives lifecycle events.
type Handler func(Event)

// Subscribe registers h for every lifecycle event and returns a func that
// unregisters it. Handlers run synchronously, in order, after the operation
// that produced the events has finished updating state, so they may call
// back into the validator.
func (v *FormValidator) Subscribe(h Handler) (unsubscribe func()) {
	if h == nil {
		return func() {}
	}
	return v.observers.Add(h)
}

// On registers h for events of the given types only.
func (v *FormValidator) On(h Handler, types ...EventType) (unsubscribe func()) {
	if h == nil {
		return func() {}
	}
	return v.observers.Add(func(e Event) {
		if slices.Contains(types, e.Type) {
			h(e)
		}
	})
}

// queue records an event for delivery once the current operation unlocks.
// Callers must hold v.mu.
func (v *FormValidator) queue(e Event) {
	e.FormID = v.id
	e.Form = v.form
	e.Status = v.currentStatus()
	v.pending = append(v.pending, e)
}

func (v *FormValidator) emit(events []Event) {
	for _, e := range events {
		v.log.Debug("form event", logger.Event(string(e.Type)), logger.Status(e.Status.String()))
		v.observers.Notify(e)
		if v.bus != nil {
			if err := v.bus.Broadcast(context.Background(), broadcast.Message[Event]{Data: e}); err != nil {
				v.log.Warn("event broadcast failed", logger.Event(string(e.Type)), logger.Error(err))
			}
		}
	}
}

// do runs fn with v.mu held and then delivers the events fn queued.
// Field and submit events report the status fn left the form in.
func (v *FormValidator) do(fn func()) {
	v.mu.Lock()
	fn()
	events := v.pending
	v.pending = nil
	final := v.currentStatus()
	for i := range events {
		if !events[i].Type.IsStatusChange() {
			events[i].Status = final
		}
	}
	v.mu.Unlock()

	v.emit(events)
}

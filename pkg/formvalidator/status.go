package formvalidator

import (
	"context"

	"github.com/dmitrymomot/formguard/pkg/logger"
	"github.com/dmitrymomot/formguard/pkg/statemachine"
)

// Status is the aggregate validation state of a form.
type Status string

const (
	StatusUntouched Status = "untouched"
	StatusTouched   Status = "touched"
	StatusValid     Status = "valid"
	StatusInvalid   Status = "invalid"
)

func (s Status) Name() string {
	return string(s)
}

func (s Status) String() string {
	return string(s)
}

const (
	touch = statemachine.StringEvent("touch")
	pass  = statemachine.StringEvent("pass")
	fail  = statemachine.StringEvent("fail")
)

// newStatusMachine wires the aggregate status transitions:
// untouched → touched on first interaction, then pass/fail move between
// valid and invalid. pass is guarded by the required fields being valid.
// Nothing leads back to untouched.
func (v *FormValidator) newStatusMachine() *statemachine.Machine {
	active := []statemachine.State{StatusTouched, StatusValid, StatusInvalid}
	requiredValid := statemachine.WithGuard(func(context.Context, statemachine.State, statemachine.Event, any) bool {
		return v.requiredValid()
	})
	return statemachine.MustNew(StatusUntouched,
		statemachine.WithTransition(StatusUntouched, StatusTouched, touch),
		statemachine.WithTransitionsFrom(active, StatusValid, pass, requiredValid),
		statemachine.WithTransitionsFrom(active, StatusInvalid, fail),
		statemachine.WithHook(v.onStatusChange),
	)
}

// onStatusChange mirrors a status change onto the form element and queues the
// matching lifecycle event. It runs with v.mu held.
func (v *FormValidator) onStatusChange(_ context.Context, from, to statemachine.State, _ statemachine.Event) {
	if from.Name() == to.Name() {
		return
	}

	status := Status(to.Name())
	v.form.AddClass(string(status))
	switch status {
	case StatusValid:
		v.form.RemoveClass(string(StatusInvalid))
	case StatusInvalid:
		v.form.RemoveClass(string(StatusValid))
	}

	v.log.Debug("form status changed", logger.Transition(from.Name(), to.Name()))
	v.queue(Event{Type: EventType(status)})
}

func (v *FormValidator) currentStatus() Status {
	return Status(v.status.Current().Name())
}

// touch moves an untouched form to touched.
func (v *FormValidator) touch() {
	if v.status.CanFire(context.Background(), touch, nil) {
		v.fire(touch)
	}
}

// recompute derives the aggregate status from the field records: valid iff
// every non-optional field is valid.
func (v *FormValidator) recompute() {
	if v.status.Is(StatusUntouched) {
		return
	}
	if v.status.CanFire(context.Background(), pass, nil) {
		v.fire(pass)
		return
	}
	v.fire(fail)
}

// requiredValid reports whether every non-optional field is valid.
// Callers must hold v.mu.
func (v *FormValidator) requiredValid() bool {
	for _, f := range v.fields {
		if !v.isOptional(f) && !f.valid {
			return false
		}
	}
	return true
}

func (v *FormValidator) fire(e statemachine.Event) {
	if _, err := v.status.Fire(context.Background(), e, nil); err != nil {
		// the transition table covers every reachable state
		v.log.Error("status transition failed", logger.Event(e.Name()), logger.Error(err))
	}
}

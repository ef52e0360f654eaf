package formvalidator

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/formguard/pkg/dom"
	"github.com/dmitrymomot/formguard/pkg/logger"
)

// Activate binds the validate, change, alert and submit listeners and starts
// polling for externally changed values. Polling stops when ctx is cancelled
// or on Deactivate. Activating an active validator has no effect.
func (v *FormValidator) Activate(ctx context.Context) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.active {
		return
	}
	v.active = true

	for _, f := range v.fields {
		f.lastValue = f.el.Value()
		validate := v.listener(f, v.validate)
		v.bind(f.el, v.opts.ValidateEvent, validate)
		if v.opts.ValidateEvent != dom.EventChange {
			v.bind(f.el, dom.EventChange, validate)
		}
		v.bind(f.el, v.opts.AlertEvent, v.listener(f, v.alert))
	}

	if v.opts.ValidateOnSubmit {
		v.bind(v.form, dom.EventSubmit, func(e *dom.Event) {
			if v.Active() {
				v.OnSubmit(e)
			}
		})
	}

	if d := v.opts.CheckPeriodical; d > 0 {
		pollCtx, cancel := context.WithCancel(ctx)
		v.stopPoll = cancel
		go v.poll(pollCtx, d)
	}

	v.log.Debug("activated",
		logger.Status(v.currentStatus().String()),
		slog.Int("fields", len(v.fields)),
		slog.Int("handlers", v.observers.Len()),
	)
}

// Deactivate unbinds every listener and stops polling. A poll tick already in
// flight becomes a no-op. It is safe to call repeatedly, including from an
// event handler.
func (v *FormValidator) Deactivate() {
	v.mu.Lock()
	if !v.active {
		v.mu.Unlock()
		return
	}
	v.active = false

	for _, remove := range v.unbind {
		remove()
	}
	v.unbind = nil
	for _, f := range v.fields {
		if f.removeCorrection != nil {
			f.removeCorrection()
			f.removeCorrection = nil
		}
		f.watching = false
	}

	if v.stopPoll != nil {
		v.stopPoll()
		v.stopPoll = nil
	}
	v.mu.Unlock()

	v.log.Debug("deactivated")
}

func (v *FormValidator) bind(el dom.Element, event string, fn dom.Listener) {
	if event == "" {
		return
	}
	v.unbind = append(v.unbind, el.AddListener(event, fn))
}

// listener adapts a per-field step into a DOM listener that is a no-op once
// the validator is inactive.
func (v *FormValidator) listener(f *field, step func(*field)) dom.Listener {
	return func(*dom.Event) {
		v.do(func() {
			if v.active {
				step(f)
			}
		})
	}
}

func (v *FormValidator) poll(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			v.do(func() {
				if v.active {
					v.checkForChanges()
				}
			})
		}
	}
}

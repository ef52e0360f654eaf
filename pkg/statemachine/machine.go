package statemachine

import (
	"context"
	"fmt"
	"sync"
)

// Machine is an in-memory finite state machine.
// Transitions are indexed as [fromState][event] and evaluated in
// registration order; the first one whose guards pass wins.
type Machine struct {
	mu          sync.RWMutex
	initial     State
	current     State
	transitions map[string]map[string][]Transition
	hooks       []Hook
}

func newMachine(initial State) *Machine {
	return &Machine{
		initial:     initial,
		current:     initial,
		transitions: make(map[string]map[string][]Transition),
	}
}

func (m *Machine) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Is reports whether the machine is currently in state.
func (m *Machine) Is(state State) bool {
	if state == nil {
		return false
	}
	return m.Current().Name() == state.Name()
}

func (m *Machine) AddTransition(from, to State, event Event, guards []Guard, actions []Action) error {
	if from == nil || to == nil || event == nil {
		return ErrInvalidTransition
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	byEvent, ok := m.transitions[from.Name()]
	if !ok {
		byEvent = make(map[string][]Transition)
		m.transitions[from.Name()] = byEvent
	}
	byEvent[event.Name()] = append(byEvent[event.Name()], Transition{
		From:    from,
		To:      to,
		Event:   event,
		Guards:  guards,
		Actions: actions,
	})
	return nil
}

// Fire applies event to the current state and returns the transition taken.
// Registered hooks are called after the state has been updated.
func (m *Machine) Fire(ctx context.Context, event Event, data any) (Transition, error) {
	if event == nil {
		return Transition{}, ErrInvalidEvent
	}

	m.mu.Lock()
	t, err := m.match(ctx, event, data)
	if err != nil {
		m.mu.Unlock()
		return Transition{}, err
	}

	for _, action := range t.Actions {
		if action == nil {
			continue
		}
		if err := action(ctx, m.current, t.To, event, data); err != nil {
			m.mu.Unlock()
			return Transition{}, fmt.Errorf("action failed: %w", err)
		}
	}

	t.From = m.current
	m.current = t.To
	hooks := m.hooks
	m.mu.Unlock()

	for _, h := range hooks {
		h(ctx, t.From, t.To, event)
	}
	return t, nil
}

func (m *Machine) CanFire(ctx context.Context, event Event, data any) bool {
	if event == nil {
		return false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	_, err := m.match(ctx, event, data)
	return err == nil
}

// Reset returns the machine to its initial state without running hooks.
func (m *Machine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.initial
}

// match finds the first transition from the current state whose guards pass.
// Callers must hold the lock.
func (m *Machine) match(ctx context.Context, event Event, data any) (Transition, error) {
	stateName := m.current.Name()
	candidates := m.transitions[stateName][event.Name()]
	if len(candidates) == 0 {
		return Transition{}, NewErrNoTransitionAvailable(stateName, event.Name())
	}

	for _, t := range candidates {
		if guardsPass(ctx, t.Guards, m.current, event, data) {
			return t, nil
		}
	}
	return Transition{}, NewErrTransitionRejected(stateName, event.Name())
}

func guardsPass(ctx context.Context, guards []Guard, from State, event Event, data any) bool {
	for _, g := range guards {
		if g != nil && !g(ctx, from, event, data) {
			return false
		}
	}
	return true
}

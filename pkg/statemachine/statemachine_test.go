package statemachine_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dmitrymomot/formguard/pkg/statemachine"
)

const (
	Untouched = statemachine.StringState("untouched")
	Touched   = statemachine.StringState("touched")
	Valid     = statemachine.StringState("valid")
	Invalid   = statemachine.StringState("invalid")
)

const (
	Touch = statemachine.StringEvent("touch")
	Pass  = statemachine.StringEvent("pass")
	Fail  = statemachine.StringEvent("fail")
)

func newStatusMachine(t *testing.T, opts ...statemachine.Option) *statemachine.Machine {
	t.Helper()
	active := []statemachine.State{Touched, Valid, Invalid}
	base := []statemachine.Option{
		statemachine.WithTransition(Untouched, Touched, Touch),
		statemachine.WithTransitionsFrom(active, Valid, Pass),
		statemachine.WithTransitionsFrom(active, Invalid, Fail),
	}
	m, err := statemachine.New(Untouched, append(base, opts...)...)
	if err != nil {
		t.Fatalf("failed to build machine: %v", err)
	}
	return m
}

func TestMachine(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("Basic Transitions", func(t *testing.T) {
		t.Parallel()
		m := newStatusMachine(t)

		if !m.Is(Untouched) {
			t.Fatalf("Expected initial state %s, got %s", Untouched, m.Current().Name())
		}
		if m.CanFire(ctx, Pass, nil) {
			t.Fatal("Expected Pass to be unavailable before Touch")
		}

		tr, err := m.Fire(ctx, Touch, nil)
		if err != nil {
			t.Fatalf("Failed to fire Touch: %v", err)
		}
		if tr.From.Name() != "untouched" || tr.To.Name() != "touched" {
			t.Fatalf("Unexpected transition %s -> %s", tr.From.Name(), tr.To.Name())
		}

		if _, err := m.Fire(ctx, Fail, nil); err != nil {
			t.Fatalf("Failed to fire Fail: %v", err)
		}
		if !m.Is(Invalid) {
			t.Fatalf("Expected %s, got %s", Invalid, m.Current().Name())
		}

		m.Reset()
		if !m.Is(Untouched) {
			t.Fatalf("Expected %s after reset, got %s", Untouched, m.Current().Name())
		}
	})

	t.Run("Self Transitions", func(t *testing.T) {
		t.Parallel()
		m := newStatusMachine(t)
		_, _ = m.Fire(ctx, Touch, nil)
		_, _ = m.Fire(ctx, Pass, nil)

		tr, err := m.Fire(ctx, Pass, nil)
		if err != nil {
			t.Fatalf("Failed to fire Pass from valid: %v", err)
		}
		if !tr.IsSelf() {
			t.Fatal("Expected valid -> valid to be a self transition")
		}
	})

	t.Run("No Transition Available", func(t *testing.T) {
		t.Parallel()
		m := newStatusMachine(t)
		_, _ = m.Fire(ctx, Touch, nil)

		_, err := m.Fire(ctx, Touch, nil)
		if !statemachine.IsNoTransitionAvailableError(err) {
			t.Fatalf("Expected ErrNoTransitionAvailable, got %v", err)
		}
		if !strings.Contains(err.Error(), "'touched'") {
			t.Fatalf("Expected state name in error, got %q", err.Error())
		}
	})

	t.Run("Guards", func(t *testing.T) {
		t.Parallel()
		allow := false
		m := statemachine.MustNew(Untouched,
			statemachine.WithTransition(Untouched, Touched, Touch,
				statemachine.WithGuard(func(context.Context, statemachine.State, statemachine.Event, any) bool {
					return allow
				}),
			),
		)

		_, err := m.Fire(ctx, Touch, nil)
		if !statemachine.IsTransitionRejectedError(err) {
			t.Fatalf("Expected ErrTransitionRejected, got %v", err)
		}
		if m.CanFire(ctx, Touch, nil) {
			t.Fatal("Expected CanFire false while guard rejects")
		}

		allow = true
		if _, err := m.Fire(ctx, Touch, nil); err != nil {
			t.Fatalf("Expected guard to pass: %v", err)
		}
	})

	t.Run("Action Failure Aborts", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		m := statemachine.MustNew(Untouched,
			statemachine.WithTransition(Untouched, Touched, Touch,
				statemachine.WithAction(func(context.Context, statemachine.State, statemachine.State, statemachine.Event, any) error {
					return boom
				}),
			),
		)

		_, err := m.Fire(ctx, Touch, nil)
		if !errors.Is(err, boom) {
			t.Fatalf("Expected action error, got %v", err)
		}
		if !m.Is(Untouched) {
			t.Fatalf("State must not change when an action fails, got %s", m.Current().Name())
		}
	})

	t.Run("Hooks", func(t *testing.T) {
		t.Parallel()
		var seen []string
		var m *statemachine.Machine
		m = newStatusMachine(t, statemachine.WithHook(func(_ context.Context, from, to statemachine.State, e statemachine.Event) {
			// hooks run outside the lock
			if m.Current().Name() != to.Name() {
				t.Errorf("Expected machine to already be in %s", to.Name())
			}
			seen = append(seen, from.Name()+">"+to.Name()+":"+e.Name())
		}))

		_, _ = m.Fire(ctx, Touch, nil)
		_, _ = m.Fire(ctx, Fail, nil)
		_, _ = m.Fire(ctx, Fail, nil)
		_, _ = m.Fire(ctx, Touch, nil) // rejected, no hook

		want := []string{"untouched>touched:touch", "touched>invalid:fail", "invalid>invalid:fail"}
		if strings.Join(seen, ",") != strings.Join(want, ",") {
			t.Fatalf("Expected hooks %v, got %v", want, seen)
		}
	})

	t.Run("Invalid Arguments", func(t *testing.T) {
		t.Parallel()
		if _, err := statemachine.New(nil); !errors.Is(err, statemachine.ErrNilInitialState) {
			t.Fatalf("Expected ErrNilInitialState, got %v", err)
		}

		_, err := statemachine.New(Untouched, statemachine.WithTransition(Untouched, nil, Touch))
		if !errors.Is(err, statemachine.ErrInvalidTransition) {
			t.Fatalf("Expected ErrInvalidTransition, got %v", err)
		}

		m := newStatusMachine(t)
		if _, err := m.Fire(ctx, nil, nil); !errors.Is(err, statemachine.ErrInvalidEvent) {
			t.Fatalf("Expected ErrInvalidEvent, got %v", err)
		}
		if m.CanFire(ctx, nil, nil) {
			t.Fatal("Expected CanFire false for nil event")
		}

		defer func() {
			if recover() == nil {
				t.Fatal("Expected MustNew to panic")
			}
		}()
		statemachine.MustNew(nil)
	})
}

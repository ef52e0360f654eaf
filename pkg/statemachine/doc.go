// Package statemachine implements a small finite state machine with guards,
// actions and post-transition hooks.
//
//	const (
//	    Untouched = statemachine.StringState("untouched")
//	    Touched   = statemachine.StringState("touched")
//	    Touch     = statemachine.StringEvent("touch")
//	)
//
//	m := statemachine.MustNew(Untouched,
//	    statemachine.WithTransition(Untouched, Touched, Touch),
//	    statemachine.WithHook(func(ctx context.Context, from, to statemachine.State, e statemachine.Event) {
//	        log.Printf("%s -> %s", from.Name(), to.Name())
//	    }),
//	)
//	_, err := m.Fire(ctx, Touch, nil)
//
// Transitions from the same state on the same event are tried in
// registration order; the first whose guards all pass is taken. Self
// transitions are allowed and reported through Transition.IsSelf, which lets
// callers distinguish "accepted" from "changed".
//
// A Machine is safe for concurrent use. Actions run under the machine's lock
// and must not call back into it; hooks run after the lock is released.
package statemachine

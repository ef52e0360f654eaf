package formvalidator_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formguard/pkg/dom"
	"github.com/dmitrymomot/formguard/pkg/formvalidator"
)

const signupForm = `<!doctype html>
<html><body>
<form id="signup">
  <input name="email" class="validate-email">
  <input name="age" class="validate-numeric">
  <input name="nick" class="optional validate-alpha">
  <input name="bio">
</form>
</body></html>`

type fixture struct {
	doc   *dom.Document
	form  *dom.Node
	email *dom.Node
	age   *dom.Node
	nick  *dom.Node
	bio   *dom.Node
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	doc, err := dom.ParseString(signupForm)
	require.NoError(t, err)
	return fixture{
		doc:   doc,
		form:  doc.MustQuery("form"),
		email: doc.MustQuery("input[name=email]"),
		age:   doc.MustQuery("input[name=age]"),
		nick:  doc.MustQuery("input[name=nick]"),
		bio:   doc.MustQuery("input[name=bio]"),
	}
}

// fill sets every required field to a passing value without events.
func (f fixture) fill() {
	f.email.SetValue("a@b.co")
	f.age.SetValue("42")
	f.bio.SetValue("hello")
}

type recorder struct {
	mu     sync.Mutex
	events []formvalidator.Event
}

func (r *recorder) handle(e formvalidator.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) types() []formvalidator.EventType {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]formvalidator.EventType, len(r.events))
	for i, e := range r.events {
		out[i] = e.Type
	}
	return out
}

func (r *recorder) count(t formvalidator.EventType) int {
	n := 0
	for _, et := range r.types() {
		if et == t {
			n++
		}
	}
	return n
}

func (r *recorder) last() formvalidator.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events[len(r.events)-1]
}

func (r *recorder) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

// newValidator builds an active validator without polling.
func newValidator(t *testing.T, fx fixture, opts ...formvalidator.Option) (*formvalidator.FormValidator, *recorder) {
	t.Helper()
	rec := &recorder{}
	base := []formvalidator.Option{
		formvalidator.WithPollInterval(0),
		formvalidator.WithHandler(rec.handle),
	}
	v, err := formvalidator.New(fx.form, append(base, opts...)...)
	require.NoError(t, err)
	t.Cleanup(v.Deactivate)
	return v, rec
}

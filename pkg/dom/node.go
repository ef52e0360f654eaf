package dom

import (
	"bytes"
	"slices"
	"strings"

	"golang.org/x/net/html"
)

// Node is an Element backed by a Document.
type Node struct {
	doc       *Document
	html      *html.Node
	value     string
	nextID    uint64
	listeners map[string][]listener
}

type listener struct {
	id uint64
	fn Listener
}

var _ Element = (*Node)(nil)

func (n *Node) Tag() string {
	return n.html.Data
}

func (n *Node) Value() string {
	n.doc.mu.RLock()
	defer n.doc.mu.RUnlock()
	return n.value
}

// SetValue changes the value without dispatching any event, the way a
// script assignment does in a browser.
func (n *Node) SetValue(v string) {
	n.doc.mu.Lock()
	defer n.doc.mu.Unlock()
	n.value = v
	if n.Tag() == "input" {
		setAttr(n.html, "value", v)
	}
}

// Input simulates a user typing v: the value changes, then keyup and input
// events are dispatched.
func (n *Node) Input(v string) {
	n.SetValue(v)
	n.Dispatch(NewEvent(EventKeyUp, n))
	n.Dispatch(NewEvent(EventInput, n))
}

// Blur dispatches a blur event.
func (n *Node) Blur() {
	n.Dispatch(NewEvent(EventBlur, n))
}

// Submit dispatches a submit event and reports whether the default action
// would proceed.
func (n *Node) Submit() bool {
	e := NewEvent(EventSubmit, n)
	n.Dispatch(e)
	return !e.DefaultPrevented()
}

func (n *Node) Attr(name string) string {
	n.doc.mu.RLock()
	defer n.doc.mu.RUnlock()
	if name == "value" {
		return n.value
	}
	v, _ := attr(n.html, name)
	return v
}

// SetAttr sets an attribute. Setting "value" is equivalent to SetValue.
func (n *Node) SetAttr(name, value string) {
	if name == "value" {
		n.SetValue(value)
		return
	}
	n.doc.mu.Lock()
	defer n.doc.mu.Unlock()
	setAttr(n.html, name, value)
}

func (n *Node) HasClass(name string) bool {
	return slices.Contains(n.classes(), name)
}

func (n *Node) Classes() []string {
	return n.classes()
}

func (n *Node) AddClass(names ...string) {
	n.doc.mu.Lock()
	defer n.doc.mu.Unlock()

	v, _ := attr(n.html, "class")
	classes := strings.Fields(v)
	changed := false
	for _, name := range names {
		if name != "" && !slices.Contains(classes, name) {
			classes = append(classes, name)
			changed = true
		}
	}
	if changed {
		setAttr(n.html, "class", strings.Join(classes, " "))
	}
}

func (n *Node) RemoveClass(names ...string) {
	n.doc.mu.Lock()
	defer n.doc.mu.Unlock()

	v, ok := attr(n.html, "class")
	if !ok {
		return
	}
	classes := slices.DeleteFunc(strings.Fields(v), func(c string) bool {
		return slices.Contains(names, c)
	})
	setAttr(n.html, "class", strings.Join(classes, " "))
}

func (n *Node) AddListener(event string, fn Listener) func() {
	if fn == nil {
		return func() {}
	}

	n.doc.mu.Lock()
	if n.listeners == nil {
		n.listeners = make(map[string][]listener)
	}
	n.nextID++
	id := n.nextID
	n.listeners[event] = append(n.listeners[event], listener{id: id, fn: fn})
	n.doc.mu.Unlock()

	return func() { n.removeListener(event, id) }
}

// ListenerCount returns how many listeners are bound for event.
func (n *Node) ListenerCount(event string) int {
	n.doc.mu.RLock()
	defer n.doc.mu.RUnlock()
	return len(n.listeners[event])
}

// Dispatch calls the listeners bound for e.Type in registration order.
// A nil Target is set to n.
func (n *Node) Dispatch(e *Event) {
	if e.Target == nil {
		e.Target = n
	}

	n.doc.mu.RLock()
	snapshot := slices.Clone(n.listeners[e.Type])
	n.doc.mu.RUnlock()

	for _, l := range snapshot {
		l.fn(e)
	}
}

func (n *Node) QueryAll(selector string) ([]Element, error) {
	nodes, err := n.doc.queryAll(n.html, selector)
	if err != nil {
		return nil, err
	}
	out := make([]Element, len(nodes))
	for i, node := range nodes {
		out[i] = node
	}
	return out, nil
}

// OuterHTML renders the element and its children.
func (n *Node) OuterHTML() string {
	n.doc.mu.RLock()
	defer n.doc.mu.RUnlock()
	var buf bytes.Buffer
	_ = html.Render(&buf, n.html)
	return buf.String()
}

func (n *Node) classes() []string {
	n.doc.mu.RLock()
	defer n.doc.mu.RUnlock()
	v, _ := attr(n.html, "class")
	return strings.Fields(v)
}

func (n *Node) removeListener(event string, id uint64) {
	n.doc.mu.Lock()
	defer n.doc.mu.Unlock()
	n.listeners[event] = slices.DeleteFunc(n.listeners[event], func(l listener) bool {
		return l.id == id
	})
}

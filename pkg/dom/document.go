package dom

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var optionSelector = cascadia.MustCompile("option")

// Document is an in-memory element tree parsed from HTML. It stands in for a
// browser DOM: element state can be mutated programmatically and events can
// be dispatched to listeners.
//
// A Document is safe for concurrent use. Listeners are invoked without any
// document lock held.
type Document struct {
	mu    sync.RWMutex
	root  *html.Node
	nodes map[*html.Node]*Node
}

// Parse reads an HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, errors.Join(ErrParse, err)
	}
	return &Document{root: root, nodes: make(map[*html.Node]*Node)}, nil
}

// ParseString is Parse for an in-memory string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// MustParseString works like ParseString but panics on error.
func MustParseString(s string) *Document {
	doc, err := ParseString(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse document: %v", err))
	}
	return doc
}

// QueryAll returns every element matching selector.
func (d *Document) QueryAll(selector string) ([]*Node, error) {
	return d.queryAll(d.root, selector)
}

// Query returns the first element matching selector.
func (d *Document) Query(selector string) (*Node, error) {
	nodes, err := d.QueryAll(selector)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, selector)
	}
	return nodes[0], nil
}

// MustQuery works like Query but panics when nothing matches.
func (d *Document) MustQuery(selector string) *Node {
	n, err := d.Query(selector)
	if err != nil {
		panic(err)
	}
	return n
}

// Render writes the current state of the document as HTML.
func (d *Document) Render(w io.Writer) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return html.Render(w, d.root)
}

func (d *Document) queryAll(from *html.Node, selector string) ([]*Node, error) {
	sel, err := cascadia.ParseGroup(selector)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidSelector, selector, err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	matches := cascadia.QueryAll(from, sel)
	out := make([]*Node, 0, len(matches))
	for _, m := range matches {
		out = append(out, d.wrap(m))
	}
	return out, nil
}

// wrap returns the stable Node for h. Callers must hold the write lock.
func (d *Document) wrap(h *html.Node) *Node {
	if n, ok := d.nodes[h]; ok {
		return n
	}
	n := &Node{doc: d, html: h, value: initialValue(h)}
	d.nodes[h] = n
	return n
}

// initialValue derives the form value an element starts with.
func initialValue(h *html.Node) string {
	switch h.DataAtom {
	case atom.Textarea:
		return textContent(h)
	case atom.Select:
		var first string
		found := false
		for _, opt := range cascadia.QueryAll(h, optionSelector) {
			v, ok := attr(opt, "value")
			if !ok {
				v = strings.TrimSpace(textContent(opt))
			}
			if _, selected := attr(opt, "selected"); selected {
				return v
			}
			if !found {
				first, found = v, true
			}
		}
		return first
	default:
		v, _ := attr(h, "value")
		return v
	}
}

func textContent(h *html.Node) string {
	var buf bytes.Buffer
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(h)
	return buf.String()
}

func attr(h *html.Node, name string) (string, bool) {
	for _, a := range h.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func setAttr(h *html.Node, name, value string) {
	for i, a := range h.Attr {
		if a.Namespace == "" && a.Key == name {
			h.Attr[i].Val = value
			return
		}
	}
	h.Attr = append(h.Attr, html.Attribute{Key: name, Val: value})
}

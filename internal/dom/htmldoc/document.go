// Package htmldoc implements the dom interfaces over an x/net/html node tree
// with cascadia selectors. It backs the widget outside the browser.
package htmldoc

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/dwikikusuma/cart-widget/internal/dom"
)

const blankPage = `<!DOCTYPE html><html><head></head><body></body></html>`

var _ dom.Document = (*Document)(nil)

type Document struct {
	root *html.Node
	log  *slog.Logger

	mu        sync.Mutex
	selectors map[string]cascadia.Selector
	listeners map[string][]dom.Listener
}

type Option func(*Document)

func WithLogger(log *slog.Logger) Option {
	return func(d *Document) { d.log = log }
}

func Parse(r io.Reader, opts ...Option) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	d := &Document{
		root:      root,
		log:       slog.Default(),
		selectors: make(map[string]cascadia.Selector),
		listeners: make(map[string][]dom.Listener),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// ParseString is Parse for inline markup.
func ParseString(markup string, opts ...Option) (*Document, error) {
	return Parse(strings.NewReader(markup), opts...)
}

// Blank returns an empty page with a body.
func Blank(opts ...Option) *Document {
	d, err := ParseString(blankPage, opts...)
	if err != nil {
		panic(err)
	}
	return d
}

func (d *Document) wrap(n *html.Node) *Element {
	return &Element{doc: d, n: n}
}

func (d *Document) compile(selector string) (cascadia.Selector, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if sel, ok := d.selectors[selector]; ok {
		return sel, sel != nil
	}
	sel, err := cascadia.Compile(selector)
	if err != nil {
		d.log.Debug("invalid selector", slog.String("selector", selector), slog.Any("err", err))
		d.selectors[selector] = nil
		return nil, false
	}
	d.selectors[selector] = sel
	return sel, true
}

func (d *Document) GetElementByID(id string) (dom.Element, bool) {
	if id == "" {
		return nil, false
	}
	var found *html.Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && attr(n, "id") == id {
			found = n
			return false
		}
		return true
	})
	if found == nil {
		return nil, false
	}
	return d.wrap(found), true
}

func (d *Document) QuerySelector(selector string) (dom.Element, bool) {
	return d.query(d.root, selector)
}

func (d *Document) QuerySelectorAll(selector string) []dom.Element {
	return d.queryAll(d.root, selector)
}

func (d *Document) query(n *html.Node, selector string) (dom.Element, bool) {
	sel, ok := d.compile(selector)
	if !ok {
		return nil, false
	}
	found := cascadia.Query(n, sel)
	if found == nil {
		return nil, false
	}
	return d.wrap(found), true
}

func (d *Document) queryAll(n *html.Node, selector string) []dom.Element {
	sel, ok := d.compile(selector)
	if !ok {
		return nil
	}
	nodes := cascadia.QueryAll(n, sel)
	out := make([]dom.Element, 0, len(nodes))
	for _, found := range nodes {
		out = append(out, d.wrap(found))
	}
	return out
}

func (d *Document) CreateElement(tag string) dom.Element {
	tag = strings.ToLower(tag)
	return d.wrap(&html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	})
}

func (d *Document) Body() (dom.Element, bool) {
	var body *html.Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.DataAtom == atom.Body {
			body = n
			return false
		}
		return true
	})
	if body == nil {
		return nil, false
	}
	return d.wrap(body), true
}

func (d *Document) AddEventListener(eventType string, fn dom.Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners[eventType] = append(d.listeners[eventType], fn)
}

// Dispatch delivers ev to every listener registered for its type, in
// registration order. A panicking listener does not stop the others.
func (d *Document) Dispatch(ev dom.Event) {
	d.mu.Lock()
	fns := append([]dom.Listener(nil), d.listeners[ev.Type]...)
	d.mu.Unlock()

	for _, fn := range fns {
		d.invoke(fn, ev)
	}
}

func (d *Document) invoke(fn dom.Listener, ev dom.Event) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Error("listener panicked", slog.String("event", ev.Type), slog.Any("panic", r))
		}
	}()
	fn(ev)
}

// Click dispatches a click targeted at el.
func (d *Document) Click(el dom.Element) {
	d.Dispatch(dom.Event{Type: dom.EventClick, Target: el})
}

// KeyDown dispatches a keydown for key targeted at the body.
func (d *Document) KeyDown(key string) {
	ev := dom.Event{Type: dom.EventKeyDown, Key: key}
	if body, ok := d.Body(); ok {
		ev.Target = body
	}
	d.Dispatch(ev)
}

func (d *Document) HTML() string {
	var buf bytes.Buffer
	if err := html.Render(&buf, d.root); err != nil {
		return ""
	}
	return buf.String()
}

// walk visits n and its descendants depth first until fn returns false.
func walk(n *html.Node, fn func(*html.Node) bool) bool {
	if !fn(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, fn) {
			return false
		}
	}
	return true
}

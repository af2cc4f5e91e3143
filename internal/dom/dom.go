// Package dom is the slice of the browser document model the cart widget
// needs. Every lookup returns (value, ok) so callers have an explicit branch
// for absent elements.
package dom

import "time"

const (
	EventClick   = "click"
	EventKeyDown = "keydown"
)

type Element interface {
	ID() string
	Attr(name string) (string, bool)
	SetAttr(name, value string)
	HasClass(name string) bool
	AddClass(name string)
	RemoveClass(name string)
	// SetStyle sets one inline style property; an empty value removes it.
	SetStyle(prop, value string)
	Text() string
	SetText(text string)
	InnerHTML() string
	SetInnerHTML(markup string) error
	AppendChild(child Element)
	QuerySelector(selector string) (Element, bool)
	QuerySelectorAll(selector string) []Element
	// Closest matches the element itself or its nearest ancestor.
	Closest(selector string) (Element, bool)
	// Connected reports whether the element is still attached to its document.
	Connected() bool
}

type Document interface {
	GetElementByID(id string) (Element, bool)
	QuerySelector(selector string) (Element, bool)
	QuerySelectorAll(selector string) []Element
	CreateElement(tag string) Element
	Body() (Element, bool)
	AddEventListener(eventType string, fn Listener)
}

// Event carries what the widget reads off a DOM event. Target may be nil when
// the platform target is not an element.
type Event struct {
	Type   string
	Target Element
	Key    string
}

type Listener func(Event)

type Location interface {
	Pathname() string
	Search() string
	Assign(href string)
}

// Scheduler runs fn once after d on the same event loop as the listeners.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func())
}

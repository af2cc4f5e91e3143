//go:build js && wasm

// Package jsdom binds the dom interfaces to the browser through syscall/js.
package jsdom

import (
	"syscall/js"
	"time"

	"github.com/dwikikusuma/cart-widget/internal/dom"
)

var (
	_ dom.Document  = (*Document)(nil)
	_ dom.Element   = (*Element)(nil)
	_ dom.Location  = (*Location)(nil)
	_ dom.Scheduler = (*Scheduler)(nil)
)

type Document struct {
	v     js.Value
	funcs []js.Func
}

func Current() *Document {
	return &Document{v: js.Global().Get("document")}
}

func present(v js.Value) bool {
	return !v.IsUndefined() && !v.IsNull()
}

func wrap(v js.Value) (dom.Element, bool) {
	if !present(v) || v.Get("closest").Type() != js.TypeFunction {
		return nil, false
	}
	return &Element{v: v}, true
}

func wrapAll(list js.Value) []dom.Element {
	if !present(list) {
		return nil
	}
	n := list.Length()
	out := make([]dom.Element, 0, n)
	for i := 0; i < n; i++ {
		if el, ok := wrap(list.Index(i)); ok {
			out = append(out, el)
		}
	}
	return out
}

// call invokes a DOM method, turning a thrown exception (bad selector) into
// an absent result.
func call(v js.Value, method string, args ...any) (out js.Value, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			out, ok = js.Null(), false
		}
	}()
	return v.Call(method, args...), true
}

func (d *Document) GetElementByID(id string) (dom.Element, bool) {
	v, ok := call(d.v, "getElementById", id)
	if !ok {
		return nil, false
	}
	return wrap(v)
}

func (d *Document) QuerySelector(selector string) (dom.Element, bool) {
	v, ok := call(d.v, "querySelector", selector)
	if !ok {
		return nil, false
	}
	return wrap(v)
}

func (d *Document) QuerySelectorAll(selector string) []dom.Element {
	v, ok := call(d.v, "querySelectorAll", selector)
	if !ok {
		return nil
	}
	return wrapAll(v)
}

func (d *Document) CreateElement(tag string) dom.Element {
	return &Element{v: d.v.Call("createElement", tag)}
}

func (d *Document) Body() (dom.Element, bool) {
	return wrap(d.v.Get("body"))
}

func (d *Document) AddEventListener(eventType string, fn dom.Listener) {
	f := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		ev := args[0]
		out := dom.Event{Type: ev.Get("type").String()}
		if key := ev.Get("key"); key.Type() == js.TypeString {
			out.Key = key.String()
		}
		if target, ok := wrap(ev.Get("target")); ok {
			out.Target = target
		}
		fn(out)
		return nil
	})
	d.funcs = append(d.funcs, f)
	d.v.Call("addEventListener", eventType, f)
}

type Element struct {
	v js.Value
}

func (e *Element) ID() string { return e.v.Get("id").String() }

func (e *Element) Attr(name string) (string, bool) {
	v := e.v.Call("getAttribute", name)
	if !present(v) {
		return "", false
	}
	return v.String(), true
}

func (e *Element) SetAttr(name, value string) { e.v.Call("setAttribute", name, value) }

func (e *Element) HasClass(name string) bool {
	return e.v.Get("classList").Call("contains", name).Bool()
}

func (e *Element) AddClass(name string) { e.v.Get("classList").Call("add", name) }

func (e *Element) RemoveClass(name string) { e.v.Get("classList").Call("remove", name) }

func (e *Element) SetStyle(prop, value string) {
	if value == "" {
		e.v.Get("style").Call("removeProperty", prop)
		return
	}
	e.v.Get("style").Call("setProperty", prop, value)
}

func (e *Element) Text() string { return e.v.Get("textContent").String() }

func (e *Element) SetText(text string) { e.v.Set("textContent", text) }

func (e *Element) InnerHTML() string { return e.v.Get("innerHTML").String() }

func (e *Element) SetInnerHTML(markup string) error {
	e.v.Set("innerHTML", markup)
	return nil
}

func (e *Element) AppendChild(child dom.Element) {
	if c, ok := child.(*Element); ok {
		e.v.Call("appendChild", c.v)
	}
}

func (e *Element) QuerySelector(selector string) (dom.Element, bool) {
	v, ok := call(e.v, "querySelector", selector)
	if !ok {
		return nil, false
	}
	return wrap(v)
}

func (e *Element) QuerySelectorAll(selector string) []dom.Element {
	v, ok := call(e.v, "querySelectorAll", selector)
	if !ok {
		return nil
	}
	return wrapAll(v)
}

func (e *Element) Closest(selector string) (dom.Element, bool) {
	v, ok := call(e.v, "closest", selector)
	if !ok {
		return nil, false
	}
	return wrap(v)
}

func (e *Element) Connected() bool { return e.v.Get("isConnected").Bool() }

type Location struct {
	v js.Value
}

func CurrentLocation() *Location {
	return &Location{v: js.Global().Get("location")}
}

func (l *Location) Pathname() string { return l.v.Get("pathname").String() }

func (l *Location) Search() string { return l.v.Get("search").String() }

func (l *Location) Assign(href string) { l.v.Set("href", href) }

// Scheduler uses window.setTimeout so callbacks run on the page's event loop.
type Scheduler struct{}

func (Scheduler) AfterFunc(d time.Duration, fn func()) {
	var f js.Func
	f = js.FuncOf(func(this js.Value, args []js.Value) any {
		defer f.Release()
		fn()
		return nil
	})
	js.Global().Call("setTimeout", f, d.Milliseconds())
}

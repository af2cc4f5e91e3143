package htmldoc

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"

	"github.com/dwikikusuma/cart-widget/internal/dom"
)

var _ dom.Element = (*Element)(nil)

type Element struct {
	doc *Document
	n   *html.Node
}

func (e *Element) ID() string { return attr(e.n, "id") }

func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func (e *Element) SetAttr(name, value string) {
	for i, a := range e.n.Attr {
		if a.Namespace == "" && a.Key == name {
			e.n.Attr[i].Val = value
			return
		}
	}
	e.n.Attr = append(e.n.Attr, html.Attribute{Key: name, Val: value})
}

func (e *Element) removeAttr(name string) {
	out := e.n.Attr[:0]
	for _, a := range e.n.Attr {
		if a.Namespace == "" && a.Key == name {
			continue
		}
		out = append(out, a)
	}
	e.n.Attr = out
}

func (e *Element) classes() []string {
	return strings.Fields(attr(e.n, "class"))
}

func (e *Element) HasClass(name string) bool {
	for _, c := range e.classes() {
		if c == name {
			return true
		}
	}
	return false
}

func (e *Element) AddClass(name string) {
	if e.HasClass(name) {
		return
	}
	e.SetAttr("class", strings.Join(append(e.classes(), name), " "))
}

func (e *Element) RemoveClass(name string) {
	if !e.HasClass(name) {
		return
	}
	kept := make([]string, 0, len(e.classes()))
	for _, c := range e.classes() {
		if c != name {
			kept = append(kept, c)
		}
	}
	e.SetAttr("class", strings.Join(kept, " "))
}

// Style returns one inline style property.
func (e *Element) Style(prop string) string {
	for _, decl := range parseStyle(attr(e.n, "style")) {
		if decl[0] == prop {
			return decl[1]
		}
	}
	return ""
}

func (e *Element) SetStyle(prop, value string) {
	prop = strings.ToLower(strings.TrimSpace(prop))
	decls := parseStyle(attr(e.n, "style"))
	out := decls[:0]
	replaced := false
	for _, decl := range decls {
		if decl[0] != prop {
			out = append(out, decl)
			continue
		}
		if value != "" && !replaced {
			out = append(out, [2]string{prop, value})
			replaced = true
		}
	}
	if value != "" && !replaced {
		out = append(out, [2]string{prop, value})
	}
	if len(out) == 0 {
		e.removeAttr("style")
		return
	}
	parts := make([]string, 0, len(out))
	for _, decl := range out {
		parts = append(parts, decl[0]+": "+decl[1])
	}
	e.SetAttr("style", strings.Join(parts, "; "))
}

func parseStyle(style string) [][2]string {
	var out [][2]string
	for _, part := range strings.Split(style, ";") {
		prop, val, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		prop = strings.ToLower(strings.TrimSpace(prop))
		if prop == "" {
			continue
		}
		out = append(out, [2]string{prop, strings.TrimSpace(val)})
	}
	return out
}

func (e *Element) Text() string {
	var sb strings.Builder
	walk(e.n, func(n *html.Node) bool {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		return true
	})
	return sb.String()
}

func (e *Element) SetText(text string) {
	e.clear()
	e.n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

func (e *Element) SetInnerHTML(markup string) error {
	nodes, err := html.ParseFragment(strings.NewReader(markup), e.n)
	if err != nil {
		return err
	}
	e.clear()
	for _, n := range nodes {
		e.n.AppendChild(n)
	}
	return nil
}

// InnerHTML renders the element's children.
func (e *Element) InnerHTML() string {
	var buf bytes.Buffer
	for c := e.n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return ""
		}
	}
	return buf.String()
}

func (e *Element) clear() {
	for c := e.n.FirstChild; c != nil; {
		next := c.NextSibling
		e.n.RemoveChild(c)
		c = next
	}
}

func (e *Element) AppendChild(child dom.Element) {
	c, ok := child.(*Element)
	if !ok {
		return
	}
	if c.n.Parent != nil {
		c.n.Parent.RemoveChild(c.n)
	}
	e.n.AppendChild(c.n)
}

func (e *Element) QuerySelector(selector string) (dom.Element, bool) {
	return e.doc.query(e.n, selector)
}

func (e *Element) QuerySelectorAll(selector string) []dom.Element {
	return e.doc.queryAll(e.n, selector)
}

func (e *Element) Closest(selector string) (dom.Element, bool) {
	sel, ok := e.doc.compile(selector)
	if !ok {
		return nil, false
	}
	for n := e.n; n != nil; n = n.Parent {
		if n.Type == html.ElementNode && sel.Match(n) {
			return e.doc.wrap(n), true
		}
	}
	return nil, false
}

func (e *Element) Connected() bool {
	n := e.n
	for n.Parent != nil {
		n = n.Parent
	}
	return n == e.doc.root
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

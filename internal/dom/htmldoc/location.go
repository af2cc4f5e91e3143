package htmldoc

import (
	"net/url"

	"github.com/dwikikusuma/cart-widget/internal/dom"
)

var _ dom.Location = (*Location)(nil)

// Location is an in-memory window.location. Assign resolves href against the
// current URL and records it instead of loading a page.
type Location struct {
	current *url.URL
	history []string
}

func NewLocation(rawURL string) (*Location, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	if u.Path == "" {
		u.Path = "/"
	}
	return &Location{current: u}, nil
}

func (l *Location) Pathname() string { return l.current.EscapedPath() }

func (l *Location) Search() string {
	if l.current.RawQuery == "" {
		return ""
	}
	return "?" + l.current.RawQuery
}

func (l *Location) Assign(href string) {
	ref, err := url.Parse(href)
	if err != nil {
		return
	}
	l.current = l.current.ResolveReference(ref)
	l.history = append(l.history, href)
}

func (l *Location) Href() string { return l.current.String() }

// Navigations lists every href passed to Assign.
func (l *Location) Navigations() []string {
	return append([]string(nil), l.history...)
}

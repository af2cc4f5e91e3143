package ui

import (
	"net/url"
	"strings"
	"time"

	"github.com/dwikikusuma/cart-widget/internal/dom"
)

const (
	ListingPage = "produkte.html"

	// QueryReplayDelay lets the listing page finish its first render before a
	// q parameter is applied.
	QueryReplayDelay = 50 * time.Millisecond
)

// Search filters product cards on the listing page and sends queries typed
// elsewhere to it.
type Search struct {
	doc   dom.Document
	loc   dom.Location
	sched dom.Scheduler
}

func NewSearch(doc dom.Document, loc dom.Location, sched dom.Scheduler) *Search {
	return &Search{doc: doc, loc: loc, sched: sched}
}

// Filter hides every product card whose title, description and price text
// all miss the query. An empty query shows every card.
func (s *Search) Filter(query string) {
	q := strings.ToLower(strings.TrimSpace(query))
	for _, card := range s.doc.QuerySelectorAll(".product-card") {
		if q == "" || cardMatches(card, q) {
			card.SetStyle("display", "")
		} else {
			card.SetStyle("display", "none")
		}
	}
}

func cardMatches(card dom.Element, q string) bool {
	for _, sel := range []string{"h2", ".product-desc", ".product-price"} {
		el, ok := card.QuerySelector(sel)
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(el.Text()), q) {
			return true
		}
	}
	return false
}

func (s *Search) PerformSearch(query string) {
	q := strings.TrimSpace(query)
	if q == "" {
		return
	}

	path := s.loc.Pathname()
	if onListingPage(path) {
		s.Filter(q)
		if overlay, ok := s.doc.GetElementByID(searchOverlayID); ok {
			overlay.RemoveClass("open")
		}
		return
	}

	dir := path[:strings.LastIndex(path, "/")+1]
	if dir == "" {
		dir = "/"
	}
	s.loc.Assign(dir + ListingPage + "?" + url.Values{"q": {q}}.Encode())
}

// ApplyQueryParam re-runs a search carried in the URL once the listing page
// has settled.
func (s *Search) ApplyQueryParam() {
	q := queryParam(strings.TrimPrefix(s.loc.Search(), "?"), "q")
	if q == "" || !onListingPage(s.loc.Pathname()) {
		return
	}
	s.sched.AfterFunc(QueryReplayDelay, func() { s.Filter(q) })
}

// queryParam reads the first value of key the way URLSearchParams does:
// pairs split on & only, and a malformed escape is kept as literal text
// instead of invalidating the query.
func queryParam(rawQuery, key string) string {
	for _, pair := range strings.Split(rawQuery, "&") {
		k, v, _ := strings.Cut(pair, "=")
		if lenientUnescape(k) == key {
			return lenientUnescape(v)
		}
	}
	return ""
}

func lenientUnescape(s string) string {
	if out, err := url.QueryUnescape(s); err == nil {
		return out
	}
	return strings.ReplaceAll(s, "+", " ")
}

func onListingPage(path string) bool {
	return strings.Contains(path, ListingPage) || path == "/" || strings.HasSuffix(path, "/")
}

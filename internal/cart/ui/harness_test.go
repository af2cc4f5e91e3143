package ui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dwikikusuma/cart-widget/internal/cart/app"
	"github.com/dwikikusuma/cart-widget/internal/cart/infra/memory"
	"github.com/dwikikusuma/cart-widget/internal/dom"
	"github.com/dwikikusuma/cart-widget/internal/dom/domtest"
	"github.com/dwikikusuma/cart-widget/internal/dom/htmldoc"
)

const listingPage = `<!DOCTYPE html><html><body>
<header><button class="icon-btn badge" data-count="0">Warenkorb</button></header>
<div id="searchOverlay" class="search-overlay open"></div>
<main id="grid">
  <article class="product-card" id="card-p1">
    <h2>Honigglas</h2>
    <p class="product-desc">Blütenhonig aus der Region</p>
    <p class="product-price">8.50 €</p>
    <button class="btn add-to-cart" data-id="p1" data-name="Honigglas" data-price="8.5"><span>In den Warenkorb</span></button>
  </article>
  <article class="product-card" id="card-p2">
    <h2>Waldhonig</h2>
    <p class="product-desc">Dunkel und kräftig</p>
    <p class="product-price">6.50 €</p>
    <button class="btn add-to-cart" data-id="p2" data-name="Waldhonig" data-price="6.5">In den Warenkorb</button>
  </article>
  <article class="product-card" id="card-p3">
    <h2>Bienenwachskerze</h2>
    <p class="product-desc">Handgezogen</p>
    <p class="product-price">12 €</p>
    <button class="btn add-to-cart" data-id="p3" data-name="Bienenwachskerze" data-price="kaputt">In den Warenkorb</button>
  </article>
</main>
</body></html>`

type harness struct {
	ctx    context.Context
	doc    *htmldoc.Document
	loc    *htmldoc.Location
	sched  *domtest.Scheduler
	store  *app.Store
	drawer *Drawer
	cart   *app.Service
	search *Search
}

func newHarness(t *testing.T, markup, pageURL string) *harness {
	t.Helper()
	doc, err := htmldoc.ParseString(markup)
	require.NoError(t, err)
	loc, err := htmldoc.NewLocation(pageURL)
	require.NoError(t, err)

	h := &harness{
		ctx:   context.Background(),
		doc:   doc,
		loc:   loc,
		sched: domtest.NewScheduler(),
		store: app.NewStore(memory.NewStorage(), nil),
	}
	h.drawer = NewDrawer(doc, h.store, nil)
	h.cart = app.NewService(h.store, NewBadge(doc, h.store), h.drawer, nil)
	h.search = NewSearch(doc, loc, h.sched)
	NewRouter(doc, h.cart, loc, h.sched, nil).Attach(h.ctx)
	return h
}

func (h *harness) el(t *testing.T, selector string) dom.Element {
	t.Helper()
	el, ok := h.doc.QuerySelector(selector)
	require.True(t, ok, "no element for %s", selector)
	return el
}

func (h *harness) click(t *testing.T, selector string) {
	t.Helper()
	h.doc.Click(h.el(t, selector))
}

func (h *harness) attr(t *testing.T, selector, name string) string {
	t.Helper()
	v, _ := h.el(t, selector).Attr(name)
	return v
}

// Package widget mounts the cart onto a page: it builds the cart service,
// presenters and router for one page load and exposes the entry points page
// markup calls directly.
package widget

import (
	"context"
	"log/slog"

	"github.com/dwikikusuma/cart-widget/internal/cart/app"
	"github.com/dwikikusuma/cart-widget/internal/cart/ui"
	"github.com/dwikikusuma/cart-widget/internal/dom"
)

type Env struct {
	Document  dom.Document
	Location  dom.Location
	Scheduler dom.Scheduler
	Storage   app.Storage
	Logger    *slog.Logger
}

type Widget struct {
	cart   *app.Service
	search *ui.Search
}

// Mount wires the widget into env and performs the first render. It must run
// on the page's event loop, as must every later call on the Widget.
func Mount(ctx context.Context, env Env) *Widget {
	log := env.Logger
	if log == nil {
		log = slog.Default()
	}

	store := app.NewStore(env.Storage, log)
	badge := ui.NewBadge(env.Document, store)
	drawer := ui.NewDrawer(env.Document, store, log)
	cart := app.NewService(store, badge, drawer, log)
	search := ui.NewSearch(env.Document, env.Location, env.Scheduler)

	ui.NewRouter(env.Document, cart, env.Location, env.Scheduler, log).Attach(ctx)

	cart.Refresh(ctx)
	search.ApplyQueryParam()

	return &Widget{cart: cart, search: search}
}

func (w *Widget) Cart() *app.Service { return w.cart }

func (w *Widget) OpenCart(ctx context.Context) { w.cart.OpenDrawer(ctx) }

func (w *Widget) CloseCart() { w.cart.CloseDrawer() }

func (w *Widget) AddToCartItem(ctx context.Context, id, name, price string) error {
	return w.cart.AddItemRaw(ctx, id, name, price)
}

func (w *Widget) PerformSearch(query string) { w.search.PerformSearch(query) }

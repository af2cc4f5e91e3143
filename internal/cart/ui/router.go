package ui

import (
	"context"
	"log/slog"
	"time"

	"github.com/dwikikusuma/cart-widget/internal/dom"
)

const (
	CheckoutURL = "checkout.html"

	AddedLabel  = "Hinzugefügt ✓"
	// AddLabel is the fallback when a control's own markup cannot be restored.
	AddLabel    = "In den Warenkorb"
	LabelRevert = 900 * time.Millisecond

	searchOverlayID = "searchOverlay"
)

// Actions is what gestures can do to the cart.
type Actions interface {
	AddItemRaw(ctx context.Context, id, name, price string) error
	ChangeQty(ctx context.Context, id string, delta int)
	RemoveItem(ctx context.Context, id string)
	CloseDrawer()
}

type route struct {
	selector string
	handle   func(ctx context.Context, control dom.Element)
}

// Router maps clicks and key presses anywhere in the document onto cart
// actions. Controls are matched when the event arrives, so markup the drawer
// regenerates keeps working without rebinding.
type Router struct {
	doc     dom.Document
	actions Actions
	loc     dom.Location
	sched   dom.Scheduler
	log     *slog.Logger
	routes  []route
}

func NewRouter(doc dom.Document, actions Actions, loc dom.Location, sched dom.Scheduler, log *slog.Logger) *Router {
	if log == nil {
		log = slog.Default()
	}
	r := &Router{doc: doc, actions: actions, loc: loc, sched: sched, log: log}
	r.routes = []route{
		{".add-to-cart", r.addToCart},
		{".ci-increase", func(ctx context.Context, el dom.Element) { r.actions.ChangeQty(ctx, dataID(el), 1) }},
		{".ci-decrease", func(ctx context.Context, el dom.Element) { r.actions.ChangeQty(ctx, dataID(el), -1) }},
		{".ci-remove", func(ctx context.Context, el dom.Element) { r.actions.RemoveItem(ctx, dataID(el)) }},
		{"[data-close-cart]", func(context.Context, dom.Element) { r.actions.CloseDrawer() }},
	}
	return r
}

// Attach registers the document-level listeners. Call it once per page.
func (r *Router) Attach(ctx context.Context) {
	r.doc.AddEventListener(dom.EventClick, func(ev dom.Event) { r.Click(ctx, ev) })
	r.doc.AddEventListener(dom.EventClick, func(ev dom.Event) { r.Checkout(ev) })
	r.doc.AddEventListener(dom.EventKeyDown, func(ev dom.Event) { r.KeyDown(ev) })
}

// Click runs the first route whose control contains the target.
func (r *Router) Click(ctx context.Context, ev dom.Event) {
	if ev.Target == nil {
		return
	}
	for _, rt := range r.routes {
		if control, ok := ev.Target.Closest(rt.selector); ok {
			rt.handle(ctx, control)
			return
		}
	}
}

func (r *Router) Checkout(ev dom.Event) {
	if ev.Target == nil {
		return
	}
	if _, ok := ev.Target.Closest(".checkout"); ok {
		r.loc.Assign(CheckoutURL)
	}
}

func (r *Router) KeyDown(ev dom.Event) {
	if ev.Key != "Escape" {
		return
	}
	r.actions.CloseDrawer()
	if overlay, ok := r.doc.GetElementByID(searchOverlayID); ok {
		overlay.RemoveClass("open")
	}
}

func (r *Router) addToCart(ctx context.Context, control dom.Element) {
	id := dataID(control)
	name, _ := control.Attr("data-name")
	price, _ := control.Attr("data-price")
	if err := r.actions.AddItemRaw(ctx, id, name, price); err != nil {
		return
	}

	// a second click while the confirmation shows rides the first revert
	if control.Text() == AddedLabel {
		return
	}
	orig := control.InnerHTML()
	control.SetText(AddedLabel)
	r.sched.AfterFunc(LabelRevert, func() {
		// the drawer or page may have replaced the control by now
		if !control.Connected() {
			return
		}
		if err := control.SetInnerHTML(orig); err != nil {
			r.log.Warn("add label restore failed", slog.String("id", id), slog.Any("err", err))
			control.SetText(AddLabel)
		}
	})
}

func dataID(el dom.Element) string {
	id, _ := el.Attr("data-id")
	return id
}

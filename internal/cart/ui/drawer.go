package ui

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/dwikikusuma/cart-widget/internal/cart/domain"
	"github.com/dwikikusuma/cart-widget/internal/dom"
)

const (
	DrawerID         = "cartDrawer"
	drawerBodySel    = "#" + DrawerID + " .drawer-body"
	drawerOpenClass  = "open"
	EmptyPlaceholder = "Noch leer."
)

const drawerShell = `<div class="drawer-head">` +
	`<div class="drawer-title">Warenkorb</div>` +
	`<button class="x" type="button" aria-label="Schließen" data-close-cart>` +
	`<svg viewBox="0 0 24 24" fill="none" stroke-width="2" stroke-linecap="round" aria-hidden="true"><path d="M6 6l12 12M18 6L6 18"></path></svg>` +
	`</button>` +
	`</div>` +
	`<div class="drawer-body">` + EmptyPlaceholder + `</div>`

// Drawer is the slide-out cart panel. It starts Closed; Open and Close move
// it between the two states and the open class on the container is the
// state's only record.
type Drawer struct {
	doc   dom.Document
	carts CartSource
	log   *slog.Logger
}

func NewDrawer(doc dom.Document, carts CartSource, log *slog.Logger) *Drawer {
	if log == nil {
		log = slog.Default()
	}
	return &Drawer{doc: doc, carts: carts, log: log}
}

// EnsureExists creates the drawer container once. The boolean is false when
// the page has no body to attach to.
func (d *Drawer) EnsureExists() (dom.Element, bool) {
	if el, ok := d.doc.GetElementByID(DrawerID); ok {
		return el, true
	}
	body, ok := d.doc.Body()
	if !ok {
		return nil, false
	}

	aside := d.doc.CreateElement("aside")
	aside.SetAttr("id", DrawerID)
	aside.SetAttr("class", "drawer")
	aside.SetAttr("aria-label", "Warenkorb")
	aside.SetAttr("aria-hidden", "true")
	if err := aside.SetInnerHTML(drawerShell); err != nil {
		d.log.Error("drawer markup rejected", slog.Any("err", err))
		return nil, false
	}
	body.AppendChild(aside)
	return aside, true
}

func (d *Drawer) Open(ctx context.Context) {
	el, ok := d.EnsureExists()
	if !ok {
		return
	}
	el.AddClass(drawerOpenClass)
	el.SetAttr("aria-hidden", "false")
	d.Render(ctx)
}

// Close hides the drawer and keeps its content.
func (d *Drawer) Close() {
	el, ok := d.doc.GetElementByID(DrawerID)
	if !ok {
		return
	}
	el.RemoveClass(drawerOpenClass)
	el.SetAttr("aria-hidden", "true")
}

func (d *Drawer) IsOpen() bool {
	el, ok := d.doc.GetElementByID(DrawerID)
	return ok && el.HasClass(drawerOpenClass)
}

func (d *Drawer) Render(ctx context.Context) {
	if _, ok := d.EnsureExists(); !ok {
		return
	}
	body, ok := d.doc.QuerySelector(drawerBodySel)
	if !ok {
		return
	}

	cart := d.carts.Load(ctx)
	if cart.IsEmpty() {
		body.SetText(EmptyPlaceholder)
		return
	}
	if err := body.SetInnerHTML(RenderCart(cart)); err != nil {
		d.log.Error("cart markup rejected", slog.Any("err", err))
	}
}

// RenderCart produces the drawer body markup for a non-empty cart.
func RenderCart(cart domain.Cart) string {
	var sb strings.Builder
	sb.WriteString(`<ul class="cart-list">`)
	for _, line := range cart.Lines() {
		id := domain.EscapeAttr(line.ID)
		sb.WriteString(`<li class="cart-item" data-id="` + id + `">`)
		sb.WriteString(`<div class="ci-left"><span class="ci-name">` + domain.EscapeHTML(line.Name) + `</span></div>`)
		sb.WriteString(`<div class="ci-right">`)
		sb.WriteString(`<div class="ci-controls">`)
		sb.WriteString(`<button class="ci-btn ci-decrease" data-id="` + id + `" aria-label="Menge verringern">−</button>`)
		sb.WriteString(`<span class="ci-qty">` + strconv.Itoa(line.Qty) + `</span>`)
		sb.WriteString(`<button class="ci-btn ci-increase" data-id="` + id + `" aria-label="Menge erhöhen">+</button>`)
		sb.WriteString(`</div>`)
		sb.WriteString(`<span class="ci-price">` + domain.FormatPrice(domain.LineTotal(line)) + `</span>`)
		sb.WriteString(`<button class="ci-btn ci-remove" data-id="` + id + `" aria-label="Entfernen">Entfernen</button>`)
		sb.WriteString(`</div>`)
		sb.WriteString(`</li>`)
	}
	sb.WriteString(`</ul>`)

	sb.WriteString(`<div class="cart-subtotal">Zwischensumme: <strong>` + domain.FormatPrice(domain.Subtotal(cart)) + `</strong></div>`)
	sb.WriteString(`<div class="cart-shipping">Lieferkosten: <strong>` + domain.FormatPrice(domain.DeliveryCost) + `</strong></div>`)
	sb.WriteString(`<div class="cart-total">Gesamt: <strong>` + domain.FormatPrice(domain.GrandTotal(cart)) + `</strong></div>`)
	sb.WriteString(`<div class="cart-actions"><button class="btn primary checkout" type="button">Zur Kasse</button></div>`)
	return sb.String()
}

// Package ui renders the cart into the page and routes gestures back to it.
package ui

import (
	"context"
	"strconv"

	"github.com/dwikikusuma/cart-widget/internal/cart/domain"
	"github.com/dwikikusuma/cart-widget/internal/dom"
)

const (
	badgeSelector  = ".icon-btn.badge"
	badgeCountAttr = "data-count"
)

// CartSource yields the current stored cart.
type CartSource interface {
	Load(ctx context.Context) domain.Cart
}

type Badge struct {
	doc   dom.Document
	carts CartSource
}

func NewBadge(doc dom.Document, carts CartSource) *Badge {
	return &Badge{doc: doc, carts: carts}
}

// Refresh writes the total item count onto the badge, if the page has one.
func (b *Badge) Refresh(ctx context.Context) {
	el, ok := b.doc.QuerySelector(badgeSelector)
	if !ok {
		return
	}
	el.SetAttr(badgeCountAttr, strconv.Itoa(domain.TotalCount(b.carts.Load(ctx))))
}

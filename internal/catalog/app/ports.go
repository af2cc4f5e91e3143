package app

import (
	"context"

	"github.com/dwikikusuma/cart-widget/internal/catalog/domain"
)

// ProductReader is the read side behind the listing page and cart lookups.
type ProductReader interface {
	Get(ctx context.Context, id string) (domain.Product, error)
	// List returns up to limit products whose name or description contains
	// query, starting after the product with id cursor. next is empty on the
	// last page.
	List(ctx context.Context, query string, limit int, cursor string) (products []domain.Product, next string, err error)
}

// ProductRepo adds the write used by the gateway's product API.
type ProductRepo interface {
	ProductReader
	Create(ctx context.Context, p domain.Product) (domain.Product, error)
}

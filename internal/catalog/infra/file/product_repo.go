// Package file serves the catalog from a JSON document loaded at startup.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dwikikusuma/cart-widget/internal/catalog/app"
	"github.com/dwikikusuma/cart-widget/internal/catalog/domain"
)

// ProductRepo keeps products in file order. The cursor is the id of the last
// product of the previous page.
type ProductRepo struct {
	mu       sync.RWMutex
	products []domain.Product
}

func NewProductRepo(products []domain.Product) *ProductRepo {
	return &ProductRepo{products: append([]domain.Product(nil), products...)}
}

// Load reads a JSON array of products.
func Load(path string) (*ProductRepo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", path, err)
	}
	for i, p := range products {
		if strings.TrimSpace(p.ID) == "" {
			return nil, fmt.Errorf("catalog %s: product %d has no id", path, i)
		}
	}
	return NewProductRepo(products), nil
}

func (r *ProductRepo) Create(_ context.Context, p domain.Product) (domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now
	r.products = append(r.products, p)
	return p, nil
}

func (r *ProductRepo) Get(_ context.Context, id string) (domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, app.ErrNotFound
}

func (r *ProductRepo) List(_ context.Context, query string, limit int, cursor string) ([]domain.Product, string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	start := 0
	if cursor = strings.TrimSpace(cursor); cursor != "" {
		start = -1
		for i, p := range r.products {
			if p.ID == cursor {
				start = i + 1
				break
			}
		}
		if start < 0 {
			return nil, "", app.ErrInvalidInput
		}
	}

	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]domain.Product, 0, limit)
	var nextCursor string
	for _, p := range r.products[start:] {
		if q != "" && !strings.Contains(strings.ToLower(p.Name), q) && !strings.Contains(strings.ToLower(p.Description), q) {
			continue
		}
		out = append(out, p)
		nextCursor = p.ID
		if len(out) == limit {
			break
		}
	}

	if len(out) < limit {
		nextCursor = ""
	}
	return out, nextCursor, nil
}

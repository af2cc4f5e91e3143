package app

import (
	"context"
	"errors"
	"strings"

	"github.com/dwikikusuma/cart-widget/internal/catalog/domain"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

const (
	defaultPageSize = 20
	maxPageSize     = 100

	// Currency is the only one the cart widget can display.
	Currency = "EUR"
)

// Service backs the product listing page the cart widget reads its
// add-to-cart controls from.
type Service struct {
	repo ProductRepo
}

func NewService(repo ProductRepo) *Service {
	return &Service{repo: repo}
}

// CreateProduct adds a product to the listing. Prices are in cents; free
// products are allowed since the cart accepts a zero unit price.
func (s *Service) CreateProduct(ctx context.Context, name, desc, currency string, amount int64) (domain.Product, error) {
	name = strings.TrimSpace(name)
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if name == "" || currency != Currency || amount < 0 {
		return domain.Product{}, ErrInvalidInput
	}

	return s.repo.Create(ctx, domain.Product{
		Name:        name,
		Description: strings.TrimSpace(desc),
		Price:       domain.Money{Currency: currency, Amount: amount},
	})
}

// GetProduct looks a product up by id; the simulator's buy gesture and the
// gateway's product endpoint both go through it.
func (s *Service) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Product{}, ErrInvalidInput
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) ListProducts(ctx context.Context, query string, limit int, cursor string) ([]domain.Product, string, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return s.repo.List(ctx, query, limit, cursor)
}

// AllProducts walks every page of the listing.
func (s *Service) AllProducts(ctx context.Context) ([]domain.Product, error) {
	var (
		out    []domain.Product
		cursor string
	)
	for {
		page, next, err := s.ListProducts(ctx, "", maxPageSize, cursor)
		if err != nil {
			return nil, err
		}
		out = append(out, page...)
		if next == "" {
			return out, nil
		}
		cursor = next
	}
}

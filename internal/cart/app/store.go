package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/dwikikusuma/cart-widget/internal/cart/domain"
)

// StorageKey is where the cart lives in per-origin storage.
const StorageKey = "hb_cart_v1"

// Store is the single source of truth for the cart across page loads.
type Store struct {
	storage Storage
	key     string
	log     *slog.Logger
}

func NewStore(storage Storage, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{storage: storage, key: StorageKey, log: log}
}

// Load never fails: a missing, unreadable or corrupt value yields an empty
// cart.
func (s *Store) Load(ctx context.Context) domain.Cart {
	raw, ok, err := s.storage.GetItem(ctx, s.key)
	if err != nil {
		s.log.Warn("cart storage read failed", slog.String("key", s.key), slog.Any("err", err))
		return domain.NewCart()
	}
	if !ok {
		return domain.NewCart()
	}

	cart := domain.NewCart()
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		s.log.Warn("discarding unparseable cart", slog.String("key", s.key), slog.Any("err", err))
		return domain.NewCart()
	}
	return cart
}

// Save overwrites the stored cart.
func (s *Store) Save(ctx context.Context, cart domain.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.storage.SetItem(ctx, s.key, string(data)); err != nil {
		return fmt.Errorf("write cart: %w", err)
	}
	return nil
}

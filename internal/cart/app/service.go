package app

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dwikikusuma/cart-widget/internal/cart/domain"
)

// Service owns the cart for one page load. Every mutation runs the full
// sequence load, mutate, save, refresh badge, render drawer without yielding,
// so callers on the page's event loop never observe a half-applied change.
type Service struct {
	store  *Store
	badge  BadgeView
	drawer DrawerView
	log    *slog.Logger
}

func NewService(store *Store, badge BadgeView, drawer DrawerView, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		store:  store,
		badge:  badge,
		drawer: drawer,
		log:    log.With(slog.String("page_load_id", uuid.NewString())),
	}
}

func (s *Service) Cart(ctx context.Context) domain.Cart {
	return s.store.Load(ctx)
}

func (s *Service) AddItem(ctx context.Context, id, name string, price float64) error {
	cart, err := domain.AddItem(s.store.Load(ctx), id, name, price)
	if err != nil {
		s.log.Warn("add item rejected", slog.String("id", id), slog.Float64("price", price), slog.Any("err", err))
		return err
	}
	s.commit(ctx, cart)
	s.log.Debug("item added", slog.String("id", id))
	return nil
}

// AddItemRaw parses price the way it arrives from markup before adding.
func (s *Service) AddItemRaw(ctx context.Context, id, name, price string) error {
	p, err := domain.ParsePrice(price)
	if err != nil {
		s.log.Warn("add item rejected", slog.String("id", id), slog.String("price", price), slog.Any("err", err))
		return err
	}
	return s.AddItem(ctx, id, name, p)
}

func (s *Service) ChangeQty(ctx context.Context, id string, delta int) {
	cart := s.store.Load(ctx)
	if _, ok := cart.Line(id); !ok {
		return
	}
	s.commit(ctx, domain.ChangeQty(cart, id, delta))
	s.log.Debug("quantity changed", slog.String("id", id), slog.Int("delta", delta))
}

func (s *Service) RemoveItem(ctx context.Context, id string) {
	cart := s.store.Load(ctx)
	if _, ok := cart.Line(id); !ok {
		return
	}
	s.commit(ctx, domain.RemoveItem(cart, id))
	s.log.Debug("item removed", slog.String("id", id))
}

func (s *Service) commit(ctx context.Context, cart domain.Cart) {
	if err := s.store.Save(ctx, cart); err != nil {
		s.log.Warn("cart save failed", slog.Any("err", err))
	}
	s.Refresh(ctx)
}

// Refresh re-renders badge and drawer from the stored cart.
func (s *Service) Refresh(ctx context.Context) {
	s.badge.Refresh(ctx)
	s.drawer.Render(ctx)
}

func (s *Service) OpenDrawer(ctx context.Context) { s.drawer.Open(ctx) }

func (s *Service) CloseDrawer() { s.drawer.Close() }

func (s *Service) DrawerOpen() bool { return s.drawer.IsOpen() }

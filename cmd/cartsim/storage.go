package main

import (
	"context"
	"fmt"

	"github.com/dwikikusuma/cart-widget/internal/cart/app"
	"github.com/dwikikusuma/cart-widget/internal/cart/infra/memory"
	cartpg "github.com/dwikikusuma/cart-widget/internal/cart/infra/postgres"
	"github.com/dwikikusuma/cart-widget/internal/cart/infra/sqlite"
	"github.com/dwikikusuma/cart-widget/pkg/config"
	"github.com/dwikikusuma/cart-widget/pkg/postgres"
)

// openStorage returns the configured backend and a func releasing it.
func openStorage(ctx context.Context, cfg config.Storage) (app.Storage, func() error, error) {
	switch cfg.Driver {
	case "", "memory":
		return memory.NewStorage(), func() error { return nil }, nil
	case "sqlite":
		s, err := sqlite.Open(cfg.SQLitePath, cfg.Origin)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case "postgres":
		db, err := postgres.Open(postgres.Config{
			Host: cfg.PostgresHost,
			Port: cfg.PostgresPort,
			User: cfg.PostgresUser,
			Pass: cfg.PostgresPass,
			DB:   cfg.PostgresDB,
		})
		if err != nil {
			return nil, nil, err
		}
		repo := cartpg.NewStorageRepo(db, cfg.Origin)
		if err := repo.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, nil, err
		}
		return repo, db.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

package app

import (
	"context"
)

// Storage is a per-origin string key/value store with Web Storage semantics.
type Storage interface {
	GetItem(ctx context.Context, key string) (value string, ok bool, err error)
	SetItem(ctx context.Context, key, value string) error
	RemoveItem(ctx context.Context, key string) error
}

type BadgeView interface {
	Refresh(ctx context.Context)
}

type DrawerView interface {
	Open(ctx context.Context)
	Close()
	Render(ctx context.Context)
	IsOpen() bool
}

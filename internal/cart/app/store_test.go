package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwikikusuma/cart-widget/internal/cart/domain"
)

func TestStoreLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("missing key -> empty cart", func(t *testing.T) {
		s := NewStore(newFakeStorage(), nil)
		assert.True(t, s.Load(ctx).IsEmpty())
	})

	t.Run("corrupt value -> empty cart", func(t *testing.T) {
		fs := newFakeStorage()
		fs.items[StorageKey] = "{not json"
		assert.True(t, NewStore(fs, nil).Load(ctx).IsEmpty())
	})

	t.Run("wrong shape -> empty cart", func(t *testing.T) {
		fs := newFakeStorage()
		fs.items[StorageKey] = `["p1"]`
		assert.True(t, NewStore(fs, nil).Load(ctx).IsEmpty())
	})

	t.Run("read error -> empty cart", func(t *testing.T) {
		fs := newFakeStorage()
		fs.getErr = errStorageDown
		assert.True(t, NewStore(fs, nil).Load(ctx).IsEmpty())
	})

	t.Run("stored cart", func(t *testing.T) {
		fs := newFakeStorage()
		fs.items[StorageKey] = `{"p1":{"id":"p1","name":"Honigglas","price":8.5,"qty":2}}`
		cart := NewStore(fs, nil).Load(ctx)
		assert.Equal(t, 2, domain.TotalCount(cart))
	})
}

func TestStoreSave(t *testing.T) {
	ctx := context.Background()

	t.Run("writes under the cart key", func(t *testing.T) {
		fs := newFakeStorage()
		s := NewStore(fs, nil)
		cart, err := domain.AddItem(domain.NewCart(), "p1", "Honigglas", 8.5)
		require.NoError(t, err)

		require.NoError(t, s.Save(ctx, cart))
		assert.JSONEq(t, `{"p1":{"id":"p1","name":"Honigglas","price":8.5,"qty":1}}`, fs.items[StorageKey])
		assert.Equal(t, cart.Lines(), s.Load(ctx).Lines())
	})

	t.Run("write error is wrapped", func(t *testing.T) {
		fs := newFakeStorage()
		fs.setErr = errStorageDown
		err := NewStore(fs, nil).Save(ctx, domain.NewCart())
		assert.ErrorIs(t, err, errStorageDown)
	})
}

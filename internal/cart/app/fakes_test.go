package app

import (
	"context"
	"errors"
	"sync"
)

var errStorageDown = errors.New("storage down")

type fakeStorage struct {
	mu       sync.Mutex
	items    map[string]string
	getErr   error
	setErr   error
	setCalls int
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{items: map[string]string{}}
}

func (f *fakeStorage) GetItem(_ context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return "", false, f.getErr
	}
	v, ok := f.items[key]
	return v, ok, nil
}

func (f *fakeStorage) SetItem(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setCalls++
	if f.setErr != nil {
		return f.setErr
	}
	f.items[key] = value
	return nil
}

func (f *fakeStorage) RemoveItem(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.items, key)
	return nil
}

// recorder collects view calls in the order they happen.
type recorder struct {
	calls []string
	open  bool
}

type fakeBadge struct{ rec *recorder }

func (b fakeBadge) Refresh(context.Context) { b.rec.calls = append(b.rec.calls, "badge") }

type fakeDrawer struct{ rec *recorder }

func (d fakeDrawer) Open(context.Context) {
	d.rec.open = true
	d.rec.calls = append(d.rec.calls, "open")
}

func (d fakeDrawer) Close() {
	d.rec.open = false
	d.rec.calls = append(d.rec.calls, "close")
}

func (d fakeDrawer) Render(context.Context) { d.rec.calls = append(d.rec.calls, "render") }

func (d fakeDrawer) IsOpen() bool { return d.rec.open }

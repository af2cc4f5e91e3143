//go:build js && wasm

// Package webstorage adapts window.localStorage.
package webstorage

import (
	"context"
	"fmt"
	"syscall/js"
)

type Storage struct {
	v js.Value
}

// Local returns the page's localStorage. Access can throw (privacy modes,
// sandboxed frames); that surfaces as an error from each call.
func Local() *Storage {
	return &Storage{v: js.Global().Get("localStorage")}
}

func (s *Storage) call(method string, args ...any) (out js.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("localStorage.%s: %v", method, r)
		}
	}()
	if s.v.IsUndefined() || s.v.IsNull() {
		return js.Null(), fmt.Errorf("localStorage unavailable")
	}
	return s.v.Call(method, args...), nil
}

func (s *Storage) GetItem(_ context.Context, key string) (string, bool, error) {
	v, err := s.call("getItem", key)
	if err != nil {
		return "", false, err
	}
	if v.IsNull() {
		return "", false, nil
	}
	return v.String(), true, nil
}

func (s *Storage) SetItem(_ context.Context, key, value string) error {
	_, err := s.call("setItem", key, value)
	return err
}

func (s *Storage) RemoveItem(_ context.Context, key string) error {
	_, err := s.call("removeItem", key)
	return err
}

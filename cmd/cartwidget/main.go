//go:build js && wasm

// Command cartwidget is the browser build of the cart widget. Load it on a
// storefront page with wasm_exec.js; it installs openCart, closeCart,
// addToCartItem and performSearch on window.
package main

import (
	"context"
	"log/slog"
	"os"
	"syscall/js"

	"github.com/dwikikusuma/cart-widget/internal/cart/infra/webstorage"
	"github.com/dwikikusuma/cart-widget/internal/dom/jsdom"
	"github.com/dwikikusuma/cart-widget/internal/widget"
	"github.com/dwikikusuma/cart-widget/pkg/logger"
)

func main() {
	log := logger.New(logger.Options{Service: "cartwidget", Env: "browser", Level: "warn", Output: os.Stderr})
	ctx := context.Background()

	w := widget.Mount(ctx, widget.Env{
		Document:  jsdom.Current(),
		Location:  jsdom.CurrentLocation(),
		Scheduler: jsdom.Scheduler{},
		Storage:   webstorage.Local(),
		Logger:    log,
	})

	global := js.Global()
	global.Set("openCart", js.FuncOf(func(js.Value, []js.Value) any {
		w.OpenCart(ctx)
		return nil
	}))
	global.Set("closeCart", js.FuncOf(func(js.Value, []js.Value) any {
		w.CloseCart()
		return nil
	}))
	global.Set("addToCartItem", js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) < 3 {
			return nil
		}
		if err := w.AddToCartItem(ctx, jsString(args[0]), jsString(args[1]), jsString(args[2])); err != nil {
			log.Warn("addToCartItem rejected", slog.Any("err", err))
		}
		return nil
	}))
	global.Set("performSearch", js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		w.PerformSearch(jsString(args[0]))
		return nil
	}))

	select {}
}

// jsString mirrors String(v) in JS, so numbers passed from inline handlers
// arrive as their decimal text.
func jsString(v js.Value) string {
	if v.IsUndefined() || v.IsNull() {
		return ""
	}
	return js.Global().Call("String", v).String()
}

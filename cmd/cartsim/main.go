// Command cartsim mounts the cart widget on an HTML page outside the browser,
// replays gestures against it and prints the resulting cart state.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dwikikusuma/cart-widget/internal/cart/domain"
	catalogapp "github.com/dwikikusuma/cart-widget/internal/catalog/app"
	catalogdomain "github.com/dwikikusuma/cart-widget/internal/catalog/domain"
	catalogfile "github.com/dwikikusuma/cart-widget/internal/catalog/infra/file"
	"github.com/dwikikusuma/cart-widget/internal/dom"
	"github.com/dwikikusuma/cart-widget/internal/dom/htmldoc"
	"github.com/dwikikusuma/cart-widget/internal/widget"
	"github.com/dwikikusuma/cart-widget/pkg/config"
	"github.com/dwikikusuma/cart-widget/pkg/logger"
	"github.com/dwikikusuma/cart-widget/pkg/shutdown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet("cartsim", flag.ContinueOnError)
	pagePath := fs.String("page", "", "HTML page to mount on (default: blank page)")
	pageURL := fs.String("url", "http://localhost:8080/produkte.html", "URL the page is loaded from")
	if err := fs.Parse(args); err != nil {
		return 1
	}

	cfg := config.Load()
	log := logger.New(logger.Options{
		Service: "cartsim",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
		Output:  os.Stderr,
	})

	gestures, err := parseGestures(fs.Args())
	if err != nil {
		log.Error("bad gesture", slog.Any("err", err))
		return 1
	}

	var products productLookup
	if needsCatalog(gestures) {
		repo, err := catalogfile.Load(cfg.CatalogFile)
		if err != nil {
			log.Error("catalog load failed", slog.Any("err", err), slog.String("path", cfg.CatalogFile))
			return 1
		}
		products = catalogapp.NewService(repo)
	}

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	doc, err := loadPage(*pagePath, log)
	if err != nil {
		log.Error("page load failed", slog.Any("err", err))
		return 1
	}
	loc, err := htmldoc.NewLocation(*pageURL)
	if err != nil {
		log.Error("bad page url", slog.Any("err", err))
		return 1
	}

	storage, closeStorage, err := openStorage(ctx, cfg.Storage)
	if err != nil {
		log.Error("storage open failed", slog.Any("err", err), slog.String("driver", cfg.Storage.Driver))
		return 1
	}
	defer func() {
		if err := closeStorage(); err != nil {
			log.Warn("storage close failed", slog.Any("err", err))
		}
	}()

	loop := dom.NewLoop(log, 0)
	loopCtx, stopLoop := context.WithCancel(ctx)

	g, gctx := errgroup.WithContext(loopCtx)
	g.Go(func() error { return loop.Run(gctx) })
	g.Go(func() error {
		defer stopLoop()
		return replay(gctx, loop, widget.Env{
			Document:  doc,
			Location:  loc,
			Scheduler: loop,
			Storage:   storage,
			Logger:    log,
		}, products, gestures, stdout)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("replay failed", slog.Any("err", err))
		return 1
	}
	return 0
}

func loadPage(path string, log *slog.Logger) (*htmldoc.Document, error) {
	if path == "" {
		return htmldoc.Blank(htmldoc.WithLogger(log)), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return htmldoc.Parse(f, htmldoc.WithLogger(log))
}

// productLookup resolves buy gestures against the catalog.
type productLookup interface {
	GetProduct(ctx context.Context, id string) (catalogdomain.Product, error)
}

func replay(ctx context.Context, loop *dom.Loop, env widget.Env, products productLookup, gestures []gesture, stdout io.Writer) error {
	doc := env.Document.(*htmldoc.Document)
	log := env.Logger

	var w *widget.Widget
	if err := loop.Do(ctx, func() { w = widget.Mount(ctx, env) }); err != nil {
		return err
	}

	for _, g := range gestures {
		if g.kind == gestureWait {
			select {
			case <-time.After(g.wait):
				continue
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		err := loop.Do(ctx, func() {
			switch g.kind {
			case gestureClick:
				el, ok := doc.QuerySelector(g.arg)
				if !ok {
					log.Warn("click target not found", slog.String("selector", g.arg))
					return
				}
				doc.Click(el)
			case gestureKey:
				doc.KeyDown(g.arg)
			case gestureAdd:
				_ = w.AddToCartItem(ctx, g.id, g.name, g.price)
			case gestureBuy:
				p, err := products.GetProduct(ctx, g.id)
				if err != nil {
					log.Warn("catalog lookup failed", slog.String("id", g.id), slog.Any("err", err))
					return
				}
				price := strconv.FormatFloat(p.Price.Major(), 'f', -1, 64)
				_ = w.AddToCartItem(ctx, p.ID, p.Name, price)
			case gestureOpen:
				w.OpenCart(ctx)
			case gestureClose:
				w.CloseCart()
			case gestureSearch:
				w.PerformSearch(g.arg)
			}
		})
		if err != nil {
			return err
		}
	}

	return loop.Do(ctx, func() { report(ctx, stdout, w, doc, env.Location) })
}

func report(ctx context.Context, out io.Writer, w *widget.Widget, doc *htmldoc.Document, loc dom.Location) {
	cart := w.Cart().Cart(ctx)
	fmt.Fprintf(out, "items: %d\n", domain.TotalCount(cart))
	fmt.Fprintf(out, "subtotal: %s\n", domain.FormatPrice(domain.Subtotal(cart)))
	fmt.Fprintf(out, "total: %s\n", domain.FormatPrice(domain.GrandTotal(cart)))
	fmt.Fprintf(out, "drawer open: %t\n", w.Cart().DrawerOpen())
	if l, ok := loc.(*htmldoc.Location); ok {
		for _, href := range l.Navigations() {
			fmt.Fprintf(out, "navigated: %s\n", href)
		}
	}
	if body, ok := doc.QuerySelector("#cartDrawer .drawer-body"); ok {
		if el, ok := body.(*htmldoc.Element); ok {
			fmt.Fprintf(out, "drawer: %s\n", el.InnerHTML())
		}
	}
}

package main

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dwikikusuma/cart-widget/internal/catalog/domain"
	"github.com/dwikikusuma/cart-widget/internal/catalog/web"
)

type catalog interface {
	AllProducts(ctx context.Context) ([]domain.Product, error)
	ListProducts(ctx context.Context, query string, limit int, cursor string) ([]domain.Product, string, error)
	GetProduct(ctx context.Context, id string) (domain.Product, error)
	CreateProduct(ctx context.Context, name, desc, currency string, amount int64) (domain.Product, error)
}

type metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gateway_http_requests_total",
			Help: "HTTP requests served, by route pattern and status code.",
		}, []string{"route", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gateway_http_request_duration_seconds",
			Help:    "HTTP request latency by route pattern.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
	}
	reg.MustRegister(m.requests, m.duration)
	return m
}

func (m *metrics) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
		m.duration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	})
}

func newRouter(log *slog.Logger, products catalog, staticDir string, reg *prometheus.Registry) http.Handler {
	m := newMetrics(reg)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(m.middleware)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Route("/api/products", productAPI{log: log, products: products}.routes)

	listing := listingHandler(log, products)
	r.Get("/", listing)
	r.Get("/produkte.html", listing)

	r.Handle("/*", http.FileServer(http.Dir(staticDir)))
	return r
}

func listingHandler(log *slog.Logger, products catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all, err := products.AllProducts(r.Context())
		if err != nil {
			log.Error("list products failed", slog.Any("err", err))
			http.Error(w, "catalog unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := web.RenderListing(w, all, r.URL.Query().Get("q")); err != nil {
			log.Error("render listing failed", slog.Any("err", err))
		}
	}
}

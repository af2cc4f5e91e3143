package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	catalogapp "github.com/dwikikusuma/cart-widget/internal/catalog/app"
	"github.com/dwikikusuma/cart-widget/internal/catalog/domain"
)

type listProductsResponse struct {
	Products   []domain.Product `json:"products"`
	NextCursor string           `json:"next_cursor,omitempty"`
}

type createProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Currency    string `json:"currency"`
	Amount      int64  `json:"amount"`
}

// productAPI serves the catalog as JSON under /api/products.
type productAPI struct {
	log      *slog.Logger
	products catalog
}

func (a productAPI) routes(r chi.Router) {
	r.Get("/", a.list)
	r.Post("/", a.create)
	r.Get("/{id}", a.get)
}

func (a productAPI) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit := 0
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(a.log, w, catalogapp.ErrInvalidInput)
			return
		}
		limit = n
	}

	products, next, err := a.products.ListProducts(r.Context(), q.Get("q"), limit, q.Get("cursor"))
	if err != nil {
		writeError(a.log, w, err)
		return
	}
	if products == nil {
		products = []domain.Product{}
	}
	writeJSON(w, http.StatusOK, listProductsResponse{Products: products, NextCursor: next})
}

func (a productAPI) get(w http.ResponseWriter, r *http.Request) {
	p, err := a.products.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(a.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (a productAPI) create(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(a.log, w, catalogapp.ErrInvalidInput)
		return
	}

	p, err := a.products.CreateProduct(r.Context(), req.Name, req.Description, req.Currency, req.Amount)
	if err != nil {
		writeError(a.log, w, err)
		return
	}
	a.log.Info("product created", slog.String("id", p.ID))
	w.Header().Set("Location", "/api/products/"+p.ID)
	writeJSON(w, http.StatusCreated, p)
}

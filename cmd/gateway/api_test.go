package main

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwikikusuma/cart-widget/internal/catalog/domain"
)

func TestProductAPI(t *testing.T) {
	srv := newTestServer(t, newCatalog(
		domain.Product{ID: "p1", Name: "Honigglas", Description: "Blütenhonig", Price: domain.Money{Currency: "EUR", Amount: 850}},
		domain.Product{ID: "p2", Name: "Waldhonig", Price: domain.Money{Currency: "EUR", Amount: 650}},
		domain.Product{ID: "p3", Name: "Kerze", Price: domain.Money{Currency: "EUR", Amount: 1200}},
	))

	t.Run("get -> 200", func(t *testing.T) {
		code, body := get(t, srv.URL+"/api/products/p1")
		require.Equal(t, http.StatusOK, code)
		var p domain.Product
		require.NoError(t, json.Unmarshal([]byte(body), &p))
		assert.Equal(t, "Honigglas", p.Name)
		assert.Equal(t, int64(850), p.Price.Amount)
	})

	t.Run("unknown id -> 404", func(t *testing.T) {
		code, body := get(t, srv.URL+"/api/products/p9")
		assert.Equal(t, http.StatusNotFound, code)
		assert.JSONEq(t, `{"code":"NOT_FOUND","message":"not found"}`, body)
	})

	t.Run("list pages with cursor", func(t *testing.T) {
		code, body := get(t, srv.URL+"/api/products?limit=2")
		require.Equal(t, http.StatusOK, code)
		var page listProductsResponse
		require.NoError(t, json.Unmarshal([]byte(body), &page))
		require.Len(t, page.Products, 2)
		assert.Equal(t, "p2", page.NextCursor)

		_, body = get(t, srv.URL+"/api/products?limit=2&cursor="+page.NextCursor)
		page = listProductsResponse{}
		require.NoError(t, json.Unmarshal([]byte(body), &page))
		require.Len(t, page.Products, 1)
		assert.Equal(t, "p3", page.Products[0].ID)
		assert.Empty(t, page.NextCursor)
	})

	t.Run("list filters by query", func(t *testing.T) {
		_, body := get(t, srv.URL+"/api/products?q=honig")
		var page listProductsResponse
		require.NoError(t, json.Unmarshal([]byte(body), &page))
		assert.Len(t, page.Products, 2)
	})

	t.Run("bad limit or cursor -> 400", func(t *testing.T) {
		code, _ := get(t, srv.URL+"/api/products?limit=many")
		assert.Equal(t, http.StatusBadRequest, code)
		code, _ = get(t, srv.URL+"/api/products?cursor=ghost")
		assert.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("create -> 201 and listed", func(t *testing.T) {
		resp, err := http.Post(srv.URL+"/api/products", "application/json",
			strings.NewReader(`{"name":"Met","description":"Honigwein","currency":"EUR","amount":1500}`))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var created domain.Product
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "/api/products/"+created.ID, resp.Header.Get("Location"))

		_, listing := get(t, srv.URL+"/produkte.html")
		assert.Contains(t, listing, `data-id="`+created.ID+`"`)
		assert.Contains(t, listing, `data-price="15"`)
	})

	t.Run("create invalid -> 400", func(t *testing.T) {
		for _, body := range []string{
			`{"name":"","currency":"EUR","amount":100}`,
			`{"name":"Met","currency":"USD","amount":100}`,
			`{"name":"Met","currency":"EUR","amount":100,"color":"gold"}`,
			`not json`,
		} {
			resp, err := http.Post(srv.URL+"/api/products", "application/json", strings.NewReader(body))
			require.NoError(t, err)
			resp.Body.Close()
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode, body)
		}
	})
}

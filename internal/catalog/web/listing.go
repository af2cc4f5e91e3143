// Package web renders the product listing page consumed by the cart widget.
package web

import (
	"html/template"
	"io"
	"strconv"

	cartdomain "github.com/dwikikusuma/cart-widget/internal/cart/domain"
	"github.com/dwikikusuma/cart-widget/internal/catalog/domain"
)

var listingTmpl = template.Must(template.New("listing").Parse(`<!DOCTYPE html>
<html lang="de">
<head>
<meta charset="utf-8">
<title>Produkte</title>
<link rel="stylesheet" href="styles.css">
</head>
<body>
<header class="site-head">
  <button class="icon-btn search-toggle" type="button" aria-label="Suche" onclick="document.getElementById('searchOverlay').classList.add('open')">Suche</button>
  <button class="icon-btn badge" type="button" aria-label="Warenkorb" data-count="0" onclick="openCart()">Warenkorb</button>
</header>
<div id="searchOverlay" class="search-overlay">
  <form onsubmit="event.preventDefault(); performSearch(this.q.value)">
    <input name="q" type="search" placeholder="Suchen…" value="{{.Query}}">
  </form>
</div>
<main class="product-grid">
{{- range .Cards}}
  <article class="product-card" data-id="{{.ID}}">
    <h2>{{.Name}}</h2>
    <p class="product-desc">{{.Description}}</p>
    <p class="product-price">{{.PriceText}}</p>
    <button class="btn add-to-cart" type="button" data-id="{{.ID}}" data-name="{{.Name}}" data-price="{{.PriceAttr}}">In den Warenkorb</button>
  </article>
{{- end}}
</main>
<script src="wasm_exec.js"></script>
<script>
  const go = new Go();
  WebAssembly.instantiateStreaming(fetch("cart.wasm"), go.importObject).then(r => go.run(r.instance));
</script>
</body>
</html>
`))

type card struct {
	ID          string
	Name        string
	Description string
	PriceText   string
	PriceAttr   string
}

type listingData struct {
	Query string
	Cards []card
}

// RenderListing writes the listing page. Each card carries the add-to-cart
// data attributes the widget reads on click.
func RenderListing(w io.Writer, products []domain.Product, query string) error {
	cards := make([]card, 0, len(products))
	for _, p := range products {
		major := p.Price.Major()
		cards = append(cards, card{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			PriceText:   cartdomain.FormatPrice(major),
			PriceAttr:   strconv.FormatFloat(major, 'f', -1, 64),
		})
	}
	return listingTmpl.Execute(w, listingData{Query: query, Cards: cards})
}

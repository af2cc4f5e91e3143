package domain

import (
	"math"
	"strconv"
	"strings"
)

const CurrencySymbol = "€"

// FormatPrice renders whole amounts without decimals and everything else
// with exactly two, followed by the currency symbol.
func FormatPrice(n float64) string {
	if math.IsNaN(n) || math.IsInf(n, 0) || n == 0 {
		n = 0 // also folds -0
	}
	if n == math.Trunc(n) {
		return strconv.FormatFloat(n, 'f', 0, 64) + " " + CurrencySymbol
	}
	return strconv.FormatFloat(n, 'f', 2, 64) + " " + CurrencySymbol
}

// & goes first so entities produced for < and > are not escaped again.
var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// EscapeAttr is EscapeHTML plus double quotes, for values placed inside
// double-quoted attributes.
func EscapeAttr(s string) string {
	return strings.ReplaceAll(EscapeHTML(s), `"`, "&#34;")
}

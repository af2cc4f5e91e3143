package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	cases := map[string]struct {
		in   float64
		want string
	}{
		"integer":     {10, "10 €"},
		"fraction":    {9.5, "9.50 €"},
		"zero":        {0, "0 €"},
		"negative 0":  {math.Copysign(0, -1), "0 €"},
		"nan":         {math.NaN(), "0 €"},
		"infinity":    {math.Inf(1), "0 €"},
		"two places":  {13.456, "13.46 €"},
		"large whole": {1200, "1200 €"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatPrice(tc.in))
		})
	}
}

func TestEscapeHTML(t *testing.T) {
	assert.Equal(t, "&lt;b&gt;Tom &amp; Jerry&lt;/b&gt;", EscapeHTML("<b>Tom & Jerry</b>"))
	assert.Equal(t, "&amp;lt;", EscapeHTML("&lt;"))
	assert.Equal(t, `say "hi"`, EscapeHTML(`say "hi"`))
	assert.Equal(t, "", EscapeHTML(""))
}

func TestEscapeAttr(t *testing.T) {
	assert.Equal(t, "a&#34; onclick=&#34;x", EscapeAttr(`a" onclick="x`))
	assert.Equal(t, "&lt;p&gt;", EscapeAttr("<p>"))
}

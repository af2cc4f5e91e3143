package widget

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/cucumber/godog"

	"github.com/dwikikusuma/cart-widget/internal/cart/app"
	"github.com/dwikikusuma/cart-widget/internal/cart/domain"
	"github.com/dwikikusuma/cart-widget/internal/cart/infra/memory"
	"github.com/dwikikusuma/cart-widget/internal/cart/ui"
	"github.com/dwikikusuma/cart-widget/internal/dom"
	"github.com/dwikikusuma/cart-widget/internal/dom/domtest"
	"github.com/dwikikusuma/cart-widget/internal/dom/htmldoc"
)

const listingURL = "http://shop.test/produkte.html"

const listingPage = `<!DOCTYPE html><html><body>
<button class="icon-btn badge" data-count="0">Warenkorb</button>
<div id="searchOverlay" class="search-overlay"></div>
<article class="product-card">
  <h2>Honigglas</h2>
  <p class="product-desc">Blütenhonig</p>
  <p class="product-price">8.50 €</p>
  <button class="btn add-to-cart" data-id="p1" data-name="Honigglas" data-price="8.5">In den Warenkorb</button>
</article>
</body></html>`

type widgetTestContext struct {
	ctx     context.Context
	storage *memory.Storage
	pageURL string
	doc     *htmldoc.Document
	loc     *htmldoc.Location
	sched   *domtest.Scheduler
	widget  *Widget
}

func (c *widgetTestContext) load() error {
	doc, err := htmldoc.ParseString(listingPage)
	if err != nil {
		return err
	}
	loc, err := htmldoc.NewLocation(c.pageURL)
	if err != nil {
		return err
	}
	c.doc, c.loc, c.sched = doc, loc, domtest.NewScheduler()
	c.widget = Mount(c.ctx, Env{
		Document:  doc,
		Location:  loc,
		Scheduler: c.sched,
		Storage:   c.storage,
	})
	return nil
}

func (c *widgetTestContext) find(selector string) (dom.Element, error) {
	el, ok := c.doc.QuerySelector(selector)
	if !ok {
		return nil, fmt.Errorf("no element matches %s", selector)
	}
	return el, nil
}

func (c *widgetTestContext) click(selector string) error {
	el, err := c.find(selector)
	if err != nil {
		return err
	}
	c.doc.Click(el)
	return nil
}

func (c *widgetTestContext) listingPageWithEmptyCart() error {
	c.ctx = context.Background()
	c.storage = memory.NewStorage()
	c.pageURL = listingURL
	return c.load()
}

func (c *widgetTestContext) pageIsOpen(url string) error {
	c.pageURL = url
	return c.load()
}

func (c *widgetTestContext) storedCartIs(raw string) error {
	return c.storage.SetItem(c.ctx, app.StorageKey, raw)
}

func (c *widgetTestContext) iAdd(id, name, price string, times int) error {
	for i := 0; i < times; i++ {
		if err := c.widget.AddToCartItem(c.ctx, id, name, price); err != nil {
			return err
		}
	}
	return nil
}

func (c *widgetTestContext) iOpenTheCart() error {
	c.widget.OpenCart(c.ctx)
	return nil
}

func (c *widgetTestContext) iPressDecrease(id string) error {
	return c.click(fmt.Sprintf(`#cartDrawer .ci-decrease[data-id=%q]`, id))
}

func (c *widgetTestContext) iReload() error { return c.load() }

func (c *widgetTestContext) iClickAddToCart(id string) error {
	return c.click(fmt.Sprintf(`.add-to-cart[data-id=%q]`, id))
}

func (c *widgetTestContext) timePasses(ms int) error {
	c.sched.Advance(time.Duration(ms) * time.Millisecond)
	return nil
}

func (c *widgetTestContext) searchOverlayOpen() error {
	el, err := c.find("#searchOverlay")
	if err != nil {
		return err
	}
	el.AddClass("open")
	return nil
}

func (c *widgetTestContext) iPress(key string) error {
	c.doc.KeyDown(key)
	return nil
}

func (c *widgetTestContext) iClickCheckout() error { return c.click("#cartDrawer .checkout") }

func (c *widgetTestContext) iSearchFor(q string) error {
	c.widget.PerformSearch(q)
	return nil
}

func (c *widgetTestContext) badgeShows(n int) error {
	el, err := c.find(".icon-btn.badge")
	if err != nil {
		return err
	}
	if got, _ := el.Attr("data-count"); got != strconv.Itoa(n) {
		return fmt.Errorf("badge shows %q, want %d", got, n)
	}
	return nil
}

func (c *widgetTestContext) drawerLine(id string, qty int, price string) error {
	line := fmt.Sprintf(`#cartDrawer .cart-item[data-id=%q]`, id)
	qtyEl, err := c.find(line + " .ci-qty")
	if err != nil {
		return err
	}
	priceEl, err := c.find(line + " .ci-price")
	if err != nil {
		return err
	}
	if qtyEl.Text() != strconv.Itoa(qty) || priceEl.Text() != price {
		return fmt.Errorf("line %s shows qty %s price %s", id, qtyEl.Text(), priceEl.Text())
	}
	return nil
}

func (c *widgetTestContext) drawerLineNamed(id, name string) error {
	el, err := c.find(fmt.Sprintf(`#cartDrawer .cart-item[data-id=%q] .ci-name`, id))
	if err != nil {
		return err
	}
	if el.Text() != name {
		return fmt.Errorf("line %s named %q", id, el.Text())
	}
	return nil
}

func (c *widgetTestContext) drawerHoldsNo(tag string) error {
	if _, ok := c.doc.QuerySelector("#cartDrawer .drawer-body " + tag); ok {
		return fmt.Errorf("drawer contains a %s element", tag)
	}
	return nil
}

func (c *widgetTestContext) amountIs(selector string) func(string) error {
	return func(want string) error {
		el, err := c.find(selector + " strong")
		if err != nil {
			return err
		}
		if el.Text() != want {
			return fmt.Errorf("%s shows %q, want %q", selector, el.Text(), want)
		}
		return nil
	}
}

func (c *widgetTestContext) drawerShowsPlaceholder() error {
	el, err := c.find("#cartDrawer .drawer-body")
	if err != nil {
		return err
	}
	if el.Text() != ui.EmptyPlaceholder {
		return fmt.Errorf("drawer body reads %q", el.Text())
	}
	if domain.TotalCount(c.widget.Cart().Cart(c.ctx)) != 0 {
		return errors.New("cart is not empty")
	}
	return nil
}

func (c *widgetTestContext) cartIsOpen() error {
	if !c.widget.Cart().DrawerOpen() {
		return errors.New("cart is closed")
	}
	return nil
}

func (c *widgetTestContext) cartIsClosed() error {
	if c.widget.Cart().DrawerOpen() {
		return errors.New("cart is open")
	}
	return nil
}

func (c *widgetTestContext) searchOverlayClosed() error {
	el, err := c.find("#searchOverlay")
	if err != nil {
		return err
	}
	if el.HasClass("open") {
		return errors.New("search overlay is open")
	}
	return nil
}

func (c *widgetTestContext) addButtonReads(id, want string) error {
	el, err := c.find(fmt.Sprintf(`.add-to-cart[data-id=%q]`, id))
	if err != nil {
		return err
	}
	if got := strings.TrimSpace(el.Text()); got != want {
		return fmt.Errorf("button reads %q, want %q", got, want)
	}
	return nil
}

func (c *widgetTestContext) navigatedTo(href string) error {
	for _, h := range c.loc.Navigations() {
		if h == href {
			return nil
		}
	}
	return fmt.Errorf("navigations %v do not include %q", c.loc.Navigations(), href)
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &widgetTestContext{}

	// Given steps
	ctx.Step(`^the listing page is open with an empty cart$`, tc.listingPageWithEmptyCart)
	ctx.Step(`^the page "([^"]*)" is open$`, tc.pageIsOpen)
	ctx.Step(`^the stored cart is "([^"]*)"$`, tc.storedCartIs)
	ctx.Step(`^the search overlay is open$`, tc.searchOverlayOpen)

	// When steps
	ctx.Step(`^I add "([^"]*)" named "([^"]*)" at "([^"]*)" (\d+) times?$`, tc.iAdd)
	ctx.Step(`^I open the cart$`, tc.iOpenTheCart)
	ctx.Step(`^I press decrease on "([^"]*)"$`, tc.iPressDecrease)
	ctx.Step(`^I reload the page$`, tc.iReload)
	ctx.Step(`^I click add to cart on "([^"]*)"$`, tc.iClickAddToCart)
	ctx.Step(`^(\d+)ms pass$`, tc.timePasses)
	ctx.Step(`^I press "([^"]*)"$`, tc.iPress)
	ctx.Step(`^I click the checkout button$`, tc.iClickCheckout)
	ctx.Step(`^I search for "([^"]*)"$`, tc.iSearchFor)

	// Then steps
	ctx.Step(`^the badge shows (\d+)$`, tc.badgeShows)
	ctx.Step(`^the drawer line "([^"]*)" has quantity (\d+) and price "([^"]*)"$`, tc.drawerLine)
	ctx.Step(`^the drawer line "([^"]*)" is named "([^"]*)"$`, tc.drawerLineNamed)
	ctx.Step(`^the drawer holds no "([^"]*)" element$`, tc.drawerHoldsNo)
	ctx.Step(`^the subtotal is "([^"]*)"$`, tc.amountIs(".cart-subtotal"))
	ctx.Step(`^the grand total is "([^"]*)"$`, tc.amountIs(".cart-total"))
	ctx.Step(`^the drawer shows the empty placeholder$`, tc.drawerShowsPlaceholder)
	ctx.Step(`^the cart is open$`, tc.cartIsOpen)
	ctx.Step(`^the cart is closed$`, tc.cartIsClosed)
	ctx.Step(`^the search overlay is closed$`, tc.searchOverlayClosed)
	ctx.Step(`^the add button of "([^"]*)" reads "([^"]*)"$`, tc.addButtonReads)
	ctx.Step(`^the page navigated to "([^"]*)"$`, tc.navigatedTo)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

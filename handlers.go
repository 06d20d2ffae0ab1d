package minsite

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (a *App) pageView(c echo.Context) PageView {
	v := PageView{
		Config:    a.Config,
		CSRFToken: CsrfToken(c),
	}
	if kind, msg, ok := popFlash(c); ok {
		v.FlashKind = kind
		v.Flash = msg
	}
	return v
}

func (a *App) handleHome(c echo.Context) error {
	snap := a.Catalog.Snapshot()
	state := RouteState{Kind: RouteHome}
	if !snap.Loaded {
		state = RouteState{Kind: RouteLoading}
	}

	head := NewHeadTags()
	ApplyHead(a.Config, state, snap, head)

	v := HomeView{
		PageView:   a.pageView(c),
		Meta:       snap.Meta,
		Products:   snap.Products,
		Categories: snap.Categories,
	}
	v.HeadHTML = head.RenderHead()
	return Render(c, a.Views.Home(v))
}

func (a *App) handleProducts(c echo.Context) error {
	return a.renderCatalog(c, "")
}

func (a *App) handleProductSlug(c echo.Context) error {
	return a.renderCatalog(c, c.Param("slug"))
}

// renderCatalog serves /products and /products/:slug. The route segment is
// resolved to the catalog, a category view, or a product detail view; an
// unresolvable segment redirects back to the catalog index.
func (a *App) renderCatalog(c echo.Context, segment string) error {
	snap := a.Catalog.Snapshot()
	state := ResolveRoute(segment, snap)

	if state.Kind == RouteRedirect {
		return c.Redirect(http.StatusFound, state.RedirectTo)
	}

	query := FilterQuery{
		Search:        c.QueryParam("q"),
		QueryCategory: c.QueryParam("category"),
	}
	if state.Kind == RouteCategory {
		query.RouteCategory = state.Category
	}

	v := ProductListView{
		PageView:   a.pageView(c),
		Query:      query,
		Categories: snap.Categories,
		Products:   Filter(snap.Products, query),
		Total:      len(snap.Products),
		Loading:    state.Kind == RouteLoading,
	}
	if state.Kind == RouteProductDetail {
		p := state.Product
		v.Active = &p
	}

	// Live-search partial: swap only the grid, leaving the head untouched.
	if c.Request().Header.Get("HX-Request") == "true" && c.QueryParam("partial") == "grid" {
		return Render(c, a.Views.ProductGrid(v))
	}

	head := NewHeadTags()
	ApplyHead(a.Config, state, snap, head)
	v.HeadHTML = head.RenderHead()
	return Render(c, a.Views.Products(v))
}

func (a *App) handleEnquiry(c echo.Context) error {
	form := ContactForm()
	if c.FormValue("kind") == "product" {
		form = ProductEnquiryForm()
	}
	accepted, err := a.submitForm(c, form)
	if err != nil || !accepted {
		return err
	}
	if err := setFlash(c, "ok", "Thank you. Your enquiry has been received."); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, returnPath(c))
}

// handleSpecSheet gates the spec-sheet download behind the lead form: only
// an accepted submission is redirected to the document itself.
func (a *App) handleSpecSheet(c echo.Context) error {
	snap := a.Catalog.Snapshot()
	p, ok := snap.ProductBySlug(c.FormValue("product_slug"))
	if !ok || p.SpecSheet == "" {
		return c.Redirect(http.StatusSeeOther, "/products")
	}

	accepted, err := a.submitForm(c, SpecSheetForm())
	if err != nil || !accepted {
		return err
	}
	return c.Redirect(http.StatusSeeOther, p.SpecSheet)
}

// submitForm binds, validates and submits a form draft. A rejected draft
// surfaces a single blocking message for the failing category via flash and
// redirects back; nothing is submitted. Returns whether the submission was
// accepted.
func (a *App) submitForm(c echo.Context, form EnquiryForm) (bool, error) {
	returnTo := returnPath(c)

	if !a.submitLimiter.Allow(c.RealIP()) {
		return false, c.String(http.StatusTooManyRequests, "Too many submissions. Try again later.")
	}

	form.Name = c.FormValue("name")
	form.Company = c.FormValue("company")
	form.Country = c.FormValue("country")
	form.Contact = c.FormValue("contact")
	form.Email = c.FormValue("email")
	form.Product = c.FormValue("product")
	form.Quantity = c.FormValue("quantity")
	form.Message = c.FormValue("message")

	enquiry, verr := form.Validate()
	if verr != nil {
		if err := setFlash(c, "error", verr.Message); err != nil {
			return false, err
		}
		return false, c.Redirect(http.StatusSeeOther, returnTo)
	}

	if err := a.sink.Submit(enquiry); err != nil {
		a.Log.Error("enquiry submit failed", zap.Error(err))
		if ferr := setFlash(c, "error", "Something went wrong. Please try again."); ferr != nil {
			return false, ferr
		}
		return false, c.Redirect(http.StatusSeeOther, returnTo)
	}
	return true, nil
}

// returnPath sanitizes the post-submit redirect target to a site-relative
// path.
func returnPath(c echo.Context) string {
	rt := c.FormValue("return_to")
	if rt == "" || rt[0] != '/' || strings.HasPrefix(rt, "//") {
		return "/products"
	}
	return rt
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.staticDir + "/favicon.svg")
}

func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s\n", BuildURL(a.Config.URL, "sitemap.xml"))
	return c.String(http.StatusOK, body)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.pageView(c)))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		_ = RenderStatus(c, code, a.Views.ServerError(a.pageView(c)))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}

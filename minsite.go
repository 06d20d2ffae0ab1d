// Package minsite is a marketing-site engine for an industrial-minerals
// exporter, built with Go, Echo, and templ. It serves a home page, a product
// catalog with search/filter/category navigation, product detail pages with
// structured-data SEO, enquiry forms with spam heuristics, and a sitemap.
//
// All catalog content comes from static JSON files in the data directory;
// the only write path is the enquiry outbox.
package minsite

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ViewFuncs holds the templ components the engine renders. The views
// package provides the default set; deployments may override any of them.
type ViewFuncs struct {
	Home        func(v HomeView) templ.Component
	Products    func(v ProductListView) templ.Component
	ProductGrid func(v ProductListView) templ.Component
	NotFound    func(v PageView) templ.Component
	ServerError func(v PageView) templ.Component
}

// PageView carries the per-page context every component receives.
type PageView struct {
	Config    SiteConfig
	HeadHTML  string // pre-rendered head-tag set
	Flash     string
	FlashKind string // "ok" or "error"
	CSRFToken string
}

// HomeView is the model for the home page.
type HomeView struct {
	PageView
	Meta       SiteMeta
	Products   []Product
	Categories []string
}

// ProductListView is the model for the catalog page, the category view and
// the product detail view (the detail renders as a modal over the catalog).
type ProductListView struct {
	PageView
	Query      FilterQuery
	Categories []string
	Products   []Product // filtered, order-stable subset
	Total      int       // size of the unfiltered list
	Active     *Product  // non-nil when the detail modal is open
	Loading    bool      // catalog never loaded; render the empty state
}

// App is the central application. It wires together the catalog cache, the
// enquiry store, handlers, middleware, and the view components.
type App struct {
	Config  SiteConfig
	Echo    *echo.Echo
	Catalog *CatalogCache
	Store   *EnquiryStore
	Views   ViewFuncs
	Log     *zap.Logger

	sink          EnquirySink
	submitLimiter *SubmitLimiter
	customRoutes  []func(*App)
	staticDir     string
}

// New creates an App with the given configuration and view functions.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Views:     views,
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start initializes the logger, catalog, enquiry outbox, middleware and
// routes, then starts the server.
func (a *App) Start() error {
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("minsite: SessionSecret is required")
	}

	if a.Log == nil {
		logger, err := zap.NewProduction()
		if err != nil {
			return fmt.Errorf("minsite: init logger: %w", err)
		}
		a.Log = logger
	}

	a.Catalog = NewCatalogCache(a.Config.DataDir, a.Config.CatalogCacheTTL, a.Log)
	// Initial load. A failure leaves the site in its loading state: pages
	// render empty, no SEO tags are written, and nothing is surfaced to
	// visitors beyond the missing catalog.
	a.Catalog.Reload()

	if a.sink == nil {
		store, err := NewEnquiryStore(a.Config.EnquiryDatabasePath)
		if err != nil {
			return fmt.Errorf("minsite: init enquiry store: %w", err)
		}
		a.Store = store
		a.sink = store
	}

	a.submitLimiter = NewSubmitLimiter(5, time.Minute)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	// Embedded framework assets fall through to the deployment's static dir.
	e.GET("/public/site.js", echo.WrapHandler(embeddedAssetHandler()))

	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)

	e.GET("/", a.handleHome)
	e.GET("/products", a.handleProducts)
	e.GET("/products/:slug", a.handleProductSlug)

	e.POST("/enquiry", a.handleEnquiry)
	e.POST("/spec-sheet", a.handleSpecSheet)
}

// Close cleans up resources. Call when the app is shutting down.
func (a *App) Close() error {
	if a.Store != nil {
		a.Store.Close()
	}
	if a.Log != nil {
		_ = a.Log.Sync()
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback if
// empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally
// exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("minsite: required environment variable %s is not set", key)
	}
	return v
}

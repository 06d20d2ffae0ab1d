package minsite

import "time"

// SiteConfig holds all configuration for a minsite deployment.
type SiteConfig struct {
	Name        string // Site/brand name (default "Minerals Exporter")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for meta tags and JSON-LD

	LogoURL        string // Absolute logo URL for the Organization schema
	DefaultOGImage string // Fallback og:image when a page has none
	ContactEmail   string // Sales contact for the Organization schema
	Country        string // Organization address country (default "IN")

	Addr    string // Listen address (default ":3000")
	DataDir string // Directory holding products.json and meta.json (default "data")

	EnquiryDatabasePath string // SQLite outbox path (default "data/enquiries.db")

	SessionSecret string // Required: flash-session encryption secret
	CookieSecure  bool   // Set true for HTTPS

	CatalogCacheTTL time.Duration // Catalog snapshot TTL (default 5min)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Minerals Exporter"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DataDir == "" {
		c.DataDir = "data"
	}
	if c.EnquiryDatabasePath == "" {
		c.EnquiryDatabasePath = "data/enquiries.db"
	}
	if c.Country == "" {
		c.Country = "IN"
	}
	if c.CatalogCacheTTL == 0 {
		c.CatalogCacheTTL = 5 * time.Minute
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithEnquirySink replaces the bundled SQLite outbox with another submission
// channel.
func WithEnquirySink(sink EnquirySink) Option {
	return func(a *App) {
		a.sink = sink
	}
}

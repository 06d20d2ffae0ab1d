package minsite

import (
	"encoding/xml"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
)

// Sitemap priority tiers: home highest, product pages next, category pages
// next, catalog index lowest of the four.
const (
	priorityHome     = "1.0"
	priorityProduct  = "0.95"
	priorityCategory = "0.9"
	priorityIndex    = "0.85"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// SitemapURLs enumerates the sitemap entries for a snapshot: home, catalog
// index, one entry per derived category slug and one per product slug. Slug
// derivation is the same codec the router uses.
func SitemapURLs(cfg SiteConfig, snap Snapshot, lastMod time.Time) []sitemapURL {
	date := lastMod.Format("2006-01-02")
	entry := func(path, priority string) sitemapURL {
		return sitemapURL{
			Loc:        BuildURL(cfg.URL, path),
			LastMod:    date,
			ChangeFreq: "weekly",
			Priority:   priority,
		}
	}
	urls := []sitemapURL{
		entry("/", priorityHome),
		entry("/products", priorityIndex),
	}
	for _, c := range snap.Categories {
		urls = append(urls, entry("/products/"+Slugify(c), priorityCategory))
	}
	for _, p := range snap.Products {
		slug := p.EffectiveSlug()
		if slug == "" {
			continue
		}
		urls = append(urls, entry("/products/"+slug, priorityProduct))
	}
	return urls
}

func writeSitemap(w io.Writer, cfg SiteConfig, snap Snapshot) error {
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  SitemapURLs(cfg, snap, time.Now().UTC()),
	}
	if _, err := w.Write([]byte(xml.Header)); err != nil {
		return err
	}
	return xml.NewEncoder(w).Encode(sitemap)
}

func (a *App) handleSitemap(c echo.Context) error {
	snap := a.Catalog.Snapshot()
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	return writeSitemap(c.Response(), a.Config, snap)
}

// GenerateSitemapFile writes sitemap.xml to path at build time, loading the
// catalog directly from the data directory.
func GenerateSitemapFile(cfg SiteConfig, dataDir, path string) error {
	snap, err := LoadCatalog(dataDir)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return writeSitemap(f, cfg, snap)
}

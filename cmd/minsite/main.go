package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/orevale/minsite"
	"github.com/orevale/minsite/views"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	_ = godotenv.Load()

	cmd := "serve"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "serve":
		runServe()
	case "sitemap":
		runSitemap()
	case "thumbnails":
		runThumbnails()
	case "version":
		fmt.Printf("minsite %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func siteConfig() minsite.SiteConfig {
	return minsite.SiteConfig{
		Name:           minsite.EnvOr("SITE_NAME", "Orevale Minerals"),
		URL:            minsite.EnvOr("SITE_URL", "http://localhost:3000"),
		Description:    minsite.EnvOr("SITE_DESCRIPTION", "Export-grade industrial minerals supplied with reliability, quality assurance, and global logistics."),
		LogoURL:        os.Getenv("SITE_LOGO_URL"),
		DefaultOGImage: os.Getenv("SITE_OG_IMAGE"),
		ContactEmail:   os.Getenv("SITE_CONTACT_EMAIL"),
		Addr:           minsite.EnvOr("ADDR", ":3000"),
		DataDir:        minsite.EnvOr("DATA_DIR", "data"),
		SessionSecret:  os.Getenv("SESSION_SECRET"),
		CookieSecure:   os.Getenv("COOKIE_SECURE") == "true",
	}
}

func runServe() {
	cfg := siteConfig()
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = minsite.MustEnv("SESSION_SECRET")
	}

	app := minsite.New(cfg, views.Default(),
		minsite.WithStaticDir(minsite.EnvOr("STATIC_DIR", "public")),
	)
	defer app.Close()

	if err := app.Start(); err != nil {
		log.Fatalf("minsite: %v", err)
	}
}

// runSitemap writes sitemap.xml at build time so static hosting picks it up
// without a running server.
func runSitemap() {
	cfg := siteConfig()
	out := minsite.EnvOr("SITEMAP_PATH", "public/sitemap.xml")
	if err := minsite.GenerateSitemapFile(cfg, cfg.DataDir, out); err != nil {
		log.Fatalf("minsite: generate sitemap: %v", err)
	}
	fmt.Printf("sitemap written to %s\n", out)
}

func runThumbnails() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("minsite: init logger: %v", err)
	}
	defer logger.Sync()
	if err := minsite.GenerateThumbnails(minsite.EnvOr("STATIC_DIR", "public"), logger); err != nil {
		log.Fatalf("minsite: generate thumbnails: %v", err)
	}
}

func printUsage() {
	fmt.Println(`minsite - marketing site engine for an industrial-minerals exporter

Usage:
  minsite <command>

Commands:
  serve        Start the HTTP server (default)
  sitemap      Write sitemap.xml from the product data
  thumbnails   Generate card-size product image derivatives
  version      Print the minsite version
  help         Show this help message`)
}

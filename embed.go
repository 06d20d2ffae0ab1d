package minsite

import (
	"embed"
	"io/fs"
	"net/http"
)

// EmbeddedAssets contains static assets shipped with the engine (site.js:
// modal close behavior and scroll-lock management).
//
//go:embed embedded/*
var EmbeddedAssets embed.FS

func embeddedAssetHandler() http.Handler {
	sub, _ := fs.Sub(EmbeddedAssets, "embedded")
	return http.StripPrefix("/public/", http.FileServer(http.FS(sub)))
}

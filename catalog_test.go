package minsite

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCatalog(t *testing.T, products, meta string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "products.json"), []byte(products), 0o644); err != nil {
		t.Fatalf("write products.json: %v", err)
	}
	if meta != "" {
		if err := os.WriteFile(filepath.Join(dir, "meta.json"), []byte(meta), 0o644); err != nil {
			t.Fatalf("write meta.json: %v", err)
		}
	}
	return dir
}

func TestLoadCatalog(t *testing.T) {
	snap, err := LoadCatalog("testdata")
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}
	if !snap.Loaded {
		t.Fatal("snapshot should be marked loaded")
	}
	if len(snap.Products) != 4 {
		t.Fatalf("expected 4 products, got %d", len(snap.Products))
	}
	if len(snap.Warnings) != 0 {
		t.Fatalf("expected no warnings, got %v", snap.Warnings)
	}

	// Categories derive from product types in first-seen order.
	want := []string{"Clay", "Carbonate", "Silica"}
	if len(snap.Categories) != len(want) {
		t.Fatalf("categories = %v, want %v", snap.Categories, want)
	}
	for i, c := range want {
		if snap.Categories[i] != c {
			t.Fatalf("categories = %v, want %v", snap.Categories, want)
		}
	}

	if title, _ := snap.Meta.Section("hero")["title"].(string); title != "Industrial Minerals, Exported Worldwide" {
		t.Fatalf("meta hero title = %q", title)
	}
}

func TestLoadCatalogMissingProductsFails(t *testing.T) {
	if _, err := LoadCatalog(t.TempDir()); err == nil {
		t.Fatal("expected error for missing products.json")
	}
}

func TestLoadCatalogMissingMetaDegrades(t *testing.T) {
	dir := writeCatalog(t, `[{"id":"a","name":"Bentonite","type":"Clay"}]`, "")
	snap, err := LoadCatalog(dir)
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}
	if !snap.Loaded {
		t.Fatal("snapshot should still be loaded without metadata")
	}
	if len(snap.Warnings) != 1 {
		t.Fatalf("expected one metadata warning, got %v", snap.Warnings)
	}
	if got := snap.Meta.Section("hero"); len(got) != 0 {
		t.Fatalf("expected empty section, got %v", got)
	}
}

func TestLoadCatalogDuplicateSlugFirstWins(t *testing.T) {
	dir := writeCatalog(t, `[
		{"id":"a","slug":"bentonite","name":"Bentonite A","type":"Clay"},
		{"id":"b","slug":"bentonite","name":"Bentonite B","type":"Clay"}
	]`, "{}")
	snap, err := LoadCatalog(dir)
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}
	if len(snap.Warnings) != 1 {
		t.Fatalf("expected one duplicate-slug warning, got %v", snap.Warnings)
	}
	p, ok := snap.ProductBySlug("bentonite")
	if !ok || p.ID != "a" {
		t.Fatalf("first product should win the slug, got %q", p.ID)
	}
	// Both rows stay in the list; only routing is deduplicated.
	if len(snap.Products) != 2 {
		t.Fatalf("expected both products in the list, got %d", len(snap.Products))
	}
}

func TestEffectiveSlug(t *testing.T) {
	withSlug := Product{Slug: "bentonite-api", Name: "Bentonite"}
	if got := withSlug.EffectiveSlug(); got != "bentonite-api" {
		t.Errorf("stored slug should win, got %q", got)
	}
	fromName := Product{Name: "Quartz & Silica Sand"}
	if got := fromName.EffectiveSlug(); got != "quartz-and-silica-sand" {
		t.Errorf("derived slug = %q", got)
	}
}

func TestProductBySlugUsesDerivedSlug(t *testing.T) {
	snap, err := LoadCatalog("testdata")
	if err != nil {
		t.Fatalf("LoadCatalog failed: %v", err)
	}
	// kaolin has no stored slug; the name-derived one routes.
	p, ok := snap.ProductBySlug("kaolin")
	if !ok || p.ID != "kaolin" {
		t.Fatalf("ProductBySlug(kaolin) = %q, %v", p.ID, ok)
	}
}

func TestProductLite(t *testing.T) {
	full := Product{
		Name: "Bentonite", Image: "/img.jpg",
		Description:  "desc",
		Applications: []string{"drilling"},
	}
	if full.Lite() {
		t.Error("complete product should not be lite")
	}
	for _, p := range []Product{
		{Name: "A", Description: "d", Applications: []string{"x"}}, // no image
		{Name: "B", Image: "/i.jpg", Applications: []string{"x"}},  // no description
		{Name: "C", Image: "/i.jpg", Description: "d"},             // no applications
	} {
		if !p.Lite() {
			t.Errorf("product %s should be lite", p.Name)
		}
	}
}

func TestProductGallery(t *testing.T) {
	multi := Product{Images: []string{"/a.jpg", "/b.jpg"}, Image: "/c.jpg"}
	if got := multi.Gallery(); len(got) != 2 || got[0] != "/a.jpg" {
		t.Errorf("Gallery = %v", got)
	}
	if got := multi.PrimaryImage(); got != "/a.jpg" {
		t.Errorf("PrimaryImage = %q", got)
	}
	single := Product{Image: "/c.jpg"}
	if got := single.Gallery(); len(got) != 1 || got[0] != "/c.jpg" {
		t.Errorf("single-image Gallery = %v", got)
	}
	if got := (Product{}).Gallery(); got != nil {
		t.Errorf("empty Gallery = %v", got)
	}
}

package minsite

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Snapshot is one immutable view of the loaded catalog: the product list in
// file order, the derived category set, the site metadata document, and any
// validation warnings raised at load time.
type Snapshot struct {
	Products   []Product
	Categories []string
	Meta       SiteMeta
	Warnings   []string

	// Loaded is false only for the zero snapshot served before the first
	// successful load (or forever, if the data never loads).
	Loaded bool

	bySlug map[string]Product
}

// LoadCatalog reads products.json and meta.json from dataDir and builds a
// snapshot. A missing or unparsable products file fails the load; a missing
// metadata file degrades to empty site metadata with a warning, matching the
// independent-fetch behavior of the two documents.
func LoadCatalog(dataDir string) (Snapshot, error) {
	raw, err := os.ReadFile(filepath.Join(dataDir, "products.json"))
	if err != nil {
		return Snapshot{}, fmt.Errorf("read products: %w", err)
	}
	var products []Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return Snapshot{}, fmt.Errorf("parse products: %w", err)
	}

	snap := Snapshot{
		Products: products,
		Loaded:   true,
		bySlug:   make(map[string]Product, len(products)),
	}

	seenCategory := make(map[string]struct{})
	for _, p := range products {
		slug := p.EffectiveSlug()
		if slug == "" {
			snap.Warnings = append(snap.Warnings, fmt.Sprintf("product %q has no resolvable slug", p.ID))
			continue
		}
		// Duplicate slugs make routing ambiguous. First occurrence wins;
		// surface the collision instead of silently replicating it.
		if prior, ok := snap.bySlug[slug]; ok {
			snap.Warnings = append(snap.Warnings,
				fmt.Sprintf("duplicate slug %q: product %q shadowed by %q", slug, p.ID, prior.ID))
			continue
		}
		snap.bySlug[slug] = p

		if p.Type != "" {
			if _, ok := seenCategory[p.Type]; !ok {
				seenCategory[p.Type] = struct{}{}
				snap.Categories = append(snap.Categories, p.Type)
			}
		}
	}

	metaRaw, err := os.ReadFile(filepath.Join(dataDir, "meta.json"))
	if err != nil {
		snap.Warnings = append(snap.Warnings, fmt.Sprintf("site metadata unavailable: %v", err))
		return snap, nil
	}
	if err := json.Unmarshal(metaRaw, &snap.Meta); err != nil {
		snap.Warnings = append(snap.Warnings, fmt.Sprintf("site metadata unparsable: %v", err))
		snap.Meta = nil
	}
	return snap, nil
}

// EffectiveSlug returns the stored slug, falling back to a slug computed from
// the product name.
func (p Product) EffectiveSlug() string {
	if p.Slug != "" {
		return p.Slug
	}
	return Slugify(p.Name)
}

// ProductBySlug resolves a route segment to a product.
func (s Snapshot) ProductBySlug(slug string) (Product, bool) {
	p, ok := s.bySlug[slug]
	return p, ok
}

// CategoryBySlug resolves a route segment to a stored category label by
// recomputing the slug of every known category. First match in category
// order wins.
func (s Snapshot) CategoryBySlug(slug string) (string, bool) {
	for _, c := range s.Categories {
		if Slugify(c) == slug {
			return c, true
		}
	}
	return "", false
}

// ProductsOfType returns the products whose stored type equals category,
// preserving file order.
func (s Snapshot) ProductsOfType(category string) []Product {
	var out []Product
	for _, p := range s.Products {
		if p.Type == category {
			out = append(out, p)
		}
	}
	return out
}

package minsite

import "fmt"

// metaDescriptionMax bounds the meta description length for product pages.
const metaDescriptionMax = 155

// RouteKind tags the navigation states of the site.
type RouteKind int

const (
	// RouteLoading is the implicit state while the catalog has never loaded:
	// no head side effects are performed and the page renders empty.
	RouteLoading RouteKind = iota
	RouteHome
	RouteAllProducts
	RouteCategory
	RouteProductDetail
	// RouteRedirect sends an unresolvable slug back to the catalog index.
	RouteRedirect
)

// RouteState is the resolved navigation state for one request.
type RouteState struct {
	Kind       RouteKind
	Category   string  // set for RouteCategory
	Product    Product // set for RouteProductDetail
	RedirectTo string  // set for RouteRedirect
}

// ResolveRoute maps a /products/:slug path segment to a navigation state
// against the given catalog snapshot. An empty segment is the full catalog.
// Category slugs take precedence over product slugs; a segment matching
// neither redirects to the catalog index rather than erroring.
func ResolveRoute(segment string, snap Snapshot) RouteState {
	if !snap.Loaded {
		return RouteState{Kind: RouteLoading}
	}
	if segment == "" {
		return RouteState{Kind: RouteAllProducts}
	}
	if category, ok := snap.CategoryBySlug(segment); ok {
		return RouteState{Kind: RouteCategory, Category: category}
	}
	if p, ok := snap.ProductBySlug(segment); ok {
		return RouteState{Kind: RouteProductDetail, Product: p}
	}
	return RouteState{Kind: RouteRedirect, RedirectTo: "/products"}
}

// ApplyHead drives the document-head side effects for a resolved state.
// Single-instance meta/canonical/OG tags are updated in place; JSON-LD
// blocks are replaced wholesale or cleared so no route inherits a previous
// route's structured data. RouteLoading and RouteRedirect perform nothing.
func ApplyHead(cfg SiteConfig, state RouteState, snap Snapshot, head *HeadTags) {
	switch state.Kind {
	case RouteHome:
		setPageMeta(head, cfg,
			fmt.Sprintf("%s | Industrial Minerals Exporter from India", cfg.Name),
			cfg.Description, "", "website", cfg.DefaultOGImage)
		head.Clear(TagProductSchema)
		head.Clear(TagCategorySchema)
		head.Clear(TagItemListSchema)
		head.Set(TagOrgSchema, OrganizationJsonLD(cfg))
		head.Set(TagBreadcrumbSchema, BreadcrumbJsonLD(cfg, []Breadcrumb{
			{Name: "Home", Path: "/"},
		}))

	case RouteAllProducts:
		setPageMeta(head, cfg,
			fmt.Sprintf("Our Products | %s", cfg.Name),
			fmt.Sprintf("Export-grade industrial minerals from %s: browse the full catalog of products supplied with quality assurance and global logistics.", cfg.Name),
			"/products", "website", cfg.DefaultOGImage)
		head.Clear(TagProductSchema)
		head.Clear(TagCategorySchema)
		head.Set(TagItemListSchema, ItemListJsonLD(cfg, snap.Products))
		head.Set(TagBreadcrumbSchema, BreadcrumbJsonLD(cfg, []Breadcrumb{
			{Name: "Home", Path: "/"},
			{Name: "Products", Path: "/products"},
		}))

	case RouteCategory:
		scoped := snap.ProductsOfType(state.Category)
		setPageMeta(head, cfg,
			CategoryTitle(cfg, state.Category),
			fmt.Sprintf("%s exporter from India. Export-grade %s supplied in bulk with quality assurance and worldwide shipping by %s.",
				state.Category, state.Category, cfg.Name),
			"/products/"+Slugify(state.Category), "website", cfg.DefaultOGImage)
		head.Clear(TagProductSchema)
		head.Set(TagItemListSchema, ItemListJsonLD(cfg, scoped))
		head.Set(TagCategorySchema, CollectionPageJsonLD(cfg, state.Category, scoped))
		head.Set(TagBreadcrumbSchema, BreadcrumbJsonLD(cfg, []Breadcrumb{
			{Name: "Home", Path: "/"},
			{Name: "Products", Path: "/products"},
			{Name: state.Category, Path: "/products/" + Slugify(state.Category)},
		}))

	case RouteProductDetail:
		p := state.Product
		head.Clear(TagCategorySchema)
		head.Clear(TagItemListSchema)
		desc := p.Description
		if desc == "" {
			desc = p.Subtitle
		}
		ogImage := p.PrimaryImage()
		if ogImage == "" {
			ogImage = cfg.DefaultOGImage
		}
		setPageMeta(head, cfg,
			fmt.Sprintf("%s Exporter from India | %s", p.Name, cfg.Name),
			TruncateMeta(desc, metaDescriptionMax),
			"/products/"+p.EffectiveSlug(), "product", ogImage)
		head.Set(TagProductSchema, ProductJsonLD(cfg, p))
		head.Set(TagBreadcrumbSchema, BreadcrumbJsonLD(cfg, []Breadcrumb{
			{Name: "Home", Path: "/"},
			{Name: "Products", Path: "/products"},
			{Name: p.Name, Path: "/products/" + p.EffectiveSlug()},
		}))
	}
}

// setPageMeta updates the single-instance tags: title, meta description,
// canonical link and the Open Graph mirror of all three plus image.
func setPageMeta(head *HeadTags, cfg SiteConfig, title, description, canonicalPath, ogType, ogImage string) {
	canonical := BuildURL(cfg.URL, canonicalPath)
	head.Title = title
	head.Update(TagDescription, description)
	head.Update(TagCanonical, canonical)
	head.Update(TagOGType, ogType)
	head.Update(TagOGTitle, title)
	head.Update(TagOGDescription, description)
	head.Update(TagOGURL, canonical)
	if ogImage != "" {
		head.Update(TagOGImage, ogImage)
	}
}

package minsite

import (
	"encoding/json"
	"fmt"
	"html"
	"sort"
	"strings"
)

// TagID identifies one head-level element. At most one element per ID exists
// in a HeadTags set at any time.
type TagID string

// Fixed element identifiers for the document head.
const (
	TagCanonical     TagID = "canonical"
	TagDescription   TagID = "description"
	TagOGType        TagID = "og:type"
	TagOGTitle       TagID = "og:title"
	TagOGDescription TagID = "og:description"
	TagOGURL         TagID = "og:url"
	TagOGImage       TagID = "og:image"

	TagOrgSchema        TagID = "org-schema"
	TagProductSchema    TagID = "product-schema"
	TagCategorySchema   TagID = "category-schema"
	TagItemListSchema   TagID = "product-list-schema"
	TagBreadcrumbSchema TagID = "breadcrumb-schema"
)

// HeadTags is the document-metadata boundary: the set of head elements for
// the page being rendered, keyed by fixed IDs. Only the route resolver writes
// to it; views just render the result.
//
// Update mutates an existing tag in place (creating it if absent) and is used
// for the single-instance meta/canonical/OG tags. Set replaces the element
// wholesale and is used for the JSON-LD schema blocks, whose content is
// structurally tied to the current route and must never merge with a previous
// route's data.
type HeadTags struct {
	Title string

	order []TagID
	tags  map[TagID]string
}

// NewHeadTags returns an empty head-tag set.
func NewHeadTags() *HeadTags {
	return &HeadTags{tags: make(map[TagID]string)}
}

// Update sets the content for id, creating the tag if absent and keeping its
// position if present.
func (h *HeadTags) Update(id TagID, content string) {
	if _, ok := h.tags[id]; !ok {
		h.order = append(h.order, id)
	}
	h.tags[id] = content
}

// Set replaces any existing element under id with a fresh one appended at the
// end of the set.
func (h *HeadTags) Set(id TagID, content string) {
	h.Clear(id)
	h.order = append(h.order, id)
	h.tags[id] = content
}

// Clear removes the element under id. Calling it for an absent element is a
// no-op, not an error.
func (h *HeadTags) Clear(id TagID) {
	if _, ok := h.tags[id]; !ok {
		return
	}
	delete(h.tags, id)
	for i, o := range h.order {
		if o == id {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}
}

// Get returns the content stored under id.
func (h *HeadTags) Get(id TagID) (string, bool) {
	v, ok := h.tags[id]
	return v, ok
}

// IDs returns the identifiers present in the set, sorted for inspection.
func (h *HeadTags) IDs() []TagID {
	ids := make([]TagID, 0, len(h.tags))
	for id := range h.tags {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// RenderHead writes the tag set as head HTML in insertion order. JSON-LD
// content comes from encoding/json, which escapes angle brackets, so it is
// safe inside the script element.
func (h *HeadTags) RenderHead() string {
	var b strings.Builder
	if h.Title != "" {
		fmt.Fprintf(&b, "<title>%s</title>\n", html.EscapeString(h.Title))
	}
	for _, id := range h.order {
		content := h.tags[id]
		switch {
		case id == TagCanonical:
			fmt.Fprintf(&b, "<link rel=\"canonical\" href=\"%s\"/>\n", html.EscapeString(content))
		case id == TagDescription:
			fmt.Fprintf(&b, "<meta name=\"description\" content=\"%s\"/>\n", html.EscapeString(content))
		case strings.HasPrefix(string(id), "og:"):
			fmt.Fprintf(&b, "<meta property=\"%s\" content=\"%s\"/>\n", id, html.EscapeString(content))
		default:
			fmt.Fprintf(&b, "<script type=\"application/ld+json\" id=\"%s\">%s</script>\n", id, content)
		}
	}
	return b.String()
}

func marshalJsonLD(data map[string]any) string {
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// OrganizationJsonLD produces the Schema.org Organization block for the site.
func OrganizationJsonLD(cfg SiteConfig) string {
	data := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Organization",
		"name":     cfg.Name,
		"url":      BuildURL(cfg.URL),
	}
	if cfg.Description != "" {
		data["description"] = cfg.Description
	}
	if cfg.LogoURL != "" {
		data["logo"] = cfg.LogoURL
	}
	if cfg.ContactEmail != "" {
		data["contactPoint"] = map[string]string{
			"@type":       "ContactPoint",
			"contactType": "sales",
			"email":       cfg.ContactEmail,
		}
	}
	if cfg.Country != "" {
		data["address"] = map[string]string{
			"@type":          "PostalAddress",
			"addressCountry": cfg.Country,
		}
	}
	return marshalJsonLD(data)
}

// ProductJsonLD produces the Schema.org Product block for a product page.
// Nested Offer/Brand/BusinessAudience/additionalProperty entries are built
// only from fields actually present on the product.
func ProductJsonLD(cfg SiteConfig, p Product) string {
	productURL := BuildURL(cfg.URL, "products", p.EffectiveSlug())
	data := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Product",
		"name":     p.Name,
		"url":      productURL,
		"brand": map[string]string{
			"@type": "Organization",
			"name":  cfg.Name,
		},
		"audience": map[string]string{
			"@type":        "BusinessAudience",
			"audienceType": "Wholesale buyers and importers",
		},
		"offers": map[string]string{
			"@type":        "Offer",
			"url":          productURL,
			"availability": "https://schema.org/InStock",
		},
	}
	if p.ID != "" {
		data["sku"] = p.ID
	}
	if p.Description != "" {
		data["description"] = p.Description
	}
	if imgs := p.Gallery(); len(imgs) > 0 {
		data["image"] = imgs
	}
	if p.Type != "" {
		data["category"] = p.Type
	}
	var props []map[string]string
	addProp := func(name, value string) {
		if value != "" {
			props = append(props, map[string]string{
				"@type": "PropertyValue",
				"name":  name,
				"value": value,
			})
		}
	}
	addProp("Purity", p.Purity)
	addProp("Moisture", p.Moisture)
	addProp("Origin", p.Origin)
	addProp("Lead Time", p.LeadTime)
	if len(p.Grades) > 0 {
		addProp("Grades", strings.Join(p.Grades, ", "))
	}
	if len(p.MeshSizes) > 0 {
		addProp("Mesh Sizes", strings.Join(p.MeshSizes, ", "))
	}
	if len(props) > 0 {
		data["additionalProperty"] = props
	}
	return marshalJsonLD(data)
}

// CollectionPageJsonLD produces the Schema.org CollectionPage block for a
// category view. hasPart lists exactly the category's products.
func CollectionPageJsonLD(cfg SiteConfig, category string, products []Product) string {
	parts := make([]map[string]string, 0, len(products))
	for _, p := range products {
		parts = append(parts, map[string]string{
			"@type": "Product",
			"name":  p.Name,
			"url":   BuildURL(cfg.URL, "products", p.EffectiveSlug()),
		})
	}
	return marshalJsonLD(map[string]any{
		"@context": "https://schema.org",
		"@type":    "CollectionPage",
		"name":     CategoryTitle(cfg, category),
		"url":      BuildURL(cfg.URL, "products", Slugify(category)),
		"hasPart":  parts,
	})
}

// ItemListJsonLD produces the Schema.org ItemList block over the given
// products in list order.
func ItemListJsonLD(cfg SiteConfig, products []Product) string {
	items := make([]map[string]any, 0, len(products))
	for i, p := range products {
		items = append(items, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     p.Name,
			"url":      BuildURL(cfg.URL, "products", p.EffectiveSlug()),
		})
	}
	return marshalJsonLD(map[string]any{
		"@context":        "https://schema.org",
		"@type":           "ItemList",
		"itemListElement": items,
	})
}

// Breadcrumb is one level of a BreadcrumbList trail.
type Breadcrumb struct {
	Name string
	Path string // site-relative, joined onto the canonical base URL
}

// BreadcrumbJsonLD produces the Schema.org BreadcrumbList block.
func BreadcrumbJsonLD(cfg SiteConfig, trail []Breadcrumb) string {
	items := make([]map[string]any, 0, len(trail))
	for i, bc := range trail {
		items = append(items, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     bc.Name,
			"item":     BuildURL(cfg.URL, bc.Path),
		})
	}
	return marshalJsonLD(map[string]any{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": items,
	})
}

// CategoryTitle is the display title pattern for a category page.
func CategoryTitle(cfg SiteConfig, category string) string {
	return fmt.Sprintf("%s Exporter from India | %s", category, cfg.Name)
}

package minsite

import (
	"strings"
	"testing"
)

func TestHeadTagsUpdateKeepsPosition(t *testing.T) {
	head := NewHeadTags()
	head.Update(TagDescription, "first")
	head.Update(TagCanonical, "https://example.com")
	head.Update(TagDescription, "second")

	if got, _ := head.Get(TagDescription); got != "second" {
		t.Fatalf("Update should overwrite content, got %q", got)
	}
	rendered := head.RenderHead()
	if strings.Index(rendered, "second") > strings.Index(rendered, "canonical") {
		t.Fatalf("Update must keep insertion position:\n%s", rendered)
	}
	if strings.Count(rendered, "description") != 1 {
		t.Fatalf("Update must never duplicate a tag:\n%s", rendered)
	}
}

func TestHeadTagsSetReplacesWholesale(t *testing.T) {
	head := NewHeadTags()
	head.Set(TagProductSchema, `{"name":"old"}`)
	head.Update(TagDescription, "desc")
	head.Set(TagProductSchema, `{"name":"new"}`)

	rendered := head.RenderHead()
	if strings.Contains(rendered, "old") {
		t.Fatalf("Set must replace the previous element:\n%s", rendered)
	}
	if strings.Count(rendered, "product-schema") != 1 {
		t.Fatalf("Set must leave exactly one element:\n%s", rendered)
	}
	// The replacement moves to the end of the set.
	if strings.Index(rendered, "product-schema") < strings.Index(rendered, "description") {
		t.Fatalf("Set should append the fresh element:\n%s", rendered)
	}
}

func TestHeadTagsClearAbsentIsNoop(t *testing.T) {
	head := NewHeadTags()
	head.Clear(TagProductSchema) // nothing to remove

	head.Set(TagProductSchema, "{}")
	head.Clear(TagProductSchema)
	if _, ok := head.Get(TagProductSchema); ok {
		t.Fatal("Clear should remove the element")
	}
	if len(head.IDs()) != 0 {
		t.Fatalf("expected empty set, got %v", head.IDs())
	}
}

func TestRenderHead(t *testing.T) {
	head := NewHeadTags()
	head.Title = "Bentonite <Exporter>"
	head.Update(TagDescription, "Sodium bentonite")
	head.Update(TagCanonical, "https://example.com/products/bentonite")
	head.Update(TagOGTitle, "Bentonite")
	head.Set(TagProductSchema, `{"@type":"Product"}`)

	rendered := head.RenderHead()
	for _, want := range []string{
		"<title>Bentonite &lt;Exporter&gt;</title>",
		`<meta name="description" content="Sodium bentonite"/>`,
		`<link rel="canonical" href="https://example.com/products/bentonite"/>`,
		`<meta property="og:title" content="Bentonite"/>`,
		`<script type="application/ld+json" id="product-schema">{"@type":"Product"}</script>`,
	} {
		if !strings.Contains(rendered, want) {
			t.Errorf("rendered head missing %q:\n%s", want, rendered)
		}
	}
}

func TestOrganizationJsonLD(t *testing.T) {
	cfg := SiteConfig{
		Name:         "Orevale Minerals",
		URL:          "https://minerals.example",
		Description:  "Industrial minerals exporter.",
		ContactEmail: "sales@minerals.example",
		Country:      "IN",
	}
	got := OrganizationJsonLD(cfg)
	for _, want := range []string{
		`"@type":"Organization"`,
		`"name":"Orevale Minerals"`,
		`"contactType":"sales"`,
		`"addressCountry":"IN"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Organization schema missing %s: %s", want, got)
		}
	}
	// Absent fields stay absent.
	bare := OrganizationJsonLD(SiteConfig{Name: "X", URL: "https://x.example"})
	if strings.Contains(bare, "contactPoint") || strings.Contains(bare, "logo") {
		t.Errorf("bare Organization schema should omit empty fields: %s", bare)
	}
}

func TestProductJsonLD(t *testing.T) {
	cfg := SiteConfig{Name: "Orevale Minerals", URL: "https://minerals.example"}
	p := Product{
		ID: "bentonite", Slug: "bentonite-api", Name: "Bentonite",
		Description: "Sodium bentonite.", Type: "Clay",
		Images:    []string{"/a.jpg"},
		Grades:    []string{"API 13A", "OCMA"},
		Purity:    "90%+",
		MeshSizes: []string{"200 mesh"},
	}
	got := ProductJsonLD(cfg, p)
	for _, want := range []string{
		`"@type":"Product"`,
		`"sku":"bentonite"`,
		`"url":"https://minerals.example/products/bentonite-api"`,
		`"availability":"https://schema.org/InStock"`,
		`"audienceType":"Wholesale buyers and importers"`,
		`"name":"Grades","value":"API 13A, OCMA"`,
		`"name":"Purity","value":"90%+"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Product schema missing %s: %s", want, got)
		}
	}

	minimal := ProductJsonLD(cfg, Product{Name: "Bare"})
	if strings.Contains(minimal, "additionalProperty") {
		t.Errorf("empty property list should be omitted: %s", minimal)
	}
	if strings.Contains(minimal, `"image"`) {
		t.Errorf("imageless product should omit image: %s", minimal)
	}
}

func TestBreadcrumbJsonLD(t *testing.T) {
	cfg := SiteConfig{Name: "X", URL: "https://minerals.example"}
	got := BreadcrumbJsonLD(cfg, []Breadcrumb{
		{Name: "Home", Path: "/"},
		{Name: "Products", Path: "/products"},
	})
	for _, want := range []string{
		`"@type":"BreadcrumbList"`,
		`"position":1`,
		`"position":2`,
		`"item":"https://minerals.example/products"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("breadcrumb schema missing %s: %s", want, got)
		}
	}
}

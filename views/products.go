package views

import (
	"bytes"
	"fmt"

	"github.com/a-h/templ"

	"github.com/orevale/minsite"
)

// Products renders the catalog page. The same component serves the full
// catalog, a category view (route-derived filter) and the product detail
// view (modal over the grid).
func Products(v minsite.ProductListView) templ.Component {
	return component(func(buf *bytes.Buffer) {
		writeLayoutOpen(buf, v.PageView)

		buf.WriteString("<section class=\"catalog\">\n")
		fmt.Fprintf(buf, "<p class=\"eyebrow\">%s</p>\n", esc(v.Config.Name))
		if v.Query.RouteCategory != "" {
			fmt.Fprintf(buf, "<h1>%s</h1>\n", esc(v.Query.RouteCategory))
		} else {
			buf.WriteString("<h1>Our Products</h1>\n")
		}
		buf.WriteString("<p class=\"lede\">Export-grade industrial minerals supplied with reliability, quality assurance, and global logistics.</p>\n")

		writeSearchBar(buf, v)
		writeCategoryPills(buf, v)

		buf.WriteString("<div id=\"catalog-grid\">\n")
		writeGrid(buf, v)
		buf.WriteString("</div>\n")
		buf.WriteString("</section>\n")

		if v.Active != nil {
			writeProductModal(buf, v)
		}

		writeLayoutClose(buf, v.PageView)
	})
}

// ProductGrid renders only the grid, for HX-Request partial swaps while
// searching.
func ProductGrid(v minsite.ProductListView) templ.Component {
	return component(func(buf *bytes.Buffer) {
		writeGrid(buf, v)
	})
}

func writeSearchBar(buf *bytes.Buffer, v minsite.ProductListView) {
	buf.WriteString("<form class=\"search-bar\" method=\"get\" action=\"/products\"")
	buf.WriteString(" hx-get=\"/products?partial=grid\" hx-target=\"#catalog-grid\" hx-push-url=\"false\">\n")
	fmt.Fprintf(buf,
		"<input type=\"search\" name=\"q\" value=\"%s\" placeholder=\"Search products by name, application, grade, or description...\" data-catalog-search/>\n",
		esc(v.Query.Search))
	if c := v.Query.QueryCategory; c != "" && v.Query.RouteCategory == "" {
		fmt.Fprintf(buf, "<input type=\"hidden\" name=\"category\" value=\"%s\"/>\n", esc(c))
	}
	buf.WriteString("<button type=\"submit\">Search</button>\n")
	if v.Query.Active() {
		buf.WriteString("<a class=\"clear\" href=\"/products\">Clear Filters</a>\n")
	}
	fmt.Fprintf(buf,
		"<p class=\"result-count\">Showing <strong>%d</strong> of <strong>%d</strong> products</p>\n",
		len(v.Products), v.Total)
	buf.WriteString("</form>\n")
}

func writeCategoryPills(buf *bytes.Buffer, v minsite.ProductListView) {
	if len(v.Categories) == 0 {
		return
	}
	buf.WriteString("<nav class=\"category-pills\">\n")
	active := v.Query.Category()
	cls := "pill"
	if active == "" || active == "all" {
		cls = "pill active"
	}
	fmt.Fprintf(buf, "<a class=\"%s\" href=\"/products\">All</a>\n", cls)
	for _, c := range v.Categories {
		cls = "pill"
		if c == active {
			cls = "pill active"
		}
		fmt.Fprintf(buf, "<a class=\"%s\" href=\"/products/%s\">%s</a>\n",
			cls, esc(minsite.Slugify(c)), esc(c))
	}
	buf.WriteString("</nav>\n")
}

func writeGrid(buf *bytes.Buffer, v minsite.ProductListView) {
	if v.Loading {
		buf.WriteString("<div class=\"empty-state\"><p>Our catalog is temporarily unavailable.</p></div>\n")
		return
	}
	if len(v.Products) == 0 && v.Total > 0 {
		buf.WriteString("<div class=\"empty-state\">\n")
		buf.WriteString("<h3>No products found</h3>\n")
		buf.WriteString("<p>No products match your search criteria. Try different keywords or clear filters.</p>\n")
		buf.WriteString("<a class=\"cta\" href=\"/products\">View All Products</a>\n")
		buf.WriteString("</div>\n")
		return
	}

	buf.WriteString("<div class=\"product-grid\">\n")
	for _, p := range v.Products {
		writeProductCard(buf, v, p)
	}
	buf.WriteString("</div>\n")
}

// writeProductCard renders one catalog card. Lite products (no image,
// description or applications) link to the enquiry form instead of the
// detail route.
func writeProductCard(buf *bytes.Buffer, v minsite.ProductListView, p minsite.Product) {
	href := "/products/" + p.EffectiveSlug()
	if p.Lite() {
		href = "/products?enquire=" + esc(p.EffectiveSlug()) + "#enquire"
	}
	fmt.Fprintf(buf, "<a class=\"product-card\" href=\"%s\">\n", href)
	if img := p.PrimaryImage(); img != "" {
		fmt.Fprintf(buf, "<img src=\"%s\" alt=\"%s\" loading=\"lazy\"/>\n", esc(img), esc(p.Name))
	}
	if p.Type != "" {
		fmt.Fprintf(buf, "<span class=\"category-tag\">%s</span>\n", esc(p.Type))
	}
	fmt.Fprintf(buf, "<h3>%s</h3>\n", esc(p.Name))
	if p.Subtitle != "" {
		fmt.Fprintf(buf, "<p>%s</p>\n", esc(p.Subtitle))
	}
	for _, g := range p.Grades {
		fmt.Fprintf(buf, "<span class=\"badge\">%s</span>\n", esc(g))
	}
	if n := len(p.Applications); n > 0 {
		fmt.Fprintf(buf, "<span class=\"badge apps\">%d applications</span>\n", n)
	}
	if p.Lite() {
		buf.WriteString("<span class=\"more\">Enquire Now</span>\n")
	} else {
		buf.WriteString("<span class=\"more\">View Specifications</span>\n")
	}
	buf.WriteString("</a>\n")
}

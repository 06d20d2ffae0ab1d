package views

import (
	"bytes"
	"fmt"

	"github.com/orevale/minsite"
)

// writeProductModal renders the product detail dialog over the catalog.
// Closing always navigates back to /products (the anchor is a real link and
// site.js wires Escape and the backdrop to the same navigation), so the URL
// stays the single source of truth for modal state.
func writeProductModal(buf *bytes.Buffer, v minsite.ProductListView) {
	p := *v.Active

	buf.WriteString("<div class=\"modal\" role=\"dialog\" aria-modal=\"true\" data-product-modal data-close-href=\"/products\">\n")
	buf.WriteString("<div class=\"modal-backdrop\" data-modal-backdrop></div>\n")
	buf.WriteString("<div class=\"modal-panel\">\n")

	buf.WriteString("<div class=\"modal-header\">\n")
	fmt.Fprintf(buf, "<h1>%s</h1>\n", esc(p.Name))
	if p.Subtitle != "" {
		fmt.Fprintf(buf, "<h2>%s</h2>\n", esc(p.Subtitle))
	}
	buf.WriteString("<a class=\"modal-close\" href=\"/products\" data-modal-close aria-label=\"Close\">&#10005;</a>\n")
	buf.WriteString("</div>\n")

	buf.WriteString("<div class=\"modal-body\">\n")
	writeGallery(buf, p)
	writeDetails(buf, p)
	buf.WriteString("</div>\n")

	buf.WriteString("<div class=\"modal-footer\">\n")
	buf.WriteString("<p>Ready to order? Get bulk pricing.</p>\n")
	if p.SpecSheet != "" {
		buf.WriteString("<a class=\"secondary\" href=\"#spec-sheet\">Spec Sheet</a>\n")
	}
	buf.WriteString("<a class=\"cta\" href=\"#enquire\">Get Quote</a>\n")
	buf.WriteString("</div>\n")

	writeEnquiryForm(buf, v.PageView, p)
	if p.SpecSheet != "" {
		writeSpecSheetForm(buf, v.PageView, p)
	}

	buf.WriteString("</div>\n</div>\n")
}

func writeGallery(buf *bytes.Buffer, p minsite.Product) {
	imgs := p.Gallery()
	if len(imgs) == 0 {
		return
	}
	buf.WriteString("<div class=\"gallery\">\n")
	fmt.Fprintf(buf, "<img src=\"%s\" alt=\"%s bulk export from India for industrial applications\" data-gallery-main/>\n",
		esc(imgs[0]), esc(p.Name))
	if len(imgs) > 1 {
		buf.WriteString("<div class=\"gallery-thumbs\">\n")
		for i, img := range imgs {
			cls := ""
			if i == 0 {
				cls = " class=\"active\""
			}
			fmt.Fprintf(buf, "<img src=\"%s\" alt=\"%s (image %d)\" data-gallery-thumb=\"%s\"%s loading=\"lazy\"/>\n",
				esc(img), esc(p.Name), i+1, esc(img), cls)
		}
		buf.WriteString("</div>\n")
	}
	buf.WriteString("</div>\n")
}

func writeDetails(buf *bytes.Buffer, p minsite.Product) {
	buf.WriteString("<div class=\"details\">\n")

	writeQuickFacts(buf, p)

	if p.Description != "" {
		buf.WriteString("<section><h3>Product Summary</h3>\n")
		fmt.Fprintf(buf, "<p>%s</p></section>\n", esc(p.Description))
	}
	writeList(buf, "Applications", p.Applications)
	writeBadges(buf, "Grades", p.Grades)
	writeList(buf, "Mesh / Particle Size", p.MeshSizes)
	writeList(buf, "Packaging", p.Packaging)
	writeBadges(buf, "Quality Standards", p.QualityStandards)
	writeBadges(buf, "Certifications &amp; Compliance", p.Certifications)

	buf.WriteString("</div>\n")
}

func writeQuickFacts(buf *bytes.Buffer, p minsite.Product) {
	type fact struct{ label, value string }
	facts := []fact{
		{"Purity", p.Purity},
		{"Moisture", p.Moisture},
		{"Origin", p.Origin},
		{"Lead Time", p.LeadTime},
	}
	var present []fact
	for _, f := range facts {
		if f.value != "" {
			present = append(present, f)
		}
	}
	if len(present) == 0 {
		return
	}
	buf.WriteString("<div class=\"quick-facts\">\n")
	for _, f := range present {
		fmt.Fprintf(buf, "<div class=\"fact\"><span>%s</span><strong>%s</strong></div>\n", esc(f.label), esc(f.value))
	}
	buf.WriteString("</div>\n")
}

func writeList(buf *bytes.Buffer, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(buf, "<section><h3>%s</h3>\n<ul>\n", heading)
	for _, item := range items {
		fmt.Fprintf(buf, "<li>%s</li>\n", esc(item))
	}
	buf.WriteString("</ul></section>\n")
}

func writeBadges(buf *bytes.Buffer, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(buf, "<section><h3>%s</h3>\n<div class=\"badges\">\n", heading)
	for _, item := range items {
		fmt.Fprintf(buf, "<span class=\"badge\">%s</span>\n", esc(item))
	}
	buf.WriteString("</div></section>\n")
}

// writeEnquiryForm is the quote-request form for the open product.
func writeEnquiryForm(buf *bytes.Buffer, v minsite.PageView, p minsite.Product) {
	buf.WriteString("<section class=\"lead-form\" id=\"enquire\">\n<h3>Get a Quote</h3>\n")
	buf.WriteString("<form method=\"post\" action=\"/enquiry\">\n")
	fmt.Fprintf(buf, "<input type=\"hidden\" name=\"_csrf\" value=\"%s\"/>\n", esc(v.CSRFToken))
	buf.WriteString("<input type=\"hidden\" name=\"kind\" value=\"product\"/>\n")
	fmt.Fprintf(buf, "<input type=\"hidden\" name=\"return_to\" value=\"/products/%s\"/>\n", esc(p.EffectiveSlug()))
	writeLeadFields(buf, p)
	buf.WriteString("<button type=\"submit\">Send Enquiry</button>\n")
	buf.WriteString("</form>\n</section>\n")
}

// writeSpecSheetForm gates the spec-sheet download behind lead capture.
func writeSpecSheetForm(buf *bytes.Buffer, v minsite.PageView, p minsite.Product) {
	buf.WriteString("<section class=\"lead-form\" id=\"spec-sheet\">\n<h3>Download Spec Sheet</h3>\n")
	buf.WriteString("<form method=\"post\" action=\"/spec-sheet\">\n")
	fmt.Fprintf(buf, "<input type=\"hidden\" name=\"_csrf\" value=\"%s\"/>\n", esc(v.CSRFToken))
	fmt.Fprintf(buf, "<input type=\"hidden\" name=\"product_slug\" value=\"%s\"/>\n", esc(p.EffectiveSlug()))
	fmt.Fprintf(buf, "<input type=\"hidden\" name=\"return_to\" value=\"/products/%s\"/>\n", esc(p.EffectiveSlug()))
	writeLeadFields(buf, p)
	buf.WriteString("<button type=\"submit\">Download Spec Sheet</button>\n")
	buf.WriteString("</form>\n</section>\n")
}

func writeLeadFields(buf *bytes.Buffer, p minsite.Product) {
	writeField(buf, "name", "Name *", "text", "John Doe")
	writeField(buf, "company", "Company", "text", "Acme Traders")
	writeCountrySelect(buf)
	writeField(buf, "contact", "Contact *", "tel", "Enter number")
	writeField(buf, "email", "Email *", "email", "john@company.com")
	fmt.Fprintf(buf, "<input type=\"hidden\" name=\"product\" value=\"%s\"/>\n", esc(p.Name))
	writeField(buf, "quantity", "Quantity", "text", "e.g. 20 MT")
	buf.WriteString("<label>Message<textarea name=\"message\" rows=\"3\"></textarea></label>\n")
}

func writeCountrySelect(buf *bytes.Buffer) {
	buf.WriteString("<label>Country *<select name=\"country\">\n")
	buf.WriteString("<option value=\"\">Select Country</option>\n")
	for _, c := range minsite.Countries {
		fmt.Fprintf(buf, "<option value=\"%s\">%s (%s)</option>\n", esc(c.Name), esc(c.Name), esc(c.Dial))
	}
	buf.WriteString("</select></label>\n")
}

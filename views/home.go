package views

import (
	"bytes"
	"fmt"

	"github.com/a-h/templ"

	"github.com/orevale/minsite"
)

// Home renders the landing page: hero, product carousel section, about and
// contact sections. Section copy comes verbatim from the site metadata
// document; missing sections degrade to built-in defaults.
func Home(v minsite.HomeView) templ.Component {
	return component(func(buf *bytes.Buffer) {
		writeLayoutOpen(buf, v.PageView)

		writeHero(buf, v)
		writeHomeProducts(buf, v)
		writeAbout(buf, v)
		writeContact(buf, v)

		writeLayoutClose(buf, v.PageView)
	})
}

func metaString(section map[string]any, key, fallback string) string {
	if s, ok := section[key].(string); ok && s != "" {
		return s
	}
	return fallback
}

func writeHero(buf *bytes.Buffer, v minsite.HomeView) {
	hero := v.Meta.Section("hero")
	buf.WriteString("<section class=\"hero\">\n")
	fmt.Fprintf(buf, "<p class=\"eyebrow\">%s</p>\n", esc(metaString(hero, "eyebrow", v.Config.Name)))
	fmt.Fprintf(buf, "<h1>%s</h1>\n", esc(metaString(hero, "title", "Industrial Minerals, Exported Worldwide")))
	fmt.Fprintf(buf, "<p class=\"lede\">%s</p>\n", esc(metaString(hero, "subtitle", v.Config.Description)))
	buf.WriteString("<a class=\"cta\" href=\"/products\">View All Products</a>\n")
	buf.WriteString("</section>\n")
}

// writeHomeProducts is the home-page carousel section: one card per product,
// linking into the catalog detail route.
func writeHomeProducts(buf *bytes.Buffer, v minsite.HomeView) {
	buf.WriteString("<section class=\"home-products\" id=\"products\">\n")
	fmt.Fprintf(buf, "<p class=\"eyebrow\">%s</p>\n", esc(v.Config.Name))
	buf.WriteString("<h2>Our Products</h2>\n")
	buf.WriteString("<div class=\"carousel\" data-carousel>\n")
	for _, p := range v.Products {
		fmt.Fprintf(buf, "<a class=\"carousel-card\" href=\"/products/%s\">\n", esc(p.EffectiveSlug()))
		if img := p.PrimaryImage(); img != "" {
			fmt.Fprintf(buf, "<img src=\"%s\" alt=\"%s\" loading=\"lazy\"/>\n", esc(img), esc(p.Name))
		}
		fmt.Fprintf(buf, "<h3>%s</h3>\n", esc(p.Name))
		if p.Subtitle != "" {
			fmt.Fprintf(buf, "<p>%s</p>\n", esc(p.Subtitle))
		}
		if len(p.Grades) > 0 {
			fmt.Fprintf(buf, "<span class=\"badge\">%d grades available</span>\n", len(p.Grades))
		}
		buf.WriteString("<span class=\"more\">View details</span>\n</a>\n")
	}
	buf.WriteString("</div>\n")
	buf.WriteString("<a class=\"cta\" href=\"/products\">View All Products</a>\n")
	buf.WriteString("</section>\n")
}

func writeAbout(buf *bytes.Buffer, v minsite.HomeView) {
	about := v.Meta.Section("about")
	buf.WriteString("<section class=\"about\" id=\"about\">\n")
	fmt.Fprintf(buf, "<h2>%s</h2>\n", esc(metaString(about, "title", "About Us")))
	fmt.Fprintf(buf, "<p>%s</p>\n", esc(metaString(about, "text", "")))
	buf.WriteString("</section>\n")
}

// writeContact renders the contact info block and the general contact form.
func writeContact(buf *bytes.Buffer, v minsite.HomeView) {
	contact := v.Meta.Section("contact")
	buf.WriteString("<section class=\"contact\" id=\"contact\">\n")
	fmt.Fprintf(buf, "<h2>%s</h2>\n", esc(metaString(contact, "title", "Get in Touch")))
	fmt.Fprintf(buf, "<p>%s</p>\n", esc(metaString(contact, "description", "")))

	if info, ok := contact["info"].(map[string]any); ok {
		buf.WriteString("<dl class=\"contact-info\">\n")
		writeInfoRow(buf, "Email", info, "email1", "email2")
		writeInfoRow(buf, "Phone", info, "phone1", "phone2", "phone3")
		writeInfoRow(buf, "Address", info, "address")
		writeInfoRow(buf, "Response Time", info, "responseTime")
		writeInfoRow(buf, "Markets", info, "markets")
		buf.WriteString("</dl>\n")
	}
	if trust := metaString(contact, "trustLine", ""); trust != "" {
		fmt.Fprintf(buf, "<p class=\"trust\">%s</p>\n", esc(trust))
	}

	writeContactForm(buf, v.PageView)
	buf.WriteString("</section>\n")
}

func writeInfoRow(buf *bytes.Buffer, label string, info map[string]any, keys ...string) {
	var vals []string
	for _, k := range keys {
		if s, ok := info[k].(string); ok && s != "" {
			vals = append(vals, s)
		}
	}
	if len(vals) == 0 {
		return
	}
	fmt.Fprintf(buf, "<dt>%s</dt>\n", esc(label))
	for _, val := range vals {
		fmt.Fprintf(buf, "<dd>%s</dd>\n", esc(val))
	}
}

func writeContactForm(buf *bytes.Buffer, v minsite.PageView) {
	buf.WriteString("<form class=\"enquiry-form\" method=\"post\" action=\"/enquiry\">\n")
	fmt.Fprintf(buf, "<input type=\"hidden\" name=\"_csrf\" value=\"%s\"/>\n", esc(v.CSRFToken))
	buf.WriteString("<input type=\"hidden\" name=\"kind\" value=\"contact\"/>\n")
	buf.WriteString("<input type=\"hidden\" name=\"return_to\" value=\"/#contact\"/>\n")
	writeField(buf, "name", "Name *", "text", "John Doe")
	writeField(buf, "email", "Email *", "email", "john@company.com")
	buf.WriteString("<label>Message *<textarea name=\"message\" rows=\"3\"></textarea></label>\n")
	buf.WriteString("<button type=\"submit\">Send Enquiry</button>\n")
	buf.WriteString("</form>\n")
}

func writeField(buf *bytes.Buffer, name, label, typ, placeholder string) {
	fmt.Fprintf(buf, "<label>%s<input type=\"%s\" name=\"%s\" placeholder=\"%s\"/></label>\n",
		esc(label), typ, name, esc(placeholder))
}

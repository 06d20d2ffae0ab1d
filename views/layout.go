package views

import (
	"bytes"
	"fmt"

	"github.com/orevale/minsite"
)

// writeLayoutOpen writes the document shell up to and including the opening
// of the page body. v.HeadHTML is the pre-rendered head-tag set computed by
// the route resolver; the layout never mutates it.
func writeLayoutOpen(buf *bytes.Buffer, v minsite.PageView) {
	buf.WriteString("<!doctype html>\n<html lang=\"en\">\n<head>\n")
	buf.WriteString("<meta charset=\"utf-8\"/>\n")
	buf.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"/>\n")
	buf.WriteString(v.HeadHTML)
	buf.WriteString("<link rel=\"stylesheet\" href=\"/public/styles.css\"/>\n")
	buf.WriteString("</head>\n<body>\n")

	writeHeader(buf, v)
	writeFlash(buf, v)
}

func writeLayoutClose(buf *bytes.Buffer, v minsite.PageView) {
	writeFooter(buf, v)
	buf.WriteString("<script src=\"/public/htmx.min.js\" defer></script>\n")
	buf.WriteString("<script src=\"/public/site.js\" defer></script>\n")
	buf.WriteString("</body>\n</html>\n")
}

func writeHeader(buf *bytes.Buffer, v minsite.PageView) {
	buf.WriteString("<header class=\"site-header\">\n")
	fmt.Fprintf(buf, "<a class=\"brand\" href=\"/\">%s</a>\n", esc(v.Config.Name))
	buf.WriteString("<nav>\n")
	buf.WriteString("<a href=\"/\">Home</a>\n")
	buf.WriteString("<a href=\"/products\">Products</a>\n")
	buf.WriteString("<a href=\"/#about\">About</a>\n")
	buf.WriteString("<a href=\"/#contact\">Contact</a>\n")
	buf.WriteString("</nav>\n</header>\n")
}

func writeFlash(buf *bytes.Buffer, v minsite.PageView) {
	if v.Flash == "" {
		return
	}
	kind := "ok"
	if v.FlashKind == "error" {
		kind = "error"
	}
	fmt.Fprintf(buf, "<div class=\"flash flash-%s\" role=\"status\">%s</div>\n", kind, esc(v.Flash))
}

func writeFooter(buf *bytes.Buffer, v minsite.PageView) {
	buf.WriteString("<footer class=\"site-footer\">\n")
	fmt.Fprintf(buf, "<p>&copy; %s. Export-grade industrial minerals.</p>\n", esc(v.Config.Name))
	buf.WriteString("</footer>\n")
}

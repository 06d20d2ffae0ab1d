package views

import (
	"bytes"

	"github.com/a-h/templ"

	"github.com/orevale/minsite"
)

// NotFound renders the 404 page.
func NotFound(v minsite.PageView) templ.Component {
	return component(func(buf *bytes.Buffer) {
		writeLayoutOpen(buf, v)
		buf.WriteString("<section class=\"error-page\">\n")
		buf.WriteString("<h1>Page not found</h1>\n")
		buf.WriteString("<p>The page you were looking for does not exist.</p>\n")
		buf.WriteString("<a class=\"cta\" href=\"/products\">Browse Products</a>\n")
		buf.WriteString("</section>\n")
		writeLayoutClose(buf, v)
	})
}

// ServerError renders the 500 page.
func ServerError(v minsite.PageView) templ.Component {
	return component(func(buf *bytes.Buffer) {
		writeLayoutOpen(buf, v)
		buf.WriteString("<section class=\"error-page\">\n")
		buf.WriteString("<h1>Something went wrong</h1>\n")
		buf.WriteString("<p>Please try again in a moment.</p>\n")
		buf.WriteString("</section>\n")
		writeLayoutClose(buf, v)
	})
}

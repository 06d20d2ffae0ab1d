// Package views provides the default templ components for the minsite
// engine. Components are plain HTML writers wrapped in templ.ComponentFunc;
// deployments can replace any of them through minsite.ViewFuncs.
package views

import (
	"bytes"
	"context"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/orevale/minsite"
)

// Default returns the built-in view set.
func Default() minsite.ViewFuncs {
	return minsite.ViewFuncs{
		Home:        Home,
		Products:    Products,
		ProductGrid: ProductGrid,
		NotFound:    NotFound,
		ServerError: ServerError,
	}
}

// component wraps a buffer-writing render function as a templ.Component.
func component(render func(buf *bytes.Buffer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		render(&buf)
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func esc(s string) string {
	return html.EscapeString(s)
}

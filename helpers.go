package minsite

import (
	"net/url"
	"path"
	"strings"
)

// Slugify converts a display name or category label to a URL-safe slug.
// Lowercase, "&" becomes "and", every run of non-alphanumeric characters
// collapses to a single hyphen, leading/trailing hyphens are trimmed.
// The sitemap generator and the route resolver must share this exact logic.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "&", "and")
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// BuildURL joins a base URL with path segments.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	return u.String()
}

// FilterEmpty removes empty/whitespace-only strings from a slice.
func FilterEmpty(vals []string) []string {
	var out []string
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// TruncateMeta shortens s to at most max runes for a meta description,
// cutting on a word boundary and appending an ellipsis when trimmed.
func TruncateMeta(s string, max int) string {
	s = strings.TrimSpace(s)
	if len([]rune(s)) <= max {
		return s
	}
	runes := []rune(s)[:max]
	cut := strings.LastIndexByte(string(runes), ' ')
	if cut > 0 {
		runes = []rune(string(runes)[:cut])
	}
	return strings.TrimRight(string(runes), " .,;:") + "…"
}

// PathEscape escapes a string for use in a URL path.
func PathEscape(s string) string {
	return url.PathEscape(s)
}

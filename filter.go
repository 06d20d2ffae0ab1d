package minsite

import "strings"

// FilterQuery carries the three inputs that determine the visible subset of
// the catalog. RouteCategory comes from the path segment, QueryCategory from
// the ?category= parameter; the route-derived one wins when both are set.
type FilterQuery struct {
	Search        string
	RouteCategory string
	QueryCategory string
}

// Category returns the effective category selector, empty (or "all") meaning
// no category restriction.
func (q FilterQuery) Category() string {
	if q.RouteCategory != "" {
		return q.RouteCategory
	}
	return q.QueryCategory
}

// Active reports whether any filtering input is set.
func (q FilterQuery) Active() bool {
	c := q.Category()
	return strings.TrimSpace(q.Search) != "" || (c != "" && c != "all")
}

// Filter computes the visible subset of products for the given query.
// Category matching is exact and case-sensitive on the stored type value;
// search is a case-folded substring match over name, subtitle, description
// and each applications/grades entry. The result is a stable subsequence of
// products: relative order is preserved and the function is pure.
func Filter(products []Product, q FilterQuery) []Product {
	filtered := products

	if c := q.Category(); c != "" && c != "all" {
		var byCategory []Product
		for _, p := range filtered {
			if p.Type == c {
				byCategory = append(byCategory, p)
			}
		}
		filtered = byCategory
	}

	search := strings.ToLower(strings.TrimSpace(q.Search))
	if search != "" {
		var bySearch []Product
		for _, p := range filtered {
			if productMatches(p, search) {
				bySearch = append(bySearch, p)
			}
		}
		filtered = bySearch
	}

	return filtered
}

func productMatches(p Product, search string) bool {
	if strings.Contains(strings.ToLower(p.Name), search) ||
		strings.Contains(strings.ToLower(p.Subtitle), search) ||
		strings.Contains(strings.ToLower(p.Description), search) {
		return true
	}
	for _, app := range p.Applications {
		if strings.Contains(strings.ToLower(app), search) {
			return true
		}
	}
	for _, grade := range p.Grades {
		if strings.Contains(strings.ToLower(grade), search) {
			return true
		}
	}
	return false
}

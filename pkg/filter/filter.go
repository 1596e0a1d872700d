// Package filter computes the gallery's filtered view: the subset of
// dish keys matching the current search query and category selection.
// Views are disposable; every input change recomputes from scratch and
// the underlying dishes are never copied.
package filter

import (
	"strings"

	"github.com/K4-001/NutriPinoy/pkg/catalog"
	"github.com/K4-001/NutriPinoy/pkg/nutrition"
)

// Apply returns the keys of c matching query and category, in the
// collection's insertion order.
//
// The query is lowercased and trimmed; a non-empty query keeps dishes
// whose name or description contains it as a case-insensitive
// substring. A category other than nutrition.CategoryAll further keeps
// only dishes whose derived calorie category matches. The two
// predicates compose as a logical AND, search first. An empty query
// with CategoryAll is the identity filter.
func Apply(c *catalog.Collection, query string, category nutrition.Category) []string {
	query = strings.ToLower(strings.TrimSpace(query))

	var out []string
	for _, key := range c.Keys() {
		d, ok := c.Get(key)
		if !ok {
			continue
		}
		if query != "" && !matchesQuery(d, query) {
			continue
		}
		if category != nutrition.CategoryAll && nutrition.DishCategory(d) != category {
			continue
		}
		out = append(out, key)
	}
	return out
}

// matchesQuery reports whether the lowercased query occurs in the
// dish's name or description.
func matchesQuery(d *catalog.Dish, query string) bool {
	return strings.Contains(strings.ToLower(d.Name), query) ||
		strings.Contains(strings.ToLower(d.Description), query)
}

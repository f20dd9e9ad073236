package domain

import (
	"strings"

	"github.com/oakmart/storefront/internal/catalog"
)

// FilterState is the category/search predicate currently applied to the
// catalog view. Category and search term are mutually exclusive: applying
// one resets the other to its neutral value, so at most one predicate is
// ever in effect.
type FilterState struct {
	Category   catalog.Category `json:"category"`
	SearchTerm string           `json:"search_term"`
}

// NewFilterState returns the neutral filter (all products, no search).
func NewFilterState() FilterState {
	return FilterState{
		Category:   catalog.CategoryAll,
		SearchTerm: "",
	}
}

// Matches reports whether the given product passes the active predicate.
func (f FilterState) Matches(p catalog.Product) bool {
	if term := strings.TrimSpace(f.SearchTerm); term != "" {
		lower := strings.ToLower(term)
		return strings.Contains(strings.ToLower(p.Name), lower) ||
			strings.Contains(strings.ToLower(p.Description), lower) ||
			strings.Contains(strings.ToLower(p.LongDescription), lower)
	}
	if f.Category != catalog.CategoryAll {
		return p.Category == f.Category
	}
	return true
}

// Apply returns the catalog products passing the active predicate, in
// catalog order.
func (f FilterState) Apply(products []catalog.Product) []catalog.Product {
	out := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

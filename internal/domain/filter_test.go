package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oakmart/storefront/internal/catalog"
)

func testProducts() []catalog.Product {
	return []catalog.Product{
		{ID: "p1", Name: "Wireless Headphones", Description: "Bluetooth audio", LongDescription: "Noise cancelling over-ear set", Category: catalog.CategoryElectronics},
		{ID: "p2", Name: "Cotton Shirt", Description: "Soft tee", LongDescription: "Everyday organic cotton", Category: catalog.CategoryApparel},
		{ID: "p3", Name: "Desk Lamp", Description: "LED lighting", LongDescription: "Adjustable wireless charging base", Category: catalog.CategoryHome},
	}
}

func TestFilterState_Neutral(t *testing.T) {
	f := NewFilterState()
	assert.Equal(t, catalog.CategoryAll, f.Category)
	assert.Empty(t, f.SearchTerm)
	assert.Len(t, f.Apply(testProducts()), 3)
}

func TestFilterState_CategoryPredicate(t *testing.T) {
	f := FilterState{Category: catalog.CategoryApparel}

	got := f.Apply(testProducts())
	assert.Len(t, got, 1)
	assert.Equal(t, "p2", got[0].ID)
}

func TestFilterState_SearchPredicate(t *testing.T) {
	tests := []struct {
		name    string
		term    string
		wantIDs []string
	}{
		{"matches name", "headphones", []string{"p1"}},
		{"matches description", "soft tee", []string{"p2"}},
		{"matches long description", "charging base", []string{"p3"}},
		{"case insensitive", "WIRELESS", []string{"p1", "p3"}},
		{"blank means everything", "   ", []string{"p1", "p2", "p3"}},
		{"no match", "quantum", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := FilterState{Category: catalog.CategoryAll, SearchTerm: tt.term}

			ids := make([]string, 0)
			for _, p := range f.Apply(testProducts()) {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFilterState_SearchTermWinsOverCategory(t *testing.T) {
	// A non-blank search term is evaluated even if a category is set. The
	// service layer resets one when setting the other, so this only arises
	// transiently, but the predicate order is fixed.
	f := FilterState{Category: catalog.CategoryApparel, SearchTerm: "lamp"}

	got := f.Apply(testProducts())
	assert.Len(t, got, 1)
	assert.Equal(t, "p3", got[0].ID)
}

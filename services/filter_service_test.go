package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norvila-Ecommerce/norvila-store-backend/models"
)

func fixtureProduct(titleEn string, price float64, categorySlug string, createdAt time.Time) models.Product {
	return models.Product{
		ID:      uuid.Must(uuid.NewV7()),
		TitleEn: titleEn,
		TitleLt: titleEn + " LT",
		Price:   price,
		Category: &models.Category{
			Slug: categorySlug,
		},
		CreatedAt: createdAt,
	}
}

func TestApplyFiltersByCategory(t *testing.T) {
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	products := []models.Product{
		fixtureProduct("Shirt", 29.99, "clothing", base),
		fixtureProduct("Shoes", 89.99, "shoes", base.Add(time.Hour)),
		fixtureProduct("Jacket", 79.99, "clothing", base.Add(2*time.Hour)),
	}

	sel := models.DefaultFilterSelection()
	sel.Category = "clothing"

	result := ApplyFilters(products, sel, "en")
	require.Len(t, result, 2)
	assert.Equal(t, "Jacket", result[0].TitleEn)
	assert.Equal(t, "Shirt", result[1].TitleEn)
}

func TestApplyFiltersCategoryAllKeepsEverything(t *testing.T) {
	base := time.Now()
	products := []models.Product{
		fixtureProduct("A", 10, "clothing", base),
		fixtureProduct("B", 20, "shoes", base),
	}

	result := ApplyFilters(products, models.DefaultFilterSelection(), "en")
	assert.Len(t, result, 2)
}

func TestApplyFiltersPriceRangeIsInclusive(t *testing.T) {
	base := time.Now()
	products := []models.Product{
		fixtureProduct("Low", 10, "clothing", base),
		fixtureProduct("High", 90, "clothing", base),
	}

	sel := models.DefaultFilterSelection()
	sel.MinPrice = 0
	sel.MaxPrice = 50

	result := ApplyFilters(products, sel, "en")
	require.Len(t, result, 1)
	assert.Equal(t, "Low", result[0].TitleEn)

	// Boundary values stay in.
	sel.MinPrice = 10
	sel.MaxPrice = 90
	result = ApplyFilters(products, sel, "en")
	assert.Len(t, result, 2)
}

func TestApplyFiltersDoesNotMutateInput(t *testing.T) {
	base := time.Now()
	products := []models.Product{
		fixtureProduct("B", 20, "clothing", base),
		fixtureProduct("A", 10, "clothing", base.Add(time.Hour)),
	}

	sel := models.DefaultFilterSelection()
	sel.SortBy = models.SortNameAsc
	_ = ApplyFilters(products, sel, "en")

	assert.Equal(t, "B", products[0].TitleEn)
	assert.Equal(t, "A", products[1].TitleEn)
}

func TestApplyFiltersIsIdempotent(t *testing.T) {
	base := time.Now()
	products := []models.Product{
		fixtureProduct("C", 30, "clothing", base),
		fixtureProduct("A", 10, "shoes", base.Add(time.Hour)),
		fixtureProduct("B", 20, "clothing", base.Add(2*time.Hour)),
	}

	sel := models.DefaultFilterSelection()
	sel.SortBy = models.SortPriceLow

	first := ApplyFilters(products, sel, "en")
	second := ApplyFilters(first, sel, "en")
	assert.Equal(t, first, second)
}

func TestSortProductsAllKeys(t *testing.T) {
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	newest := fixtureProduct("Banana", 30, "clothing", base.Add(2*time.Hour))
	middle := fixtureProduct("apple", 10, "clothing", base.Add(time.Hour))
	oldest := fixtureProduct("Cherry", 20, "clothing", base)

	cases := []struct {
		sortBy models.SortOption
		want   []string
	}{
		{models.SortNewest, []string{"Banana", "apple", "Cherry"}},
		{models.SortOldest, []string{"Cherry", "apple", "Banana"}},
		{models.SortPriceLow, []string{"apple", "Cherry", "Banana"}},
		{models.SortPriceHigh, []string{"Banana", "Cherry", "apple"}},
		{models.SortNameAsc, []string{"apple", "Banana", "Cherry"}},
		{models.SortNameDesc, []string{"Cherry", "Banana", "apple"}},
	}

	for _, tc := range cases {
		t.Run(string(tc.sortBy), func(t *testing.T) {
			products := []models.Product{newest, middle, oldest}
			SortProducts(products, tc.sortBy, "en")
			got := make([]string, len(products))
			for i, p := range products {
				got[i] = p.TitleEn
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSortProductsIsStable(t *testing.T) {
	base := time.Now()
	// Same price everywhere; fetch order must survive the sort.
	products := []models.Product{
		fixtureProduct("First", 25, "clothing", base),
		fixtureProduct("Second", 25, "clothing", base),
		fixtureProduct("Third", 25, "clothing", base),
	}

	SortProducts(products, models.SortPriceLow, "en")

	assert.Equal(t, "First", products[0].TitleEn)
	assert.Equal(t, "Second", products[1].TitleEn)
	assert.Equal(t, "Third", products[2].TitleEn)
}

func TestSortProductsUnknownKeyFallsBackToNewest(t *testing.T) {
	base := time.Now()
	products := []models.Product{
		fixtureProduct("Old", 10, "clothing", base),
		fixtureProduct("New", 10, "clothing", base.Add(time.Hour)),
	}

	SortProducts(products, models.SortOption("bogus"), "en")
	assert.Equal(t, "New", products[0].TitleEn)
}

func TestMatchesSearch(t *testing.T) {
	p := models.Product{
		TitleEn:       "Wireless Headphones",
		TitleLt:       "Belaidės ausinės",
		DescriptionEn: "Active noise cancellation",
		DescriptionLt: "Aktyvus triukšmo slopinimas",
	}

	assert.True(t, MatchesSearch(&p, "wireless", "en"))
	assert.True(t, MatchesSearch(&p, "NOISE", "en"))
	assert.True(t, MatchesSearch(&p, "ausinės", "lt"))
	assert.False(t, MatchesSearch(&p, "ausinės", "en"))
	assert.False(t, MatchesSearch(&p, "keyboard", "en"))
	assert.True(t, MatchesSearch(&p, "  ", "en"))
}

package models

// SortOption enumerates the storefront sort keys.
type SortOption string

const (
	SortNewest    SortOption = "newest"
	SortOldest    SortOption = "oldest"
	SortPriceLow  SortOption = "price-low"
	SortPriceHigh SortOption = "price-high"
	SortNameAsc   SortOption = "name-asc"
	SortNameDesc  SortOption = "name-desc"
)

// Valid reports whether the option is one of the known sort keys.
func (s SortOption) Valid() bool {
	switch s {
	case SortNewest, SortOldest, SortPriceLow, SortPriceHigh, SortNameAsc, SortNameDesc:
		return true
	}
	return false
}

// CategoryAll is the sentinel meaning "no category filter".
const CategoryAll = "all"

// FilterSelection is the page-local filter state applied over a fetched
// product list. Search text is handled upstream by the catalog accessor.
type FilterSelection struct {
	Category string     `form:"category"`
	MinPrice float64    `form:"minPrice"`
	MaxPrice float64    `form:"maxPrice"`
	Search   string     `form:"q"`
	SortBy   SortOption `form:"sortBy"`
}

// DefaultFilterSelection mirrors the storefront's initial state.
func DefaultFilterSelection() FilterSelection {
	return FilterSelection{
		Category: CategoryAll,
		MinPrice: 0,
		MaxPrice: 1000,
		SortBy:   SortNewest,
	}
}

// PriceRangeData is the min/max price across the catalog, used to
// initialise the price slider.
type PriceRangeData struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FilterMetadata bundles the data the filter sidebar needs.
type FilterMetadata struct {
	Categories []Category     `json:"categories"`
	PriceRange PriceRangeData `json:"priceRange"`
}

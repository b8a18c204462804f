package services

import (
	"sort"
	"strings"

	"github.com/Norvila-Ecommerce/norvila-store-backend/models"
)

// ApplyFilters narrows and orders a fetched product list according to the
// user's selection. The input slice is never mutated; callers can apply the
// same selection repeatedly and get the same ordered result.
func ApplyFilters(products []models.Product, sel models.FilterSelection, lang string) []models.Product {
	filtered := make([]models.Product, 0, len(products))

	for _, p := range products {
		if sel.Category != "" && sel.Category != models.CategoryAll {
			if p.Category == nil || p.Category.Slug != sel.Category {
				continue
			}
		}
		if p.Price < sel.MinPrice || p.Price > sel.MaxPrice {
			continue
		}
		filtered = append(filtered, p)
	}

	SortProducts(filtered, sel.SortBy, lang)
	return filtered
}

// SortProducts orders the slice in place by the selected key. The sort is
// stable so products with equal keys keep their fetch order.
func SortProducts(products []models.Product, sortBy models.SortOption, lang string) {
	if !sortBy.Valid() {
		sortBy = models.SortNewest
	}

	sort.SliceStable(products, func(i, j int) bool {
		a, b := &products[i], &products[j]
		switch sortBy {
		case models.SortOldest:
			return a.CreatedAt.Before(b.CreatedAt)
		case models.SortPriceLow:
			return a.Price < b.Price
		case models.SortPriceHigh:
			return a.Price > b.Price
		case models.SortNameAsc:
			return strings.ToLower(a.Title(lang)) < strings.ToLower(b.Title(lang))
		case models.SortNameDesc:
			return strings.ToLower(a.Title(lang)) > strings.ToLower(b.Title(lang))
		default: // newest
			return a.CreatedAt.After(b.CreatedAt)
		}
	})
}

// MatchesSearch reports whether the product's display-language title or
// description contains the query, case-insensitively.
func MatchesSearch(p *models.Product, query, lang string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Title(lang)), q) ||
		strings.Contains(strings.ToLower(p.Description(lang)), q)
}

// sortClause translates a sort option into the SQL ORDER BY used on the
// database path. The id tiebreak keeps pagination deterministic, matching
// the stable in-memory sort.
func sortClause(sortBy models.SortOption, lang string) string {
	title := "title_en"
	if lang == "lt" {
		title = "title_lt"
	}

	switch sortBy {
	case models.SortOldest:
		return "created_at ASC, id ASC"
	case models.SortPriceLow:
		return "price ASC, id ASC"
	case models.SortPriceHigh:
		return "price DESC, id ASC"
	case models.SortNameAsc:
		return "LOWER(" + title + ") ASC, id ASC"
	case models.SortNameDesc:
		return "LOWER(" + title + ") DESC, id ASC"
	default:
		return "created_at DESC, id ASC"
	}
}

// Package catalog_cache holds short-lived in-process caches for the hot
// storefront reads. Admin writes call Invalidate.
package catalog_cache

import (
	"sync"
	"time"

	"github.com/Norvila-Ecommerce/norvila-store-backend/models"
)

const TTL = 5 * time.Minute

// ── Category list cache ──────────────────────────────────────────────────────

type categoryEntry struct {
	data      []models.Category
	fetchedAt time.Time
}

var (
	categoryMu    sync.RWMutex
	categoryCache *categoryEntry
)

func GetCategories() ([]models.Category, bool) {
	categoryMu.RLock()
	defer categoryMu.RUnlock()
	if categoryCache != nil && time.Since(categoryCache.fetchedAt) < TTL {
		return categoryCache.data, true
	}
	return nil, false
}

func SetCategories(data []models.Category) {
	categoryMu.Lock()
	defer categoryMu.Unlock()
	categoryCache = &categoryEntry{data: data, fetchedAt: time.Now()}
}

// ── Filter metadata cache ────────────────────────────────────────────────────

type metadataEntry struct {
	data      *models.FilterMetadata
	fetchedAt time.Time
}

var (
	metadataMu    sync.RWMutex
	metadataCache *metadataEntry
)

func GetFilterMetadata() (*models.FilterMetadata, bool) {
	metadataMu.RLock()
	defer metadataMu.RUnlock()
	if metadataCache != nil && time.Since(metadataCache.fetchedAt) < TTL {
		return metadataCache.data, true
	}
	return nil, false
}

func SetFilterMetadata(data *models.FilterMetadata) {
	metadataMu.Lock()
	defer metadataMu.Unlock()
	metadataCache = &metadataEntry{data: data, fetchedAt: time.Now()}
}

// ── Invalidate everything (call on any product/category write) ───────────────

func Invalidate() {
	categoryMu.Lock()
	categoryCache = nil
	categoryMu.Unlock()

	metadataMu.Lock()
	metadataCache = nil
	metadataMu.Unlock()
}

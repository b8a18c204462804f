package services

import (
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Norvila-Ecommerce/norvila-store-backend/config"
	"github.com/Norvila-Ecommerce/norvila-store-backend/mockdata"
	"github.com/Norvila-Ecommerce/norvila-store-backend/models"
	"github.com/Norvila-Ecommerce/norvila-store-backend/utils"
)

// ErrNotFound is returned when a requested product, category or post has no
// match. Handlers map it to a 404.
var ErrNotFound = errors.New("not found")

// CatalogService reads products, categories and blog posts. When the
// database is unconfigured or unreachable it degrades to the fixture set:
// the failure is logged, never surfaced to the storefront.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

func (s *CatalogService) useFixtures() bool {
	return config.MockMode || s.db == nil
}

// ListProducts returns the catalog narrowed by the selection, newest first
// unless the selection says otherwise. Search runs over the display-language
// title and description.
func (s *CatalogService) ListProducts(sel models.FilterSelection, lang string) ([]models.Product, error) {
	if s.useFixtures() {
		return s.fixtureProducts(sel, lang), nil
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := s.db.WithContext(ctx).Preload("Category").Model(&models.Product{})

	if sel.Category != "" && sel.Category != models.CategoryAll {
		query = query.Where(
			"category_id IN (SELECT id FROM categories WHERE slug = ?)",
			sel.Category,
		)
	}
	query = query.Where("price >= ? AND price <= ?", sel.MinPrice, sel.MaxPrice)

	if q := sel.Search; q != "" {
		title, description := "title_en", "description_en"
		if lang == "lt" {
			title, description = "title_lt", "description_lt"
		}
		pattern := "%" + q + "%"
		query = query.Where(title+" ILIKE ? OR "+description+" ILIKE ?", pattern, pattern)
	}

	var products []models.Product
	if err := query.Order(sortClause(sel.SortBy, lang)).Find(&products).Error; err != nil {
		log.Printf("❌ product query failed, serving fixture data: %v", err)
		return s.fixtureProducts(sel, lang), nil
	}
	return products, nil
}

func (s *CatalogService) fixtureProducts(sel models.FilterSelection, lang string) []models.Product {
	all := mockdata.Products()
	if sel.Search != "" {
		searched := make([]models.Product, 0, len(all))
		for _, p := range all {
			if MatchesSearch(&p, sel.Search, lang) {
				searched = append(searched, p)
			}
		}
		all = searched
	}
	return ApplyFilters(all, sel, lang)
}

// GetProduct fetches a single product with its category.
func (s *CatalogService) GetProduct(id uuid.UUID) (*models.Product, error) {
	if s.useFixtures() {
		if p, ok := mockdata.ProductByID(id); ok {
			return &p, nil
		}
		return nil, ErrNotFound
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var product models.Product
	err := s.db.WithContext(ctx).Preload("Category").First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		log.Printf("❌ product lookup failed, trying fixture data: %v", err)
		if p, ok := mockdata.ProductByID(id); ok {
			return &p, nil
		}
		return nil, ErrNotFound
	}
	return &product, nil
}

// ListCategories returns all categories in creation order.
func (s *CatalogService) ListCategories() ([]models.Category, error) {
	if s.useFixtures() {
		return mockdata.Categories(), nil
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var categories []models.Category
	if err := s.db.WithContext(ctx).Order("created_at ASC").Find(&categories).Error; err != nil {
		log.Printf("❌ category query failed, serving fixture data: %v", err)
		return mockdata.Categories(), nil
	}
	return categories, nil
}

// FilterMetadata returns the sidebar data: categories plus the catalog
// price range for the slider.
func (s *CatalogService) FilterMetadata() (*models.FilterMetadata, error) {
	categories, err := s.ListCategories()
	if err != nil {
		return nil, err
	}

	metadata := &models.FilterMetadata{
		Categories: categories,
		PriceRange: models.PriceRangeData{Min: 0, Max: 1000},
	}

	if s.useFixtures() {
		metadata.PriceRange = fixturePriceRange()
		return metadata, nil
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var priceRange models.PriceRangeData
	err = s.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(MIN(price), 0)::float8 AS min,
			COALESCE(MAX(price), 1000)::float8 AS max
		FROM products
	`).Scan(&priceRange).Error
	if err != nil {
		log.Printf("❌ price range query failed, using fixture range: %v", err)
		metadata.PriceRange = fixturePriceRange()
		return metadata, nil
	}

	metadata.PriceRange = priceRange
	return metadata, nil
}

func fixturePriceRange() models.PriceRangeData {
	products := mockdata.Products()
	if len(products) == 0 {
		return models.PriceRangeData{Min: 0, Max: 1000}
	}
	pr := models.PriceRangeData{Min: products[0].Price, Max: products[0].Price}
	for _, p := range products[1:] {
		if p.Price < pr.Min {
			pr.Min = p.Price
		}
		if p.Price > pr.Max {
			pr.Max = p.Price
		}
	}
	return pr
}

const (
	blogExcerptLength = 160
	blogImageWidth    = 800
	blogImageHeight   = 450
)

// blogPreview fills in the derived presentation fields: posts saved without
// an excerpt get one cut from the content, and the featured image is sized
// for the blog card.
func blogPreview(p *models.BlogPost) {
	if p.ExcerptEn == nil || *p.ExcerptEn == "" {
		excerpt := utils.TruncateText(p.ContentEn, blogExcerptLength)
		p.ExcerptEn = &excerpt
	}
	if p.ExcerptLt == nil || *p.ExcerptLt == "" {
		excerpt := utils.TruncateText(p.ContentLt, blogExcerptLength)
		p.ExcerptLt = &excerpt
	}
	if p.FeaturedImage != nil {
		sized := utils.GetImageURL(*p.FeaturedImage, blogImageWidth, blogImageHeight)
		p.FeaturedImage = &sized
	}
}

// ListBlogPosts returns published posts, newest first.
func (s *CatalogService) ListBlogPosts() ([]models.BlogPost, error) {
	if s.useFixtures() {
		posts := mockdata.BlogPosts()
		for i := range posts {
			blogPreview(&posts[i])
		}
		return posts, nil
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var posts []models.BlogPost
	err := s.db.WithContext(ctx).
		Where("is_published = ?", true).
		Order("published_at DESC").
		Find(&posts).Error
	if err != nil {
		log.Printf("❌ blog query failed, serving fixture data: %v", err)
		posts = mockdata.BlogPosts()
	}
	for i := range posts {
		blogPreview(&posts[i])
	}
	return posts, nil
}

// GetBlogPost fetches a published post by slug.
func (s *CatalogService) GetBlogPost(slug string) (*models.BlogPost, error) {
	if s.useFixtures() {
		if b, ok := mockdata.BlogPostBySlug(slug); ok {
			blogPreview(&b)
			return &b, nil
		}
		return nil, ErrNotFound
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var post models.BlogPost
	err := s.db.WithContext(ctx).
		Where("slug = ? AND is_published = ?", slug, true).
		First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		log.Printf("❌ blog lookup failed, trying fixture data: %v", err)
		if b, ok := mockdata.BlogPostBySlug(slug); ok {
			blogPreview(&b)
			return &b, nil
		}
		return nil, ErrNotFound
	}
	blogPreview(&post)
	return &post, nil
}

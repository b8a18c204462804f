package services

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Norvila-Ecommerce/norvila-store-backend/mockdata"
	"github.com/Norvila-Ecommerce/norvila-store-backend/models"
)

// A nil *gorm.DB puts the catalog service on the fixture path, which is how
// the app runs when Supabase is not configured.
func fixtureCatalog() *CatalogService {
	return NewCatalogService(nil)
}

func TestListProductsFixtureDefaults(t *testing.T) {
	svc := fixtureCatalog()

	products, err := svc.ListProducts(models.DefaultFilterSelection(), "en")
	require.NoError(t, err)
	require.Len(t, products, 8)

	// Default sort is newest first.
	for i := 1; i < len(products); i++ {
		assert.False(t, products[i].CreatedAt.After(products[i-1].CreatedAt))
	}
}

func TestListProductsFixtureByCategory(t *testing.T) {
	svc := fixtureCatalog()

	sel := models.DefaultFilterSelection()
	sel.Category = "shoes"

	products, err := svc.ListProducts(sel, "en")
	require.NoError(t, err)
	require.Len(t, products, 2)
	for _, p := range products {
		require.NotNil(t, p.Category)
		assert.Equal(t, "shoes", p.Category.Slug)
	}
}

func TestListProductsFixtureSearchEnglish(t *testing.T) {
	svc := fixtureCatalog()

	sel := models.DefaultFilterSelection()
	sel.Search = "leather"

	products, err := svc.ListProducts(sel, "en")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Leather Wallet", products[0].TitleEn)
}

func TestListProductsFixtureSearchLithuanian(t *testing.T) {
	svc := fixtureCatalog()

	sel := models.DefaultFilterSelection()
	sel.Search = "batai"

	products, err := svc.ListProducts(sel, "lt")
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Bėgimo batai", products[0].TitleLt)
}

func TestListProductsFixturePriceCeilingExcludesExpensive(t *testing.T) {
	svc := fixtureCatalog()

	sel := models.DefaultFilterSelection()
	sel.MaxPrice = 100

	products, err := svc.ListProducts(sel, "en")
	require.NoError(t, err)
	for _, p := range products {
		assert.LessOrEqual(t, p.Price, 100.0)
	}
	// Smart Watch (299.99) and Wireless Headphones (199.99) are out.
	assert.Len(t, products, 6)
}

func TestGetProductFixture(t *testing.T) {
	svc := fixtureCatalog()
	fixture := mockdata.Products()[0]

	product, err := svc.GetProduct(fixture.ID)
	require.NoError(t, err)
	assert.Equal(t, fixture.TitleEn, product.TitleEn)
	require.NotNil(t, product.Category)
	assert.Equal(t, "clothing", product.Category.Slug)
}

func TestGetProductFixtureNotFound(t *testing.T) {
	svc := fixtureCatalog()

	_, err := svc.GetProduct(uuid.Must(uuid.NewV7()))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListCategoriesFixture(t *testing.T) {
	svc := fixtureCatalog()

	categories, err := svc.ListCategories()
	require.NoError(t, err)
	require.Len(t, categories, 4)

	slugs := make([]string, len(categories))
	for i, c := range categories {
		slugs[i] = c.Slug
	}
	assert.Equal(t, []string{"clothing", "shoes", "accessories", "electronics"}, slugs)
}

func TestFilterMetadataFixture(t *testing.T) {
	svc := fixtureCatalog()

	metadata, err := svc.FilterMetadata()
	require.NoError(t, err)
	assert.Len(t, metadata.Categories, 4)
	assert.InDelta(t, 29.99, metadata.PriceRange.Min, 0.001)
	assert.InDelta(t, 299.99, metadata.PriceRange.Max, 0.001)
}

func TestBlogPostsFixture(t *testing.T) {
	svc := fixtureCatalog()

	posts, err := svc.ListBlogPosts()
	require.NoError(t, err)
	require.Len(t, posts, 3)

	// Listed posts come back with card-sized featured images.
	for _, p := range posts {
		require.NotNil(t, p.FeaturedImage)
		assert.Contains(t, *p.FeaturedImage, "fit=crop")
		assert.NotContains(t, *p.FeaturedImage, "??")
	}

	post, err := svc.GetBlogPost("sustainable-fashion-guide")
	require.NoError(t, err)
	assert.Equal(t, "Sustainable Fashion: A Guide to Eco-Friendly Shopping", post.TitleEn)

	_, err = svc.GetBlogPost("missing-post")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBlogPreviewDerivesExcerptAndSizedImage(t *testing.T) {
	img := "https://images.unsplash.com/photo-999?w=800"
	post := models.BlogPost{
		ContentEn:     strings.Repeat("very long article body ", 20),
		ContentLt:     "trumpas",
		FeaturedImage: &img,
	}

	blogPreview(&post)

	require.NotNil(t, post.ExcerptEn)
	assert.Len(t, []rune(*post.ExcerptEn), blogExcerptLength+3)
	assert.True(t, strings.HasSuffix(*post.ExcerptEn, "..."))

	// Content shorter than the limit is used as-is.
	require.NotNil(t, post.ExcerptLt)
	assert.Equal(t, "trumpas", *post.ExcerptLt)

	require.NotNil(t, post.FeaturedImage)
	assert.Contains(t, *post.FeaturedImage, "h=450")
	assert.Contains(t, *post.FeaturedImage, "fit=crop")
	assert.NotContains(t, *post.FeaturedImage, "??")
}

// Package mockdata holds the fixture catalog served when the Supabase
// backend is not configured. IDs are fixed so fixture-mode carts, orders
// and deep links stay stable across restarts.
package mockdata

import (
	"time"

	"github.com/google/uuid"

	"github.com/Norvila-Ecommerce/norvila-store-backend/models"
)

var (
	categoryClothing    = uuid.MustParse("0191c000-0000-7000-8000-000000000001")
	categoryShoes       = uuid.MustParse("0191c000-0000-7000-8000-000000000002")
	categoryAccessories = uuid.MustParse("0191c000-0000-7000-8000-000000000003")
	categoryElectronics = uuid.MustParse("0191c000-0000-7000-8000-000000000004")
)

// fixtureTime staggers created_at so "newest" ordering is deterministic:
// higher n means created later.
func fixtureTime(n int) time.Time {
	base := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	return base.Add(time.Duration(n) * 24 * time.Hour)
}

func Categories() []models.Category {
	return []models.Category{
		{ID: categoryClothing, NameEn: "Clothing", NameLt: "Drabužiai", Slug: "clothing", CreatedAt: fixtureTime(0)},
		{ID: categoryShoes, NameEn: "Shoes", NameLt: "Batai", Slug: "shoes", CreatedAt: fixtureTime(0)},
		{ID: categoryAccessories, NameEn: "Accessories", NameLt: "Aksesuarai", Slug: "accessories", CreatedAt: fixtureTime(0)},
		{ID: categoryElectronics, NameEn: "Electronics", NameLt: "Elektronika", Slug: "electronics", CreatedAt: fixtureTime(0)},
	}
}

func categoryByID(id uuid.UUID) *models.Category {
	for _, c := range Categories() {
		if c.ID == id {
			cat := c
			return &cat
		}
	}
	return nil
}

func Products() []models.Product {
	products := []models.Product{
		{
			ID:            uuid.MustParse("0191c001-0000-7000-8000-000000000001"),
			TitleEn:       "Classic T-Shirt",
			TitleLt:       "Klasikiniai marškinėliai",
			DescriptionEn: "Comfortable cotton t-shirt perfect for everyday wear. Made from premium organic cotton with a relaxed fit.",
			DescriptionLt: "Patogūs medvilniniai marškinėliai kasdieniam nešiojimui. Pagaminti iš aukščiausios kokybės organinės medvilnės su laisvu kroju.",
			Price:         29.99,
			Stock:         50,
			CategoryID:    categoryClothing,
			ImageURL:      "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=500",
			Images: models.StringList{
				"https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=500",
				"https://images.unsplash.com/photo-1503341338985-0c2d36e66c1c?w=500",
			},
			Sizes:     models.StringList{"S", "M", "L", "XL"},
			CreatedAt: fixtureTime(1),
		},
		{
			ID:            uuid.MustParse("0191c001-0000-7000-8000-000000000002"),
			TitleEn:       "Running Shoes",
			TitleLt:       "Bėgimo batai",
			DescriptionEn: "High-performance running shoes designed for comfort and durability. Features advanced cushioning technology.",
			DescriptionLt: "Aukštos kokybės bėgimo batai, sukurti patogumui ir ilgaamžiškumui. Su pažangia amortizavimo technologija.",
			Price:         89.99,
			Stock:         30,
			CategoryID:    categoryShoes,
			ImageURL:      "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=500",
			Images: models.StringList{
				"https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=500",
				"https://images.unsplash.com/photo-1549298916-b41d501d3772?w=500",
			},
			Sizes:     models.StringList{"39", "40", "41", "42", "43", "44", "45"},
			CreatedAt: fixtureTime(2),
		},
		{
			ID:            uuid.MustParse("0191c001-0000-7000-8000-000000000003"),
			TitleEn:       "Leather Wallet",
			TitleLt:       "Odinė piniginė",
			DescriptionEn: "Premium leather wallet with multiple compartments for cards and cash. Handcrafted from genuine Italian leather.",
			DescriptionLt: "Aukščiausios kokybės odinė piniginė su keliais skyriais kortelėms ir gryniesiems. Rankų darbo iš tikros italų odos.",
			Price:         49.99,
			Stock:         25,
			CategoryID:    categoryAccessories,
			ImageURL:      "https://images.unsplash.com/photo-1627123424574-724758594e93?w=500",
			Images: models.StringList{
				"https://images.unsplash.com/photo-1627123424574-724758594e93?w=500",
			},
			Sizes:     models.StringList{},
			CreatedAt: fixtureTime(3),
		},
		{
			ID:            uuid.MustParse("0191c001-0000-7000-8000-000000000004"),
			TitleEn:       "Wireless Headphones",
			TitleLt:       "Belaidės ausinės",
			DescriptionEn: "High-quality wireless headphones with active noise cancellation and superior sound quality.",
			DescriptionLt: "Aukštos kokybės belaidės ausinės su aktyviu triukšmo slopinimu ir puikia garso kokybe.",
			Price:         199.99,
			Stock:         15,
			CategoryID:    categoryElectronics,
			ImageURL:      "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=500",
			Images: models.StringList{
				"https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=500",
				"https://images.unsplash.com/photo-1583394838336-acd977736f90?w=500",
			},
			Sizes:     models.StringList{},
			CreatedAt: fixtureTime(4),
		},
		{
			ID:            uuid.MustParse("0191c001-0000-7000-8000-000000000005"),
			TitleEn:       "Denim Jacket",
			TitleLt:       "Džinsinė striukė",
			DescriptionEn: "Vintage-style denim jacket made from premium denim. Perfect for layering in any season.",
			DescriptionLt: "Vintažinio stiliaus džinsinė striukė iš aukščiausios kokybės džinso audinio. Tobula sluoksniuotam rengimuisi bet kuriuo metų laiku.",
			Price:         79.99,
			Stock:         20,
			CategoryID:    categoryClothing,
			ImageURL:      "https://images.unsplash.com/photo-1551028719-00167b16eac5?w=500",
			Images: models.StringList{
				"https://images.unsplash.com/photo-1551028719-00167b16eac5?w=500",
			},
			Sizes:     models.StringList{"S", "M", "L", "XL", "XXL"},
			CreatedAt: fixtureTime(5),
		},
		{
			ID:            uuid.MustParse("0191c001-0000-7000-8000-000000000006"),
			TitleEn:       "Smart Watch",
			TitleLt:       "Išmanusis laikrodis",
			DescriptionEn: "Feature-rich smartwatch with fitness tracking, heart rate monitoring, and smartphone connectivity.",
			DescriptionLt: "Funkcijų pilnas išmanusis laikrodis su fizinio aktyvumo stebėjimu, širdies ritmo kontrole ir išmaniojo telefono ryšiu.",
			Price:         299.99,
			Stock:         12,
			CategoryID:    categoryElectronics,
			ImageURL:      "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=500",
			Images: models.StringList{
				"https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=500",
			},
			Sizes:     models.StringList{},
			CreatedAt: fixtureTime(6),
		},
		{
			ID:            uuid.MustParse("0191c001-0000-7000-8000-000000000007"),
			TitleEn:       "Canvas Sneakers",
			TitleLt:       "Drobės sportbačiai",
			DescriptionEn: "Classic canvas sneakers with rubber sole. Comfortable and stylish for casual wear.",
			DescriptionLt: "Klasikiniai drobės sportbačiai su guminiu padu. Patogūs ir stilingi kasdieniam nešiojimui.",
			Price:         45.99,
			Stock:         35,
			CategoryID:    categoryShoes,
			ImageURL:      "https://images.unsplash.com/photo-1515955656352-a1fa3ffcd111?w=500",
			Images: models.StringList{
				"https://images.unsplash.com/photo-1515955656352-a1fa3ffcd111?w=500",
			},
			Sizes:     models.StringList{"37", "38", "39", "40", "41", "42", "43"},
			CreatedAt: fixtureTime(7),
		},
		{
			ID:            uuid.MustParse("0191c001-0000-7000-8000-000000000008"),
			TitleEn:       "Sunglasses",
			TitleLt:       "Saulės akiniai",
			DescriptionEn: "Stylish sunglasses with UV protection and polarized lenses. Perfect for sunny days.",
			DescriptionLt: "Stilingi saulės akiniai su UV apsauga ir polarizuotais stiklais. Tobuli saulėtoms dienoms.",
			Price:         69.99,
			Stock:         28,
			CategoryID:    categoryAccessories,
			ImageURL:      "https://images.unsplash.com/photo-1572635196237-14b3f281503f?w=500",
			Images: models.StringList{
				"https://images.unsplash.com/photo-1572635196237-14b3f281503f?w=500",
			},
			Sizes:     models.StringList{},
			CreatedAt: fixtureTime(8),
		},
	}

	for i := range products {
		products[i].UpdatedAt = products[i].CreatedAt
		products[i].Category = categoryByID(products[i].CategoryID)
	}
	return products
}

// ProductByID looks a fixture product up by id.
func ProductByID(id uuid.UUID) (models.Product, bool) {
	for _, p := range Products() {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// CategoryBySlug looks a fixture category up by slug.
func CategoryBySlug(slug string) (models.Category, bool) {
	for _, c := range Categories() {
		if c.Slug == slug {
			return c, true
		}
	}
	return models.Category{}, false
}

// BlogPostBySlug looks a fixture post up by slug.
func BlogPostBySlug(slug string) (models.BlogPost, bool) {
	for _, b := range BlogPosts() {
		if b.Slug == slug {
			return b, true
		}
	}
	return models.BlogPost{}, false
}

func strptr(s string) *string { return &s }

func BlogPosts() []models.BlogPost {
	published := fixtureTime(9)
	posts := []models.BlogPost{
		{
			ID:            uuid.MustParse("0191c002-0000-7000-8000-000000000001"),
			TitleEn:       "Summer Fashion Trends 2024",
			TitleLt:       "2024 metų vasaros mados tendencijos",
			ContentEn:     "Discover the hottest fashion trends for summer 2024. From vibrant colors to sustainable fabrics, this season brings exciting new styles to refresh your wardrobe.",
			ContentLt:     "Atraskite karščiausias 2024 metų vasaros mados tendencijas. Nuo ryškių spalvų iki tvarių audinių - šis sezonas atsineša jaudinančius naujus stilius jūsų spintai atnaujinti.",
			ExcerptEn:     strptr("Discover the hottest fashion trends for summer 2024..."),
			ExcerptLt:     strptr("Atraskite karščiausias 2024 metų vasaros mados tendencijas..."),
			FeaturedImage: strptr("https://images.unsplash.com/photo-1441984904996-e0b6ba687e04?w=800"),
			Slug:          "summer-fashion-trends-2024",
			IsPublished:   true,
		},
		{
			ID:            uuid.MustParse("0191c002-0000-7000-8000-000000000002"),
			TitleEn:       "Sustainable Fashion: A Guide to Eco-Friendly Shopping",
			TitleLt:       "Tvari mada: ekologiškų pirkimų vadovas",
			ContentEn:     "Learn how to make more sustainable fashion choices. This comprehensive guide covers everything from fabric selection to ethical brands.",
			ContentLt:     "Sužinokite, kaip daryti tvaresnius mados pasirinkimus. Šis išsamus vadovas aprėpia viską nuo audinių pasirinkimo iki etiškai veikiančių prekės ženklų.",
			ExcerptEn:     strptr("Learn how to make more sustainable fashion choices..."),
			ExcerptLt:     strptr("Sužinokite, kaip daryti tvaresnius mados pasirinkimus..."),
			FeaturedImage: strptr("https://images.unsplash.com/photo-1558618047-3c8c76ca7d13?w=800"),
			Slug:          "sustainable-fashion-guide",
			IsPublished:   true,
		},
		{
			ID:            uuid.MustParse("0191c002-0000-7000-8000-000000000003"),
			TitleEn:       "The Best Running Gear for 2024",
			TitleLt:       "Geriausia bėgimo įranga 2024 metams",
			ContentEn:     "Gear up for your running goals with the latest and greatest running equipment. From shoes to accessories, we've got you covered.",
			ContentLt:     "Pasiruoškite savo bėgimo tikslams su naujausia ir geriausia bėgimo įranga. Nuo batų iki aksesuarų - mes viską paruošėme.",
			ExcerptEn:     strptr("Gear up for your running goals with the latest equipment..."),
			ExcerptLt:     strptr("Pasiruoškite savo bėgimo tikslams su naujausia įranga..."),
			FeaturedImage: strptr("https://images.unsplash.com/photo-1544735716-392fe2489ffa?w=800"),
			Slug:          "best-running-gear-2024",
			IsPublished:   true,
		},
	}

	for i := range posts {
		posts[i].PublishedAt = &published
		posts[i].CreatedAt = published
		posts[i].UpdatedAt = published
	}
	return posts
}

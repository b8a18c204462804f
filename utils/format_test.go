package utils

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "€29.99", FormatPrice(29.99, "EUR"))
	assert.Equal(t, "€29.99", FormatPrice(29.99, ""))
	assert.Equal(t, "$5.00", FormatPrice(5, "USD"))
	assert.Equal(t, "10.50 SEK", FormatPrice(10.5, "SEK"))
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, time.March, 7, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "March 7, 2025", FormatDate(d, "en"))
	assert.Equal(t, "2025 m. kovo 7 d.", FormatDate(d, "lt"))
}

func TestSlugify(t *testing.T) {
	// punctuation (hyphens included) is stripped before hyphenation
	assert.Equal(t, "classic-tshirt", Slugify("Classic T-Shirt"))
	assert.Equal(t, "hello-world", Slugify("Hello,  World!"))
	assert.Equal(t, "shoes", Slugify("Shoes"))
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "short", TruncateText("short", 10))
	assert.Equal(t, "long te...", TruncateText("long text here", 7))
	// rune-safe for Lithuanian diacritics
	assert.Equal(t, "Užsak...", TruncateText("Užsakymai", 5))
}

func TestGenerateOrderNumber(t *testing.T) {
	re := regexp.MustCompile(`^ORD-[0-9A-Z]+-[0-9A-Z]{5}$`)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		num := GenerateOrderNumber()
		assert.Regexp(t, re, num)
		seen[num] = true
	}
	// best-effort uniqueness: random suffix should keep repeats rare
	assert.Greater(t, len(seen), 45)
}

func TestGetImageURL(t *testing.T) {
	assert.Equal(t, "/placeholder-image.jpg", GetImageURL("", 100, 100))
	assert.Equal(t, "https://example.com/a.jpg", GetImageURL("https://example.com/a.jpg", 100, 100))

	sized := GetImageURL("https://images.unsplash.com/photo-123", 500, 300)
	assert.Contains(t, sized, "w=500")
	assert.Contains(t, sized, "h=300")
	assert.Contains(t, sized, "fit=crop")

	// fixture URLs already carry a query string; sizing must extend it,
	// not start a second one
	resized := GetImageURL("https://images.unsplash.com/photo-123?w=800", 500, 300)
	assert.NotContains(t, resized, "??")
	assert.Contains(t, resized, "photo-123?w=800&")
	assert.Contains(t, resized, "h=300")
}

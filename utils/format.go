package utils

import (
	"fmt"
	"math/rand"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var currencySymbols = map[string]string{
	"EUR": "€",
	"USD": "$",
	"GBP": "£",
}

// FormatPrice renders a money amount for display, e.g. "€29.99".
func FormatPrice(price float64, currency string) string {
	if currency == "" {
		currency = "EUR"
	}
	symbol, ok := currencySymbols[currency]
	if !ok {
		return fmt.Sprintf("%.2f %s", price, currency)
	}
	return fmt.Sprintf("%s%.2f", symbol, price)
}

var ltMonths = [...]string{
	"sausio", "vasario", "kovo", "balandžio", "gegužės", "birželio",
	"liepos", "rugpjūčio", "rugsėjo", "spalio", "lapkričio", "gruodžio",
}

// FormatDate renders a date per locale: "January 2, 2006" for English,
// "2006 m. sausio 2 d." for Lithuanian.
func FormatDate(t time.Time, lang string) string {
	if lang == "lt" {
		return fmt.Sprintf("%d m. %s %d d.", t.Year(), ltMonths[t.Month()-1], t.Day())
	}
	return t.Format("January 2, 2006")
}

var (
	nonWordRe = regexp.MustCompile(`[^\w ]+`)
	spacesRe  = regexp.MustCompile(` +`)
)

// Slugify lowercases, strips non-word characters and hyphenates spaces.
func Slugify(text string) string {
	s := strings.ToLower(text)
	s = nonWordRe.ReplaceAllString(s, "")
	s = spacesRe.ReplaceAllString(s, "-")
	return s
}

// TruncateText shortens text to maxLength runes with an ellipsis.
func TruncateText(text string, maxLength int) string {
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	return string(runes[:maxLength]) + "..."
}

const orderNumberAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateOrderNumber builds a human-shareable order token like
// "ORD-M1X2Y3Z4-A1B2C". Collision resistance is best effort; the orders
// table's unique index on order_number is the real guarantee.
func GenerateOrderNumber() string {
	timestamp := strconv.FormatInt(time.Now().UnixMilli(), 36)

	suffix := make([]byte, 5)
	for i := range suffix {
		suffix[i] = orderNumberAlphabet[rand.Intn(len(orderNumberAlphabet))]
	}

	return strings.ToUpper(fmt.Sprintf("ORD-%s-%s", timestamp, suffix))
}

// GetImageURL returns a sized delivery URL. Unsplash-hosted images get
// crop parameters appended; anything else passes through unchanged.
func GetImageURL(rawURL string, width, height int) string {
	if rawURL == "" {
		return "/placeholder-image.jpg"
	}

	if !strings.Contains(rawURL, "unsplash.com") {
		return rawURL
	}

	params := url.Values{}
	if width > 0 {
		params.Set("w", strconv.Itoa(width))
	}
	if height > 0 {
		params.Set("h", strconv.Itoa(height))
	}
	params.Set("fit", "crop")
	params.Set("crop", "faces")

	sep := "?"
	if strings.Contains(rawURL, "?") {
		sep = "&"
	}
	return rawURL + sep + params.Encode()
}

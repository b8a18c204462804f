package config

import (
	"log"
	"os"
)

// Placeholder values shipped in .env.example. Seeing them means the
// backend was never configured, so the app runs on fixture data.
const (
	placeholderSupabaseURL = "your_supabase_url"
	placeholderSupabaseKey = "your_supabase_anon_key"
)

// MockMode is true when the Supabase backend is not configured. Reads are
// served from fixtures and writes resolve as demo-mode successes.
var MockMode bool

// DetectMockMode inspects SUPABASE_URL / SUPABASE_ANON_KEY and flips the
// application into fixture mode when either is absent or a placeholder.
func DetectMockMode() {
	url := os.Getenv("SUPABASE_URL")
	key := os.Getenv("SUPABASE_ANON_KEY")

	if url == "" || key == "" || url == placeholderSupabaseURL || key == placeholderSupabaseKey {
		MockMode = true
		log.Println("⚠️  Supabase not configured, running in mock data mode")
		return
	}

	MockMode = false
	log.Println("✅ Supabase backend configured")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetFrontendURL returns the storefront origin for OAuth redirects.
func GetFrontendURL() string {
	return getEnv("STOREFRONT_URL", "http://localhost:3000")
}

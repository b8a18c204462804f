package config

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var (
	// RedisClient is nil when REDIS_URL is unset; callers must degrade.
	RedisClient *redis.Client
	Ctx         = context.Background()
)

// ConnectRedis connects when REDIS_URL is set. Rate limiting and language
// preference persistence work without it, so absence is not fatal.
func ConnectRedis() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		log.Println("⚠️  REDIS_URL not set, rate limiting and language persistence run in-memory")
		return
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("❌ invalid REDIS_URL, continuing without Redis: %v", err)
		return
	}

	client := redis.NewClient(opt)
	if _, err := client.Ping(Ctx).Result(); err != nil {
		log.Printf("❌ failed to connect to Redis, continuing without it: %v", err)
		return
	}

	RedisClient = client
	log.Println("✅ Connected to Redis")
}

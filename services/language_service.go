package services

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Norvila-Ecommerce/norvila-store-backend/config"
	"github.com/Norvila-Ecommerce/norvila-store-backend/i18n"
	"github.com/Norvila-Ecommerce/norvila-store-backend/models"
)

const languageKeyTTL = 30 * 24 * time.Hour

// LanguageService persists the display-language choice under a single key
// per visitor, mirroring the storefront's local-storage behavior. Redis is
// the backing store; without it an in-process map carries the session.
type LanguageService struct {
	db *gorm.DB

	mu    sync.RWMutex
	local map[string]i18n.Language
}

func NewLanguageService(db *gorm.DB) *LanguageService {
	return &LanguageService{
		db:    db,
		local: make(map[string]i18n.Language),
	}
}

func languageKey(visitorID string) string {
	return fmt.Sprintf("lang:%s", visitorID)
}

// Get returns the stored language for a visitor, defaulting to English.
func (s *LanguageService) Get(visitorID string) i18n.Language {
	if config.RedisClient != nil {
		value, err := config.RedisClient.Get(config.Ctx, languageKey(visitorID)).Result()
		if err == nil {
			return i18n.ParseLanguage(value)
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if lang, ok := s.local[visitorID]; ok {
		return lang
	}
	return i18n.DefaultLanguage
}

// Set stores an explicit language switch. For signed-in users the choice is
// also written to their profile so it follows them across devices.
func (s *LanguageService) Set(visitorID string, lang i18n.Language, userID *uuid.UUID) {
	if config.RedisClient != nil {
		err := config.RedisClient.Set(config.Ctx, languageKey(visitorID), string(lang), languageKeyTTL).Err()
		if err != nil {
			log.Printf("⚠️  failed to persist language in Redis, using in-memory: %v", err)
		}
	}

	s.mu.Lock()
	s.local[visitorID] = lang
	s.mu.Unlock()

	if userID != nil && s.db != nil && !config.MockMode {
		ctx, cancel := config.WithTimeout()
		defer cancel()

		err := s.db.WithContext(ctx).
			Model(&models.User{}).
			Where("id = ?", *userID).
			Update("language_preference", string(lang)).Error
		if err != nil {
			log.Printf("⚠️  failed to store language preference for user %s: %v", userID, err)
		}
	}
}

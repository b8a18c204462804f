package services

import (
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Norvila-Ecommerce/norvila-store-backend/config"
	"github.com/Norvila-Ecommerce/norvila-store-backend/models"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// AuthService wraps sign-up and sign-in against the auth backend and maps
// identities into the local user shape. Without a database it keeps accounts
// in process memory so the demo flow still works end to end.
type AuthService struct {
	db *gorm.DB

	mu        sync.RWMutex
	demoUsers map[string]*models.User // keyed by lowercased email
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{
		db:        db,
		demoUsers: make(map[string]*models.User),
	}
}

func (s *AuthService) useMemory() bool {
	return config.MockMode || s.db == nil
}

// Register creates a password account with the default "user" role.
func (s *AuthService) Register(req models.RegisterRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	language := req.Language
	if language == "" {
		language = "en"
	}

	user := &models.User{
		ID:                 uuid.Must(uuid.NewV7()),
		Email:              email,
		Name:               strings.TrimSpace(req.Name),
		PasswordHash:       string(hash),
		Provider:           "password",
		Role:               models.RoleUser,
		LanguagePreference: language,
	}

	if s.useMemory() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if _, exists := s.demoUsers[email]; exists {
			return nil, ErrEmailTaken
		}
		s.demoUsers[email] = user
		log.Printf("⚠️  demo mode: registered in-memory account %s", email)
		return user, nil
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies a password credential.
func (s *AuthService) Login(req models.LoginRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user *models.User
	if s.useMemory() {
		s.mu.RLock()
		user = s.demoUsers[email]
		s.mu.RUnlock()
		if user == nil {
			return nil, ErrInvalidCredentials
		}
	} else {
		ctx, cancel := config.WithTimeout()
		defer cancel()

		var stored models.User
		err := s.db.WithContext(ctx).Where("email = ?", email).First(&stored).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		if err != nil {
			return nil, err
		}
		user = &stored
	}

	if user.PasswordHash == "" {
		// Google-only account; no password to check against.
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// EnsureGoogleUser maps a Google identity into the local user record,
// creating it on first sign-in and linking the Google id to an existing
// password account with the same email.
func (s *AuthService) EnsureGoogleUser(info *models.GoogleUserInfo) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(info.Email))

	if s.useMemory() {
		s.mu.Lock()
		defer s.mu.Unlock()

		if user, exists := s.demoUsers[email]; exists {
			if user.GoogleID == nil {
				user.GoogleID = &info.Sub
			}
			return user, nil
		}
		user := googleUserFromInfo(info, email)
		s.demoUsers[email] = user
		return user, nil
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var user models.User
	err := s.db.WithContext(ctx).Where("google_id = ?", info.Sub).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// Link by email before creating a fresh account.
	err = s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err == nil {
		user.GoogleID = &info.Sub
		if user.Avatar == nil && info.Picture != "" {
			user.Avatar = &info.Picture
		}
		if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
			return nil, err
		}
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := googleUserFromInfo(info, email)
	if err := s.db.WithContext(ctx).Create(created).Error; err != nil {
		return nil, err
	}
	return created, nil
}

func googleUserFromInfo(info *models.GoogleUserInfo, email string) *models.User {
	user := &models.User{
		ID:                 uuid.Must(uuid.NewV7()),
		Email:              email,
		Name:               info.Name,
		GoogleID:           &info.Sub,
		Provider:           "google",
		Role:               models.RoleUser,
		LanguagePreference: "en",
	}
	if strings.HasPrefix(strings.ToLower(info.Locale), "lt") {
		user.LanguagePreference = "lt"
	}
	if info.Picture != "" {
		user.Avatar = &info.Picture
	}
	return user
}

// GetUser loads a user by id.
func (s *AuthService) GetUser(id uuid.UUID) (*models.User, error) {
	if s.useMemory() {
		s.mu.RLock()
		defer s.mu.RUnlock()
		for _, user := range s.demoUsers {
			if user.ID == id {
				return user, nil
			}
		}
		return nil, ErrNotFound
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var user models.User
	err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers returns all accounts, newest first (admin view).
func (s *AuthService) ListUsers() ([]models.User, error) {
	if s.useMemory() {
		s.mu.RLock()
		defer s.mu.RUnlock()
		users := make([]models.User, 0, len(s.demoUsers))
		for _, user := range s.demoUsers {
			users = append(users, *user)
		}
		return users, nil
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var users []models.User
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateRole promotes or demotes an account (admin only).
func (s *AuthService) UpdateRole(id uuid.UUID, role string) (*models.User, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}
	user.Role = role

	if s.useMemory() {
		return user, nil
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update("role", role).Error; err != nil {
		return nil, err
	}
	return user, nil
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is the local account shape. Identities from the auth backend
// (password or Google) are mapped into this record with role "user"
// unless a stored profile says otherwise.
type User struct {
	ID                 uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Email              string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Name               string    `json:"name" gorm:"type:varchar(255);not null"`
	PasswordHash       string    `json:"-" gorm:"column:password_hash;type:text"`
	GoogleID           *string   `json:"googleId,omitempty" gorm:"column:google_id;type:varchar(255);uniqueIndex:idx_users_google_id,where:google_id IS NOT NULL"`
	Provider           string    `json:"provider" gorm:"type:varchar(50);default:'password'"`
	Role               string    `json:"role" gorm:"type:varchar(50);default:'user';index"`
	LanguagePreference string    `json:"language_preference" gorm:"type:varchar(2);default:'en'"`
	Avatar             *string   `json:"avatar,omitempty" gorm:"type:text"`
	CreatedAt          time.Time `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt          time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserResponse is the public-facing user shape.
type UserResponse struct {
	ID                 uuid.UUID `json:"id"`
	Email              string    `json:"email"`
	Name               string    `json:"name"`
	Role               string    `json:"role"`
	LanguagePreference string    `json:"language_preference"`
	Provider           string    `json:"provider"`
	Avatar             *string   `json:"avatar,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:                 u.ID,
		Email:              u.Email,
		Name:               u.Name,
		Role:               u.Role,
		LanguagePreference: u.LanguagePreference,
		Provider:           u.Provider,
		Avatar:             u.Avatar,
		CreatedAt:          u.CreatedAt,
	}
}

// GoogleUserInfo is the claim set returned by Google OAuth.
type GoogleUserInfo struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
	Locale        string `json:"locale"`
}

// AuthResponse is returned after successful authentication.
type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Language string `json:"language" binding:"omitempty,oneof=en lt"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=user admin"`
}

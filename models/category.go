package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is a bilingual product category addressed by slug on the storefront.
type Category struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	NameEn    string    `json:"name_en" gorm:"not null"`
	NameLt    string    `json:"name_lt" gorm:"not null"`
	Slug      string    `json:"slug" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Category) TableName() string {
	return "categories"
}

// Name returns the display-language name.
func (c *Category) Name(lang string) string {
	if lang == "lt" {
		return c.NameLt
	}
	return c.NameEn
}

type CategoryRequest struct {
	NameEn string `json:"name_en" binding:"required" example:"Clothing"`
	NameLt string `json:"name_lt" binding:"required" example:"Drabužiai"`
	Slug   string `json:"slug" example:"clothing"`
}

type UpdateCategoryRequest struct {
	NameEn *string `json:"name_en,omitempty"`
	NameLt *string `json:"name_lt,omitempty"`
	Slug   *string `json:"slug,omitempty"`
}

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StringList is a JSONB-backed string slice (product images, size labels).
type StringList []string

func (s *StringList) Scan(value interface{}) error {
	if value == nil {
		*s = make(StringList, 0)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan StringList")
	}
	return json.Unmarshal(bytes, s)
}

func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(s)
}

// Product is a bilingual catalog entity. Created and updated through the
// admin API (or fixtures in mock mode); the storefront treats it as read-only.
type Product struct {
	ID            uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	TitleEn       string     `json:"title_en" gorm:"not null;index"`
	TitleLt       string     `json:"title_lt" gorm:"not null"`
	DescriptionEn string     `json:"description_en" gorm:"not null"`
	DescriptionLt string     `json:"description_lt" gorm:"not null"`
	Price         float64    `json:"price" gorm:"type:numeric(12,2);not null;check:price >= 0"`
	Stock         int        `json:"stock" gorm:"not null;default:0;check:stock >= 0"`
	CategoryID    uuid.UUID  `json:"category_id" gorm:"type:uuid;not null;index:idx_products_category"`
	Category      *Category  `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID"`
	ImageURL      string     `json:"image_url" gorm:"type:text"`
	Images        StringList `json:"images" gorm:"type:jsonb;not null;default:'[]'"`
	Sizes         StringList `json:"sizes,omitempty" gorm:"type:jsonb;not null;default:'[]'"`
	CreatedAt     time.Time  `json:"created_at" gorm:"autoCreateTime;index:idx_products_created,sort:desc"`
	UpdatedAt     time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (Product) TableName() string {
	return "products"
}

// Title returns the display-language title.
func (p *Product) Title(lang string) string {
	if lang == "lt" {
		return p.TitleLt
	}
	return p.TitleEn
}

// Description returns the display-language description.
func (p *Product) Description(lang string) string {
	if lang == "lt" {
		return p.DescriptionLt
	}
	return p.DescriptionEn
}

// InStock reports whether at least one unit is available.
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// ProductRequest is the admin payload for creating a product.
type ProductRequest struct {
	TitleEn       string    `json:"title_en" binding:"required" example:"Classic T-Shirt"`
	TitleLt       string    `json:"title_lt" binding:"required" example:"Klasikiniai marškinėliai"`
	DescriptionEn string    `json:"description_en" binding:"required"`
	DescriptionLt string    `json:"description_lt" binding:"required"`
	Price         float64   `json:"price" binding:"required,min=0" example:"29.99"`
	Stock         int       `json:"stock" binding:"min=0" example:"50"`
	CategoryID    uuid.UUID `json:"category_id" binding:"required"`
	ImageURL      string    `json:"image_url"`
	Images        []string  `json:"images"`
	Sizes         []string  `json:"sizes"`
}

// UpdateProductRequest uses pointers so omitted fields stay untouched.
type UpdateProductRequest struct {
	TitleEn       *string    `json:"title_en"`
	TitleLt       *string    `json:"title_lt"`
	DescriptionEn *string    `json:"description_en"`
	DescriptionLt *string    `json:"description_lt"`
	Price         *float64   `json:"price" binding:"omitempty,min=0"`
	Stock         *int       `json:"stock" binding:"omitempty,min=0"`
	CategoryID    *uuid.UUID `json:"category_id"`
	ImageURL      *string    `json:"image_url"`
	Images        *[]string  `json:"images"`
	Sizes         *[]string  `json:"sizes"`
}

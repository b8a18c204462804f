package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BlogPost is a bilingual article addressed by slug.
type BlogPost struct {
	ID            uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	TitleEn       string     `json:"title_en" gorm:"not null"`
	TitleLt       string     `json:"title_lt" gorm:"not null"`
	ContentEn     string     `json:"content_en" gorm:"type:text;not null"`
	ContentLt     string     `json:"content_lt" gorm:"type:text;not null"`
	ExcerptEn     *string    `json:"excerpt_en,omitempty" gorm:"type:text"`
	ExcerptLt     *string    `json:"excerpt_lt,omitempty" gorm:"type:text"`
	FeaturedImage *string    `json:"featured_image,omitempty" gorm:"type:text"`
	Slug          string     `json:"slug" gorm:"uniqueIndex;not null"`
	AuthorID      *uuid.UUID `json:"author_id,omitempty" gorm:"type:uuid"`
	IsPublished   bool       `json:"is_published" gorm:"default:false;index"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt     time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

func (b *BlogPost) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (BlogPost) TableName() string {
	return "blog_posts"
}

// Title returns the display-language title.
func (b *BlogPost) Title(lang string) string {
	if lang == "lt" {
		return b.TitleLt
	}
	return b.TitleEn
}

type BlogPostRequest struct {
	TitleEn       string  `json:"title_en" binding:"required"`
	TitleLt       string  `json:"title_lt" binding:"required"`
	ContentEn     string  `json:"content_en" binding:"required"`
	ContentLt     string  `json:"content_lt" binding:"required"`
	ExcerptEn     *string `json:"excerpt_en,omitempty"`
	ExcerptLt     *string `json:"excerpt_lt,omitempty"`
	FeaturedImage *string `json:"featured_image,omitempty"`
	Slug          string  `json:"slug"`
	IsPublished   bool    `json:"is_published"`
}

type UpdateBlogPostRequest struct {
	TitleEn       *string `json:"title_en,omitempty"`
	TitleLt       *string `json:"title_lt,omitempty"`
	ContentEn     *string `json:"content_en,omitempty"`
	ContentLt     *string `json:"content_lt,omitempty"`
	ExcerptEn     *string `json:"excerpt_en,omitempty"`
	ExcerptLt     *string `json:"excerpt_lt,omitempty"`
	FeaturedImage *string `json:"featured_image,omitempty"`
	Slug          *string `json:"slug,omitempty"`
	IsPublished   *bool   `json:"is_published,omitempty"`
}

// Package models contains data structures for the application's domain models.
package models

import "time"

// ContentType distinguishes movies from TV shows.
type ContentType string

const (
	// ContentTypeMovie is a single feature-length entry.
	ContentTypeMovie ContentType = "movie"
	// ContentTypeTVShow is an episodic entry; Episodes is required for it.
	ContentTypeTVShow ContentType = "tv_show"
)

// ContentStatus defines the publication state of a catalog entry.
type ContentStatus string

const (
	// ContentStatusDraft keeps an entry out of the published listing.
	ContentStatusDraft ContentStatus = "draft"
	// ContentStatusPublished makes an entry visible in the published listing.
	ContentStatusPublished ContentStatus = "published"
)

// Content represents a movie or TV-show catalog entry.
//
// Views is server-managed: it defaults to zero on creation and is bumped by
// recorded view events, never by client writes.
type Content struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	Title        string        `gorm:"not null" json:"title"`
	Type         ContentType   `gorm:"type:varchar(20);not null;index" json:"type"`
	Genres       []string      `gorm:"serializer:json;not null" json:"genres"`
	Duration     *int          `json:"duration,omitempty"`
	Rating       string        `gorm:"size:20" json:"rating,omitempty"`
	Status       ContentStatus `gorm:"type:varchar(20);not null;default:'draft';index" json:"status"`
	Views        int64         `gorm:"not null;default:0" json:"views"`
	Description  string        `gorm:"type:text" json:"description,omitempty"`
	ThumbnailURL string        `json:"thumbnailUrl,omitempty"`
	VideoURL     string        `json:"videoUrl,omitempty"`
	TrailerURL   string        `json:"trailerUrl,omitempty"`
	ReleaseYear  *int          `json:"releaseYear,omitempty"`
	Director     string        `json:"director,omitempty"`
	Writer       string        `json:"writer,omitempty"`
	Cast         []string      `gorm:"serializer:json" json:"cast,omitempty"`
	Tags         []string      `gorm:"serializer:json" json:"tags,omitempty"`
	Episodes     *int          `json:"episodes,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// TableName specifies the table name for GORM.
func (Content) TableName() string {
	return "content"
}

package models

import "time"

// UpcomingContent represents an announced, not-yet-released catalog entry
// shown in the "coming soon" listing. Listings order by DisplayOrder
// ascending, not by creation time.
type UpcomingContent struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	Title        string      `gorm:"not null" json:"title"`
	Type         ContentType `gorm:"type:varchar(20);not null" json:"type"`
	Genres       []string    `gorm:"serializer:json;not null" json:"genres"`
	Episodes     *int        `json:"episodes,omitempty"`
	ReleaseDate  time.Time   `gorm:"not null" json:"releaseDate"`
	Description  string      `gorm:"type:text;not null" json:"description"`
	ThumbnailURL string      `json:"thumbnailUrl,omitempty"`
	TrailerURL   string      `json:"trailerUrl,omitempty"`
	DisplayOrder int         `gorm:"not null;default:0;index" json:"displayOrder"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// TableName specifies the table name for GORM.
func (UpcomingContent) TableName() string {
	return "upcoming_content"
}

package models

import "time"

// AnalyticsEventType enumerates the recorded user actions.
type AnalyticsEventType string

const (
	EventTypeView      AnalyticsEventType = "view"
	EventTypePlay      AnalyticsEventType = "play"
	EventTypeLike      AnalyticsEventType = "like"
	EventTypeAddToList AnalyticsEventType = "add_to_list"
)

// AnalyticsEvent is an immutable record of a user action against a content
// item. Events are only ever inserted; there is no update or delete path.
type AnalyticsEvent struct {
	ID        uint               `gorm:"primaryKey" json:"id"`
	ContentID *uint              `gorm:"index" json:"contentId,omitempty"`
	Content   *Content           `gorm:"foreignKey:ContentID" json:"content,omitempty"`
	EventType AnalyticsEventType `gorm:"type:varchar(20);not null;index" json:"eventType"`
	UserID    *uint              `gorm:"index" json:"userId,omitempty"`
	SessionID string             `gorm:"size:36" json:"sessionId,omitempty"`
	Metadata  map[string]any     `gorm:"serializer:json" json:"metadata,omitempty"`
	Timestamp time.Time          `gorm:"not null;index" json:"timestamp"`
}

// TableName specifies the table name for GORM.
func (AnalyticsEvent) TableName() string {
	return "analytics"
}

// AnalyticsSummary is the aggregate returned by the analytics dashboard read.
type AnalyticsSummary struct {
	TotalViews     int64             `json:"totalViews"`
	TotalContent   int64             `json:"totalContent"`
	PopularContent []*Content        `json:"popularContent"`
	RecentViews    []*AnalyticsEvent `json:"recentViews"`
}

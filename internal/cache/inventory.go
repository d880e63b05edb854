package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	contentKeyPrefix = "content:%d"
)

// Keys for the list-shaped reads.
const (
	ContentListKey      = "content:list"
	ContentPublishedKey = "content:published"
	UpcomingListKey     = "upcoming:list"
)

// ReadTTL is how long cached read results stay valid before a re-fetch.
const ReadTTL = 5 * time.Minute

// ContentKey returns the cache key for one content record.
func ContentKey(id uint) string {
	return fmt.Sprintf(contentKeyPrefix, id)
}

// Invalidate removes a single key. No-op without a Redis client.
func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

// InvalidateContent drops the detail key and both content listings after a
// content write.
func InvalidateContent(ctx context.Context, id uint) {
	Invalidate(ctx, ContentKey(id))
	Invalidate(ctx, ContentListKey)
	Invalidate(ctx, ContentPublishedKey)
}

// InvalidateContentLists drops the content listings only (used on create,
// before a detail key exists).
func InvalidateContentLists(ctx context.Context) {
	Invalidate(ctx, ContentListKey)
	Invalidate(ctx, ContentPublishedKey)
}

// InvalidateUpcoming drops the upcoming listing after an upcoming-content write.
func InvalidateUpcoming(ctx context.Context) {
	Invalidate(ctx, UpcomingListKey)
}

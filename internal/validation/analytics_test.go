package validation

import (
	"testing"

	"reelvault/internal/models"

	"github.com/stretchr/testify/assert"
)

func uintPtr(v uint) *uint { return &v }

func TestAnalyticsInsert_Validate(t *testing.T) {
	tests := []struct {
		name       string
		in         AnalyticsInsert
		wantFields []string
	}{
		{
			name: "view event",
			in:   AnalyticsInsert{EventType: "view", ContentID: uintPtr(3)},
		},
		{
			name: "event without content id",
			in:   AnalyticsInsert{EventType: "play"},
		},
		{
			name:       "missing event type",
			in:         AnalyticsInsert{},
			wantFields: []string{"eventType"},
		},
		{
			name:       "unknown event type",
			in:         AnalyticsInsert{EventType: "hover"},
			wantFields: []string{"eventType"},
		},
		{
			name:       "zero content id",
			in:         AnalyticsInsert{EventType: "like", ContentID: uintPtr(0)},
			wantFields: []string{"contentId"},
		},
		{
			name:       "zero user id",
			in:         AnalyticsInsert{EventType: "add_to_list", UserID: uintPtr(0)},
			wantFields: []string{"userId"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := tt.in.Validate()
			if len(tt.wantFields) == 0 {
				assert.Empty(t, fields)
				return
			}
			assert.ElementsMatch(t, tt.wantFields, fieldNames(fields))
		})
	}
}

func TestAnalyticsInsert_Model(t *testing.T) {
	in := AnalyticsInsert{
		ContentID: uintPtr(9),
		EventType: "view",
		SessionID: "abc",
		Metadata:  map[string]any{"source": "home"},
	}

	event := in.Model()
	assert.Equal(t, models.EventTypeView, event.EventType)
	assert.Equal(t, uint(9), *event.ContentID)
	assert.Equal(t, "abc", event.SessionID)
	assert.True(t, event.Timestamp.IsZero(), "timestamp assignment belongs to the service")
}

package validation

import "reelvault/internal/models"

// AnalyticsInsert is the payload accepted when recording an engagement event.
// The timestamp is server-assigned and has no place here.
type AnalyticsInsert struct {
	ContentID *uint          `json:"contentId"`
	EventType string         `json:"eventType"`
	UserID    *uint          `json:"userId"`
	SessionID string         `json:"sessionId"`
	Metadata  map[string]any `json:"metadata"`
}

// Validate checks the insert payload and returns one FieldError per problem.
func (in *AnalyticsInsert) Validate() []models.FieldError {
	var fields []models.FieldError

	switch models.AnalyticsEventType(in.EventType) {
	case models.EventTypeView, models.EventTypePlay, models.EventTypeLike, models.EventTypeAddToList:
	case "":
		fields = append(fields, models.FieldError{Field: "eventType", Message: "eventType is required"})
	default:
		fields = append(fields, models.FieldError{Field: "eventType", Message: "eventType must be one of 'view', 'play', 'like', 'add_to_list'"})
	}

	if in.ContentID != nil && *in.ContentID == 0 {
		fields = append(fields, models.FieldError{Field: "contentId", Message: "contentId must be positive"})
	}
	if in.UserID != nil && *in.UserID == 0 {
		fields = append(fields, models.FieldError{Field: "userId", Message: "userId must be positive"})
	}

	return fields
}

// Model builds the event to persist. SessionID and Timestamp defaults are
// filled in by the service layer.
func (in *AnalyticsInsert) Model() *models.AnalyticsEvent {
	return &models.AnalyticsEvent{
		ContentID: in.ContentID,
		EventType: models.AnalyticsEventType(in.EventType),
		UserID:    in.UserID,
		SessionID: in.SessionID,
		Metadata:  in.Metadata,
	}
}

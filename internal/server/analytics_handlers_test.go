package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"reelvault/internal/models"
	"reelvault/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAnalyticsRepository is a mock of the AnalyticsRepository interface
type MockAnalyticsRepository struct {
	mock.Mock
}

func (m *MockAnalyticsRepository) Create(ctx context.Context, event *models.AnalyticsEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockAnalyticsRepository) Aggregate(ctx context.Context) (*models.AnalyticsSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AnalyticsSummary), args.Error(1)
}

func newAnalyticsTestApp(repo *MockAnalyticsRepository, contentRepo *MockContentRepository) *fiber.App {
	app := fiber.New()
	s := &Server{analyticsSvc: service.NewAnalyticsService(repo, contentRepo)}

	app.Post("/analytics", s.RecordAnalyticsEvent)
	app.Get("/analytics", s.GetAnalytics)
	return app
}

func TestRecordAnalyticsEvent(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]any
		mockSetup      func(repo *MockAnalyticsRepository, contentRepo *MockContentRepository)
		expectedStatus int
	}{
		{
			name: "View Event",
			body: map[string]any{"eventType": "view", "contentId": 5},
			mockSetup: func(repo *MockAnalyticsRepository, contentRepo *MockContentRepository) {
				repo.On("Create", mock.Anything, mock.Anything).Return(nil)
				contentRepo.On("IncrementViews", mock.Anything, uint(5)).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Like Event Without Content",
			body: map[string]any{"eventType": "like"},
			mockSetup: func(repo *MockAnalyticsRepository, contentRepo *MockContentRepository) {
				repo.On("Create", mock.Anything, mock.Anything).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Unknown Event Type",
			body:           map[string]any{"eventType": "hover"},
			mockSetup:      func(repo *MockAnalyticsRepository, contentRepo *MockContentRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Missing Event Type",
			body:           map[string]any{},
			mockSetup:      func(repo *MockAnalyticsRepository, contentRepo *MockContentRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockAnalyticsRepository)
			contentRepo := new(MockContentRepository)
			app := newAnalyticsTestApp(repo, contentRepo)
			tt.mockSetup(repo, contentRepo)

			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/analytics", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			defer func() { _ = resp.Body.Close() }()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
		})
	}
}

func TestRecordAnalyticsEvent_ViewBumpsCounter(t *testing.T) {
	repo := new(MockAnalyticsRepository)
	contentRepo := new(MockContentRepository)
	app := newAnalyticsTestApp(repo, contentRepo)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	contentRepo.On("IncrementViews", mock.Anything, uint(7)).Return(nil)

	body, _ := json.Marshal(map[string]any{"eventType": "view", "contentId": 7})
	req := httptest.NewRequest(http.MethodPost, "/analytics", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	contentRepo.AssertCalled(t, "IncrementViews", mock.Anything, uint(7))

	var event models.AnalyticsEvent
	decodeBody(t, resp, &event)
	assert.Equal(t, models.EventTypeView, event.EventType)
	assert.NotEmpty(t, event.SessionID)
	assert.False(t, event.Timestamp.IsZero())
}

func TestGetAnalytics(t *testing.T) {
	repo := new(MockAnalyticsRepository)
	contentRepo := new(MockContentRepository)
	app := newAnalyticsTestApp(repo, contentRepo)

	repo.On("Aggregate", mock.Anything).Return(&models.AnalyticsSummary{
		TotalViews:     12,
		TotalContent:   4,
		PopularContent: []*models.Content{{ID: 1, Title: "Heat", Views: 9}},
		RecentViews:    []*models.AnalyticsEvent{},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/analytics", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]json.RawMessage
	decodeBody(t, resp, &body)
	assert.Contains(t, body, "totalViews")
	assert.Contains(t, body, "totalContent")
	assert.Contains(t, body, "popularContent")
	assert.Contains(t, body, "recentViews")
}

package handler

import (
	"context"
	"net/http"
	"net/url"
	"testing"
	"time"

	"tzlon-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockHistoryService is a mock implementation of the HistoryService interface
type MockHistoryService struct {
	mock.Mock
}

func (m *MockHistoryService) Recent(ctx context.Context, limit int) ([]models.HistoryEntry, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]models.HistoryEntry), args.Error(1)
}

func TestHistoryHandler_Recent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	createdAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		query          url.Values
		mockLimit      *int
		mockResult     []models.HistoryEntry
		mockError      error
		expectedStatus int
		expectedBody   interface{}
	}{
		{
			name:      "default limit",
			query:     url.Values{},
			mockLimit: intPtr(0),
			mockResult: []models.HistoryEntry{
				{ID: 7, Kind: models.KindLongitudeToTimezone, Input: `E 30° 0' 0.000"`, Longitude: 30, OffsetHours: 2, CreatedAt: createdAt},
			},
			expectedStatus: http.StatusOK,
			expectedBody: []interface{}{
				map[string]interface{}{
					"id":           float64(7),
					"kind":         "lon->tz",
					"input":        `E 30° 0' 0.000"`,
					"longitude":    float64(30),
					"offset_hours": float64(2),
					"created_at":   "2024-03-01T12:00:00Z",
				},
			},
		},
		{
			name:           "explicit limit",
			query:          url.Values{"limit": {"5"}},
			mockLimit:      intPtr(5),
			mockResult:     []models.HistoryEntry{},
			expectedStatus: http.StatusOK,
			expectedBody:   []interface{}{},
		},
		{
			name:           "non numeric limit",
			query:          url.Values{"limit": {"many"}},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": "invalid limit format"},
		},
		{
			name:           "zero limit",
			query:          url.Values{"limit": {"0"}},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": "invalid limit format"},
		},
		{
			name:           "limit too large",
			query:          url.Values{"limit": {"201"}},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": "invalid limit format"},
		},
		{
			name:           "service error",
			query:          url.Values{},
			mockLimit:      intPtr(0),
			mockResult:     nil,
			mockError:      assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   map[string]interface{}{"error": "internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockHistoryService)
			handler := NewHistoryHandler(mockSvc)

			if tt.mockLimit != nil {
				mockSvc.On("Recent", mock.Anything, *tt.mockLimit).Return(tt.mockResult, tt.mockError)
			}

			c, w := newTestContext(http.MethodGet, "/history", tt.query)

			handler.Recent(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedBody, decodeBody(t, w))
			mockSvc.AssertExpectations(t)
		})
	}
}

func intPtr(v int) *int {
	return &v
}

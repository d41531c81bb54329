package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/reginayiwang/movement-breaks/internal/middlewares"
	"github.com/reginayiwang/movement-breaks/internal/services"
)

// blockRequest builds a POST /users/{id}/block request routed through chi so
// the handler can read the id path param.
func blockRequest(t *testing.T, handler http.HandlerFunc, pathUserID, body string, callerID *uuid.UUID) *httptest.ResponseRecorder {
	t.Helper()

	r := chi.NewRouter()
	r.Post("/users/{id}/block", handler)

	req := httptest.NewRequest(http.MethodPost, "/users/"+pathUserID+"/block", bytes.NewBufferString(body))
	if callerID != nil {
		req = req.WithContext(middlewares.SetUserIDToContext(req.Context(), *callerID))
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestBlockHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	callerID := uuid.New()
	exerciseID := uuid.New()
	validBody := `{"exercise_id": "` + exerciseID.String() + `"}`

	tests := []struct {
		name         string
		pathUserID   string
		body         string
		anonymous    bool
		mockSetup    func(m *MockBlocker)
		expectedCode int
		expectedErr  string
	}{
		{
			name:       "success",
			pathUserID: callerID.String(),
			body:       validBody,
			mockSetup: func(m *MockBlocker) {
				m.EXPECT().
					Block(gomock.Any(), callerID, callerID, exerciseID).
					Return(nil)
			},
			expectedCode: 201,
		},
		{
			name:         "anonymous caller",
			pathUserID:   callerID.String(),
			body:         validBody,
			anonymous:    true,
			expectedCode: 401,
			expectedErr:  "Unauthorized",
		},
		{
			name:         "malformed user id",
			pathUserID:   "not-a-uuid",
			body:         validBody,
			expectedCode: 400,
			expectedErr:  "Invalid user id",
		},
		{
			name:         "invalid body",
			pathUserID:   callerID.String(),
			body:         `{invalid`,
			expectedCode: 400,
			expectedErr:  "Invalid request body",
		},
		{
			name:         "missing exercise id",
			pathUserID:   callerID.String(),
			body:         `{}`,
			expectedCode: 400,
			expectedErr:  "Invalid request body",
		},
		{
			name:       "blocking for another user",
			pathUserID: uuid.NewString(),
			body:       validBody,
			mockSetup: func(m *MockBlocker) {
				m.EXPECT().
					Block(gomock.Any(), callerID, gomock.Any(), exerciseID).
					Return(services.ErrUnauthorized)
			},
			expectedCode: 401,
			expectedErr:  "Unauthorized",
		},
		{
			name:       "unknown exercise",
			pathUserID: callerID.String(),
			body:       validBody,
			mockSetup: func(m *MockBlocker) {
				m.EXPECT().
					Block(gomock.Any(), callerID, callerID, exerciseID).
					Return(services.ErrUnknownExercise)
			},
			expectedCode: 400,
			expectedErr:  "Unknown exercise id",
		},
		{
			name:       "internal error",
			pathUserID: callerID.String(),
			body:       validBody,
			mockSetup: func(m *MockBlocker) {
				m.EXPECT().
					Block(gomock.Any(), callerID, callerID, exerciseID).
					Return(errors.New("db error"))
			},
			expectedCode: 500,
			expectedErr:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockBlocker(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewBlockHandler(mockSvc)

			caller := &callerID
			if tt.anonymous {
				caller = nil
			}
			rec := blockRequest(t, handler, tt.pathUserID, tt.body, caller)

			assert.Equal(t, tt.expectedCode, rec.Code)

			if tt.expectedErr != "" {
				var body BlockErrorResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.expectedErr, body.Error)
			}
		})
	}
}

func TestBlockHandler_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockBlocker(ctrl)
	handler := NewBlockHandler(mockSvc)

	callerID := uuid.New()
	exerciseID := uuid.New()
	body := `{"exercise_id": "` + exerciseID.String() + `"}`

	// Blocking the same exercise twice succeeds both times.
	mockSvc.EXPECT().
		Block(gomock.Any(), callerID, callerID, exerciseID).
		Return(nil).
		Times(2)

	for i := 0; i < 2; i++ {
		rec := blockRequest(t, handler, callerID.String(), body, &callerID)
		assert.Equal(t, http.StatusCreated, rec.Code)
	}
}

package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/reginayiwang/movement-breaks/internal/middlewares"
	"github.com/reginayiwang/movement-breaks/internal/services"
)

func TestGetSettingsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockSettingsGetter(ctrl)
	handler := NewGetSettingsHandler(mockSvc)

	userID := uuid.New()
	equipmentID := uuid.New()
	mockSvc.EXPECT().
		Get(gomock.Any(), userID).
		Return(&services.Settings{
			WorkLength:   45,
			BreakLength:  10,
			EquipmentIDs: []uuid.UUID{equipmentID},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/settings", nil)
	req = req.WithContext(middlewares.SetUserIDToContext(req.Context(), userID))
	rec := httptest.NewRecorder()

	handler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body SettingsResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 45, body.WorkLength)
	assert.Equal(t, 10, body.BreakLength)
	assert.Equal(t, []uuid.UUID{equipmentID}, body.EquipmentIDs)
	// Absent target prefs serialize as an empty list, not null.
	assert.NotNil(t, body.TargetIDs)
	assert.Empty(t, body.TargetIDs)
}

func TestGetSettingsHandler_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockSettingsGetter(ctrl)
	handler := NewGetSettingsHandler(mockSvc)

	req := httptest.NewRequest(http.MethodGet, "/settings", nil)
	rec := httptest.NewRecorder()

	handler(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateSettingsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockSettingsUpdater)
		expectedCode int
		expectedErr  string
	}{
		{
			name: "success",
			body: `{"work_length": 25}`,
			mockSetup: func(m *MockSettingsUpdater) {
				m.EXPECT().
					Update(gomock.Any(), userID, gomock.Any()).
					Return(&services.Settings{WorkLength: 25, BreakLength: 5}, nil)
			},
			expectedCode: 200,
		},
		{
			name: "invalid length",
			body: `{"work_length": 0}`,
			mockSetup: func(m *MockSettingsUpdater) {
				m.EXPECT().
					Update(gomock.Any(), userID, gomock.Any()).
					Return(nil, services.ErrInvalidLength)
			},
			expectedCode: 400,
			expectedErr:  "Work and break lengths must be positive",
		},
		{
			name: "unknown equipment",
			body: `{"equipment_ids": ["` + uuid.NewString() + `"]}`,
			mockSetup: func(m *MockSettingsUpdater) {
				m.EXPECT().
					Update(gomock.Any(), userID, gomock.Any()).
					Return(nil, services.ErrUnknownEquipment)
			},
			expectedCode: 400,
			expectedErr:  "Unknown equipment id",
		},
		{
			name: "unknown target",
			body: `{"target_ids": ["` + uuid.NewString() + `"]}`,
			mockSetup: func(m *MockSettingsUpdater) {
				m.EXPECT().
					Update(gomock.Any(), userID, gomock.Any()).
					Return(nil, services.ErrUnknownTarget)
			},
			expectedCode: 400,
			expectedErr:  "Unknown target id",
		},
		{
			name: "user vanished",
			body: `{"work_length": 25}`,
			mockSetup: func(m *MockSettingsUpdater) {
				m.EXPECT().
					Update(gomock.Any(), userID, gomock.Any()).
					Return(nil, services.ErrUserNotFound)
			},
			expectedCode: 401,
		},
		{
			name:         "invalid json",
			body:         `{invalid`,
			expectedCode: 400,
			expectedErr:  "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockSettingsUpdater(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewUpdateSettingsHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/settings", bytes.NewBufferString(tt.body))
			req = req.WithContext(middlewares.SetUserIDToContext(req.Context(), userID))
			rec := httptest.NewRecorder()

			handler(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)

			if tt.expectedErr != "" {
				var body SettingsErrorResponse
				assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.expectedErr, body.Error)
			}
		})
	}
}

func TestUpdateSettingsHandler_PassesFieldsThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockSettingsUpdater(ctrl)
	handler := NewUpdateSettingsHandler(mockSvc)

	userID := uuid.New()
	equipmentID := uuid.New()

	mockSvc.EXPECT().
		Update(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, upd services.SettingsUpdate) (*services.Settings, error) {
			assert.NotNil(t, upd.WorkLength)
			assert.Equal(t, 25, *upd.WorkLength)
			assert.Nil(t, upd.BreakLength)
			assert.NotNil(t, upd.EquipmentIDs)
			assert.Equal(t, []uuid.UUID{equipmentID}, *upd.EquipmentIDs)
			assert.Nil(t, upd.TargetIDs)
			return &services.Settings{WorkLength: 25, BreakLength: 5, EquipmentIDs: []uuid.UUID{equipmentID}}, nil
		})

	body := `{"work_length": 25, "equipment_ids": ["` + equipmentID.String() + `"]}`
	req := httptest.NewRequest(http.MethodPost, "/settings", bytes.NewBufferString(body))
	req = req.WithContext(middlewares.SetUserIDToContext(req.Context(), userID))
	rec := httptest.NewRecorder()

	handler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

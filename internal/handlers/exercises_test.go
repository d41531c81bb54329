package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/reginayiwang/movement-breaks/internal/middlewares"
	"github.com/reginayiwang/movement-breaks/internal/models"
)

func TestExercisesHandler_Anonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockExerciseSelector(ctrl)
	handler := NewExercisesHandler(mockSvc)

	mockSvc.EXPECT().
		Select(gomock.Any(), (*uuid.UUID)(nil)).
		Return(true, []models.ExerciseView{
			{ID: uuid.New(), Name: "push-up", GifURL: "http://example.com/pushup.gif"},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/exercises", nil)
	rec := httptest.NewRecorder()

	handler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body ExercisesResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.ExercisesFound)
	assert.Len(t, body.Exercises, 1)
	assert.Equal(t, "push-up", body.Exercises[0].Name)
}

func TestExercisesHandler_AuthenticatedFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockExerciseSelector(ctrl)
	handler := NewExercisesHandler(mockSvc)

	userID := uuid.New()
	mockSvc.EXPECT().
		Select(gomock.Any(), &userID).
		Return(false, []models.ExerciseView{{ID: uuid.New(), Name: "sit-up"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/exercises", nil)
	req = req.WithContext(middlewares.SetUserIDToContext(req.Context(), userID))
	rec := httptest.NewRecorder()

	handler(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body ExercisesResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.ExercisesFound)
	assert.Len(t, body.Exercises, 1)
}

func TestExercisesHandler_SelectError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockExerciseSelector(ctrl)
	handler := NewExercisesHandler(mockSvc)

	mockSvc.EXPECT().
		Select(gomock.Any(), gomock.Any()).
		Return(false, nil, errors.New("db error"))

	req := httptest.NewRequest(http.MethodGet, "/exercises", nil)
	rec := httptest.NewRecorder()

	handler(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

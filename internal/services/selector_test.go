package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/reginayiwang/movement-breaks/internal/models"
	"github.com/reginayiwang/movement-breaks/internal/repositories"
	"github.com/reginayiwang/movement-breaks/internal/services"
)

func TestSelectorService_Select_Anonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExercises := services.NewMockExerciseLister(ctrl)
	mockUsers := services.NewMockUserGetter(ctrl)
	mockPrefs := services.NewMockPreferenceReader(ctrl)

	bodyweightID := uuid.New()
	svc := services.NewSelectorService(mockExercises, mockUsers, mockPrefs, bodyweightID)

	situp := models.ExerciseDB{ExerciseID: uuid.New(), Name: "sit-up", EquipmentID: bodyweightID}
	mockExercises.EXPECT().
		ListFiltered(gomock.Any(), repositories.ExerciseFilter{EquipmentIDs: []uuid.UUID{bodyweightID}}).
		Return([]models.ExerciseDB{situp}, nil)

	found, exercises, err := svc.Select(context.Background(), nil)

	assert.NoError(t, err)
	assert.True(t, found)
	assert.Len(t, exercises, 1)
	assert.Equal(t, "sit-up", exercises[0].Name)
}

func TestSelectorService_Select_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExercises := services.NewMockExerciseLister(ctrl)
	mockUsers := services.NewMockUserGetter(ctrl)
	mockPrefs := services.NewMockPreferenceReader(ctrl)

	bodyweightID := uuid.New()
	svc := services.NewSelectorService(mockExercises, mockUsers, mockPrefs, bodyweightID)

	userID := uuid.New()
	mockUsers.EXPECT().GetByID(gomock.Any(), userID).Return(nil, nil)
	mockExercises.EXPECT().
		ListFiltered(gomock.Any(), repositories.ExerciseFilter{EquipmentIDs: []uuid.UUID{bodyweightID}}).
		Return([]models.ExerciseDB{{ExerciseID: uuid.New(), Name: "push-up"}}, nil)

	found, exercises, err := svc.Select(context.Background(), &userID)

	assert.NoError(t, err)
	assert.True(t, found)
	assert.Len(t, exercises, 1)
}

func TestSelectorService_Select_WithPreferences(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExercises := services.NewMockExerciseLister(ctrl)
	mockUsers := services.NewMockUserGetter(ctrl)
	mockPrefs := services.NewMockPreferenceReader(ctrl)

	bodyweightID := uuid.New()
	dumbbellID := uuid.New()
	bicepsID := uuid.New()
	svc := services.NewSelectorService(mockExercises, mockUsers, mockPrefs, bodyweightID)

	userID := uuid.New()
	mockUsers.EXPECT().GetByID(gomock.Any(), userID).Return(&models.UserDB{UserID: userID}, nil)
	mockPrefs.EXPECT().EquipmentIDs(gomock.Any(), userID).Return([]uuid.UUID{dumbbellID}, nil)
	mockPrefs.EXPECT().BlockedExerciseIDs(gomock.Any(), userID).Return(nil, nil)
	mockPrefs.EXPECT().TargetIDs(gomock.Any(), userID).Return([]uuid.UUID{bicepsID}, nil)

	curl := models.ExerciseDB{ExerciseID: uuid.New(), Name: "bicep curl", EquipmentID: dumbbellID, TargetID: bicepsID}
	mockExercises.EXPECT().
		ListFiltered(gomock.Any(), repositories.ExerciseFilter{
			EquipmentIDs: []uuid.UUID{dumbbellID},
			TargetIDs:    []uuid.UUID{bicepsID},
		}).
		Return([]models.ExerciseDB{curl}, nil)

	found, exercises, err := svc.Select(context.Background(), &userID)

	assert.NoError(t, err)
	assert.True(t, found)
	assert.Len(t, exercises, 1)
	assert.Equal(t, "bicep curl", exercises[0].Name)
}

func TestSelectorService_Select_EmptyPrefsDefaultsToBodyweight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExercises := services.NewMockExerciseLister(ctrl)
	mockUsers := services.NewMockUserGetter(ctrl)
	mockPrefs := services.NewMockPreferenceReader(ctrl)

	bodyweightID := uuid.New()
	svc := services.NewSelectorService(mockExercises, mockUsers, mockPrefs, bodyweightID)

	userID := uuid.New()
	blockedID := uuid.New()
	mockUsers.EXPECT().GetByID(gomock.Any(), userID).Return(&models.UserDB{UserID: userID}, nil)
	mockPrefs.EXPECT().EquipmentIDs(gomock.Any(), userID).Return(nil, nil)
	mockPrefs.EXPECT().BlockedExerciseIDs(gomock.Any(), userID).Return([]uuid.UUID{blockedID}, nil)
	mockPrefs.EXPECT().TargetIDs(gomock.Any(), userID).Return(nil, nil)

	// Empty equipment prefs collapse to body weight; blocked exercises are
	// still excluded.
	mockExercises.EXPECT().
		ListFiltered(gomock.Any(), repositories.ExerciseFilter{
			EquipmentIDs: []uuid.UUID{bodyweightID},
			ExcludeIDs:   []uuid.UUID{blockedID},
		}).
		Return([]models.ExerciseDB{{ExerciseID: uuid.New(), Name: "sit-up"}}, nil)

	found, exercises, err := svc.Select(context.Background(), &userID)

	assert.NoError(t, err)
	assert.True(t, found)
	assert.Len(t, exercises, 1)
	assert.Equal(t, "sit-up", exercises[0].Name)
}

func TestSelectorService_Select_FallbackWhenNothingMatches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExercises := services.NewMockExerciseLister(ctrl)
	mockUsers := services.NewMockUserGetter(ctrl)
	mockPrefs := services.NewMockPreferenceReader(ctrl)

	bodyweightID := uuid.New()
	kettlebellID := uuid.New()
	svc := services.NewSelectorService(mockExercises, mockUsers, mockPrefs, bodyweightID)

	userID := uuid.New()
	mockUsers.EXPECT().GetByID(gomock.Any(), userID).Return(&models.UserDB{UserID: userID}, nil)
	mockPrefs.EXPECT().EquipmentIDs(gomock.Any(), userID).Return([]uuid.UUID{kettlebellID}, nil)
	mockPrefs.EXPECT().BlockedExerciseIDs(gomock.Any(), userID).Return(nil, nil)
	mockPrefs.EXPECT().TargetIDs(gomock.Any(), userID).Return(nil, nil)

	mockExercises.EXPECT().
		ListFiltered(gomock.Any(), repositories.ExerciseFilter{EquipmentIDs: []uuid.UUID{kettlebellID}}).
		Return(nil, nil)
	mockExercises.EXPECT().
		ListFiltered(gomock.Any(), repositories.ExerciseFilter{EquipmentIDs: []uuid.UUID{bodyweightID}}).
		Return([]models.ExerciseDB{{ExerciseID: uuid.New(), Name: "push-up"}}, nil)

	found, exercises, err := svc.Select(context.Background(), &userID)

	assert.NoError(t, err)
	assert.False(t, found)
	assert.Len(t, exercises, 1)
	assert.Equal(t, "push-up", exercises[0].Name)
}

func TestSelectorService_Select_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockExercises := services.NewMockExerciseLister(ctrl)
	mockUsers := services.NewMockUserGetter(ctrl)
	mockPrefs := services.NewMockPreferenceReader(ctrl)

	svc := services.NewSelectorService(mockExercises, mockUsers, mockPrefs, uuid.New())

	mockExercises.EXPECT().
		ListFiltered(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("db error"))

	found, exercises, err := svc.Select(context.Background(), nil)

	assert.Error(t, err)
	assert.False(t, found)
	assert.Nil(t, exercises)
}

package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/reginayiwang/movement-breaks/internal/models"
	"github.com/reginayiwang/movement-breaks/internal/services"
)

func intPtr(v int) *int { return &v }

func idsPtr(ids ...uuid.UUID) *[]uuid.UUID { return &ids }

type settingsMocks struct {
	users     *services.MockUserGetter
	userWrite *services.MockUserSettingsWriter
	prefs     *services.MockPreferenceReader
	prefWrite *services.MockPreferenceReplacer
	equipment *services.MockCatalogChecker
	targets   *services.MockCatalogChecker
	events    *services.MockEventPublisher
}

func newSettingsService(ctrl *gomock.Controller) (*services.SettingsService, settingsMocks) {
	m := settingsMocks{
		users:     services.NewMockUserGetter(ctrl),
		userWrite: services.NewMockUserSettingsWriter(ctrl),
		prefs:     services.NewMockPreferenceReader(ctrl),
		prefWrite: services.NewMockPreferenceReplacer(ctrl),
		equipment: services.NewMockCatalogChecker(ctrl),
		targets:   services.NewMockCatalogChecker(ctrl),
		events:    services.NewMockEventPublisher(ctrl),
	}
	svc := services.NewSettingsService(m.users, m.userWrite, m.prefs, m.prefWrite, m.equipment, m.targets, m.events)
	return svc, m
}

func TestSettingsService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newSettingsService(ctrl)

	userID := uuid.New()
	equipmentID := uuid.New()
	m.users.EXPECT().GetByID(gomock.Any(), userID).
		Return(&models.UserDB{UserID: userID, WorkLength: 45, BreakLength: 10}, nil)
	m.prefs.EXPECT().EquipmentIDs(gomock.Any(), userID).Return([]uuid.UUID{equipmentID}, nil)
	m.prefs.EXPECT().TargetIDs(gomock.Any(), userID).Return(nil, nil)

	settings, err := svc.Get(context.Background(), userID)

	assert.NoError(t, err)
	assert.Equal(t, 45, settings.WorkLength)
	assert.Equal(t, 10, settings.BreakLength)
	assert.Equal(t, []uuid.UUID{equipmentID}, settings.EquipmentIDs)
	assert.Empty(t, settings.TargetIDs)
}

func TestSettingsService_Get_UserNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newSettingsService(ctrl)

	userID := uuid.New()
	m.users.EXPECT().GetByID(gomock.Any(), userID).Return(nil, nil)

	settings, err := svc.Get(context.Background(), userID)

	assert.ErrorIs(t, err, services.ErrUserNotFound)
	assert.Nil(t, settings)
}

func TestSettingsService_Update_Lengths(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newSettingsService(ctrl)

	userID := uuid.New()
	m.users.EXPECT().GetByID(gomock.Any(), userID).
		Return(&models.UserDB{UserID: userID, WorkLength: 60, BreakLength: 5}, nil)
	m.userWrite.EXPECT().UpdateLengths(gomock.Any(), userID, intPtr(25), (*int)(nil)).Return(nil)
	m.events.EXPECT().Publish(gomock.Any(), userID, models.ActionSettingsUpdated, "")
	m.prefs.EXPECT().EquipmentIDs(gomock.Any(), userID).Return(nil, nil)
	m.prefs.EXPECT().TargetIDs(gomock.Any(), userID).Return(nil, nil)

	settings, err := svc.Update(context.Background(), userID, services.SettingsUpdate{WorkLength: intPtr(25)})

	assert.NoError(t, err)
	assert.Equal(t, 25, settings.WorkLength)
	assert.Equal(t, 5, settings.BreakLength)
}

func TestSettingsService_Update_InvalidLength(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name string
		upd  services.SettingsUpdate
	}{
		{name: "zero work length", upd: services.SettingsUpdate{WorkLength: intPtr(0)}},
		{name: "negative work length", upd: services.SettingsUpdate{WorkLength: intPtr(-5)}},
		{name: "zero break length", upd: services.SettingsUpdate{BreakLength: intPtr(0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newSettingsService(ctrl)

			userID := uuid.New()
			m.users.EXPECT().GetByID(gomock.Any(), userID).
				Return(&models.UserDB{UserID: userID, WorkLength: 60, BreakLength: 5}, nil)

			settings, err := svc.Update(context.Background(), userID, tt.upd)

			assert.ErrorIs(t, err, services.ErrInvalidLength)
			assert.Nil(t, settings)
		})
	}
}

func TestSettingsService_Update_ReplacesPreferences(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newSettingsService(ctrl)

	userID := uuid.New()
	equipmentID := uuid.New()
	targetID := uuid.New()

	m.users.EXPECT().GetByID(gomock.Any(), userID).
		Return(&models.UserDB{UserID: userID, WorkLength: 60, BreakLength: 5}, nil)
	// Duplicate ids count once against the catalog.
	m.equipment.EXPECT().CountByIDs(gomock.Any(), []uuid.UUID{equipmentID}).Return(1, nil)
	m.targets.EXPECT().CountByIDs(gomock.Any(), []uuid.UUID{targetID}).Return(1, nil)
	m.prefWrite.EXPECT().ReplaceEquipment(gomock.Any(), userID, []uuid.UUID{equipmentID}).Return(nil)
	m.prefWrite.EXPECT().ReplaceTargets(gomock.Any(), userID, []uuid.UUID{targetID}).Return(nil)
	m.events.EXPECT().Publish(gomock.Any(), userID, models.ActionSettingsUpdated, "")

	settings, err := svc.Update(context.Background(), userID, services.SettingsUpdate{
		EquipmentIDs: idsPtr(equipmentID, equipmentID),
		TargetIDs:    idsPtr(targetID),
	})

	assert.NoError(t, err)
	assert.Equal(t, []uuid.UUID{equipmentID}, settings.EquipmentIDs)
	assert.Equal(t, []uuid.UUID{targetID}, settings.TargetIDs)
}

func TestSettingsService_Update_EmptyListClears(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newSettingsService(ctrl)

	userID := uuid.New()
	m.users.EXPECT().GetByID(gomock.Any(), userID).
		Return(&models.UserDB{UserID: userID, WorkLength: 60, BreakLength: 5}, nil)
	m.prefWrite.EXPECT().ReplaceEquipment(gomock.Any(), userID, []uuid.UUID{}).Return(nil)
	m.events.EXPECT().Publish(gomock.Any(), userID, models.ActionSettingsUpdated, "")
	m.prefs.EXPECT().TargetIDs(gomock.Any(), userID).Return(nil, nil)

	settings, err := svc.Update(context.Background(), userID, services.SettingsUpdate{
		EquipmentIDs: idsPtr(),
	})

	assert.NoError(t, err)
	assert.Empty(t, settings.EquipmentIDs)
}

func TestSettingsService_Update_UnknownIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("unknown equipment", func(t *testing.T) {
		svc, m := newSettingsService(ctrl)

		userID := uuid.New()
		badID := uuid.New()
		m.users.EXPECT().GetByID(gomock.Any(), userID).
			Return(&models.UserDB{UserID: userID, WorkLength: 60, BreakLength: 5}, nil)
		m.equipment.EXPECT().CountByIDs(gomock.Any(), []uuid.UUID{badID}).Return(0, nil)

		settings, err := svc.Update(context.Background(), userID, services.SettingsUpdate{
			EquipmentIDs: idsPtr(badID),
		})

		assert.ErrorIs(t, err, services.ErrUnknownEquipment)
		assert.Nil(t, settings)
	})

	t.Run("unknown target", func(t *testing.T) {
		svc, m := newSettingsService(ctrl)

		userID := uuid.New()
		badID := uuid.New()
		m.users.EXPECT().GetByID(gomock.Any(), userID).
			Return(&models.UserDB{UserID: userID, WorkLength: 60, BreakLength: 5}, nil)
		m.targets.EXPECT().CountByIDs(gomock.Any(), []uuid.UUID{badID}).Return(0, nil)

		settings, err := svc.Update(context.Background(), userID, services.SettingsUpdate{
			TargetIDs: idsPtr(badID),
		})

		assert.ErrorIs(t, err, services.ErrUnknownTarget)
		assert.Nil(t, settings)
	})
}

func TestSettingsService_Update_WriteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newSettingsService(ctrl)

	userID := uuid.New()
	m.users.EXPECT().GetByID(gomock.Any(), userID).
		Return(&models.UserDB{UserID: userID, WorkLength: 60, BreakLength: 5}, nil)
	m.userWrite.EXPECT().UpdateLengths(gomock.Any(), userID, intPtr(25), (*int)(nil)).
		Return(errors.New("db error"))

	settings, err := svc.Update(context.Background(), userID, services.SettingsUpdate{WorkLength: intPtr(25)})

	assert.Error(t, err)
	assert.Nil(t, settings)
}

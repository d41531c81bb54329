package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/reginayiwang/movement-breaks/internal/logger"
	"github.com/reginayiwang/movement-breaks/internal/models"
	"github.com/reginayiwang/movement-breaks/internal/repositories"
)

// ExerciseLister lists exercises matching a filter.
type ExerciseLister interface {
	ListFiltered(ctx context.Context, filter repositories.ExerciseFilter) ([]models.ExerciseDB, error)
}

// UserGetter resolves a user id to its account, nil when it does not exist.
type UserGetter interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// PreferenceReader reads a user's preference and blocking links.
type PreferenceReader interface {
	EquipmentIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	TargetIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	BlockedExerciseIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

// SelectorService computes the preference-filtered, blocking-aware exercise
// list for a caller.
type SelectorService struct {
	exercises    ExerciseLister
	users        UserGetter
	prefs        PreferenceReader
	bodyweightID uuid.UUID // resolved at startup; missing row is a seed-data error
}

// NewSelectorService creates a new SelectorService. bodyweightID is the
// equipment id of the universal "body weight" default set.
func NewSelectorService(exercises ExerciseLister, users UserGetter, prefs PreferenceReader, bodyweightID uuid.UUID) *SelectorService {
	return &SelectorService{
		exercises:    exercises,
		users:        users,
		prefs:        prefs,
		bodyweightID: bodyweightID,
	}
}

// defaultSet is the unfiltered body-weight exercise list.
func (svc *SelectorService) defaultSet(ctx context.Context) ([]models.ExerciseDB, error) {
	return svc.exercises.ListFiltered(ctx, repositories.ExerciseFilter{
		EquipmentIDs: []uuid.UUID{svc.bodyweightID},
	})
}

// Select returns the exercise list for the caller along with a found flag.
// found=false means the caller's preferences matched nothing and the
// body-weight default set is being shown instead.
//
// Anonymous callers (nil userID) and ids that no longer resolve to an
// account get the default set with found=true.
//
// Preference handling is asymmetric on purpose: an empty equipment
// preference set collapses to body weight only, while an empty target
// preference set applies no target filter at all.
func (svc *SelectorService) Select(ctx context.Context, userID *uuid.UUID) (bool, []models.ExerciseView, error) {
	if userID == nil {
		return svc.selectDefaults(ctx)
	}

	user, err := svc.users.GetByID(ctx, *userID)
	if err != nil {
		return false, nil, err
	}
	if user == nil {
		return svc.selectDefaults(ctx)
	}

	equipmentIDs, err := svc.prefs.EquipmentIDs(ctx, user.UserID)
	if err != nil {
		return false, nil, err
	}
	if len(equipmentIDs) == 0 {
		equipmentIDs = []uuid.UUID{svc.bodyweightID}
	}

	blockedIDs, err := svc.prefs.BlockedExerciseIDs(ctx, user.UserID)
	if err != nil {
		return false, nil, err
	}

	targetIDs, err := svc.prefs.TargetIDs(ctx, user.UserID)
	if err != nil {
		return false, nil, err
	}

	rows, err := svc.exercises.ListFiltered(ctx, repositories.ExerciseFilter{
		EquipmentIDs: equipmentIDs,
		TargetIDs:    targetIDs,
		ExcludeIDs:   blockedIDs,
	})
	if err != nil {
		return false, nil, err
	}

	if len(rows) > 0 {
		return true, views(rows), nil
	}

	// Nothing matched: show the body-weight defaults, flagged so the
	// caller can tell them apart from real matches. The defaults come
	// from body weight even when the user's equipment preferences
	// exclude it.
	logger.Log.Infow("preferences matched no exercises, falling back to defaults", "user_id", user.UserID)

	defaults, err := svc.defaultSet(ctx)
	if err != nil {
		return false, nil, err
	}

	return false, views(defaults), nil
}

// selectDefaults returns the default set, always reported as found.
func (svc *SelectorService) selectDefaults(ctx context.Context) (bool, []models.ExerciseView, error) {
	rows, err := svc.defaultSet(ctx)
	if err != nil {
		return false, nil, err
	}
	return true, views(rows), nil
}

func views(rows []models.ExerciseDB) []models.ExerciseView {
	out := make([]models.ExerciseView, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.View())
	}
	return out
}

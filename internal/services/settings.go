package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/reginayiwang/movement-breaks/internal/logger"
	"github.com/reginayiwang/movement-breaks/internal/models"
)

// Error variables
var (
	ErrUserNotFound     = errors.New("user does not exist")
	ErrInvalidLength    = errors.New("work and break lengths must be positive")
	ErrUnknownEquipment = errors.New("unknown equipment id")
	ErrUnknownTarget    = errors.New("unknown target id")
)

// Settings is a user's current timer and preference configuration.
type Settings struct {
	WorkLength   int
	BreakLength  int
	EquipmentIDs []uuid.UUID
	TargetIDs    []uuid.UUID
}

// SettingsUpdate carries a partial settings change. Nil fields are left
// untouched; non-nil id lists replace the stored preference sets wholesale.
type SettingsUpdate struct {
	WorkLength   *int
	BreakLength  *int
	EquipmentIDs *[]uuid.UUID
	TargetIDs    *[]uuid.UUID
}

// UserSettingsWriter updates timer settings on the user record.
type UserSettingsWriter interface {
	UpdateLengths(ctx context.Context, userID uuid.UUID, workLength, breakLength *int) error
}

// PreferenceReplacer replaces preference sets wholesale.
type PreferenceReplacer interface {
	ReplaceEquipment(ctx context.Context, userID uuid.UUID, equipmentIDs []uuid.UUID) error
	ReplaceTargets(ctx context.Context, userID uuid.UUID, targetIDs []uuid.UUID) error
}

// CatalogChecker verifies that referenced catalog ids exist.
type CatalogChecker interface {
	CountByIDs(ctx context.Context, ids []uuid.UUID) (int, error)
}

// SettingsService reads and updates a user's timer settings and preference
// sets.
type SettingsService struct {
	users     UserGetter
	userWrite UserSettingsWriter
	prefs     PreferenceReader
	prefWrite PreferenceReplacer
	equipment CatalogChecker
	targets   CatalogChecker
	events    EventPublisher
}

// NewSettingsService creates a new SettingsService instance.
func NewSettingsService(
	users UserGetter,
	userWrite UserSettingsWriter,
	prefs PreferenceReader,
	prefWrite PreferenceReplacer,
	equipment CatalogChecker,
	targets CatalogChecker,
	events EventPublisher,
) *SettingsService {
	return &SettingsService{
		users:     users,
		userWrite: userWrite,
		prefs:     prefs,
		prefWrite: prefWrite,
		equipment: equipment,
		targets:   targets,
		events:    events,
	}
}

// Get returns the user's current settings.
func (svc *SettingsService) Get(ctx context.Context, userID uuid.UUID) (*Settings, error) {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	equipmentIDs, err := svc.prefs.EquipmentIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	targetIDs, err := svc.prefs.TargetIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Settings{
		WorkLength:   user.WorkLength,
		BreakLength:  user.BreakLength,
		EquipmentIDs: equipmentIDs,
		TargetIDs:    targetIDs,
	}, nil
}

// dedupe drops repeated ids, preserving order.
func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// validateIDs checks every id against the catalog.
func validateIDs(ctx context.Context, checker CatalogChecker, ids []uuid.UUID, missingErr error) error {
	if len(ids) == 0 {
		return nil
	}
	count, err := checker.CountByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if count != len(ids) {
		return missingErr
	}
	return nil
}

// Update applies a partial settings change. Provided preference id lists
// replace the stored sets wholesale; validation happens before any write so
// a ValidationError leaves prior state untouched.
func (svc *SettingsService) Update(ctx context.Context, userID uuid.UUID, upd SettingsUpdate) (*Settings, error) {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if upd.WorkLength != nil && *upd.WorkLength <= 0 {
		return nil, ErrInvalidLength
	}
	if upd.BreakLength != nil && *upd.BreakLength <= 0 {
		return nil, ErrInvalidLength
	}

	var equipmentIDs, targetIDs []uuid.UUID
	if upd.EquipmentIDs != nil {
		equipmentIDs = dedupe(*upd.EquipmentIDs)
		if err := validateIDs(ctx, svc.equipment, equipmentIDs, ErrUnknownEquipment); err != nil {
			return nil, err
		}
	}
	if upd.TargetIDs != nil {
		targetIDs = dedupe(*upd.TargetIDs)
		if err := validateIDs(ctx, svc.targets, targetIDs, ErrUnknownTarget); err != nil {
			return nil, err
		}
	}

	if upd.WorkLength != nil || upd.BreakLength != nil {
		if err := svc.userWrite.UpdateLengths(ctx, userID, upd.WorkLength, upd.BreakLength); err != nil {
			logger.Log.Errorw("failed to update lengths", "err", err)
			return nil, err
		}
	}

	if upd.EquipmentIDs != nil {
		if err := svc.prefWrite.ReplaceEquipment(ctx, userID, equipmentIDs); err != nil {
			logger.Log.Errorw("failed to replace equipment preferences", "err", err)
			return nil, err
		}
	}
	if upd.TargetIDs != nil {
		if err := svc.prefWrite.ReplaceTargets(ctx, userID, targetIDs); err != nil {
			logger.Log.Errorw("failed to replace target preferences", "err", err)
			return nil, err
		}
	}

	svc.events.Publish(ctx, userID, models.ActionSettingsUpdated, "")

	// Build the applied state from the inputs; re-reading here would not
	// see writes still pending on the request transaction.
	applied := &Settings{
		WorkLength:  user.WorkLength,
		BreakLength: user.BreakLength,
	}
	if upd.WorkLength != nil {
		applied.WorkLength = *upd.WorkLength
	}
	if upd.BreakLength != nil {
		applied.BreakLength = *upd.BreakLength
	}
	if upd.EquipmentIDs != nil {
		applied.EquipmentIDs = equipmentIDs
	} else {
		applied.EquipmentIDs, err = svc.prefs.EquipmentIDs(ctx, userID)
		if err != nil {
			return nil, err
		}
	}
	if upd.TargetIDs != nil {
		applied.TargetIDs = targetIDs
	} else {
		applied.TargetIDs, err = svc.prefs.TargetIDs(ctx, userID)
		if err != nil {
			return nil, err
		}
	}

	return applied, nil
}

package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/reginayiwang/movement-breaks/internal/logger"
)

// PreferenceReadRepository reads a user's preference and blocking links.
type PreferenceReadRepository struct {
	db *sqlx.DB
}

func NewPreferenceReadRepository(db *sqlx.DB) *PreferenceReadRepository {
	return &PreferenceReadRepository{db: db}
}

func (r *PreferenceReadRepository) selectIDs(ctx context.Context, query string, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.SelectContext(ctx, &ids, query, userID)

	logger.Log.Infow("preference query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(ids),
		"error", err,
	)

	return ids, err
}

// EquipmentIDs returns the user's allowed-equipment preference ids.
func (r *PreferenceReadRepository) EquipmentIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return r.selectIDs(ctx, `SELECT equipment_id FROM equipment_preferences WHERE user_id = $1`, userID)
}

// TargetIDs returns the user's desired-target preference ids.
func (r *PreferenceReadRepository) TargetIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return r.selectIDs(ctx, `SELECT target_id FROM target_preferences WHERE user_id = $1`, userID)
}

// BlockedExerciseIDs returns the exercise ids the user has blocked.
func (r *PreferenceReadRepository) BlockedExerciseIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	return r.selectIDs(ctx, `SELECT exercise_id FROM blocked_exercises WHERE user_id = $1`, userID)
}

// PreferenceWriteRepository mutates a user's preference and blocking links.
// Replace operations run on the request transaction when one is present, so
// the delete and the inserts commit or roll back together.
type PreferenceWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewPreferenceWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PreferenceWriteRepository {
	return &PreferenceWriteRepository{db: db, txGetter: txGetter}
}

func (r *PreferenceWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

func (r *PreferenceWriteRepository) replace(ctx context.Context, userID uuid.UUID, ids []uuid.UUID, deleteQuery, insertQuery string) error {
	executor := r.executor(ctx)

	res, err := executor.ExecContext(ctx, deleteQuery, userID)

	var deleted int64
	if res != nil {
		deleted, _ = res.RowsAffected()
	}

	logger.Log.Infow("preference delete",
		"query", strings.Join(strings.Fields(deleteQuery), " "),
		"args", []any{userID},
		"result", deleted,
		"error", err,
	)

	if err != nil {
		return err
	}

	for _, id := range ids {
		_, err := executor.ExecContext(ctx, insertQuery, userID, id)

		logger.Log.Infow("preference insert",
			"query", strings.Join(strings.Fields(insertQuery), " "),
			"args", []any{userID, id},
			"error", err,
		)

		if err != nil {
			return err
		}
	}

	return nil
}

// ReplaceEquipment replaces the user's equipment preference set wholesale.
func (r *PreferenceWriteRepository) ReplaceEquipment(ctx context.Context, userID uuid.UUID, equipmentIDs []uuid.UUID) error {
	return r.replace(ctx, userID, equipmentIDs,
		`DELETE FROM equipment_preferences WHERE user_id = $1`,
		`INSERT INTO equipment_preferences (user_id, equipment_id) VALUES ($1, $2)`,
	)
}

// ReplaceTargets replaces the user's target preference set wholesale.
func (r *PreferenceWriteRepository) ReplaceTargets(ctx context.Context, userID uuid.UUID, targetIDs []uuid.UUID) error {
	return r.replace(ctx, userID, targetIDs,
		`DELETE FROM target_preferences WHERE user_id = $1`,
		`INSERT INTO target_preferences (user_id, target_id) VALUES ($1, $2)`,
	)
}

// SaveBlockedExercise records a blocked exercise for the user. The composite
// primary key is the de-duplication point: blocking an already-blocked
// exercise is a no-op, not a conflict.
func (r *PreferenceWriteRepository) SaveBlockedExercise(ctx context.Context, userID, exerciseID uuid.UUID) error {
	const query = `
		INSERT INTO blocked_exercises (user_id, exercise_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, exercise_id) DO NOTHING
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, userID, exerciseID)

	logger.Log.Infow("blocked exercise insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, exerciseID},
		"error", err,
	)

	return err
}

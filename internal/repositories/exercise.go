package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/reginayiwang/movement-breaks/internal/logger"
	"github.com/reginayiwang/movement-breaks/internal/models"
)

// ExerciseFilter narrows an exercise listing. Empty slices mean the clause
// is not applied.
type ExerciseFilter struct {
	EquipmentIDs []uuid.UUID // equipment must be one of these
	TargetIDs    []uuid.UUID // target must be one of these
	ExcludeIDs   []uuid.UUID // exercise ids to exclude
}

// ExerciseReadRepository handles exercise lookups.
type ExerciseReadRepository struct {
	db *sqlx.DB
}

func NewExerciseReadRepository(db *sqlx.DB) *ExerciseReadRepository {
	return &ExerciseReadRepository{db: db}
}

// ListFiltered returns exercises matching the filter, ordered by name.
func (r *ExerciseReadRepository) ListFiltered(ctx context.Context, filter ExerciseFilter) ([]models.ExerciseDB, error) {
	query := `
		SELECT exercise_id, name, gif_url, instructions, equipment_id, target_id
		FROM exercises
		WHERE 1=1
	`
	var inArgs []any

	if len(filter.EquipmentIDs) > 0 {
		query += ` AND equipment_id IN (?)`
		inArgs = append(inArgs, filter.EquipmentIDs)
	}
	if len(filter.TargetIDs) > 0 {
		query += ` AND target_id IN (?)`
		inArgs = append(inArgs, filter.TargetIDs)
	}
	if len(filter.ExcludeIDs) > 0 {
		query += ` AND exercise_id NOT IN (?)`
		inArgs = append(inArgs, filter.ExcludeIDs)
	}
	query += ` ORDER BY name`

	bound, args, err := sqlx.In(query, inArgs...)
	if err != nil {
		return nil, err
	}
	bound = r.db.Rebind(bound)

	var rows []models.ExerciseDB
	err = r.db.SelectContext(ctx, &rows, bound, args...)

	logger.Log.Infow("exercise query",
		"query", strings.Join(strings.Fields(bound), " "),
		"args", args,
		"result", len(rows),
		"error", err,
	)

	return rows, err
}

// Exists reports whether an exercise with the given id exists.
func (r *ExerciseReadRepository) Exists(ctx context.Context, exerciseID uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM exercises WHERE exercise_id = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, exerciseID)

	logger.Log.Infow("exercise query",
		"query", query,
		"args", []any{exerciseID},
		"result", exists,
		"error", err,
	)

	return exists, err
}

// ExerciseWriteRepository populates exercises during seeding.
type ExerciseWriteRepository struct {
	db *sqlx.DB
}

func NewExerciseWriteRepository(db *sqlx.DB) *ExerciseWriteRepository {
	return &ExerciseWriteRepository{db: db}
}

// Save inserts an exercise row and returns its id.
func (r *ExerciseWriteRepository) Save(ctx context.Context, name, gifURL string, instructions models.Instructions, equipmentID, targetID uuid.UUID) (uuid.UUID, error) {
	const query = `
		INSERT INTO exercises (name, gif_url, instructions, equipment_id, target_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING exercise_id
	`

	var id uuid.UUID
	err := r.db.GetContext(ctx, &id, query, name, gifURL, instructions, equipmentID, targetID)

	logger.Log.Infow("exercise insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{name, equipmentID, targetID},
		"error", err,
	)

	return id, err
}

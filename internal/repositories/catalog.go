package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/reginayiwang/movement-breaks/internal/logger"
	"github.com/reginayiwang/movement-breaks/internal/models"
)

// EquipmentReadRepository handles equipment catalog lookups.
type EquipmentReadRepository struct {
	db *sqlx.DB
}

func NewEquipmentReadRepository(db *sqlx.DB) *EquipmentReadRepository {
	return &EquipmentReadRepository{db: db}
}

// List returns all equipment rows ordered by name.
func (r *EquipmentReadRepository) List(ctx context.Context) ([]models.EquipmentDB, error) {
	const query = `SELECT equipment_id, name FROM equipment ORDER BY name`

	var rows []models.EquipmentDB
	err := r.db.SelectContext(ctx, &rows, query)

	logger.Log.Infow("equipment query",
		"query", query,
		"result", len(rows),
		"error", err,
	)

	return rows, err
}

// GetByName returns the equipment row with the given name, or nil when none
// exists.
func (r *EquipmentReadRepository) GetByName(ctx context.Context, name string) (*models.EquipmentDB, error) {
	const query = `SELECT equipment_id, name FROM equipment WHERE name = $1`

	var row models.EquipmentDB
	err := r.db.GetContext(ctx, &row, query, name)

	logger.Log.Infow("equipment query",
		"query", query,
		"args", []any{name},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &row, nil
}

// CountByIDs returns how many of the given equipment ids exist.
func (r *EquipmentReadRepository) CountByIDs(ctx context.Context, ids []uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query, args, err := sqlx.In(`SELECT COUNT(*) FROM equipment WHERE equipment_id IN (?)`, ids)
	if err != nil {
		return 0, err
	}
	query = r.db.Rebind(query)

	var count int
	err = r.db.GetContext(ctx, &count, query, args...)

	logger.Log.Infow("equipment query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", count,
		"error", err,
	)

	return count, err
}

// TargetReadRepository handles target catalog lookups.
type TargetReadRepository struct {
	db *sqlx.DB
}

func NewTargetReadRepository(db *sqlx.DB) *TargetReadRepository {
	return &TargetReadRepository{db: db}
}

// List returns all target rows ordered by name.
func (r *TargetReadRepository) List(ctx context.Context) ([]models.TargetDB, error) {
	const query = `SELECT target_id, name FROM targets ORDER BY name`

	var rows []models.TargetDB
	err := r.db.SelectContext(ctx, &rows, query)

	logger.Log.Infow("target query",
		"query", query,
		"result", len(rows),
		"error", err,
	)

	return rows, err
}

// CountByIDs returns how many of the given target ids exist.
func (r *TargetReadRepository) CountByIDs(ctx context.Context, ids []uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query, args, err := sqlx.In(`SELECT COUNT(*) FROM targets WHERE target_id IN (?)`, ids)
	if err != nil {
		return 0, err
	}
	query = r.db.Rebind(query)

	var count int
	err = r.db.GetContext(ctx, &count, query, args...)

	logger.Log.Infow("target query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", count,
		"error", err,
	)

	return count, err
}

// CatalogWriteRepository populates the equipment and target catalogs during
// seeding. Catalog rows are immutable reference data afterwards.
type CatalogWriteRepository struct {
	db *sqlx.DB
}

func NewCatalogWriteRepository(db *sqlx.DB) *CatalogWriteRepository {
	return &CatalogWriteRepository{db: db}
}

// SaveEquipment inserts an equipment row and returns its id.
func (r *CatalogWriteRepository) SaveEquipment(ctx context.Context, name string) (uuid.UUID, error) {
	const query = `INSERT INTO equipment (name) VALUES ($1) RETURNING equipment_id`

	var id uuid.UUID
	err := r.db.GetContext(ctx, &id, query, name)

	logger.Log.Infow("equipment insert",
		"query", query,
		"args", []any{name},
		"error", err,
	)

	return id, err
}

// SaveTarget inserts a target row and returns its id.
func (r *CatalogWriteRepository) SaveTarget(ctx context.Context, name string) (uuid.UUID, error) {
	const query = `INSERT INTO targets (name) VALUES ($1) RETURNING target_id`

	var id uuid.UUID
	err := r.db.GetContext(ctx, &id, query, name)

	logger.Log.Infow("target insert",
		"query", query,
		"args", []any{name},
		"error", err,
	)

	return id, err
}

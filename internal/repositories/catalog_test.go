package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCatalogWriteRepository_SaveAndList(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewCatalogWriteRepository(db)
	equipmentRepo := NewEquipmentReadRepository(db)
	targetRepo := NewTargetReadRepository(db)
	ctx := context.Background()

	dumbbellID, err := writeRepo.SaveEquipment(ctx, "dumbbell")
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, dumbbellID)
	bodyweightID, err := writeRepo.SaveEquipment(ctx, "body weight")
	assert.NoError(t, err)

	absID, err := writeRepo.SaveTarget(ctx, "abs")
	assert.NoError(t, err)

	equipment, err := equipmentRepo.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, equipment, 2)
	// Ordered by name
	assert.Equal(t, "body weight", equipment[0].Name)
	assert.Equal(t, bodyweightID, equipment[0].EquipmentID)
	assert.Equal(t, "dumbbell", equipment[1].Name)

	targets, err := targetRepo.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, targets, 1)
	assert.Equal(t, absID, targets[0].TargetID)
}

func TestEquipmentReadRepository_GetByName(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewEquipmentReadRepository(db)
	ctx := context.Background()

	id := seedEquipment(t, db, "body weight")

	row, err := repo.GetByName(ctx, "body weight")
	assert.NoError(t, err)
	assert.NotNil(t, row)
	assert.Equal(t, id, row.EquipmentID.String())

	missing, err := repo.GetByName(ctx, "kettlebell")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestEquipmentReadRepository_CountByIDs(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewEquipmentReadRepository(db)
	ctx := context.Background()

	id1 := uuid.MustParse(seedEquipment(t, db, "dumbbell"))
	id2 := uuid.MustParse(seedEquipment(t, db, "barbell"))

	count, err := repo.CountByIDs(ctx, []uuid.UUID{id1, id2})
	assert.NoError(t, err)
	assert.Equal(t, 2, count)

	// Unknown ids don't count
	count, err = repo.CountByIDs(ctx, []uuid.UUID{id1, uuid.New()})
	assert.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = repo.CountByIDs(ctx, nil)
	assert.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestTargetReadRepository_CountByIDs(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewTargetReadRepository(db)
	ctx := context.Background()

	id := uuid.MustParse(seedTarget(t, db, "abs"))

	count, err := repo.CountByIDs(ctx, []uuid.UUID{id})
	assert.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = repo.CountByIDs(ctx, []uuid.UUID{uuid.New()})
	assert.NoError(t, err)
	assert.Equal(t, 0, count)
}

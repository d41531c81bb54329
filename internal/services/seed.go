package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/reginayiwang/movement-breaks/internal/logger"
	"github.com/reginayiwang/movement-breaks/internal/models"
)

// ExerciseProvider supplies catalog and exercise data at seed time.
type ExerciseProvider interface {
	ListEquipment(ctx context.Context) ([]string, error)
	ListTargets(ctx context.Context) ([]string, error)
	ListExercises(ctx context.Context) ([]models.ProviderExercise, error)
}

// CatalogWriter populates the equipment and target catalogs.
type CatalogWriter interface {
	SaveEquipment(ctx context.Context, name string) (uuid.UUID, error)
	SaveTarget(ctx context.Context, name string) (uuid.UUID, error)
}

// ExerciseWriter populates the exercise store.
type ExerciseWriter interface {
	Save(ctx context.Context, name, gifURL string, instructions models.Instructions, equipmentID, targetID uuid.UUID) (uuid.UUID, error)
}

// SeedService imports the catalog and exercise data from the external
// provider into freshly reset tables. Any provider or resolution failure
// aborts the import; there is no retry.
type SeedService struct {
	provider  ExerciseProvider
	catalog   CatalogWriter
	exercises ExerciseWriter
}

// NewSeedService creates a new SeedService instance.
func NewSeedService(provider ExerciseProvider, catalog CatalogWriter, exercises ExerciseWriter) *SeedService {
	return &SeedService{
		provider:  provider,
		catalog:   catalog,
		exercises: exercises,
	}
}

// Run fetches everything from the provider and populates the stores. Each
// exercise must resolve to a seeded equipment and target row by name.
func (svc *SeedService) Run(ctx context.Context) error {
	equipmentNames, err := svc.provider.ListEquipment(ctx)
	if err != nil {
		return fmt.Errorf("fetch equipment list: %w", err)
	}
	targetNames, err := svc.provider.ListTargets(ctx)
	if err != nil {
		return fmt.Errorf("fetch target list: %w", err)
	}
	providerExercises, err := svc.provider.ListExercises(ctx)
	if err != nil {
		return fmt.Errorf("fetch exercise list: %w", err)
	}

	equipmentByName := make(map[string]uuid.UUID, len(equipmentNames))
	for _, name := range equipmentNames {
		id, err := svc.catalog.SaveEquipment(ctx, name)
		if err != nil {
			return fmt.Errorf("save equipment %q: %w", name, err)
		}
		equipmentByName[name] = id
	}

	targetByName := make(map[string]uuid.UUID, len(targetNames))
	for _, name := range targetNames {
		id, err := svc.catalog.SaveTarget(ctx, name)
		if err != nil {
			return fmt.Errorf("save target %q: %w", name, err)
		}
		targetByName[name] = id
	}

	for _, ex := range providerExercises {
		equipmentID, ok := equipmentByName[ex.Equipment]
		if !ok {
			return fmt.Errorf("exercise %q references unknown equipment %q", ex.Name, ex.Equipment)
		}
		targetID, ok := targetByName[ex.Target]
		if !ok {
			return fmt.Errorf("exercise %q references unknown target %q", ex.Name, ex.Target)
		}

		if _, err := svc.exercises.Save(ctx, ex.Name, ex.GifURL, models.Instructions(ex.Instructions), equipmentID, targetID); err != nil {
			return fmt.Errorf("save exercise %q: %w", ex.Name, err)
		}
	}

	logger.Log.Infow("seed import complete",
		"equipment", len(equipmentNames),
		"targets", len(targetNames),
		"exercises", len(providerExercises),
	)

	return nil
}

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
	ErrUnauthorized    = errors.New("unauthorized")
	ErrUnknownExercise = errors.New("exercise does not exist")
)

// ExerciseChecker verifies that an exercise exists.
type ExerciseChecker interface {
	Exists(ctx context.Context, exerciseID uuid.UUID) (bool, error)
}

// BlockWriter records blocked exercises.
type BlockWriter interface {
	SaveBlockedExercise(ctx context.Context, userID, exerciseID uuid.UUID) error
}

// BlockService lets a user exclude an exercise from their results.
type BlockService struct {
	exercises ExerciseChecker
	writer    BlockWriter
	events    EventPublisher
}

// NewBlockService creates a new BlockService instance.
func NewBlockService(exercises ExerciseChecker, writer BlockWriter, events EventPublisher) *BlockService {
	return &BlockService{
		exercises: exercises,
		writer:    writer,
		events:    events,
	}
}

// Block records a blocked exercise for the caller's own account. Callers can
// only block on their own behalf; blocking an already-blocked exercise
// succeeds without change.
func (svc *BlockService) Block(ctx context.Context, callerID, userID, exerciseID uuid.UUID) error {
	if callerID != userID {
		logger.Log.Infow("block rejected: identity mismatch", "caller_id", callerID, "user_id", userID)
		return ErrUnauthorized
	}

	exists, err := svc.exercises.Exists(ctx, exerciseID)
	if err != nil {
		logger.Log.Errorw("failed to check exercise", "err", err)
		return err
	}
	if !exists {
		return ErrUnknownExercise
	}

	if err := svc.writer.SaveBlockedExercise(ctx, callerID, exerciseID); err != nil {
		logger.Log.Errorw("failed to save blocked exercise", "err", err)
		return err
	}

	svc.events.Publish(ctx, callerID, models.ActionExerciseBlocked, exerciseID.String())

	return nil
}

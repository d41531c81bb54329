package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/reginayiwang/movement-breaks/internal/logger"
	"github.com/reginayiwang/movement-breaks/internal/middlewares"
	"github.com/reginayiwang/movement-breaks/internal/models"
)

// ExerciseSelector computes the filtered exercise list for a caller.
type ExerciseSelector interface {
	Select(ctx context.Context, userID *uuid.UUID) (bool, []models.ExerciseView, error)
}

// ExercisesResponse represents the exercise suggestion list
// swagger:model ExercisesResponse
type ExercisesResponse struct {
	// False when the caller's preferences matched nothing and the
	// body-weight default set is shown instead
	ExercisesFound bool `json:"exercises_found"`

	// Suggested exercises
	Exercises []models.ExerciseView `json:"exercises"`
}

// NewExercisesHandler returns an HTTP handler for exercise suggestions.
// @Summary Exercise suggestions
// @Description Returns exercises filtered by the caller's equipment/target preferences and blocks; anonymous callers get the body-weight set
// @Tags exercises
// @Produce json
// @Success 200 {object} handlers.ExercisesResponse "Exercise list"
// @Router /exercises [get]
func NewExercisesHandler(svc ExerciseSelector) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var caller *uuid.UUID
		if userID, ok := middlewares.GetUserIDFromContext(r.Context()); ok {
			caller = &userID
		}

		found, exercises, err := svc.Select(r.Context(), caller)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ExercisesResponse{
			ExercisesFound: found,
			Exercises:      exercises,
		})
	}
}

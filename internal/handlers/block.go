package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/reginayiwang/movement-breaks/internal/logger"
	"github.com/reginayiwang/movement-breaks/internal/middlewares"
	"github.com/reginayiwang/movement-breaks/internal/services"
)

// Blocker defines the interface that the block service must implement.
type Blocker interface {
	Block(ctx context.Context, callerID, userID, exerciseID uuid.UUID) error
}

// BlockRequest represents the JSON body for blocking an exercise
// swagger:model BlockRequest
type BlockRequest struct {
	// Exercise to block
	// required: true
	ExerciseID uuid.UUID `json:"exercise_id"`
}

// BlockResponse represents a successful block response
// swagger:model BlockResponse
type BlockResponse struct {
	// Success message
	// example: Blocked exercise
	Message string `json:"message"`
}

// BlockErrorResponse represents an error response for blocking
// swagger:model BlockErrorResponse
type BlockErrorResponse struct {
	// Error message
	// example: Unauthorized
	Error string `json:"error"`
}

// NewBlockHandler returns an HTTP handler that blocks an exercise for a user.
// The path user id must match the caller's session identity. Blocking an
// already-blocked exercise succeeds.
// @Summary Block an exercise
// @Description Excludes an exercise from the user's suggestions permanently
// @Tags exercises
// @Accept json
// @Produce json
// @Param id path string true "User id (must equal the caller)"
// @Param blockRequest body handlers.BlockRequest true "Exercise to block"
// @Success 201 {object} handlers.BlockResponse "Exercise blocked"
// @Failure 400 {object} handlers.BlockErrorResponse "Invalid request"
// @Failure 401 {object} handlers.BlockErrorResponse "Anonymous caller or identity mismatch"
// @Router /users/{id}/block [post]
func NewBlockHandler(svc Blocker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(BlockErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		userID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(BlockErrorResponse{
				Error: "Invalid user id",
			})
			return
		}

		var req BlockRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ExerciseID == uuid.Nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(BlockErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		if err := svc.Block(r.Context(), callerID, userID, req.ExerciseID); err != nil {
			switch {
			case errors.Is(err, services.ErrUnauthorized):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(BlockErrorResponse{
					Error: "Unauthorized",
				})
			case errors.Is(err, services.ErrUnknownExercise):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(BlockErrorResponse{
					Error: "Unknown exercise id",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(BlockErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(BlockResponse{
			Message: "Blocked exercise",
		})
	}
}

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

// Default timer intervals for anonymous callers, minutes.
const (
	defaultWorkLength  = 60
	defaultBreakLength = 5
)

// UserProfileGetter resolves a user id to its account, nil when it does not
// exist.
type UserProfileGetter interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// TimerResponse represents the timer view
// swagger:model TimerResponse
type TimerResponse struct {
	// Username of the authenticated caller, omitted for anonymous callers
	Username string `json:"username,omitempty"`

	// Work interval in minutes
	// example: 60
	WorkLength int `json:"work_length"`

	// Break interval in minutes
	// example: 5
	BreakLength int `json:"break_length"`
}

// NewTimerHandler returns an HTTP handler for the timer view. Authenticated
// callers get their stored intervals; anonymous callers get the defaults.
// @Summary Timer view
// @Description Returns the work/break timer configuration, personalized when a session is present
// @Tags timer
// @Produce json
// @Success 200 {object} handlers.TimerResponse "Timer configuration"
// @Router / [get]
func NewTimerHandler(users UserProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := TimerResponse{
			WorkLength:  defaultWorkLength,
			BreakLength: defaultBreakLength,
		}

		if userID, ok := middlewares.GetUserIDFromContext(r.Context()); ok {
			user, err := users.GetByID(r.Context(), userID)
			if err != nil {
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if user != nil {
				resp.Username = user.Username
				resp.WorkLength = user.WorkLength
				resp.BreakLength = user.BreakLength
			}
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}

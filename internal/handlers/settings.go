package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/reginayiwang/movement-breaks/internal/logger"
	"github.com/reginayiwang/movement-breaks/internal/middlewares"
	"github.com/reginayiwang/movement-breaks/internal/services"
)

// SettingsGetter reads a user's current settings.
type SettingsGetter interface {
	Get(ctx context.Context, userID uuid.UUID) (*services.Settings, error)
}

// SettingsUpdater applies a partial settings change.
type SettingsUpdater interface {
	Update(ctx context.Context, userID uuid.UUID, upd services.SettingsUpdate) (*services.Settings, error)
}

// SettingsRequest represents the JSON body for a settings update. Absent
// fields are left untouched; provided id lists replace the stored sets
// wholesale.
// swagger:model SettingsRequest
type SettingsRequest struct {
	// Work interval in minutes
	// example: 45
	WorkLength *int `json:"work_length"`

	// Break interval in minutes
	// example: 10
	BreakLength *int `json:"break_length"`

	// Allowed equipment ids (full replace)
	EquipmentIDs *[]uuid.UUID `json:"equipment_ids"`

	// Desired target ids (full replace)
	TargetIDs *[]uuid.UUID `json:"target_ids"`
}

// SettingsResponse represents a user's settings
// swagger:model SettingsResponse
type SettingsResponse struct {
	// Work interval in minutes
	// example: 60
	WorkLength int `json:"work_length"`

	// Break interval in minutes
	// example: 5
	BreakLength int `json:"break_length"`

	// Allowed equipment ids
	EquipmentIDs []uuid.UUID `json:"equipment_ids"`

	// Desired target ids
	TargetIDs []uuid.UUID `json:"target_ids"`
}

// SettingsErrorResponse represents an error response for settings
// swagger:model SettingsErrorResponse
type SettingsErrorResponse struct {
	// Error message
	// example: Unknown equipment id
	Error string `json:"error"`
}

func settingsResponse(s *services.Settings) SettingsResponse {
	resp := SettingsResponse{
		WorkLength:   s.WorkLength,
		BreakLength:  s.BreakLength,
		EquipmentIDs: s.EquipmentIDs,
		TargetIDs:    s.TargetIDs,
	}
	if resp.EquipmentIDs == nil {
		resp.EquipmentIDs = []uuid.UUID{}
	}
	if resp.TargetIDs == nil {
		resp.TargetIDs = []uuid.UUID{}
	}
	return resp
}

// NewGetSettingsHandler returns an HTTP handler that reads the caller's
// current settings.
// @Summary Current settings
// @Description Returns the caller's timer intervals and preference sets
// @Tags settings
// @Produce json
// @Success 200 {object} handlers.SettingsResponse "Current settings"
// @Failure 401 "Missing or invalid session"
// @Router /settings [get]
func NewGetSettingsHandler(svc SettingsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		settings, err := svc.Get(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(settingsResponse(settings))
	}
}

// NewUpdateSettingsHandler returns an HTTP handler that applies a settings
// update for the caller.
// @Summary Update settings
// @Description Updates timer intervals and replaces preference sets wholesale; absent fields are untouched
// @Tags settings
// @Accept json
// @Produce json
// @Param settingsRequest body handlers.SettingsRequest true "Settings update"
// @Success 200 {object} handlers.SettingsResponse "Applied settings"
// @Failure 400 {object} handlers.SettingsErrorResponse "Validation failure"
// @Failure 401 "Missing or invalid session"
// @Router /settings [post]
func NewUpdateSettingsHandler(svc SettingsUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req SettingsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SettingsErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		settings, err := svc.Update(r.Context(), userID, services.SettingsUpdate{
			WorkLength:   req.WorkLength,
			BreakLength:  req.BreakLength,
			EquipmentIDs: req.EquipmentIDs,
			TargetIDs:    req.TargetIDs,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidLength):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SettingsErrorResponse{
					Error: "Work and break lengths must be positive",
				})
			case errors.Is(err, services.ErrUnknownEquipment):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SettingsErrorResponse{
					Error: "Unknown equipment id",
				})
			case errors.Is(err, services.ErrUnknownTarget):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SettingsErrorResponse{
					Error: "Unknown target id",
				})
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusUnauthorized)
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(SettingsErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(settingsResponse(settings))
	}
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/reginayiwang/movement-breaks/internal/jwt"
	"github.com/reginayiwang/movement-breaks/internal/logger"
)

// Logouter defines the interface that the logout service must implement.
type Logouter interface {
	Logout(ctx context.Context, tokenString string) error
}

// TokenExtractor pulls the session token out of a request.
type TokenExtractor interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// LogoutResponse represents a successful logout response
// swagger:model LogoutResponse
type LogoutResponse struct {
	// Success message
	// example: Logged out
	Message string `json:"message"`
}

// NewLogoutHandler returns an HTTP handler that destroys the caller's
// session. The route sits behind the auth middleware, so the token is
// present and valid by the time this runs.
// @Summary Log out
// @Description Destroys the server-side session and expires the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.LogoutResponse "Session destroyed"
// @Failure 401 "Missing or invalid session"
// @Router /logout [get]
func NewLogoutHandler(svc Logouter, tokens TokenExtractor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := tokens.GetTokenFromRequest(r.Context(), r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		if err := svc.Logout(r.Context(), tokenString); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		// Expire the cookie
		http.SetCookie(w, &http.Cookie{
			Name:     jwt.CookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LogoutResponse{
			Message: "Logged out",
		})
	}
}

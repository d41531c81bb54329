package middlewares

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/reginayiwang/movement-breaks/internal/jwt"
	"github.com/reginayiwang/movement-breaks/internal/logger"
)

// Tokener extracts and decodes session tokens from requests.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// SessionReader resolves a session id to the user id it is bound to.
// uuid.Nil means the binding no longer exists.
type SessionReader interface {
	Get(ctx context.Context, sessionID uuid.UUID) (uuid.UUID, error)
}

// userIDKey is an unexported type for the authenticated-user context key.
type userIDKey struct{}

var userKey = userIDKey{}

// SetUserIDToContext stores the authenticated user id in the context.
func SetUserIDToContext(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userKey, userID)
}

// GetUserIDFromContext returns the authenticated user id and whether one is
// present. Handlers receive identity as an explicit context input rather
// than reading ambient session state.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userKey).(uuid.UUID)
	return userID, ok
}

// resolveUserID authenticates a request: token present, claims valid, and the
// server-side session binding still current for the claimed user.
func resolveUserID(tokener Tokener, sessions SessionReader, r *http.Request) (uuid.UUID, error) {
	ctx := r.Context()

	tokenString, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		return uuid.Nil, err
	}

	claims, err := tokener.GetClaims(ctx, tokenString)
	if err != nil {
		return uuid.Nil, err
	}

	boundUserID, err := sessions.Get(ctx, claims.SessionID)
	if err != nil {
		return uuid.Nil, err
	}
	if boundUserID == uuid.Nil || boundUserID != claims.UserID {
		return uuid.Nil, errSessionRevoked
	}

	return claims.UserID, nil
}

var errSessionRevoked = &sessionError{"session expired or revoked"}

type sessionError struct{ msg string }

func (e *sessionError) Error() string { return e.msg }

// AuthMiddleware returns a middleware that requires an authenticated caller
// and rejects everything else with 401.
func AuthMiddleware(tokener Tokener, sessions SessionReader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := resolveUserID(tokener, sessions, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(SetUserIDToContext(r.Context(), userID)))
		})
	}
}

// OptionalAuthMiddleware resolves the caller identity when a valid session is
// presented and continues anonymously otherwise.
func OptionalAuthMiddleware(tokener Tokener, sessions SessionReader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, err := resolveUserID(tokener, sessions, r)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(SetUserIDToContext(r.Context(), userID)))
		})
	}
}

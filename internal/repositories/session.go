package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/reginayiwang/movement-breaks/internal/logger"
)

// SessionRepository stores session-id to user-id bindings in Redis. A token
// is only honored while its binding exists; logout deletes it.
type SessionRepository struct {
	client *redis.Client
	exp    time.Duration // session lifetime
}

// NewSessionRepository creates a session repository with the given lifetime.
func NewSessionRepository(client *redis.Client, expiration time.Duration) *SessionRepository {
	return &SessionRepository{
		client: client,
		exp:    expiration,
	}
}

func sessionKey(sessionID uuid.UUID) string {
	return fmt.Sprintf("session:%s", sessionID)
}

// Save binds a session id to a user id.
func (r *SessionRepository) Save(ctx context.Context, sessionID, userID uuid.UUID) error {
	key := sessionKey(sessionID)
	err := r.client.Set(ctx, key, userID.String(), r.exp).Err()

	logger.Log.Infow("session save",
		"key", key,
		"user_id", userID,
		"error", err,
	)

	return err
}

// Get returns the user id bound to a session id, or uuid.Nil when the
// binding does not exist (expired or logged out).
func (r *SessionRepository) Get(ctx context.Context, sessionID uuid.UUID) (uuid.UUID, error) {
	key := sessionKey(sessionID)

	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		logger.Log.Infow("session miss", "key", key)
		return uuid.Nil, nil
	}
	if err != nil {
		logger.Log.Errorw("session get failed", "key", key, "error", err)
		return uuid.Nil, err
	}

	userID, err := uuid.Parse(val)
	if err != nil {
		logger.Log.Errorw("session value corrupt", "key", key, "value", val, "error", err)
		return uuid.Nil, err
	}

	return userID, nil
}

// Delete removes a session binding.
func (r *SessionRepository) Delete(ctx context.Context, sessionID uuid.UUID) error {
	key := sessionKey(sessionID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow("session delete",
		"key", key,
		"error", err,
	)

	return err
}

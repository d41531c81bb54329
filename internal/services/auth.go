package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/reginayiwang/movement-breaks/internal/jwt"
	"github.com/reginayiwang/movement-breaks/internal/logger"
	"github.com/reginayiwang/movement-breaks/internal/models"
	"github.com/reginayiwang/movement-breaks/internal/repositories"
)

// Error variables
var (
	ErrFieldRequired      = errors.New("username and password are required")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// dummyHash is compared against when the username does not resolve, so the
// unknown-user and wrong-password paths cost the same.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, passwordHash string) (uuid.UUID, error)
}

// SessionWriter manages server-side session bindings.
type SessionWriter interface {
	Save(ctx context.Context, sessionID, userID uuid.UUID) error
	Delete(ctx context.Context, sessionID uuid.UUID) error
}

// Tokener generates and decodes session tokens.
type Tokener interface {
	Generate(ctx context.Context, userID, sessionID uuid.UUID) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AuthService handles registration, login, and logout.
type AuthService struct {
	reader     UserReader
	writer     UserWriter
	sessions   SessionWriter
	tokens     Tokener
	events     EventPublisher
	bcryptCost int
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, sessions SessionWriter, tokens Tokener, events EventPublisher, bcryptCost int) *AuthService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		reader:     reader,
		writer:     writer,
		sessions:   sessions,
		tokens:     tokens,
		events:     events,
		bcryptCost: bcryptCost,
	}
}

// issueSession binds a fresh session id to the user and returns the signed
// session token.
func (svc *AuthService) issueSession(ctx context.Context, userID uuid.UUID) (string, error) {
	sessionID := uuid.New()

	if err := svc.sessions.Save(ctx, sessionID, userID); err != nil {
		logger.Log.Errorw("failed to save session", "err", err)
		return "", err
	}

	token, err := svc.tokens.Generate(ctx, userID, sessionID)
	if err != nil {
		logger.Log.Errorw("failed to generate session token", "err", err)
		return "", err
	}

	return token, nil
}

// Register creates a new user and establishes a session for it. Username
// uniqueness is arbitrated by the store's constraint, not a pre-check, so a
// concurrent registration of the same name surfaces as ErrUsernameTaken
// rather than a crash.
func (svc *AuthService) Register(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", ErrFieldRequired
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), svc.bcryptCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", err
	}

	userID, err := svc.writer.Save(ctx, username, string(hashedPassword))
	if err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			logger.Log.Infow("username already taken", "username", username)
			return "", ErrUsernameTaken
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return "", err
	}

	svc.events.Publish(ctx, userID, models.ActionUserRegistered, "")

	return svc.issueSession(ctx, userID)
}

// Login authenticates a user and establishes a session. Unknown usernames
// and wrong passwords both return ErrInvalidCredentials.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	return svc.issueSession(ctx, user.UserID)
}

// Logout destroys the server-side session binding carried by the token.
func (svc *AuthService) Logout(ctx context.Context, tokenString string) error {
	claims, err := svc.tokens.GetClaims(ctx, tokenString)
	if err != nil {
		return ErrInvalidCredentials
	}

	if err := svc.sessions.Delete(ctx, claims.SessionID); err != nil {
		logger.Log.Errorw("failed to delete session", "err", err)
		return err
	}

	return nil
}

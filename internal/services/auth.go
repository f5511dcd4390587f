package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/soulsync/internal/jwt"
	"github.com/sbilibin2017/soulsync/internal/logger"
	"github.com/sbilibin2017/soulsync/internal/models"
	"github.com/sbilibin2017/soulsync/internal/password"
	"github.com/sbilibin2017/soulsync/internal/repositories"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, passwordHash string) (*models.UserDB, error)
}

// SessionStore keeps the single active refresh token of a user.
type SessionStore interface {
	StoreRefreshToken(ctx context.Context, userID uuid.UUID, token string) error
	ValidateRefreshToken(ctx context.Context, userID uuid.UUID, token string) (bool, error)
	RotateRefreshToken(ctx context.Context, userID uuid.UUID, oldToken, newToken string) (bool, error)
}

// TokenIssuer issues and verifies signed tokens.
type TokenIssuer interface {
	GenerateAccess(ctx context.Context, userID uuid.UUID, username string) (string, error)
	GenerateRefresh(ctx context.Context, userID uuid.UUID, username string) (string, error)
	GetClaims(ctx context.Context, token string) (*jwt.Claims, error)
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hash string) bool
}

// AuthService handles registration, login, token refresh and identity resolution.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	sessions SessionStore
	tokens   TokenIssuer
	hasher   PasswordHasher
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(
	reader UserReader,
	writer UserWriter,
	sessions SessionStore,
	tokens TokenIssuer,
	hasher PasswordHasher,
) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		sessions: sessions,
		tokens:   tokens,
		hasher:   hasher,
	}
}

// Register creates a new active user.
func (svc *AuthService) Register(ctx context.Context, username, plaintext string) (*models.UserDB, error) {
	username = strings.TrimSpace(username)
	if username == "" || plaintext == "" {
		return nil, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}
	if err := checkText("username", username, MaxUsernameLength); err != nil {
		return nil, err
	}

	existing, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Infow("user already exists", "username", username)
		return nil, ErrUserAlreadyExists
	}

	hash, err := svc.hasher.Hash(plaintext)
	if err != nil {
		if errors.Is(err, password.ErrPasswordTooLong) {
			return nil, fmt.Errorf("%w: password is too long", ErrInvalidInput)
		}
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	user, err := svc.writer.Save(ctx, username, hash)
	if err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			logger.Log.Infow("user already exists", "username", username)
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, rejectedValue(err)
	}

	return user, nil
}

// Login verifies credentials and returns a new token pair.
// The refresh token replaces any previously stored one.
func (svc *AuthService) Login(ctx context.Context, username, plaintext string) (*models.TokenPair, error) {
	// such a name cannot have been registered
	if checkText("username", username, MaxUsernameLength) != nil {
		logger.Log.Infow("invalid credentials", "username", username)
		return nil, ErrInvalidCredentials
	}

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	// unknown users and wrong passwords look the same to the caller
	if user == nil || !svc.hasher.Verify(plaintext, user.PasswordHash) {
		logger.Log.Infow("invalid credentials", "username", username)
		return nil, ErrInvalidCredentials
	}

	pair, err := svc.issuePair(ctx, user)
	if err != nil {
		return nil, err
	}

	if err := svc.sessions.StoreRefreshToken(ctx, user.UserID, pair.RefreshToken); err != nil {
		logger.Log.Errorw("failed to store refresh token", "err", err)
		return nil, err
	}

	return pair, nil
}

// Refresh exchanges a refresh token for a new pair. The presented token stops
// being valid as soon as the exchange succeeds.
func (svc *AuthService) Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	claims, err := svc.tokens.GetClaims(ctx, refreshToken)
	if err != nil {
		logger.Log.Infow("refresh token rejected", "err", err)
		return nil, ErrInvalidToken
	}
	if claims.Type == jwt.AccessToken {
		logger.Log.Infow("access token presented for refresh", "user_id", claims.UserID)
		return nil, ErrInvalidToken
	}

	user, err := svc.reader.GetByID(ctx, claims.UserID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Infow("refresh token for unknown user", "user_id", claims.UserID)
		return nil, ErrInvalidToken
	}

	ok, err := svc.sessions.ValidateRefreshToken(ctx, user.UserID, refreshToken)
	if err != nil {
		logger.Log.Errorw("failed to validate refresh token", "err", err)
		return nil, err
	}
	if !ok {
		logger.Log.Infow("refresh token does not match stored token", "user_id", user.UserID)
		return nil, ErrInvalidToken
	}

	pair, err := svc.issuePair(ctx, user)
	if err != nil {
		return nil, err
	}

	rotated, err := svc.sessions.RotateRefreshToken(ctx, user.UserID, refreshToken, pair.RefreshToken)
	if err != nil {
		logger.Log.Errorw("failed to rotate refresh token", "err", err)
		return nil, err
	}
	if !rotated {
		// a concurrent refresh won the swap
		logger.Log.Infow("refresh token already rotated", "user_id", user.UserID)
		return nil, ErrInvalidToken
	}

	return pair, nil
}

// ResolveCurrentUser returns the user an access token was issued to.
func (svc *AuthService) ResolveCurrentUser(ctx context.Context, accessToken string) (*models.UserDB, error) {
	claims, err := svc.tokens.GetClaims(ctx, accessToken)
	if err != nil {
		logger.Log.Infow("access token rejected", "err", err)
		return nil, ErrInvalidToken
	}
	if claims.Type == jwt.RefreshToken {
		logger.Log.Infow("refresh token presented as access token", "user_id", claims.UserID)
		return nil, ErrInvalidToken
	}

	user, err := svc.reader.GetByID(ctx, claims.UserID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}
	if user == nil {
		logger.Log.Infow("token for unknown user", "user_id", claims.UserID)
		return nil, ErrInvalidToken
	}
	if !user.IsActive {
		return nil, ErrInactiveUser
	}

	return user, nil
}

func (svc *AuthService) issuePair(ctx context.Context, user *models.UserDB) (*models.TokenPair, error) {
	access, err := svc.tokens.GenerateAccess(ctx, user.UserID, user.Username)
	if err != nil {
		logger.Log.Errorw("failed to generate access token", "err", err)
		return nil, err
	}
	refresh, err := svc.tokens.GenerateRefresh(ctx, user.UserID, user.Username)
	if err != nil {
		logger.Log.Errorw("failed to generate refresh token", "err", err)
		return nil, err
	}

	return &models.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "bearer",
	}, nil
}

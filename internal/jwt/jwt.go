package jwt

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned for every token that fails verification:
// bad signature, expiry, wrong algorithm, or missing claims.
var ErrInvalidToken = errors.New("invalid token")

// TokenType distinguishes access tokens from refresh tokens.
type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

// Claims is the verified payload of a token.
type Claims struct {
	Username string
	UserID   uuid.UUID
	Type     TokenType
}

type tokenClaims struct {
	UserID    string    `json:"user_id"`
	TokenType TokenType `json:"token_type,omitempty"`
	jwt.RegisteredClaims
}

// JWT provides methods to generate and validate HS256 tokens.
type JWT struct {
	SecretKey string        // Secret key for signing tokens
	Exp       time.Duration // Access token lifetime
}

// New creates a new JWT instance
func New(secretKey string, expiration time.Duration) *JWT {
	return &JWT{
		SecretKey: secretKey,
		Exp:       expiration,
	}
}

// GenerateAccess creates a signed access token that expires after j.Exp.
func (j *JWT) GenerateAccess(ctx context.Context, userID uuid.UUID, username string) (string, error) {
	exp := time.Now().Add(j.Exp)
	return j.sign(userID, username, AccessToken, &exp)
}

// GenerateRefresh creates a signed refresh token with no expiry.
// Revocation happens by overwriting the stored token for the user.
func (j *JWT) GenerateRefresh(ctx context.Context, userID uuid.UUID, username string) (string, error) {
	return j.sign(userID, username, RefreshToken, nil)
}

func (j *JWT) sign(userID uuid.UUID, username string, typ TokenType, exp *time.Time) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		UserID:    userID.String(),
		TokenType: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  username,
			IssuedAt: jwt.NewNumericDate(now),
			ID:       uuid.NewString(),
		},
	}
	if exp != nil {
		claims.ExpiresAt = jwt.NewNumericDate(*exp)
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.SecretKey))
}

// GetClaims verifies tokenString and returns its claims.
// Every failure wraps ErrInvalidToken.
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	var tc tokenClaims
	token, err := jwt.ParseWithClaims(tokenString, &tc, func(token *jwt.Token) (interface{}, error) {
		return []byte(j.SecretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	if tc.Subject == "" || tc.UserID == "" {
		return nil, fmt.Errorf("%w: missing subject or user_id", ErrInvalidToken)
	}
	userID, err := uuid.Parse(tc.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user_id format", ErrInvalidToken)
	}

	return &Claims{
		Username: tc.Subject,
		UserID:   userID,
		Type:     tc.TokenType,
	}, nil
}

// GetTokenFromRequest extracts the token string from the Authorization header
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}

package jwt

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_AccessRoundTrip(t *testing.T) {
	j := New("test-secret", time.Minute)
	userID := uuid.New()
	ctx := context.Background()

	token, err := j.GenerateAccess(ctx, userID, "alice")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := j.GetClaims(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, AccessToken, claims.Type)
}

func TestJWT_RefreshHasNoExpiry(t *testing.T) {
	j := New("test-secret", -time.Minute)
	userID := uuid.New()
	ctx := context.Background()

	token, err := j.GenerateRefresh(ctx, userID, "alice")
	require.NoError(t, err)

	claims, err := j.GetClaims(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, RefreshToken, claims.Type)

	parsed, _, err := jwt.NewParser().ParseUnverified(token, &tokenClaims{})
	require.NoError(t, err)
	assert.Nil(t, parsed.Claims.(*tokenClaims).ExpiresAt)
}

func TestJWT_TokensAreUnique(t *testing.T) {
	j := New("test-secret", time.Minute)
	userID := uuid.New()
	ctx := context.Background()

	first, err := j.GenerateRefresh(ctx, userID, "alice")
	require.NoError(t, err)
	second, err := j.GenerateRefresh(ctx, userID, "alice")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New("test-secret", -time.Minute)

	token, err := j.GenerateAccess(context.Background(), uuid.New(), "alice")
	require.NoError(t, err)

	claims, err := j.GetClaims(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestJWT_WrongSecret(t *testing.T) {
	token, err := New("secret-a", time.Minute).GenerateAccess(context.Background(), uuid.New(), "alice")
	require.NoError(t, err)

	_, err = New("secret-b", time.Minute).GetClaims(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_MissingClaims(t *testing.T) {
	secret := "test-secret"
	j := New(secret, time.Minute)

	tests := []struct {
		name   string
		claims jwt.MapClaims
	}{
		{"missing subject", jwt.MapClaims{"user_id": uuid.NewString()}},
		{"missing user_id", jwt.MapClaims{"sub": "alice"}},
		{"malformed user_id", jwt.MapClaims{"sub": "alice", "user_id": "not-a-uuid"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, tt.claims).SignedString([]byte(secret))
			require.NoError(t, err)

			claims, err := j.GetClaims(context.Background(), token)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}

func TestJWT_RejectsOtherAlgorithms(t *testing.T) {
	secret := "test-secret"
	j := New(secret, time.Minute)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"sub":     "alice",
		"user_id": uuid.NewString(),
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = j.GetClaims(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_Garbage(t *testing.T) {
	j := New("secret", time.Minute)

	claims, err := j.GetClaims(context.Background(), "invalid.token.string")
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New("secret", time.Minute)
	ctx := context.Background()

	tests := []struct {
		name          string
		header        string
		expectedToken string
		expectError   bool
	}{
		{"ValidBearer", "Bearer mytoken123", "mytoken123", false},
		{"LowercaseBearer", "bearer mytoken123", "mytoken123", false},
		{"NoHeader", "", "", true},
		{"InvalidFormat", "Token mytoken123", "", true},
		{"ExtraParts", "Bearer a b", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(ctx, req)
			if tt.expectError {
				assert.Error(t, err)
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedToken, token)
			}
		})
	}
}

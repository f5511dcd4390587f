package services_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/soulsync/internal/jwt"
	"github.com/sbilibin2017/soulsync/internal/models"
	"github.com/sbilibin2017/soulsync/internal/password"
	"github.com/sbilibin2017/soulsync/internal/repositories"
	"github.com/sbilibin2017/soulsync/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authMocks struct {
	reader   *services.MockUserReader
	writer   *services.MockUserWriter
	sessions *services.MockSessionStore
	tokens   *services.MockTokenIssuer
	hasher   *services.MockPasswordHasher
}

func newAuthService(t *testing.T) (*services.AuthService, authMocks) {
	ctrl := gomock.NewController(t)
	m := authMocks{
		reader:   services.NewMockUserReader(ctrl),
		writer:   services.NewMockUserWriter(ctrl),
		sessions: services.NewMockSessionStore(ctrl),
		tokens:   services.NewMockTokenIssuer(ctrl),
		hasher:   services.NewMockPasswordHasher(ctrl),
	}
	return services.NewAuthService(m.reader, m.writer, m.sessions, m.tokens, m.hasher), m
}

func TestAuthService_Register(t *testing.T) {
	userID := uuid.New()
	dbErr := errors.New("db error")

	tests := []struct {
		name     string
		username string
		password string
		setup    func(m authMocks)
		wantErr  error
	}{
		{
			name:     "successful registration",
			username: "alice",
			password: "pw123",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
				m.hasher.EXPECT().Hash("pw123").Return("hashed", nil)
				m.writer.EXPECT().Save(gomock.Any(), "alice", "hashed").
					Return(&models.UserDB{UserID: userID, Username: "alice", IsActive: true}, nil)
			},
		},
		{
			name:     "username is trimmed",
			username: "  alice ",
			password: "pw123",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
				m.hasher.EXPECT().Hash("pw123").Return("hashed", nil)
				m.writer.EXPECT().Save(gomock.Any(), "alice", "hashed").
					Return(&models.UserDB{UserID: userID, Username: "alice", IsActive: true}, nil)
			},
		},
		{
			name:     "empty username",
			username: " ",
			password: "pw123",
			setup:    func(m authMocks) {},
			wantErr:  services.ErrInvalidInput,
		},
		{
			name:     "empty password",
			username: "alice",
			setup:    func(m authMocks) {},
			wantErr:  services.ErrInvalidInput,
		},
		{
			name:     "user already exists",
			username: "bob",
			password: "pw123",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "bob").Return(&models.UserDB{UserID: uuid.New()}, nil)
			},
			wantErr: services.ErrUserAlreadyExists,
		},
		{
			name:     "unique constraint wins a race",
			username: "bob",
			password: "pw123",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "bob").Return(nil, nil)
				m.hasher.EXPECT().Hash("pw123").Return("hashed", nil)
				m.writer.EXPECT().Save(gomock.Any(), "bob", "hashed").Return(nil, repositories.ErrConflict)
			},
			wantErr: services.ErrUserAlreadyExists,
		},
		{
			name:     "password too long",
			username: "carol",
			password: "pw",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "carol").Return(nil, nil)
				m.hasher.EXPECT().Hash("pw").Return("", password.ErrPasswordTooLong)
			},
			wantErr: services.ErrInvalidInput,
		},
		{
			name:     "username too long",
			username: strings.Repeat("a", services.MaxUsernameLength+1),
			password: "pw123",
			setup:    func(m authMocks) {},
			wantErr:  services.ErrInvalidInput,
		},
		{
			name:     "username not utf-8",
			username: "\xff\xfe",
			password: "pw123",
			setup:    func(m authMocks) {},
			wantErr:  services.ErrInvalidInput,
		},
		{
			name:     "username rejected by the store",
			username: "frank",
			password: "pw123",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "frank").Return(nil, nil)
				m.hasher.EXPECT().Hash("pw123").Return("hashed", nil)
				m.writer.EXPECT().Save(gomock.Any(), "frank", "hashed").
					Return(nil, fmt.Errorf("%w: value too long", repositories.ErrInvalidValue))
			},
			wantErr: services.ErrInvalidInput,
		},
		{
			name:     "reader error",
			username: "eve",
			password: "pw123",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "eve").Return(nil, dbErr)
			},
			wantErr: dbErr,
		},
		{
			name:     "writer error",
			username: "dan",
			password: "pw123",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "dan").Return(nil, nil)
				m.hasher.EXPECT().Hash("pw123").Return("hashed", nil)
				m.writer.EXPECT().Save(gomock.Any(), "dan", "hashed").Return(nil, dbErr)
			},
			wantErr: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t)
			tt.setup(m)

			user, err := svc.Register(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, userID, user.UserID)
			assert.Equal(t, "alice", user.Username)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	userID := uuid.New()
	user := &models.UserDB{UserID: userID, Username: "alice", PasswordHash: "hashed", IsActive: true}
	dbErr := errors.New("db error")

	tests := []struct {
		name    string
		setup   func(m authMocks)
		wantErr error
	}{
		{
			name: "successful login",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(user, nil)
				m.hasher.EXPECT().Verify("pw123", "hashed").Return(true)
				m.tokens.EXPECT().GenerateAccess(gomock.Any(), userID, "alice").Return("access", nil)
				m.tokens.EXPECT().GenerateRefresh(gomock.Any(), userID, "alice").Return("refresh", nil)
				m.sessions.EXPECT().StoreRefreshToken(gomock.Any(), userID, "refresh").Return(nil)
			},
		},
		{
			name: "unknown user",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, nil)
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name: "wrong password",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(user, nil)
				m.hasher.EXPECT().Verify("pw123", "hashed").Return(false)
			},
			wantErr: services.ErrInvalidCredentials,
		},
		{
			name: "reader error",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(nil, dbErr)
			},
			wantErr: dbErr,
		},
		{
			name: "token error",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(user, nil)
				m.hasher.EXPECT().Verify("pw123", "hashed").Return(true)
				m.tokens.EXPECT().GenerateAccess(gomock.Any(), userID, "alice").Return("", errors.New("sign"))
			},
			wantErr: errors.New("sign"),
		},
		{
			name: "session store error",
			setup: func(m authMocks) {
				m.reader.EXPECT().GetByUsername(gomock.Any(), "alice").Return(user, nil)
				m.hasher.EXPECT().Verify("pw123", "hashed").Return(true)
				m.tokens.EXPECT().GenerateAccess(gomock.Any(), userID, "alice").Return("access", nil)
				m.tokens.EXPECT().GenerateRefresh(gomock.Any(), userID, "alice").Return("refresh", nil)
				m.sessions.EXPECT().StoreRefreshToken(gomock.Any(), userID, "refresh").Return(dbErr)
			},
			wantErr: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t)
			tt.setup(m)

			pair, err := svc.Login(context.Background(), "alice", "pw123")
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, pair)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, &models.TokenPair{AccessToken: "access", RefreshToken: "refresh", TokenType: "bearer"}, pair)
		})
	}
}

func TestAuthService_LoginUnstorableUsername(t *testing.T) {
	for _, name := range []string{strings.Repeat("a", services.MaxUsernameLength+1), "ali\x00ce", "\xff"} {
		svc, _ := newAuthService(t)

		pair, err := svc.Login(context.Background(), name, "pw123")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
		assert.Nil(t, pair)
	}
}

func TestAuthService_Refresh(t *testing.T) {
	userID := uuid.New()
	user := &models.UserDB{UserID: userID, Username: "alice", IsActive: true}
	refreshClaims := &jwt.Claims{Username: "alice", UserID: userID, Type: jwt.RefreshToken}
	dbErr := errors.New("db error")

	tests := []struct {
		name    string
		setup   func(m authMocks)
		wantErr error
	}{
		{
			name: "successful rotation",
			setup: func(m authMocks) {
				m.tokens.EXPECT().GetClaims(gomock.Any(), "old").Return(refreshClaims, nil)
				m.reader.EXPECT().GetByID(gomock.Any(), userID).Return(user, nil)
				m.sessions.EXPECT().ValidateRefreshToken(gomock.Any(), userID, "old").Return(true, nil)
				m.tokens.EXPECT().GenerateAccess(gomock.Any(), userID, "alice").Return("access", nil)
				m.tokens.EXPECT().GenerateRefresh(gomock.Any(), userID, "alice").Return("new", nil)
				m.sessions.EXPECT().RotateRefreshToken(gomock.Any(), userID, "old", "new").Return(true, nil)
			},
		},
		{
			name: "undecodable token",
			setup: func(m authMocks) {
				m.tokens.EXPECT().GetClaims(gomock.Any(), "old").Return(nil, jwt.ErrInvalidToken)
			},
			wantErr: services.ErrInvalidToken,
		},
		{
			name: "access token presented",
			setup: func(m authMocks) {
				m.tokens.EXPECT().GetClaims(gomock.Any(), "old").
					Return(&jwt.Claims{Username: "alice", UserID: userID, Type: jwt.AccessToken}, nil)
			},
			wantErr: services.ErrInvalidToken,
		},
		{
			name: "user not found",
			setup: func(m authMocks) {
				m.tokens.EXPECT().GetClaims(gomock.Any(), "old").Return(refreshClaims, nil)
				m.reader.EXPECT().GetByID(gomock.Any(), userID).Return(nil, nil)
			},
			wantErr: services.ErrInvalidToken,
		},
		{
			name: "stored token mismatch",
			setup: func(m authMocks) {
				m.tokens.EXPECT().GetClaims(gomock.Any(), "old").Return(refreshClaims, nil)
				m.reader.EXPECT().GetByID(gomock.Any(), userID).Return(user, nil)
				m.sessions.EXPECT().ValidateRefreshToken(gomock.Any(), userID, "old").Return(false, nil)
			},
			wantErr: services.ErrInvalidToken,
		},
		{
			name: "concurrent refresh wins the swap",
			setup: func(m authMocks) {
				m.tokens.EXPECT().GetClaims(gomock.Any(), "old").Return(refreshClaims, nil)
				m.reader.EXPECT().GetByID(gomock.Any(), userID).Return(user, nil)
				m.sessions.EXPECT().ValidateRefreshToken(gomock.Any(), userID, "old").Return(true, nil)
				m.tokens.EXPECT().GenerateAccess(gomock.Any(), userID, "alice").Return("access", nil)
				m.tokens.EXPECT().GenerateRefresh(gomock.Any(), userID, "alice").Return("new", nil)
				m.sessions.EXPECT().RotateRefreshToken(gomock.Any(), userID, "old", "new").Return(false, nil)
			},
			wantErr: services.ErrInvalidToken,
		},
		{
			name: "session store error",
			setup: func(m authMocks) {
				m.tokens.EXPECT().GetClaims(gomock.Any(), "old").Return(refreshClaims, nil)
				m.reader.EXPECT().GetByID(gomock.Any(), userID).Return(user, nil)
				m.sessions.EXPECT().ValidateRefreshToken(gomock.Any(), userID, "old").Return(false, dbErr)
			},
			wantErr: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t)
			tt.setup(m)

			pair, err := svc.Refresh(context.Background(), "old")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, pair)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "access", pair.AccessToken)
			assert.Equal(t, "new", pair.RefreshToken)
			assert.Equal(t, "bearer", pair.TokenType)
		})
	}
}

func TestAuthService_ResolveCurrentUser(t *testing.T) {
	userID := uuid.New()
	accessClaims := &jwt.Claims{Username: "alice", UserID: userID, Type: jwt.AccessToken}
	dbErr := errors.New("db error")

	tests := []struct {
		name    string
		setup   func(m authMocks)
		wantErr error
	}{
		{
			name: "active user",
			setup: func(m authMocks) {
				m.tokens.EXPECT().GetClaims(gomock.Any(), "tok").Return(accessClaims, nil)
				m.reader.EXPECT().GetByID(gomock.Any(), userID).
					Return(&models.UserDB{UserID: userID, Username: "alice", IsActive: true}, nil)
			},
		},
		{
			name: "invalid token",
			setup: func(m authMocks) {
				m.tokens.EXPECT().GetClaims(gomock.Any(), "tok").Return(nil, jwt.ErrInvalidToken)
			},
			wantErr: services.ErrInvalidToken,
		},
		{
			name: "refresh token presented",
			setup: func(m authMocks) {
				m.tokens.EXPECT().GetClaims(gomock.Any(), "tok").
					Return(&jwt.Claims{Username: "alice", UserID: userID, Type: jwt.RefreshToken}, nil)
			},
			wantErr: services.ErrInvalidToken,
		},
		{
			name: "user not found",
			setup: func(m authMocks) {
				m.tokens.EXPECT().GetClaims(gomock.Any(), "tok").Return(accessClaims, nil)
				m.reader.EXPECT().GetByID(gomock.Any(), userID).Return(nil, nil)
			},
			wantErr: services.ErrInvalidToken,
		},
		{
			name: "inactive user",
			setup: func(m authMocks) {
				m.tokens.EXPECT().GetClaims(gomock.Any(), "tok").Return(accessClaims, nil)
				m.reader.EXPECT().GetByID(gomock.Any(), userID).
					Return(&models.UserDB{UserID: userID, Username: "alice", IsActive: false}, nil)
			},
			wantErr: services.ErrInactiveUser,
		},
		{
			name: "reader error",
			setup: func(m authMocks) {
				m.tokens.EXPECT().GetClaims(gomock.Any(), "tok").Return(accessClaims, nil)
				m.reader.EXPECT().GetByID(gomock.Any(), userID).Return(nil, dbErr)
			},
			wantErr: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newAuthService(t)
			tt.setup(m)

			user, err := svc.ResolveCurrentUser(context.Background(), "tok")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "alice", user.Username)
		})
	}
}

// memUsers is an in-memory user store used to exercise the auth flow end to end
// with the real token and password implementations.
type memUsers struct {
	byName map[string]*models.UserDB
}

func (s *memUsers) GetByUsername(_ context.Context, username string) (*models.UserDB, error) {
	return s.byName[username], nil
}

func (s *memUsers) GetByID(_ context.Context, userID uuid.UUID) (*models.UserDB, error) {
	for _, u := range s.byName {
		if u.UserID == userID {
			return u, nil
		}
	}
	return nil, nil
}

func (s *memUsers) Save(_ context.Context, username, hash string) (*models.UserDB, error) {
	if _, ok := s.byName[username]; ok {
		return nil, repositories.ErrConflict
	}
	u := &models.UserDB{UserID: uuid.New(), Username: username, PasswordHash: hash, IsActive: true}
	s.byName[username] = u
	return u, nil
}

func (s *memUsers) StoreRefreshToken(ctx context.Context, userID uuid.UUID, token string) error {
	u, _ := s.GetByID(ctx, userID)
	u.RefreshToken = &token
	return nil
}

func (s *memUsers) ValidateRefreshToken(ctx context.Context, userID uuid.UUID, token string) (bool, error) {
	u, _ := s.GetByID(ctx, userID)
	return token != "" && u.RefreshToken != nil && *u.RefreshToken == token, nil
}

func (s *memUsers) RotateRefreshToken(ctx context.Context, userID uuid.UUID, oldToken, newToken string) (bool, error) {
	ok, _ := s.ValidateRefreshToken(ctx, userID, oldToken)
	if !ok {
		return false, nil
	}
	u, _ := s.GetByID(ctx, userID)
	u.RefreshToken = &newToken
	return true, nil
}

func TestAuthService_Flow(t *testing.T) {
	store := &memUsers{byName: map[string]*models.UserDB{}}
	svc := services.NewAuthService(store, store, store, jwt.New("secret", time.Hour), password.New(4))
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice", "pw123")
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)

	_, err = svc.Register(ctx, "alice", "other")
	assert.ErrorIs(t, err, services.ErrUserAlreadyExists)

	_, err = svc.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	_, err = svc.Login(ctx, "nobody", "pw123")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	pair, err := svc.Login(ctx, "alice", "pw123")
	require.NoError(t, err)

	me, err := svc.ResolveCurrentUser(ctx, pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", me.Username)

	_, err = svc.ResolveCurrentUser(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, services.ErrInvalidToken)

	rotated, err := svc.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, pair.RefreshToken, rotated.RefreshToken)

	// the first refresh overwrote the stored token
	_, err = svc.Refresh(ctx, pair.RefreshToken)
	assert.ErrorIs(t, err, services.ErrInvalidToken)

	_, err = svc.Refresh(ctx, rotated.AccessToken)
	assert.ErrorIs(t, err, services.ErrInvalidToken)

	_, err = svc.Refresh(ctx, rotated.RefreshToken)
	assert.NoError(t, err)
}

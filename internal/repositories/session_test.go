package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSessionRepository_StoreRefreshToken(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db, nil)
	userID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("SET refresh_token = $2")).
		WithArgs(userID, "token-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.StoreRefreshToken(context.Background(), userID, "token-1")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_ValidateRefreshToken(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db, nil)
	ctx := context.Background()
	userID := uuid.New()

	tests := []struct {
		name    string
		token   string
		stored  bool
		dbErr   error
		want    bool
		wantErr bool
		noQuery bool
	}{
		{name: "match", token: "t1", stored: true, want: true},
		{name: "mismatch", token: "old", stored: false, want: false},
		{name: "empty token", token: "", noQuery: true, want: false},
		{name: "db error", token: "t1", dbErr: errors.New("down"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.noQuery {
				exp := mock.ExpectQuery(regexp.QuoteMeta("refresh_token = $2")).WithArgs(userID, tt.token)
				if tt.dbErr != nil {
					exp.WillReturnError(tt.dbErr)
				} else {
					exp.WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(tt.stored))
				}
			}

			ok, err := repo.ValidateRefreshToken(ctx, userID, tt.token)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_RotateRefreshToken(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSessionRepository(db, nil)
	ctx := context.Background()
	userID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("WHERE user_id = $1 AND refresh_token = $2")).
		WithArgs(userID, "old", "new").
		WillReturnResult(sqlmock.NewResult(0, 1))
	ok, err := repo.RotateRefreshToken(ctx, userID, "old", "new")
	assert.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectExec(regexp.QuoteMeta("WHERE user_id = $1 AND refresh_token = $2")).
		WithArgs(userID, "old", "newer").
		WillReturnResult(sqlmock.NewResult(0, 0))
	ok, err = repo.RotateRefreshToken(ctx, userID, "old", "newer")
	assert.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.RotateRefreshToken(ctx, userID, "", "new")
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

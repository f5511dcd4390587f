package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/soulsync/internal/models"
)

const userColumns = `user_id, username, password_hash, refresh_token, is_active, created_at, updated_at`

// UserReadRepository handles user lookups.
type UserReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserReadRepository(db *sqlx.DB, txGetter TxGetter) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

// GetByUsername returns the user with the given username, or nil when there is none.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return r.getOne(ctx, query, username)
}

// GetByID returns the user with the given id, or nil when there is none.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`
	return r.getOne(ctx, query, userID)
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, arg any) (*models.UserDB, error) {
	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, arg)
	logQuery(query, []any{arg}, user.UserID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapError(err)
	}
	return &user, nil
}

// List returns a page of users ordered by creation time.
func (r *UserReadRepository) List(ctx context.Context, offset, limit int) ([]models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		ORDER BY created_at ASC, user_id ASC
		OFFSET $1 LIMIT $2
	`

	users := []models.UserDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &users, query, offset, limit)
	logQuery(query, []any{offset, limit}, len(users), err)

	return users, err
}

// UserWriteRepository handles user writes.
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new active user. A taken username yields ErrConflict.
func (r *UserWriteRepository) Save(ctx context.Context, username, passwordHash string) (*models.UserDB, error) {
	const query = `
		INSERT INTO users (user_id, username, password_hash, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, TRUE, NOW(), NOW())
		RETURNING ` + userColumns

	userID := uuid.New()

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, userID, username, passwordHash)
	logQuery(query, []any{userID, username}, user.UserID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &user, nil
}

// Update changes the non-nil fields of a user and returns the updated row.
// It returns nil when the user does not exist.
func (r *UserWriteRepository) Update(ctx context.Context, userID uuid.UUID, username, passwordHash *string, isActive *bool) (*models.UserDB, error) {
	const query = `
		UPDATE users
		SET username = COALESCE($2, username),
		    password_hash = COALESCE($3, password_hash),
		    is_active = COALESCE($4, is_active),
		    updated_at = NOW()
		WHERE user_id = $1
		RETURNING ` + userColumns

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, userID, username, passwordHash, isActive)
	logQuery(query, []any{userID, username, isActive}, user.UserID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapError(err)
	}
	return &user, nil
}

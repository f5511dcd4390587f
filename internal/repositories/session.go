package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// SessionRepository keeps the single active refresh token of each user
// in the users.refresh_token column. Storing a token replaces the previous one.
type SessionRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewSessionRepository(db *sqlx.DB, txGetter TxGetter) *SessionRepository {
	return &SessionRepository{db: db, txGetter: txGetter}
}

// StoreRefreshToken overwrites the stored refresh token of the user.
func (r *SessionRepository) StoreRefreshToken(ctx context.Context, userID uuid.UUID, token string) error {
	const query = `
		UPDATE users
		SET refresh_token = $2, updated_at = NOW()
		WHERE user_id = $1
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, userID, token)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{userID}, rowsAffected, err)

	return err
}

// ValidateRefreshToken reports whether token is exactly the stored refresh token.
func (r *SessionRepository) ValidateRefreshToken(ctx context.Context, userID uuid.UUID, token string) (bool, error) {
	if token == "" {
		return false, nil
	}

	const query = `
		SELECT EXISTS (
			SELECT 1 FROM users WHERE user_id = $1 AND refresh_token = $2
		)
	`

	var ok bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &ok, query, userID, token)
	logQuery(query, []any{userID}, ok, err)

	return ok, err
}

// RotateRefreshToken replaces oldToken with newToken only if oldToken is still
// the stored one. It reports whether the swap happened.
func (r *SessionRepository) RotateRefreshToken(ctx context.Context, userID uuid.UUID, oldToken, newToken string) (bool, error) {
	if oldToken == "" {
		return false, nil
	}

	const query = `
		UPDATE users
		SET refresh_token = $3, updated_at = NOW()
		WHERE user_id = $1 AND refresh_token = $2
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, userID, oldToken, newToken)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{userID}, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected == 1, nil
}

package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/soulsync/internal/models"
)

const likeWithTrackColumns = `
	l.like_id, l.user_id, l.track_id, l.artwork_url, l.created_at,
	t.url AS track_url, t.title AS track_title, t.artist AS track_artist,
	t.artwork_url AS track_artwork_url, t.user_id AS track_user_id,
	t.created_at AS track_created_at, t.updated_at AS track_updated_at`

// likeRow is a like joined with its track.
type likeRow struct {
	LikeID          uuid.UUID `db:"like_id"`
	UserID          uuid.UUID `db:"user_id"`
	TrackID         uuid.UUID `db:"track_id"`
	ArtworkURL      *string   `db:"artwork_url"`
	CreatedAt       time.Time `db:"created_at"`
	TrackURL        string    `db:"track_url"`
	TrackTitle      string    `db:"track_title"`
	TrackArtist     string    `db:"track_artist"`
	TrackArtworkURL *string   `db:"track_artwork_url"`
	TrackUserID     uuid.UUID `db:"track_user_id"`
	TrackCreatedAt  time.Time `db:"track_created_at"`
	TrackUpdatedAt  time.Time `db:"track_updated_at"`
}

func (row likeRow) toModel() models.Like {
	return models.Like{
		LikeID:     row.LikeID,
		UserID:     row.UserID,
		TrackID:    row.TrackID,
		ArtworkURL: row.ArtworkURL,
		CreatedAt:  row.CreatedAt,
		Track: &models.Track{
			TrackID:    row.TrackID,
			URL:        row.TrackURL,
			Title:      row.TrackTitle,
			Artist:     row.TrackArtist,
			ArtworkURL: row.TrackArtworkURL,
			UserID:     row.TrackUserID,
			CreatedAt:  row.TrackCreatedAt,
			UpdatedAt:  row.TrackUpdatedAt,
		},
	}
}

// LikeReadRepository handles like queries.
type LikeReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewLikeReadRepository(db *sqlx.DB, txGetter TxGetter) *LikeReadRepository {
	return &LikeReadRepository{db: db, txGetter: txGetter}
}

// ListByUser returns a page of the user's likes, newest first.
func (r *LikeReadRepository) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]models.Like, error) {
	const query = `
		SELECT ` + likeWithTrackColumns + `
		FROM likes l
		JOIN tracks t ON t.track_id = l.track_id
		WHERE l.user_id = $1
		ORDER BY l.created_at DESC, l.like_id DESC
		OFFSET $2 LIMIT $3
	`
	return r.selectLikes(ctx, query, userID, offset, limit)
}

// SearchByUser returns the user's likes whose track title or artist contains q, newest first.
func (r *LikeReadRepository) SearchByUser(ctx context.Context, userID uuid.UUID, q string, offset, limit int) ([]models.Like, error) {
	const query = `
		SELECT ` + likeWithTrackColumns + `
		FROM likes l
		JOIN tracks t ON t.track_id = l.track_id
		WHERE l.user_id = $1
		  AND (t.title ILIKE $2 OR t.artist ILIKE $2)
		ORDER BY l.created_at DESC, l.like_id DESC
		OFFSET $3 LIMIT $4
	`
	return r.selectLikes(ctx, query, userID, likePattern(q), offset, limit)
}

func (r *LikeReadRepository) selectLikes(ctx context.Context, query string, args ...any) ([]models.Like, error) {
	var rows []likeRow
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &rows, query, args...)
	logQuery(query, args, len(rows), err)

	if err != nil {
		return nil, mapError(err)
	}

	likes := make([]models.Like, 0, len(rows))
	for _, row := range rows {
		likes = append(likes, row.toModel())
	}
	return likes, nil
}

// Exists reports whether the user has liked the track.
func (r *LikeReadRepository) Exists(ctx context.Context, userID, trackID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM likes WHERE user_id = $1 AND track_id = $2
		)
	`

	var ok bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &ok, query, userID, trackID)
	logQuery(query, []any{userID, trackID}, ok, err)

	return ok, err
}

// LikeWriteRepository handles like writes.
type LikeWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewLikeWriteRepository(db *sqlx.DB, txGetter TxGetter) *LikeWriteRepository {
	return &LikeWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a like. A second like of the same track by the same user yields ErrConflict.
func (r *LikeWriteRepository) Save(ctx context.Context, userID, trackID uuid.UUID, artworkURL *string) (*models.Like, error) {
	const query = `
		INSERT INTO likes (like_id, user_id, track_id, artwork_url, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING like_id, user_id, track_id, artwork_url, created_at
	`

	args := []any{uuid.New(), userID, trackID, artworkURL}

	var like models.Like
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &like, query, args...)
	logQuery(query, args, like.LikeID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &like, nil
}

// Delete removes the user's like of the track. It reports whether a row was removed.
func (r *LikeWriteRepository) Delete(ctx context.Context, userID, trackID uuid.UUID) (bool, error) {
	const query = `DELETE FROM likes WHERE user_id = $1 AND track_id = $2`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, userID, trackID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{userID, trackID}, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

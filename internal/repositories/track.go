package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/soulsync/internal/models"
)

const trackColumns = `track_id, url, title, artist, artwork_url, user_id, created_at, updated_at`

// TrackReadRepository handles track queries.
type TrackReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewTrackReadRepository(db *sqlx.DB, txGetter TxGetter) *TrackReadRepository {
	return &TrackReadRepository{db: db, txGetter: txGetter}
}

// List returns a page of tracks, oldest first.
func (r *TrackReadRepository) List(ctx context.Context, offset, limit int) ([]models.Track, error) {
	const query = `
		SELECT ` + trackColumns + `
		FROM tracks
		ORDER BY created_at ASC, track_id ASC
		OFFSET $1 LIMIT $2
	`
	return r.selectTracks(ctx, query, offset, limit)
}

// Random returns up to limit distinct tracks in random order.
func (r *TrackReadRepository) Random(ctx context.Context, limit int) ([]models.Track, error) {
	const query = `
		SELECT ` + trackColumns + `
		FROM tracks
		ORDER BY random()
		LIMIT $1
	`
	return r.selectTracks(ctx, query, limit)
}

// Search returns tracks whose title or artist contains q, case-insensitively.
func (r *TrackReadRepository) Search(ctx context.Context, q string, offset, limit int) ([]models.Track, error) {
	const query = `
		SELECT ` + trackColumns + `
		FROM tracks
		WHERE title ILIKE $1 OR artist ILIKE $1
		ORDER BY created_at ASC, track_id ASC
		OFFSET $2 LIMIT $3
	`
	return r.selectTracks(ctx, query, likePattern(q), offset, limit)
}

func (r *TrackReadRepository) selectTracks(ctx context.Context, query string, args ...any) ([]models.Track, error) {
	tracks := []models.Track{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &tracks, query, args...)
	logQuery(query, args, len(tracks), err)

	if err != nil {
		return nil, mapError(err)
	}
	return tracks, nil
}

// GetByID returns the track with the given id, or nil when there is none.
func (r *TrackReadRepository) GetByID(ctx context.Context, trackID uuid.UUID) (*models.Track, error) {
	const query = `SELECT ` + trackColumns + ` FROM tracks WHERE track_id = $1`

	var track models.Track
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &track, query, trackID)
	logQuery(query, []any{trackID}, track.TrackID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &track, nil
}

// TrackWriteRepository handles track writes.
type TrackWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewTrackWriteRepository(db *sqlx.DB, txGetter TxGetter) *TrackWriteRepository {
	return &TrackWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a track owned by userID. Duplicate URLs are allowed.
func (r *TrackWriteRepository) Save(ctx context.Context, userID uuid.UUID, in models.TrackCreate) (*models.Track, error) {
	const query = `
		INSERT INTO tracks (track_id, url, title, artist, artwork_url, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING ` + trackColumns

	args := []any{uuid.New(), in.URL, in.Title, in.Artist, in.ArtworkURL, userID}

	var track models.Track
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &track, query, args...)
	logQuery(query, args, track.TrackID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &track, nil
}

// Update changes the non-nil fields of a track. It returns nil when the track does not exist.
func (r *TrackWriteRepository) Update(ctx context.Context, trackID uuid.UUID, in models.TrackUpdate) (*models.Track, error) {
	const query = `
		UPDATE tracks
		SET url = COALESCE($2, url),
		    title = COALESCE($3, title),
		    artist = COALESCE($4, artist),
		    artwork_url = COALESCE($5, artwork_url),
		    updated_at = NOW()
		WHERE track_id = $1
		RETURNING ` + trackColumns

	args := []any{trackID, in.URL, in.Title, in.Artist, in.ArtworkURL}

	var track models.Track
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &track, query, args...)
	logQuery(query, args, track.TrackID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapError(err)
	}
	return &track, nil
}

// Delete removes a track and, by cascade, its likes. It reports whether a row was removed.
func (r *TrackWriteRepository) Delete(ctx context.Context, trackID uuid.UUID) (bool, error) {
	const query = `DELETE FROM tracks WHERE track_id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, trackID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{trackID}, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}

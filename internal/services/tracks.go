package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/soulsync/internal/logger"
	"github.com/sbilibin2017/soulsync/internal/models"
	"github.com/sbilibin2017/soulsync/internal/repositories"
)

//go:generate mockgen -source=tracks.go -destination=tracks_mock.go -package=services

const (
	// MinSearchQueryLength is the shortest query that is matched against the store.
	MinSearchQueryLength = 2
	// MaxRandomTracks bounds the sample size of RandomTracks.
	MaxRandomTracks = 50
)

// TrackReader defines read-only operations for tracks.
type TrackReader interface {
	List(ctx context.Context, offset, limit int) ([]models.Track, error)
	Random(ctx context.Context, limit int) ([]models.Track, error)
	Search(ctx context.Context, q string, offset, limit int) ([]models.Track, error)
	GetByID(ctx context.Context, trackID uuid.UUID) (*models.Track, error)
}

// TrackWriter defines write operations for tracks.
type TrackWriter interface {
	Save(ctx context.Context, userID uuid.UUID, in models.TrackCreate) (*models.Track, error)
	Update(ctx context.Context, trackID uuid.UUID, in models.TrackUpdate) (*models.Track, error)
	Delete(ctx context.Context, trackID uuid.UUID) (bool, error)
}

// TrackCache caches single tracks by id.
type TrackCache interface {
	Get(ctx context.Context, trackID uuid.UUID) (*models.Track, error)
	Set(ctx context.Context, track *models.Track) error
	Invalidate(ctx context.Context, trackID uuid.UUID) error
}

// AfterCommitFunc defers fn until the writes made under ctx are committed.
type AfterCommitFunc func(ctx context.Context, fn func())

// TrackService serves track queries and ownership-checked track writes.
type TrackService struct {
	reader      TrackReader
	writer      TrackWriter
	cache       TrackCache // optional
	afterCommit AfterCommitFunc
}

// NewTrackService creates a new TrackService. cache may be nil.
// Cache entries of changed tracks are dropped through afterCommit; a nil afterCommit drops them at once.
func NewTrackService(reader TrackReader, writer TrackWriter, cache TrackCache, afterCommit AfterCommitFunc) *TrackService {
	if afterCommit == nil {
		afterCommit = func(_ context.Context, fn func()) { fn() }
	}
	return &TrackService{
		reader:      reader,
		writer:      writer,
		cache:       cache,
		afterCommit: afterCommit,
	}
}

// ListTracks returns a page of tracks, oldest first.
func (s *TrackService) ListTracks(ctx context.Context, offset, limit int) ([]models.Track, error) {
	if err := validatePage(offset, limit); err != nil {
		return nil, err
	}

	tracks, err := s.reader.List(ctx, offset, limit)
	if err != nil {
		logger.Log.Errorw("failed to list tracks", "err", err)
		return nil, err
	}
	return tracks, nil
}

// RandomTracks returns up to limit distinct tracks in random order.
func (s *TrackService) RandomTracks(ctx context.Context, limit int) ([]models.Track, error) {
	if limit < 1 || limit > MaxRandomTracks {
		return nil, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, MaxRandomTracks)
	}

	tracks, err := s.reader.Random(ctx, limit)
	if err != nil {
		logger.Log.Errorw("failed to get random tracks", "err", err)
		return nil, err
	}
	return tracks, nil
}

// SearchTracks matches q against title and artist case-insensitively.
// Queries shorter than MinSearchQueryLength return an empty result.
func (s *TrackService) SearchTracks(ctx context.Context, q string, offset, limit int) ([]models.Track, error) {
	if err := validatePage(offset, limit); err != nil {
		return nil, err
	}

	q, ok, err := searchQuery(q)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.Track{}, nil
	}

	tracks, err := s.reader.Search(ctx, q, offset, limit)
	if errors.Is(err, repositories.ErrInvalidValue) {
		logger.Log.Infow("track search query rejected", "err", err)
		return nil, rejectedValue(err)
	}
	if err != nil {
		logger.Log.Errorw("track search failed", "query", q, "err", err)
		return nil, fmt.Errorf("%w: %v", ErrBackingStoreUnavailable, err)
	}
	return tracks, nil
}

// GetTrack returns a track by id, reading through the cache when one is configured.
func (s *TrackService) GetTrack(ctx context.Context, trackID uuid.UUID) (*models.Track, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, trackID)
		if err != nil {
			logger.Log.Warnw("track cache read failed", "track_id", trackID, "err", err)
		}
		if cached != nil {
			return cached, nil
		}
	}

	track, err := s.reader.GetByID(ctx, trackID)
	if err != nil {
		logger.Log.Errorw("failed to get track", "track_id", trackID, "err", err)
		return nil, err
	}
	if track == nil {
		return nil, ErrTrackNotFound
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, track); err != nil {
			logger.Log.Warnw("track cache write failed", "track_id", trackID, "err", err)
		}
	}
	return track, nil
}

// CreateTrack stores a new track owned by ownerID. The same URL may be stored more than once.
func (s *TrackService) CreateTrack(ctx context.Context, ownerID uuid.UUID, in models.TrackCreate) (*models.Track, error) {
	in.URL = strings.TrimSpace(in.URL)
	in.Title = strings.TrimSpace(in.Title)
	in.Artist = strings.TrimSpace(in.Artist)
	if in.URL == "" || in.Title == "" || in.Artist == "" {
		return nil, fmt.Errorf("%w: url, title and artist are required", ErrInvalidInput)
	}
	if err := checkTrackFields(&in.URL, &in.Title, &in.Artist, in.ArtworkURL); err != nil {
		return nil, err
	}

	track, err := s.writer.Save(ctx, ownerID, in)
	if err != nil {
		logger.Log.Errorw("failed to save track", "user_id", ownerID, "err", err)
		return nil, rejectedValue(err)
	}
	return track, nil
}

// UpdateTrack changes the non-nil fields of a track owned by actorID.
func (s *TrackService) UpdateTrack(ctx context.Context, actorID, trackID uuid.UUID, in models.TrackUpdate) (*models.Track, error) {
	for _, field := range []*string{in.URL, in.Title, in.Artist} {
		if field != nil && strings.TrimSpace(*field) == "" {
			return nil, fmt.Errorf("%w: url, title and artist must not be empty", ErrInvalidInput)
		}
	}
	if err := checkTrackFields(in.URL, in.Title, in.Artist, in.ArtworkURL); err != nil {
		return nil, err
	}

	if err := s.checkOwner(ctx, actorID, trackID); err != nil {
		return nil, err
	}

	track, err := s.writer.Update(ctx, trackID, in)
	if err != nil {
		logger.Log.Errorw("failed to update track", "track_id", trackID, "err", err)
		return nil, rejectedValue(err)
	}
	if track == nil {
		return nil, ErrTrackNotFound
	}

	s.invalidate(ctx, trackID)
	return track, nil
}

// DeleteTrack removes a track owned by actorID together with its likes.
func (s *TrackService) DeleteTrack(ctx context.Context, actorID, trackID uuid.UUID) error {
	if err := s.checkOwner(ctx, actorID, trackID); err != nil {
		return err
	}

	deleted, err := s.writer.Delete(ctx, trackID)
	if err != nil {
		logger.Log.Errorw("failed to delete track", "track_id", trackID, "err", err)
		return err
	}
	if !deleted {
		return ErrTrackNotFound
	}

	s.invalidate(ctx, trackID)
	return nil
}

func (s *TrackService) checkOwner(ctx context.Context, actorID, trackID uuid.UUID) error {
	track, err := s.reader.GetByID(ctx, trackID)
	if err != nil {
		logger.Log.Errorw("failed to get track", "track_id", trackID, "err", err)
		return err
	}
	if track == nil {
		return ErrTrackNotFound
	}
	if track.UserID != actorID {
		logger.Log.Infow("track ownership check failed", "track_id", trackID, "user_id", actorID)
		return ErrForbidden
	}
	return nil
}

// invalidate drops the cached track once the change is committed, so a read
// racing the transaction cannot put the old row back.
func (s *TrackService) invalidate(ctx context.Context, trackID uuid.UUID) {
	if s.cache == nil {
		return
	}
	s.afterCommit(ctx, func() {
		if err := s.cache.Invalidate(ctx, trackID); err != nil {
			logger.Log.Warnw("track cache invalidation failed", "track_id", trackID, "err", err)
		}
	})
}

func checkTrackFields(url, title, artist, artworkURL *string) error {
	if err := checkOptionalText("url", url, 0); err != nil {
		return err
	}
	if err := checkOptionalText("title", title, MaxTrackFieldLength); err != nil {
		return err
	}
	if err := checkOptionalText("artist", artist, MaxTrackFieldLength); err != nil {
		return err
	}
	return checkOptionalText("artwork_url", artworkURL, 0)
}

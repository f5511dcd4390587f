package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/soulsync/internal/logger"
	"github.com/sbilibin2017/soulsync/internal/models"
	"github.com/sbilibin2017/soulsync/internal/repositories"
)

//go:generate mockgen -source=likes.go -destination=likes_mock.go -package=services

// LikeReader defines read-only operations for likes.
type LikeReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]models.Like, error)
	SearchByUser(ctx context.Context, userID uuid.UUID, q string, offset, limit int) ([]models.Like, error)
	Exists(ctx context.Context, userID, trackID uuid.UUID) (bool, error)
}

// LikeWriter defines write operations for likes.
type LikeWriter interface {
	Save(ctx context.Context, userID, trackID uuid.UUID, artworkURL *string) (*models.Like, error)
	Delete(ctx context.Context, userID, trackID uuid.UUID) (bool, error)
}

// LikedTrackGetter looks up the track being liked.
type LikedTrackGetter interface {
	GetByID(ctx context.Context, trackID uuid.UUID) (*models.Track, error)
}

// LikeEventPublisher publishes like activity.
type LikeEventPublisher interface {
	Publish(ctx context.Context, event models.LikeEvent) error
}

// LikeService serves a user's likes.
type LikeService struct {
	reader    LikeReader
	writer    LikeWriter
	tracks    LikedTrackGetter
	publisher LikeEventPublisher // optional
}

// NewLikeService creates a new LikeService. publisher may be nil.
func NewLikeService(reader LikeReader, writer LikeWriter, tracks LikedTrackGetter, publisher LikeEventPublisher) *LikeService {
	return &LikeService{
		reader:    reader,
		writer:    writer,
		tracks:    tracks,
		publisher: publisher,
	}
}

// ListLikes returns a page of the user's likes, newest first.
func (s *LikeService) ListLikes(ctx context.Context, userID uuid.UUID, offset, limit int) ([]models.Like, error) {
	if err := validatePage(offset, limit); err != nil {
		return nil, err
	}

	likes, err := s.reader.ListByUser(ctx, userID, offset, limit)
	if err != nil {
		logger.Log.Errorw("failed to list likes", "user_id", userID, "err", err)
		return nil, err
	}
	return likes, nil
}

// CreateLike likes a track. Without an artwork override the track's own artwork is kept.
func (s *LikeService) CreateLike(ctx context.Context, userID, trackID uuid.UUID, artworkURL *string) (*models.Like, error) {
	if err := checkOptionalText("artwork_url", artworkURL, 0); err != nil {
		return nil, err
	}

	track, err := s.tracks.GetByID(ctx, trackID)
	if err != nil {
		logger.Log.Errorw("failed to get track", "track_id", trackID, "err", err)
		return nil, err
	}
	if track == nil {
		return nil, ErrTrackNotFound
	}

	exists, err := s.reader.Exists(ctx, userID, trackID)
	if err != nil {
		logger.Log.Errorw("failed to check like exists", "user_id", userID, "track_id", trackID, "err", err)
		return nil, err
	}
	if exists {
		return nil, ErrLikeAlreadyExists
	}

	if artworkURL == nil || *artworkURL == "" {
		artworkURL = track.ArtworkURL
	}

	like, err := s.writer.Save(ctx, userID, trackID, artworkURL)
	if err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			return nil, ErrLikeAlreadyExists
		}
		logger.Log.Errorw("failed to save like", "user_id", userID, "track_id", trackID, "err", err)
		return nil, rejectedValue(err)
	}
	like.Track = track

	s.publish(ctx, models.LikeCreated, userID, trackID)
	return like, nil
}

// DeleteLike removes the user's like of a track. A missing like is ErrLikeNotFound.
func (s *LikeService) DeleteLike(ctx context.Context, userID, trackID uuid.UUID) error {
	deleted, err := s.writer.Delete(ctx, userID, trackID)
	if err != nil {
		logger.Log.Errorw("failed to delete like", "user_id", userID, "track_id", trackID, "err", err)
		return err
	}
	if !deleted {
		return ErrLikeNotFound
	}

	s.publish(ctx, models.LikeDeleted, userID, trackID)
	return nil
}

// CheckLike reports whether the user likes the track.
func (s *LikeService) CheckLike(ctx context.Context, userID, trackID uuid.UUID) (bool, error) {
	exists, err := s.reader.Exists(ctx, userID, trackID)
	if err != nil {
		logger.Log.Errorw("failed to check like exists", "user_id", userID, "track_id", trackID, "err", err)
		return false, err
	}
	return exists, nil
}

// SearchLikes matches q against the title and artist of the user's liked tracks.
// Queries shorter than MinSearchQueryLength return an empty result.
func (s *LikeService) SearchLikes(ctx context.Context, userID uuid.UUID, q string, offset, limit int) ([]models.Like, error) {
	if err := validatePage(offset, limit); err != nil {
		return nil, err
	}

	q, ok, err := searchQuery(q)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.Like{}, nil
	}

	likes, err := s.reader.SearchByUser(ctx, userID, q, offset, limit)
	if errors.Is(err, repositories.ErrInvalidValue) {
		logger.Log.Infow("like search query rejected", "user_id", userID, "err", err)
		return nil, rejectedValue(err)
	}
	if err != nil {
		logger.Log.Errorw("like search failed", "user_id", userID, "query", q, "err", err)
		return nil, fmt.Errorf("%w: %v", ErrBackingStoreUnavailable, err)
	}
	return likes, nil
}

// publish sends a like event. Failures are logged and never reach the caller.
func (s *LikeService) publish(ctx context.Context, eventType string, userID, trackID uuid.UUID) {
	if s.publisher == nil {
		logger.Log.Debugw("like events not configured, skipping publishing", "type", eventType)
		return
	}

	event := models.LikeEvent{
		EventID:    uuid.NewString(),
		Type:       eventType,
		UserID:     userID,
		TrackID:    trackID,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		logger.Log.Errorw("failed to publish like event", "event_id", event.EventID, "type", eventType, "err", err)
	}
}

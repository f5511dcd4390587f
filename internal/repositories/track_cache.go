package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/soulsync/internal/logger"
	"github.com/sbilibin2017/soulsync/internal/models"
)

// TrackCacheRepository caches tracks by id in Redis.
type TrackCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached tracks
}

// NewTrackCacheRepository creates a new repository instance.
func NewTrackCacheRepository(client *redis.Client, expiration time.Duration) *TrackCacheRepository {
	return &TrackCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func trackKey(trackID uuid.UUID) string {
	return fmt.Sprintf("track:%s", trackID)
}

// Get returns the cached track, or nil on a cache miss.
func (r *TrackCacheRepository) Get(ctx context.Context, trackID uuid.UUID) (*models.Track, error) {
	key := trackKey(trackID)

	val, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		logger.Log.Debugw("cache miss", "key", key)
		return nil, nil
	}
	if err != nil {
		logger.Log.Debugw("cache get failed", "key", key, "error", err)
		return nil, err
	}

	var track models.Track
	if err := json.Unmarshal(val, &track); err != nil {
		// Corrupt entries are dropped so the next read repopulates them.
		r.client.Del(ctx, key)
		return nil, fmt.Errorf("decode cached track: %w", err)
	}

	logger.Log.Debugw("cache hit", "key", key)
	return &track, nil
}

// Set caches a track until the configured expiration.
func (r *TrackCacheRepository) Set(ctx context.Context, track *models.Track) error {
	data, err := json.Marshal(track)
	if err != nil {
		return err
	}

	key := trackKey(track.TrackID)
	err = r.client.Set(ctx, key, data, r.exp).Err()
	logger.Log.Debugw("cache set", "key", key, "error", err)

	return err
}

// Invalidate removes a cached track.
func (r *TrackCacheRepository) Invalidate(ctx context.Context, trackID uuid.UUID) error {
	key := trackKey(trackID)
	err := r.client.Del(ctx, key).Err()
	logger.Log.Debugw("cache invalidate", "key", key, "error", err)

	return err
}

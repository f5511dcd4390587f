package models

import (
	"time"

	"github.com/google/uuid"
)

// Like joins a user and a track.
// ArtworkURL is a snapshot taken when the like was created.
type Like struct {
	LikeID     uuid.UUID `json:"id" db:"like_id"`
	UserID     uuid.UUID `json:"user_id" db:"user_id"`
	TrackID    uuid.UUID `json:"track_id" db:"track_id"`
	ArtworkURL *string   `json:"artwork_url" db:"artwork_url"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	Track      *Track    `json:"track,omitempty" db:"-"`
}

// Like event types published to the likes topic.
const (
	LikeCreated = "like.created"
	LikeDeleted = "like.deleted"
)

// LikeEvent is the message published when a like is created or removed.
type LikeEvent struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	UserID     uuid.UUID `json:"user_id"`
	TrackID    uuid.UUID `json:"track_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

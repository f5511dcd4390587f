package models

import (
	"time"

	"github.com/google/uuid"
)

// Track is an uploaded track that references an external audio URL.
type Track struct {
	TrackID    uuid.UUID `json:"id" db:"track_id"`
	URL        string    `json:"url" db:"url"`
	Title      string    `json:"title" db:"title"`
	Artist     string    `json:"artist" db:"artist"`
	ArtworkURL *string   `json:"artwork_url" db:"artwork_url"`
	UserID     uuid.UUID `json:"user_id" db:"user_id"` // Owner
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// TrackCreate holds the fields of a new track.
type TrackCreate struct {
	URL        string  `json:"url"`
	Title      string  `json:"title"`
	Artist     string  `json:"artist"`
	ArtworkURL *string `json:"artwork_url,omitempty"`
}

// TrackUpdate holds the optional fields of a track update.
type TrackUpdate struct {
	URL        *string `json:"url,omitempty"`
	Title      *string `json:"title,omitempty"`
	Artist     *string `json:"artist,omitempty"`
	ArtworkURL *string `json:"artwork_url,omitempty"`
}

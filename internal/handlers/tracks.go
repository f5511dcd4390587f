package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/soulsync/internal/models"
	"github.com/sbilibin2017/soulsync/internal/services"
)

//go:generate mockgen -source=tracks.go -destination=tracks_mock.go -package=handlers

// TrackLister returns pages of tracks.
type TrackLister interface {
	ListTracks(ctx context.Context, offset, limit int) ([]models.Track, error)
}

// RandomTrackPicker samples tracks.
type RandomTrackPicker interface {
	RandomTracks(ctx context.Context, limit int) ([]models.Track, error)
}

// TrackSearcher searches tracks by title and artist.
type TrackSearcher interface {
	SearchTracks(ctx context.Context, q string, offset, limit int) ([]models.Track, error)
}

// TrackGetter returns a single track.
type TrackGetter interface {
	GetTrack(ctx context.Context, trackID uuid.UUID) (*models.Track, error)
}

// TrackCreator stores new tracks.
type TrackCreator interface {
	CreateTrack(ctx context.Context, ownerID uuid.UUID, in models.TrackCreate) (*models.Track, error)
}

// TrackUpdater changes tracks owned by the actor.
type TrackUpdater interface {
	UpdateTrack(ctx context.Context, actorID, trackID uuid.UUID, in models.TrackUpdate) (*models.Track, error)
}

// TrackDeleter removes tracks owned by the actor.
type TrackDeleter interface {
	DeleteTrack(ctx context.Context, actorID, trackID uuid.UUID) error
}

// NewListTracksHandler returns an HTTP handler listing tracks, oldest first.
// @Summary List tracks
// @Tags tracks
// @Produce json
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(100)
// @Success 200 {array} models.Track "Tracks"
// @Failure 400 {object} handlers.ErrorResponse "Invalid pagination"
// @Router /tracks [get]
func NewListTracksHandler(svc TrackLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offset, limit, err := parsePage(r, defaultPageLimit)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		tracks, err := svc.ListTracks(r.Context(), offset, limit)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, tracks)
	}
}

// NewRandomTracksHandler returns an HTTP handler sampling random tracks.
// @Summary Random tracks
// @Tags tracks
// @Produce json
// @Param limit query int false "Sample size, 1 to 50" default(20)
// @Success 200 {array} models.Track "Tracks"
// @Failure 400 {object} handlers.ErrorResponse "Invalid limit"
// @Router /tracks/random [get]
func NewRandomTracksHandler(svc RandomTrackPicker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := queryInt(r, "limit", defaultRandomLimit)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		tracks, err := svc.RandomTracks(r.Context(), limit)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, tracks)
	}
}

// NewSearchTracksHandler returns an HTTP handler searching tracks.
// @Summary Search tracks
// @Description Case-insensitive substring match over title and artist. Queries shorter than 2 characters return an empty list.
// @Tags tracks
// @Produce json
// @Param query query string false "Search text"
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(20)
// @Success 200 {array} models.Track "Tracks"
// @Failure 400 {object} handlers.ErrorResponse "Invalid pagination"
// @Failure 503 {object} handlers.ErrorResponse "Backing store unavailable"
// @Router /tracks/search [get]
func NewSearchTracksHandler(svc TrackSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offset, limit, err := parsePage(r, defaultSearchLimit)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		tracks, err := svc.SearchTracks(r.Context(), r.URL.Query().Get("query"), offset, limit)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, tracks)
	}
}

// NewGetTrackHandler returns an HTTP handler for a single track.
// @Summary Get track
// @Tags tracks
// @Produce json
// @Param track_id path string true "Track ID"
// @Success 200 {object} models.Track "Track"
// @Failure 404 {object} handlers.ErrorResponse "Track not found"
// @Router /tracks/{track_id} [get]
func NewGetTrackHandler(svc TrackGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		trackID, ok := trackIDParam(r)
		if !ok {
			writeServiceError(w, services.ErrTrackNotFound)
			return
		}

		track, err := svc.GetTrack(r.Context(), trackID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, track)
	}
}

// NewCreateTrackHandler returns an HTTP handler creating a track owned by the current user.
// @Summary Create track
// @Tags tracks
// @Accept json
// @Produce json
// @Param track body models.TrackCreate true "Track"
// @Success 201 {object} models.Track "Created track"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /tracks [post]
// @Security BearerAuth
func NewCreateTrackHandler(svc TrackCreator, currentUser CurrentUserFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r, currentUser)
		if !ok {
			return
		}

		var in models.TrackCreate
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		track, err := svc.CreateTrack(r.Context(), user.UserID, in)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, track)
	}
}

// NewUpdateTrackHandler returns an HTTP handler updating a track of the current user.
// @Summary Update track
// @Tags tracks
// @Accept json
// @Produce json
// @Param track_id path string true "Track ID"
// @Param track body models.TrackUpdate true "Fields to change"
// @Success 200 {object} models.Track "Updated track"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Not the owner"
// @Failure 404 {object} handlers.ErrorResponse "Track not found"
// @Router /tracks/{track_id} [put]
// @Security BearerAuth
func NewUpdateTrackHandler(svc TrackUpdater, currentUser CurrentUserFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r, currentUser)
		if !ok {
			return
		}

		trackID, ok := trackIDParam(r)
		if !ok {
			writeServiceError(w, services.ErrTrackNotFound)
			return
		}

		var in models.TrackUpdate
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		track, err := svc.UpdateTrack(r.Context(), user.UserID, trackID, in)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, track)
	}
}

// NewDeleteTrackHandler returns an HTTP handler deleting a track of the current user.
// @Summary Delete track
// @Description Deletes the track and every like of it.
// @Tags tracks
// @Param track_id path string true "Track ID"
// @Success 204 "Deleted"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.ErrorResponse "Not the owner"
// @Failure 404 {object} handlers.ErrorResponse "Track not found"
// @Router /tracks/{track_id} [delete]
// @Security BearerAuth
func NewDeleteTrackHandler(svc TrackDeleter, currentUser CurrentUserFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r, currentUser)
		if !ok {
			return
		}

		trackID, ok := trackIDParam(r)
		if !ok {
			writeServiceError(w, fmt.Errorf("%w: malformed id", services.ErrTrackNotFound))
			return
		}

		if err := svc.DeleteTrack(r.Context(), user.UserID, trackID); err != nil {
			writeServiceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

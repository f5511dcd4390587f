package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/soulsync/internal/models"
	"github.com/sbilibin2017/soulsync/internal/services"
)

//go:generate mockgen -source=likes.go -destination=likes_mock.go -package=handlers

// LikeLister returns a page of the user's likes.
type LikeLister interface {
	ListLikes(ctx context.Context, userID uuid.UUID, offset, limit int) ([]models.Like, error)
}

// LikeCreator likes a track.
type LikeCreator interface {
	CreateLike(ctx context.Context, userID, trackID uuid.UUID, artworkURL *string) (*models.Like, error)
}

// LikeDeleter removes a like.
type LikeDeleter interface {
	DeleteLike(ctx context.Context, userID, trackID uuid.UUID) error
}

// LikeChecker reports whether a like exists.
type LikeChecker interface {
	CheckLike(ctx context.Context, userID, trackID uuid.UUID) (bool, error)
}

// LikeSearcher searches the user's liked tracks.
type LikeSearcher interface {
	SearchLikes(ctx context.Context, userID uuid.UUID, q string, offset, limit int) ([]models.Like, error)
}

// LikeRequest represents the JSON body for liking a track
// swagger:model LikeRequest
type LikeRequest struct {
	// Track to like
	// required: true
	TrackID string `json:"track_id"`

	// Artwork snapshot; defaults to the track's artwork
	ArtworkURL *string `json:"artwork_url,omitempty"`
}

// NewListLikesHandler returns an HTTP handler listing the current user's likes, newest first.
// @Summary List likes
// @Tags likes
// @Produce json
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(100)
// @Success 200 {array} models.Like "Likes"
// @Failure 400 {object} handlers.ErrorResponse "Invalid pagination"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /likes [get]
// @Security BearerAuth
func NewListLikesHandler(svc LikeLister, currentUser CurrentUserFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r, currentUser)
		if !ok {
			return
		}

		offset, limit, err := parsePage(r, defaultPageLimit)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		likes, err := svc.ListLikes(r.Context(), user.UserID, offset, limit)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, likes)
	}
}

// NewCreateLikeHandler returns an HTTP handler liking a track.
// @Summary Like track
// @Tags likes
// @Accept json
// @Produce json
// @Param like body handlers.LikeRequest true "Like"
// @Success 201 {object} models.Like "Created like"
// @Failure 400 {object} handlers.ErrorResponse "Already liked / invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Track not found"
// @Router /likes [post]
// @Security BearerAuth
func NewCreateLikeHandler(svc LikeCreator, currentUser CurrentUserFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r, currentUser)
		if !ok {
			return
		}

		var req LikeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		trackID, err := uuid.Parse(req.TrackID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "track_id must be a UUID")
			return
		}

		like, err := svc.CreateLike(r.Context(), user.UserID, trackID, req.ArtworkURL)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, like)
	}
}

// NewDeleteLikeHandler returns an HTTP handler removing a like.
// @Summary Unlike track
// @Tags likes
// @Param track_id path string true "Track ID"
// @Success 204 "Deleted"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Like not found"
// @Router /likes/{track_id} [delete]
// @Security BearerAuth
func NewDeleteLikeHandler(svc LikeDeleter, currentUser CurrentUserFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r, currentUser)
		if !ok {
			return
		}

		trackID, ok := trackIDParam(r)
		if !ok {
			writeServiceError(w, services.ErrLikeNotFound)
			return
		}

		if err := svc.DeleteLike(r.Context(), user.UserID, trackID); err != nil {
			writeServiceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// NewCheckLikeHandler returns an HTTP handler reporting whether the current user likes a track.
// @Summary Check like
// @Tags likes
// @Produce json
// @Param track_id path string true "Track ID"
// @Success 200 {boolean} bool "Whether the track is liked"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /likes/check/{track_id} [get]
// @Security BearerAuth
func NewCheckLikeHandler(svc LikeChecker, currentUser CurrentUserFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r, currentUser)
		if !ok {
			return
		}

		trackID, ok := trackIDParam(r)
		if !ok {
			writeJSON(w, http.StatusOK, false)
			return
		}

		liked, err := svc.CheckLike(r.Context(), user.UserID, trackID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, liked)
	}
}

// NewSearchLikesHandler returns an HTTP handler searching the current user's likes.
// @Summary Search likes
// @Description Case-insensitive substring match over the liked tracks' title and artist. Queries shorter than 2 characters return an empty list.
// @Tags likes
// @Produce json
// @Param query query string false "Search text"
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(20)
// @Success 200 {array} models.Like "Likes"
// @Failure 400 {object} handlers.ErrorResponse "Invalid pagination"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 503 {object} handlers.ErrorResponse "Backing store unavailable"
// @Router /likes/search [get]
// @Security BearerAuth
func NewSearchLikesHandler(svc LikeSearcher, currentUser CurrentUserFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r, currentUser)
		if !ok {
			return
		}

		offset, limit, err := parsePage(r, defaultSearchLimit)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		likes, err := svc.SearchLikes(r.Context(), user.UserID, r.URL.Query().Get("query"), offset, limit)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, likes)
	}
}

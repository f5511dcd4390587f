package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/soulsync/internal/logger"
	"github.com/sbilibin2017/soulsync/internal/models"
	"github.com/sbilibin2017/soulsync/internal/services"
)

const (
	defaultPageLimit   = 100
	defaultSearchLimit = 20
	defaultRandomLimit = 20
)

// CurrentUserFunc returns the authenticated user of a request context.
type CurrentUserFunc func(ctx context.Context) (*models.UserDB, bool)

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: track not found
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeServiceError maps a service error to its HTTP status.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrUserAlreadyExists),
		errors.Is(err, services.ErrLikeAlreadyExists),
		errors.Is(err, services.ErrInactiveUser):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidToken):
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrForbidden):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrTrackNotFound),
		errors.Is(err, services.ErrLikeNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrBackingStoreUnavailable):
		writeError(w, http.StatusServiceUnavailable, services.ErrBackingStoreUnavailable.Error())
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// requireUser returns the authenticated user or writes 401.
func requireUser(w http.ResponseWriter, r *http.Request, currentUser CurrentUserFunc) (*models.UserDB, bool) {
	user, ok := currentUser(r.Context())
	if !ok {
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeError(w, http.StatusUnauthorized, services.ErrInvalidToken.Error())
		return nil, false
	}
	return user, true
}

// parsePage reads the skip and limit query parameters.
func parsePage(r *http.Request, defaultLimit int) (offset, limit int, err error) {
	offset, err = queryInt(r, "skip", 0)
	if err != nil {
		return 0, 0, err
	}
	limit, err = queryInt(r, "limit", defaultLimit)
	if err != nil {
		return 0, 0, err
	}
	if offset < 0 || limit < 0 {
		return 0, 0, fmt.Errorf("%w: skip and limit must not be negative", services.ErrInvalidInput)
	}
	return offset, limit, nil
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", services.ErrInvalidInput, name)
	}
	return v, nil
}

// trackIDParam parses the {track_id} URL parameter.
func trackIDParam(r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "track_id"))
	return id, err == nil
}

package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/soulsync/internal/models"
)

//go:generate mockgen -source=users.go -destination=users_mock.go -package=handlers

// UserLister returns pages of users.
type UserLister interface {
	ListUsers(ctx context.Context, offset, limit int) ([]models.UserDB, error)
}

// UserUpdater applies a profile update.
type UserUpdater interface {
	UpdateUser(ctx context.Context, user *models.UserDB, in models.UserUpdate) (*models.UserDB, error)
}

// NewListUsersHandler returns an HTTP handler listing users.
// @Summary List users
// @Tags users
// @Produce json
// @Param skip query int false "Offset" default(0)
// @Param limit query int false "Page size" default(100)
// @Success 200 {array} models.UserDB "Users"
// @Failure 400 {object} handlers.ErrorResponse "Invalid pagination"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /users [get]
// @Security BearerAuth
func NewListUsersHandler(svc UserLister, currentUser CurrentUserFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requireUser(w, r, currentUser); !ok {
			return
		}

		offset, limit, err := parsePage(r, defaultPageLimit)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		users, err := svc.ListUsers(r.Context(), offset, limit)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, users)
	}
}

// NewGetMeHandler returns an HTTP handler for the current user.
// @Summary Current user
// @Tags users
// @Produce json
// @Success 200 {object} models.UserDB "Current user"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /users/me [get]
// @Security BearerAuth
func NewGetMeHandler(currentUser CurrentUserFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r, currentUser)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}

// NewUpdateMeHandler returns an HTTP handler updating the current user.
// @Summary Update current user
// @Description Changes username, password or active flag. Omitted fields are left unchanged.
// @Tags users
// @Accept json
// @Produce json
// @Param userUpdate body models.UserUpdate true "Fields to change"
// @Success 200 {object} models.UserDB "Updated user"
// @Failure 400 {object} handlers.ErrorResponse "Username already registered / invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /users/me [put]
// @Security BearerAuth
func NewUpdateMeHandler(svc UserUpdater, currentUser CurrentUserFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := requireUser(w, r, currentUser)
		if !ok {
			return
		}

		var in models.UserUpdate
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		updated, err := svc.UpdateUser(r.Context(), user, in)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}

package handlers

import (
	"context"
	"encoding/json"
	"mime"
	"net/http"

	"github.com/sbilibin2017/soulsync/internal/models"
)

//go:generate mockgen -source=token.go -destination=token_mock.go -package=handlers

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (*models.TokenPair, error)
}

// Refresher exchanges a refresh token for a new pair.
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error)
}

// LoginRequest represents the credentials of a password grant.
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// default: alice
	Username string `json:"username"`

	// Password
	// required: true
	// default: pw123
	Password string `json:"password"`
}

// RefreshRequest represents the JSON body of a token refresh.
// swagger:model RefreshRequest
type RefreshRequest struct {
	// Refresh token issued by /auth/token or a previous refresh
	// required: true
	RefreshToken string `json:"refresh_token"`
}

// NewTokenHandler returns an HTTP handler for the OAuth2 password grant.
// @Summary Issue tokens
// @Description Authenticates with username and password and returns an access and refresh token pair. The new refresh token replaces the previous one.
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 200 {object} models.TokenPair "Token pair"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Incorrect username or password"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/token [post]
func NewTokenHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeLogin(r)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		pair, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, pair)
	}
}

// decodeLogin reads credentials from a form body, or from JSON when the request says so.
func decodeLogin(r *http.Request) (LoginRequest, bool) {
	var req LoginRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return req, false
		}
	} else {
		if err := r.ParseForm(); err != nil {
			return req, false
		}
		req.Username = r.PostForm.Get("username")
		req.Password = r.PostForm.Get("password")
	}

	return req, req.Username != "" && req.Password != ""
}

// NewRefreshHandler returns an HTTP handler for refresh token rotation.
// @Summary Refresh tokens
// @Description Exchanges a refresh token for a new token pair. The presented refresh token stops being valid.
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh_token query string false "Refresh token"
// @Param refreshRequest body handlers.RefreshRequest false "Refresh token in the body"
// @Success 200 {object} models.TokenPair "Token pair"
// @Failure 400 {object} handlers.ErrorResponse "Missing refresh token"
// @Failure 401 {object} handlers.ErrorResponse "Invalid refresh token"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/refresh [post]
func NewRefreshHandler(svc Refresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("refresh_token")
		if token == "" && r.ContentLength != 0 {
			var req RefreshRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, "invalid request body")
				return
			}
			token = req.RefreshToken
		}
		if token == "" {
			writeError(w, http.StatusBadRequest, "refresh_token is required")
			return
		}

		pair, err := svc.Refresh(r.Context(), token)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, pair)
	}
}

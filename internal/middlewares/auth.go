package middlewares

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/soulsync/internal/logger"
	"github.com/sbilibin2017/soulsync/internal/models"
	"github.com/sbilibin2017/soulsync/internal/services"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

// Tokener extracts the bearer token from a request.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
}

// UserResolver resolves the user an access token belongs to.
type UserResolver interface {
	ResolveCurrentUser(ctx context.Context, accessToken string) (*models.UserDB, error)
}

type userKey struct{}

// AuthMiddleware returns a middleware that resolves the current user from the bearer token
// and stores it in the request context.
func AuthMiddleware(tokener Tokener, resolver UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Infow("authorization failed", "request_id", requestID(ctx), "err", err)
				unauthorized(w)
				return
			}

			user, err := resolver.ResolveCurrentUser(ctx, tokenString)
			switch {
			case err == nil:
			case errors.Is(err, services.ErrInvalidToken):
				unauthorized(w)
				return
			case errors.Is(err, services.ErrInactiveUser):
				writeError(w, http.StatusBadRequest, services.ErrInactiveUser.Error())
				return
			default:
				logger.Log.Errorw("failed to resolve current user", "request_id", requestID(ctx), "err", err)
				writeError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(ctx, userKey{}, user)))
		})
	}
}

// GetUserFromContext returns the user stored by AuthMiddleware.
func GetUserFromContext(ctx context.Context) (*models.UserDB, bool) {
	user, ok := ctx.Value(userKey{}).(*models.UserDB)
	return user, ok && user != nil
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeError(w, http.StatusUnauthorized, services.ErrInvalidToken.Error())
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/soulsync/internal/logger"
	"github.com/sbilibin2017/soulsync/internal/models"
	"github.com/sbilibin2017/soulsync/internal/password"
	"github.com/sbilibin2017/soulsync/internal/repositories"
)

//go:generate mockgen -source=users.go -destination=users_mock.go -package=services

// UserLister returns pages of users.
type UserLister interface {
	List(ctx context.Context, offset, limit int) ([]models.UserDB, error)
}

// UserUpdater changes stored user fields. Nil arguments are left unchanged.
type UserUpdater interface {
	Update(ctx context.Context, userID uuid.UUID, username, passwordHash *string, isActive *bool) (*models.UserDB, error)
}

// UserService serves the user profile operations.
type UserService struct {
	lister  UserLister
	reader  UserReader
	updater UserUpdater
	hasher  PasswordHasher
}

// NewUserService creates a new UserService.
func NewUserService(lister UserLister, reader UserReader, updater UserUpdater, hasher PasswordHasher) *UserService {
	return &UserService{
		lister:  lister,
		reader:  reader,
		updater: updater,
		hasher:  hasher,
	}
}

// ListUsers returns a page of users.
func (s *UserService) ListUsers(ctx context.Context, offset, limit int) ([]models.UserDB, error) {
	if err := validatePage(offset, limit); err != nil {
		return nil, err
	}

	users, err := s.lister.List(ctx, offset, limit)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	return users, nil
}

// UpdateUser applies a profile update to the given user and returns the stored result.
// A new password is re-hashed; a new username must not belong to someone else.
func (s *UserService) UpdateUser(ctx context.Context, user *models.UserDB, in models.UserUpdate) (*models.UserDB, error) {
	var username, hash *string

	if in.Username != nil {
		name := strings.TrimSpace(*in.Username)
		if name == "" {
			return nil, fmt.Errorf("%w: username must not be empty", ErrInvalidInput)
		}
		if err := checkText("username", name, MaxUsernameLength); err != nil {
			return nil, err
		}
		if name != user.Username {
			existing, err := s.reader.GetByUsername(ctx, name)
			if err != nil {
				logger.Log.Errorw("failed to check user exists", "err", err)
				return nil, err
			}
			if existing != nil {
				return nil, ErrUserAlreadyExists
			}
		}
		username = &name
	}

	if in.Password != nil && *in.Password != "" {
		h, err := s.hasher.Hash(*in.Password)
		if err != nil {
			if errors.Is(err, password.ErrPasswordTooLong) {
				return nil, fmt.Errorf("%w: password is too long", ErrInvalidInput)
			}
			logger.Log.Errorw("failed to hash password", "err", err)
			return nil, err
		}
		hash = &h
	}

	updated, err := s.updater.Update(ctx, user.UserID, username, hash, in.IsActive)
	if err != nil {
		if errors.Is(err, repositories.ErrConflict) {
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to update user", "user_id", user.UserID, "err", err)
		return nil, rejectedValue(err)
	}
	if updated == nil {
		logger.Log.Warnw("user vanished during update", "user_id", user.UserID)
		return nil, ErrInvalidToken
	}

	return updated, nil
}

func validatePage(offset, limit int) error {
	if offset < 0 || limit < 0 {
		return fmt.Errorf("%w: skip and limit must not be negative", ErrInvalidInput)
	}
	return nil
}

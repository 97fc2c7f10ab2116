// Package services contains server-side business logic. This file implements
// UserService, which creates and looks up users.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/exercisetracker/internal/logging"
	"github.com/dmitrijs2005/exercisetracker/internal/server/models"
	"github.com/dmitrijs2005/exercisetracker/internal/server/repositories/users"
	"github.com/dmitrijs2005/exercisetracker/internal/server/validation"
)

// UserService provides the user lifecycle:
// - Create: register a username
// - Get: look up one user by id
// - List: every user in insertion order
type UserService struct {
	users  users.Repository
	logger logging.Logger
}

// NewUserService constructs a UserService over the given repository.
func NewUserService(r users.Repository, l logging.Logger) *UserService {
	return &UserService{users: r, logger: l.With("module", "user_service")}
}

// Create validates the username and stores a new user with an empty log.
func (s *UserService) Create(ctx context.Context, username string) (*models.User, error) {
	name, err := validation.Username(username)
	if err != nil {
		return nil, err
	}

	u, err := s.users.Create(ctx, &models.User{Username: name})
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info(ctx, "user created", "user_id", u.ID)
	return u, nil
}

// Get validates the id and returns the user's identity.
// Unknown ids yield common.ErrorNotFound.
func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	id, err := validation.UserID(id)
	if err != nil {
		return nil, err
	}

	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error finding user: %w", err)
	}
	return u, nil
}

func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	all, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	return all, nil
}

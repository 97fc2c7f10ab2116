// Package users stores User documents together with their embedded exercise
// logs. Every backend assigns 24-character hex identifiers.
package users

import (
	"context"

	"github.com/dmitrijs2005/exercisetracker/internal/server/models"
)

// Repository is the store capability the services need.
//
// FindByID and List return identity and stored count without the log.
// AppendExercise pushes one entry and bumps count in a single atomic update
// and returns the updated identity and count. QueryLog runs the filter/limit
// pipeline in the store and returns common.ErrorNotFound when it yields no
// row, which covers both a missing user and a log with no surviving entry.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	AppendExercise(ctx context.Context, id string, exercise models.Exercise) (*models.User, error)
	QueryLog(ctx context.Context, id string, query models.LogQuery) (*models.UserLog, error)
}

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/exercisetracker/internal/common"
	"github.com/dmitrijs2005/exercisetracker/internal/logging"
	"github.com/dmitrijs2005/exercisetracker/internal/server/models"
	"github.com/dmitrijs2005/exercisetracker/internal/server/repositories/users"
	"github.com/dmitrijs2005/exercisetracker/internal/server/validation"
)

// AddedExercise is the outcome of an append: the owner's identity and the
// exercise as stored.
type AddedExercise struct {
	User     *models.User
	Exercise models.Exercise
}

// ExerciseService appends exercises and answers log queries.
type ExerciseService struct {
	users  users.Repository
	logger logging.Logger
	now    func() time.Time
}

// NewExerciseService constructs an ExerciseService over the given repository.
func NewExerciseService(r users.Repository, l logging.Logger) *ExerciseService {
	return &ExerciseService{users: r, logger: l.With("module", "exercise_service"), now: time.Now}
}

// AddExercise validates the id and payload, defaults the date to now and
// appends the exercise in one store operation.
func (s *ExerciseService) AddExercise(ctx context.Context, id string, in validation.ExerciseInput) (*AddedExercise, error) {
	id, err := validation.UserID(id)
	if err != nil {
		return nil, err
	}
	fields, err := validation.Exercise(in)
	if err != nil {
		return nil, err
	}

	date := s.now().UTC()
	if fields.Date != nil {
		date = *fields.Date
	}
	e := models.Exercise{Description: fields.Description, Duration: fields.Duration, Date: date}

	u, err := s.users.AppendExercise(ctx, id, e)
	if err != nil {
		return nil, fmt.Errorf("error appending exercise: %w", err)
	}

	s.logger.Debug(ctx, "exercise added", "user_id", u.ID, "count", u.Count)
	return &AddedExercise{User: u, Exercise: e}, nil
}

// Log validates the filters and runs the log query. When nothing survives
// the filters the result is tagged LogEmpty or LogUserMissing with a zero
// count and an empty log.
func (s *ExerciseService) Log(ctx context.Context, id string, in validation.LogInput) (*models.UserLog, error) {
	id, err := validation.UserID(id)
	if err != nil {
		return nil, err
	}
	q, err := validation.LogQuery(in)
	if err != nil {
		return nil, err
	}

	result, err := s.users.QueryLog(ctx, id, q)
	if err == nil {
		return result, nil
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("error querying log: %w", err)
	}

	result = &models.UserLog{Status: models.LogEmpty, ID: id, Query: q, Log: []models.Exercise{}}

	u, err := s.users.FindByID(ctx, id)
	switch {
	case err == nil:
		result.Username = u.Username
	case errors.Is(err, common.ErrorNotFound):
		result.Status = models.LogUserMissing
	default:
		return nil, fmt.Errorf("error finding user: %w", err)
	}

	s.logger.Info(ctx, "log query matched nothing", "user_id", id, "status", result.Status.String())
	return result, nil
}

package services

import (
	"context"

	"github.com/dmitrijs2005/exercisetracker/internal/server/models"
)

// fakeUsersRepo is a programmable users.Repository.
type fakeUsersRepo struct {
	createOut *models.User
	createErr error
	created   *models.User

	findOut *models.User
	findErr error

	listOut []*models.User
	listErr error

	appendOut *models.User
	appendErr error
	appended  *models.Exercise

	logOut *models.UserLog
	logErr error
	query  *models.LogQuery

	calls []string
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	f.calls = append(f.calls, "Create")
	f.created = u
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createOut, nil
}

func (f *fakeUsersRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	f.calls = append(f.calls, "FindByID")
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.findOut, nil
}

func (f *fakeUsersRepo) List(ctx context.Context) ([]*models.User, error) {
	f.calls = append(f.calls, "List")
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func (f *fakeUsersRepo) AppendExercise(ctx context.Context, id string, e models.Exercise) (*models.User, error) {
	f.calls = append(f.calls, "AppendExercise")
	f.appended = &e
	if f.appendErr != nil {
		return nil, f.appendErr
	}
	return f.appendOut, nil
}

func (f *fakeUsersRepo) QueryLog(ctx context.Context, id string, q models.LogQuery) (*models.UserLog, error) {
	f.calls = append(f.calls, "QueryLog")
	f.query = &q
	if f.logErr != nil {
		return nil, f.logErr
	}
	return f.logOut, nil
}

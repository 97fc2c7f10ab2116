package users

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/exercisetracker/internal/common"
	"github.com/dmitrijs2005/exercisetracker/internal/server/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepository keeps users in process memory. It backs memory:// DSNs
// for local runs and tests; data is lost on restart.
type MemoryRepository struct {
	mu    sync.RWMutex
	order []string
	users map[string]*models.User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[string]*models.User)}
}

func identity(u *models.User) *models.User {
	return &models.User{ID: u.ID, Username: u.Username, Count: u.Count}
}

func (r *MemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u := &models.User{ID: primitive.NewObjectID().Hex(), Username: user.Username, Log: []models.Exercise{}}
	r.users[u.ID] = u
	r.order = append(r.order, u.ID)

	return identity(u), nil
}

func (r *MemoryRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return identity(u), nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.User, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, identity(r.users[id]))
	}
	return result, nil
}

func (r *MemoryRepository) AppendExercise(ctx context.Context, id string, exercise models.Exercise) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	exercise.Date = exercise.Date.UTC()
	u.Log = append(u.Log, exercise)
	u.Count = len(u.Log)

	return identity(u), nil
}

func (r *MemoryRepository) QueryLog(ctx context.Context, id string, q models.LogQuery) (*models.UserLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}

	var log []models.Exercise
	for _, e := range u.Log {
		if !q.Match(e.Date) {
			continue
		}
		if q.HasLimit() && len(log) == *q.Limit {
			break
		}
		log = append(log, e)
	}
	if len(log) == 0 {
		return nil, common.ErrorNotFound
	}

	return &models.UserLog{
		Status:   models.LogFound,
		ID:       u.ID,
		Username: u.Username,
		Count:    u.Count,
		Query:    q,
		Log:      log,
	}, nil
}

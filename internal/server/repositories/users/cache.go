package users

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/dmitrijs2005/exercisetracker/internal/logging"
	"github.com/dmitrijs2005/exercisetracker/internal/server/models"
	"github.com/redis/go-redis/v9"
)

// cacheClient is the subset of *redis.Client used by CachedRepository.
type cacheClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type cachedUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Count    int    `json:"count"`
}

// CachedRepository caches user identities in Redis in front of another
// Repository. Cache failures are logged and never fail the call.
type CachedRepository struct {
	Repository
	client cacheClient
	ttl    time.Duration
	log    logging.Logger
}

func NewCachedRepository(inner Repository, client cacheClient, ttl time.Duration, log logging.Logger) *CachedRepository {
	return &CachedRepository{
		Repository: inner,
		client:     client,
		ttl:        ttl,
		log:        log.With("module", "user_cache"),
	}
}

func cacheKey(id string) string {
	return "user:" + id
}

func (r *CachedRepository) remember(ctx context.Context, u *models.User) {
	data, err := json.Marshal(cachedUser{ID: u.ID, Username: u.Username, Count: u.Count})
	if err != nil {
		r.log.Warn(ctx, "cache encode failed", "user_id", u.ID, "error", err)
		return
	}
	if err := r.client.Set(ctx, cacheKey(u.ID), data, r.ttl).Err(); err != nil {
		r.log.Warn(ctx, "cache set failed", "user_id", u.ID, "error", err)
	}
}

func (r *CachedRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	u, err := r.Repository.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	r.remember(ctx, u)
	return u, nil
}

func (r *CachedRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	data, err := r.client.Get(ctx, cacheKey(id)).Bytes()
	switch {
	case err == nil:
		var cu cachedUser
		if err := json.Unmarshal(data, &cu); err == nil {
			return &models.User{ID: cu.ID, Username: cu.Username, Count: cu.Count}, nil
		}
		r.log.Warn(ctx, "cache entry corrupt", "user_id", id)
		if err := r.client.Del(ctx, cacheKey(id)).Err(); err != nil {
			r.log.Warn(ctx, "cache del failed", "user_id", id, "error", err)
		}
	case !errors.Is(err, redis.Nil):
		r.log.Warn(ctx, "cache get failed", "user_id", id, "error", err)
	}

	u, err := r.Repository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.remember(ctx, u)
	return u, nil
}

func (r *CachedRepository) AppendExercise(ctx context.Context, id string, exercise models.Exercise) (*models.User, error) {
	u, err := r.Repository.AppendExercise(ctx, id, exercise)
	if err != nil {
		return nil, err
	}
	r.remember(ctx, u)
	return u, nil
}

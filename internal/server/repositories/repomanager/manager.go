// Package repomanager owns the lifecycle of the user store: it picks a
// backend from the DSN scheme, vends the users repository and exposes
// ping, migration and close hooks.
package repomanager

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/exercisetracker/internal/common"
	"github.com/dmitrijs2005/exercisetracker/internal/server/repositories/users"
)

type RepositoryManager interface {
	Users() users.Repository
	Ping(ctx context.Context) error
	RunMigrations(ctx context.Context) error
	Close(ctx context.Context) error
}

// Backend names returned by Scheme.
const (
	BackendMongo    = "mongo"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// Scheme maps a DSN to the backend that serves it. Only URL-style DSNs are
// accepted; the scheme is matched case-insensitively.
func Scheme(dsn string) (string, error) {
	scheme, _, ok := strings.Cut(dsn, "://")
	if !ok {
		return "", fmt.Errorf("%w: no scheme in dsn", common.ErrorUnsupportedStore)
	}

	switch strings.ToLower(scheme) {
	case "mongodb", "mongodb+srv":
		return BackendMongo, nil
	case "postgres", "postgresql":
		return BackendPostgres, nil
	case "memory":
		return BackendMemory, nil
	default:
		return "", fmt.Errorf("%w: %q", common.ErrorUnsupportedStore, scheme)
	}
}

// NewRepositoryManager connects to the store named by dsn. dbName is used by
// the MongoDB backend only.
func NewRepositoryManager(ctx context.Context, dsn, dbName string) (RepositoryManager, error) {
	backend, err := Scheme(dsn)
	if err != nil {
		return nil, err
	}

	switch backend {
	case BackendMongo:
		return OpenMongo(ctx, dsn, dbName)
	case BackendPostgres:
		return OpenPostgres(dsn)
	default:
		return NewMemoryRepositoryManager(), nil
	}
}

package repomanager

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/exercisetracker/internal/server/repositories/users"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoRepositoryManager vends the MongoDB users repository.
type MongoRepositoryManager struct {
	client *mongo.Client
	users  users.Repository
}

// OpenMongo connects a client to uri and binds the users collection of dbName.
func OpenMongo(ctx context.Context, uri, dbName string) (*MongoRepositoryManager, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("db connect error: %w", err)
	}
	return NewMongoRepositoryManager(client, client.Database(dbName)), nil
}

func NewMongoRepositoryManager(client *mongo.Client, db *mongo.Database) *MongoRepositoryManager {
	return &MongoRepositoryManager{
		client: client,
		users:  users.NewMongoRepository(db.Collection(users.CollectionName)),
	}
}

func (m *MongoRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *MongoRepositoryManager) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

// RunMigrations is a no-op: documents are schemaless and the collection is
// created on first insert.
func (m *MongoRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m *MongoRepositoryManager) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

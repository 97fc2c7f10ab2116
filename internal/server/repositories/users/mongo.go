package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/exercisetracker/internal/common"
	"github.com/dmitrijs2005/exercisetracker/internal/server/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CollectionName is the MongoDB collection holding user documents.
const CollectionName = "users"

type exerciseDocument struct {
	Description string    `bson:"description"`
	Duration    int       `bson:"duration"`
	Date        time.Time `bson:"date"`
}

type userDocument struct {
	ID       primitive.ObjectID `bson:"_id"`
	Username string             `bson:"username"`
	Count    int                `bson:"count"`
	Log      []exerciseDocument `bson:"log"`
}

func (d *userDocument) toModel() *models.User {
	u := &models.User{ID: d.ID.Hex(), Username: d.Username, Count: d.Count}
	if len(d.Log) > 0 {
		u.Log = make([]models.Exercise, 0, len(d.Log))
		for _, e := range d.Log {
			u.Log = append(u.Log, models.Exercise{Description: e.Description, Duration: e.Duration, Date: e.Date.UTC()})
		}
	}
	return u
}

var withoutLog = bson.M{"log": 0}

// MongoRepository keeps one document per user with the log embedded as an array.
type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(coll *mongo.Collection) *MongoRepository {
	return &MongoRepository{coll: coll}
}

func (r *MongoRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	doc := userDocument{
		ID:       primitive.NewObjectID(),
		Username: user.Username,
		Log:      []exerciseDocument{},
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return &models.User{ID: doc.ID.Hex(), Username: doc.Username}, nil
}

func (r *MongoRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrorNotFound
	}

	var doc userDocument
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}, options.FindOne().SetProjection(withoutLog)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return doc.toModel(), nil
}

func (r *MongoRepository) List(ctx context.Context) ([]*models.User, error) {
	opts := options.Find().SetProjection(withoutLog).SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	var docs []userDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	result := make([]*models.User, 0, len(docs))
	for i := range docs {
		result = append(result, docs[i].toModel())
	}
	return result, nil
}

// AppendExercise pushes the entry and increments count in one findAndModify,
// so concurrent appends to the same user cannot overwrite each other.
func (r *MongoRepository) AppendExercise(ctx context.Context, id string, exercise models.Exercise) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrorNotFound
	}

	update := bson.M{
		"$push": bson.M{"log": exerciseDocument{
			Description: exercise.Description,
			Duration:    exercise.Duration,
			Date:        exercise.Date.UTC(),
		}},
		"$inc": bson.M{"count": 1},
	}
	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(withoutLog)

	var doc userDocument
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return doc.toModel(), nil
}

// logPipeline builds match -> unwind -> [from] -> [to] -> [limit] -> group.
// $unwind keeps array order and $push inside $group preserves it, so the
// returned log is in append order.
func logPipeline(oid primitive.ObjectID, q models.LogQuery) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "_id", Value: oid}}}},
		{{Key: "$unwind", Value: "$log"}},
	}

	if lo, ok := q.Lower(); ok {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.D{
			{Key: "log.date", Value: bson.D{{Key: "$gte", Value: lo}}},
		}}})
	}
	if hi, ok := q.Upper(); ok {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.D{
			{Key: "log.date", Value: bson.D{{Key: "$lt", Value: hi}}},
		}}})
	}
	if q.HasLimit() {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: int64(*q.Limit)}})
	}

	pipeline = append(pipeline, bson.D{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: "$_id"},
		{Key: "username", Value: bson.D{{Key: "$first", Value: "$username"}}},
		{Key: "count", Value: bson.D{{Key: "$first", Value: "$count"}}},
		{Key: "log", Value: bson.D{{Key: "$push", Value: "$log"}}},
	}}})

	return pipeline
}

func (r *MongoRepository) QueryLog(ctx context.Context, id string, q models.LogQuery) (*models.UserLog, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrorNotFound
	}

	cursor, err := r.coll.Aggregate(ctx, logPipeline(oid, q))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	var docs []userDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if len(docs) == 0 {
		return nil, common.ErrorNotFound
	}

	u := docs[0].toModel()
	return &models.UserLog{
		Status:   models.LogFound,
		ID:       u.ID,
		Username: u.Username,
		Count:    u.Count,
		Query:    q,
		Log:      u.Log,
	}, nil
}

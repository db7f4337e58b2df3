package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"civicpulse/fixtures"
	"civicpulse/models"
)

const (
	ComplaintsCollection = "complaints"
	WorkersCollection    = "workers"
	ProjectsCollection   = "projects"
)

// seqField records each document's position in the fixture files so lists
// come back in the same order as from MemoryStore.
const seqField = "seq"

// MongoStore reads records seeded by Seed. Documents come back in seed order.
type MongoStore struct {
	complaints *mongo.Collection
	workers    *mongo.Collection
	projects   *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		complaints: db.Collection(ComplaintsCollection),
		workers:    db.Collection(WorkersCollection),
		projects:   db.Collection(ProjectsCollection),
	}
}

func (s *MongoStore) Complaints(ctx context.Context) ([]models.Complaint, error) {
	return findAll[models.Complaint](ctx, s.complaints)
}

func (s *MongoStore) Complaint(ctx context.Context, id string) (models.Complaint, bool, error) {
	return findOne[models.Complaint](ctx, s.complaints, id)
}

func (s *MongoStore) Workers(ctx context.Context) ([]models.Worker, error) {
	return findAll[models.Worker](ctx, s.workers)
}

func (s *MongoStore) Worker(ctx context.Context, id string) (models.Worker, bool, error) {
	return findOne[models.Worker](ctx, s.workers, id)
}

func (s *MongoStore) Projects(ctx context.Context) ([]models.Project, error) {
	return findAll[models.Project](ctx, s.projects)
}

func (s *MongoStore) Project(ctx context.Context, id string) (models.Project, bool, error) {
	return findOne[models.Project](ctx, s.projects, id)
}

func findAll[T any](ctx context.Context, coll *mongo.Collection) ([]T, error) {
	opts := options.Find().SetSort(bson.D{{Key: seqField, Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", coll.Name(), err)
	}
	defer cursor.Close(ctx)

	out := []T{}
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", coll.Name(), err)
	}
	return out, nil
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, id string) (T, bool, error) {
	var v T
	err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&v)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return v, false, nil
	}
	if err != nil {
		return v, false, fmt.Errorf("failed to fetch %s %q: %w", coll.Name(), id, err)
	}
	return v, true, nil
}

// indexModels lists the secondary indexes the list filters hit.
func indexModels() map[string][]mongo.IndexModel {
	seq := mongo.IndexModel{Keys: bson.D{{Key: seqField, Value: 1}}}
	return map[string][]mongo.IndexModel{
		ComplaintsCollection: {
			seq,
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "category", Value: 1}}},
			{Keys: bson.D{{Key: "zone", Value: 1}}},
			{Keys: bson.D{{Key: "assigneeId", Value: 1}}},
			{Keys: bson.D{{Key: "reportedAt", Value: -1}}},
		},
		WorkersCollection: {
			seq,
			{Keys: bson.D{{Key: "zone", Value: 1}, {Key: "status", Value: 1}}},
		},
		ProjectsCollection: {
			seq,
			{Keys: bson.D{{Key: "status", Value: 1}}},
		},
	}
}

// EnsureIndexes creates the indexes from indexModels.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for name, specs := range indexModels() {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, specs); err != nil {
			return fmt.Errorf("failed to create %s indexes: %w", name, err)
		}
	}
	return nil
}

// Seed replaces the three collections with ds and rebuilds the indexes.
func Seed(ctx context.Context, db *mongo.Database, ds *fixtures.Dataset) error {
	if err := replace(ctx, db.Collection(ComplaintsCollection), ds.Complaints); err != nil {
		return err
	}
	if err := replace(ctx, db.Collection(WorkersCollection), ds.Workers); err != nil {
		return err
	}
	if err := replace(ctx, db.Collection(ProjectsCollection), ds.Projects); err != nil {
		return err
	}
	return EnsureIndexes(ctx, db)
}

func replace[T any](ctx context.Context, coll *mongo.Collection, records []T) error {
	if err := coll.Drop(ctx); err != nil {
		return fmt.Errorf("failed to drop %s: %w", coll.Name(), err)
	}
	if len(records) == 0 {
		return nil
	}
	docs, err := sequenced(records)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", coll.Name(), err)
	}
	if _, err := coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert %s: %w", coll.Name(), err)
	}
	slog.Info("seeded collection", "collection", coll.Name(), "count", len(records))
	return nil
}

// sequenced encodes records and stamps each with its position.
func sequenced[T any](records []T) ([]any, error) {
	docs := make([]any, len(records))
	for i, rec := range records {
		raw, err := bson.Marshal(rec)
		if err != nil {
			return nil, err
		}
		var doc bson.D
		if err := bson.Unmarshal(raw, &doc); err != nil {
			return nil, err
		}
		docs[i] = append(doc, bson.E{Key: seqField, Value: i})
	}
	return docs, nil
}

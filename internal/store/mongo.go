package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const defaultDatabaseName = "luxuria"

// MongoStore maps collections one to one onto MongoDB collections.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

var (
	_ Store     = (*MongoStore)(nil)
	_ Inspector = (*MongoStore)(nil)
)

// NewMongoStore wraps an already connected database handle.
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{client: db.Client(), db: db}
}

// ConnectMongo dials uri, verifies the primary answers and selects database name.
func ConnectMongo(ctx context.Context, uri, name string) (*MongoStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	if name == "" {
		name = defaultDatabaseName
	}
	return NewMongoStore(client.Database(name)), nil
}

func (s *MongoStore) Find(ctx context.Context, collection string, filter Filter, limit int) ([]Document, error) {
	q := bson.M{}
	for k, v := range filter {
		q[k] = v
	}
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cur, err := s.db.Collection(collection).Find(ctx, q, opts)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", collection, err)
	}
	var raw []bson.M
	if err := cur.All(ctx, &raw); err != nil {
		return nil, fmt.Errorf("find %s: %w", collection, err)
	}

	out := make([]Document, 0, len(raw))
	for _, m := range raw {
		out = append(out, Document(m))
	}
	return out, nil
}

func (s *MongoStore) Insert(ctx context.Context, collection string, doc any) (string, error) {
	b, err := bson.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("insert %s: %w", collection, err)
	}
	d := bson.M{}
	if err := bson.Unmarshal(b, &d); err != nil {
		return "", fmt.Errorf("insert %s: %w", collection, err)
	}
	now := time.Now().UTC()
	d["created_at"] = now
	d["updated_at"] = now

	res, err := s.db.Collection(collection).InsertOne(ctx, d)
	if err != nil {
		return "", fmt.Errorf("insert %s: %w", collection, err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(res.InsertedID), nil
}

func (s *MongoStore) Name() string { return s.db.Name() }

func (s *MongoStore) Collections(ctx context.Context) ([]string, error) {
	return s.db.ListCollectionNames(ctx, bson.D{})
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

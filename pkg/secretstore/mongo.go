package secretstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// MongoCollection is the subset of *mongo.Collection the backend needs.
type MongoCollection interface {
	FindOne(ctx context.Context, filter any, opts ...options.Lister[options.FindOneOptions]) *mongo.SingleResult
	ReplaceOne(ctx context.Context, filter any, replacement any, opts ...options.Lister[options.ReplaceOptions]) (*mongo.UpdateResult, error)
}

type secretDocument struct {
	ID        string    `bson:"_id"`
	Record    []byte    `bson:"record"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// MongoBackend keeps the record as one document whose _id is the record name.
// Single-document replaces are atomic in MongoDB.
type MongoBackend struct {
	coll MongoCollection
	name string
	now  func() time.Time
}

// NewMongoBackend stores the record in the document identified by name.
func NewMongoBackend(coll MongoCollection, name string) *MongoBackend {
	return &MongoBackend{coll: coll, name: name, now: time.Now}
}

func (b *MongoBackend) Name() string { return "mongo" }

func (b *MongoBackend) Read(ctx context.Context) ([]byte, error) {
	var doc secretDocument
	if err := b.coll.FindOne(ctx, bson.D{{Key: "_id", Value: b.name}}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("%w: mongo document %q", ErrNotFound, b.name)
		}
		return nil, errors.Join(ErrStoreUnavailable, err)
	}
	return doc.Record, nil
}

func (b *MongoBackend) Write(ctx context.Context, data []byte) error {
	doc := secretDocument{ID: b.name, Record: data, UpdatedAt: b.now().UTC()}
	_, err := b.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: b.name}}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}

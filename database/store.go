// Package database provides the record store the dashboard reads and writes.
// Every collection is a flat mapping from a string id to one document; the
// Store is handed to its consumers explicitly rather than held in a package
// global, so tests can swap in a fake.
package database

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/rs/xid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names. DeliveryFeesID is the fixed id of the fee schedule
// document inside CollectionSettings.
const (
	CollectionUsers       = "users"
	CollectionOrders      = "orders"
	CollectionProducts    = "products"
	CollectionBanners     = "banners"
	CollectionSubscribers = "subscribers"
	CollectionMailLogs    = "mailLogs"
	CollectionSettings    = "settings"
	CollectionAdmins      = "admins"

	DeliveryFeesID = "deliveryFees"
)

// ErrNotFound reports that an id does not resolve within its collection.
// Any other error from a RecordStore means the store itself failed; callers
// distinguish the two with errors.Is.
var ErrNotFound = errors.New("record not found")

// RecordStore is the uniform document accessor the rest of the application is
// written against. FindAll decodes a whole collection into *[]T; an absent or
// empty collection yields an empty slice, not an error.
type RecordStore interface {
	FindAll(ctx context.Context, collection string, out interface{}) error
	FindByID(ctx context.Context, collection, id string, out interface{}) error
	Set(ctx context.Context, collection, id string, doc interface{}) error
	Push(ctx context.Context, collection string, doc interface{}) (string, error)
	Update(ctx context.Context, collection, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, collection, id string) error
	Count(ctx context.Context, collection string) (int64, error)
}

// Store is the MongoDB-backed RecordStore.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

func Connect(uri, dbName string) (*Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	log.Println("Connected to MongoDB")
	return &Store{client: client, db: client.Database(dbName)}, nil
}

func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}

func (s *Store) FindAll(ctx context.Context, collection string, out interface{}) error {
	cursor, err := s.db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("find all %s: %w", collection, err)
	}
	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("decode %s: %w", collection, err)
	}
	return nil
}

func (s *Store) FindByID(ctx context.Context, collection, id string, out interface{}) error {
	err := s.db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(out)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return fmt.Errorf("find %s/%s: %w", collection, id, err)
	}
	return nil
}

// Set writes doc at the given id, creating or replacing it whole.
func (s *Store) Set(ctx context.Context, collection, id string, doc interface{}) error {
	_, err := s.db.Collection(collection).ReplaceOne(
		ctx,
		bson.M{"_id": id},
		doc,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("set %s/%s: %w", collection, id, err)
	}
	return nil
}

// Push stores doc under a freshly generated id and returns it. xid keys sort
// chronologically, the same property push keys had in the store this schema
// grew up in.
func (s *Store) Push(ctx context.Context, collection string, doc interface{}) (string, error) {
	id := xid.New().String()
	if err := s.Set(ctx, collection, id, doc); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) Update(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	result, err := s.db.Collection(collection).UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M(fields)},
	)
	if err != nil {
		return fmt.Errorf("update %s/%s: %w", collection, id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, collection, id string) error {
	result, err := s.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Count(ctx context.Context, collection string) (int64, error) {
	n, err := s.db.Collection(collection).CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", collection, err)
	}
	return n, nil
}

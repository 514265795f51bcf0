// Package mongodb is a thin collection-parameterized facade over the MongoDB
// driver. Domain packages depend on the Store interface so tests can swap in
// fakes without a running database.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names, one per entity. Set here once instead of deriving them
// from type names at runtime.
const (
	CollectionProduct        = "product"
	CollectionOrder          = "order"
	CollectionBooking        = "booking"
	CollectionFAQ            = "faq"
	CollectionContactMessage = "contactmessage"
)

// ErrNotFound reports that no document matched the given identifier. It is a
// valid outcome of lookups, replaces and deletes; handlers map it to 404.
var ErrNotFound = errors.New("document not found")

// Collections lists every known collection name, in the order entities are
// documented.
func Collections() []string {
	return []string{
		CollectionProduct,
		CollectionOrder,
		CollectionBooking,
		CollectionFAQ,
		CollectionContactMessage,
	}
}

// Store is the gateway surface domain packages operate against.
type Store interface {
	Insert(ctx context.Context, collection string, doc any) (primitive.ObjectID, error)
	FindMany(ctx context.Context, collection string, filter bson.M, limit int64, out any) error
	FindOne(ctx context.Context, collection string, id primitive.ObjectID, out any) error
	Replace(ctx context.Context, collection string, id primitive.ObjectID, doc any) error
	Delete(ctx context.Context, collection string, id primitive.ObjectID) error

	Ping(ctx context.Context) error
	CollectionNames(ctx context.Context) ([]string, error)
	Name() string
}

type Conf struct {
	client *mongo.Client
	db     *mongo.Database
}

var _ Store = (*Conf)(nil)

// Open connects to the database at uri and pings it before returning, so a
// bad connection string fails at startup rather than on first request.
func Open(ctx context.Context, uri string, dbName string) (*Conf, error) {
	if uri == "" {
		return nil, fmt.Errorf("database uri is empty")
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Conf{client: client, db: client.Database(dbName)}, nil
}

// Close releases the underlying client connections.
func (c *Conf) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}

// Insert persists exactly one new document and returns its assigned id.
func (c *Conf) Insert(ctx context.Context, collection string, doc any) (primitive.ObjectID, error) {
	res, err := c.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to insert into %s: %w", collection, err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

// FindMany decodes every document matching the equality filter into out, in
// insertion order. A limit <= 0 leaves the result unrestricted.
func (c *Conf) FindMany(ctx context.Context, collection string, filter bson.M, limit int64, out any) error {
	if filter == nil {
		filter = bson.M{}
	}
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := c.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return fmt.Errorf("failed to query %s: %w", collection, err)
	}
	if err := cur.All(ctx, out); err != nil {
		return fmt.Errorf("failed to decode %s documents: %w", collection, err)
	}
	return nil
}

// FindOne decodes the document with the given id into out, or ErrNotFound.
func (c *Conf) FindOne(ctx context.Context, collection string, id primitive.ObjectID, out any) error {
	err := c.db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(out)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to fetch from %s: %w", collection, err)
	}
	return nil
}

// Replace overwrites every field of the matched document with doc, leaving
// the identifier untouched. Callers must supply the complete record.
func (c *Conf) Replace(ctx context.Context, collection string, id primitive.ObjectID, doc any) error {
	res, err := c.db.Collection(collection).ReplaceOne(ctx, bson.M{"_id": id}, doc)
	if err != nil {
		return fmt.Errorf("failed to replace in %s: %w", collection, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the document with the given id, or returns ErrNotFound.
func (c *Conf) Delete(ctx context.Context, collection string, id primitive.ObjectID) error {
	res, err := c.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", collection, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (c *Conf) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}

func (c *Conf) CollectionNames(ctx context.Context) ([]string, error) {
	return c.db.ListCollectionNames(ctx, bson.D{})
}

func (c *Conf) Name() string {
	return c.db.Name()
}

// Package mongodbtest provides Store implementations for tests: a
// function-field fake for asserting call behavior, and an in-memory document
// store for end-to-end handler tests without a running database.
package mongodbtest

import (
	"context"

	"storefront-service/internal/stores/mongodb"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FakeStore implements mongodb.Store with per-method function fields. Methods
// record their invocation in Calls; an un-stubbed method panics, flagging an
// unexpected store round-trip.
type FakeStore struct {
	InsertFn   func(ctx context.Context, collection string, doc any) (primitive.ObjectID, error)
	FindManyFn func(ctx context.Context, collection string, filter bson.M, limit int64, out any) error
	FindOneFn  func(ctx context.Context, collection string, id primitive.ObjectID, out any) error
	ReplaceFn  func(ctx context.Context, collection string, id primitive.ObjectID, doc any) error
	DeleteFn   func(ctx context.Context, collection string, id primitive.ObjectID) error

	Calls []string
}

var _ mongodb.Store = (*FakeStore)(nil)

func (f *FakeStore) Insert(ctx context.Context, collection string, doc any) (primitive.ObjectID, error) {
	f.Calls = append(f.Calls, "Insert")
	return f.InsertFn(ctx, collection, doc)
}

func (f *FakeStore) FindMany(ctx context.Context, collection string, filter bson.M, limit int64, out any) error {
	f.Calls = append(f.Calls, "FindMany")
	return f.FindManyFn(ctx, collection, filter, limit, out)
}

func (f *FakeStore) FindOne(ctx context.Context, collection string, id primitive.ObjectID, out any) error {
	f.Calls = append(f.Calls, "FindOne")
	return f.FindOneFn(ctx, collection, id, out)
}

func (f *FakeStore) Replace(ctx context.Context, collection string, id primitive.ObjectID, doc any) error {
	f.Calls = append(f.Calls, "Replace")
	return f.ReplaceFn(ctx, collection, id, doc)
}

func (f *FakeStore) Delete(ctx context.Context, collection string, id primitive.ObjectID) error {
	f.Calls = append(f.Calls, "Delete")
	return f.DeleteFn(ctx, collection, id)
}

func (f *FakeStore) Ping(ctx context.Context) error { return nil }

func (f *FakeStore) CollectionNames(ctx context.Context) ([]string, error) {
	return mongodb.Collections(), nil
}

func (f *FakeStore) Name() string { return "testdb" }

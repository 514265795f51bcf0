package mongodbtest

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"storefront-service/internal/stores/mongodb"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type memDoc struct {
	id  primitive.ObjectID
	raw []byte
}

// MemStore is an in-memory mongodb.Store. Documents round-trip through the
// bson codec, so tag handling matches the real driver. Iteration preserves
// insertion order.
type MemStore struct {
	mu          sync.Mutex
	collections map[string][]memDoc
}

var _ mongodb.Store = (*MemStore)(nil)

func NewMemStore() *MemStore {
	return &MemStore{collections: make(map[string][]memDoc)}
}

func (m *MemStore) Insert(ctx context.Context, collection string, doc any) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var asMap bson.M
	if err := roundTrip(doc, &asMap); err != nil {
		return primitive.NilObjectID, err
	}
	id := primitive.NewObjectID()
	asMap["_id"] = id
	raw, err := bson.Marshal(asMap)
	if err != nil {
		return primitive.NilObjectID, err
	}
	m.collections[collection] = append(m.collections[collection], memDoc{id: id, raw: raw})
	return id, nil
}

func (m *MemStore) FindMany(ctx context.Context, collection string, filter bson.M, limit int64, out any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	outv := reflect.ValueOf(out)
	if outv.Kind() != reflect.Pointer || outv.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("out must be a pointer to a slice, got %T", out)
	}
	slice := outv.Elem()
	elemType := slice.Type().Elem()

	var n int64
	for _, d := range m.collections[collection] {
		if limit > 0 && n >= limit {
			break
		}
		ok, err := matches(d.raw, filter)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		elem := reflect.New(elemType)
		if err := bson.Unmarshal(d.raw, elem.Interface()); err != nil {
			return err
		}
		slice = reflect.Append(slice, elem.Elem())
		n++
	}
	outv.Elem().Set(slice)
	return nil
}

func (m *MemStore) FindOne(ctx context.Context, collection string, id primitive.ObjectID, out any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, d := range m.collections[collection] {
		if d.id == id {
			return bson.Unmarshal(d.raw, out)
		}
	}
	return mongodb.ErrNotFound
}

func (m *MemStore) Replace(ctx context.Context, collection string, id primitive.ObjectID, doc any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, d := range m.collections[collection] {
		if d.id != id {
			continue
		}
		var asMap bson.M
		if err := roundTrip(doc, &asMap); err != nil {
			return err
		}
		asMap["_id"] = id
		raw, err := bson.Marshal(asMap)
		if err != nil {
			return err
		}
		m.collections[collection][i] = memDoc{id: id, raw: raw}
		return nil
	}
	return mongodb.ErrNotFound
}

func (m *MemStore) Delete(ctx context.Context, collection string, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	docs := m.collections[collection]
	for i, d := range docs {
		if d.id == id {
			m.collections[collection] = append(docs[:i:i], docs[i+1:]...)
			return nil
		}
	}
	return mongodb.ErrNotFound
}

func (m *MemStore) Ping(ctx context.Context) error { return nil }

func (m *MemStore) CollectionNames(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	names := make([]string, 0, len(m.collections))
	for name := range m.collections {
		names = append(names, name)
	}
	return names, nil
}

func (m *MemStore) Name() string { return "memdb" }

func roundTrip(doc any, out *bson.M) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, out)
}

// matches applies top-level key/value equality the way the real store does
// for the flat filters this system builds.
func matches(raw []byte, filter bson.M) (bool, error) {
	if len(filter) == 0 {
		return true, nil
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return false, err
	}
	for k, want := range filter {
		got, ok := doc[k]
		if !ok || !reflect.DeepEqual(got, want) {
			return false, nil
		}
	}
	return true, nil
}

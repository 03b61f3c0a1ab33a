package database

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/rs/xid"
	"go.mongodb.org/mongo-driver/bson"
)

// MemoryStore is an in-memory RecordStore used by tests. Documents round-trip
// through bson on every read so decoding behaves the same as with the real
// store, custom unmarshalers included. Insertion order of a collection is
// preserved, which keeps FindAll deterministic.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]*memCollection
}

type memCollection struct {
	docs map[string]bson.M
	keys []string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string]*memCollection)}
}

func (s *MemoryStore) FindAll(ctx context.Context, collection string, out interface{}) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	slicePtr := reflect.ValueOf(out)
	if slicePtr.Kind() != reflect.Ptr || slicePtr.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("find all %s: out must be a pointer to a slice", collection)
	}
	sliceVal := slicePtr.Elem()
	elemType := sliceVal.Type().Elem()
	result := reflect.MakeSlice(sliceVal.Type(), 0, 0)

	coll, ok := s.collections[collection]
	if !ok {
		sliceVal.Set(result)
		return nil
	}

	for _, id := range coll.keys {
		elem := reflect.New(elemType)
		if err := decodeDoc(coll.docs[id], elem.Interface()); err != nil {
			return fmt.Errorf("decode %s/%s: %w", collection, id, err)
		}
		result = reflect.Append(result, elem.Elem())
	}
	sliceVal.Set(result)
	return nil
}

func (s *MemoryStore) FindByID(ctx context.Context, collection, id string, out interface{}) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	coll, ok := s.collections[collection]
	if !ok {
		return ErrNotFound
	}
	doc, ok := coll.docs[id]
	if !ok {
		return ErrNotFound
	}
	if err := decodeDoc(doc, out); err != nil {
		return fmt.Errorf("decode %s/%s: %w", collection, id, err)
	}
	return nil
}

func (s *MemoryStore) Set(ctx context.Context, collection, id string, doc interface{}) error {
	stored, err := encodeDoc(id, doc)
	if err != nil {
		return fmt.Errorf("set %s/%s: %w", collection, id, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	coll, ok := s.collections[collection]
	if !ok {
		coll = &memCollection{docs: make(map[string]bson.M)}
		s.collections[collection] = coll
	}
	if _, exists := coll.docs[id]; !exists {
		coll.keys = append(coll.keys, id)
	}
	coll.docs[id] = stored
	return nil
}

func (s *MemoryStore) Push(ctx context.Context, collection string, doc interface{}) (string, error) {
	id := xid.New().String()
	if err := s.Set(ctx, collection, id, doc); err != nil {
		return "", err
	}
	return id, nil
}

func (s *MemoryStore) Update(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	coll, ok := s.collections[collection]
	if !ok {
		return ErrNotFound
	}
	doc, ok := coll.docs[id]
	if !ok {
		return ErrNotFound
	}
	for k, v := range fields {
		doc[k] = v
	}
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	coll, ok := s.collections[collection]
	if !ok {
		return ErrNotFound
	}
	if _, ok := coll.docs[id]; !ok {
		return ErrNotFound
	}
	delete(coll.docs, id)
	for i, k := range coll.keys {
		if k == id {
			coll.keys = append(coll.keys[:i], coll.keys[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MemoryStore) Count(ctx context.Context, collection string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	coll, ok := s.collections[collection]
	if !ok {
		return 0, nil
	}
	return int64(len(coll.docs)), nil
}

func encodeDoc(id string, doc interface{}) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var m bson.M
	if err := bson.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	m["_id"] = id
	return m, nil
}

func decodeDoc(doc bson.M, out interface{}) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, out)
}

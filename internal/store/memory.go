package store

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore is an in-process Store useful for tests and for running the
// service without a database. Documents are copied on the way in and out.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]Document
}

var (
	_ Store     = (*MemoryStore)(nil)
	_ Inspector = (*MemoryStore)(nil)
)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]Document)}
}

func (s *MemoryStore) Find(ctx context.Context, collection string, filter Filter, limit int) ([]Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Document, 0)
	for _, d := range s.collections[collection] {
		if limit > 0 && len(out) >= limit {
			break
		}
		if matches(d, filter) {
			out = append(out, cloneDocument(d))
		}
	}
	return out, nil
}

func (s *MemoryStore) Insert(ctx context.Context, collection string, doc any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	d, err := toDocument(doc)
	if err != nil {
		return "", err
	}
	id := primitive.NewObjectID()
	d[IDField] = id
	stamp(d, time.Now().UTC())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[collection] = append(s.collections[collection], d)
	return id.Hex(), nil
}

func (s *MemoryStore) Name() string { return "memory" }

func (s *MemoryStore) Collections(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.collections))
	for name := range s.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *MemoryStore) Close(ctx context.Context) error { return nil }

func cloneDocument(d Document) Document {
	out := make(Document, len(d))
	for k, v := range d {
		if list, ok := v.([]any); ok {
			v = slices.Clone(list)
		}
		out[k] = v
	}
	return out
}

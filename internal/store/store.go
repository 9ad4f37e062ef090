// Package store holds the document store used by the catalog and the write
// endpoints. Every backend speaks the same small find/insert contract and
// assigns BSON ObjectIDs, so callers can tell a stored id from a sample id
// without knowing which backend is configured.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"time"
)

// IDField is the document key holding the store-assigned identifier.
const IDField = "_id"

var (
	ErrUnavailable   = errors.New("document store unavailable")
	ErrNotConfigured = errors.New("document store not configured")
)

// Document is a stored record keyed by field name.
type Document map[string]any

// Filter selects documents whose fields equal every given value.
// An empty filter matches everything.
type Filter map[string]any

// Store is the find/insert contract shared by every backend.
type Store interface {
	// Find returns at most limit documents of collection matching filter.
	// A limit <= 0 means no limit.
	Find(ctx context.Context, collection string, filter Filter, limit int) ([]Document, error)
	// Insert stores doc in collection and returns the generated identifier.
	Insert(ctx context.Context, collection string, doc any) (string, error)
}

// Inspector is implemented by stores that can describe themselves for diagnostics.
type Inspector interface {
	Name() string
	Collections(ctx context.Context) ([]string, error)
}

// Closer releases the underlying connection.
type Closer interface {
	Close(ctx context.Context) error
}

// Unavailable is a Store that fails every call. It stands in for a store that
// is not configured or could not be reached at startup.
type Unavailable struct {
	Reason error
}

func (u *Unavailable) err(op string) error {
	if u.Reason != nil {
		return fmt.Errorf("%s: %w: %w", op, ErrUnavailable, u.Reason)
	}
	return fmt.Errorf("%s: %w", op, ErrUnavailable)
}

func (u *Unavailable) Find(ctx context.Context, collection string, filter Filter, limit int) ([]Document, error) {
	return nil, u.err("find " + collection)
}

func (u *Unavailable) Insert(ctx context.Context, collection string, doc any) (string, error) {
	return "", u.err("insert " + collection)
}

// Available reports whether s is a real backend rather than a placeholder.
func Available(s Store) bool {
	if s == nil {
		return false
	}
	_, down := s.(*Unavailable)
	return !down
}

// toDocument converts doc into a JSON-shaped Document using its json tags.
func toDocument(doc any) (Document, error) {
	if d, ok := doc.(Document); ok {
		out := make(Document, len(d))
		for k, v := range d {
			out[k] = v
		}
		return out, nil
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	out := Document{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("document must be an object: %w", err)
	}
	return out, nil
}

// stamp sets the audit timestamps written on every insert.
func stamp(d Document, now time.Time) {
	d["created_at"] = now
	d["updated_at"] = now
}

// idString renders an identifier filter value the way stores persist it.
func idString(v any) string {
	switch id := v.(type) {
	case string:
		return id
	case interface{ Hex() string }:
		return id.Hex()
	default:
		return fmt.Sprint(v)
	}
}

// matches reports whether d satisfies every equality in f.
func matches(d Document, f Filter) bool {
	for k, want := range f {
		got, ok := d[k]
		if !ok {
			return false
		}
		if k == IDField {
			if idString(got) != idString(want) {
				return false
			}
			continue
		}
		if !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

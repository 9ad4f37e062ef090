package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostgresStore keeps documents as JSONB rows in a single table, one row per
// document, partitioned by the collection column.
type PostgresStore struct {
	db    *sql.DB
	table string
	name  string
}

var (
	_ Store     = (*PostgresStore)(nil)
	_ Inspector = (*PostgresStore)(nil)
)

// NewPostgresStore wraps db. table is quoted, so any identifier is accepted.
func NewPostgresStore(db *sql.DB, table, name string) *PostgresStore {
	if table == "" {
		table = "documents"
	}
	if name == "" {
		name = "postgres"
	}
	return &PostgresStore{db: db, table: pq.QuoteIdentifier(table), name: name}
}

// EnsureSchema creates the documents table when it does not exist yet.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id TEXT PRIMARY KEY,
		collection TEXT NOT NULL,
		body JSONB NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`, s.table))
	return err
}

func (s *PostgresStore) Find(ctx context.Context, collection string, filter Filter, limit int) ([]Document, error) {
	q := fmt.Sprintf(`SELECT id, body FROM %s WHERE collection = $1`, s.table)
	args := []any{collection}

	fields := make(map[string]any, len(filter))
	for k, v := range filter {
		if k == IDField {
			args = append(args, idString(v))
			q += fmt.Sprintf(` AND id = $%d`, len(args))
			continue
		}
		fields[k] = v
	}
	if len(fields) > 0 {
		body, err := json.Marshal(fields)
		if err != nil {
			return nil, fmt.Errorf("encode filter: %w", err)
		}
		args = append(args, string(body))
		q += fmt.Sprintf(` AND body @> $%d::jsonb`, len(args))
	}
	q += ` ORDER BY created_at, id`
	if limit > 0 {
		args = append(args, limit)
		q += fmt.Sprintf(` LIMIT $%d`, len(args))
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", collection, err)
	}
	defer rows.Close()

	out := make([]Document, 0)
	for rows.Next() {
		var (
			id   string
			body []byte
		)
		if err := rows.Scan(&id, &body); err != nil {
			return nil, fmt.Errorf("find %s: %w", collection, err)
		}
		d := Document{}
		if err := json.Unmarshal(body, &d); err != nil {
			return nil, fmt.Errorf("find %s: decode %s: %w", collection, id, err)
		}
		d[IDField] = id
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("find %s: %w", collection, err)
	}
	return out, nil
}

func (s *PostgresStore) Insert(ctx context.Context, collection string, doc any) (string, error) {
	d, err := toDocument(doc)
	if err != nil {
		return "", err
	}
	delete(d, IDField)
	now := time.Now().UTC()
	stamp(d, now)

	body, err := json.Marshal(d)
	if err != nil {
		return "", err
	}
	id := primitive.NewObjectID().Hex()
	q := fmt.Sprintf(`INSERT INTO %s (id, collection, body, created_at) VALUES ($1,$2,$3,$4)`, s.table)
	if _, err := s.db.ExecContext(ctx, q, id, collection, string(body), now); err != nil {
		return "", fmt.Errorf("insert %s: %w", collection, err)
	}
	return id, nil
}

func (s *PostgresStore) Name() string { return s.name }

func (s *PostgresStore) Collections(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`SELECT DISTINCT collection FROM %s ORDER BY collection`, s.table))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (s *PostgresStore) Close(ctx context.Context) error {
	return s.db.Close()
}

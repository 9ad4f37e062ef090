package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Options selects and configures a backend.
type Options struct {
	Driver         string
	URL            string
	Name           string
	Table          string
	ConnectTimeout time.Duration
}

// DriverFor returns the configured driver, inferring it from the URL scheme
// when none is set.
func (o Options) DriverFor() string {
	if o.Driver != "" {
		return strings.ToLower(o.Driver)
	}
	switch {
	case strings.HasPrefix(o.URL, "mongodb://"), strings.HasPrefix(o.URL, "mongodb+srv://"):
		return DriverMongo
	case strings.HasPrefix(o.URL, "postgres://"), strings.HasPrefix(o.URL, "postgresql://"):
		return DriverPostgres
	case o.URL == "":
		return ""
	default:
		return DriverMongo
	}
}

// Open connects to the backend described by opts.
func Open(ctx context.Context, opts Options) (Store, error) {
	driver := opts.DriverFor()
	if driver == DriverMemory {
		return NewMemoryStore(), nil
	}
	if opts.URL == "" {
		return nil, ErrNotConfigured
	}

	timeout := opts.ConnectTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	switch driver {
	case DriverMongo:
		s, err := ConnectMongo(ctx, opts.URL, opts.Name)
		if err != nil {
			return nil, err
		}
		return s, nil
	case DriverPostgres:
		db, err := sql.Open("pgx", opts.URL)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("ping postgres: %w", err)
		}
		s := NewPostgresStore(db, opts.Table, opts.Name)
		if err := s.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("ensure documents table: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", driver)
	}
}

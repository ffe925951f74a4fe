package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/types"
)

// Store persists resume documents by ID
type Store interface {
	Save(ctx context.Context, id uuid.UUID, doc *types.Document) error
	Load(ctx context.Context, id uuid.UUID) (*types.Document, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]Entry, error)
	Close() error
}

// Entry summarizes a stored document for listings
type Entry struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Options selects and configures a Store implementation
type Options struct {
	// DatabaseURL selects the PostgreSQL store when set
	DatabaseURL string
	// Path is the SQLite file used when DatabaseURL is empty
	Path string
}

// Open returns a PostgreSQL store when a database URL is configured, otherwise a local SQLite store.
func Open(ctx context.Context, opts Options) (Store, error) {
	if opts.DatabaseURL != "" {
		return ConnectPostgres(ctx, opts.DatabaseURL)
	}
	if opts.Path == "" {
		return nil, fmt.Errorf("either a database URL or a store path is required")
	}
	return OpenSQLite(opts.Path)
}

package repository

import (
	"context"
	"time"

	"github.com/divyaannsh/followus/internal/domain"
)

// EventRepository defines the interface for the append-only event store.
// Events are never updated or deleted.
type EventRepository interface {
	// InsertBatch appends a batch of events to the store
	InsertBatch(ctx context.Context, events []*domain.Event) (int, error)

	// ListSince returns all events for the username with a timestamp at or
	// after since, ordered by timestamp ascending. The ordering is what the
	// stats engine's first-seen tie-break rule is defined against.
	ListSince(ctx context.Context, username string, since time.Time) ([]domain.Event, error)

	// InitSchema initializes the database schema (creates tables if they don't exist)
	InitSchema(ctx context.Context) error

	// Ping checks if the database connection is alive
	Ping(ctx context.Context) error

	// Close closes the repository and releases resources
	Close() error
}

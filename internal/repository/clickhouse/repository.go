package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"go.uber.org/zap"

	"github.com/divyaannsh/followus/internal/domain"
)

// Repository implements repository.EventRepository for ClickHouse
type Repository struct {
	client *Client
	log    *zap.Logger
}

// NewRepository creates a new ClickHouse repository
func NewRepository(client *Client, log *zap.Logger) *Repository {
	return &Repository{
		client: client,
		log:    log,
	}
}

// InitSchema creates the profile_events table. ReplacingMergeTree on the
// content-hash event_id absorbs SQS at-least-once redeliveries.
func (r *Repository) InitSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS profile_events (
		event_id String,
		username LowCardinality(String),
		event_type LowCardinality(String),
		link_id String,
		link_title String,
		source LowCardinality(String),
		timestamp DateTime64(3),
		ingested_at DateTime64(3) DEFAULT now64(3),
		version UInt64
	) ENGINE = ReplacingMergeTree(version)
	PRIMARY KEY (username, event_id)
	ORDER BY (username, event_id, timestamp)
	PARTITION BY toYYYYMM(timestamp)
	SETTINGS index_granularity = 8192
	`

	if err := r.client.Conn().Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to create profile_events table: %w", err)
	}

	r.log.Info("ClickHouse schema initialized successfully")
	return nil
}

// InsertBatch appends a batch of events to ClickHouse
func (r *Repository) InsertBatch(ctx context.Context, events []*domain.Event) (int, error) {
	if len(events) == 0 {
		return 0, nil
	}

	batch, err := r.client.Conn().PrepareBatch(ctx, "INSERT INTO profile_events")
	if err != nil {
		return 0, fmt.Errorf("failed to prepare batch: %w", err)
	}

	insertedCount := 0
	for _, event := range events {
		if event.Version == 0 {
			event.Version = uint64(time.Now().UnixNano())
		}
		if event.IngestedAt.IsZero() {
			event.IngestedAt = time.Now()
		}

		err := batch.Append(
			event.EventID,
			event.Username,
			event.Type,
			event.LinkID,
			event.LinkTitle,
			event.Source,
			event.Timestamp,
			event.IngestedAt,
			event.Version,
		)

		if err != nil {
			return 0, fmt.Errorf("failed to append event to batch: %w", err)
		}
		insertedCount++
	}

	if err := batch.Send(); err != nil {
		return 0, fmt.Errorf("failed to send batch: %w", err)
	}

	return insertedCount, nil
}

// ListSince returns the username's events with timestamp >= since, ordered
// by timestamp ascending so the stats engine scans them in a deterministic
// order.
func (r *Repository) ListSince(ctx context.Context, username string, since time.Time) ([]domain.Event, error) {
	query := `
		SELECT
			event_id,
			username,
			event_type,
			link_id,
			link_title,
			source,
			timestamp
		FROM profile_events FINAL
		WHERE username = ? AND timestamp >= ?
		ORDER BY timestamp ASC
	`

	rows, err := r.client.Conn().Query(ctx, query, username, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer func(rows driver.Rows) {
		if err := rows.Close(); err != nil {
			r.log.Error("Failed to close event rows", zap.Error(err))
		}
	}(rows)

	var events []domain.Event
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(&e.EventID, &e.Username, &e.Type, &e.LinkID, &e.LinkTitle, &e.Source, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event rows: %w", err)
	}

	return events, nil
}

// Ping checks if the ClickHouse connection is alive
func (r *Repository) Ping(ctx context.Context) error {
	return r.client.Conn().Ping(ctx)
}

// Close closes the ClickHouse connection
func (r *Repository) Close() error {
	return r.client.Close()
}

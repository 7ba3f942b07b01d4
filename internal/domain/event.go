package domain

import "time"

// Event types recorded for a public profile page.
const (
	EventTypeView  = "view"
	EventTypeClick = "click"
)

// ValidEventType reports whether t is one of the two recorded event types.
func ValidEventType(t string) bool {
	return t == EventTypeView || t == EventTypeClick
}

// Event represents one profile view or link click stored in ClickHouse.
// Events are immutable: written once by ingestion, only ever read by the
// stats engine. LinkID and LinkTitle are set for click events only; the
// title is denormalized so history survives link renames and deletions.
type Event struct {
	EventID    string    `ch:"event_id"`
	Username   string    `ch:"username"`
	Type       string    `ch:"event_type"`
	LinkID     string    `ch:"link_id"`
	LinkTitle  string    `ch:"link_title"`
	Source     string    `ch:"source"`
	Timestamp  time.Time `ch:"timestamp"`
	IngestedAt time.Time `ch:"ingested_at"`
	Version    uint64    `ch:"version"`
}

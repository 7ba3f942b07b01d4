package consumer

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/divyaannsh/followus/internal/domain"
)

// JSONEventParser implements MessageParser for the JSON messages produced
// by the track API.
type JSONEventParser struct{}

// NewJSONEventParser creates a new JSON event parser
func NewJSONEventParser() *JSONEventParser {
	return &JSONEventParser{}
}

// trackMessage is the queue wire shape. Timestamp is Unix milliseconds.
type trackMessage struct {
	EventID   string `json:"event_id"`
	Username  string `json:"username"`
	Type      string `json:"type"`
	LinkID    string `json:"link_id"`
	LinkTitle string `json:"link_title"`
	Source    string `json:"source"`
	Timestamp int64  `json:"timestamp"`
}

// Parse parses a JSON message body into an Event. Messages missing any of
// the fields the store invariants depend on are rejected so they never
// reach the batch writer.
func (p *JSONEventParser) Parse(body []byte) (*domain.Event, error) {
	var msg trackMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal message body: %w", err)
	}

	if msg.EventID == "" {
		return nil, fmt.Errorf("message missing event_id")
	}
	if msg.Username == "" {
		return nil, fmt.Errorf("message missing username")
	}
	if !domain.ValidEventType(msg.Type) {
		return nil, fmt.Errorf("message has invalid event type %q", msg.Type)
	}
	if msg.Source == "" {
		return nil, fmt.Errorf("message missing source")
	}
	if msg.Timestamp <= 0 {
		return nil, fmt.Errorf("message has invalid timestamp %d", msg.Timestamp)
	}

	event := &domain.Event{
		EventID:    msg.EventID,
		Username:   msg.Username,
		Type:       msg.Type,
		LinkID:     msg.LinkID,
		LinkTitle:  msg.LinkTitle,
		Source:     msg.Source,
		Timestamp:  time.UnixMilli(msg.Timestamp).UTC(),
		IngestedAt: time.Now(),
		Version:    uint64(time.Now().UnixNano()),
	}

	return event, nil
}

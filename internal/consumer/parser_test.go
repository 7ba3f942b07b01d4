package consumer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJSONEventParser_Parse_Success(t *testing.T) {
	parser := NewJSONEventParser()

	body := []byte(`{
		"event_id": "abc123",
		"username": "alice",
		"type": "click",
		"link_id": "l1",
		"link_title": "My Site",
		"source": "instagram",
		"timestamp": 1750000000000
	}`)

	event, err := parser.Parse(body)

	assert.NoError(t, err)
	assert.Equal(t, "abc123", event.EventID)
	assert.Equal(t, "alice", event.Username)
	assert.Equal(t, "click", event.Type)
	assert.Equal(t, "l1", event.LinkID)
	assert.Equal(t, "My Site", event.LinkTitle)
	assert.Equal(t, "instagram", event.Source)
	assert.Equal(t, time.UnixMilli(1750000000000).UTC(), event.Timestamp)
	assert.False(t, event.IngestedAt.IsZero())
	assert.NotZero(t, event.Version)
}

func TestJSONEventParser_Parse_ViewWithoutLink(t *testing.T) {
	parser := NewJSONEventParser()

	body := []byte(`{
		"event_id": "abc123",
		"username": "alice",
		"type": "view",
		"source": "direct",
		"timestamp": 1750000000000
	}`)

	event, err := parser.Parse(body)

	assert.NoError(t, err)
	assert.Equal(t, "view", event.Type)
	assert.Empty(t, event.LinkID)
	assert.Empty(t, event.LinkTitle)
}

func TestJSONEventParser_Parse_InvalidJSON(t *testing.T) {
	parser := NewJSONEventParser()

	event, err := parser.Parse([]byte(`{"username": "alice", invalid}`))

	assert.Error(t, err)
	assert.Nil(t, event)
	assert.Contains(t, err.Error(), "failed to unmarshal message body")
}

func TestJSONEventParser_Parse_RejectsInvalidMessages(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing event_id", `{"username":"alice","type":"view","source":"direct","timestamp":1750000000000}`},
		{"missing username", `{"event_id":"abc","type":"view","source":"direct","timestamp":1750000000000}`},
		{"missing type", `{"event_id":"abc","username":"alice","source":"direct","timestamp":1750000000000}`},
		{"unknown type", `{"event_id":"abc","username":"alice","type":"hover","source":"direct","timestamp":1750000000000}`},
		{"missing source", `{"event_id":"abc","username":"alice","type":"view","timestamp":1750000000000}`},
		{"missing timestamp", `{"event_id":"abc","username":"alice","type":"view","source":"direct"}`},
		{"negative timestamp", `{"event_id":"abc","username":"alice","type":"view","source":"direct","timestamp":-5}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := NewJSONEventParser()

			event, err := parser.Parse([]byte(tt.body))

			assert.Error(t, err)
			assert.Nil(t, event)
		})
	}
}

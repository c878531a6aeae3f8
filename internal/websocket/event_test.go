package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	payload := map[string]interface{}{
		"loading": false,
	}

	before := time.Now()
	evt := NewEvent(EventTypeRefreshed, EntityTypeBudgets, payload)
	after := time.Now()

	assert.Equal(t, "budgets.refreshed", evt.Type)
	assert.Equal(t, EntityTypeBudgets, evt.Entity)
	assert.Equal(t, payload, evt.Payload)
	assert.True(t, !evt.Timestamp.Before(before) && !evt.Timestamp.After(after))
}

func TestEvent_ToJSON(t *testing.T) {
	evt := StoreRefreshed("transactions", map[string]interface{}{"error": "Failed to load transactions"})

	data, err := evt.ToJSON()
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "transactions.refreshed", decoded["type"])
	assert.Equal(t, "transactions", decoded["entity"])
	assert.NotNil(t, decoded["payload"])
	assert.NotNil(t, decoded["timestamp"])
}

func TestSessionEvents(t *testing.T) {
	tests := []struct {
		name     string
		evt      Event
		expected string
	}{
		{"expired", SessionExpired(), "session.expired"},
		{"closed", SessionClosed(), "session.closed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.evt.Type)
			assert.Equal(t, EntityTypeSession, tt.evt.Entity)
			assert.Nil(t, tt.evt.Payload)
		})
	}
}

func TestStoreRefreshed_EntityMatchesStoreName(t *testing.T) {
	for _, name := range []string{"accounts", "transactions", "budgets", "categories", "exchange_rates"} {
		evt := StoreRefreshed(name, nil)
		assert.Equal(t, name+".refreshed", evt.Type)
		assert.Equal(t, EntityType(name), evt.Entity)
	}
}
